// Copyright (c) 2025 Cazou Vilela
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"fmt"
	"strings"
)

// Notification carries everything known about one received webhook that the
// notification email needs.
type Notification struct {
	// Action is the path segment of /webhook/:action, empty for the plain
	// /webhook endpoint.
	Action         string
	ConnectionName string
	OriginIP       string
	Headers        map[string][]string
	Data           map[string]interface{}
	Recipients     []string
}

// ActionMeta is the display decoration of a webhook action.
type ActionMeta struct {
	Emoji string
	Label string
}

var actionMetas = map[string]ActionMeta{
	"failed":          {Emoji: "🔴", Label: "FALHA"},
	"success":         {Emoji: "✅", Label: "SUCESSO"},
	"update":          {Emoji: "🔄", Label: "ATUALIZAÇÃO"},
	"action-required": {Emoji: "⚠️", Label: "AÇÃO NECESSÁRIA"},
	"warning":         {Emoji: "⚠️", Label: "AVISO"},
	"disabled":        {Emoji: "🚫", Label: "DESABILITADO"},
	"login":           {Emoji: "👤", Label: "LOGIN"},
	"pedido":          {Emoji: "🛒", Label: "PEDIDO"},
	"alerta":          {Emoji: "🚨", Label: "ALERTA"},
	"erro":            {Emoji: "❌", Label: "ERRO"},
	"info":            {Emoji: "ℹ️", Label: "INFO"},
}

// ClassifyAction maps an action to its display decoration. Unknown actions
// get the generic announcement emoji and their own name upper-cased.
func ClassifyAction(action string) ActionMeta {
	if meta, ok := actionMetas[action]; ok {
		return meta
	}
	return ActionMeta{Emoji: "📢", Label: strings.ToUpper(action)}
}

var headerColors = map[string]string{
	"failed":   "#FF4444",
	"success":  "#44BB44",
	"update":   "#4444FF",
	"warning":  "#FFA500",
	"disabled": "#808080",
	"alerta":   "#FF6B6B",
	"erro":     "#DC3545",
}

// HeaderColor picks the email header color for an action.
func HeaderColor(action string) string {
	if color, ok := headerColors[action]; ok {
		return color
	}
	return "#667eea"
}

// ExtractConnectionName pulls the sync connection name out of a payload when
// present. A non-object connection field is stringified as-is.
func ExtractConnectionName(data map[string]interface{}) string {
	raw, ok := data["connection"]
	if !ok {
		return ""
	}
	if section, ok := raw.(map[string]interface{}); ok {
		name, _ := section["name"].(string)
		return name
	}
	return fmt.Sprintf("%v", raw)
}
