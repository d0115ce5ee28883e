// Copyright (c) 2025 Cazou Vilela
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import "strings"

// EventMeta carries the display metadata of a sync event type.
type EventMeta struct {
	Emoji    string
	Label    string
	Color    string
	Priority string
}

// eventMetas maps the known Airbyte event types to their display metadata.
var eventMetas = map[string]EventMeta{
	"failed": {
		Emoji:    "🔴",
		Label:    "FALHA NA SINCRONIZAÇÃO",
		Color:    "#DC3545",
		Priority: "ALTA",
	},
	"success": {
		Emoji:    "✅",
		Label:    "SINCRONIZAÇÃO CONCLUÍDA",
		Color:    "#28A745",
		Priority: "NORMAL",
	},
	"update": {
		Emoji:    "🔄",
		Label:    "ATUALIZAÇÃO DE CONEXÃO",
		Color:    "#17A2B8",
		Priority: "MÉDIA",
	},
	"action-required": {
		Emoji:    "⚠️",
		Label:    "AÇÃO NECESSÁRIA",
		Color:    "#FFC107",
		Priority: "ALTA",
	},
	"warning": {
		Emoji:    "⚠️",
		Label:    "AVISO - FALHAS REPETIDAS",
		Color:    "#FF6B6B",
		Priority: "ALTA",
	},
	"disabled": {
		Emoji:    "🚫",
		Label:    "SINCRONIZAÇÃO DESABILITADA",
		Color:    "#6C757D",
		Priority: "CRÍTICA",
	},
}

// Classify maps an event type to its display metadata. Unknown event types,
// the empty string included, get the generic announcement fallback; Classify
// never fails.
func Classify(eventType string) EventMeta {
	if meta, ok := eventMetas[eventType]; ok {
		return meta
	}
	return EventMeta{
		Emoji:    "📢",
		Label:    strings.ToUpper(eventType),
		Color:    "#6C757D",
		Priority: "NORMAL",
	}
}

// ErrorCategory describes a class of sync failure and what to do about it.
type ErrorCategory struct {
	Icon        string
	Title       string
	Description string
	Action      string
}

var errorCategories = map[string]ErrorCategory{
	"config_error": {
		Icon:        "⚙️",
		Title:       "Erro de Configuração",
		Description: "Problema nas configurações da fonte ou destino",
		Action:      "Verifique as credenciais e configurações de conexão",
	},
	"transient_error": {
		Icon:        "🔄",
		Title:       "Erro Temporário",
		Description: "Problema temporário que pode se resolver automaticamente",
		Action:      "Aguarde e monitore as próximas tentativas",
	},
	"system_error": {
		Icon:        "🖥️",
		Title:       "Erro do Sistema",
		Description: "Problema interno do sistema Airbyte",
		Action:      "Verifique os logs do Airbyte para mais detalhes",
	},
}

// ClassifyError maps an error type to its category; unknown or missing types
// get the generic category.
func ClassifyError(errorType string) ErrorCategory {
	if category, ok := errorCategories[errorType]; ok {
		return category
	}
	return ErrorCategory{
		Icon:        "❌",
		Title:       "Erro Desconhecido",
		Description: "Tipo de erro não classificado",
		Action:      "Verifique os logs para mais informações",
	}
}
