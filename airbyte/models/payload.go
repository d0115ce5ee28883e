// Copyright (c) 2025 Cazou Vilela
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"fmt"
	"strconv"
	"strings"
)

// SyncPayload is the untyped document posted by the sync platform. Every
// accessor tolerates absent or differently-typed fields; absence renders as
// the "N/A" placeholder, never as an error.
type SyncPayload map[string]interface{}

// Entity is a named, optionally linked payload sub-object
// (workspace, connection, source, destination).
type Entity struct {
	Name string
	URL  string
}

// Unwrap extracts the data envelope the platform wraps its payloads in,
// falling back to the payload itself when no envelope is present.
func Unwrap(payload map[string]interface{}) SyncPayload {
	if data, ok := payload["data"].(map[string]interface{}); ok {
		return data
	}
	return payload
}

// Entity reads a {name, url} sub-object. Missing fields come back empty.
func (p SyncPayload) Entity(key string) Entity {
	section, ok := p[key].(map[string]interface{})
	if !ok {
		return Entity{}
	}
	entity := Entity{}
	if name, ok := section["name"].(string); ok {
		entity.Name = name
	}
	if url, ok := section["url"].(string); ok {
		entity.URL = url
	}
	return entity
}

// DisplayName returns the entity name or the "N/A" placeholder.
func (e Entity) DisplayName() string {
	if e.Name == "" {
		return "N/A"
	}
	return e.Name
}

// Scalar renders a top-level scalar field for display: strings pass through,
// numbers lose any float artifacts, everything else (missing included)
// becomes "N/A".
func (p SyncPayload) Scalar(key string) string {
	switch v := p[key].(type) {
	case string:
		if v == "" {
			return "N/A"
		}
		return v
	case float64:
		return formatNumber(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return "N/A"
	}
}

// Int reads a numeric field as an integer count, zero when absent.
func (p SyncPayload) Int(key string) int64 {
	switch v := p[key].(type) {
	case float64:
		return int64(v)
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return 0
}

// String reads a string field, empty when absent.
func (p SyncPayload) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Success reports the sync outcome; an absent field means success.
func (p SyncPayload) Success() bool {
	if v, ok := p["success"].(bool); ok {
		return v
	}
	return true
}

// Duration prefers the pre-formatted duration string and falls back to the
// raw second count.
func (p SyncPayload) Duration() string {
	if formatted, ok := p["durationFormatted"].(string); ok && formatted != "" {
		return formatted
	}
	if seconds, ok := p["durationInSeconds"].(float64); ok {
		return fmt.Sprintf("%s segundos", formatNumber(seconds))
	}
	return "N/A"
}

// Bytes prefers the pre-formatted volume string over the raw byte count.
// No unit inference happens here: raw counts render as plain numbers.
func (p SyncPayload) Bytes(formattedKey, rawKey string) string {
	if formatted, ok := p[formattedKey].(string); ok && formatted != "" {
		return formatted
	}
	return p.Scalar(rawKey)
}

// formatNumber renders a JSON number without trailing float artifacts.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// GroupThousands renders a count with thousands separators ("1,234,567").
func GroupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	out := strings.Join(groups, ",")
	if negative {
		out = "-" + out
	}
	return out
}
