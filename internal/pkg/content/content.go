// Package content holds small helpers for rendering payload content inside
// notification bodies.
package content

import (
	"bytes"
	"encoding/json"
	"strings"
)

// PrettyJSON renders v as two-space indented JSON without HTML escaping, so
// payloads embedded in email bodies stay readable. Unencodable values fall
// back to an empty object.
func PrettyJSON(v interface{}) string {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return "{}"
	}
	return strings.TrimRight(buf.String(), "\n")
}
