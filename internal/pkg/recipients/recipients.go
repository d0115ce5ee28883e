// Package recipients extracts notification recipients from arbitrary
// webhook payloads.
package recipients

import (
	"encoding/json"
	"regexp"
)

// Fields scanned for recipient addresses, in scan order. These mirror the
// field names used by the integrations that post to the webhook server,
// including the Portuguese variants.
var recipientFields = []string{
	"email", "emails", "destinatario", "destinatarios",
	"recipient", "recipients", "to", "para", "dest",
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValid reports whether addr looks like a deliverable email address.
func IsValid(addr string) bool {
	return emailPattern.MatchString(addr)
}

// Extract scans a webhook payload for the known recipient fields and returns
// every valid address found, preserving field order and list order. Payloads
// may be a decoded JSON object or a JSON-encoded string (one parse attempt);
// anything else yields an empty result. Duplicates across fields are kept.
// Extract never fails: malformed input produces an empty slice.
func Extract(payload interface{}) []string {
	if s, ok := payload.(string); ok {
		var decoded interface{}
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return nil
		}
		payload = decoded
	}

	data, ok := payload.(map[string]interface{})
	if !ok {
		return nil
	}

	var emails []string
	for _, field := range recipientFields {
		value, present := data[field]
		if !present {
			continue
		}
		switch v := value.(type) {
		case string:
			if IsValid(v) {
				emails = append(emails, v)
			}
		case []interface{}:
			for _, item := range v {
				if addr, ok := item.(string); ok && IsValid(addr) {
					emails = append(emails, addr)
				}
			}
		}
	}
	return emails
}

// Resolve extracts recipients from the payload, falling back to the
// configured default address so the dispatcher never receives an empty list.
func Resolve(payload interface{}, fallback string) []string {
	if emails := Extract(payload); len(emails) > 0 {
		return emails
	}
	return []string{fallback}
}

// Strip returns a copy of data without the recipient fields, so addresses
// are not echoed back inside notification bodies.
func Strip(data map[string]interface{}) map[string]interface{} {
	clean := make(map[string]interface{}, len(data))
	for key, value := range data {
		if isRecipientField(key) {
			continue
		}
		clean[key] = value
	}
	return clean
}

func isRecipientField(key string) bool {
	for _, field := range recipientFields {
		if key == field {
			return true
		}
	}
	return false
}
