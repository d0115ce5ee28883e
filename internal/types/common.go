package types

// HTTP Header Constants
const (
	HeaderWebhookSecret = "X-Webhook-Secret"
	HeaderContentType   = "Content-Type"
)

// QueryTokenParam is the query-string fallback for the shared secret, kept
// for callers (Airbyte among them) that cannot set custom request headers.
const QueryTokenParam = "token"
