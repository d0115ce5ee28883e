package email

import "context"

// Message represents an email to be sent. Both bodies are delivered in one
// multipart/alternative message; TextBody may be empty, in which case the
// HTML body is sent alone.
type Message struct {
	From     string
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// Sender abstracts email sending for DI and testing.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
