package testutil

import (
	"context"
	"errors"
	"sync"

	platformemail "github.com/CazouVilela/webhook/internal/platform/email"
)

// FakeEmailSender captures emails in memory for tests.
type FakeEmailSender struct {
	mu   sync.Mutex
	Sent []platformemail.Message

	// FailWith, when set, makes every Send return this error without
	// recording the message. Used to exercise transport-failure paths.
	FailWith error
}

func NewFakeEmailSender() *FakeEmailSender {
	return &FakeEmailSender{Sent: make([]platformemail.Message, 0)}
}

// NewFailingEmailSender returns a sender whose Send always fails with msg.
func NewFailingEmailSender(msg string) *FakeEmailSender {
	return &FakeEmailSender{FailWith: errors.New(msg)}
}

func (f *FakeEmailSender) Send(ctx context.Context, msg platformemail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailWith != nil {
		return f.FailWith
	}
	f.Sent = append(f.Sent, msg)
	return nil
}

func (f *FakeEmailSender) LastSent() *platformemail.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Sent) == 0 {
		return nil
	}
	return &f.Sent[len(f.Sent)-1]
}

func (f *FakeEmailSender) SentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Sent)
}

func (f *FakeEmailSender) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Sent = make([]platformemail.Message, 0)
	f.FailWith = nil
}
