// Copyright (c) 2025 Cazou Vilela
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CazouVilela/webhook/airbyte/models"
	"github.com/CazouVilela/webhook/internal/pkg/log"
	"github.com/CazouVilela/webhook/internal/pkg/recipients"
	platformconfig "github.com/CazouVilela/webhook/internal/platform/config"
	"github.com/CazouVilela/webhook/internal/platform/email"
)

// ErrNoSender is returned when the service was wired without an email sender.
var ErrNoSender = errors.New("email sender not configured")

// SyncResult reports who was notified about a sync event.
type SyncResult struct {
	Recipients []string `json:"recipients"`
	EmailsSent int      `json:"emails_sent"`
}

// SyncService turns raw sync webhook payloads into detailed email
// notifications.
type SyncService interface {
	// ProcessEvent renders and dispatches the notification for one event.
	// The payload may be arbitrarily shaped; recipients embedded in it win
	// over the configured default.
	ProcessEvent(ctx context.Context, eventType string, payload map[string]interface{}) (*SyncResult, error)
}

type syncService struct {
	sender           email.Sender
	from             string
	defaultRecipient string
	configuredBy     string
	now              func() time.Time
}

// NewSyncService creates a new instance of the sync notification service.
func NewSyncService(sender email.Sender, cfg *platformconfig.Config) SyncService {
	return &syncService{
		sender:           sender,
		from:             cfg.Mail.DefaultSender,
		defaultRecipient: cfg.Webhook.DefaultRecipient,
		configuredBy:     cfg.Mail.Username,
		now:              time.Now,
	}
}

func (s *syncService) ProcessEvent(ctx context.Context, eventType string, payload map[string]interface{}) (*SyncResult, error) {
	if s.sender == nil {
		return nil, ErrNoSender
	}

	data := models.Unwrap(payload)
	to := recipients.Resolve(map[string]interface{}(data), s.defaultRecipient)

	subject, htmlBody, textBody := RenderSyncEmail(eventType, data, s.configuredBy, s.now())

	msg := email.Message{
		From:     s.from,
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
		TextBody: textBody,
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to send sync notification: %w", err)
	}

	log.InfoWithContext(ctx, "Email Airbyte [%s] enviado para: %s", eventType, strings.Join(to, ", "))

	return &SyncResult{Recipients: to, EmailsSent: len(to)}, nil
}
