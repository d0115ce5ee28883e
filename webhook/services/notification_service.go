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

	"github.com/CazouVilela/webhook/internal/pkg/log"
	"github.com/CazouVilela/webhook/internal/pkg/recipients"
	platformconfig "github.com/CazouVilela/webhook/internal/platform/config"
	"github.com/CazouVilela/webhook/internal/platform/email"
	"github.com/CazouVilela/webhook/webhook/models"
)

// ErrNoSender is returned when the service was wired without an email sender.
var ErrNoSender = errors.New("email sender not configured")

// NotificationService dispatches generic webhook notification emails.
type NotificationService interface {
	// Notify renders and sends the notification email for one received
	// webhook, returning the number of addresses it was delivered to.
	Notify(ctx context.Context, n models.Notification) (int, error)

	// SendTestEmail sends the configuration check email to addr.
	SendTestEmail(ctx context.Context, addr string) error
}

type notificationService struct {
	sender       email.Sender
	from         string
	configuredBy string
	mailServer   string
	now          func() time.Time
}

// NewNotificationService creates a new instance of the notification service.
func NewNotificationService(sender email.Sender, cfg *platformconfig.Config) NotificationService {
	return &notificationService{
		sender:       sender,
		from:         cfg.Mail.DefaultSender,
		configuredBy: cfg.Mail.Username,
		mailServer:   cfg.Mail.Server,
		now:          time.Now,
	}
}

func (s *notificationService) Notify(ctx context.Context, n models.Notification) (int, error) {
	if s.sender == nil {
		return 0, ErrNoSender
	}

	// Recipient fields are routing metadata, not payload content.
	cleaned := recipients.Strip(n.Data)

	subject, htmlBody, textBody := renderNotificationEmail(n, cleaned, s.configuredBy, s.now())

	msg := email.Message{
		From:     s.from,
		To:       n.Recipients,
		Subject:  subject,
		HTMLBody: htmlBody,
		TextBody: textBody,
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		return 0, fmt.Errorf("failed to send notification: %w", err)
	}

	log.InfoWithContext(ctx, "Email enviado com sucesso para %d destinatário(s): %s",
		len(n.Recipients), strings.Join(n.Recipients, ", "))

	return len(n.Recipients), nil
}

func (s *notificationService) SendTestEmail(ctx context.Context, addr string) error {
	if s.sender == nil {
		return ErrNoSender
	}

	subject, htmlBody, textBody := renderTestEmail(s.mailServer, s.configuredBy, s.now())

	msg := email.Message{
		From:     s.from,
		To:       []string{addr},
		Subject:  subject,
		HTMLBody: htmlBody,
		TextBody: textBody,
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send test email: %w", err)
	}

	log.InfoWithContext(ctx, "Email de teste enviado para: %s", addr)
	return nil
}
