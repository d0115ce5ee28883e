// Copyright (c) 2025 Cazou Vilela
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	platformconfig "github.com/CazouVilela/webhook/internal/platform/config"
	"github.com/CazouVilela/webhook/internal/testutil"
	"github.com/CazouVilela/webhook/webhook/models"
)

func testConfig(t *testing.T) *platformconfig.Config {
	t.Helper()
	cfg, err := platformconfig.LoadFromMap(map[string]string{
		"MAIL_USERNAME":           "mailer@example.com",
		"MAIL_PASSWORD":           "secret",
		"DEFAULT_RECIPIENT_EMAIL": "fallback@example.com",
	})
	require.NoError(t, err)
	return cfg
}

func fixedClockService(t *testing.T, sender *testutil.FakeEmailSender) NotificationService {
	t.Helper()
	svc := NewNotificationService(sender, testConfig(t)).(*notificationService)
	svc.now = func() time.Time { return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC) }
	return svc
}

func TestNotifySendsEmail(t *testing.T) {
	t.Parallel()

	sender := testutil.NewFakeEmailSender()
	svc := fixedClockService(t, sender)

	count, err := svc.Notify(context.Background(), models.Notification{
		OriginIP:   "203.0.113.7",
		Headers:    map[string][]string{"Content-Type": {"application/json"}},
		Data:       map[string]interface{}{"evento": "deploy"},
		Recipients: []string{"team@example.com"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, count)

	sent := sender.LastSent()
	require.NotNil(t, sent)
	require.Equal(t, "📢 [Webhook] Notificação - 14/03/2025 09:26:53", sent.Subject)
	require.Equal(t, []string{"team@example.com"}, sent.To)
	require.Equal(t, "mailer@example.com", sent.From)
	require.Contains(t, sent.HTMLBody, "203.0.113.7")
	require.Contains(t, sent.HTMLBody, `"evento": "deploy"`)
	require.Contains(t, sent.HTMLBody, "Content-Type")
	require.Contains(t, sent.TextBody, "IP de Origem: 203.0.113.7")
}

func TestNotifyWithActionSubject(t *testing.T) {
	t.Parallel()

	sender := testutil.NewFakeEmailSender()
	svc := fixedClockService(t, sender)

	_, err := svc.Notify(context.Background(), models.Notification{
		Action:         "failed",
		ConnectionName: "Postgres Sync",
		Recipients:     []string{"ops@example.com"},
		Data:           map[string]interface{}{},
	})
	require.NoError(t, err)
	require.Equal(t, "🔴 [FALHA] Postgres Sync - 14/03/2025 09:26:53", sender.LastSent().Subject)
	require.Contains(t, sender.LastSent().HTMLBody, "#FF4444")
	require.Contains(t, sender.LastSent().HTMLBody, "Ação: FALHA")
	require.Contains(t, sender.LastSent().HTMLBody, "Conexão: Postgres Sync")
}

func TestNotifyWithActionNoConnection(t *testing.T) {
	t.Parallel()

	sender := testutil.NewFakeEmailSender()
	svc := fixedClockService(t, sender)

	_, err := svc.Notify(context.Background(), models.Notification{
		Action:     "alerta",
		Recipients: []string{"ops@example.com"},
		Data:       map[string]interface{}{},
	})
	require.NoError(t, err)
	require.Equal(t, "🚨 [ALERTA] Webhook - 14/03/2025 09:26:53", sender.LastSent().Subject)
}

func TestNotifyStripsRecipientFields(t *testing.T) {
	t.Parallel()

	sender := testutil.NewFakeEmailSender()
	svc := fixedClockService(t, sender)

	data := map[string]interface{}{
		"email":  "team@example.com",
		"evento": "deploy",
	}
	_, err := svc.Notify(context.Background(), models.Notification{
		Data:       data,
		Recipients: []string{"team@example.com"},
	})
	require.NoError(t, err)

	require.NotContains(t, sender.LastSent().HTMLBody, `"email"`)
	require.Contains(t, sender.LastSent().HTMLBody, `"evento": "deploy"`)

	// The caller's payload stays untouched.
	require.Contains(t, data, "email")
}

func TestNotifyNoSender(t *testing.T) {
	t.Parallel()

	svc := NewNotificationService(nil, testConfig(t))
	_, err := svc.Notify(context.Background(), models.Notification{Recipients: []string{"a@example.com"}})
	require.ErrorIs(t, err, ErrNoSender)
}

func TestNotifySendFailure(t *testing.T) {
	t.Parallel()

	sender := testutil.NewFailingEmailSender("smtp down")
	svc := fixedClockService(t, sender)

	_, err := svc.Notify(context.Background(), models.Notification{Recipients: []string{"a@example.com"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "smtp down")
}

func TestSendTestEmail(t *testing.T) {
	t.Parallel()

	sender := testutil.NewFakeEmailSender()
	svc := fixedClockService(t, sender)

	require.NoError(t, svc.SendTestEmail(context.Background(), "probe@example.com"))

	sent := sender.LastSent()
	require.Equal(t, "✅ Teste de Email - Webhook Server", sent.Subject)
	require.Equal(t, []string{"probe@example.com"}, sent.To)
	require.Contains(t, sent.HTMLBody, "Teste Bem-Sucedido!")
	require.Contains(t, sent.HTMLBody, "smtp.gmail.com")
	require.Contains(t, sent.HTMLBody, "mailer@example.com")
	require.Contains(t, sent.TextBody, "Timestamp: 14/03/2025 09:26:53")
}

func TestSendTestEmailNoSender(t *testing.T) {
	t.Parallel()

	svc := NewNotificationService(nil, testConfig(t))
	require.ErrorIs(t, svc.SendTestEmail(context.Background(), "probe@example.com"), ErrNoSender)
}
