package email

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	platformconfig "github.com/CazouVilela/webhook/internal/platform/config"
)

func TestNewSMTPSender_RequiresHostAndPort(t *testing.T) {
	t.Parallel()

	_, err := NewSMTPSender(platformconfig.MailConfig{Port: 587})
	require.Error(t, err)

	_, err = NewSMTPSender(platformconfig.MailConfig{Server: "smtp.example.com"})
	require.Error(t, err)

	sender, err := NewSMTPSender(platformconfig.MailConfig{Server: "smtp.example.com", Port: 587})
	require.NoError(t, err)
	require.NotNil(t, sender)
}

func TestSend_RejectsEmptyEnvelope(t *testing.T) {
	t.Parallel()

	sender, err := NewSMTPSender(platformconfig.MailConfig{Server: "smtp.example.com", Port: 587})
	require.NoError(t, err)

	err = sender.Send(context.Background(), Message{From: "a@b.com", Subject: "x", HTMLBody: "<p>x</p>"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no recipients")

	err = sender.Send(context.Background(), Message{To: []string{"a@b.com"}, Subject: "x", HTMLBody: "<p>x</p>"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no sender")
}

func TestBuildMIME_MultipartAlternative(t *testing.T) {
	t.Parallel()

	raw, err := buildMIME(Message{
		From:     "noreply@example.com",
		To:       []string{"a@b.com", "c@d.com"},
		Subject:  "✅ Teste de Email",
		HTMLBody: "<h1>olá</h1>",
		TextBody: "olá",
	})
	require.NoError(t, err)

	body := string(raw)
	require.Contains(t, body, "From: noreply@example.com\r\n")
	require.Contains(t, body, "To: a@b.com, c@d.com\r\n")
	require.Contains(t, body, "MIME-Version: 1.0\r\n")
	require.Contains(t, body, "multipart/alternative")
	require.Contains(t, body, `text/plain; charset="UTF-8"`)
	require.Contains(t, body, `text/html; charset="UTF-8"`)
	require.Contains(t, body, "<h1>olá</h1>")

	// non-ASCII subject must be RFC 2047 encoded
	require.NotContains(t, body, "Subject: ✅")
	require.Contains(t, body, "Subject: =?UTF-8?")

	// the plain text alternative must come before the HTML one
	require.Less(t, strings.Index(body, "text/plain"), strings.Index(body, "text/html"))
}

func TestBuildMIME_HTMLOnly(t *testing.T) {
	t.Parallel()

	raw, err := buildMIME(Message{
		From:     "noreply@example.com",
		To:       []string{"a@b.com"},
		Subject:  "plain subject",
		HTMLBody: "<p>hi</p>",
	})
	require.NoError(t, err)

	body := string(raw)
	require.Contains(t, body, `Content-Type: text/html; charset="UTF-8"`)
	require.NotContains(t, body, "multipart/alternative")
	require.Contains(t, body, "Subject: plain subject\r\n")
}
