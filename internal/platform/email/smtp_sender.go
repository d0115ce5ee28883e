package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strings"

	platformconfig "github.com/CazouVilela/webhook/internal/platform/config"
)

// SMTPSender is the production implementation of the Sender interface.
// One call to Send performs one SMTP transaction addressed to every
// recipient of the message; it never fans out into per-recipient sends.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	useSSL   bool
}

// NewSMTPSender creates a new SMTP sender from the mail configuration.
// Host and port are required. When UseSSL is set the connection is opened
// over implicit TLS; otherwise STARTTLS is negotiated by net/smtp when the
// server offers it.
func NewSMTPSender(cfg platformconfig.MailConfig) (*SMTPSender, error) {
	if cfg.Server == "" || cfg.Port == 0 {
		return nil, fmt.Errorf("SMTP host and port are required")
	}
	return &SMTPSender{
		host:     cfg.Server,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		useSSL:   cfg.UseSSL,
	}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("message has no recipients")
	}
	if msg.From == "" {
		return fmt.Errorf("message has no sender address")
	}

	raw, err := buildMIME(msg)
	if err != nil {
		return fmt.Errorf("failed to build message: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	if s.useSSL {
		return s.sendImplicitTLS(addr, auth, msg.From, msg.To, raw)
	}
	return smtp.SendMail(addr, auth, msg.From, msg.To, raw)
}

// sendImplicitTLS delivers over a TLS connection opened before the SMTP
// dialogue starts (SMTPS, typically port 465).
func (s *SMTPSender) sendImplicitTLS(addr string, auth smtp.Auth, from string, to []string, raw []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.host})
	if err != nil {
		return fmt.Errorf("failed to dial %s: %w", addr, err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return fmt.Errorf("failed to start SMTP session: %w", err)
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP auth failed: %w", err)
		}
	}
	if err := client.Mail(from); err != nil {
		return fmt.Errorf("MAIL FROM rejected: %w", err)
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("RCPT TO %s rejected: %w", rcpt, err)
		}
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA rejected: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("failed to write message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message body: %w", err)
	}
	return client.Quit()
}

// buildMIME assembles an RFC 822 message. With both bodies present it emits
// multipart/alternative with the plain text part first, so clients that
// cannot render HTML fall back cleanly.
func buildMIME(msg Message) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", msg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", msg.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")

	if msg.TextBody == "" {
		buf.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
		buf.WriteString(msg.HTMLBody)
		return buf.Bytes(), nil
	}

	writer := multipart.NewWriter(&buf)
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", writer.Boundary())

	text, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type": {`text/plain; charset="UTF-8"`},
	})
	if err != nil {
		return nil, err
	}
	if _, err := text.Write([]byte(msg.TextBody)); err != nil {
		return nil, err
	}

	html, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type": {`text/html; charset="UTF-8"`},
	})
	if err != nil {
		return nil, err
	}
	if _, err := html.Write([]byte(msg.HTMLBody)); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
