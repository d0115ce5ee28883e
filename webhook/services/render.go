// Copyright (c) 2025 Cazou Vilela
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/CazouVilela/webhook/internal/pkg/content"
	"github.com/CazouVilela/webhook/webhook/models"
)

// renderNotificationEmail builds the subject, HTML body and plain-text body
// of a generic webhook notification. cleaned is the payload with recipient
// routing fields already stripped.
func renderNotificationEmail(n models.Notification, cleaned map[string]interface{}, configuredBy string, now time.Time) (subject, htmlBody, textBody string) {
	timestamp := now.Format("02/01/2006 15:04:05")

	headerEmoji := "🔔"
	actionLabel := ""
	if n.Action != "" {
		meta := models.ClassifyAction(n.Action)
		headerEmoji = meta.Emoji
		actionLabel = meta.Label
		if n.ConnectionName != "" {
			subject = fmt.Sprintf("%s [%s] %s - %s", meta.Emoji, meta.Label, n.ConnectionName, timestamp)
		} else {
			subject = fmt.Sprintf("%s [%s] Webhook - %s", meta.Emoji, meta.Label, timestamp)
		}
	} else {
		subject = fmt.Sprintf("📢 [Webhook] Notificação - %s", timestamp)
	}

	headerColor := models.HeaderColor(n.Action)

	actionLine := ""
	if n.Action != "" {
		actionLine = fmt.Sprintf(`<p style="margin: 10px 0 0 0; font-size: 16px; opacity: 0.95;">Ação: %s</p>`, actionLabel)
	}
	connectionLine := ""
	if n.ConnectionName != "" {
		connectionLine = fmt.Sprintf(`<p style="margin: 5px 0 0 0; font-size: 14px; opacity: 0.9;">Conexão: %s</p>`, n.ConnectionName)
	}
	actionRow := ""
	if n.Action != "" {
		actionRow = fmt.Sprintf(`
                            <tr>
                                <td style="padding: 8px 0; color: #666;"><strong>⚡ Ação:</strong></td>
                                <td style="padding: 8px 0; color: #333; font-weight: bold;">%s</td>
                            </tr>`, n.Action)
	}

	htmlBody = fmt.Sprintf(`<html>
<body style="font-family: 'Segoe UI', Arial, sans-serif; background-color: #f5f5f5; padding: 20px; margin: 0;">
    <div style="max-width: 800px; margin: 0 auto; background: white; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); overflow: hidden;">

        <div style="background: linear-gradient(135deg, %[1]s 0%%, %[1]sCC 100%%); color: white; padding: 30px;">
            <h1 style="margin: 0; font-size: 28px;">
                %[2]s Notificação de Webhook
            </h1>
            %[3]s
            %[4]s
        </div>

        <div style="padding: 30px;">
            <div style="background-color: #f9f9f9; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
                <h3 style="color: #333; margin-top: 0;">📊 Informações Gerais</h3>
                <table style="width: 100%%; font-size: 14px;">
                    <tr>
                        <td style="padding: 8px 0; color: #666;"><strong>📅 Data/Hora:</strong></td>
                        <td style="padding: 8px 0; color: #333;">%[5]s</td>
                    </tr>
                    <tr>
                        <td style="padding: 8px 0; color: #666;"><strong>🌐 IP de Origem:</strong></td>
                        <td style="padding: 8px 0; color: #333;">%[6]s</td>
                    </tr>
                    %[7]s
                    <tr>
                        <td style="padding: 8px 0; color: #666;"><strong>📧 Enviado para:</strong></td>
                        <td style="padding: 8px 0; color: #333;">%[8]s</td>
                    </tr>
                </table>
            </div>

            <div style="background-color: #f0f8ff; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
                <h3 style="color: #333; margin-top: 0;">📦 Dados Recebidos</h3>
                <pre style="background-color: #fff; padding: 15px; border: 1px solid #ddd; border-radius: 5px; overflow-x: auto; font-family: 'Courier New', monospace; font-size: 13px; max-height: 400px; overflow-y: auto;">
%[9]s
                </pre>
            </div>

            <details style="margin-bottom: 20px;">
                <summary style="cursor: pointer; color: #667eea; font-weight: bold; padding: 10px; background: #f5f5f5; border-radius: 5px;">
                    🔧 Headers da Requisição (clique para expandir)
                </summary>
                <pre style="background-color: #f5f5f5; padding: 15px; border-radius: 5px; margin-top: 10px; font-size: 12px; overflow-x: auto;">
%[10]s
                </pre>
            </details>

            <hr style="border: none; border-top: 1px solid #ddd; margin: 30px 0 20px 0;">

            <p style="color: #888; font-size: 12px; text-align: center; margin: 0;">
                Este é um email automático enviado pelo Webhook Server.<br>
                Configurado por: %[11]s
            </p>
        </div>

    </div>
</body>
</html>`,
		headerColor,
		headerEmoji,
		actionLine,
		connectionLine,
		timestamp,
		n.OriginIP,
		actionRow,
		strings.Join(n.Recipients, ", "),
		content.PrettyJSON(cleaned),
		content.PrettyJSON(n.Headers),
		configuredBy,
	)

	var b strings.Builder
	b.WriteString("Notificação de Webhook\n\n")
	fmt.Fprintf(&b, "Data/Hora: %s\n", timestamp)
	fmt.Fprintf(&b, "IP de Origem: %s\n", n.OriginIP)
	if n.Action != "" {
		fmt.Fprintf(&b, "Ação: %s\n", n.Action)
	}
	if n.ConnectionName != "" {
		fmt.Fprintf(&b, "Conexão: %s\n", n.ConnectionName)
	}
	fmt.Fprintf(&b, "Enviado para: %s\n\n", strings.Join(n.Recipients, ", "))
	b.WriteString("Dados Recebidos:\n")
	b.WriteString(content.PrettyJSON(cleaned))
	b.WriteString("\n")
	textBody = b.String()

	return subject, htmlBody, textBody
}

// renderTestEmail builds the configuration check email.
func renderTestEmail(mailServer, configuredBy string, now time.Time) (subject, htmlBody, textBody string) {
	timestamp := now.Format("02/01/2006 15:04:05")

	subject = "✅ Teste de Email - Webhook Server"

	htmlBody = fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #4CAF50;">✅ Teste Bem-Sucedido!</h2>
        <p>Este é um email de teste do seu webhook server.</p>
        <p>Se você recebeu este email, a configuração está correta!</p>
        <hr style="border: none; border-top: 1px solid #ddd;">
        <h3>Informações da Configuração:</h3>
        <ul>
            <li><strong>Servidor SMTP:</strong> %s</li>
            <li><strong>Remetente:</strong> %s</li>
            <li><strong>Timestamp:</strong> %s</li>
        </ul>
        <p style="color: #888; font-size: 12px;">
            Webhook Server configurado e funcionando corretamente!
        </p>
    </div>
</body>
</html>`, mailServer, configuredBy, timestamp)

	textBody = fmt.Sprintf(`Teste de Email - Webhook Server

Este é um email de teste do seu webhook server.
Se você recebeu este email, a configuração está correta!

Servidor SMTP: %s
Remetente: %s
Timestamp: %s
`, mailServer, configuredBy, timestamp)

	return subject, htmlBody, textBody
}
