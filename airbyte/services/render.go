// Copyright (c) 2025 Cazou Vilela
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/CazouVilela/webhook/airbyte/models"
	"github.com/CazouVilela/webhook/internal/pkg/content"
)

const textDivider = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// RenderSyncEmail builds the subject, HTML body and plain-text body of a
// detailed sync notification. It tolerates any payload shape: missing fields
// render as placeholders and never abort the email.
func RenderSyncEmail(eventType string, data models.SyncPayload, configuredBy string, now time.Time) (subject, htmlBody, textBody string) {
	meta := models.Classify(eventType)

	workspace := data.Entity("workspace")
	connection := data.Entity("connection")
	source := data.Entity("source")
	destination := data.Entity("destination")

	recordsEmitted := data.Int("recordsEmitted")
	recordsCommitted := data.Int("recordsCommitted")
	bytesEmitted := data.Bytes("bytesEmittedFormatted", "bytesEmitted")
	bytesCommitted := data.Bytes("bytesCommittedFormatted", "bytesCommitted")

	success := data.Success()
	errorMessage := data.String("errorMessage")
	errorType := data.String("errorType")
	errorOrigin := data.String("errorOrigin")

	timestamp := now.Format("02/01/2006 15:04:05")

	connectionName := connection.Name
	if connectionName == "" {
		connectionName = "Conexão Desconhecida"
	}
	subject = fmt.Sprintf("%s [%s] %s - %s", meta.Emoji, meta.Label, connectionName, timestamp)

	dataLoss := renderDataLossBanner(recordsEmitted, recordsCommitted)

	errorSection := ""
	if eventType == "failed" || !success || errorMessage != "" {
		errorSection = renderErrorSection(errorMessage, errorType, errorOrigin, source, destination)
	}

	connectionButton := ""
	if connection.URL != "" {
		connectionButton = fmt.Sprintf(`
            <div style="margin-top: 15px; text-align: center;">
                <a href="%s"
                   style="display: inline-block; background: %s; color: white; padding: 10px 20px;
                          text-decoration: none; border-radius: 5px; font-weight: bold;">
                    🔗 Ver Conexão no Airbyte
                </a>
            </div>`, connection.URL, meta.Color)
	}

	var quickLinks strings.Builder
	if workspace.URL != "" {
		fmt.Fprintf(&quickLinks, `<a href="%s" style="flex: 1; min-width: 150px; background: white; color: #007BFF; padding: 12px; text-align: center; text-decoration: none; border-radius: 5px; border: 2px solid #007BFF; font-weight: bold;">🏢 Workspace</a>`, workspace.URL)
	}
	if source.URL != "" {
		fmt.Fprintf(&quickLinks, `<a href="%s" style="flex: 1; min-width: 150px; background: white; color: #28A745; padding: 12px; text-align: center; text-decoration: none; border-radius: 5px; border: 2px solid #28A745; font-weight: bold;">📥 Fonte</a>`, source.URL)
	}
	if destination.URL != "" {
		fmt.Fprintf(&quickLinks, `<a href="%s" style="flex: 1; min-width: 150px; background: white; color: #DC3545; padding: 12px; text-align: center; text-decoration: none; border-radius: 5px; border: 2px solid #DC3545; font-weight: bold;">📤 Destino</a>`, destination.URL)
	}

	statusBackground, statusColor, statusLabel := "#D4EDDA", "#155724", "✅ Sucesso"
	if !success {
		statusBackground, statusColor, statusLabel = "#F8D7DA", "#721C24", "❌ Falha"
	}

	htmlBody = fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 20px; background: #F5F7FA;">
    <div style="max-width: 800px; margin: 0 auto; background: white; border-radius: 10px; overflow: hidden; box-shadow: 0 4px 6px rgba(0,0,0,0.1);">

        <div style="background: linear-gradient(135deg, %[1]s 0%%, %[1]sDD 100%%); color: white; padding: 30px; text-align: center;">
            <h1 style="margin: 0; font-size: 32px;">
                %[2]s Airbyte Notification
            </h1>
            <h2 style="margin: 10px 0 0 0; font-size: 20px; font-weight: normal; opacity: 0.95;">
                %[3]s
            </h2>
            <div style="background: rgba(255,255,255,0.2); display: inline-block; padding: 8px 16px; border-radius: 20px; margin-top: 15px;">
                <span style="font-size: 14px; font-weight: bold;">Prioridade: %[4]s</span>
            </div>
        </div>

        <div style="padding: 30px;">

            <div style="background: #F8F9FA; padding: 20px; border-radius: 8px; margin-bottom: 25px; border-left: 4px solid %[1]s;">
                <h3 style="color: #333; margin-top: 0; display: flex; align-items: center;">
                    🔗 Informações da Conexão
                </h3>
                <table style="width: 100%%; font-size: 14px;">
                    <tr>
                        <td style="padding: 8px 0; color: #666; width: 30%%;"><strong>Nome:</strong></td>
                        <td style="padding: 8px 0; color: #333; font-weight: bold; font-size: 16px;">%[5]s</td>
                    </tr>
                    <tr>
                        <td style="padding: 8px 0; color: #666;"><strong>📥 Fonte:</strong></td>
                        <td style="padding: 8px 0; color: #333;">%[6]s</td>
                    </tr>
                    <tr>
                        <td style="padding: 8px 0; color: #666;"><strong>📤 Destino:</strong></td>
                        <td style="padding: 8px 0; color: #333;">%[7]s</td>
                    </tr>
                    <tr>
                        <td style="padding: 8px 0; color: #666;"><strong>🏢 Workspace:</strong></td>
                        <td style="padding: 8px 0; color: #333;">%[8]s</td>
                    </tr>
                    <tr>
                        <td style="padding: 8px 0; color: #666;"><strong>🔢 Job ID:</strong></td>
                        <td style="padding: 8px 0; color: #333; font-family: monospace;">%[9]s</td>
                    </tr>
                </table>
                %[10]s
            </div>

            %[11]s

            %[12]s

            <div style="background: #E7F3FF; padding: 20px; border-radius: 8px; margin: 25px 0;">
                <h3 style="color: #333; margin-top: 0;">📊 Métricas de Sincronização</h3>

                <div style="display: grid; grid-template-columns: 1fr 1fr; gap: 20px; margin-bottom: 20px;">
                    <div style="background: white; padding: 15px; border-radius: 5px; text-align: center; box-shadow: 0 2px 4px rgba(0,0,0,0.05);">
                        <div style="color: #666; font-size: 12px; text-transform: uppercase; margin-bottom: 5px;">📝 Registros</div>
                        <div style="font-size: 28px; font-weight: bold; color: #007BFF; margin: 10px 0;">%[13]s</div>
                        <div style="color: #999; font-size: 12px;">de %[14]s emitidos</div>
                    </div>

                    <div style="background: white; padding: 15px; border-radius: 5px; text-align: center; box-shadow: 0 2px 4px rgba(0,0,0,0.05);">
                        <div style="color: #666; font-size: 12px; text-transform: uppercase; margin-bottom: 5px;">💾 Volume</div>
                        <div style="font-size: 28px; font-weight: bold; color: #28A745; margin: 10px 0;">%[15]s</div>
                        <div style="color: #999; font-size: 12px;">de %[16]s emitidos</div>
                    </div>
                </div>

                <table style="width: 100%%; font-size: 14px; background: white; border-radius: 5px; padding: 15px;">
                    <tr>
                        <td style="padding: 10px; color: #666;"><strong>⏰ Início:</strong></td>
                        <td style="padding: 10px; color: #333;">%[17]s</td>
                    </tr>
                    <tr>
                        <td style="padding: 10px; color: #666;"><strong>✅ Término:</strong></td>
                        <td style="padding: 10px; color: #333;">%[18]s</td>
                    </tr>
                    <tr>
                        <td style="padding: 10px; color: #666;"><strong>⏱️ Duração:</strong></td>
                        <td style="padding: 10px; color: #333; font-weight: bold;">%[19]s</td>
                    </tr>
                    <tr>
                        <td style="padding: 10px; color: #666;"><strong>✔️ Status:</strong></td>
                        <td style="padding: 10px;">
                            <span style="background: %[20]s; color: %[21]s; padding: 5px 15px; border-radius: 15px; font-weight: bold;">%[22]s</span>
                        </td>
                    </tr>
                </table>
            </div>

            <div style="background: #FFF9E6; padding: 20px; border-radius: 8px; margin: 25px 0; border-left: 4px solid #FFC107;">
                <h3 style="color: #333; margin-top: 0;">🔗 Links Rápidos</h3>
                <div style="display: flex; flex-wrap: wrap; gap: 10px;">
                    %[23]s
                </div>
            </div>

            <details style="margin: 25px 0;">
                <summary style="cursor: pointer; color: #007BFF; font-weight: bold; padding: 15px; background: #F8F9FA; border-radius: 5px; border: 1px solid #DEE2E6;">
                    🔍 Payload Completo do Webhook (clique para expandir)
                </summary>
                <pre style="background: #F8F9FA; padding: 20px; border-radius: 5px; margin-top: 10px; font-size: 12px; overflow-x: auto; border: 1px solid #DEE2E6; max-height: 400px; overflow-y: auto;">
%[24]s
                </pre>
            </details>

            <hr style="border: none; border-top: 2px solid #E9ECEF; margin: 30px 0 20px 0;">

            <div style="text-align: center; color: #6C757D; font-size: 12px;">
                <p style="margin: 5px 0;">
                    🤖 Notificação automática gerada por <strong>Airbyte Webhook Server</strong>
                </p>
                <p style="margin: 5px 0;">
                    📧 Configurado por: <strong>%[25]s</strong>
                </p>
                <p style="margin: 5px 0;">
                    🕐 Recebido em: <strong>%[26]s</strong>
                </p>
            </div>

        </div>

    </div>
</body>
</html>`,
		meta.Color,
		meta.Emoji,
		meta.Label,
		meta.Priority,
		connection.DisplayName(),
		source.DisplayName(),
		destination.DisplayName(),
		workspace.DisplayName(),
		data.Scalar("jobId"),
		connectionButton,
		errorSection,
		dataLoss,
		models.GroupThousands(recordsCommitted),
		models.GroupThousands(recordsEmitted),
		bytesCommitted,
		bytesEmitted,
		data.Scalar("startedAt"),
		data.Scalar("finishedAt"),
		data.Duration(),
		statusBackground,
		statusColor,
		statusLabel,
		quickLinks.String(),
		content.PrettyJSON(map[string]interface{}(data)),
		configuredBy,
		timestamp,
	)

	textBody = renderSyncText(meta, data, connection, source, destination, workspace,
		recordsEmitted, recordsCommitted, bytesEmitted, bytesCommitted, timestamp)

	return subject, htmlBody, textBody
}

func renderDataLossBanner(emitted, committed int64) string {
	if emitted <= 0 || committed >= emitted {
		return ""
	}
	lossPercentage := float64(emitted-committed) / float64(emitted) * 100
	return fmt.Sprintf(`
            <div style="background: #FFF3CD; border-left: 4px solid #FFC107; padding: 15px; margin: 20px 0; border-radius: 4px;">
                <h4 style="margin: 0 0 10px 0; color: #856404;">⚠️ Perda de Dados Detectada</h4>
                <p style="margin: 0; color: #856404;">
                    <strong>%s registros</strong> não foram confirmados
                    (%.1f%% de perda)
                </p>
            </div>`, models.GroupThousands(emitted-committed), lossPercentage)
}

func renderErrorSection(errorMessage, errorType, errorOrigin string, source, destination models.Entity) string {
	category := models.ClassifyError(errorType)

	originRow := ""
	if errorOrigin != "" {
		originIcon, originName := "📤", destination.Name
		if errorOrigin == "source" {
			originIcon, originName = "📥", source.Name
		}
		if originName == "" {
			if errorOrigin == "source" {
				originName = "Fonte"
			} else {
				originName = "Destino"
			}
		}
		originRow = fmt.Sprintf(`
                    <tr>
                        <td style="padding: 10px; color: #666;"><strong>%s Origem do Erro:</strong></td>
                        <td style="padding: 10px; color: #333;"><strong>%s</strong> (%s)</td>
                    </tr>`, originIcon, originName, errorOrigin)
	}

	if errorMessage == "" {
		errorMessage = "Erro sem mensagem específica"
	}
	if errorType == "" {
		errorType = "Não especificado"
	}

	return fmt.Sprintf(`
            <div style="background: #F8D7DA; border-left: 5px solid #DC3545; padding: 20px; margin: 25px 0; border-radius: 5px;">
                <h3 style="color: #721C24; margin-top: 0;">
                    %s %s
                </h3>
                <table style="width: 100%%; font-size: 14px;">
                    <tr>
                        <td style="padding: 10px; color: #666; width: 30%%;"><strong>📝 Mensagem:</strong></td>
                        <td style="padding: 10px; color: #333; font-weight: bold;">%s</td>
                    </tr>
                    <tr>
                        <td style="padding: 10px; color: #666;"><strong>🏷️ Tipo de Erro:</strong></td>
                        <td style="padding: 10px; color: #333;">%s</td>
                    </tr>
                    %s
                    <tr>
                        <td style="padding: 10px; color: #666;"><strong>💡 Descrição:</strong></td>
                        <td style="padding: 10px; color: #555; font-style: italic;">%s</td>
                    </tr>
                    <tr>
                        <td style="padding: 10px; color: #666;"><strong>🔧 Ação Recomendada:</strong></td>
                        <td style="padding: 10px; color: #333; background: #FFF3CD; border-radius: 3px;">%s</td>
                    </tr>
                </table>
            </div>`,
		category.Icon, category.Title, errorMessage, errorType, originRow,
		category.Description, category.Action)
}

func renderSyncText(meta models.EventMeta, data models.SyncPayload,
	connection, source, destination, workspace models.Entity,
	recordsEmitted, recordsCommitted int64, bytesEmitted, bytesCommitted, timestamp string) string {

	statusLabel := "Sucesso"
	if !data.Success() {
		statusLabel = "Falha"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s AIRBYTE NOTIFICATION - %s\n", meta.Emoji, meta.Label)
	fmt.Fprintf(&b, "Prioridade: %s\n\n", meta.Priority)

	b.WriteString(textDivider + "\n")
	b.WriteString("CONEXÃO\n")
	b.WriteString(textDivider + "\n")
	fmt.Fprintf(&b, "Nome: %s\n", connection.DisplayName())
	fmt.Fprintf(&b, "Fonte: %s\n", source.DisplayName())
	fmt.Fprintf(&b, "Destino: %s\n", destination.DisplayName())
	fmt.Fprintf(&b, "Workspace: %s\n", workspace.DisplayName())
	fmt.Fprintf(&b, "Job ID: %s\n\n", data.Scalar("jobId"))

	if errorMessage := data.String("errorMessage"); errorMessage != "" {
		b.WriteString(textDivider + "\n")
		b.WriteString("ERRO\n")
		b.WriteString(textDivider + "\n")
		fmt.Fprintf(&b, "Mensagem: %s\n", errorMessage)
		if errorType := data.String("errorType"); errorType != "" {
			fmt.Fprintf(&b, "Tipo: %s\n", errorType)
		}
		if errorOrigin := data.String("errorOrigin"); errorOrigin != "" {
			fmt.Fprintf(&b, "Origem: %s\n", errorOrigin)
		}
		b.WriteString("\n")
	}

	b.WriteString(textDivider + "\n")
	b.WriteString("MÉTRICAS\n")
	b.WriteString(textDivider + "\n")
	fmt.Fprintf(&b, "Registros: %s de %s\n", models.GroupThousands(recordsCommitted), models.GroupThousands(recordsEmitted))
	fmt.Fprintf(&b, "Volume: %s de %s\n", bytesCommitted, bytesEmitted)
	fmt.Fprintf(&b, "Duração: %s\n", data.Duration())
	fmt.Fprintf(&b, "Status: %s\n\n", statusLabel)
	fmt.Fprintf(&b, "Início: %s\n", data.Scalar("startedAt"))
	fmt.Fprintf(&b, "Término: %s\n\n", data.Scalar("finishedAt"))

	b.WriteString(textDivider + "\n\n")
	b.WriteString("Notificação automática do Airbyte Webhook Server\n")
	fmt.Fprintf(&b, "Recebido em: %s\n", timestamp)

	return b.String()
}
