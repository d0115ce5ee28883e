// Copyright (c) 2025 Cazou Vilela
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	"github.com/CazouVilela/webhook/internal/pkg/log"
	"github.com/CazouVilela/webhook/internal/pkg/recipients"
	"github.com/CazouVilela/webhook/webhook/errors"
	"github.com/CazouVilela/webhook/webhook/models"
	"github.com/CazouVilela/webhook/webhook/services"
)

// WebhookHandler handles the generic webhook endpoints.
type WebhookHandler struct {
	notificationService services.NotificationService
	defaultRecipient    string
}

// NewWebhookHandler creates a new WebhookHandler with injected dependencies.
func NewWebhookHandler(notificationService services.NotificationService, defaultRecipient string) *WebhookHandler {
	return &WebhookHandler{
		notificationService: notificationService,
		defaultRecipient:    defaultRecipient,
	}
}

// Home reports server liveness and the available endpoints.
// Endpoint: GET /
func (h *WebhookHandler) Home(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"status":    "online",
		"message":   "Webhook server está rodando",
		"timestamp": time.Now().Format(time.RFC3339),
		"endpoints": fiber.Map{
			"/":                 "Status do servidor",
			"/webhook":          "Endpoint principal (POST)",
			"/webhook/<action>": "Webhook com ação específica (POST)",
			"/test-email":       "Testar envio de email (GET)",
			"/help":             "Documentação de uso (GET)",
		},
	})
}

// Help documents how to call the webhook endpoints.
// Endpoint: GET /help
func (h *WebhookHandler) Help(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"description": "Webhook Server com Envio de Email",
		"usage": fiber.Map{
			"basic": fiber.Map{
				"url":    "/webhook",
				"method": "POST",
				"headers": fiber.Map{
					"Content-Type":     "application/json",
					"X-Webhook-Secret": "seu-token-secreto (ou use ?token=seu-token na URL)",
				},
				"body": fiber.Map{
					"email": "destino@example.com",
					"data":  "seus dados aqui",
				},
			},
			"with_action": fiber.Map{
				"url":         "/webhook/<action>",
				"method":      "POST",
				"description": "Substitua <action> pela ação desejada",
			},
			"airbyte_examples": fiber.Map{
				"failed":  "/webhook/failed?token=seu-token",
				"success": "/webhook/success?token=seu-token",
				"update":  "/webhook/update?token=seu-token",
			},
		},
	})
}

// Receive handles the main webhook endpoint.
// Endpoint: POST /webhook
func (h *WebhookHandler) Receive(c *fiber.Ctx) error {
	data := h.parseBody(c)

	notificationID := h.newNotificationID()
	log.InfoWithContext(c.Context(), "Webhook recebido [%s] de %s", notificationID, c.IP())

	to := recipients.Resolve(data, h.defaultRecipient)

	count, err := h.notificationService.Notify(c.Context(), models.Notification{
		OriginIP:   c.IP(),
		Headers:    c.GetReqHeaders(),
		Data:       data,
		Recipients: to,
	})
	if err != nil {
		log.ErrorWithContext(c.Context(), "Erro ao processar webhook [%s]: %s", notificationID, err.Error())
		return errors.HandleInternalError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"status":     "success",
		"message":    fmt.Sprintf("Webhook processado e email enviado para %d destinatário(s)", count),
		"recipients": to,
	})
}

// ReceiveAction handles webhooks that carry an action in the path.
// Endpoint: POST /webhook/:action
func (h *WebhookHandler) ReceiveAction(c *fiber.Ctx) error {
	action := c.Params("action")
	data := h.parseBody(c)

	notificationID := h.newNotificationID()
	log.InfoWithContext(c.Context(), "Webhook com ação %q recebido [%s]", action, notificationID)

	to := recipients.Resolve(data, h.defaultRecipient)

	count, err := h.notificationService.Notify(c.Context(), models.Notification{
		Action:         action,
		ConnectionName: models.ExtractConnectionName(data),
		OriginIP:       c.IP(),
		Headers:        c.GetReqHeaders(),
		Data:           data,
		Recipients:     to,
	})
	if err != nil {
		log.ErrorWithContext(c.Context(), "Erro ao processar webhook %s [%s]: %s", action, notificationID, err.Error())
		return errors.HandleInternalError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"status":     "success",
		"action":     action,
		"message":    fmt.Sprintf("Webhook %s processado para %d destinatário(s)", action, count),
		"recipients": to,
	})
}

// TestEmail sends the configuration check email.
// Endpoint: GET|POST /test-email
//
// The recipient can come from the email query parameter or, on POST, from an
// email field in the body. Without either, the configured default is used.
func (h *WebhookHandler) TestEmail(c *fiber.Ctx) error {
	addr := c.Query("email")

	if c.Method() == fiber.MethodPost {
		body := map[string]interface{}{}
		if err := c.BodyParser(&body); err == nil {
			if bodyAddr, ok := body["email"].(string); ok && bodyAddr != "" {
				addr = bodyAddr
			}
		}
	}

	if addr != "" && !recipients.IsValid(addr) {
		return errors.HandleInvalidEmailError(c, addr)
	}
	if addr == "" {
		addr = h.defaultRecipient
	}

	if err := h.notificationService.SendTestEmail(c.Context(), addr); err != nil {
		return errors.HandleInternalError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"status":    "success",
		"message":   fmt.Sprintf("Email de teste enviado para %s", addr),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// parseBody decodes the JSON body, treating malformed or absent bodies as an
// empty payload so a bad caller still produces a notification.
func (h *WebhookHandler) parseBody(c *fiber.Ctx) map[string]interface{} {
	data := map[string]interface{}{}
	if err := c.BodyParser(&data); err != nil {
		log.WarnWithContext(c.Context(), "unparseable webhook payload: %s", err.Error())
		return map[string]interface{}{}
	}
	return data
}

func (h *WebhookHandler) newNotificationID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return "unknown"
	}
	return id.String()
}
