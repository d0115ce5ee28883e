// Copyright (c) 2025 Cazou Vilela
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package webhook

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CazouVilela/webhook/internal/middleware/webhooksecret"
	platformconfig "github.com/CazouVilela/webhook/internal/platform/config"
	"github.com/CazouVilela/webhook/webhook/handlers"
)

// WebhookHandlers holds all the handlers this router needs
type WebhookHandlers struct {
	WebhookHandler *handlers.WebhookHandler
}

// RegisterRoutes is the single entry point for setting up the generic
// webhook routes. Only the notification-producing POST endpoints require the
// shared secret; status, documentation and the email test stay open.
func RegisterRoutes(app *fiber.App, h *WebhookHandlers, cfg *platformconfig.Config) {
	secretMiddleware := webhooksecret.New(webhooksecret.Config{
		Secret: cfg.Webhook.Secret,
	})

	app.Get("/", h.WebhookHandler.Home)
	app.Get("/help", h.WebhookHandler.Help)

	app.Post("/webhook", secretMiddleware, h.WebhookHandler.Receive)
	app.Post("/webhook/:action", secretMiddleware, h.WebhookHandler.ReceiveAction)

	app.Get("/test-email", h.WebhookHandler.TestEmail)
	app.Post("/test-email", h.WebhookHandler.TestEmail)
}
