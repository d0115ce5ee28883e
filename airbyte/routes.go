// Copyright (c) 2025 Cazou Vilela
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package airbyte

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/CazouVilela/webhook/airbyte/handlers"
	"github.com/CazouVilela/webhook/internal/middleware/webhooksecret"
	platformconfig "github.com/CazouVilela/webhook/internal/platform/config"
)

// AirbyteHandlers holds all the handlers this router needs
type AirbyteHandlers struct {
	AirbyteHandler *handlers.AirbyteHandler
}

// RegisterRoutes is the single entry point for setting up Airbyte routes.
//
// Token verification here is lenient: a rejected caller still gets a 200
// acknowledgment with a note, because Airbyte retries any non-200 answer.
// GET probes skip verification entirely.
func RegisterRoutes(app *fiber.App, h *AirbyteHandlers, cfg *platformconfig.Config) {
	secretMiddleware := webhooksecret.New(webhooksecret.Config{
		Secret: cfg.Webhook.Secret,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodGet
		},
		Unauthorized: func(c *fiber.Ctx) error {
			return c.Status(http.StatusOK).JSON(fiber.Map{
				"status": "success",
				"note":   "token invalid",
			})
		},
	})

	// The connectivity probe takes no token and must be registered before
	// the event parameter route so "test" is never captured as an event type.
	app.Get("/airbyte/test", h.AirbyteHandler.Test)
	app.Post("/airbyte/test", h.AirbyteHandler.Test)

	group := app.Group("/airbyte", secretMiddleware)
	group.Get("/:event", h.AirbyteHandler.Event)
	group.Post("/:event", h.AirbyteHandler.Event)
}
