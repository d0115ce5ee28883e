// Copyright (c) 2025 Cazou Vilela
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/CazouVilela/webhook/airbyte/services"
	"github.com/CazouVilela/webhook/internal/pkg/log"
)

// AirbyteHandler handles the Airbyte-optimized webhook endpoints.
type AirbyteHandler struct {
	syncService services.SyncService
}

// NewAirbyteHandler creates a new AirbyteHandler with injected dependencies.
func NewAirbyteHandler(syncService services.SyncService) *AirbyteHandler {
	return &AirbyteHandler{syncService: syncService}
}

// Event handles any Airbyte event notification.
// Endpoint: GET|POST /airbyte/:event
//
// Airbyte treats a non-200 answer as a delivery failure and retries, so this
// endpoint always acknowledges with 200 and reports processing problems
// inside the response body instead.
func (h *AirbyteHandler) Event(c *fiber.Ctx) error {
	eventType := c.Params("event")
	log.InfoWithContext(c.Context(), "Airbyte %s - Method: %s", eventType, c.Method())

	if c.Method() == fiber.MethodGet {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":   "success",
			"message":  "Webhook " + eventType + " está funcionando",
			"method":   "GET",
			"endpoint": "/airbyte/" + eventType,
		})
	}

	payload := map[string]interface{}{}
	if err := c.BodyParser(&payload); err != nil {
		log.WarnWithContext(c.Context(), "unparseable Airbyte payload: %s", err.Error())
		payload = map[string]interface{}{}
	}

	result, err := h.syncService.ProcessEvent(c.Context(), eventType, payload)
	if err != nil {
		log.ErrorWithContext(c.Context(), "Erro no airbyte/%s: %s", eventType, err.Error())
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status": "success",
			"error":  err.Error(),
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"status":      "success",
		"event_type":  eventType,
		"recipients":  result.Recipients,
		"emails_sent": result.EmailsSent,
	})
}

// Test answers connectivity probes from the Airbyte webhook configuration UI.
// Endpoint: GET|POST /airbyte/test
func (h *AirbyteHandler) Test(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"status":    "success",
		"message":   "Airbyte webhook test successful",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "2.0",
	})
}
