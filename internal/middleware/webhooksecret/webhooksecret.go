// Package webhooksecret verifies the shared secret presented by webhook
// callers, either in the X-Webhook-Secret header or as a token query
// parameter. Loopback requests carrying no token are let through so local
// testing does not require exposing the secret.
package webhooksecret

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CazouVilela/webhook/internal/pkg/log"
	"github.com/CazouVilela/webhook/internal/types"
)

// New creates a new middleware handler
func New(config Config) fiber.Handler {
	cfg := configDefault(config)

	return func(c *fiber.Ctx) error {
		// Don't execute middleware if Next returns true
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}

		// No secret configured means verification always passes.
		if cfg.Secret == "" {
			return c.Next()
		}

		token := c.Get(types.HeaderWebhookSecret)
		if token == "" {
			token = c.Query(types.QueryTokenParam)
		}

		if token == cfg.Secret {
			return c.Next()
		}

		if token == "" && isLoopback(c.IP()) {
			log.Info("local request without token allowed")
			return c.Next()
		}

		log.Warn("invalid or missing webhook token from %s", c.IP())
		return cfg.Unauthorized(c)
	}
}

func isLoopback(ip string) bool {
	return ip == "127.0.0.1" || ip == "localhost" || ip == "::1"
}
