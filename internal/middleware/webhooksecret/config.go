package webhooksecret

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Config defines the config for middleware.
type Config struct {
	// Next defines a function to skip this middleware when returned true.
	//
	// Optional. Default: nil
	Next func(c *fiber.Ctx) bool

	// Secret is the shared secret the caller must present. When empty,
	// verification always passes.
	Secret string

	// Unauthorized defines the response for requests that fail verification.
	// The default is a strict 401; lenient endpoint families override it
	// with a 200 acknowledgment so the calling platform does not retry.
	//
	// Optional. Default: nil
	Unauthorized fiber.Handler
}

// ConfigDefault is the default config
var ConfigDefault = Config{
	Next:         nil,
	Secret:       "",
	Unauthorized: nil,
}

// Helper function to set default values
func configDefault(config ...Config) Config {
	if len(config) < 1 {
		return ConfigDefault
	}

	cfg := config[0]

	if cfg.Unauthorized == nil {
		cfg.Unauthorized = func(c *fiber.Ctx) error {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "Não autorizado",
			})
		}
	}
	return cfg
}
