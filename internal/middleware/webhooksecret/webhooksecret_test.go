package webhooksecret

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/CazouVilela/webhook/internal/types"
)

func newProtectedApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Post("/", New(cfg), func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	return app
}

func TestWebhookSecret_EmptySecretAlwaysPasses(t *testing.T) {
	app := newProtectedApp(Config{Secret: ""})

	req := httptest.NewRequest("POST", "/", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestWebhookSecret_UnauthorizedWithoutToken(t *testing.T) {
	app := newProtectedApp(Config{Secret: "s3cret"})

	// fiber's app.Test uses 0.0.0.0 as the remote address, a non-loopback IP
	req := httptest.NewRequest("POST", "/", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestWebhookSecret_HeaderToken(t *testing.T) {
	app := newProtectedApp(Config{Secret: "s3cret"})

	req := httptest.NewRequest("POST", "/", nil)
	req.Header.Set(types.HeaderWebhookSecret, "s3cret")
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest("POST", "/", nil)
	req.Header.Set(types.HeaderWebhookSecret, "wrong")
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestWebhookSecret_QueryToken(t *testing.T) {
	app := newProtectedApp(Config{Secret: "s3cret"})

	req := httptest.NewRequest("POST", "/?token=s3cret", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestWebhookSecret_CustomUnauthorizedHandler(t *testing.T) {
	app := newProtectedApp(Config{
		Secret: "s3cret",
		Unauthorized: func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "success", "note": "token invalid"})
		},
	})

	req := httptest.NewRequest("POST", "/", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected lenient 200, got %d", resp.StatusCode)
	}
}

func TestWebhookSecret_NextSkipsVerification(t *testing.T) {
	app := fiber.New()
	mw := New(Config{
		Secret: "s3cret",
		Next:   func(c *fiber.Ctx) bool { return c.Method() == fiber.MethodGet },
	})
	app.All("/", mw, func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	req := httptest.NewRequest("GET", "/", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected GET to bypass verification, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest("POST", "/", nil)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected POST to be verified, got %d", resp.StatusCode)
	}
}

func TestIsLoopback(t *testing.T) {
	for _, ip := range []string{"127.0.0.1", "localhost", "::1"} {
		if !isLoopback(ip) {
			t.Fatalf("expected %s to be loopback", ip)
		}
	}
	for _, ip := range []string{"0.0.0.0", "10.0.0.1", "192.168.0.1", ""} {
		if isLoopback(ip) {
			t.Fatalf("expected %s to be non-loopback", ip)
		}
	}
}
