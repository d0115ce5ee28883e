// Copyright (c) 2025 Cazou Vilela
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/CazouVilela/webhook/airbyte"
	airbyteHandlers "github.com/CazouVilela/webhook/airbyte/handlers"
	airbyteServices "github.com/CazouVilela/webhook/airbyte/services"
	platformconfig "github.com/CazouVilela/webhook/internal/platform/config"
	platformemail "github.com/CazouVilela/webhook/internal/platform/email"
	"github.com/CazouVilela/webhook/webhook"
	webhookHandlers "github.com/CazouVilela/webhook/webhook/handlers"
	webhookServices "github.com/CazouVilela/webhook/webhook/services"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load platform config: %v", err)
	}
	if cfg.Mail.Username == "" || cfg.Mail.Password == "" {
		log.Fatalf("MAIL_USERNAME e MAIL_PASSWORD devem ser configurados! Verifique o arquivo .env")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			// If response already set by handler, don't override it
			if len(c.Response().Body()) > 0 {
				return nil
			}
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"message": err.Error(),
			})
		},
	})

	app.Use(requestid.New())
	app.Use(recover.New())
	app.Use(cors.New())

	sender, err := platformemail.NewSMTPSender(cfg.Mail)
	if err != nil {
		log.Fatalf("Failed to create SMTP sender: %v", err)
	}

	notificationService := webhookServices.NewNotificationService(sender, cfg)
	webhook.RegisterRoutes(app, &webhook.WebhookHandlers{
		WebhookHandler: webhookHandlers.NewWebhookHandler(notificationService, cfg.Webhook.DefaultRecipient),
	}, cfg)

	syncService := airbyteServices.NewSyncService(sender, cfg)
	airbyte.RegisterRoutes(app, &airbyte.AirbyteHandlers{
		AirbyteHandler: airbyteHandlers.NewAirbyteHandler(syncService),
	}, cfg)

	log.Println("=== Configuração do Webhook Server ===")
	log.Printf("Email remetente: %s", cfg.Mail.Username)
	log.Printf("Servidor SMTP: %s:%d", cfg.Mail.Server, cfg.Mail.Port)
	log.Printf("Email padrão para notificações: %s", cfg.Webhook.DefaultRecipient)
	secretState := "Não"
	if cfg.Webhook.Secret != "" {
		secretState = "Sim"
	}
	log.Printf("Token de segurança configurado: %s", secretState)
	log.Println("=====================================")

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Iniciando webhook server em %s...", addr)
	log.Fatal(app.Listen(addr))
}
