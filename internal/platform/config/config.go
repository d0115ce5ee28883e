package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the process-wide, read-only configuration. It is loaded once at
// startup and injected into handlers and services; nothing mutates it after
// construction.
type Config struct {
	Server  ServerConfig  `json:"server"`
	Mail    MailConfig    `json:"mail"`
	Webhook WebhookConfig `json:"webhook"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host  string `json:"host"`
	Port  int    `json:"port"`
	Debug bool   `json:"debug"`
}

// MailConfig holds the SMTP relay configuration
type MailConfig struct {
	Server        string `json:"server"`
	Port          int    `json:"port"`
	UseTLS        bool   `json:"useTls"`
	UseSSL        bool   `json:"useSsl"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	DefaultSender string `json:"defaultSender"`
}

// WebhookConfig holds the webhook-facing configuration
type WebhookConfig struct {
	DefaultRecipient string `json:"defaultRecipient"`
	Secret           string `json:"secret"`
}

// LoadFromEnv loads configuration from the environment.
// It follows a clear precedence:
// 1. Explicit Environment Variables (e.g., set in the shell or by CI)
// 2. Values from the .env file (if it exists)
// 3. Hardcoded defaults
func LoadFromEnv() (*Config, error) {
	// godotenv.Load() reads the .env file into the environment only for keys
	// that are not already set, which gives the precedence above.
	envPaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	var loadErr error
	for _, envPath := range envPaths {
		loadErr = godotenv.Load(envPath)
		if loadErr == nil {
			break
		}
	}
	if loadErr != nil {
		// Not an error: running without a .env file is the normal case in
		// containerized deployments.
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	config := &Config{
		Server: ServerConfig{
			Host:  getEnvOrDefault("HOST", "0.0.0.0"),
			Port:  getEnvAsInt("SERVER_PORT", 7000),
			Debug: getEnvAsBool("DEBUG", false),
		},
		Mail: MailConfig{
			Server:        getEnvOrDefault("MAIL_SERVER", "smtp.gmail.com"),
			Port:          getEnvAsInt("MAIL_PORT", 587),
			UseTLS:        getEnvAsBool("MAIL_USE_TLS", true),
			UseSSL:        getEnvAsBool("MAIL_USE_SSL", false),
			Username:      getEnvOrDefault("MAIL_USERNAME", ""),
			Password:      getEnvOrDefault("MAIL_PASSWORD", ""),
			DefaultSender: getEnvOrDefault("MAIL_DEFAULT_SENDER", ""),
		},
		Webhook: WebhookConfig{
			DefaultRecipient: getEnvOrDefault("DEFAULT_RECIPIENT_EMAIL", ""),
			Secret:           getEnvOrDefault("WEBHOOK_SECRET", ""),
		},
	}

	applyDefaults(config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadFromMap loads configuration from an in-memory map.
// This is the primary helper for testing configuration logic in isolation
// without manipulating global environment variables.
func LoadFromMap(envMap map[string]string) (*Config, error) {
	get := func(key, defaultValue string) string {
		if value, exists := envMap[key]; exists {
			return value
		}
		return defaultValue
	}

	getInt := func(key string, defaultValue int) int {
		if value, exists := envMap[key]; exists {
			if intValue, err := strconv.Atoi(value); err == nil {
				return intValue
			}
		}
		return defaultValue
	}

	getBool := func(key string, defaultValue bool) bool {
		if value, exists := envMap[key]; exists {
			return strings.EqualFold(value, "true") || value == "1"
		}
		return defaultValue
	}

	config := &Config{
		Server: ServerConfig{
			Host:  get("HOST", "0.0.0.0"),
			Port:  getInt("SERVER_PORT", 7000),
			Debug: getBool("DEBUG", false),
		},
		Mail: MailConfig{
			Server:        get("MAIL_SERVER", "smtp.gmail.com"),
			Port:          getInt("MAIL_PORT", 587),
			UseTLS:        getBool("MAIL_USE_TLS", true),
			UseSSL:        getBool("MAIL_USE_SSL", false),
			Username:      get("MAIL_USERNAME", ""),
			Password:      get("MAIL_PASSWORD", ""),
			DefaultSender: get("MAIL_DEFAULT_SENDER", ""),
		},
		Webhook: WebhookConfig{
			DefaultRecipient: get("DEFAULT_RECIPIENT_EMAIL", ""),
			Secret:           get("WEBHOOK_SECRET", ""),
		},
	}

	applyDefaults(config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// applyDefaults fills derived values that depend on other fields.
func applyDefaults(config *Config) {
	// Like Flask-Mail: the default sender falls back to the SMTP username.
	if config.Mail.DefaultSender == "" {
		config.Mail.DefaultSender = config.Mail.Username
	}
	if config.Webhook.DefaultRecipient == "" {
		config.Webhook.DefaultRecipient = config.Mail.Username
	}
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Mail.Server == "" {
		return fmt.Errorf("MAIL_SERVER must not be empty")
	}
	if c.Mail.Port <= 0 || c.Mail.Port > 65535 {
		return fmt.Errorf("invalid mail port: %d", c.Mail.Port)
	}
	if c.Mail.UseTLS && c.Mail.UseSSL {
		return fmt.Errorf("MAIL_USE_TLS and MAIL_USE_SSL are mutually exclusive")
	}
	return nil
}

// getEnvOrDefault gets an environment variable or returns a default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.EqualFold(value, "true") || value == "1"
	}
	return defaultValue
}
