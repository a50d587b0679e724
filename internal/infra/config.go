package infra

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents application configuration loaded from environment
// variables. It is built once in main and passed down explicitly; nothing
// below the composition root reads the environment.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	// Telegram credentials are optional. When either is absent the
	// service runs without notifications.
	TelegramBotToken    string
	TelegramAdminChatID int64
	TelegramTimeout     time.Duration

	MigrationsDir string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramTimeout:  time.Second * time.Duration(getEnvInt("TELEGRAM_TIMEOUT_SECONDS", 10)),
		MigrationsDir:    getEnv("MIGRATIONS_DIR", "migrations"),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if raw := os.Getenv("TELEGRAM_ADMIN_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_ADMIN_CHAT_ID must be numeric: %w", err)
		}
		cfg.TelegramAdminChatID = id
	}

	return cfg, nil
}

// TelegramConfigured reports whether the notification transport can be
// constructed. Both the bot credential and the admin destination are needed.
func (c *Config) TelegramConfigured() bool {
	return c.TelegramBotToken != "" && c.TelegramAdminChatID != 0
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
