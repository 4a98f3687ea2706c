package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Port        int    `env:"PORT" envDefault:"5000"`

	// Review storage
	ReviewStore string `env:"REVIEW_STORE" envDefault:"memory"`
	SeedReviews bool   `env:"SEED_REVIEWS" envDefault:"true"`
	MongoURI    string `env:"MONGODB_URI"`
	DBName      string `env:"DB_NAME" envDefault:"reviewhub"`

	// Mock identity provider
	JWTSecret string        `env:"JWT_SECRET" envDefault:"reviewhub-dev-secret"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"720h"`

	// Review notifications; email is only sent when both are set
	ResendAPIKey string `env:"RESEND_API_KEY"`
	FromEmail    string `env:"FROM_EMAIL" envDefault:"reviews@reviewhub.dev"`
	NotifyEmail  string `env:"NOTIFY_EMAIL"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	// Missing .env is normal outside development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Port)
	}
	switch c.ReviewStore {
	case StoreMemory:
	case StoreMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI is required when REVIEW_STORE=%s", StoreMongo)
		}
	default:
		return fmt.Errorf("unknown REVIEW_STORE %q (want %s or %s)", c.ReviewStore, StoreMemory, StoreMongo)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.JWTTTL)
	}
	return nil
}

// EmailNotifications reports whether new-review emails can be sent.
func (c *Config) EmailNotifications() bool {
	return c.ResendAPIKey != "" && c.NotifyEmail != ""
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
