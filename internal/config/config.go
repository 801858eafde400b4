// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the product store service.
type Config struct {
	ServerAddr      string        `env:"SERVER_ADDR"       envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"  envDefault:"10s"`

	MongoURI    string `env:"MONGO_URI"     envDefault:"mongodb://localhost:27017"`
	MongoDBName string `env:"MONGO_DB_NAME" envDefault:"productstore"`

	TokenSecret    string        `env:"TOKEN_SECRET"`
	TokenIssuer    string        `env:"TOKEN_ISSUER"     envDefault:"product-store-api"`
	TokenExpiresIn time.Duration `env:"TOKEN_EXPIRES_IN" envDefault:"1h"`

	OTPLength    int           `env:"OTP_LENGTH"     envDefault:"6"`
	OTPExpiresIn time.Duration `env:"OTP_EXPIRES_IN" envDefault:"5m"`

	OTPRateLimit  int           `env:"OTP_RATE_LIMIT"  envDefault:"5"`
	OTPRateWindow time.Duration `env:"OTP_RATE_WINDOW" envDefault:"5m"`

	// Verification attempts are unlimited unless a limit is configured; see
	// the note in DESIGN.md.
	OTPVerifyRateLimit  int           `env:"OTP_VERIFY_RATE_LIMIT"  envDefault:"0"`
	OTPVerifyRateWindow time.Duration `env:"OTP_VERIFY_RATE_WINDOW" envDefault:"5m"`

	// SMTP settings are optional; when SMTPHost is empty, OTP codes are not
	// delivered by email.
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.TokenSecret == "" {
		return fmt.Errorf("missing TOKEN_SECRET environment variable")
	}
	if c.OTPLength <= 0 {
		return fmt.Errorf("OTP_LENGTH must be positive")
	}
	if c.OTPRateLimit <= 0 {
		return fmt.Errorf("OTP_RATE_LIMIT must be positive")
	}
	if c.SMTPHost != "" && c.SMTPFrom == "" {
		return fmt.Errorf("missing SMTP_FROM environment variable")
	}

	return nil
}
