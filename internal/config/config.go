// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/vaptnotify/pkg/logger"
)

// Supported email providers.
const (
	ProviderSendGrid = "sendgrid"
	ProviderResend   = "resend"
)

// ErrInvalid indicates the environment produced an invalid configuration.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full service configuration.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080" validate:"required"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	// TrustProxy takes the client IP from forwarding headers. Only safe behind a proxy.
	TrustProxy bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`

	Email Email
	Log   logger.Config
}

// Email configures the outbound email provider.
// An empty APIKey is valid: the service starts and every send fails as not configured.
type Email struct {
	Provider    string `env:"EMAIL_PROVIDER" envDefault:"sendgrid" validate:"oneof=sendgrid resend"`
	APIKey      string `env:"EMAIL_API_KEY"`
	SenderEmail string `env:"SENDER_EMAIL" envDefault:"noreply@example.com" validate:"required,email"`
	SenderName  string `env:"SENDER_NAME"`
	BaseURL     string `env:"EMAIL_API_BASE_URL" validate:"omitempty,url"`
}

// Load reads configuration from the process environment.
func Load() (Config, error) {
	return load(env.Options{})
}

// LoadFromMap reads configuration from environ instead of the process environment.
func LoadFromMap(environ map[string]string) (Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return cfg, nil
}
