package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/vaptnotify/internal/config"
	"github.com/dmitrymomot/vaptnotify/internal/httpapi"
	"github.com/dmitrymomot/vaptnotify/internal/notification"
	"github.com/dmitrymomot/vaptnotify/internal/server"
	"github.com/dmitrymomot/vaptnotify/pkg/health"
	"github.com/dmitrymomot/vaptnotify/pkg/logger"
	"github.com/dmitrymomot/vaptnotify/pkg/mailer"
	"github.com/dmitrymomot/vaptnotify/pkg/mailer/resend"
	"github.com/dmitrymomot/vaptnotify/pkg/mailer/sendgrid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.New(cfg.Log, httpapi.RequestIDExtractor())

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("service stopped with error", slog.Any("error", err))
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}
	logger.Flush(2 * time.Second)
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	if cfg.Email.APIKey == "" {
		log.Warn("EMAIL_API_KEY is not set, submissions will not be emailed")
	}

	notifier := notification.New(notification.Config{
		APIKey:      cfg.Email.APIKey,
		SenderEmail: cfg.Email.SenderEmail,
		SenderName:  cfg.Email.SenderName,
	}, provider(cfg.Email), notification.WithLogger(log))

	handler := httpapi.New(notifier,
		httpapi.WithLogger(log),
		httpapi.WithAllowedOrigins(cfg.AllowedOrigins...),
		httpapi.WithTrustedProxy(cfg.TrustProxy),
		httpapi.WithReadinessChecks(health.Checks{
			"email": notifier.Healthcheck,
		}),
	)

	return server.Run(ctx, server.Config{
		Handler:         handler,
		Logger:          log,
		Addr:            cfg.HTTPAddr,
		ShutdownTimeout: cfg.ShutdownTimeout,
	})
}

// provider returns the constructor for the configured email provider.
func provider(cfg config.Email) notification.Provider {
	switch cfg.Provider {
	case config.ProviderResend:
		return func(apiKey string) mailer.Sender {
			return resend.New(resend.Config{
				APIKey:      apiKey,
				SenderEmail: cfg.SenderEmail,
				SenderName:  cfg.SenderName,
				BaseURL:     cfg.BaseURL,
			})
		}
	default:
		return func(apiKey string) mailer.Sender {
			return sendgrid.New(sendgrid.Config{
				APIKey:      apiKey,
				SenderEmail: cfg.SenderEmail,
				SenderName:  cfg.SenderName,
				BaseURL:     cfg.BaseURL,
			})
		}
	}
}
