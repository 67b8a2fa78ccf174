// Package httpapi exposes the submission intake endpoint over HTTP.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/dmitrymomot/vaptnotify/internal/notification"
	"github.com/dmitrymomot/vaptnotify/pkg/health"
	"github.com/dmitrymomot/vaptnotify/pkg/logger"
)

// Notifier delivers one submission. Implemented by *notification.Notifier.
type Notifier interface {
	Send(ctx context.Context, rec notification.Record) (bool, error)
}

type options struct {
	logger         *slog.Logger
	now            func() time.Time
	newID          func() string
	checks         health.Checks
	allowedOrigins []string
	trustProxy     bool
}

// Option configures the router.
type Option func(*options)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithAllowedOrigins sets the CORS allowed origins. Default: "*".
func WithAllowedOrigins(origins ...string) Option {
	return func(o *options) {
		if len(origins) > 0 {
			o.allowedOrigins = origins
		}
	}
}

// WithTrustedProxy makes the client IP come from X-Forwarded-For / X-Real-IP.
// Enable only behind a reverse proxy that overwrites those headers.
func WithTrustedProxy(trust bool) Option {
	return func(o *options) {
		o.trustProxy = trust
	}
}

// WithReadinessChecks sets the checks served on /readyz.
func WithReadinessChecks(checks health.Checks) Option {
	return func(o *options) {
		o.checks = checks
	}
}

// WithClock overrides the clock used to stamp submissions.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithIDGenerator overrides the submission ID generator.
func WithIDGenerator(gen func() string) Option {
	return func(o *options) {
		if gen != nil {
			o.newID = gen
		}
	}
}

// New builds the HTTP handler:
//
//	POST /api/vapt-submissions  email one submission
//	GET  /healthz               liveness
//	GET  /readyz                readiness checks
func New(n Notifier, opts ...Option) http.Handler {
	o := &options{
		logger:         logger.NewNope(),
		now:            time.Now,
		newID:          uuid.NewString,
		allowedOrigins: []string{"*"},
	}
	for _, opt := range opts {
		opt(o)
	}

	h := &submissionsHandler{
		notifier: n,
		logger:   o.logger,
		now:      o.now,
		newID:    o.newID,
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	if o.trustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(Recover(o.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: o.allowedOrigins,
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/healthz", health.LivenessHandler())
	r.Get("/readyz", health.ReadinessHandler(o.checks, health.WithLogger(o.logger)))
	r.Post("/api/vapt-submissions", h.create)

	return r
}
