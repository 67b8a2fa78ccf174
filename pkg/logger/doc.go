// Package logger builds the service's structured logger on top of log/slog.
//
// Records are written as JSON. ContextExtractor functions pull request-scoped
// values (such as the request id) out of the context on every call:
//
//	log := logger.New(logger.Config{Level: slog.LevelInfo}, requestIDExtractor)
//	log.InfoContext(ctx, "submission email sent")
//	// {"level":"INFO","msg":"submission email sent","request_id":"..."}
//
// When Config.Sentry.DSN is set, warnings are stored as Sentry logs and errors
// also open Sentry issues. An empty DSN, or a failed Sentry init, leaves plain
// stdout logging in place. Call Flush before exit to drain buffered events.
//
// NewNope returns a discarding logger for components that were given none.
package logger
