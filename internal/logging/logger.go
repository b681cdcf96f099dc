// Package logging defines the structured logger the verification pipeline
// and its services log through. The binaries wire the slog adapter; tests
// use Discard.
package logging

import "context"

// Logger is a context-aware, structured logger. Variadic args are key/value
// pairs:
//
//	log.Info(ctx, "index reloaded", "records", n)
//
// Pipeline code derives a child logger per request with With, so the
// source_id tags every OCR, extraction and matching line for that upload.
type Logger interface {
	// Debug logs a verbose diagnostic message.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs an unusual but non-fatal condition, for example a degraded
	// alert rule.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key/value
	// pairs.
	With(args ...any) Logger
}
