// Package logging is the logger the taskkeeper server hands to its
// components: the gRPC server, the metrics endpoint and the revocation
// pruner. SlogLogger writes JSON through log/slog; Nop discards output.
package logging

import "context"

// Logger is what server components log through. Args are alternating keys
// and values:
//
//	log.Info(ctx, "token revoked", "user_id", id, "method", method)
//
// Token strings and password material must never be passed as values.
type Logger interface {
	// Debug is off unless the server runs with log level "debug".
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	// Warn marks rejected tokens.
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With tags every later record, e.g. With("module", "pruner").
	With(args ...any) Logger
}
