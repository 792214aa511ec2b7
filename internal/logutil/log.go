package logutil

import (
	"context"
	"os"

	"github.com/rs/zerolog"
)

type ctxKey struct{}

// NewServerLogger builds the process-wide logger used by the newel commands.
func NewServerLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Str("app", "newel").Logger()
}

// WithLogger attaches a logger to the context for downstream handlers.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// GetOrDefault returns the context logger, or a quiet default when the
// context carries none (tests mostly).
func GetOrDefault(ctx context.Context) zerolog.Logger {
	if v, ok := ctx.Value(ctxKey{}).(zerolog.Logger); ok {
		return v
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)
}
