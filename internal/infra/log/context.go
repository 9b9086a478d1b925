package logs

import (
	"context"
	"log/slog"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"
)

// RequestIDFromContext extracts the request ID from context.Context.
// If not found, returns empty string.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// FromContext extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// FromContextOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := FromContext(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
// The request ID already present in ctx, if any, is attached to the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		logger = logger.With(slog.String("request_id", requestID))
	}

	return context.WithValue(ctx, KeyLogger, logger)
}
