// Package contextutil carries request metadata through context.Context so
// services and repositories never depend on gin.
package contextutil

import (
	"context"

	"go.uber.org/zap"
)

type requestIDKey struct{}

type loggerKey struct{}

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// GetRequestID returns "" for background work (worker, consumer) where no request exists.
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	rid, _ := ctx.Value(requestIDKey{}).(string)
	return rid
}

// WithLogger stores a request-scoped logger, normally already tagged with request_id, user_id and role.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger prefers the request-scoped logger, then fallback, then a no-op logger. Never nil.
func GetLogger(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	if fallback != nil {
		return fallback
	}
	return zap.NewNop()
}
