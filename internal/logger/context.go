package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

// WithCtx returns a context carrying the given logger.
func WithCtx(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromCtx returns the logger stored in the context, or the global logger
// when none is present.
func FromCtx(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return L()
}
