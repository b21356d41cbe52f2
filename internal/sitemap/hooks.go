package sitemap

import (
	"context"
	"log/slog"
	"time"
)

// Op names a generator operation passed to hooks
type Op string

const (
	OpGoogle   Op = "google"
	OpMRSS     Op = "mrss"
	OpLatest   Op = "latest"
	OpFeatured Op = "featured"
)

// Hook is called around every generator operation, in registration order.
// The context returned by Before is passed to the operation and to After,
// so a hook may carry per-call state. After receives a nil result on error.
type Hook interface {
	Before(ctx context.Context, op Op) context.Context
	After(ctx context.Context, op Op, result any, err error)
}

// HookFuncs adapts plain functions to Hook, nil functions are skipped
type HookFuncs struct {
	BeforeFunc func(ctx context.Context, op Op) context.Context
	AfterFunc  func(ctx context.Context, op Op, result any, err error)
}

func (h HookFuncs) Before(ctx context.Context, op Op) context.Context {
	if h.BeforeFunc == nil {
		return ctx
	}

	return h.BeforeFunc(ctx, op)
}

func (h HookFuncs) After(ctx context.Context, op Op, result any, err error) {
	if h.AfterFunc != nil {
		h.AfterFunc(ctx, op, result, err)
	}
}

type startedAtKey struct{}

// NewLoggingHook logs the outcome and duration of every operation at debug level
func NewLoggingHook(logger *slog.Logger) Hook {
	return HookFuncs{
		BeforeFunc: func(ctx context.Context, _ Op) context.Context {
			return context.WithValue(ctx, startedAtKey{}, time.Now())
		},
		AfterFunc: func(ctx context.Context, op Op, _ any, err error) {
			var duration time.Duration

			if start, ok := ctx.Value(startedAtKey{}).(time.Time); ok {
				duration = time.Since(start)
			}

			logger.DebugContext(ctx, "Sitemap operation finished",
				"op", op,
				"duration_ms", duration.Milliseconds(),
				"error", err,
			)
		},
	}
}

func observe[T any](ctx context.Context, hooks []Hook, op Op, fn func(ctx context.Context) (T, error)) (T, error) {
	for _, h := range hooks {
		ctx = h.Before(ctx, op)
	}

	result, err := fn(ctx)

	var reported any

	if err == nil {
		reported = result
	}

	for _, h := range hooks {
		h.After(ctx, op, reported, err)
	}

	return result, err
}
