package app

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying the given request ID.
// An empty id gets a freshly generated one.
func WithRequestID(ctx context.Context, id string) (context.Context, string) {
	if id == "" {
		id = uuid.NewString()
	}

	return context.WithValue(ctx, requestIDKey{}, id), id
}

// RequestID extracts the request ID stored by WithRequestID
func RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}
