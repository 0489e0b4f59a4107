// Package ctxutil carries per-request identity from the middleware
// chain down to handlers and services.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

// Unexported struct keys cannot collide with values set by other packages.
type (
	userIDKey    struct{}
	requestIDKey struct{}
)

// WithUserID records the authenticated user on the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx reports the authenticated user, if any. Anonymous
// requests, uuid.Nil, and foreign value types all read as not logged in.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID records the correlation ID on the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx reports the correlation ID, or "" when the request
// never passed through the request-id middleware.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
