// Package ctxutil carries per-request identity through context.Context: the
// authenticated member, the request ID and the caller's address.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	requestIDKey struct{}
	clientIPKey  struct{}
)

func value[T any](ctx context.Context, key any) (T, bool) {
	v, ok := ctx.Value(key).(T)
	return v, ok
}

// WithUserID marks ctx as authenticated for the member id.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx returns the authenticated member. A missing or nil ID
// reports false, so anonymous requests can never act as uuid.Nil.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := value[uuid.UUID](ctx, userIDKey{})
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns "" when no ID was set.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := value[string](ctx, requestIDKey{})
	return id
}

func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

// ClientIPFromCtx returns the caller address used for rate limiting.
func ClientIPFromCtx(ctx context.Context) (string, bool) {
	ip, ok := value[string](ctx, clientIPKey{})
	return ip, ok && ip != ""
}
