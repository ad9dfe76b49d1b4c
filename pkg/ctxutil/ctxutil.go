package ctxutil

import (
	"context"
)

type ctxKey string

const (
	identityKey   ctxKey = "identity"
	requestIDKey  ctxKey = "request_id"
	sourceAddrKey ctxKey = "source_addr"
)

// WithIdentity stores the verified identity string in the context.
func WithIdentity(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromCtx extracts the verified identity from the context.
// Returns "" and false if the value is missing, empty, or of the wrong type.
func IdentityFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(identityKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithSourceAddr stores the client source address in the context.
func WithSourceAddr(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, sourceAddrKey, addr)
}

// SourceAddrFromCtx extracts the client source address from the context.
// Returns an empty string if absent.
func SourceAddrFromCtx(ctx context.Context) string {
	addr, _ := ctx.Value(sourceAddrKey).(string)
	return addr
}
