// Package persistence holds context plumbing shared by the storage
// backends.
package persistence

import "context"

type requestIDKey struct{}

// ContextWithRequestID attaches the request id to the context so the
// storage layer can tag its logs with it.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext retrieves the request id, "" when absent.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
