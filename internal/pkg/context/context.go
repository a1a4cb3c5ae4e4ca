package context

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey represents a key for context values
type ContextKey string

// RequestIDKey is the key for request ID in context
const RequestIDKey ContextKey = "request_id"

// WithRequestID adds a request ID to the context, generating one when
// requestID is empty
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
