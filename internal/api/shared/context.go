package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/photos-gateway/internal/service/auth"
)

// ContextKey is the type of the request-scoped values set by middleware.
type ContextKey string

// Context keys for request-scoped values
const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// ClaimsContextKey is the key for the validated token claims
	ClaimsContextKey ContextKey = "claims"

	// DevelopmentKey marks requests served in the development environment,
	// where error responses carry details.
	DevelopmentKey ContextKey = "development"
)

// NewTraceID returns a fresh random trace ID.
func NewTraceID() string {
	return uuid.NewString()
}

// SetTraceID adds a newly generated trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, NewTraceID())
}

// WithTraceID adds traceID to the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDKey).(string)
	return traceID
}

// WithClaims stores validated token claims in the context.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, ClaimsContextKey, claims)
}

// GetClaims returns the claims stored by the authentication middleware.
func GetClaims(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*auth.Claims)
	return claims, ok && claims != nil
}

// WithDevelopment records whether the request runs in development mode.
func WithDevelopment(ctx context.Context, development bool) context.Context {
	return context.WithValue(ctx, DevelopmentKey, development)
}

// IsDevelopment reports whether the request runs in development mode.
func IsDevelopment(ctx context.Context) bool {
	development, _ := ctx.Value(DevelopmentKey).(bool)
	return development
}
