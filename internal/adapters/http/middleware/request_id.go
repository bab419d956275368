package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"

	// maxInboundIDLength caps client-supplied ids so they stay log friendly.
	maxInboundIDLength = 128
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID returns a new context carrying the request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext extracts the request ID from the context.
// Returns an empty string if no request ID is stored.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithCorrelationID returns a new context carrying the correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationIDFromContext extracts the correlation ID from the context.
// Returns an empty string if no correlation ID is stored.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// RequestID returns middleware that assigns every request an X-Request-ID
// and an X-Correlation-ID. Inbound values are reused when they are printable
// and short; otherwise a new UUID is generated. The correlation ID falls back
// to the request ID, so a taskctl load run can tie all of its batch requests
// together by sending one correlation ID. Both are echoed as response headers.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(headerRequestID)
			if !validInboundID(reqID) {
				reqID = uuid.NewString()
			}
			corrID := r.Header.Get(headerCorrelationID)
			if !validInboundID(corrID) {
				corrID = reqID
			}

			ctx := WithCorrelationID(WithRequestID(r.Context(), reqID), corrID)
			w.Header().Set(headerRequestID, reqID)
			w.Header().Set(headerCorrelationID, corrID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validInboundID(id string) bool {
	if id == "" || len(id) > maxInboundIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if c := id[i]; c < 0x21 || c > 0x7e {
			return false
		}
	}
	return true
}
