package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-service/internal/adapters/http/middleware"
)

func captureIDs(t *testing.T, req *http.Request) (reqID, corrID string, rec *httptest.ResponseRecorder) {
	t.Helper()
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		reqID = middleware.RequestIDFromContext(r.Context())
		corrID = middleware.CorrelationIDFromContext(r.Context())
	}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return reqID, corrID, rec
}

func TestRequestID_GeneratesUUIDs(t *testing.T) {
	t.Parallel()

	reqID, corrID, rec := captureIDs(t, httptest.NewRequest(http.MethodGet, "/tasks", http.NoBody))

	if _, err := uuid.Parse(reqID); err != nil {
		t.Errorf("request id %q is not a UUID: %v", reqID, err)
	}
	if corrID != reqID {
		t.Errorf("correlation id = %q, want fallback to request id %q", corrID, reqID)
	}
	if got := rec.Header().Get("X-Request-ID"); got != reqID {
		t.Errorf("X-Request-ID header = %q, want %q", got, reqID)
	}
	if got := rec.Header().Get("X-Correlation-ID"); got != corrID {
		t.Errorf("X-Correlation-ID header = %q, want %q", got, corrID)
	}
}

func TestRequestID_ReusesInboundHeaders(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/tasks", http.NoBody)
	req.Header.Set("X-Request-ID", "req-123")
	req.Header.Set("X-Correlation-ID", "load-run-7")

	reqID, corrID, _ := captureIDs(t, req)
	if reqID != "req-123" || corrID != "load-run-7" {
		t.Errorf("ids = (%q, %q), want (req-123, load-run-7)", reqID, corrID)
	}
}

func TestRequestID_RejectsUnsafeInbound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
	}{
		{name: "too long", id: strings.Repeat("a", 129)},
		{name: "contains space", id: "two words"},
		{name: "control char", id: "abc\x01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.Header.Set("X-Request-ID", tt.id)

			reqID, _, _ := captureIDs(t, req)
			if reqID == tt.id {
				t.Fatalf("unsafe id %q was reused", tt.id)
			}
			if _, err := uuid.Parse(reqID); err != nil {
				t.Errorf("replacement %q is not a UUID", reqID)
			}
		})
	}
}
