package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/task-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/task-service/mocks"
)

func TestLiveness_AlwaysUp(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[handlers.HealthResponse](t, rec); resp.Status != "UP" {
		t.Errorf("status = %q, want UP", resp.Status)
	}
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    map[string]error
		wantCode   int
		wantStatus string
	}{
		{
			name:       "all healthy",
			results:    map[string]error{"database": nil},
			wantCode:   http.StatusOK,
			wantStatus: "UP",
		},
		{
			name:       "no checkers registered",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: "UP",
		},
		{
			name:       "database down",
			results:    map[string]error{"database": errors.New("connection refused")},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "DOWN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)
			h := handlers.NewHealthHandler(registry)

			rec := httptest.NewRecorder()
			h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			requireStatus(t, rec, tt.wantCode)
			resp := decodeJSON[handlers.HealthResponse](t, rec)
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			for name, err := range tt.results {
				want := "UP"
				if err != nil {
					want = err.Error()
				}
				if resp.Checks[name] != want {
					t.Errorf("checks[%q] = %q, want %q", name, resp.Checks[name], want)
				}
			}
		})
	}
}
