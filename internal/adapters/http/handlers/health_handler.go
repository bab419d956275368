package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/task-service/internal/ports"
)

const (
	statusUp   = "UP"
	statusDown = "DOWN"
)

// HealthResponse is the body of the health endpoints.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. It never touches the database.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, HealthResponse{Status: statusUp})
}

// Readiness handles GET /health/ready and GET /health. Every registered
// checker must pass for a 200; otherwise the response is 503 and the failing
// checkers carry their error text.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: statusUp, Checks: make(map[string]string)}
	for name, err := range h.registry.CheckAll(r.Context()) {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = statusDown
			continue
		}
		resp.Checks[name] = statusUp
	}

	code := http.StatusOK
	if resp.Status == statusDown {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, resp)
}
