// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/task-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/task-service/internal/domain"
)

// Routes groups what NewRouter mounts. Tasks, MCP and Health are required.
type Routes struct {
	Tasks  *handlers.TaskHandler
	MCP    *handlers.MCPHandler
	Health *handlers.HealthHandler

	// MCPGate guards every /mcp route, including MCPRPC.
	MCPGate func(http.Handler) http.Handler
	// MCPRPC serves POST/GET/DELETE /mcp/rpc. nil leaves the route unmounted.
	MCPRPC http.Handler
	// Timeout bounds every route except /mcp/rpc, whose responses stream.
	Timeout func(http.Handler) http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(routes Routes, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, domain.ErrNotFound)
	})

	gate := orPassthrough(routes.MCPGate)
	timeout := orPassthrough(routes.Timeout)

	r.Group(func(r chi.Router) {
		r.Use(timeout)

		// Health endpoints.
		r.Get("/health", routes.Health.Readiness)
		r.Get("/health/live", routes.Health.Liveness)
		r.Get("/health/ready", routes.Health.Readiness)

		// Task CRUD. Static segments are registered before {id} for readability;
		// chi prefers them regardless.
		r.Get("/tasks", routes.Tasks.List)
		r.Post("/tasks", routes.Tasks.Create)
		r.Get("/tasks/overdue", routes.Tasks.Overdue)
		r.Get("/tasks/due-today", routes.Tasks.DueToday)
		r.Get("/tasks/search", routes.Tasks.Search)
		r.Get("/tasks/status/{status}", routes.Tasks.ListByStatus)
		r.Get("/tasks/{id}", routes.Tasks.Get)
		r.Put("/tasks/{id}", routes.Tasks.Update)
		r.Patch("/tasks/{id}/status", routes.Tasks.UpdateStatus)
		r.Delete("/tasks/{id}", routes.Tasks.Delete)
	})

	// The gate sits on the subrouter, so unknown /mcp paths and wrong
	// methods are rejected before they can answer 404 or 405.
	r.Route("/mcp", func(r chi.Router) {
		r.Use(gate)

		r.Group(func(r chi.Router) {
			r.Use(timeout)
			r.Get("/schema-tasks", routes.MCP.Schema)
			r.Post("/tasks", routes.MCP.InsertTasks)
			r.Get("/tasks", routes.MCP.ListTasks)
			r.Get("/tasks-summary", routes.MCP.Summary)
			r.Post("/generate", routes.MCP.Generate)
			r.Get("/help", routes.MCP.Help)
			r.Get("/spec", routes.MCP.Spec)
		})

		if routes.MCPRPC != nil {
			r.Handle("/rpc", routes.MCPRPC)
		}
	})

	return r
}

func orPassthrough(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return mw
}
