package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/task-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-service/internal/app"
	"github.com/jsamuelsen11/task-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/task-service/internal/ports"
)

// Ingestion sources reported on the tasks.ingested.total metric.
const (
	SourceInsert   = "mcp"
	SourceGenerate = "generate"
)

// DefaultGenerateCount is used when /mcp/generate has no count parameter.
const DefaultGenerateCount = 10

// MCPHandler handles the token-gated /mcp endpoints used by agents and
// loader scripts.
type MCPHandler struct {
	ingest   ports.BulkIngest
	reporter ports.Reporter
	metrics  *telemetry.Metrics
}

// NewMCPHandler creates a new MCPHandler.
func NewMCPHandler(ingest ports.BulkIngest, reporter ports.Reporter) *MCPHandler {
	return &MCPHandler{ingest: ingest, reporter: reporter}
}

// WithMetrics makes the handler count ingested tasks on m.
func (h *MCPHandler) WithMetrics(m *telemetry.Metrics) *MCPHandler {
	h.metrics = m
	return h
}

// Schema handles GET /mcp/schema-tasks.
func (h *MCPHandler) Schema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.reporter.TaskSchema())
}

// InsertTasks handles POST /mcp/tasks. The body is a JSON array; the batch
// is validated as a whole and inserted atomically.
func (h *MCPHandler) InsertTasks(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	saved, err := h.ingest.InsertMany(r.Context(), req.ToTasks())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	h.metrics.RecordIngested(r.Context(), SourceInsert, len(saved))
	writeJSON(w, r, http.StatusOK, dto.ToTaskListResponse(saved))
}

// ListTasks handles GET /mcp/tasks?limit=N.
func (h *MCPHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", app.DefaultRecentLimit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tasks, err := h.ingest.Recent(r.Context(), limit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// Summary handles GET /mcp/tasks-summary.
func (h *MCPHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.reporter.Summary(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToSummaryResponse(s))
}

// Generate handles POST /mcp/generate?count=N.
func (h *MCPHandler) Generate(w http.ResponseWriter, r *http.Request) {
	count, err := queryInt(r, "count", DefaultGenerateCount)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	saved, err := h.ingest.GenerateSample(r.Context(), count)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	h.metrics.RecordIngested(r.Context(), SourceGenerate, len(saved))
	writeJSON(w, r, http.StatusOK, dto.ToTaskListResponse(saved))
}

// Help handles GET /mcp/help.
func (h *MCPHandler) Help(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToHelpResponse(h.reporter.Help()))
}

// Spec handles GET /mcp/spec.
func (h *MCPHandler) Spec(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToSpecResponse(h.reporter.Spec()))
}
