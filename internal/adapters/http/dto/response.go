// Package dto provides HTTP request/response data transfer objects and the
// JSON error bodies of the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/task-service/internal/domain/task"
	"github.com/jsamuelsen11/task-service/internal/ports"
)

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate,omitempty"`
}

// ToTaskResponse converts a domain Task to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status.String(),
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.String()
	}
	return resp
}

// ToTaskListResponse converts domain tasks to a JSON array. A nil slice
// becomes an empty array.
func ToTaskListResponse(tasks []task.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i := range tasks {
		out[i] = ToTaskResponse(&tasks[i])
	}
	return out
}

// SummaryResponse is the body of GET /mcp/tasks-summary.
type SummaryResponse struct {
	ByStatus map[string]int64 `json:"byStatus"`
	Total    int64            `json:"total"`
}

// ToSummaryResponse converts a domain Summary. Every known status is present
// in ByStatus, zero when the store has none.
func ToSummaryResponse(s *task.Summary) SummaryResponse {
	by := make(map[string]int64, len(task.Statuses()))
	for _, st := range task.Statuses() {
		by[st.String()] = s.ByStatus[st]
	}
	return SummaryResponse{ByStatus: by, Total: s.Total}
}

// HelpEntryResponse describes one MCP capability.
type HelpEntryResponse struct {
	Name        string `json:"name"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// HelpResponse is the body of GET /mcp/help.
type HelpResponse struct {
	Endpoints []HelpEntryResponse `json:"endpoints"`
}

// ToHelpResponse converts the capability listing.
func ToHelpResponse(entries []ports.HelpEntry) HelpResponse {
	out := make([]HelpEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = HelpEntryResponse(e)
	}
	return HelpResponse{Endpoints: out}
}

// SpecResponse is the body of GET /mcp/spec.
type SpecResponse struct {
	SpecVersion string   `json:"specVersion"`
	Tools       []string `json:"tools"`
}

// ToSpecResponse converts the protocol descriptor.
func ToSpecResponse(d ports.SpecDescriptor) SpecResponse {
	return SpecResponse(d)
}
