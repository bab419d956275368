// Package task implements the Anti-Corruption Layer translators for the
// remote task service's MCP resources.
package task

// TaskDTO matches the remote Task schema.
type TaskDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate,omitempty"`
}

// TaskRequestDTO is one element of the remote batch insert body. ID is never
// sent; the remote assigns it.
type TaskRequestDTO struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

// SummaryDTO matches the remote tasks-summary body.
type SummaryDTO struct {
	ByStatus map[string]int64 `json:"byStatus"`
	Total    int64            `json:"total"`
}

// HelpEntryDTO describes one remote capability.
type HelpEntryDTO struct {
	Name        string `json:"name"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// HelpDTO matches the remote help body.
type HelpDTO struct {
	Endpoints []HelpEntryDTO `json:"endpoints"`
}
