package ports

import (
	"context"

	"github.com/jsamuelsen11/task-service/internal/domain/task"
)

// TaskService defines the service port for single-task operations and the
// derived views over the task collection.
// Implemented by the application layer; called by inbound adapters (handlers).
type TaskService interface {
	// List returns all tasks sorted by status then due date (undated last).
	List(ctx context.Context) ([]task.Task, error)

	// ListByStatus returns tasks with the given status sorted by due date.
	// Returns domain.ErrValidation if status is not a known value.
	ListByStatus(ctx context.Context, status task.Status) ([]task.Task, error)

	// Get returns a single task.
	// Returns domain.ErrNotFound if the task does not exist.
	Get(ctx context.Context, id int64) (*task.Task, error)

	// Create validates and persists a new task, defaulting status to TODO.
	// Returns domain.ErrValidation if the task fails validation.
	Create(ctx context.Context, t *task.Task) (*task.Task, error)

	// Update replaces every mutable field of an existing task.
	// Returns domain.ErrNotFound if the task does not exist.
	// Returns domain.ErrValidation if the task fails validation.
	Update(ctx context.Context, id int64, t *task.Task) (*task.Task, error)

	// UpdateStatus replaces only the status of an existing task.
	// Returns domain.ErrNotFound if the task does not exist.
	UpdateStatus(ctx context.Context, id int64, status task.Status) (*task.Task, error)

	// Delete removes a task.
	// Returns domain.ErrNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// Overdue returns tasks whose due date is before today and whose status is not DONE.
	Overdue(ctx context.Context) ([]task.Task, error)

	// DueToday returns tasks due today.
	DueToday(ctx context.Context) ([]task.Task, error)

	// SearchByTitle returns tasks whose title contains query, ignoring case.
	// Returns domain.ErrValidation if query is blank.
	SearchByTitle(ctx context.Context, query string) ([]task.Task, error)
}

// BulkIngest defines the service port for batch writes used by the MCP surface.
type BulkIngest interface {
	// InsertMany validates and persists 1..1000 tasks atomically, returning
	// them in submission order with assigned IDs.
	// Returns domain.ErrValidation for an empty, oversized or invalid batch.
	InsertMany(ctx context.Context, tasks []task.Task) ([]task.Task, error)

	// GenerateSample synthesizes count random tasks and inserts them as InsertMany does.
	// Returns domain.ErrValidation if count is outside 1..1000.
	GenerateSample(ctx context.Context, count int) ([]task.Task, error)

	// Recent returns up to limit tasks ordered by ID.
	Recent(ctx context.Context, limit int) ([]task.Task, error)
}

// Reporter defines the service port for read-only descriptions of the task
// collection and of the MCP surface itself.
type Reporter interface {
	// Summary returns task counts per status plus the overall count.
	Summary(ctx context.Context) (*task.Summary, error)

	// TaskSchema returns a JSON-Schema document describing a Task.
	TaskSchema() map[string]any

	// Help returns the static capability listing of the MCP surface.
	Help() []HelpEntry

	// Spec returns the MCP protocol descriptor.
	Spec() SpecDescriptor
}

// HelpEntry describes one MCP capability.
type HelpEntry struct {
	Name        string
	Method      string
	Path        string
	Description string
}

// SpecDescriptor names the MCP protocol revision and the tools on offer.
type SpecDescriptor struct {
	SpecVersion string
	Tools       []string
}
