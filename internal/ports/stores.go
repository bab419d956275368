package ports

import (
	"context"

	"github.com/jsamuelsen11/task-service/internal/domain/task"
)

// TaskStore defines the persistence port for Task records.
// Implemented by the sqlstore (gorm) and pgstore (pgx) adapters; called by the
// application layer. Listings are returned in a deterministic order and never nil.
type TaskStore interface {
	// Create persists a new task and returns it with its assigned ID.
	Create(ctx context.Context, t *task.Task) (*task.Task, error)

	// CreateBatch persists all tasks in one transaction. Either every task is
	// written or none is. The result preserves input order.
	CreateBatch(ctx context.Context, tasks []task.Task) ([]task.Task, error)

	// Get returns a single task by ID.
	// Returns domain.ErrNotFound if the task does not exist.
	Get(ctx context.Context, id int64) (*task.Task, error)

	// Update replaces title, description, status and due date of t.ID.
	// Returns domain.ErrNotFound if the task does not exist.
	Update(ctx context.Context, t *task.Task) (*task.Task, error)

	// UpdateStatus replaces only the status of the task.
	// Returns domain.ErrNotFound if the task does not exist.
	UpdateStatus(ctx context.Context, id int64, status task.Status) (*task.Task, error)

	// Delete removes the task permanently.
	// Returns domain.ErrNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// List returns all tasks ordered by status rank, then due date ascending
	// with undated tasks last.
	List(ctx context.Context) ([]task.Task, error)

	// ListByStatus returns tasks with the given status ordered by due date
	// ascending with undated tasks last.
	ListByStatus(ctx context.Context, status task.Status) ([]task.Task, error)

	// ListFirst returns up to limit tasks ordered by ID.
	ListFirst(ctx context.Context, limit int) ([]task.Task, error)

	// FindOverdue returns tasks due strictly before today whose status is not
	// excluded, ordered by due date.
	FindOverdue(ctx context.Context, today task.Date, exclude task.Status) ([]task.Task, error)

	// FindDueOn returns tasks due on the given day.
	FindDueOn(ctx context.Context, day task.Date) ([]task.Task, error)

	// SearchTitle returns tasks whose title contains query, ignoring case.
	SearchTitle(ctx context.Context, query string) ([]task.Task, error)

	// CountByStatus returns the number of tasks with the given status.
	CountByStatus(ctx context.Context, status task.Status) (int64, error)

	// Count returns the total number of tasks.
	Count(ctx context.Context) (int64, error)
}
