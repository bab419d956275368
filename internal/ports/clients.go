package ports

import (
	"context"

	"github.com/jsamuelsen11/task-service/internal/domain/task"
)

// TaskAPIClient defines the client port for a remote task service's MCP surface.
// Implemented by the ACL adapter; called by the taskctl commands.
type TaskAPIClient interface {
	// Schema returns the remote Task JSON schema.
	Schema(ctx context.Context) (map[string]any, error)

	// InsertTasks posts one batch and returns the persisted tasks.
	// Returns domain.ErrValidation if the remote rejects the batch.
	InsertTasks(ctx context.Context, tasks []task.Task) ([]task.Task, error)

	// Summary returns remote task counts.
	Summary(ctx context.Context) (*task.Summary, error)

	// Generate asks the remote to synthesize and insert count tasks.
	Generate(ctx context.Context, count int) ([]task.Task, error)

	// Help returns the remote capability listing.
	Help(ctx context.Context) ([]HelpEntry, error)

	// Ping checks the remote readiness endpoint.
	// Returns domain.ErrUnavailable if the remote reports itself not ready.
	Ping(ctx context.Context) error
}
