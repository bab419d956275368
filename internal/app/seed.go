package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/task-service/internal/domain/task"
	"github.com/jsamuelsen11/task-service/internal/ports"
)

// Seeder fills an empty store with a handful of demonstration tasks.
type Seeder struct {
	store  ports.TaskStore
	logger *slog.Logger
	now    func() time.Time
}

// NewSeeder creates a Seeder. A nil logger is replaced with a no-op logger.
func NewSeeder(store ports.TaskStore, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Seeder{store: store, logger: logger, now: time.Now}
}

// Seed inserts the demonstration tasks when the store holds no tasks and
// returns the number inserted. A non-empty store is left untouched.
func (s *Seeder) Seed(ctx context.Context) (int, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting tasks before seeding: %w", err)
	}
	if n > 0 {
		s.logger.InfoContext(ctx, "store not empty, skipping seed", slog.Int64("count", n))
		return 0, nil
	}

	saved, err := s.store.CreateBatch(ctx, demoTasks(task.DateOf(s.now())))
	if err != nil {
		return 0, fmt.Errorf("seeding tasks: %w", err)
	}

	s.logger.InfoContext(ctx, "seeded demonstration tasks", slog.Int("count", len(saved)))
	return len(saved), nil
}

func demoTasks(today task.Date) []task.Task {
	due := func(days int) *task.Date {
		d := today.AddDays(days)
		return &d
	}
	return []task.Task{
		{Title: "Draft the onboarding guide", Description: "Outline setup steps for new contributors",
			Status: task.StatusTodo, DueDate: due(7)},
		{Title: "Triage open issues", Description: "Label and prioritise the issue backlog",
			Status: task.StatusInProgress, DueDate: due(2)},
		{Title: "Automate release builds", Description: "Build and publish artifacts on every tag",
			Status: task.StatusTodo, DueDate: due(14)},
		{Title: "Upgrade Go toolchain", Description: "Move the module to the current Go release",
			Status: task.StatusDone, DueDate: due(-1)},
		{Title: "Record a product demo", Description: "Short walkthrough of the task board",
			Status: task.StatusTodo, DueDate: due(10)},
		{Title: "Fix token check on MCP routes", Description: "Reject requests with a malformed bearer header",
			Status: task.StatusInProgress, DueDate: due(1)},
	}
}
