package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen11/task-service/internal/domain"
	"github.com/jsamuelsen11/task-service/internal/domain/task"
	"github.com/jsamuelsen11/task-service/internal/ports"
)

// MsgQueryRequired is returned when a title search has no query.
const MsgQueryRequired = "Query is required"

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService on top of the TaskStore port.
// It validates input, applies defaults and resolves "today" for the date
// based views. It holds no state between calls.
type TaskService struct {
	store  ports.TaskStore
	logger *slog.Logger
	now    func() time.Time
}

// NewTaskService creates a TaskService. A nil logger is replaced with a no-op logger.
func NewTaskService(store ports.TaskStore, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// List returns all tasks sorted by status then due date.
func (s *TaskService) List(ctx context.Context) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "listing tasks")

	tasks, err := s.store.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, "List", "listing tasks", err)
	}
	return tasks, nil
}

// ListByStatus returns tasks with the given status sorted by due date.
func (s *TaskService) ListByStatus(ctx context.Context, status task.Status) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "listing tasks by status", slog.String("status", status.String()))

	if !status.IsValid() {
		return nil, domain.NewValidationError("status", task.MsgStatusInvalid)
	}

	tasks, err := s.store.ListByStatus(ctx, status)
	if err != nil {
		return nil, s.fail(ctx, "ListByStatus", "listing tasks by status", err, slog.String("status", status.String()))
	}
	return tasks, nil
}

// Get returns a single task.
func (s *TaskService) Get(ctx context.Context, id int64) (*task.Task, error) {
	s.logger.InfoContext(ctx, "fetching task", slog.Int64("id", id))

	t, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "Get", "fetching task", err, slog.Int64("id", id))
	}
	return t, nil
}

// Create validates and persists a new task.
func (s *TaskService) Create(ctx context.Context, t *task.Task) (*task.Task, error) {
	s.logger.InfoContext(ctx, "creating task", slog.String("title", t.Title))

	t.ApplyDefaults()
	if err := t.Validate(); err != nil {
		return nil, err
	}

	created, err := s.store.Create(ctx, t)
	if err != nil {
		return nil, s.fail(ctx, "Create", "creating task", err)
	}
	return created, nil
}

// Update replaces title, description, status and due date of an existing task.
func (s *TaskService) Update(ctx context.Context, id int64, t *task.Task) (*task.Task, error) {
	s.logger.InfoContext(ctx, "updating task", slog.Int64("id", id))

	t.ApplyDefaults()
	if err := t.Validate(); err != nil {
		return nil, err
	}

	t.ID = id
	updated, err := s.store.Update(ctx, t)
	if err != nil {
		return nil, s.fail(ctx, "Update", "updating task", err, slog.Int64("id", id))
	}
	return updated, nil
}

// UpdateStatus replaces only the status of an existing task.
func (s *TaskService) UpdateStatus(ctx context.Context, id int64, status task.Status) (*task.Task, error) {
	s.logger.InfoContext(ctx, "updating task status",
		slog.Int64("id", id),
		slog.String("status", status.String()),
	)

	if !status.IsValid() {
		return nil, domain.NewValidationError("status", task.MsgStatusInvalid)
	}

	updated, err := s.store.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, s.fail(ctx, "UpdateStatus", "updating task status", err, slog.Int64("id", id))
	}
	return updated, nil
}

// Delete removes a task.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting task", slog.Int64("id", id))

	if err := s.store.Delete(ctx, id); err != nil {
		return s.fail(ctx, "Delete", "deleting task", err, slog.Int64("id", id))
	}
	return nil
}

// Overdue returns tasks due before today that are not DONE.
func (s *TaskService) Overdue(ctx context.Context) ([]task.Task, error) {
	today := s.today()
	s.logger.InfoContext(ctx, "listing overdue tasks", slog.String("today", today.String()))

	tasks, err := s.store.FindOverdue(ctx, today, task.StatusDone)
	if err != nil {
		return nil, s.fail(ctx, "Overdue", "listing overdue tasks", err)
	}
	return tasks, nil
}

// DueToday returns tasks due today.
func (s *TaskService) DueToday(ctx context.Context) ([]task.Task, error) {
	today := s.today()
	s.logger.InfoContext(ctx, "listing tasks due today", slog.String("today", today.String()))

	tasks, err := s.store.FindDueOn(ctx, today)
	if err != nil {
		return nil, s.fail(ctx, "DueToday", "listing tasks due today", err)
	}
	return tasks, nil
}

// SearchByTitle returns tasks whose title contains query, ignoring case.
func (s *TaskService) SearchByTitle(ctx context.Context, query string) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "searching tasks", slog.String("query", query))

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidationError("q", MsgQueryRequired)
	}

	tasks, err := s.store.SearchTitle(ctx, query)
	if err != nil {
		return nil, s.fail(ctx, "SearchByTitle", "searching tasks", err)
	}
	return tasks, nil
}

func (s *TaskService) today() task.Date {
	return task.DateOf(s.now())
}

// fail logs a store failure and wraps it with what the service was doing.
func (s *TaskService) fail(ctx context.Context, op, action string, err error, attrs ...any) error {
	args := append([]any{slog.String("operation", op)}, attrs...)
	args = append(args, slog.Any("error", err))
	s.logger.ErrorContext(ctx, "failed "+action, args...)
	return fmt.Errorf("%s: %w", action, err)
}
