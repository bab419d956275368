package task

import (
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/task-service/internal/domain"
)

// Field limits shared by validation and the published schema.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MaxBatchSize         = 1000
)

// Validation messages returned in ValidationError.Fields.
const (
	MsgTitleRequired      = "Title is required"
	MsgTitleTooLong       = "Title must be <= 100 characters"
	MsgDescriptionTooLong = "Description must be <= 500 characters"
	MsgStatusInvalid      = "Status must be one of TODO, IN_PROGRESS, DONE"
	MsgBatchEmpty         = "Task list cannot be empty"
	MsgBatchTooLarge      = "Batch too large; max 1000"
)

// Task is the single record tracked by the service.
type Task struct {
	ID          int64
	Title       string
	Description string
	Status      Status
	DueDate     *Date
}

// ApplyDefaults fills fields the caller may omit. An empty status becomes TODO.
func (t *Task) ApplyDefaults() {
	if t.Status == "" {
		t.Status = StatusTodo
	}
}

// Validate checks business rules for the Task entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass. Lengths are counted in characters, not bytes.
func (t *Task) Validate() error {
	fields := t.fieldErrors()
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func (t *Task) fieldErrors() map[string]string {
	fields := make(map[string]string)

	switch {
	case strings.TrimSpace(t.Title) == "":
		fields["title"] = MsgTitleRequired
	case utf8.RuneCountInString(t.Title) > MaxTitleLength:
		fields["title"] = MsgTitleTooLong
	}
	if utf8.RuneCountInString(t.Description) > MaxDescriptionLength {
		fields["description"] = MsgDescriptionTooLong
	}
	if !t.Status.IsValid() {
		fields["status"] = MsgStatusInvalid
	}

	return fields
}

// IsOverdue reports whether the task's due date has passed and it is not DONE.
func (t *Task) IsOverdue(today Date) bool {
	return t.DueDate != nil && t.DueDate.Before(today) && t.Status != StatusDone
}
