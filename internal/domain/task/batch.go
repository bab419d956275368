package task

import (
	"fmt"

	"github.com/jsamuelsen11/task-service/internal/domain"
)

// ValidateBatch applies defaults to every item and validates the batch as a
// whole. Item failures are merged into one ValidationError keyed
// "tasks[i].<field>" so the caller can reject the batch atomically.
func ValidateBatch(items []Task) error {
	switch {
	case len(items) == 0:
		return domain.NewValidationError("tasks", MsgBatchEmpty)
	case len(items) > MaxBatchSize:
		return domain.NewValidationError("tasks", MsgBatchTooLarge)
	}

	fields := make(map[string]string)
	for i := range items {
		items[i].ApplyDefaults()
		for field, msg := range items[i].fieldErrors() {
			fields[fmt.Sprintf("tasks[%d].%s", i, field)] = msg
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
