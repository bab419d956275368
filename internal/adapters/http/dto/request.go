package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/jsamuelsen11/task-service/internal/domain"
	"github.com/jsamuelsen11/task-service/internal/domain/task"
)

// MsgDueDateInvalid is reported when dueDate is not a calendar date.
const MsgDueDateInvalid = "Due date must be in yyyy-MM-dd format"

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("registering notblank: %v", err))
	}
	if err := v.RegisterValidation("taskstatus", func(fl validator.FieldLevel) bool {
		_, ok := task.ParseStatus(fl.Field().String())
		return ok
	}); err != nil {
		panic(fmt.Sprintf("registering taskstatus: %v", err))
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldMessages maps "<json field>.<failed tag>" to the message clients see.
var fieldMessages = map[string]string{
	"title.notblank":    task.MsgTitleRequired,
	"title.max":         task.MsgTitleTooLong,
	"description.max":   task.MsgDescriptionTooLong,
	"status.required":   task.MsgStatusInvalid,
	"status.taskstatus": task.MsgStatusInvalid,
	"dueDate.datetime":  MsgDueDateInvalid,
}

// TaskRequest is the JSON body for creating or replacing a task. It is also
// the element type of a batch insert.
type TaskRequest struct {
	Title       string  `json:"title"                 validate:"notblank,max=100"`
	Description string  `json:"description,omitempty" validate:"max=500"`
	Status      string  `json:"status,omitempty"      validate:"omitempty,taskstatus"`
	DueDate     *string `json:"dueDate,omitempty"     validate:"omitempty,datetime=2006-01-02"`
}

// Validate checks field rules. Returns a *domain.ValidationError if any fail.
func (r *TaskRequest) Validate() error {
	return structErrors(r, "")
}

// ToTask converts the request to a domain Task. Validate must pass first.
func (r *TaskRequest) ToTask() task.Task {
	t := task.Task{
		Title:       r.Title,
		Description: r.Description,
		Status:      task.Status(r.Status),
	}
	if r.DueDate != nil {
		if d, err := task.ParseDate(*r.DueDate); err == nil {
			t.DueDate = &d
		}
	}
	return t
}

// StatusRequest is the JSON body of a status-only update.
type StatusRequest struct {
	Status string `json:"status" validate:"required,taskstatus"`
}

// Validate checks that status is one of the known values.
func (r *StatusRequest) Validate() error {
	return structErrors(r, "")
}

// BatchRequest is the JSON array body of a bulk insert.
type BatchRequest []TaskRequest

// Validate checks the batch size and then every item, keying item failures
// as "tasks[i].field".
func (b BatchRequest) Validate() error {
	switch {
	case len(b) == 0:
		return domain.NewValidationError("tasks", task.MsgBatchEmpty)
	case len(b) > task.MaxBatchSize:
		return domain.NewValidationError("tasks", task.MsgBatchTooLarge)
	}

	fields := make(map[string]string)
	for i := range b {
		var verr *domain.ValidationError
		if errors.As(structErrors(&b[i], fmt.Sprintf("tasks[%d].", i)), &verr) {
			for k, v := range verr.Fields {
				fields[k] = v
			}
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToTasks converts every item to a domain Task.
func (b BatchRequest) ToTasks() []task.Task {
	out := make([]task.Task, len(b))
	for i := range b {
		out[i] = b[i].ToTask()
	}
	return out
}

// structErrors runs the validator and translates failures into a
// *domain.ValidationError whose keys are prefixed with prefix.
func structErrors(v any, prefix string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating request: %w", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := prefix + fe.Field()
		if _, seen := fields[key]; seen {
			continue
		}
		msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("failed %s validation", fe.Tag())
		}
		fields[key] = msg
	}
	return &domain.ValidationError{Fields: fields}
}
