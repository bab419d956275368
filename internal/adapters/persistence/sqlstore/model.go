package sqlstore

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/task-service/internal/domain/task"
)

type taskRecord struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string  `gorm:"column:title;size:100;not null"`
	TitleFold   string  `gorm:"column:title_fold;size:400;not null;default:'';index"`
	Description string  `gorm:"column:description;size:500;not null;default:''"`
	Status      string  `gorm:"column:status;size:16;not null;index"`
	DueDate     *string `gorm:"column:due_date;size:10;index"`
}

func (taskRecord) TableName() string { return "tasks" }

func toRecord(t *task.Task) taskRecord {
	rec := taskRecord{
		ID:          t.ID,
		Title:       t.Title,
		TitleFold:   foldTitle(t.Title),
		Description: t.Description,
		Status:      t.Status.String(),
	}
	if t.DueDate != nil {
		s := t.DueDate.String()
		rec.DueDate = &s
	}
	return rec
}

// foldTitle lowercases with Unicode rules. SQLite's LOWER and LIKE only fold
// ASCII, so searches match against this column instead of title.
func foldTitle(title string) string {
	return strings.ToLower(title)
}

func (r *taskRecord) toDomain() (task.Task, error) {
	t := task.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      task.Status(r.Status),
	}
	if r.DueDate != nil {
		d, err := task.ParseDate(*r.DueDate)
		if err != nil {
			return task.Task{}, fmt.Errorf("task %d: %w", r.ID, err)
		}
		t.DueDate = &d
	}
	return t, nil
}

func toDomainList(recs []taskRecord) ([]task.Task, error) {
	out := make([]task.Task, 0, len(recs))
	for i := range recs {
		t, err := recs[i].toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
