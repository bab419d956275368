package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/task-service/internal/domain"
	"github.com/jsamuelsen11/task-service/internal/domain/task"
	"github.com/jsamuelsen11/task-service/mocks"
)

var errStore = errors.New("database is locked")

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func fixedClock() time.Time {
	return time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
}

func datePtr(d task.Date) *task.Date { return &d }

func validTask() task.Task {
	return task.Task{
		ID:          7,
		Title:       "Prepare sprint review",
		Description: "Collect demos from every squad",
		Status:      task.StatusInProgress,
		DueDate:     datePtr(task.Date{Year: 2026, Month: 10, Day: 21}),
	}
}

func newTestTaskService(t *testing.T) (*TaskService, *mocks.MockTaskStore) {
	t.Helper()
	store := mocks.NewMockTaskStore(t)
	svc := NewTaskService(store, discardLogger())
	svc.now = fixedClock
	return svc, store
}

func requireFieldError(t *testing.T, err error, field, msg string) {
	t.Helper()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *domain.ValidationError", err)
	}
	if got := verr.Fields[field]; got != msg {
		t.Errorf("Fields[%q] = %q, want %q", field, got, msg)
	}
}

func TestNewTaskService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewTaskService(mocks.NewMockTaskStore(t), nil)
	if svc.logger == nil {
		t.Fatal("NewTaskService(nil logger) should create a no-op logger, got nil")
	}
}

func TestTaskService_List(t *testing.T) {
	t.Parallel()

	t.Run("returns store order", func(t *testing.T) {
		t.Parallel()
		svc, store := newTestTaskService(t)

		want := []task.Task{{ID: 2, Title: "a"}, {ID: 1, Title: "b"}}
		store.EXPECT().List(mock.Anything).Return(want, nil)

		got, err := svc.List(context.Background())
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(got) != 2 || got[0].ID != 2 {
			t.Errorf("List() = %+v, want store order", got)
		}
	})

	t.Run("wraps store error", func(t *testing.T) {
		t.Parallel()
		svc, store := newTestTaskService(t)
		store.EXPECT().List(mock.Anything).Return(nil, errStore)

		_, err := svc.List(context.Background())
		if !errors.Is(err, errStore) {
			t.Fatalf("List() error = %v, want %v", err, errStore)
		}
	})
}

func TestTaskService_ListByStatus(t *testing.T) {
	t.Parallel()

	t.Run("passes status through", func(t *testing.T) {
		t.Parallel()
		svc, store := newTestTaskService(t)
		store.EXPECT().ListByStatus(mock.Anything, task.StatusDone).Return([]task.Task{{ID: 3}}, nil)

		got, err := svc.ListByStatus(context.Background(), task.StatusDone)
		if err != nil || len(got) != 1 {
			t.Fatalf("ListByStatus() = %v, %v", got, err)
		}
	})

	t.Run("rejects unknown status without touching the store", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestTaskService(t)

		_, err := svc.ListByStatus(context.Background(), "ARCHIVED")
		requireFieldError(t, err, "status", task.MsgStatusInvalid)
	})
}

func TestTaskService_Get(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		svc, store := newTestTaskService(t)
		want := validTask()
		store.EXPECT().Get(mock.Anything, int64(7)).Return(&want, nil)

		got, err := svc.Get(context.Background(), 7)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got.Title != want.Title {
			t.Errorf("Get().Title = %q, want %q", got.Title, want.Title)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		svc, store := newTestTaskService(t)
		store.EXPECT().Get(mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := svc.Get(context.Background(), 99)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("Get() error = %v, want ErrNotFound", err)
		}
	})
}

func TestTaskService_Create(t *testing.T) {
	t.Parallel()

	t.Run("defaults status to TODO", func(t *testing.T) {
		t.Parallel()
		svc, store := newTestTaskService(t)

		store.EXPECT().Create(mock.Anything, mock.MatchedBy(func(tk *task.Task) bool {
			return tk.Status == task.StatusTodo && tk.Title == "Ship it"
		})).RunAndReturn(func(_ context.Context, tk *task.Task) (*task.Task, error) {
			saved := *tk
			saved.ID = 1
			return &saved, nil
		})

		got, err := svc.Create(context.Background(), &task.Task{Title: "Ship it"})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if got.ID != 1 || got.Status != task.StatusTodo {
			t.Errorf("Create() = %+v, want id 1 with TODO", got)
		}
	})

	t.Run("blank title is rejected before the store", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestTaskService(t)

		_, err := svc.Create(context.Background(), &task.Task{Title: " "})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Create() error = %v, want ErrValidation", err)
		}
		requireFieldError(t, err, "title", task.MsgTitleRequired)
	})

	t.Run("long description is rejected", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestTaskService(t)

		_, err := svc.Create(context.Background(), &task.Task{Title: "x", Description: strings.Repeat("d", 501)})
		requireFieldError(t, err, "description", task.MsgDescriptionTooLong)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		svc, store := newTestTaskService(t)
		store.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, errStore)

		_, err := svc.Create(context.Background(), &task.Task{Title: "x"})
		if !errors.Is(err, errStore) {
			t.Fatalf("Create() error = %v, want %v", err, errStore)
		}
	})
}

func TestTaskService_Update(t *testing.T) {
	t.Parallel()

	t.Run("sets the id from the path", func(t *testing.T) {
		t.Parallel()
		svc, store := newTestTaskService(t)

		in := validTask()
		in.ID = 0
		store.EXPECT().Update(mock.Anything, mock.MatchedBy(func(tk *task.Task) bool {
			return tk.ID == 42 && tk.Title == in.Title
		})).RunAndReturn(func(_ context.Context, tk *task.Task) (*task.Task, error) {
			return tk, nil
		})

		got, err := svc.Update(context.Background(), 42, &in)
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if got.ID != 42 {
			t.Errorf("Update().ID = %d, want 42", got.ID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		svc, store := newTestTaskService(t)
		store.EXPECT().Update(mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

		in := validTask()
		_, err := svc.Update(context.Background(), 5, &in)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("Update() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("invalid title", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestTaskService(t)

		in := validTask()
		in.Title = strings.Repeat("t", 101)
		_, err := svc.Update(context.Background(), 5, &in)
		requireFieldError(t, err, "title", task.MsgTitleTooLong)
	})
}

func TestTaskService_UpdateStatus(t *testing.T) {
	t.Parallel()

	t.Run("updates status", func(t *testing.T) {
		t.Parallel()
		svc, store := newTestTaskService(t)
		want := validTask()
		want.Status = task.StatusDone
		store.EXPECT().UpdateStatus(mock.Anything, int64(7), task.StatusDone).Return(&want, nil)

		got, err := svc.UpdateStatus(context.Background(), 7, task.StatusDone)
		if err != nil || got.Status != task.StatusDone {
			t.Fatalf("UpdateStatus() = %+v, %v", got, err)
		}
	})

	t.Run("empty status is invalid", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestTaskService(t)

		_, err := svc.UpdateStatus(context.Background(), 7, "")
		requireFieldError(t, err, "status", task.MsgStatusInvalid)
	})
}

func TestTaskService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deletes", func(t *testing.T) {
		t.Parallel()
		svc, store := newTestTaskService(t)
		store.EXPECT().Delete(mock.Anything, int64(3)).Return(nil)

		if err := svc.Delete(context.Background(), 3); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()
		svc, store := newTestTaskService(t)
		store.EXPECT().Delete(mock.Anything, int64(3)).Return(domain.ErrNotFound)

		if err := svc.Delete(context.Background(), 3); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("Delete() error = %v, want ErrNotFound", err)
		}
	})
}

func TestTaskService_DateViewsUseToday(t *testing.T) {
	t.Parallel()

	today := task.Date{Year: 2026, Month: 10, Day: 19}

	t.Run("overdue excludes DONE", func(t *testing.T) {
		t.Parallel()
		svc, store := newTestTaskService(t)
		store.EXPECT().FindOverdue(mock.Anything, today, task.StatusDone).Return([]task.Task{}, nil)

		if _, err := svc.Overdue(context.Background()); err != nil {
			t.Fatalf("Overdue() error = %v", err)
		}
	})

	t.Run("due today", func(t *testing.T) {
		t.Parallel()
		svc, store := newTestTaskService(t)
		store.EXPECT().FindDueOn(mock.Anything, today).Return([]task.Task{{ID: 1}}, nil)

		got, err := svc.DueToday(context.Background())
		if err != nil || len(got) != 1 {
			t.Fatalf("DueToday() = %v, %v", got, err)
		}
	})
}

func TestTaskService_SearchByTitle(t *testing.T) {
	t.Parallel()

	t.Run("trims the query", func(t *testing.T) {
		t.Parallel()
		svc, store := newTestTaskService(t)
		store.EXPECT().SearchTitle(mock.Anything, "review").Return([]task.Task{{ID: 7}}, nil)

		got, err := svc.SearchByTitle(context.Background(), "  review ")
		if err != nil || len(got) != 1 {
			t.Fatalf("SearchByTitle() = %v, %v", got, err)
		}
	})

	t.Run("blank query", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestTaskService(t)

		_, err := svc.SearchByTitle(context.Background(), "   ")
		requireFieldError(t, err, "q", MsgQueryRequired)
	})
}
