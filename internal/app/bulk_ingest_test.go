package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/task-service/internal/domain"
	"github.com/jsamuelsen11/task-service/internal/domain/task"
	"github.com/jsamuelsen11/task-service/mocks"
)

func newTestBulkIngest(t *testing.T) (*BulkIngest, *mocks.MockTaskStore) {
	t.Helper()
	store := mocks.NewMockTaskStore(t)
	b := NewBulkIngest(store, NewSampleFactory(42), discardLogger())
	b.now = fixedClock
	return b, store
}

// assignIDs mimics a store that numbers tasks in submission order.
func assignIDs(_ context.Context, tasks []task.Task) ([]task.Task, error) {
	out := make([]task.Task, len(tasks))
	for i, tk := range tasks {
		tk.ID = int64(i + 1)
		out[i] = tk
	}
	return out, nil
}

func titled(n int) []task.Task {
	out := make([]task.Task, n)
	for i := range out {
		out[i] = task.Task{Title: "item"}
	}
	return out
}

func TestBulkIngest_InsertMany(t *testing.T) {
	t.Parallel()

	t.Run("empty batch", func(t *testing.T) {
		t.Parallel()
		b, _ := newTestBulkIngest(t)

		_, err := b.InsertMany(context.Background(), []task.Task{})
		requireFieldError(t, err, "tasks", task.MsgBatchEmpty)
	})

	t.Run("1001 items", func(t *testing.T) {
		t.Parallel()
		b, _ := newTestBulkIngest(t)

		_, err := b.InsertMany(context.Background(), titled(1001))
		requireFieldError(t, err, "tasks", task.MsgBatchTooLarge)
	})

	t.Run("1000 items keep submission order", func(t *testing.T) {
		t.Parallel()
		b, store := newTestBulkIngest(t)
		store.EXPECT().CreateBatch(mock.Anything, mock.Anything).RunAndReturn(assignIDs)

		got, err := b.InsertMany(context.Background(), titled(1000))
		if err != nil {
			t.Fatalf("InsertMany() error = %v", err)
		}
		if len(got) != 1000 {
			t.Fatalf("len = %d, want 1000", len(got))
		}
		for i, tk := range got {
			if tk.ID != int64(i+1) || tk.Status != task.StatusTodo {
				t.Fatalf("got[%d] = %+v, want id %d with TODO", i, tk, i+1)
			}
		}
	})

	t.Run("one invalid item rejects the whole batch", func(t *testing.T) {
		t.Parallel()
		b, _ := newTestBulkIngest(t)

		items := titled(3)
		items[2].Title = ""
		_, err := b.InsertMany(context.Background(), items)
		requireFieldError(t, err, "tasks[2].title", task.MsgTitleRequired)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		b, store := newTestBulkIngest(t)
		store.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(nil, errStore)

		_, err := b.InsertMany(context.Background(), titled(2))
		if !errors.Is(err, errStore) {
			t.Fatalf("InsertMany() error = %v, want %v", err, errStore)
		}
	})
}

func TestBulkIngest_GenerateSample(t *testing.T) {
	t.Parallel()

	t.Run("limit exceeded", func(t *testing.T) {
		t.Parallel()
		b, _ := newTestBulkIngest(t)

		_, err := b.GenerateSample(context.Background(), 1001)
		requireFieldError(t, err, "count", MsgGenerateTooMany)
	})

	t.Run("non-positive count", func(t *testing.T) {
		t.Parallel()
		b, _ := newTestBulkIngest(t)

		_, err := b.GenerateSample(context.Background(), 0)
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("GenerateSample(0) error = %v, want ErrValidation", err)
		}
	})

	t.Run("inserts generated tasks", func(t *testing.T) {
		t.Parallel()
		b, store := newTestBulkIngest(t)
		store.EXPECT().CreateBatch(mock.Anything, mock.MatchedBy(func(tasks []task.Task) bool {
			return len(tasks) == 25
		})).RunAndReturn(assignIDs)

		got, err := b.GenerateSample(context.Background(), 25)
		if err != nil {
			t.Fatalf("GenerateSample() error = %v", err)
		}
		if len(got) != 25 {
			t.Errorf("len = %d, want 25", len(got))
		}
	})
}

func TestBulkIngest_Recent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"default when zero", 0, DefaultRecentLimit},
		{"default when negative", -5, DefaultRecentLimit},
		{"kept when in range", 20, 20},
		{"clipped to batch size", 5000, task.MaxBatchSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, store := newTestBulkIngest(t)
			store.EXPECT().ListFirst(mock.Anything, tt.wantLimit).Return([]task.Task{}, nil)

			if _, err := b.Recent(context.Background(), tt.limit); err != nil {
				t.Fatalf("Recent() error = %v", err)
			}
		})
	}
}
