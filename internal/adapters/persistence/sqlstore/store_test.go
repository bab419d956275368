package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jsamuelsen11/task-service/internal/domain"
	"github.com/jsamuelsen11/task-service/internal/domain/task"
)

var today = task.Date{Year: 2026, Month: 10, Day: 19}

// setupStore opens a private in-memory database with the schema applied.
func setupStore(t *testing.T) *Store {
	t.Helper()

	db, err := Open(MemoryDSN, nil)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	s := New(db)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func due(days int) *task.Date {
	d := today.AddDays(days)
	return &d
}

func mustCreate(t *testing.T, s *Store, tk task.Task) task.Task {
	t.Helper()
	created, err := s.Create(context.Background(), &tk)
	if err != nil {
		t.Fatalf("Create(%q) error = %v", tk.Title, err)
	}
	return *created
}

func ids(tasks []task.Task) []int64 {
	out := make([]int64, len(tasks))
	for i, tk := range tasks {
		out[i] = tk.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	return fmt.Sprint(a) == fmt.Sprint(b)
}

func TestStore_CreateThenGet(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	in := task.Task{Title: "Book venue", Description: "Seats for 40", Status: task.StatusTodo, DueDate: due(3)}
	created := mustCreate(t, s, in)
	if created.ID == 0 {
		t.Fatal("Create() did not assign an id")
	}

	got, err := s.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != in.Title || got.Description != in.Description || got.Status != in.Status {
		t.Errorf("Get() = %+v, want fields of %+v", got, in)
	}
	if got.DueDate == nil || *got.DueDate != *in.DueDate {
		t.Errorf("Get().DueDate = %v, want %v", got.DueDate, in.DueDate)
	}
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()
	s := setupStore(t)

	_, err := s.Get(context.Background(), 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestStore_IDsAreNotReused(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	first := mustCreate(t, s, task.Task{Title: "a", Status: task.StatusTodo})
	if err := s.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	second := mustCreate(t, s, task.Task{Title: "b", Status: task.StatusTodo})
	if second.ID <= first.ID {
		t.Errorf("second id = %d, want > %d", second.ID, first.ID)
	}
}

func TestStore_UpdateReplacesAllFields(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	created := mustCreate(t, s, task.Task{Title: "old", Description: "old desc", Status: task.StatusTodo, DueDate: due(1)})

	upd := task.Task{ID: created.ID, Title: "new", Status: task.StatusDone}
	if _, err := s.Update(ctx, &upd); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := s.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != "new" || got.Description != "" || got.Status != task.StatusDone || got.DueDate != nil {
		t.Errorf("after Update got %+v, want title=new, empty description, DONE, no due date", got)
	}
}

func TestStore_UpdateMissing(t *testing.T) {
	t.Parallel()
	s := setupStore(t)

	_, err := s.Update(context.Background(), &task.Task{ID: 77, Title: "x", Status: task.StatusTodo})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestStore_UpdateStatusLeavesOtherFields(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	created := mustCreate(t, s, task.Task{Title: "keep", Description: "same", Status: task.StatusTodo, DueDate: due(5)})

	got, err := s.UpdateStatus(ctx, created.ID, task.StatusInProgress)
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if got.Status != task.StatusInProgress {
		t.Errorf("Status = %q, want IN_PROGRESS", got.Status)
	}
	if got.Title != created.Title || got.Description != created.Description || *got.DueDate != *created.DueDate {
		t.Errorf("UpdateStatus changed other fields: before %+v after %+v", created, got)
	}

	if _, err := s.UpdateStatus(ctx, 999, task.StatusDone); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdateStatus(missing) error = %v, want ErrNotFound", err)
	}
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	created := mustCreate(t, s, task.Task{Title: "temp", Status: task.StatusTodo})
	if err := s.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestStore_ListOrdersByStatusRankThenDueDate(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	doneSoon := mustCreate(t, s, task.Task{Title: "done soon", Status: task.StatusDone, DueDate: due(1)})
	todoUndated := mustCreate(t, s, task.Task{Title: "todo undated", Status: task.StatusTodo})
	todoLate := mustCreate(t, s, task.Task{Title: "todo late", Status: task.StatusTodo, DueDate: due(30)})
	progress := mustCreate(t, s, task.Task{Title: "in progress", Status: task.StatusInProgress, DueDate: due(2)})
	todoEarly := mustCreate(t, s, task.Task{Title: "todo early", Status: task.StatusTodo, DueDate: due(-2)})

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []int64{todoEarly.ID, todoLate.ID, todoUndated.ID, progress.ID, doneSoon.ID}
	if !equalIDs(ids(got), want) {
		t.Errorf("List() ids = %v, want %v", ids(got), want)
	}
}

func TestStore_ListByStatus(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	undated := mustCreate(t, s, task.Task{Title: "a", Status: task.StatusDone})
	later := mustCreate(t, s, task.Task{Title: "b", Status: task.StatusDone, DueDate: due(9)})
	mustCreate(t, s, task.Task{Title: "c", Status: task.StatusTodo, DueDate: due(1)})
	sooner := mustCreate(t, s, task.Task{Title: "d", Status: task.StatusDone, DueDate: due(2)})

	got, err := s.ListByStatus(ctx, task.StatusDone)
	if err != nil {
		t.Fatalf("ListByStatus() error = %v", err)
	}
	want := []int64{sooner.ID, later.ID, undated.ID}
	if !equalIDs(ids(got), want) {
		t.Errorf("ListByStatus() ids = %v, want %v", ids(got), want)
	}
}

func TestStore_CreateBatch(t *testing.T) {
	t.Parallel()

	t.Run("1000 tasks keep submission order", func(t *testing.T) {
		t.Parallel()
		s := setupStore(t)

		in := make([]task.Task, task.MaxBatchSize)
		for i := range in {
			in[i] = task.Task{Title: fmt.Sprintf("task %04d", i), Status: task.StatusTodo}
		}

		got, err := s.CreateBatch(context.Background(), in)
		if err != nil {
			t.Fatalf("CreateBatch() error = %v", err)
		}
		if len(got) != len(in) {
			t.Fatalf("len = %d, want %d", len(got), len(in))
		}
		for i := range got {
			if got[i].Title != in[i].Title {
				t.Fatalf("got[%d].Title = %q, want %q", i, got[i].Title, in[i].Title)
			}
			if i > 0 && got[i].ID <= got[i-1].ID {
				t.Fatalf("ids not increasing at %d: %d <= %d", i, got[i].ID, got[i-1].ID)
			}
		}

		n, err := s.Count(context.Background())
		if err != nil || n != int64(task.MaxBatchSize) {
			t.Errorf("Count() = %d, %v; want %d", n, err, task.MaxBatchSize)
		}
	})

	t.Run("failure writes nothing", func(t *testing.T) {
		t.Parallel()
		s := setupStore(t)
		ctx := context.Background()

		// A constraint violation half way through must roll back the first rows.
		if err := s.db.Exec(`CREATE TRIGGER reject_poison BEFORE INSERT ON tasks
			WHEN NEW.title = 'poison' BEGIN SELECT RAISE(ABORT, 'poison row'); END;`).Error; err != nil {
			t.Fatalf("creating trigger: %v", err)
		}

		in := []task.Task{
			{Title: "fine 1", Status: task.StatusTodo},
			{Title: "fine 2", Status: task.StatusTodo},
			{Title: "poison", Status: task.StatusTodo},
		}
		if _, err := s.CreateBatch(ctx, in); err == nil {
			t.Fatal("CreateBatch() error = nil, want trigger failure")
		}

		n, err := s.Count(ctx)
		if err != nil || n != 0 {
			t.Errorf("Count() = %d, %v; want 0 after rollback", n, err)
		}
	})
}

func TestStore_FindOverdue(t *testing.T) {
	t.Parallel()
	s := setupStore(t)

	lateTodo := mustCreate(t, s, task.Task{Title: "late todo", Status: task.StatusTodo, DueDate: due(-1)})
	mustCreate(t, s, task.Task{Title: "late done", Status: task.StatusDone, DueDate: due(-1)})
	mustCreate(t, s, task.Task{Title: "due today", Status: task.StatusTodo, DueDate: due(0)})
	mustCreate(t, s, task.Task{Title: "undated", Status: task.StatusTodo})
	veryLate := mustCreate(t, s, task.Task{Title: "very late", Status: task.StatusInProgress, DueDate: due(-40)})

	got, err := s.FindOverdue(context.Background(), today, task.StatusDone)
	if err != nil {
		t.Fatalf("FindOverdue() error = %v", err)
	}
	want := []int64{veryLate.ID, lateTodo.ID}
	if !equalIDs(ids(got), want) {
		t.Errorf("FindOverdue() ids = %v, want %v", ids(got), want)
	}
	for _, tk := range got {
		if tk.Status == task.StatusDone || !tk.DueDate.Before(today) {
			t.Errorf("FindOverdue() returned %+v", tk)
		}
	}
}

func TestStore_FindDueOn(t *testing.T) {
	t.Parallel()
	s := setupStore(t)

	hit := mustCreate(t, s, task.Task{Title: "today", Status: task.StatusDone, DueDate: due(0)})
	mustCreate(t, s, task.Task{Title: "tomorrow", Status: task.StatusTodo, DueDate: due(1)})

	got, err := s.FindDueOn(context.Background(), today)
	if err != nil {
		t.Fatalf("FindDueOn() error = %v", err)
	}
	if !equalIDs(ids(got), []int64{hit.ID}) {
		t.Errorf("FindDueOn() ids = %v, want [%d]", ids(got), hit.ID)
	}
}

func TestStore_SearchTitle(t *testing.T) {
	t.Parallel()
	s := setupStore(t)

	a := mustCreate(t, s, task.Task{Title: "Review Pull Request", Status: task.StatusTodo})
	b := mustCreate(t, s, task.Task{Title: "peer review notes", Status: task.StatusTodo})
	mustCreate(t, s, task.Task{Title: "Deploy", Status: task.StatusTodo})
	pct := mustCreate(t, s, task.Task{Title: "raise to 100% coverage", Status: task.StatusTodo})

	got, err := s.SearchTitle(context.Background(), "REVIEW")
	if err != nil {
		t.Fatalf("SearchTitle() error = %v", err)
	}
	if !equalIDs(ids(got), []int64{a.ID, b.ID}) {
		t.Errorf("SearchTitle(REVIEW) ids = %v, want [%d %d]", ids(got), a.ID, b.ID)
	}

	got, err = s.SearchTitle(context.Background(), "0%")
	if err != nil {
		t.Fatalf("SearchTitle() error = %v", err)
	}
	if !equalIDs(ids(got), []int64{pct.ID}) {
		t.Errorf("SearchTitle(0%%) ids = %v, want [%d]", ids(got), pct.ID)
	}
}

func TestStore_SearchTitleUnicode(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	ete := mustCreate(t, s, task.Task{Title: "ÉTÉ planning", Status: task.StatusTodo})
	uber := mustCreate(t, s, task.Task{Title: "Über release", Status: task.StatusTodo})

	tests := []struct {
		query string
		want  []int64
	}{
		{"été", []int64{ete.ID}},
		{"ÉTÉ", []int64{ete.ID}},
		{"über", []int64{uber.ID}},
		{"ÜBER REL", []int64{uber.ID}},
		{"plan", []int64{ete.ID}},
	}
	for _, tt := range tests {
		got, err := s.SearchTitle(ctx, tt.query)
		if err != nil {
			t.Fatalf("SearchTitle(%q) error = %v", tt.query, err)
		}
		if !equalIDs(ids(got), tt.want) {
			t.Errorf("SearchTitle(%q) ids = %v, want %v", tt.query, ids(got), tt.want)
		}
	}

	renamed := uber
	renamed.Title = "Ärger im Büro"
	if _, err := s.Update(ctx, &renamed); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	got, err := s.SearchTitle(ctx, "ärger")
	if err != nil {
		t.Fatalf("SearchTitle() error = %v", err)
	}
	if !equalIDs(ids(got), []int64{uber.ID}) {
		t.Errorf("SearchTitle(ärger) after rename ids = %v, want [%d]", ids(got), uber.ID)
	}
	if got, _ := s.SearchTitle(ctx, "über"); len(got) != 0 {
		t.Errorf("SearchTitle(über) after rename = %d tasks, want 0", len(got))
	}
}

func TestMigrate_BackfillsTitleFold(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	tk := mustCreate(t, s, task.Task{Title: "Öffnungszeiten", Status: task.StatusTodo})
	if err := s.db.Exec("UPDATE tasks SET title_fold = ''").Error; err != nil {
		t.Fatalf("clearing title_fold: %v", err)
	}

	if err := Migrate(s.db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	got, err := s.SearchTitle(ctx, "öffnung")
	if err != nil {
		t.Fatalf("SearchTitle() error = %v", err)
	}
	if !equalIDs(ids(got), []int64{tk.ID}) {
		t.Errorf("SearchTitle(öffnung) ids = %v, want [%d]", ids(got), tk.ID)
	}
}

func TestStore_CountsReconcile(t *testing.T) {
	t.Parallel()
	s := setupStore(t)
	ctx := context.Background()

	for i, st := range []task.Status{task.StatusTodo, task.StatusTodo, task.StatusDone, task.StatusInProgress} {
		mustCreate(t, s, task.Task{Title: strings.Repeat("x", i+1), Status: st})
	}
	victim := mustCreate(t, s, task.Task{Title: "gone", Status: task.StatusDone})
	if err := s.Delete(ctx, victim.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var sum int64
	for _, st := range task.Statuses() {
		n, err := s.CountByStatus(ctx, st)
		if err != nil {
			t.Fatalf("CountByStatus(%s) error = %v", st, err)
		}
		sum += n
	}
	total, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if total != 4 || sum != total {
		t.Errorf("total = %d, sum by status = %d; want both 4", total, sum)
	}
}

func TestStore_ListFirst(t *testing.T) {
	t.Parallel()
	s := setupStore(t)

	var want []int64
	for i := range 5 {
		tk := mustCreate(t, s, task.Task{Title: fmt.Sprintf("t%d", i), Status: task.StatusTodo})
		want = append(want, tk.ID)
	}

	got, err := s.ListFirst(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListFirst() error = %v", err)
	}
	if !equalIDs(ids(got), want[:3]) {
		t.Errorf("ListFirst(3) ids = %v, want %v", ids(got), want[:3])
	}
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()
	s := setupStore(t)

	if s.Name() != "database" {
		t.Errorf("Name() = %q, want database", s.Name())
	}
	if err := s.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}
}

func TestStatusRankOrder(t *testing.T) {
	t.Parallel()

	got := statusRankOrder()
	want := "CASE status WHEN 'TODO' THEN 0 WHEN 'IN_PROGRESS' THEN 1 WHEN 'DONE' THEN 2 ELSE 3 END ASC"
	if got != want {
		t.Errorf("statusRankOrder() = %q, want %q", got, want)
	}
}
