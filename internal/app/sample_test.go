package app

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jsamuelsen11/task-service/internal/domain/task"
)

func TestSampleFactory_Tasks(t *testing.T) {
	t.Parallel()

	today := task.Date{Year: 2026, Month: 10, Day: 19}
	tasks := NewSampleFactory(7).Tasks(500, today)

	if len(tasks) != 500 {
		t.Fatalf("len = %d, want 500", len(tasks))
	}

	var dated int
	seen := make(map[task.Status]bool)
	for i, tk := range tasks {
		if err := tk.Validate(); err != nil {
			t.Fatalf("tasks[%d] invalid: %v", i, err)
		}
		if strings.HasSuffix(tk.Title, ".") {
			t.Errorf("tasks[%d].Title = %q, want no trailing period", i, tk.Title)
		}
		seen[tk.Status] = true
		if tk.DueDate == nil {
			continue
		}
		dated++
		if !today.Before(*tk.DueDate) || today.AddDays(90).Before(*tk.DueDate) {
			t.Errorf("tasks[%d].DueDate = %s, want within 1..90 days of %s", i, tk.DueDate, today)
		}
	}

	if len(seen) != len(task.Statuses()) {
		t.Errorf("statuses seen = %v, want all three", seen)
	}
	// 80% expected; allow generous slack for randomness.
	if dated < 325 || dated > 475 {
		t.Errorf("dated = %d of 500, want roughly 400", dated)
	}
}

func TestSampleFactory_SameSeedSameTasks(t *testing.T) {
	t.Parallel()

	today := task.Date{Year: 2026, Month: 1, Day: 1}
	a := NewSampleFactory(99).Tasks(5, today)
	b := NewSampleFactory(99).Tasks(5, today)

	for i := range a {
		if a[i].Title != b[i].Title || a[i].Status != b[i].Status {
			t.Fatalf("tasks[%d] differ: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated", 5, "trunc"},
		{"ééééé", 3, "ééé"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got := truncate(tt.in, tt.limit)
			if got != tt.want || utf8.RuneCountInString(got) > tt.limit {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
		})
	}
}

func TestSampleTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sentence string
		want     string
	}{
		{name: "plain sentence", sentence: "Quickly fix bugs.", want: "Quickly fix bugs"},
		{name: "ends with i.e.", sentence: "Anyone earlier i.e.", want: "Anyone earlier i.e"},
		{name: "ends with e.g.", sentence: "Any were e.g.", want: "Any were e.g"},
		{name: "no period", sentence: "Ship it", want: "Ship it"},
		{name: "only periods", sentence: "...", want: sampleFallbackTitle},
		{
			name:     "clipped at a period",
			sentence: strings.Repeat("a", task.MaxTitleLength-1) + ". more words.",
			want:     strings.Repeat("a", task.MaxTitleLength-1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := sampleTitle(tt.sentence); got != tt.want {
				t.Errorf("sampleTitle(%q) = %q, want %q", tt.sentence, got, tt.want)
			}
		})
	}
}
