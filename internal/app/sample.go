package app

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/jsamuelsen11/task-service/internal/domain/task"
)

const (
	sampleTitleWords     = 3
	sampleDueChance      = 8 // out of 10
	sampleMaxDaysAhead   = 90
	sampleParagraphCount = 1
	sampleSentenceCount  = 4
	sampleWordCount      = 12
	sampleFallbackTitle  = "Sample task"
)

// SampleFactory synthesizes random tasks for demos and load tests.
// It is safe for concurrent use.
type SampleFactory struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

// NewSampleFactory creates a SampleFactory. A zero seed picks a random seed.
func NewSampleFactory(seed int64) *SampleFactory {
	return &SampleFactory{faker: gofakeit.New(seed)}
}

// Tasks returns n random tasks. Titles and descriptions are clipped to the
// field limits, status is uniform over all statuses, and 80% of tasks get a
// due date between 1 and 90 days after today.
func (f *SampleFactory) Tasks(n int, today task.Date) []task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()

	statuses := task.Statuses()
	out := make([]task.Task, 0, n)
	for range n {
		desc := f.faker.Paragraph(sampleParagraphCount, sampleSentenceCount, sampleWordCount, " ")

		t := task.Task{
			Title:       sampleTitle(f.faker.Sentence(sampleTitleWords)),
			Description: truncate(desc, task.MaxDescriptionLength),
			Status:      statuses[f.faker.Number(0, len(statuses)-1)],
		}
		if f.faker.Number(0, 9) < sampleDueChance {
			due := today.AddDays(f.faker.Number(1, sampleMaxDaysAhead))
			t.DueDate = &due
		}
		out = append(out, t)
	}
	return out
}

// sampleTitle clips a generated sentence to the title limit and strips every
// trailing period, including the ones left by abbreviations like "e.g.".
func sampleTitle(sentence string) string {
	title := strings.TrimRight(truncate(sentence, task.MaxTitleLength), ". ")
	if title == "" {
		return sampleFallbackTitle
	}
	return title
}

// truncate clips s to at most limit characters.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
