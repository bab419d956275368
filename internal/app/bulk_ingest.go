package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/task-service/internal/domain"
	"github.com/jsamuelsen11/task-service/internal/domain/task"
	"github.com/jsamuelsen11/task-service/internal/ports"
)

// Messages and defaults of the generation and listing operations.
const (
	MsgGenerateTooMany = "Generation limit is 1000"
	MsgGenerateTooFew  = "Count must be >= 1"

	DefaultRecentLimit = 100
)

// Compile-time check that BulkIngest implements ports.BulkIngest.
var _ ports.BulkIngest = (*BulkIngest)(nil)

// BulkIngest implements ports.BulkIngest. Batches are validated as a whole
// before anything is written, then persisted in one store transaction.
type BulkIngest struct {
	store   ports.TaskStore
	samples *SampleFactory
	logger  *slog.Logger
	now     func() time.Time
}

// NewBulkIngest creates a BulkIngest. A nil logger is replaced with a no-op logger.
func NewBulkIngest(store ports.TaskStore, samples *SampleFactory, logger *slog.Logger) *BulkIngest {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &BulkIngest{
		store:   store,
		samples: samples,
		logger:  logger,
		now:     time.Now,
	}
}

// InsertMany validates every item and inserts the batch atomically.
func (b *BulkIngest) InsertMany(ctx context.Context, tasks []task.Task) ([]task.Task, error) {
	b.logger.InfoContext(ctx, "inserting task batch", slog.Int("count", len(tasks)))

	if err := task.ValidateBatch(tasks); err != nil {
		return nil, err
	}

	saved, err := b.store.CreateBatch(ctx, tasks)
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to insert task batch",
			slog.String("operation", "InsertMany"),
			slog.Int("count", len(tasks)),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("inserting task batch: %w", err)
	}

	b.logger.InfoContext(ctx, "inserted task batch", slog.Int("count", len(saved)))
	return saved, nil
}

// GenerateSample synthesizes count tasks and inserts them as one batch.
func (b *BulkIngest) GenerateSample(ctx context.Context, count int) ([]task.Task, error) {
	b.logger.InfoContext(ctx, "generating sample tasks", slog.Int("count", count))

	switch {
	case count > task.MaxBatchSize:
		return nil, domain.NewValidationError("count", MsgGenerateTooMany)
	case count < 1:
		return nil, domain.NewValidationError("count", MsgGenerateTooFew)
	}

	return b.InsertMany(ctx, b.samples.Tasks(count, task.DateOf(b.now())))
}

// Recent returns up to limit tasks ordered by ID. Non-positive limits fall
// back to DefaultRecentLimit; limits above the batch size are clipped.
func (b *BulkIngest) Recent(ctx context.Context, limit int) ([]task.Task, error) {
	switch {
	case limit <= 0:
		limit = DefaultRecentLimit
	case limit > task.MaxBatchSize:
		limit = task.MaxBatchSize
	}

	tasks, err := b.store.ListFirst(ctx, limit)
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to list recent tasks",
			slog.String("operation", "Recent"),
			slog.Int("limit", limit),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing recent tasks: %w", err)
	}
	return tasks, nil
}
