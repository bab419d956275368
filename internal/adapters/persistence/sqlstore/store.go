package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/task-service/internal/domain"
	"github.com/jsamuelsen11/task-service/internal/domain/task"
	"github.com/jsamuelsen11/task-service/internal/ports"
)

const (
	insertBatchSize = 200
	tracerName      = "github.com/jsamuelsen11/task-service/internal/adapters/persistence/sqlstore"
)

var (
	_ ports.TaskStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store implements ports.TaskStore on a gorm connection.
type Store struct {
	db     *gorm.DB
	tracer trace.Tracer
}

// New wraps an open gorm connection. The schema must already be migrated.
func New(db *gorm.DB) *Store {
	return &Store{db: db, tracer: otel.Tracer(tracerName)}
}

// Create inserts a new task.
func (s *Store) Create(ctx context.Context, t *task.Task) (_ *task.Task, err error) {
	ctx, end := s.span(ctx, "Create")
	defer func() { end(err) }()

	rec := toRecord(t)
	rec.ID = 0
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("inserting task: %w", err)
	}
	return s.one(&rec)
}

// CreateBatch inserts every task in a single transaction.
func (s *Store) CreateBatch(ctx context.Context, tasks []task.Task) (_ []task.Task, err error) {
	ctx, end := s.span(ctx, "CreateBatch", attribute.Int("batch.size", len(tasks)))
	defer func() { end(err) }()

	recs := make([]taskRecord, len(tasks))
	for i := range tasks {
		recs[i] = toRecord(&tasks[i])
		recs[i].ID = 0
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&recs, insertBatchSize).Error
	})
	if err != nil {
		return nil, fmt.Errorf("inserting %d tasks: %w", len(tasks), err)
	}
	return toDomainList(recs)
}

// Get returns the task with the given id.
func (s *Store) Get(ctx context.Context, id int64) (_ *task.Task, err error) {
	ctx, end := s.span(ctx, "Get", attribute.Int64("task.id", id))
	defer func() { end(err) }()

	return s.get(s.db.WithContext(ctx), id)
}

// Update replaces every mutable column of t.ID.
func (s *Store) Update(ctx context.Context, t *task.Task) (_ *task.Task, err error) {
	ctx, end := s.span(ctx, "Update", attribute.Int64("task.id", t.ID))
	defer func() { end(err) }()

	rec := toRecord(t)
	res := s.db.WithContext(ctx).
		Model(&taskRecord{}).
		Where("id = ?", t.ID).
		Select("title", "title_fold", "description", "status", "due_date").
		Updates(&rec)
	if res.Error != nil {
		return nil, fmt.Errorf("updating task %d: %w", t.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, notFound(t.ID)
	}
	return s.get(s.db.WithContext(ctx), t.ID)
}

// UpdateStatus replaces only the status column.
func (s *Store) UpdateStatus(ctx context.Context, id int64, status task.Status) (_ *task.Task, err error) {
	ctx, end := s.span(ctx, "UpdateStatus", attribute.Int64("task.id", id))
	defer func() { end(err) }()

	res := s.db.WithContext(ctx).
		Model(&taskRecord{}).
		Where("id = ?", id).
		Update("status", status.String())
	if res.Error != nil {
		return nil, fmt.Errorf("updating status of task %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, notFound(id)
	}
	return s.get(s.db.WithContext(ctx), id)
}

// Delete removes the task with the given id.
func (s *Store) Delete(ctx context.Context, id int64) (err error) {
	ctx, end := s.span(ctx, "Delete", attribute.Int64("task.id", id))
	defer func() { end(err) }()

	res := s.db.WithContext(ctx).Delete(&taskRecord{}, id)
	if res.Error != nil {
		return fmt.Errorf("deleting task %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(id)
	}
	return nil
}

// List returns every task by status rank, then due date (undated last).
func (s *Store) List(ctx context.Context) (_ []task.Task, err error) {
	ctx, end := s.span(ctx, "List")
	defer func() { end(err) }()

	return s.find(s.db.WithContext(ctx).Order(statusRankOrder()).Order(dueDateOrder))
}

// ListByStatus returns tasks with status ordered by due date (undated last).
func (s *Store) ListByStatus(ctx context.Context, status task.Status) (_ []task.Task, err error) {
	ctx, end := s.span(ctx, "ListByStatus", attribute.String("task.status", status.String()))
	defer func() { end(err) }()

	return s.find(s.db.WithContext(ctx).Where("status = ?", status.String()).Order(dueDateOrder))
}

// ListFirst returns up to limit tasks ordered by id.
func (s *Store) ListFirst(ctx context.Context, limit int) (_ []task.Task, err error) {
	ctx, end := s.span(ctx, "ListFirst")
	defer func() { end(err) }()

	return s.find(s.db.WithContext(ctx).Order("id ASC").Limit(limit))
}

// FindOverdue returns tasks due before today whose status is not exclude.
func (s *Store) FindOverdue(ctx context.Context, today task.Date, exclude task.Status) (_ []task.Task, err error) {
	ctx, end := s.span(ctx, "FindOverdue")
	defer func() { end(err) }()

	return s.find(s.db.WithContext(ctx).
		Where("due_date IS NOT NULL AND due_date < ? AND status <> ?", today.String(), exclude.String()).
		Order("due_date ASC, id ASC"))
}

// FindDueOn returns tasks due on day.
func (s *Store) FindDueOn(ctx context.Context, day task.Date) (_ []task.Task, err error) {
	ctx, end := s.span(ctx, "FindDueOn")
	defer func() { end(err) }()

	return s.find(s.db.WithContext(ctx).Where("due_date = ?", day.String()).Order("id ASC"))
}

// SearchTitle returns tasks whose title contains query, ignoring case.
func (s *Store) SearchTitle(ctx context.Context, query string) (_ []task.Task, err error) {
	ctx, end := s.span(ctx, "SearchTitle")
	defer func() { end(err) }()

	pattern := "%" + escapeLike(foldTitle(query)) + "%"
	return s.find(s.db.WithContext(ctx).Where(`title_fold LIKE ? ESCAPE '\'`, pattern).Order("id ASC"))
}

// CountByStatus counts tasks with the given status.
func (s *Store) CountByStatus(ctx context.Context, status task.Status) (_ int64, err error) {
	ctx, end := s.span(ctx, "CountByStatus", attribute.String("task.status", status.String()))
	defer func() { end(err) }()

	var n int64
	if err := s.db.WithContext(ctx).Model(&taskRecord{}).Where("status = ?", status.String()).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("counting %s tasks: %w", status, err)
	}
	return n, nil
}

// Count counts all tasks.
func (s *Store) Count(ctx context.Context) (_ int64, err error) {
	ctx, end := s.span(ctx, "Count")
	defer func() { end(err) }()

	var n int64
	if err := s.db.WithContext(ctx).Model(&taskRecord{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("counting tasks: %w", err)
	}
	return n, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "database" }

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("getting sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) get(db *gorm.DB, id int64) (*task.Task, error) {
	var rec taskRecord
	if err := db.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(id)
		}
		return nil, fmt.Errorf("fetching task %d: %w", id, err)
	}
	return s.one(&rec)
}

func (s *Store) one(rec *taskRecord) (*task.Task, error) {
	t, err := rec.toDomain()
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) find(q *gorm.DB) ([]task.Task, error) {
	var recs []taskRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	return toDomainList(recs)
}

// span starts a store span. The returned func ends it, recording err.
func (s *Store) span(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	ctx, sp := s.tracer.Start(ctx, "taskstore."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(append(attrs, attribute.String("db.system", "sqlite"))...),
	)
	return ctx, func(err error) {
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			sp.RecordError(err)
			sp.SetStatus(codes.Error, err.Error())
		}
		sp.End()
	}
}

func notFound(id int64) error {
	return &domain.NotFoundError{Resource: "task", ID: id}
}

// statusRankOrder sorts by the status ordering table rather than by name.
func statusRankOrder() string {
	var b strings.Builder
	b.WriteString("CASE status")
	for _, st := range task.Statuses() {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", st, st.Rank())
	}
	fmt.Fprintf(&b, " ELSE %d END ASC", len(task.Statuses()))
	return b.String()
}

const dueDateOrder = "due_date IS NULL ASC, due_date ASC, id ASC"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
