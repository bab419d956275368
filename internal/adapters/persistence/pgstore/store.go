package pgstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/task-service/internal/domain"
	"github.com/jsamuelsen11/task-service/internal/domain/task"
	"github.com/jsamuelsen11/task-service/internal/ports"
)

const tracerName = "github.com/jsamuelsen11/task-service/internal/adapters/persistence/pgstore"

const (
	selectColumns = `SELECT id, title, description, status, due_date FROM tasks`
	rankOrder     = `CASE status WHEN 'TODO' THEN 0 WHEN 'IN_PROGRESS' THEN 1 WHEN 'DONE' THEN 2 ELSE 3 END`
	dueOrder      = `due_date ASC NULLS LAST, id ASC`
)

var (
	_ ports.TaskStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store implements ports.TaskStore on a pgx pool.
type Store struct {
	pool   *pgxpool.Pool
	tracer trace.Tracer
}

// New wraps an open, migrated pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, tracer: otel.Tracer(tracerName)}
}

func (s *Store) Create(ctx context.Context, t *task.Task) (_ *task.Task, err error) {
	ctx, end := s.span(ctx, "Create")
	defer func() { end(err) }()

	row := s.pool.QueryRow(ctx,
		`INSERT INTO tasks (title, description, status, due_date) VALUES ($1, $2, $3, $4) RETURNING id`,
		t.Title, t.Description, t.Status.String(), dueArg(t.DueDate))

	out := *t
	if err := row.Scan(&out.ID); err != nil {
		return nil, fmt.Errorf("inserting task: %w", err)
	}
	return &out, nil
}

// CreateBatch inserts every task inside one transaction. Ids are returned in
// submission order.
func (s *Store) CreateBatch(ctx context.Context, tasks []task.Task) (_ []task.Task, err error) {
	ctx, end := s.span(ctx, "CreateBatch", attribute.Int("batch.size", len(tasks)))
	defer func() { end(err) }()

	out := make([]task.Task, len(tasks))
	copy(out, tasks)

	err = pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for i := range out {
			batch.Queue(
				`INSERT INTO tasks (title, description, status, due_date) VALUES ($1, $2, $3, $4) RETURNING id`,
				out[i].Title, out[i].Description, out[i].Status.String(), dueArg(out[i].DueDate),
			)
		}

		results := tx.SendBatch(ctx, batch)
		for i := range out {
			if err := results.QueryRow().Scan(&out[i].ID); err != nil {
				_ = results.Close()
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
		return results.Close()
	})
	if err != nil {
		return nil, fmt.Errorf("inserting %d tasks: %w", len(tasks), err)
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id int64) (_ *task.Task, err error) {
	ctx, end := s.span(ctx, "Get", attribute.Int64("task.id", id))
	defer func() { end(err) }()

	return s.get(ctx, id)
}

func (s *Store) Update(ctx context.Context, t *task.Task) (_ *task.Task, err error) {
	ctx, end := s.span(ctx, "Update", attribute.Int64("task.id", t.ID))
	defer func() { end(err) }()

	tag, err := s.pool.Exec(ctx,
		`UPDATE tasks SET title = $2, description = $3, status = $4, due_date = $5 WHERE id = $1`,
		t.ID, t.Title, t.Description, t.Status.String(), dueArg(t.DueDate))
	if err != nil {
		return nil, fmt.Errorf("updating task %d: %w", t.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, notFound(t.ID)
	}
	return s.get(ctx, t.ID)
}

func (s *Store) UpdateStatus(ctx context.Context, id int64, status task.Status) (_ *task.Task, err error) {
	ctx, end := s.span(ctx, "UpdateStatus", attribute.Int64("task.id", id))
	defer func() { end(err) }()

	rows, err := s.pool.Query(ctx,
		`UPDATE tasks SET status = $2 WHERE id = $1 RETURNING id, title, description, status, due_date`,
		id, status.String())
	if err != nil {
		return nil, fmt.Errorf("updating status of task %d: %w", id, err)
	}
	t, err := pgx.CollectExactlyOneRow(rows, scanTask)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("updating status of task %d: %w", id, err)
	}
	return &t, nil
}

func (s *Store) Delete(ctx context.Context, id int64) (err error) {
	ctx, end := s.span(ctx, "Delete", attribute.Int64("task.id", id))
	defer func() { end(err) }()

	tag, err := s.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting task %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return notFound(id)
	}
	return nil
}

func (s *Store) List(ctx context.Context) (_ []task.Task, err error) {
	ctx, end := s.span(ctx, "List")
	defer func() { end(err) }()

	return s.query(ctx, selectColumns+` ORDER BY `+rankOrder+`, `+dueOrder)
}

func (s *Store) ListByStatus(ctx context.Context, status task.Status) (_ []task.Task, err error) {
	ctx, end := s.span(ctx, "ListByStatus", attribute.String("task.status", status.String()))
	defer func() { end(err) }()

	return s.query(ctx, selectColumns+` WHERE status = $1 ORDER BY `+dueOrder, status.String())
}

func (s *Store) ListFirst(ctx context.Context, limit int) (_ []task.Task, err error) {
	ctx, end := s.span(ctx, "ListFirst")
	defer func() { end(err) }()

	return s.query(ctx, selectColumns+` ORDER BY id ASC LIMIT $1`, limit)
}

func (s *Store) FindOverdue(ctx context.Context, today task.Date, exclude task.Status) (_ []task.Task, err error) {
	ctx, end := s.span(ctx, "FindOverdue")
	defer func() { end(err) }()

	return s.query(ctx,
		selectColumns+` WHERE due_date IS NOT NULL AND due_date < $1 AND status <> $2 ORDER BY due_date ASC, id ASC`,
		today.Time(), exclude.String())
}

func (s *Store) FindDueOn(ctx context.Context, day task.Date) (_ []task.Task, err error) {
	ctx, end := s.span(ctx, "FindDueOn")
	defer func() { end(err) }()

	return s.query(ctx, selectColumns+` WHERE due_date = $1 ORDER BY id ASC`, day.Time())
}

func (s *Store) SearchTitle(ctx context.Context, query string) (_ []task.Task, err error) {
	ctx, end := s.span(ctx, "SearchTitle")
	defer func() { end(err) }()

	pattern := "%" + escapeLike(query) + "%"
	return s.query(ctx, selectColumns+` WHERE title ILIKE $1 ESCAPE '\' ORDER BY id ASC`, pattern)
}

func (s *Store) CountByStatus(ctx context.Context, status task.Status) (_ int64, err error) {
	ctx, end := s.span(ctx, "CountByStatus", attribute.String("task.status", status.String()))
	defer func() { end(err) }()

	var n int64
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM tasks WHERE status = $1`, status.String()).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s tasks: %w", status, err)
	}
	return n, nil
}

func (s *Store) Count(ctx context.Context) (_ int64, err error) {
	ctx, end := s.span(ctx, "Count")
	defer func() { end(err) }()

	var n int64
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM tasks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting tasks: %w", err)
	}
	return n, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "database" }

// HealthCheck pings the pool.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) get(ctx context.Context, id int64) (*task.Task, error) {
	rows, err := s.pool.Query(ctx, selectColumns+` WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("fetching task %d: %w", id, err)
	}
	t, err := pgx.CollectExactlyOneRow(rows, scanTask)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching task %d: %w", id, err)
	}
	return &t, nil
}

func (s *Store) query(ctx context.Context, sql string, args ...any) ([]task.Task, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	out, err := pgx.CollectRows(rows, scanTask)
	if err != nil {
		return nil, fmt.Errorf("scanning tasks: %w", err)
	}
	return out, nil
}

func scanTask(row pgx.CollectableRow) (task.Task, error) {
	var (
		t      task.Task
		status string
		due    *time.Time
	)
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &status, &due); err != nil {
		return task.Task{}, err
	}
	t.Status = task.Status(status)
	if due != nil {
		d := task.DateOf(*due)
		t.DueDate = &d
	}
	return t, nil
}

func (s *Store) span(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	ctx, sp := s.tracer.Start(ctx, "taskstore."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(append(attrs, attribute.String("db.system", "postgresql"))...),
	)
	return ctx, func(err error) {
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			sp.RecordError(err)
			sp.SetStatus(codes.Error, err.Error())
		}
		sp.End()
	}
}

func dueArg(d *task.Date) any {
	if d == nil {
		return nil
	}
	return d.Time()
}

func notFound(id int64) error {
	return &domain.NotFoundError{Resource: "task", ID: id}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
