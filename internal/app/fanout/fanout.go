// Package fanout runs one function over a slice of items with a bounded
// number of goroutines and returns the outcomes in input order. The reporter
// uses it for its per-status count queries and taskctl uses it to post
// batches in parallel.
package fanout

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers goroutines at a time.
// A failing item does not stop the others; every failure is recorded in its
// own Result. Items that have not started when ctx is canceled record
// ctx.Err() without calling fn. Run blocks until every item has a Result.
//
// maxWorkers below 1 is treated as 1. An empty items slice yields an empty,
// non-nil result slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Values unpacks results. It returns every value in order when all items
// succeeded, otherwise the joined errors annotated with their item index.
func Values[R any](results []Result[R]) ([]R, error) {
	values := make([]R, 0, len(results))
	var errs []error
	for i, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, r.Err))
			continue
		}
		values = append(values, r.Value)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return values, nil
}
