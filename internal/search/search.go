package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// defaultConcurrency bounds the number of in-flight describe calls.
const defaultConcurrency = 8

// Fetcher retrieves the rows of one resource kind for a single pair.
type Fetcher[R any] func(ctx context.Context, pair Pair) ([]R, error)

// FetchError records a failed fetch for one pair.
type FetchError struct {
	Pair Pair
	Err  error
}

func (e FetchError) Error() string {
	return fmt.Sprintf("account %s region %s: %v", e.Pair.Account, e.Pair.Region, e.Err)
}

func (e FetchError) Unwrap() error { return e.Err }

// Run fans fetch out over all pairs with bounded concurrency and joins the
// results back into pair order, so the final row order follows the
// account-major iteration order regardless of completion order. Failed pairs
// are collected rather than aborting the run; within a pair the API order is
// kept.
func Run[R any](ctx context.Context, pairs []Pair, fetch Fetcher[R]) ([]R, []FetchError) {
	results := make([][]R, len(pairs))
	errs := make([]error, len(pairs))

	var g errgroup.Group
	g.SetLimit(defaultConcurrency)

	for i, pair := range pairs {
		g.Go(func() error {
			rows, err := fetch(ctx, pair)
			if err != nil {
				errs[i] = err
				return nil
			}
			results[i] = rows
			return nil
		})
	}
	_ = g.Wait()

	var rows []R
	var failures []FetchError
	for i, pair := range pairs {
		if errs[i] != nil {
			failures = append(failures, FetchError{Pair: pair, Err: errs[i]})
			continue
		}
		rows = append(rows, results[i]...)
	}

	return rows, failures
}
