package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Query is one independent read issued by Parallel or Both.
type Query[T any] func(ctx context.Context) (T, error)

// Parallel runs every query concurrently and returns their results keyed by name.
//
// The first failing query cancels the context shared by the others, and its
// error, prefixed with the query name, is the only thing returned: the result
// map is nil whenever err is non-nil. On success the map holds exactly one
// entry per query.
func Parallel[T any](ctx context.Context, queries map[string]Query[T]) (map[string]T, error) {
	names := make([]string, 0, len(queries))
	for name := range queries {
		names = append(names, name)
	}
	values := make([]T, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		query := queries[name]
		g.Go(func() error {
			v, err := query(gctx)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make(map[string]T, len(names))
	for i, name := range names {
		results[name] = values[i]
	}
	return results, nil
}

// Both runs two queries of different result types concurrently, with the same
// first-error-wins semantics as Parallel. Both results are settled before it returns.
func Both[A, B any](ctx context.Context, qa Query[A], qb Query[B]) (A, B, error) {
	var (
		a A
		b B
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := qa(gctx)
		if err != nil {
			return err
		}
		a = v
		return nil
	})
	g.Go(func() error {
		v, err := qb(gctx)
		if err != nil {
			return err
		}
		b = v
		return nil
	})
	if err := g.Wait(); err != nil {
		var zeroA A
		var zeroB B
		return zeroA, zeroB, err
	}
	return a, b, nil
}
