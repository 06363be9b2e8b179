package fetch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SettleAll runs fn for every index below n concurrently and returns the
// outcomes in request order, whatever order the fetches complete in. One
// unit failing never aborts or delays the others; its slot simply carries
// the error. The zip-by-index join the library screen depends on falls out
// of the slot assignment.
func SettleAll[T any](ctx context.Context, n int, fn func(ctx context.Context, i int) (T, error)) []Outcome[T] {
	outcomes := make([]Outcome[T], n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			v, err := fn(ctx, i)
			if err != nil {
				outcomes[i] = Failed[T](err)
			} else {
				outcomes[i] = Settled(v)
			}
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}
