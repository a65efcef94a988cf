package pedersen

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MultiplyScalars computes n*p for every scalar concurrently. Results keep
// the order of scalars; the first failure cancels the remaining work.
func MultiplyScalars(ctx context.Context, p Point, scalars []Value) ([]Point, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	out := make([]Point, len(scalars))
	for i, n := range scalars {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := p.MultiplyScalar(n)
			if err != nil {
				return fmt.Errorf("scalar %d: %w", i, err)
			}

			out[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
