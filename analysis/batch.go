package analysis

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/voltlab/dcsim/circuit"
)

// Batch analyzes many independent snapshots concurrently and returns
// their results in input order.
//
// The engine shares nothing between calls, so snapshots parallelize
// trivially; Batch fans them out over an errgroup bounded to
// GOMAXPROCS workers. Analyze itself cannot fail, so the only error
// Batch returns is the context's, and results computed before
// cancellation are still present (the rest stay nil).
//
// Complexity: sum of the member Analyze costs, divided across workers.
func Batch(ctx context.Context, circuits []circuit.Circuit, opts *Options) ([]*Result, error) {
	results := make([]*Result, len(circuits))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, c := range circuits {
		i, c := i, c
		g.Go(func() error {
			// Honor cancellation between members; a started Analyze is
			// bounded and short, so it always runs to completion.
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Analyze(c, opts)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}
