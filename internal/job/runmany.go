package job

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunMany runs jobs with up to concurrency of them in flight at once.
// Within each job, output ordering and progress remain monotonic; across
// jobs no ordering is guaranteed. The returned slice is indexed the same
// as jobs regardless of completion order.
func (d *Driver) RunMany(ctx context.Context, jobs []Job, concurrency int) []RunStats {
	results := make([]RunStats, len(jobs))
	if concurrency < 1 {
		concurrency = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			results[i] = d.Run(gctx, j)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
