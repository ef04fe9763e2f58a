package grid

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Speculate runs fn once per hypothesis, each on its own Clone of g, with at
// most limit calls in flight (limit <= 0 means unbounded). Results are
// returned in hypothesis order. The first error cancels ctx for the remaining
// calls and is returned.
//
// g is only read while clones are taken; it must not be mutated until
// Speculate returns.
func Speculate[T, H, R any](
	ctx context.Context,
	g *Grid[T],
	hypotheses []H,
	limit int,
	fn func(ctx context.Context, scratch *Grid[T], h H) (R, error),
) ([]R, error) {
	results := make([]R, len(hypotheses))

	eg, egctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, h := range hypotheses {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			r, err := fn(egctx, g.Clone(), h)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
