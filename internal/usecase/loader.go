package usecase

import (
	"context"

	"booking-portal/internal/view"

	"golang.org/x/sync/errgroup"
)

// loadPair fills two slots concurrently. Each slot settles on its own; the
// first error is returned once both calls have finished.
func loadPair[A, B any](
	ctx context.Context,
	a *view.Slot[A], loadA func(context.Context) (A, error),
	b *view.Slot[B], loadB func(context.Context) (B, error),
) error {
	var g errgroup.Group
	g.Go(func() error { return a.Load(ctx, loadA) })
	g.Go(func() error { return b.Load(ctx, loadB) })
	return g.Wait()
}
