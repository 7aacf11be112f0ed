package worker

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Group runs long-lived loops until Stop cancels them.
type Group struct {
	ctx    context.Context
	cancel context.CancelFunc
	eg     *errgroup.Group
}

func NewGroup() *Group {
	ctx, cancel := context.WithCancel(context.Background())
	eg, ctx := errgroup.WithContext(ctx)
	return &Group{ctx: ctx, cancel: cancel, eg: eg}
}

func (g *Group) Go(run func(ctx context.Context)) {
	g.eg.Go(func() error {
		run(g.ctx)
		return nil
	})
}

// Stop cancels every loop and waits for them, or for ctx.
func (g *Group) Stop(ctx context.Context) error {
	g.cancel()
	done := make(chan error, 1)
	go func() { done <- g.eg.Wait() }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
