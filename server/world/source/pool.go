// Package source wraps a world.ChunkSource in a bounded worker pool so
// chunk loads and saves never block a World's tick loop on disk or
// generator I/O (spec §4.7).
package source

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world"
)

// Pool dispatches Load/Save calls against an underlying world.ChunkSource,
// one goroutine per call with at most concurrency of them running at once,
// fanning load results back in through per-call result channels.
type Pool struct {
	src   world.ChunkSource
	group *errgroup.Group
	ctx   context.Context
}

// NewPool wraps src with a worker pool capped at concurrency in-flight
// Load/Save calls.
func NewPool(ctx context.Context, src world.ChunkSource, concurrency int) *Pool {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	return &Pool{src: src, group: g, ctx: gctx}
}

// LoadResult is delivered asynchronously by Pool.LoadAsync.
type LoadResult struct {
	Snapshot world.ChunkSnapshot
	Err      error
}

// LoadAsync submits a chunk load and returns a channel that receives
// exactly one LoadResult once it completes.
func (p *Pool) LoadAsync(pos cube.ChunkPos) <-chan LoadResult {
	out := make(chan LoadResult, 1)
	p.group.Go(func() error {
		snap, err := p.src.Load(pos)
		out <- LoadResult{Snapshot: snap, Err: err}
		close(out)
		return nil
	})
	return out
}

// SaveAsync submits a chunk save; errors are reported only through Wait.
func (p *Pool) SaveAsync(snap world.ChunkSnapshot) {
	p.group.Go(func() error {
		return p.src.Save(snap)
	})
}

// Wait blocks until every submitted Load/Save has completed, returning the
// first error encountered, if any.
func (p *Pool) Wait() error {
	return p.group.Wait()
}
