// Package light implements the block- and sky-light propagation of spec
// §4.6: a worklist algorithm that recomputes a position's light level from
// its emission and its neighbours, attenuated by opacity, and re-enqueues
// neighbours whose value changed as a result.
package light

import "github.com/beta173/core/server/block/cube"

// Grid is the surface the light engine needs from the world.
type Grid interface {
	Opacity(pos cube.Pos) byte
	Emission(pos cube.Pos) byte
	BlockLight(pos cube.Pos) byte
	SetBlockLight(pos cube.Pos, v byte)
	SkyLight(pos cube.Pos) byte
	SetSkyLight(pos cube.Pos, v byte)
	// AtOrAboveHeight reports whether pos is at or above the highest
	// non-transparent block in its column, i.e. it receives full sky light
	// directly.
	AtOrAboveHeight(pos cube.Pos) bool
	InBounds(pos cube.Pos) bool
}

// Engine holds the pending worklist of positions whose light value may need
// recomputing, shared across ticks to avoid reallocating the queue.
type Engine struct {
	queue []cube.Pos
	queued map[cube.Pos]bool
}

// NewEngine returns a ready-to-use Engine.
func NewEngine() *Engine {
	return &Engine{queued: make(map[cube.Pos]bool, 128)}
}

// Enqueue schedules pos (and, per spec §4.6, its neighbours across chunk
// boundaries are enqueued by the caller too) for light recomputation.
func (e *Engine) Enqueue(pos cube.Pos) {
	if e.queued[pos] {
		return
	}
	e.queued[pos] = true
	e.queue = append(e.queue, pos)
}

// Pending reports how many positions are queued.
func (e *Engine) Pending() int {
	return len(e.queue)
}

// Propagate pops queued positions and recomputes their light level,
// re-enqueueing neighbours whose value changes, until the queue is empty or
// budget recomputations have been performed. It returns how many
// recomputations were actually performed.
func (e *Engine) Propagate(g Grid, budget int) int {
	done := 0
	for done < budget && len(e.queue) > 0 {
		pos := e.queue[0]
		e.queue = e.queue[1:]
		delete(e.queued, pos)
		done++

		e.recomputeBlockLight(g, pos)
		e.recomputeSkyLight(g, pos)
	}
	return done
}

func (e *Engine) recomputeBlockLight(g Grid, pos cube.Pos) {
	if !g.InBounds(pos) {
		return
	}
	opacity := g.Opacity(pos)
	level := g.Emission(pos)
	for _, f := range cube.Faces() {
		nb := pos.Side(f)
		if !g.InBounds(nb) {
			continue
		}
		att := opacity
		if att < 1 {
			att = 1
		}
		if v := int(g.BlockLight(nb)) - int(att); v > int(level) {
			level = byte(v)
		}
	}
	if level != g.BlockLight(pos) {
		g.SetBlockLight(pos, level)
		for _, f := range cube.Faces() {
			e.Enqueue(pos.Side(f))
		}
	}
}

func (e *Engine) recomputeSkyLight(g Grid, pos cube.Pos) {
	if !g.InBounds(pos) {
		return
	}
	opacity := g.Opacity(pos)
	var level byte
	if g.AtOrAboveHeight(pos) && opacity == 0 {
		level = 15
	} else {
		for _, f := range cube.Faces() {
			nb := pos.Side(f)
			if !g.InBounds(nb) {
				continue
			}
			att := opacity
			if att < 1 {
				att = 1
			}
			if f == cube.FaceUp {
				// Direct sunlight from above does not attenuate by the
				// neighbour's opacity twice; the column-height fast path
				// above already accounts for open sky, so this branch only
				// fires for shaded columns where we fall back to the
				// generic neighbour-max rule.
				att = opacity
				if att < 1 {
					att = 1
				}
			}
			if v := int(g.SkyLight(nb)) - int(att); v > int(level) {
				level = byte(v)
			}
		}
	}
	if level != g.SkyLight(pos) {
		g.SetSkyLight(pos, level)
		for _, f := range cube.Faces() {
			e.Enqueue(pos.Side(f))
		}
	}
}
