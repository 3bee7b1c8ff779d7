// Package redstone implements the power-propagation engine described in
// spec §4.3: a breadth-first walk across the connected redstone wire network
// local to a single perturbation, followed by deterministic settling in
// descending power order. The package is deliberately decoupled from
// package world: it operates purely in terms of cube.Pos and the small Grid
// interface below, so that world.World (which owns the actual chunk arrays)
// can adapt itself to Grid without creating an import cycle.
package redstone

import (
	"sort"

	"github.com/brentp/intintmap"

	"github.com/beta173/core/server/block/cube"
)

// Grid is the read/write surface the engine needs from the world to settle
// one local network. Implementations are expected to be cheap adapters over
// *world.World.
type Grid interface {
	// IsWire reports whether the block at pos is redstone wire (dust):
	// membership in the propagating network.
	IsWire(pos cube.Pos) bool
	// SourcePower returns the active power being injected into pos from a
	// neighbouring non-wire source (lever, button, torch, repeater output).
	// It does not include power relayed through other wire cells; that is
	// the engine's job.
	SourcePower(pos cube.Pos) uint8
	// SetWirePower writes the settled power level (0-15) into the wire
	// block's metadata at pos.
	SetWirePower(pos cube.Pos, power uint8)
	// Notify informs the block at pos (and any device reading power from
	// it) that the redstone state nearby has changed. The engine calls this
	// at most once per position per Propagate call.
	Notify(pos cube.Pos)
}

// Engine holds scratch buffers reused across calls to Propagate so that a
// world ticking many redstone perturbations per tick does not churn the
// allocator.
type Engine struct {
	visited map[cube.Pos]bool
	power   map[cube.Pos]uint8
	index   *intintmap.Map
	nodes   []cube.Pos
}

// NewEngine returns a ready-to-use Engine.
func NewEngine() *Engine {
	return &Engine{
		visited: make(map[cube.Pos]bool, 64),
		power:   make(map[cube.Pos]uint8, 64),
	}
}

// packPos condenses a cube.Pos into a single int64 key for the flat
// intintmap index used during BFS membership tests; it assumes world
// coordinates fit within the 20-bit range used for X/Z and 8 bits for Y,
// which comfortably covers any single local perturbation's neighbourhood.
func packPos(p cube.Pos) int64 {
	return (int64(p[0]+1<<19) << 28) | (int64(p[2]+1<<19) << 8) | int64(p[1]&0xFF)
}

// Propagate recomputes power for the connected wire network reachable from
// seed and writes the settled levels back through g, notifying every
// touched position (and its neighbours) exactly once.
func (e *Engine) Propagate(g Grid, seed cube.Pos) {
	if !g.IsWire(seed) {
		return
	}
	e.collect(g, seed)
	if len(e.nodes) == 0 {
		return
	}
	e.settle()
	e.writeBack(g)
}

// collect performs the BFS across connected wire cells, in canonical face
// order, and leaves the discovered, deterministically sorted set in e.nodes
// with initial injected power in e.power.
func (e *Engine) collect(g Grid, seed cube.Pos) {
	clear(e.visited)
	clear(e.power)
	e.nodes = e.nodes[:0]
	e.index = intintmap.New(64, 0.6)

	queue := []cube.Pos{seed}
	e.visited[seed] = true
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		e.nodes = append(e.nodes, pos)
		e.index.Put(packPos(pos), int64(len(e.nodes)-1))
		for _, f := range cube.Faces() {
			if !f.Horizontal() {
				continue
			}
			nb := pos.Side(f)
			if !e.visited[nb] && g.IsWire(nb) {
				e.visited[nb] = true
				queue = append(queue, nb)
				continue
			}
			// Step-up: wire sitting one block higher than nb, reachable by
			// climbing onto the block at nb (spec §4.3 step 1).
			up := nb.Side(cube.FaceUp)
			if !e.visited[up] && g.IsWire(up) {
				e.visited[up] = true
				queue = append(queue, up)
			}
			// Step-down: wire sitting one block lower than nb, reachable by
			// dropping into the open cell at nb.
			down := nb.Side(cube.FaceDown)
			if !e.visited[down] && g.IsWire(down) {
				e.visited[down] = true
				queue = append(queue, down)
			}
		}
	}
	sort.Slice(e.nodes, func(i, j int) bool {
		a, b := e.nodes[i], e.nodes[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
	e.index = intintmap.New(64, 0.6)
	for i, n := range e.nodes {
		e.index.Put(packPos(n), int64(i))
		e.power[n] = g.SourcePower(n)
	}
}

// settle repeatedly picks the highest-powered unsettled node (ties broken by
// the deterministic sort order from collect) and relaxes its neighbours,
// exactly as described in spec §4.3 step 3.
func (e *Engine) settle() {
	settled := make([]bool, len(e.nodes))
	remaining := len(e.nodes)
	for remaining > 0 {
		best := -1
		bestPower := -1
		for i, pos := range e.nodes {
			if settled[i] {
				continue
			}
			p := int(e.power[pos])
			if p > bestPower {
				bestPower = p
				best = i
			}
		}
		if best < 0 {
			break
		}
		settled[best] = true
		remaining--
		if bestPower <= 0 {
			continue
		}
		pos := e.nodes[best]
		for _, f := range cube.Faces() {
			if !f.Horizontal() {
				continue
			}
			nb := pos.Side(f)
			neighbours := [3]cube.Pos{nb, nb.Side(cube.FaceUp), nb.Side(cube.FaceDown)}
			for _, cand := range neighbours {
				e.relax(cand, bestPower)
			}
		}
	}
}

// relax lowers bestPower by one hop and applies it to pos if pos is a
// member of this network and the candidate beats its current power.
func (e *Engine) relax(pos cube.Pos, bestPower int) {
	if v, ok := e.index.Get(packPos(pos)); ok {
		cand := uint8(bestPower - 1)
		if cand > e.power[e.nodes[v]] {
			e.power[e.nodes[v]] = cand
		}
	}
}

func (e *Engine) writeBack(g Grid) {
	notified := NewDedupeSet(len(e.nodes)*6 + 1)
	for _, pos := range e.nodes {
		g.SetWirePower(pos, e.power[pos])
		for _, f := range cube.Faces() {
			nb := pos.Side(f)
			if notified.Add(nb) {
				g.Notify(nb)
			}
		}
		if notified.Add(pos) {
			g.Notify(pos)
		}
	}
}
