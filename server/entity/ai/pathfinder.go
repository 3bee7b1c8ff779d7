// Package ai implements the creature pathfinding and target-acquisition
// scaffolding of spec §4.5 step 6 / §9: a bounded A* search over a graph of
// walkable cube.Pos nodes, plus the candidate-sampling step that originally
// picks a nearby goal before a path is ever searched for. Like package
// redstone and package fluid, it stays decoupled from package world through
// a small Grid interface so that world.World can adapt to it without an
// import cycle back into package entity.
package ai

import (
	"container/heap"

	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/rand"
)

// Grid is the read-only surface the pathfinder needs from the world.
type Grid interface {
	// Walkable reports whether an entity could stand with its feet at pos:
	// pos and the cell above it are open, and the cell below is solid.
	Walkable(pos cube.Pos) bool
}

// maxExpanded bounds the number of nodes A* will pop before giving up,
// keeping a single path search cheap even when no route exists; the
// original game instead bounds by distance from the start (18.0 for
// update_creature_path), which FindPath applies through the
// caller-supplied maxDistance, measured as a Manhattan distance.
const maxExpanded = 4096

type node struct {
	pos      cube.Pos
	g        float64
	f        float64
	parent   *node
	heapIdx  int
}

type openSet []*node

func (o openSet) Len() int            { return len(o) }
func (o openSet) Less(i, j int) bool  { return o[i].f < o[j].f }
func (o openSet) Swap(i, j int)       { o[i], o[j] = o[j], o[i]; o[i].heapIdx, o[j].heapIdx = i, j }
func (o *openSet) Push(x interface{}) {
	n := x.(*node)
	n.heapIdx = len(*o)
	*o = append(*o, n)
}
func (o *openSet) Pop() interface{} {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]
	return item
}

// neighbourOffsets are the step candidates searched from every node: the
// four horizontal directions at the same level, plus climbing onto or
// dropping off a one-block step, matching the step-up/step-down movement
// MovementComputer itself allows (spec §4.5).
var neighbourOffsets = []cube.Pos{
	{1, 0, 0}, {-1, 0, 0}, {0, 0, 1}, {0, 0, -1},
	{1, 1, 0}, {-1, 1, 0}, {0, 1, 1}, {0, 1, -1},
	{1, -1, 0}, {-1, -1, 0}, {0, -1, 1}, {0, -1, -1},
}

func heuristic(a, b cube.Pos) float64 {
	dx := float64(a[0] - b[0])
	dy := float64(a[1] - b[1])
	dz := float64(a[2] - b[2])
	return absf(dx) + absf(dy) + absf(dz)
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// FindPath searches for a walkable route from start to goal. It pops at
// most maxExpanded nodes, does not expand a node whose Manhattan distance
// from start exceeds maxDistance, and gives up when the open set runs dry.
// It returns the path as a sequence of block positions from the first
// step after start to goal, or ok=false if no route was found within
// those bounds; start == goal also returns ok=false.
func FindPath(g Grid, start, goal cube.Pos, maxDistance float64) (path []cube.Pos, ok bool) {
	if start == goal {
		return nil, false
	}

	open := &openSet{}
	heap.Init(open)
	came := make(map[cube.Pos]*node, 64)

	startNode := &node{pos: start, g: 0, f: heuristic(start, goal)}
	heap.Push(open, startNode)
	came[start] = startNode

	expanded := 0
	for open.Len() > 0 && expanded < maxExpanded {
		current := heap.Pop(open).(*node)
		expanded++

		if current.pos == goal {
			return reconstruct(current), true
		}
		if heuristic(start, current.pos) > maxDistance {
			continue
		}

		for _, off := range neighbourOffsets {
			nb := current.pos.Add(off)
			if !g.Walkable(nb) {
				continue
			}
			stepCost := 1.0
			if off[1] != 0 {
				stepCost = 1.4
			}
			tentativeG := current.g + stepCost
			existing, seen := came[nb]
			if seen && tentativeG >= existing.g {
				continue
			}
			n := &node{pos: nb, g: tentativeG, f: tentativeG + heuristic(nb, goal), parent: current}
			came[nb] = n
			heap.Push(open, n)
		}
	}
	return nil, false
}

func reconstruct(n *node) []cube.Pos {
	var out []cube.Pos
	for cur := n; cur.parent != nil; cur = cur.parent {
		out = append(out, cur.pos)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// WeightFunc scores a candidate wander goal; higher is preferred. Callers
// pass grass-seeking or light-avoiding functions the way the original's
// update_animal_ai/update_creature_ai specializations do.
type WeightFunc func(pos cube.Pos) float64

// SampleGoal picks the best of 10 randomly offset candidate positions
// around origin, the same fixed-sample-count search update_creature_path
// runs before ever invoking the pathfinder, so that idle wandering doesn't
// pay for a full A* search on every candidate.
func SampleGoal(r *rand.Source, origin cube.Pos, weight WeightFunc) (cube.Pos, bool) {
	var best cube.Pos
	bestWeight := 0.0
	found := false
	for i := 0; i < 10; i++ {
		try := cube.Pos{
			origin[0] + r.IntN(13) - 6,
			origin[1] + r.IntN(7) - 3,
			origin[2] + r.IntN(13) - 6,
		}
		w := weight(try)
		if !found || w > bestWeight {
			best, bestWeight, found = try, w, true
		}
	}
	return best, found
}
