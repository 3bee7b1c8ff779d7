// Package fluid implements the water/lava spread rules of spec §4.4. Like
// package redstone, it is decoupled from package world through a small Grid
// interface so that world.World can drive it without an import cycle.
package fluid

import "github.com/beta173/core/server/block/cube"

// Kind distinguishes the two fluids; their spread rules differ only in drop
// cost and infinite-source behaviour.
type Kind uint8

const (
	Water Kind = iota
	Lava
)

// State is the decoded metadata of a fluid block.
type State struct {
	Distance uint8 // 0-7; 0 means source
	Source   bool
	Falling  bool
}

// Decode unpacks a fluid metadata nibble into a State.
func Decode(meta byte) State {
	return State{
		Distance: meta & 0x7,
		Source:   meta&0x7 == 0,
		Falling:  meta&0x8 != 0,
	}
}

// Encode packs a State back into a metadata nibble.
func (s State) Encode() byte {
	meta := s.Distance & 0x7
	if s.Falling {
		meta |= 0x8
	}
	return meta
}

// Grid is the surface a fluid tick needs from the world.
type Grid interface {
	Block(pos cube.Pos) (id, meta byte)
	SetFluid(pos cube.Pos, kind Kind, state State)
	ClearFluid(pos cube.Pos)
	// Solidify replaces a fluid cell with a static block (e.g. lava meeting
	// water becomes cobblestone/obsidian/stone).
	Solidify(pos cube.Pos, id byte)
	IsFluidProof(pos cube.Pos) bool
	IsAir(pos cube.Pos) bool
	FluidAt(pos cube.Pos) (kind Kind, state State, present bool)
	ScheduleTick(pos cube.Pos, id byte, delay int64)
	ID(kind Kind, state State) byte
}

// dropCost returns the per-hop distance increment for the fluid kind; lava
// decays twice as fast as water in the overworld (per spec §4.4).
func dropCost(kind Kind, nether bool) uint8 {
	if kind == Water {
		return 1
	}
	if nether {
		return 1
	}
	return 2
}

// horizontalNeighbours returns the four horizontal cube.Pos adjacent to pos,
// in a fixed deterministic order.
func horizontalNeighbours(pos cube.Pos) [4]cube.Pos {
	return [4]cube.Pos{
		pos.Side(cube.FaceNorth),
		pos.Side(cube.FaceSouth),
		pos.Side(cube.FaceWest),
		pos.Side(cube.FaceEast),
	}
}

// Tick performs one fluid update at pos, implementing spec §4.4. nether
// selects the lava drop cost (1 in the nether dimension, 2 elsewhere).
func Tick(g Grid, pos cube.Pos, kind Kind, state State, nether bool) {
	if kind == Lava {
		if id, ok := lavaWaterContact(g, pos, state); ok {
			g.Solidify(pos, id)
			return
		}
	}

	drop := dropCost(kind, nether)

	if !state.Source {
		above := pos.Side(cube.FaceUp)
		if k, s, ok := g.FluidAt(above); ok && k == kind {
			state.Distance = s.Distance
			state.Falling = true
			g.SetFluid(pos, kind, state)
		} else {
			minDist, sources := scanNeighbours(g, pos, kind)
			if kind == Water && sources >= 2 && supportsInfiniteSource(g, pos) {
				state = State{Distance: 0, Source: true}
				g.SetFluid(pos, kind, state)
			} else {
				newDist := minDist + drop
				if newDist > 7 {
					g.ClearFluid(pos)
					return
				}
				if newDist != state.Distance || state.Falling {
					state.Distance = newDist
					state.Falling = false
					g.SetFluid(pos, kind, state)
				}
			}
		}
	}

	below := pos.Side(cube.FaceDown)
	if !g.IsFluidProof(below) {
		if _, _, present := g.FluidAt(below); !present {
			g.SetFluid(below, kind, State{Distance: state.Distance, Falling: true})
		}
		// An open cell below stops horizontal spread unless this cell is
		// itself a source.
		if !state.Source {
			return
		}
	}

	if !state.Source && !g.IsFluidProof(below) {
		return
	}

	spreadHorizontally(g, pos, kind, state, drop)
}

// scanNeighbours returns the minimum fluid distance found among the four
// horizontal neighbours (8 if none) and the count of adjacent sources.
func scanNeighbours(g Grid, pos cube.Pos, kind Kind) (minDist uint8, sources int) {
	minDist = 8
	for _, nb := range horizontalNeighbours(pos) {
		if k, s, ok := g.FluidAt(nb); ok && k == kind {
			if s.Distance < minDist {
				minDist = s.Distance
			}
			if s.Source {
				sources++
			}
		}
	}
	return
}

// supportsInfiniteSource reports whether the ground below pos (or an
// existing source fluid below) can sustain an infinite water source.
func supportsInfiniteSource(g Grid, pos cube.Pos) bool {
	below := pos.Side(cube.FaceDown)
	if g.IsFluidProof(below) {
		return true
	}
	if k, s, ok := g.FluidAt(below); ok && k == Water && s.Source {
		return true
	}
	return false
}

// spreadHorizontally performs the bounded flow-cost search described in
// spec §4.4 and writes new flowing cells into any open horizontal
// neighbour, preferring the direction that leads to the shortest drop.
func spreadHorizontally(g Grid, pos cube.Pos, kind Kind, state State, drop uint8) {
	newDist := state.Distance + drop
	if newDist > 7 {
		return
	}
	best := bestFlowDirection(g, pos)
	for _, nb := range horizontalNeighbours(pos) {
		if !g.IsAir(nb) && !canDisplace(g, nb) {
			continue
		}
		if k, s, ok := g.FluidAt(nb); ok && k == kind && s.Distance <= newDist {
			continue
		}
		if len(best) > 0 && !containsPos(best, nb) {
			// Still spread, but only the cost-preferred faces get chosen
			// when a shorter drop exists; others are skipped this tick and
			// revisited as this cell keeps scheduling ticks.
			continue
		}
		g.SetFluid(nb, kind, State{Distance: newDist})
	}
}

func canDisplace(g Grid, pos cube.Pos) bool {
	return !g.IsFluidProof(pos)
}

func containsPos(set []cube.Pos, pos cube.Pos) bool {
	for _, p := range set {
		if p == pos {
			return true
		}
	}
	return false
}

// bestFlowDirection runs a depth-limited (cap 4) search from each horizontal
// neighbour looking for the nearest open hole, and returns the subset of
// neighbours tied for the shortest drop. An empty result means no direction
// found an opening within the cap, so all open neighbours are eligible.
func bestFlowDirection(g Grid, pos cube.Pos) []cube.Pos {
	type candidate struct {
		pos  cube.Pos
		cost int
	}
	var candidates []candidate
	for _, nb := range horizontalNeighbours(pos) {
		if !g.IsAir(nb) && !canDisplace(g, nb) {
			continue
		}
		if cost, ok := holeSearch(g, nb, 4); ok {
			candidates = append(candidates, candidate{nb, cost})
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	min := candidates[0].cost
	for _, c := range candidates {
		if c.cost < min {
			min = c.cost
		}
	}
	var out []cube.Pos
	for _, c := range candidates {
		if c.cost == min {
			out = append(out, c.pos)
		}
	}
	return out
}

// holeSearch performs the depth-limited recursive search for an open drop
// from pos, capped at depth levels, per the design note in spec §9.
func holeSearch(g Grid, pos cube.Pos, depth int) (int, bool) {
	below := pos.Side(cube.FaceDown)
	if !g.IsFluidProof(below) {
		return 0, true
	}
	if depth == 0 {
		return 0, false
	}
	best := -1
	found := false
	for _, nb := range horizontalNeighbours(pos) {
		if !g.IsAir(nb) && !canDisplace(g, nb) {
			continue
		}
		if cost, ok := holeSearch(g, nb, depth-1); ok {
			if !found || cost+1 < best {
				best = cost + 1
				found = true
			}
		}
	}
	return best, found
}

// lavaWaterContact reports whether pos (a lava cell) is touching water on
// any horizontal side or from below, in which case it solidifies per
// LavaWaterInteraction instead of continuing its normal spread tick.
func lavaWaterContact(g Grid, pos cube.Pos, state State) (byte, bool) {
	touches := false
	for _, nb := range horizontalNeighbours(pos) {
		if k, _, ok := g.FluidAt(nb); ok && k == Water {
			touches = true
			break
		}
	}
	if !touches {
		if k, _, ok := g.FluidAt(pos.Side(cube.FaceDown)); ok && k == Water {
			touches = true
		}
	}
	if !touches {
		return 0, false
	}
	return LavaWaterInteraction(state)
}

// LavaWaterInteraction returns the static block id that should replace a
// lava cell adjacent to water, based on whether the lava is a source or
// flowing and the fluid distance, matching spec §4.4's obsidian/cobblestone
// rule.
func LavaWaterInteraction(state State) (id byte, ok bool) {
	if state.Source {
		return IDObsidian, true
	}
	if state.Distance <= 3 {
		return IDCobblestone, true
	}
	return 0, false
}

// Static block ids used by LavaWaterInteraction; the concrete catalog in
// package block assigns the authoritative ids, but fluid cannot import
// block (block already imports fluid indirectly through world), so the
// values mirror the original game's fixed numbering.
const (
	IDObsidian    = 49
	IDCobblestone = 4
)
