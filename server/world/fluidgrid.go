package world

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world/fluid"
)

// The methods below let *World satisfy fluid.Grid directly.

// SetFluid writes a fluid block of the given kind and State at pos,
// notifying neighbours.
func (w *World) SetFluid(pos cube.Pos, kind fluid.Kind, state fluid.State) {
	w.SetBlockNotify(pos, w.ID(kind, state), state.Encode())
}

// ClearFluid replaces pos with air.
func (w *World) ClearFluid(pos cube.Pos) {
	w.SetBlockNotify(pos, IDAir, 0)
}

// Solidify replaces a fluid cell with a static block (lava/water contact
// products).
func (w *World) Solidify(pos cube.Pos, id byte) {
	w.SetBlockNotify(pos, id, 0)
}

// IsFluidProof reports whether the block at pos is solid enough to block
// fluid flow or support an infinite water source. A position outside the
// vertical range or in a chunk that is not loaded also counts as
// fluid-proof, so flow-cost searches never treat it as an open drop.
func (w *World) IsFluidProof(pos cube.Pos) bool {
	if pos.OutOfBounds(w.conf.Range) {
		return true
	}
	if cp, _, _, _ := chunkAndLocal(pos); w.chunks[cp] == nil {
		return true
	}
	id, _ := w.Block(pos)
	return MaterialOf(id).Solid
}

// IsAir reports whether pos is air.
func (w *World) IsAir(pos cube.Pos) bool {
	id, _ := w.Block(pos)
	return id == IDAir
}

// FluidAt returns the decoded fluid state at pos, if any.
func (w *World) FluidAt(pos cube.Pos) (kind fluid.Kind, state fluid.State, present bool) {
	id, meta := w.Block(pos)
	switch id {
	case IDWater, IDFlowingWater:
		return fluid.Water, fluid.Decode(meta), true
	case IDLava, IDFlowingLava:
		return fluid.Lava, fluid.Decode(meta), true
	}
	return 0, fluid.State{}, false
}

// ID returns the canonical block id for a fluid kind/state pair: the
// source id if State.Source is set, the flowing id otherwise.
func (w *World) ID(kind fluid.Kind, state fluid.State) byte {
	if kind == fluid.Water {
		if state.Source {
			return IDWater
		}
		return IDFlowingWater
	}
	if state.Source {
		return IDLava
	}
	return IDFlowingLava
}

// TickFluid runs one fluid update at pos for the given kind/state, using
// the world's dimension to select lava's drop cost (spec §4.4).
func (w *World) TickFluid(pos cube.Pos, kind fluid.Kind, state fluid.State) {
	fluid.Tick(w, pos, kind, state, w.conf.Dim == Nether)
}

// ScheduleTick satisfies fluid.Grid's scheduling hook by delegating to
// ScheduleBlockTick.
func (w *World) ScheduleTick(pos cube.Pos, id byte, delay int64) {
	w.ScheduleBlockTick(pos, id, delay)
}
