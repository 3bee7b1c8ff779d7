package entity

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/painting"
	"github.com/beta173/core/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// Painting hangs fixed to a wall; it never ticks under gravity, and a
// NeighbourChanged-style validity check (run from its own Tick, since a
// painting is an entity rather than a block) drops it if its supporting wall
// disappears.
type Painting struct {
	Base
	Motive    painting.Motive
	Direction cube.Direction
}

func NewPainting(pos mgl64.Vec3, motive painting.Motive, direction cube.Direction) *Painting {
	w, h := motive.Size()
	return &Painting{
		Base:      newBase("painting", pos, w, h),
		Motive:    motive,
		Direction: direction,
	}
}

// Tick validates that the wall behind the painting is still solid,
// removing the entity otherwise; paintings have no other per-tick state.
func (p *Painting) Tick(w *world.World, currentTick int64) {
	wallPos := cube.PosFromVec3(p.pos).Side(p.Direction.Opposite().Face())
	id, _ := w.Block(wallPos)
	if !world.MaterialOf(id).Solid {
		w.RemoveEntity(p.id, "unsupported")
	}
}
