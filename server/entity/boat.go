package entity

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// Boat floats on fluid surfaces and carries a single rider, using the same
// MovementComputer every other entity ticks against with water buoyancy
// added in place of full swim physics.
type Boat struct {
	Base
	move MovementComputer

	Variant BoatVariant
	riderID uint32
	mounted bool
}

func NewBoat(pos mgl64.Vec3, variant BoatVariant) *Boat {
	return &Boat{
		Base:    newBase("boat", pos, 1.375, 0.5625),
		move:    MovementComputer{Gravity: 0.04, Drag: 0.05},
		Variant: variant,
	}
}

func (b *Boat) Mount(riderID uint32) bool {
	if b.mounted {
		return false
	}
	b.riderID, b.mounted = riderID, true
	return true
}

func (b *Boat) Dismount() { b.mounted = false }

func (b *Boat) RiderID() (uint32, bool) { return b.riderID, b.mounted }

func (b *Boat) Tick(w *world.World, currentTick int64) {
	below := cube.PosFromVec3(b.pos.Sub(mgl64.Vec3{0, 0.1, 0}))
	id, _ := w.Block(below)
	if id == world.IDWater || id == world.IDFlowingWater {
		b.vel[1] += 0.05
	}
	b.pos, b.vel = b.move.TickMovement(w, b.BBox(), b.pos, b.vel)
}
