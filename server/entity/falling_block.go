package entity

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

func init() {
	world.SpawnFallingBlock = func(w *world.World, pos cube.Pos, id, meta byte) {
		fb := NewFallingBlock(pos.Vec3(), id, meta)
		w.SpawnEntity(fb, fb.setID)
	}
}

// FallingBlock simulates sand/gravel falling under gravity: it replaces
// the source block with air on spawn (done by the Gravity behaviour
// before calling the hook) and re-places the block once it lands on a
// solid surface, or drops it as an Item if the landing spot is occupied.
type FallingBlock struct {
	Base
	move     MovementComputer
	ID, Meta byte
}

func NewFallingBlock(pos mgl64.Vec3, id, meta byte) *FallingBlock {
	return &FallingBlock{
		Base: newBase("falling_block", pos.Add(mgl64.Vec3{0.5, 0, 0.5}), 0.98, 0.98),
		move: MovementComputer{Gravity: 0.04},
		ID:   id, Meta: meta,
	}
}

func (f *FallingBlock) Tick(w *world.World, currentTick int64) {
	f.pos, f.vel = f.move.TickMovement(w, f.BBox(), f.pos, f.vel)
	if !f.move.OnGround() {
		return
	}
	landing := cube.PosFromVec3(f.pos)
	existingID, _ := w.Block(landing)
	if world.MaterialOf(existingID).Solid {
		w.RemoveEntity(f.id, "blocked")
		if world.SpawnDroppedItem != nil {
			world.SpawnDroppedItem(w, landing, world.ItemStack{ID: int16(f.ID), Count: 1})
		}
		return
	}
	w.SetBlockSelfNotify(landing, f.ID, f.Meta)
	w.RemoveEntity(f.id, "landed")
}
