package entity

import (
	"github.com/beta173/core/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// Minecart carries a single rider along whatever surface it's on, using
// the same MovementComputer-driven physics as Boat; rail-specific speed
// boosts and curve-snapping are a block-behavior concern (package block's
// rail kinds) this entity doesn't yet consult, so for now a minecart
// coasts under plain gravity and collision like any other free body.
type Minecart struct {
	Base
	move MovementComputer

	riderID uint32
	mounted bool
}

func NewMinecart(pos mgl64.Vec3) *Minecart {
	return &Minecart{
		Base: newBase("minecart", pos, 0.98, 0.7),
		move: MovementComputer{Gravity: 0.04, Drag: 0.05},
	}
}

func (m *Minecart) Mount(riderID uint32) bool {
	if m.mounted {
		return false
	}
	m.riderID, m.mounted = riderID, true
	return true
}

func (m *Minecart) Dismount() { m.mounted = false }

func (m *Minecart) RiderID() (uint32, bool) { return m.riderID, m.mounted }

func (m *Minecart) Tick(w *world.World, currentTick int64) {
	m.pos, m.vel = m.move.TickMovement(w, m.BBox(), m.pos, m.vel)
}

// Bolt is the instantaneous lightning-strike entity: it deals damage to
// everything within a small radius and ignites nearby creepers the same
// tick it spawns, then removes itself, matching the original's one-tick
// lightning-bolt lifetime.
type Bolt struct {
	Base
}

func NewBolt(pos mgl64.Vec3) *Bolt {
	return &Bolt{Base: newBase("lightning_bolt", pos, 0, 0)}
}

const boltStrikeRadius = 3.0

func (b *Bolt) Tick(w *world.World, currentTick int64) {
	box := b.BBox().Grow(boltStrikeRadius)
	w.IterEntitiesColliding(box, b.id, func(id uint32, e world.Entity) {
		if living, ok := e.(world.Living); ok {
			living.Hurt(5, nil)
		}
		if creeper, ok := e.(*Creeper); ok {
			creeper.Ignite()
		}
	})
	w.RemoveEntity(b.id, "struck")
}
