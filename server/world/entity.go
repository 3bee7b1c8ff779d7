package world

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/beta173/core/server/block/cube"
)

// Entity is implemented by every entity kind in package entity. World owns
// every Entity it holds exclusively; external callers interact with
// entities only through World's API and the drained event stream, never by
// holding a reference across a tick boundary.
type Entity interface {
	// ID returns the process-unique 32-bit id assigned at spawn.
	ID() uint32
	// Kind returns the entity's registered type name (e.g. "item", "zombie").
	Kind() string
	Position() mgl64.Vec3
	Rotation() cube.Rotation
	Velocity() mgl64.Vec3
	BBox() cube.BBox
	// Tick advances the entity by one world tick. currentTick is the
	// world's tick counter after being advanced for this tick.
	Tick(w *World, currentTick int64)
}

// HurtRecord is a pending damage entry pushed by attackers. Living.Tick
// drains its queue once per tick, applying the largest pending damage
// within the hurt-immunity cooldown window.
type HurtRecord struct {
	Amount   float64
	OriginID *uint32
}

// Living is implemented by entities with health, a hurt queue and AI
// (players and mobs).
type Living interface {
	Entity
	Health() float64
	MaxHealth() float64
	Dead() bool
	// Hurt enqueues a HurtRecord to be resolved on the entity's next tick.
	Hurt(amount float64, origin *uint32)
}

// Rider is implemented by entities that can carry a passenger (boats,
// minecarts, pigs with a saddle).
type Rider interface {
	Entity
	Mount(riderID uint32) bool
	Dismount()
	RiderID() (uint32, bool)
}
