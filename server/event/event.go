// Package event defines the structured mutation events the world emits every
// tick. External collaborators (the packet server, metrics, logging) drain
// these from the Bus after each World.Tick call and translate them into
// outbound protocol messages; the core never depends on how, or if, they are
// consumed.
package event

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/beta173/core/server/block/cube"
)

// Event is implemented by every event type the world can emit. The marker
// method keeps arbitrary values from satisfying the interface by accident.
type Event interface {
	event()
}

// BlockSet is emitted whenever a block's id or metadata actually changes.
// Per the no-op invariant, it is never emitted for a set to the same
// (id, metadata) pair the block already held.
type BlockSet struct {
	Pos      cube.Pos
	ID, Meta byte
	OldID    byte
	OldMeta  byte
}

// BlockEntitySet is emitted when a block entity is created or its persistent
// state changes (inventory, sign text, burn timers, ...).
type BlockEntitySet struct {
	Pos  cube.Pos
	Kind string
}

// BlockEntityRemove is emitted when a block entity is torn down, normally
// because the block that owned it was replaced.
type BlockEntityRemove struct {
	Pos cube.Pos
}

// EntitySpawn is emitted when an entity is inserted into the world.
type EntitySpawn struct {
	ID   uint32
	Kind string
	Pos  mgl64.Vec3
}

// EntityRemove is emitted when an entity is taken out of the world, either
// through death, despawn or being picked up/ridden away.
type EntityRemove struct {
	ID     uint32
	Reason string
}

// EntityMove reports a change in entity position and/or on-ground state.
type EntityMove struct {
	ID       uint32
	Pos      mgl64.Vec3
	OnGround bool
}

// EntityLook reports a change in entity look direction.
type EntityLook struct {
	ID  uint32
	Rot cube.Rotation
}

// EntityVelocity reports a change in entity velocity, for example after a
// collision or an explosion knockback.
type EntityVelocity struct {
	ID  uint32
	Vel mgl64.Vec3
}

// EntityDamage reports a living entity taking damage, after hurt-queue
// resolution.
type EntityDamage struct {
	ID     uint32
	Amount float64
	Health float64
}

// EntityDead reports a living entity reaching zero health.
type EntityDead struct {
	ID uint32
}

// EntityMetadata reports a change to an entity's client-visible metadata
// fields (e.g. a mob's "on fire" flag).
type EntityMetadata struct {
	ID uint32
}

// EntityPickup reports one entity (usually a player) picking up another
// (usually a dropped item).
type EntityPickup struct {
	CollectorID uint32
	ItemID      uint32
}

// EntityRide reports a rider mounting or dismounting a vehicle.
type EntityRide struct {
	RiderID   uint32
	VehicleID uint32
	Mounted   bool
}

// ChunkSet is emitted when a chunk is inserted into the loaded chunk map.
type ChunkSet struct {
	Pos cube.ChunkPos
}

// ChunkRemove is emitted when a chunk is unloaded.
type ChunkRemove struct {
	Pos cube.ChunkPos
}

// ChunkDirty is emitted when a chunk's saved-state no longer matches its
// in-memory state, so a persistence layer knows to re-save it.
type ChunkDirty struct {
	Pos cube.ChunkPos
}

// WeatherChange reports a change in the world's weather state machine.
type WeatherChange struct {
	Raining, Thundering bool
}

// Explode reports an explosion (TNT, creeper) at a position with the given
// blast radius.
type Explode struct {
	Pos    mgl64.Vec3
	Radius float64
}

// DebugParticle is a free-form particle effect hint for observers (e.g. a
// redstone dust particle trail), never relied on for correctness.
type DebugParticle struct {
	Pos  mgl64.Vec3
	Kind string
}

// SignUpdate reports a change to a sign's text.
type SignUpdate struct {
	Pos   cube.Pos
	Lines [4]string
}

// PistonState reports a piston starting to extend or retract.
type PistonState struct {
	Pos      cube.Pos
	Extended bool
}

// NoteBlockPlay reports a note block being triggered.
type NoteBlockPlay struct {
	Pos        cube.Pos
	Instrument byte
	Pitch      byte
}

// ContainerSlotChange reports a single inventory slot of a block entity
// changing.
type ContainerSlotChange struct {
	Pos  cube.Pos
	Slot int
}

// FurnaceProgress reports a change in a furnace's burn or cook timers.
type FurnaceProgress struct {
	Pos       cube.Pos
	Burn      int16
	Cook      int16
	MaxBurn   int16
	MaxCook   int16
}

func (BlockSet) event()            {}
func (BlockEntitySet) event()      {}
func (BlockEntityRemove) event()   {}
func (EntitySpawn) event()         {}
func (EntityRemove) event()        {}
func (EntityMove) event()          {}
func (EntityLook) event()          {}
func (EntityVelocity) event()      {}
func (EntityDamage) event()        {}
func (EntityDead) event()          {}
func (EntityMetadata) event()      {}
func (EntityPickup) event()        {}
func (EntityRide) event()          {}
func (ChunkSet) event()            {}
func (ChunkRemove) event()         {}
func (ChunkDirty) event()          {}
func (WeatherChange) event()       {}
func (Explode) event()             {}
func (DebugParticle) event()       {}
func (SignUpdate) event()          {}
func (PistonState) event()         {}
func (NoteBlockPlay) event()       {}
func (ContainerSlotChange) event() {}
func (FurnaceProgress) event()     {}
