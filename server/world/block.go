package world

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/rand"
)

// Behavior is implemented by the package-level singleton a block kind
// registers for its id. Every block has one registered Material (§4.4.1);
// not every block needs a Behavior — "plain" blocks like stone or dirt rely
// entirely on Material and the zero-value (no-op) hook behaviour.
//
// Individual hooks are declared as separate optional interfaces below,
// following spec §4.2: a Behavior implements only the hooks relevant to it,
// and the world type-asserts for each one at the point it needs it, exactly
// the way package block's concrete values implement world.RandomTicker,
// world.Placer and so on independently.
type Behavior interface {
	// BlockName returns the registered name, for diagnostics and events.
	BlockName() string
}

// Placer is implemented by blocks with placement legality rules beyond "the
// target position is replaceable".
type Placer interface {
	CanPlace(w *World, pos cube.Pos, face cube.Face, id byte) bool
}

// PlaceHandler is implemented by blocks that need to do more at placement
// time than write the raw id/metadata: installing a block entity, deriving
// metadata from the placer's facing, etc. It returns the metadata to store.
type PlaceHandler interface {
	Place(w *World, pos cube.Pos, face cube.Face, id byte, placer Entity) (meta byte)
}

// RandomTicker is implemented by blocks with random-tick behaviour: crop
// growth, fluid promotion, sapling growth, fire spread, etc.
type RandomTicker interface {
	RandomTick(w *World, pos cube.Pos, id, meta byte, r *rand.Source)
}

// ScheduledTicker is implemented by blocks that schedule themselves a
// deferred tick: repeaters, torches, buttons, dispensers, fluids.
type ScheduledTicker interface {
	ScheduledTick(w *World, pos cube.Pos, id, meta byte)
}

// NeighbourChanger is implemented by blocks that react to a neighbouring
// block changing: doors/trapdoors reacting to power, fluid reassessment,
// flower validity checks, redstone graph invalidation.
type NeighbourChanger interface {
	NeighbourChanged(w *World, pos cube.Pos, id, meta byte, origin cube.Pos)
}

// Interaction is the result of a block Interact call.
type Interaction struct {
	Kind      InteractionKind
	Positions []cube.Pos
}

// InteractionKind enumerates the outcomes of Behavior.Interact.
type InteractionKind uint8

const (
	InteractionNone InteractionKind = iota
	InteractionHandled
	InteractionOpenCraftingTable
	InteractionOpenChest
	InteractionOpenFurnace
	InteractionOpenDispenser
	InteractionSleep
)

// Interactor is implemented by blocks a player can right-click to trigger a
// state change or open a container UI.
type Interactor interface {
	Interact(w *World, pos cube.Pos, id, meta byte, user Entity) Interaction
}

// Collider is implemented by blocks whose collision geometry is not a
// single full cube (stairs, pistons, fences, ...). CollidingBoxes returns
// world-space boxes.
type Collider interface {
	CollidingBoxes(w *World, pos cube.Pos, id, meta byte) []cube.BBox
}

// Overlay is implemented by blocks with a non-collidable selection/render
// box distinct from their collision box (e.g. open doors, torches).
type Overlay interface {
	OverlayBoxes(w *World, pos cube.Pos, id, meta byte) []cube.BBox
}

// BreakInfo carries the parameters governing how long a block takes to
// break and what it drops.
type BreakInfo struct {
	Hardness    float64
	Drops       func(meta byte) []ItemStack
	Tool        ToolKind
	MinToolTier int
}

// Breakable is implemented by blocks with non-default break behaviour (loot
// tables, tool requirements).
type Breakable interface {
	BreakInfo(meta byte) BreakInfo
}

var behaviors [256]Behavior

// RegisterBehavior installs the Behavior singleton for a block id. Called
// from package block's init functions.
func RegisterBehavior(id byte, b Behavior) {
	behaviors[id] = b
}

// BehaviorFor returns the registered Behavior for id, or nil if the block
// has no special behaviour registered.
func BehaviorFor(id byte) Behavior {
	return behaviors[id]
}

// ToolKind enumerates the broad tool categories break-speed tables key on.
type ToolKind uint8

const (
	ToolNone ToolKind = iota
	ToolPickaxe
	ToolAxe
	ToolShovel
	ToolHoe
	ToolShears
)

// ItemStack is the minimal representation of an item stack the core needs:
// enough to drop, hold and render loot, without depending on package item
// (which depends on world) and thereby creating a cycle. Package item
// defines no stack type of its own.
type ItemStack struct {
	ID     int16
	Count  byte
	Damage int16
}

// Empty reports whether the stack represents no item.
func (s ItemStack) Empty() bool { return s.Count == 0 || s.ID == 0 }
