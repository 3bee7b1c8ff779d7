package entity

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

func init() {
	world.SpawnDroppedItem = func(w *world.World, pos cube.Pos, stack world.ItemStack) {
		if stack.Empty() {
			return
		}
		it := NewItem(pos.Vec3Centre(), stack)
		w.SpawnEntity(it, it.setID)
	}
}

// pickupDelay is the tick count a dropped item refuses to be picked up,
// matching the original's brief grace period after a block drop or death.
const pickupDelay = 10

// itemDespawnAge is the tick count after which an unclaimed item vanishes.
const itemDespawnAge = 6000

// Item is a dropped item stack lying in the world, subject to gravity and
// merging with nearby identical stacks.
type Item struct {
	Base
	move  MovementComputer
	Stack world.ItemStack
	age   int64
	delay int64
}

// NewItem constructs a dropped item entity at pos.
func NewItem(pos mgl64.Vec3, stack world.ItemStack) *Item {
	return &Item{
		Base:  newBase("item", pos, 0.25, 0.25),
		move:  MovementComputer{Gravity: 0.04, Drag: 0.02},
		Stack: stack,
		delay: pickupDelay,
	}
}

func (i *Item) Tick(w *world.World, currentTick int64) {
	i.age++
	if i.age >= itemDespawnAge {
		w.RemoveEntity(i.id, "despawn")
		return
	}
	if i.delay > 0 {
		i.delay--
	}
	i.pos, i.vel = i.move.TickMovement(w, i.BBox(), i.pos, i.vel)
	if i.delay == 0 {
		i.tryMerge(w)
	}
}

// tryMerge folds this stack into an adjacent identical one and despawns
// itself, the simplest way to keep item clutter from original-style
// item-rain (e.g. from a broken grass block farm) bounded.
func (i *Item) tryMerge(w *world.World) {
	w.IterEntitiesColliding(i.BBox().Grow(0.5), i.id, func(id uint32, e world.Entity) {
		other, ok := e.(*Item)
		if !ok || i.Stack.ID != other.Stack.ID || i.Stack.Damage != other.Stack.Damage {
			return
		}
		other.Stack.Count += i.Stack.Count
		i.Stack.Count = 0
		w.RemoveEntity(i.id, "merged")
	})
	_ = w
}
