package world

import "github.com/beta173/core/server/block/cube"

// The function variables below are the seam package block uses to spawn
// concrete entities (falling sand/gravel, primed TNT, dropped items)
// without world importing package entity, which in turn imports world: the
// dependency only runs one way (entity -> world). Package entity's init
// sets these hooks, so neither block nor world needs to import entity.
// Left nil (a no-op), falling blocks simply never fall and TNT never
// primes.
var (
	SpawnFallingBlock func(w *World, pos cube.Pos, id, meta byte)
	SpawnPrimedTNT    func(w *World, pos cube.Pos, fuse int)
	SpawnDroppedItem  func(w *World, pos cube.Pos, stack ItemStack)
)
