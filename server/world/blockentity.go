package world

import "github.com/beta173/core/server/block/cube"

// BlockEntity is implemented by the heavyweight per-position data attached
// to certain blocks (chests, furnaces, dispensers, signs, note blocks,
// jukeboxes, spawners, moving pistons). Its lifecycle is tied 1-to-1 to the
// block that owns it: World removes it automatically when that block is
// replaced (see World.setBlock).
type BlockEntity interface {
	// Pos returns the position the block entity is attached to.
	Pos() cube.Pos
	// RequiredBlockID returns the block id that must occupy Pos for this
	// block entity to remain valid.
	RequiredBlockID() byte
}

// Ticker is implemented by block entities with per-tick behaviour (furnace
// smelting progress, spawner countdown).
type Ticker interface {
	Tick(w *World, currentTick int64)
}
