package world

import (
	"github.com/google/uuid"

	"github.com/beta173/core/server/block/cube"
)

// Listener is the trait seam the external TCP packet server implements
// (spec §6). The core never depends on the wire codec; it only needs to
// know a client connected or was lost, and to receive already-decoded
// mutation requests through the methods below, matching spec §4.1's
// "incoming packets are translated into world mutations" contract.
type Listener interface {
	// Accepted is called by the packet server when a client finishes
	// handshake/login, with the uuid.UUID the packet server uses to
	// correlate this connection's future packets.
	Accepted(client uuid.UUID)
	// Lost is called when a client's connection ends, cleanly or due to an
	// I/O error (err is nil for a clean disconnect).
	Lost(client uuid.UUID, err error)
}

// Viewer is implemented by whatever observes a World's mutation stream in
// order to mirror it to connected clients (or to a replay log, or to
// nothing, in tests). The world calls these synchronously during Tick; a
// Viewer must not block.
type Viewer interface {
	ViewEntityMovement(e Entity, onGround bool)
	ViewEntityVelocity(e Entity)
	ViewEntitySpawn(e Entity)
	ViewEntityRemove(e Entity, reason string)
	ViewBlockChange(pos cube.Pos, id, meta byte)
	ViewChunk(pos cube.ChunkPos)
	ViewTime(tick int64)
	ViewWeather(raining, thundering bool)
}

// Clock is the external seam driving World.Tick. The core does not run its
// own timer goroutine; an external driver (the server's main loop, or a
// test) calls Tick once per Advance.
type Clock interface {
	// Advance blocks until it is time for the next tick and returns the
	// number of ticks that should be simulated to catch up (normally 1; may
	// be >1 if the driver fell behind and chooses to catch up, or 0 if the
	// driver wants to pause).
	Advance() int
}
