package item

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world"
)

// PlaceBlock is the use-on-block entry point spec §6 calls out as living
// behind the (out-of-scope) packet server: given a target position and
// the face of the block the player clicked, place blockID at the
// neighbouring cell if the block there allows it, running the same
// Placer/PlaceHandler hooks a direct world.SetBlockNotify call would skip.
// It reports whether a block was placed.
func PlaceBlock(w *world.World, clicked cube.Pos, face cube.Face, blockID byte, placer world.Entity) bool {
	pos := clicked.Side(face)
	id, _ := w.Block(pos)
	if world.MaterialOf(id).Solid {
		return false
	}
	behaviour := world.BehaviorFor(blockID)
	if p, ok := behaviour.(world.Placer); ok && !p.CanPlace(w, pos, face, blockID) {
		return false
	}
	meta := byte(0)
	if h, ok := behaviour.(world.PlaceHandler); ok {
		meta = h.Place(w, pos, face, blockID, placer)
	}
	w.SetBlockNotify(pos, blockID, meta)
	return true
}
