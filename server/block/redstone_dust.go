package block

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world"
)

func init() {
	world.RegisterBehavior(IDRedstoneWire, Wire{})
}

// Wire is redstone dust: the propagating network membership world.IsWire
// checks against directly via its fixed id, so Wire itself only needs
// placement and support-break behaviour plus triggering a recompute
// whenever something around it changes (spec §4.3).
type Wire struct{}

func (Wire) BlockName() string { return "redstone_wire" }

func (Wire) CanPlace(w *world.World, pos cube.Pos, face cube.Face, id byte) bool {
	return face == cube.FaceUp && solidSupportBelow(w, pos)
}

func (Wire) NeighbourChanged(w *world.World, pos cube.Pos, id, meta byte, origin cube.Pos) {
	if !solidSupportBelow(w, pos) {
		w.SetBlockNotify(pos, world.IDAir, 0)
		return
	}
	w.QueueRedstoneUpdate(pos)
}
