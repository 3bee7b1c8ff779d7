package block

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world"
)

func init() {
	world.RegisterBehavior(IDTorch, Torch{})
	world.RegisterBehavior(IDRedstoneTorchOff, RedstoneTorch{Lit: false})
	world.RegisterBehavior(IDRedstoneTorchOn, RedstoneTorch{Lit: true})
}

// Torch implements the plain light-giving torch: it breaks when its support
// is removed and carries no redstone behaviour.
type Torch struct{}

func (Torch) BlockName() string { return "torch" }

func (Torch) CanPlace(w *world.World, pos cube.Pos, face cube.Face, id byte) bool {
	return face != cube.FaceDown && solidSupportBelow(w, pos)
}

func (Torch) NeighbourChanged(w *world.World, pos cube.Pos, id, meta byte, origin cube.Pos) {
	if !solidSupportBelow(w, pos) {
		w.SetBlockNotify(pos, world.IDAir, 0)
	}
}

// RedstoneTorch is a torch that inverts the power reported for the block it
// is mounted on: lit when that is zero, dark otherwise, after a 2-tick
// delay (spec §4.3). It reads that power through World.InputPower, which
// reports power only for wire and PowerSource blocks; a solid block does
// not carry power from its neighbours, so a torch on a solid block stays
// lit. It is registered once per id (lit, unlit), the original
// game's way of keying emitted light level on block id rather than
// metadata.
type RedstoneTorch struct{ Lit bool }

func (t RedstoneTorch) BlockName() string {
	if t.Lit {
		return "redstone_torch"
	}
	return "unlit_redstone_torch"
}

// SourcePower reports full power toward every neighbour when lit, whatever
// face is asking.
func (t RedstoneTorch) SourcePower(w *world.World, pos cube.Pos, id, meta byte, face cube.Face) uint8 {
	if t.Lit {
		return 15
	}
	return 0
}

func (t RedstoneTorch) CanPlace(w *world.World, pos cube.Pos, face cube.Face, id byte) bool {
	return face != cube.FaceDown && solidSupportBelow(w, pos)
}

func (t RedstoneTorch) NeighbourChanged(w *world.World, pos cube.Pos, id, meta byte, origin cube.Pos) {
	if !solidSupportBelow(w, pos) {
		w.SetBlockNotify(pos, world.IDAir, 0)
		return
	}
	w.ScheduleBlockTick(pos, id, 2)
}

func (t RedstoneTorch) ScheduledTick(w *world.World, pos cube.Pos, id, meta byte) {
	attached := w.InputPower(pos.Side(cube.FaceDown), cube.FaceUp)
	wantLit := attached == 0
	if wantLit == t.Lit {
		return
	}
	newID := byte(IDRedstoneTorchOff)
	if wantLit {
		newID = IDRedstoneTorchOn
	}
	w.SetBlockNotify(pos, newID, meta)
	w.QueueRedstoneUpdate(pos)
}
