package block

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world"
)

func init() {
	world.RegisterBehavior(IDStoneButton, Button{})
}

// Button is a momentary power source: pressing it powers its network for a
// fixed number of ticks, then it schedules its own release (spec §4.3).
type Button struct{}

func (Button) BlockName() string { return "stone_button" }

const buttonReleaseDelay = 20

func (Button) CanPlace(w *world.World, pos cube.Pos, face cube.Face, id byte) bool {
	sid, _ := w.Block(pos.Side(face.Opposite()))
	return world.MaterialOf(sid).Solid
}

func (Button) Place(w *world.World, pos cube.Pos, face cube.Face, id byte, placer world.Entity) byte {
	return leverEncode(face.Opposite(), false)
}

func (Button) SourcePower(w *world.World, pos cube.Pos, id, meta byte, face cube.Face) uint8 {
	if leverPowered(meta) {
		return 15
	}
	return 0
}

func (Button) Interact(w *world.World, pos cube.Pos, id, meta byte, user world.Entity) world.Interaction {
	if leverPowered(meta) {
		return world.Interaction{Kind: world.InteractionNone}
	}
	w.SetBlockNotify(pos, id, leverEncode(leverFace(meta), true))
	w.QueueRedstoneUpdate(pos)
	w.ScheduleBlockTick(pos, id, buttonReleaseDelay)
	return world.Interaction{Kind: world.InteractionHandled}
}

func (Button) ScheduledTick(w *world.World, pos cube.Pos, id, meta byte) {
	if !leverPowered(meta) {
		return
	}
	w.SetBlockNotify(pos, id, leverEncode(leverFace(meta), false))
	w.QueueRedstoneUpdate(pos)
}

func (Button) NeighbourChanged(w *world.World, pos cube.Pos, id, meta byte, origin cube.Pos) {
	sid, _ := w.Block(pos.Side(leverFace(meta)))
	if !world.MaterialOf(sid).Solid {
		w.SetBlockNotify(pos, world.IDAir, 0)
	}
}
