package block

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world"
)

func init() {
	world.RegisterBehavior(IDLever, Lever{})
}

// Lever is a persistent, player-toggled redstone power source. Its
// metadata packs the attach face (bits 0-2) and the powered flag (bit 3).
type Lever struct{}

func (Lever) BlockName() string { return "lever" }

func leverFace(meta byte) cube.Face   { return cube.Face(meta & 0x7) }
func leverPowered(meta byte) bool     { return meta&0x8 != 0 }
func leverEncode(face cube.Face, powered bool) byte {
	m := byte(face) & 0x7
	if powered {
		m |= 0x8
	}
	return m
}

func (Lever) CanPlace(w *world.World, pos cube.Pos, face cube.Face, id byte) bool {
	id2, _ := w.Block(pos.Side(face.Opposite()))
	return world.MaterialOf(id2).Solid
}

func (Lever) Place(w *world.World, pos cube.Pos, face cube.Face, id byte, placer world.Entity) byte {
	return leverEncode(face.Opposite(), false)
}

func (Lever) SourcePower(w *world.World, pos cube.Pos, id, meta byte, face cube.Face) uint8 {
	if leverPowered(meta) {
		return 15
	}
	return 0
}

func (Lever) Interact(w *world.World, pos cube.Pos, id, meta byte, user world.Entity) world.Interaction {
	newMeta := leverEncode(leverFace(meta), !leverPowered(meta))
	w.SetBlockNotify(pos, id, newMeta)
	w.QueueRedstoneUpdate(pos)
	return world.Interaction{Kind: world.InteractionHandled}
}

func (Lever) NeighbourChanged(w *world.World, pos cube.Pos, id, meta byte, origin cube.Pos) {
	support := pos.Side(leverFace(meta))
	sid, _ := w.Block(support)
	if !world.MaterialOf(sid).Solid {
		w.SetBlockNotify(pos, world.IDAir, 0)
		w.QueueRedstoneUpdate(pos)
	}
}
