package block

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world"
)

func init() {
	world.RegisterBehavior(IDBed, Bed{})
}

// Bed lets a player sleep through the night and sets their respawn point.
// It occupies two blocks: metadata bit 0x8 marks the head, the foot is
// always at headPos.Side(bedFacing(meta).Opposite().Face()). Bits 0-1
// carry the facing direction from foot to head and bit 0x4 marks whether
// a player currently occupies it.
type Bed struct{}

func (Bed) BlockName() string { return "bed" }

func bedFacing(meta byte) cube.Direction { return cube.Direction(meta & 0x3) }
func bedIsHead(meta byte) bool           { return meta&0x8 != 0 }
func bedOccupied(meta byte) bool         { return meta&0x4 != 0 }

func bedEncode(dir cube.Direction, head, occupied bool) byte {
	m := byte(dir & 0x3)
	if head {
		m |= 0x8
	}
	if occupied {
		m |= 0x4
	}
	return m
}

// footAndHead returns the foot and head positions of the bed pos belongs
// to, using pos's own metadata to find its partner.
func (Bed) footAndHead(w *world.World, pos cube.Pos, meta byte) (foot, head cube.Pos) {
	dir := bedFacing(meta)
	if bedIsHead(meta) {
		head = pos
		foot = pos.Side(dir.Opposite().Face())
		return
	}
	foot = pos
	head = pos.Side(dir.Face())
	return
}

func (b Bed) CanPlace(w *world.World, pos cube.Pos, face cube.Face, id byte) bool {
	return face == cube.FaceUp && solidSupportBelow(w, pos)
}

// Place sets only the foot half; the caller (item-use layer) is responsible
// for placing the paired head block at the facing offset once this call
// succeeds, mirroring how doors and beds are placed in the original game.
func (b Bed) Place(w *world.World, pos cube.Pos, face cube.Face, id byte, placer world.Entity) byte {
	dir := cube.North
	if placer != nil {
		dir = placer.Rotation().Direction()
	}
	return bedEncode(dir, false, false)
}

func (b Bed) NeighbourChanged(w *world.World, pos cube.Pos, id, meta byte, origin cube.Pos) {
	foot, head := b.footAndHead(w, pos, meta)
	fid, fmeta := w.Block(foot)
	hid, hmeta := w.Block(head)
	if fid != IDBed || hid != IDBed || bedIsHead(fmeta) == bedIsHead(hmeta) {
		w.SetBlockNotify(pos, IDAir, 0)
		return
	}
	if !solidSupportBelow(w, foot) || !solidSupportBelow(w, head) {
		w.SetBlockNotify(foot, IDAir, 0)
		w.SetBlockNotify(head, IDAir, 0)
	}
}

// Interact reports the attempt to a higher-level sleep handler (built atop
// the entity/player package) via InteractionSleep; the core engine itself
// has no notion of a player's respawn point or of skipping the night.
func (b Bed) Interact(w *world.World, pos cube.Pos, id, meta byte, user world.Entity) world.Interaction {
	if bedOccupied(meta) {
		return world.Interaction{Kind: world.InteractionNone}
	}
	foot, head := b.footAndHead(w, pos, meta)
	return world.Interaction{Kind: world.InteractionSleep, Positions: []cube.Pos{foot, head}}
}
