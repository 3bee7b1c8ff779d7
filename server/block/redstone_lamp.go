package block

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world"
)

func init() {
	world.RegisterBehavior(IDRedstoneLampOff, Lamp{Lit: false})
	world.RegisterBehavior(IDRedstoneLampOn, Lamp{Lit: true})
}

// Lamp is the redstone lamp: a passive power consumer that lights up while
// any face has incoming power. Registered once per id (lit/unlit) so that
// its emitted light level can be looked up purely from Material, matching
// the original renderer's per-id (not per-metadata) light table.
type Lamp struct{ Lit bool }

func (l Lamp) BlockName() string {
	if l.Lit {
		return "lit_redstone_lamp"
	}
	return "redstone_lamp"
}

func (l Lamp) NeighbourChanged(w *world.World, pos cube.Pos, id, meta byte, origin cube.Pos) {
	powered := false
	for _, f := range cube.Faces() {
		if w.InputPower(pos.Side(f), f.Opposite()) > 0 {
			powered = true
			break
		}
	}
	if powered == l.Lit {
		return
	}
	newID := byte(IDRedstoneLampOff)
	if powered {
		newID = IDRedstoneLampOn
	}
	w.SetBlockSelfNotify(pos, newID, meta)
}
