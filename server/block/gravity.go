package block

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/rand"
	"github.com/beta173/core/server/world"
)

func init() {
	world.RegisterBehavior(IDSand, Gravity{Falls: IDSand})
	world.RegisterBehavior(IDGravel, Gravity{Falls: IDGravel})
	world.RegisterBehavior(IDGrass, Grass{})
	world.RegisterBehavior(IDDirt, Dirt{})
}

// Gravity spawns a falling-block entity (via the world.SpawnFallingBlock
// hook) whenever the space below is non-solid, matching spec §4.5's
// FallingBlock variant and spec §4.2's "falling-block fall" random tick.
type Gravity struct{ Falls byte }

func (g Gravity) BlockName() string {
	if g.Falls == IDSand {
		return "sand"
	}
	return "gravel"
}

func (g Gravity) NeighbourChanged(w *world.World, pos cube.Pos, id, meta byte, origin cube.Pos) {
	g.checkFall(w, pos, id, meta)
}

func (g Gravity) RandomTick(w *world.World, pos cube.Pos, id, meta byte, r *rand.Source) {
	g.checkFall(w, pos, id, meta)
}

func (g Gravity) checkFall(w *world.World, pos cube.Pos, id, meta byte) {
	below, _ := w.Block(pos.Side(cube.FaceDown))
	if world.MaterialOf(below).Solid {
		return
	}
	if world.SpawnFallingBlock == nil {
		return
	}
	w.SetBlockNotify(pos, world.IDAir, 0)
	world.SpawnFallingBlock(w, pos, id, meta)
}

// Grass spreads onto adjacent exposed dirt when lit, and reverts to dirt
// when covered, on its own random tick (spec §4.2's listing of spread
// behaviour under random_tick).
type Grass struct{}

func (Grass) BlockName() string { return "grass" }

func (Grass) RandomTick(w *world.World, pos cube.Pos, id, meta byte, r *rand.Source) {
	above := pos.Side(cube.FaceUp)
	aid, _ := w.Block(above)
	if world.MaterialOf(aid).Opacity >= 2 {
		w.SetBlockSelfNotify(pos, IDDirt, 0)
		return
	}
	for i := 0; i < 4; i++ {
		dx := int(r.IntN(3)) - 1
		dz := int(r.IntN(3)) - 1
		dy := int(r.IntN(5)) - 3
		target := pos.Add(cube.Pos{dx, dy, dz})
		tid, _ := w.Block(target)
		if tid != IDDirt {
			continue
		}
		tAbove := target.Side(cube.FaceUp)
		taid, _ := w.Block(tAbove)
		if world.MaterialOf(taid).Opacity < 2 {
			w.SetBlockSelfNotify(target, IDGrass, 0)
		}
	}
}

// Dirt has no special behaviour; it exists only so Gravity-adjacent code
// can name it without a nil Behavior lookup surprising a future caller.
type Dirt struct{}

func (Dirt) BlockName() string { return "dirt" }
