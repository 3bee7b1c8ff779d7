package block

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/rand"
	"github.com/beta173/core/server/world"
)

func init() {
	world.RegisterBehavior(IDSapling, Sapling{})
	world.RegisterBehavior(IDLeaves, Leaves{})
	world.RegisterBehavior(IDWheat, Wheat{})
	world.RegisterBehavior(IDFarmland, Farmland{})
	world.RegisterBehavior(IDCactus, Cactus{})
	world.RegisterBehavior(IDSugarCane, SugarCane{})
	world.RegisterBehavior(IDSnow, Snow{})
	world.RegisterBehavior(IDIce, Ice{})
}

// Sapling grows into a log/leaves tree after enough random ticks; its
// metadata bits 0-1 select the species and bit 3 (0x8) its growth stage, and a
// 1-in-7 chance per random tick advances the stage (matching the
// original's slow, stochastic growth).
type Sapling struct{}

func (Sapling) BlockName() string { return "sapling" }

func (Sapling) CanPlace(w *world.World, pos cube.Pos, face cube.Face, id byte) bool {
	return face == cube.FaceUp && solidSupportBelow(w, pos)
}

func (Sapling) RandomTick(w *world.World, pos cube.Pos, id, meta byte, r *rand.Source) {
	if !solidSupportBelow(w, pos) {
		w.SetBlockNotify(pos, world.IDAir, 0)
		return
	}
	if meta&0x8 == 0 {
		if r.IntN(7) == 0 {
			w.SetBlockSelfNotify(pos, id, meta|0x8)
		}
		return
	}
	w.SetBlockNotify(pos, IDLog, meta&0x3)
	for dy := 1; dy <= 3; dy++ {
		w.SetBlockSelfNotify(pos.Add(cube.Pos{0, dy, 0}), IDLeaves, meta&0x3)
	}
}

func (Sapling) NeighbourChanged(w *world.World, pos cube.Pos, id, meta byte, origin cube.Pos) {
	if !solidSupportBelow(w, pos) {
		w.SetBlockNotify(pos, world.IDAir, 0)
	}
}

// Leaves decay when no log block is within a short radius; the decay check
// is a cheap approximation of the original's flood-fill distance-to-log
// search, bounded to immediate neighbours plus one hop.
type Leaves struct{}

func (Leaves) BlockName() string { return "leaves" }

func (Leaves) RandomTick(w *world.World, pos cube.Pos, id, meta byte, r *rand.Source) {
	if meta&0x4 != 0 {
		// Player-placed leaves (persistent bit) never decay.
		return
	}
	if !nearLog(w, pos, 2) {
		w.SetBlockNotify(pos, world.IDAir, 0)
	}
}

func nearLog(w *world.World, pos cube.Pos, radius int) bool {
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			for dz := -radius; dz <= radius; dz++ {
				id, _ := w.Block(pos.Add(cube.Pos{dx, dy, dz}))
				if id == IDLog {
					return true
				}
			}
		}
	}
	return false
}

// Wheat grows through 8 age stages on farmland, each random tick having a
// chance to advance proportional to remaining growth (simplified to a flat
// 1-in-6 chance here, matching the average original growth rate absent the
// full per-stage moisture/light multiplier table).
type Wheat struct{}

func (Wheat) BlockName() string { return "wheat" }

func (Wheat) CanPlace(w *world.World, pos cube.Pos, face cube.Face, id byte) bool {
	bid, _ := w.Block(pos.Side(cube.FaceDown))
	return bid == IDFarmland
}

func (Wheat) RandomTick(w *world.World, pos cube.Pos, id, meta byte, r *rand.Source) {
	bid, _ := w.Block(pos.Side(cube.FaceDown))
	if bid != IDFarmland {
		w.SetBlockNotify(pos, world.IDAir, 0)
		return
	}
	if meta >= 7 {
		return
	}
	if r.IntN(6) == 0 {
		w.SetBlockSelfNotify(pos, id, meta+1)
	}
}

// Farmland hydrates near water and reverts to dirt when dry and trampled;
// only the hydration random-tick half is implemented, trampling is a
// player-interaction concern out of scope without an item/movement pipeline.
type Farmland struct{}

func (Farmland) BlockName() string { return "farmland" }

func (Farmland) RandomTick(w *world.World, pos cube.Pos, id, meta byte, r *rand.Source) {
	if !nearWater(w, pos) && meta > 0 {
		w.SetBlockSelfNotify(pos, id, meta-1)
	} else if nearWater(w, pos) && meta < 7 {
		w.SetBlockSelfNotify(pos, id, 7)
	}
}

func nearWater(w *world.World, pos cube.Pos) bool {
	for dx := -4; dx <= 4; dx++ {
		for dz := -4; dz <= 4; dz++ {
			for dy := 0; dy <= 1; dy++ {
				id, _ := w.Block(pos.Add(cube.Pos{dx, dy, dz}))
				if id == world.IDWater || id == world.IDFlowingWater {
					return true
				}
			}
		}
	}
	return false
}

// Cactus grows upward on sand, breaking if any horizontal neighbour is
// solid (it cannot tolerate touching anything).
type Cactus struct{}

func (Cactus) BlockName() string { return "cactus" }

func (Cactus) NeighbourChanged(w *world.World, pos cube.Pos, id, meta byte, origin cube.Pos) {
	for _, f := range []cube.Face{cube.FaceNorth, cube.FaceSouth, cube.FaceEast, cube.FaceWest} {
		nid, _ := w.Block(pos.Side(f))
		if world.MaterialOf(nid).Solid {
			w.SetBlockNotify(pos, world.IDAir, 0)
			return
		}
	}
}

func (Cactus) RandomTick(w *world.World, pos cube.Pos, id, meta byte, r *rand.Source) {
	below, _ := w.Block(pos.Side(cube.FaceDown))
	if below != IDCactus && below != IDSand {
		w.SetBlockNotify(pos, world.IDAir, 0)
		return
	}
	if meta >= 15 {
		above := pos.Side(cube.FaceUp)
		if aid, _ := w.Block(above); aid == world.IDAir {
			w.SetBlockSelfNotify(pos, id, 0)
			w.SetBlockSelfNotify(above, id, 0)
		}
		return
	}
	if r.IntN(3) == 0 {
		w.SetBlockSelfNotify(pos, id, meta+1)
	}
}

// SugarCane behaves like Cactus but requires adjacency to water instead of
// being self-tolerant of neighbours.
type SugarCane struct{}

func (SugarCane) BlockName() string { return "sugar_cane" }

func (SugarCane) NeighbourChanged(w *world.World, pos cube.Pos, id, meta byte, origin cube.Pos) {
	below, _ := w.Block(pos.Side(cube.FaceDown))
	if below == IDSugarCane {
		return
	}
	if !nearWater(w, pos) {
		w.SetBlockNotify(pos, world.IDAir, 0)
	}
}

func (SugarCane) RandomTick(w *world.World, pos cube.Pos, id, meta byte, r *rand.Source) {
	if meta >= 15 {
		above := pos.Side(cube.FaceUp)
		if aid, _ := w.Block(above); aid == world.IDAir {
			w.SetBlockSelfNotify(pos, id, 0)
			w.SetBlockSelfNotify(above, id, 0)
		}
		return
	}
	w.SetBlockSelfNotify(pos, id, meta+1)
}

// Snow melts near a light source bright enough to simulate warmth.
type Snow struct{}

func (Snow) BlockName() string { return "snow_layer" }

func (Snow) RandomTick(w *world.World, pos cube.Pos, id, meta byte, r *rand.Source) {
	if w.BlockLight(pos) >= 12 || w.SkyLight(pos) >= 12 {
		w.SetBlockNotify(pos, world.IDAir, 0)
	}
}

// Ice melts to flowing water under the same light rule as Snow.
type Ice struct{}

func (Ice) BlockName() string { return "ice" }

func (Ice) RandomTick(w *world.World, pos cube.Pos, id, meta byte, r *rand.Source) {
	if w.BlockLight(pos) >= 12 || w.SkyLight(pos) >= 12 {
		w.SetBlockNotify(pos, world.IDFlowingWater, 0)
	}
}
