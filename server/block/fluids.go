package block

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/rand"
	"github.com/beta173/core/server/world"
	"github.com/beta173/core/server/world/fluid"
)

func init() {
	water := Fluid{Kind: fluid.Water}
	lava := Fluid{Kind: fluid.Lava}
	world.RegisterBehavior(world.IDWater, water)
	world.RegisterBehavior(world.IDFlowingWater, water)
	world.RegisterBehavior(world.IDLava, lava)
	world.RegisterBehavior(world.IDFlowingLava, lava)
}

// Fluid drives the water/lava spread engine (spec §4.4) through its
// scheduled- and random-tick hooks: a scheduled tick runs the update
// promptly after a neighbour change, a random tick catches still pools
// that never get a neighbour-changed poke (matching spec §4.2's listing
// of "fluid still->moving promotion" under random_tick).
type Fluid struct{ Kind fluid.Kind }

func (f Fluid) BlockName() string {
	if f.Kind == fluid.Water {
		return "water"
	}
	return "lava"
}

func (f Fluid) tick(w *world.World, pos cube.Pos, meta byte) {
	fluid.Tick(w, pos, f.Kind, fluid.Decode(meta), w.Dimension() == world.Nether)
}

func (f Fluid) ScheduledTick(w *world.World, pos cube.Pos, id, meta byte) {
	f.tick(w, pos, meta)
}

func (f Fluid) RandomTick(w *world.World, pos cube.Pos, id, meta byte, r *rand.Source) {
	f.tick(w, pos, meta)
}

func (f Fluid) NeighbourChanged(w *world.World, pos cube.Pos, id, meta byte, origin cube.Pos) {
	w.QueueFluidUpdate(pos)
}
