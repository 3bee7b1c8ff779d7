package world_test

// End-to-end scenario tests exercising whole chains of the tick pipeline
// the way a single World.Tick call actually drives them, complementing the
// narrower unit tests living next to the chunk and redstone packages.
// Each test builds its own single-chunk world so the scenarios
// can't interact with each other through shared state.

import (
	"context"
	"testing"

	"github.com/beta173/core/server/block"
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/entity"
	"github.com/beta173/core/server/event"
	"github.com/beta173/core/server/world"
	"github.com/beta173/core/server/world/chunk"
	"github.com/beta173/core/server/world/source"
	"github.com/go-gl/mathgl/mgl64"
)

// stoneFloorWorld returns a world with a single loaded chunk at (0,0),
// solid stone from the bottom of the world up to (not including) y=64 and
// air above, the terrain shape every scenario below builds on.
func stoneFloorWorld(t *testing.T) *world.World {
	t.Helper()
	w := world.Config{}.New()
	w.InsertChunk(cube.ChunkPos{0, 0}, chunk.New())
	for x := 0; x < chunk.Width; x++ {
		for z := 0; z < chunk.Width; z++ {
			for y := 0; y < 64; y++ {
				w.SetBlock(cube.Pos{x, y, z}, world.IDStone, 0)
			}
		}
	}
	w.DrainEvents()
	return w
}

// Scenario 1 (spec §8): pressing a button emits a BlockSet with the
// active bit set and a scheduled tick 20 ticks out; once that tick fires
// the button's active bit clears again.
func TestButtonPressSchedulesReleaseAfter20Ticks(t *testing.T) {
	w := stoneFloorWorld(t)

	support := cube.Pos{8, 65, 9}
	w.SetBlock(support, world.IDStone, 0)
	pos := cube.Pos{8, 65, 8}
	// Mounted on the PosZ face of the stone at (8,65,9): the support
	// direction from the button back to its wall is FaceSouth.
	meta := byte(cube.FaceSouth)
	w.SetBlockNotify(pos, block.IDStoneButton, meta)
	w.DrainEvents()

	interactor, ok := world.BehaviorFor(block.IDStoneButton).(world.Interactor)
	if !ok {
		t.Fatal("stone button does not implement Interactor")
	}
	id, meta := w.Block(pos)
	res := interactor.Interact(w, pos, id, meta, nil)
	if res.Kind != world.InteractionHandled {
		t.Fatalf("expected interaction to be handled, got %v", res.Kind)
	}

	_, meta = w.Block(pos)
	if meta&0x8 == 0 {
		t.Fatal("expected active bit set immediately after interact")
	}
	if !w.ScheduledTickPending(pos, block.IDStoneButton) {
		t.Fatal("expected a scheduled tick for the button's release")
	}

	var sawActiveSet bool
	for _, e := range w.DrainEvents() {
		if bs, ok := e.(event.BlockSet); ok && bs.Pos == pos && bs.Meta&0x8 != 0 {
			sawActiveSet = true
		}
	}
	if !sawActiveSet {
		t.Fatal("expected a BlockSet event with the active bit set")
	}

	for i := 0; i < 20; i++ {
		_, meta = w.Block(pos)
		if meta&0x8 == 0 {
			t.Fatalf("button released early, at tick %d", i)
		}
		w.Tick()
	}
	_, meta = w.Block(pos)
	if meta&0x8 != 0 {
		t.Fatal("expected the button's active bit to be cleared after 20 ticks")
	}
}

// Scenario 2 (spec §8): two water sources two blocks apart, with a solid
// floor beneath the gap, must promote the gap cell into a source itself.
func TestWaterFormsInfiniteSourceBetweenTwoSprings(t *testing.T) {
	w := stoneFloorWorld(t)

	left := cube.Pos{0, 64, 0}
	middle := cube.Pos{1, 64, 0}
	right := cube.Pos{2, 64, 0}
	w.SetBlock(left, world.IDWater, 0)
	w.SetBlock(right, world.IDWater, 0)

	// Placing a source directly (bypassing the block-placement item path
	// this core leaves to an external seam) doesn't itself queue a fluid
	// update, so the two springs are nudged by hand; each spreads into the
	// gap, and only once both have run does re-queuing the gap itself let
	// it see two adjacent sources and settle as a source too.
	w.QueueFluidUpdate(left)
	w.QueueFluidUpdate(right)
	w.QueueFluidUpdate(middle)

	w.Tick()

	id, meta := w.Block(middle)
	if id != world.IDWater {
		t.Fatalf("expected the gap to become a water source block, got id %d", id)
	}
	if meta != 0 {
		t.Fatalf("expected source metadata (distance 0), got %d", meta)
	}
}

// Scenario 3 (spec §8): sand with open air beneath it spawns a falling
// block entity, clears its source cell, and re-places itself as a static
// block once it lands.
func TestFallingSandLandsAndRemovesEntity(t *testing.T) {
	w := stoneFloorWorld(t)

	for y := 64; y < 70; y++ {
		w.SetBlock(cube.Pos{0, y, 0}, world.IDAir, 0)
	}
	sandPos := cube.Pos{0, 70, 0}
	w.SetBlock(sandPos, block.IDSand, 0)
	w.DrainEvents()

	gravity, ok := world.BehaviorFor(block.IDSand).(world.NeighbourChanger)
	if !ok {
		t.Fatal("sand does not implement NeighbourChanger")
	}
	id, meta := w.Block(sandPos)
	gravity.NeighbourChanged(w, sandPos, id, meta, sandPos.Side(cube.FaceDown))

	id, _ = w.Block(sandPos)
	if id != world.IDAir {
		t.Fatal("expected the source cell to become air once the block starts falling")
	}

	var fallingID uint32
	var found bool
	for _, e := range w.DrainEvents() {
		if sp, ok := e.(event.EntitySpawn); ok && sp.Kind == "falling_block" {
			fallingID, found = sp.ID, true
		}
	}
	if !found {
		t.Fatal("expected a falling_block entity spawn event")
	}

	for i := 0; i < 60; i++ {
		if _, ok := w.EntityByID(fallingID); !ok {
			break
		}
		w.Tick()
	}
	if _, ok := w.EntityByID(fallingID); ok {
		t.Fatal("expected the falling block entity to be removed after landing")
	}
	landedID, _ := w.Block(cube.Pos{0, 64, 0})
	if landedID != block.IDSand {
		t.Fatalf("expected sand to land at y=64, got id %d", landedID)
	}
}

// Scenario 4 (spec §8): firing a bow at a zombie deals its hurt on the
// tick the arrow's box first intersects the zombie's, resolved on the
// zombie's next tickBody (spec §4.1's ascending-id entity order means a
// hit queued by a higher-id arrow mid-tick isn't applied until the
// lower-id zombie ticks again).
func TestArrowHitsZombieAndDealsDamage(t *testing.T) {
	w := stoneFloorWorld(t)
	for x := 0; x < 12; x++ {
		w.SetBlock(cube.Pos{x, 64, 0}, world.IDAir, 0)
		w.SetBlock(cube.Pos{x, 65, 0}, world.IDAir, 0)
	}

	player := entity.NewPlayer(mgl64.Vec3{0, 65, 0})
	player.Arrows = 1
	player.SetRotation(cube.Rotation{-90, 0}) // yaw -90 faces +X
	entity.Spawn(w, player)

	zombie := entity.NewZombie(mgl64.Vec3{5, 65, 0})
	entity.Spawn(w, zombie)

	origin := player.Position().Add(mgl64.Vec3{0, player.EyeHeight(), 0})
	arrowID := entity.Fire(w, entity.ProjectileArrow, origin, mgl64.Vec3{3, 0, 0}, player.ID(), 4)

	for i := 0; i < 10; i++ {
		if _, ok := w.EntityByID(arrowID); !ok {
			break
		}
		w.Tick()
	}
	if _, ok := w.EntityByID(arrowID); ok {
		t.Fatal("expected the arrow to be removed once it hit the zombie")
	}

	w.Tick() // let the zombie's next tickBody drain the queued hurt
	if got := zombie.Health(); got != 16 {
		t.Fatalf("expected zombie health 16 after the hit, got %v", got)
	}
}

// Scenario 5 (spec §8): a lever feeds wire into a repeater, which
// refreshes the signal to full power for a second wire run, with the
// repeater's configured delay visible both powering up and releasing.
func TestRedstoneChainThroughRepeaterPowersFarWire(t *testing.T) {
	w := stoneFloorWorld(t)

	leverPos := cube.Pos{0, 64, 0}
	w.SetBlock(leverPos, block.IDLever, byte(cube.FaceDown))
	for x := 1; x <= 4; x++ {
		w.SetBlock(cube.Pos{x, 64, 0}, block.IDRedstoneWire, 0)
	}
	repeaterPos := cube.Pos{5, 64, 0}
	// Facing East (reads its input from the West, emits East) with a
	// 2-tick delay: direction bits 0-1 = East(1), delay bits 2-3 = 1 (one
	// less than the 2-tick delay it encodes).
	w.SetBlock(repeaterPos, block.IDRepeaterOff, byte(cube.East)|1<<2)
	farWire := cube.Pos{6, 64, 0}
	w.SetBlock(farWire, block.IDRedstoneWire, 0)
	lampPos := cube.Pos{7, 64, 0}
	w.SetBlock(lampPos, block.IDRedstoneLampOff, 0)
	w.DrainEvents()

	lever, _ := world.BehaviorFor(block.IDLever).(world.Interactor)
	id, meta := w.Block(leverPos)
	lever.Interact(w, leverPos, id, meta, nil)

	// Neither the wire chain nor the repeater update synchronously: the
	// lever's own neighbour-changed queue only reaches the first wire cell
	// via performNeighbourUpdates, which runs after settleWorkItems within
	// a Tick call, so propagation into the network starts on the tick
	// after that notification is delivered. Run enough ticks for the
	// perturbation to walk the whole chain and for the repeater's own
	// delay to elapse.
	const maxTicks = 12
	litAfterOneMorePass := false
	for i := 0; i < maxTicks; i++ {
		w.Tick()
		if _, wm := w.Block(farWire); wm == 15 {
			litAfterOneMorePass = true
			break
		}
	}
	if !litAfterOneMorePass {
		t.Fatal("expected the repeater's output wire to settle at full power")
	}
	if rid, _ := w.Block(repeaterPos); rid != block.IDRepeaterOn {
		t.Fatal("expected the repeater to have turned on to relay the signal")
	}
	if lid, _ := w.Block(lampPos); lid != block.IDRedstoneLampOn {
		t.Fatal("expected the lamp fed by the repeater's output to light up")
	}

	// Toggling the lever off must eventually drop both wire runs and dark
	// the lamp again, with the repeater's release delayed behind its own
	// 2-tick schedule relative to its input dropping.
	id, meta = w.Block(leverPos)
	lever.Interact(w, leverPos, id, meta, nil)

	releasedLamp := false
	for i := 0; i < maxTicks; i++ {
		w.Tick()
		if lid, _ := w.Block(lampPos); lid == block.IDRedstoneLampOff {
			releasedLamp = true
			break
		}
	}
	if !releasedLamp {
		t.Fatal("expected the lamp to go dark once the lever's release propagates through the repeater")
	}
	if _, wm := w.Block(cube.Pos{1, 64, 0}); wm != 0 {
		t.Fatal("expected the first wire run to have dropped to zero power")
	}
	if rid, _ := w.Block(repeaterPos); rid != block.IDRepeaterOff {
		t.Fatal("expected the repeater to have turned back off")
	}
}

// Scenario 6 (spec §8): loading a chunk through the source pool inserts
// its snapshot and emits a Chunk::Set event once the async load resolves.
func TestChunkLoadHandshakeInsertsSnapshotAndEmitsEvent(t *testing.T) {
	w := world.Config{}.New()
	pool := source.NewPool(context.Background(), world.NopSource{}, 2)

	cp := cube.ChunkPos{0, 0}
	result := <-pool.LoadAsync(cp)
	if result.Err != nil {
		t.Fatalf("unexpected load error: %v", result.Err)
	}
	w.InsertChunk(result.Snapshot.Pos, result.Snapshot.Chunk)

	if _, ok := w.LoadedChunk(cp); !ok {
		t.Fatal("expected the chunk to be loaded after insert")
	}
	var sawChunkSet bool
	for _, e := range w.DrainEvents() {
		if cs, ok := e.(event.ChunkSet); ok && cs.Pos == cp {
			sawChunkSet = true
		}
	}
	if !sawChunkSet {
		t.Fatal("expected a Chunk::Set event after inserting the loaded snapshot")
	}
	if err := pool.Wait(); err != nil {
		t.Fatalf("unexpected pool error: %v", err)
	}
}

// --- Quantified invariants and round-trip properties (spec §8) ---

func TestNoOpSetBlockEmitsNoEvent(t *testing.T) {
	w := stoneFloorWorld(t)
	pos := cube.Pos{5, 5, 5}
	id, meta := w.Block(pos)
	w.DrainEvents()

	w.SetBlockSelfNotify(pos, id, meta)

	for _, e := range w.DrainEvents() {
		if _, ok := e.(event.BlockSet); ok {
			t.Fatal("expected no BlockSet event for a no-op set_block")
		}
	}
}

func TestScheduledTickPendingAfterRepeatedSchedule(t *testing.T) {
	w := stoneFloorWorld(t)
	pos := cube.Pos{1, 65, 1}
	w.ScheduleBlockTick(pos, block.IDStoneButton, 5)
	w.ScheduleBlockTick(pos, block.IDStoneButton, 9)
	if !w.ScheduledTickPending(pos, block.IDStoneButton) {
		t.Fatal("expected a scheduled tick to be pending")
	}
	// World exposes only whether a tick is pending for (pos, id), not how
	// many entries exist, so neither the entry count nor the de-dup policy
	// (first-wins/last-wins) is asserted here.
}

func TestEntityBBoxMatchesPositionAndChunkMembership(t *testing.T) {
	w := stoneFloorWorld(t)
	pig := entity.NewPig(mgl64.Vec3{3, 65, 3})
	id := entity.Spawn(w, pig)

	bb := pig.BBox()
	centre := bb.Min().Add(bb.Max()).Mul(0.5)
	if got := centre[1] - bb.Min()[1]; got <= 0 {
		t.Fatalf("expected a non-degenerate bounding box, got height %v", got)
	}
	if bottom := (mgl64.Vec3{centre[0], bb.Min()[1], centre[2]}); !bottom.ApproxEqual(pig.Position()) {
		t.Fatalf("expected the bounding box's bottom centre %v to match the pig's position %v", bottom, pig.Position())
	}
	wantCP := cube.PosFromVec3(pig.Position()).ChunkPos()
	found := false
	for _, eid := range w.EntitiesInChunk(wantCP) {
		if eid == id {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the pig's id to be present in its chunk's entity set")
	}
}

func TestChunkSnapshotRoundTrip(t *testing.T) {
	c := chunk.New()
	c.SetBlock(1, 2, 3, world.IDStone, 0)
	c.SetBlock(4, 5, 6, block.IDSand, 0)

	var src inMemorySource
	snap := world.ChunkSnapshot{Pos: cube.ChunkPos{2, -1}, Chunk: c}
	if err := src.Save(snap); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	got, err := src.Load(cube.ChunkPos{2, -1})
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if gid, gmeta := got.Chunk.Block(1, 2, 3); gid != world.IDStone || gmeta != 0 {
		t.Fatalf("round-tripped chunk diverged at (1,2,3): got id=%d meta=%d", gid, gmeta)
	}
	if gid, _ := got.Chunk.Block(4, 5, 6); gid != block.IDSand {
		t.Fatalf("round-tripped chunk diverged at (4,5,6): got id=%d", gid)
	}
}

// inMemorySource is a trivial ChunkSource standing in for a real
// persistence backend, sufficient to exercise the round-trip property
// without needing the external storage seam spec §6 leaves unimplemented.
type inMemorySource struct{ saved *world.ChunkSnapshot }

func (s *inMemorySource) Save(snap world.ChunkSnapshot) error {
	s.saved = &snap
	return nil
}

func (s *inMemorySource) Load(pos cube.ChunkPos) (world.ChunkSnapshot, error) {
	if s.saved == nil || s.saved.Pos != pos {
		return world.ChunkSnapshot{}, world.ErrUnsupported
	}
	return *s.saved, nil
}

func TestPlaceThenBreakIsReversible(t *testing.T) {
	w := stoneFloorWorld(t)
	pos := cube.Pos{9, 70, 9}
	before, beforeMeta := w.Block(pos)

	w.SetBlockNotify(pos, world.IDStone, 0)
	w.DrainEvents()
	w.SetBlockNotify(pos, before, beforeMeta)

	after, afterMeta := w.Block(pos)
	if after != before || afterMeta != beforeMeta {
		t.Fatalf("expected the block to return to (%d,%d), got (%d,%d)", before, beforeMeta, after, afterMeta)
	}
}

func TestEmptyWorldTickIsNoOp(t *testing.T) {
	w := world.Config{}.New()
	before := w.CurrentTick()
	w.Tick()
	if w.CurrentTick() != before+1 {
		t.Fatalf("expected CurrentTick to advance by 1, got delta %d", w.CurrentTick()-before)
	}
	if events := w.DrainEvents(); len(events) != 0 {
		t.Fatalf("expected no events from ticking an empty world, got %d", len(events))
	}
}
