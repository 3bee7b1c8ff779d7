package world

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world/fluid"
)

// Tick drives one simulation step, in the deterministic seven-step order
// of spec §4.1. The caller (the server's main loop, or a test) is
// responsible for pacing calls to Tick; World does not run its own timer.
func (w *World) Tick() {
	w.currentTick++

	w.drainScheduledTicks()
	w.performRandomTicks()
	w.tickEntities()
	w.settleWorkItems()

	for id := range w.entities {
		w.reindexEntity(id)
	}

	w.performNeighbourUpdates()
	w.flushEntityDeltas()
}

func (w *World) drainScheduledTicks() {
	for _, t := range w.scheduled.due(w.currentTick) {
		id, meta := w.Block(t.Pos)
		if id != t.BlockID {
			continue
		}
		if b, ok := BehaviorFor(id).(ScheduledTicker); ok {
			b.ScheduledTick(w, t.Pos, id, meta)
		}
	}
}

func (w *World) performRandomTicks() {
	speed := w.conf.RandomTickSpeed
	height := w.conf.Range.Height()
	for cp, c := range w.chunks {
		for i := 0; i < speed; i++ {
			x := int(w.rng.IntN(16))
			z := int(w.rng.IntN(16))
			localY := int(w.rng.IntN(int32(height)))
			pos := cube.Pos{int(cp[0])<<4 + x, localY + w.conf.Range[0], int(cp[1])<<4 + z}
			id, meta := c.Block(x, localY, z)
			if b, ok := BehaviorFor(id).(RandomTicker); ok {
				b.RandomTick(w, pos, id, meta, w.rng)
			}
		}
	}
}

// tickEntities ticks a frozen snapshot of the entity id list taken before
// any of this tick's Tick calls run; entities spawned mid-loop are not
// ticked again until next World.Tick (spec §4.1 step 4).
func (w *World) tickEntities() {
	for _, id := range w.AllEntityIDs() {
		e, ok := w.entities[id]
		if !ok {
			continue
		}
		e.Tick(w, w.currentTick)
	}
}

// settleWorkItems drains the redstone, fluid and lighting work queued
// during steps 2-4 until stable or the configured per-tick budget is
// exhausted (spec §4.1 step 5).
func (w *World) settleWorkItems() {
	budget := w.conf.RedstoneBudgetPerTick
	for budget > 0 && len(w.redstoneQueue) > 0 {
		pos := w.redstoneQueue[0]
		w.redstoneQueue = w.redstoneQueue[1:]
		w.redstoneQd.Remove(pos)
		w.redstoneEng.Propagate(w, pos)
		budget--
	}

	budget = w.conf.RedstoneBudgetPerTick
	for budget > 0 && len(w.pendingFluids) > 0 {
		f := w.pendingFluids[0]
		w.pendingFluids = w.pendingFluids[1:]
		if kind, state, present := w.FluidAt(f); present {
			fluid.Tick(w, f, kind, state, w.conf.Dim == Nether)
		}
		budget--
	}

	w.PropagateLight()
}

// performNeighbourUpdates drains the neighbour-changed queue accumulated by
// QueueNeighbourUpdates, invoking each affected block's NeighbourChanger
// hook once per queued notification.
func (w *World) performNeighbourUpdates() {
	q := w.neighbourQ
	w.neighbourQ = nil
	for _, u := range q {
		id, meta := w.Block(u.pos)
		if b, ok := BehaviorFor(id).(NeighbourChanger); ok {
			b.NeighbourChanged(w, u.pos, id, meta, u.neighbour)
		}
	}
}

// flushEntityDeltas is the tick step that stands for per-entity
// position/look/velocity deltas. It does nothing: no movement deltas are
// collected, and no movement events or Viewer calls are emitted here.
func (w *World) flushEntityDeltas() {}

// QueueRedstoneUpdate schedules a redstone network recompute seeded at pos,
// deduplicated against other updates still pending this tick (spec §4.3).
func (w *World) QueueRedstoneUpdate(pos cube.Pos) {
	if !w.redstoneQd.Add(pos) {
		return
	}
	w.redstoneQueue = append(w.redstoneQueue, pos)
}

// QueueFluidUpdate schedules a fluid tick at pos to run during the current
// tick's work-item settling phase, used by fluid placement and
// neighbour-changed reassessment.
func (w *World) QueueFluidUpdate(pos cube.Pos) {
	w.pendingFluids = append(w.pendingFluids, pos)
}
