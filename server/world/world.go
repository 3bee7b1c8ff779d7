// Package world implements the authoritative state of one block world: its
// loaded chunks, entities, block entities and scheduled ticks, and the
// single-threaded cooperative tick loop that advances them (spec §2-§5).
package world

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/event"
	"github.com/beta173/core/server/rand"
	"github.com/beta173/core/server/world/chunk"
	"github.com/beta173/core/server/world/light"
	"github.com/beta173/core/server/world/redstone"
)

// World implements a single block world. All its mutation methods require
// exclusive access: it is not safe for concurrent use, matching the
// single-threaded cooperative model of spec §5. External callers hold no
// references across a Tick call; they interact only through this API and
// the event stream drained by DrainEvents.
type World struct {
	conf Config

	chunks        map[cube.ChunkPos]*chunk.Chunk
	blockEntities map[cube.Pos]BlockEntity
	entities      map[uint32]Entity
	entityChunk   map[uint32]cube.ChunkPos
	chunkEntities map[cube.ChunkPos]map[uint32]struct{}

	scheduled *scheduledTickQueue
	events    event.Bus

	rng *rand.Source

	currentTick int64
	raining     bool
	thundering  bool

	redstoneQueue []cube.Pos
	redstoneQd    *redstone.DedupeSet
	redstoneEng   *redstone.Engine
	pendingFluids []cube.Pos
	lightEng      *light.Engine
	neighbourQ    []neighbourUpdate

	viewers []Viewer

	nextEntityID uint32
}

type neighbourUpdate struct {
	pos       cube.Pos
	neighbour cube.Pos
}

func newWorld(conf Config) *World {
	return &World{
		conf:          conf,
		chunks:        make(map[cube.ChunkPos]*chunk.Chunk),
		blockEntities: make(map[cube.Pos]BlockEntity),
		entities:      make(map[uint32]Entity),
		entityChunk:   make(map[uint32]cube.ChunkPos),
		chunkEntities: make(map[cube.ChunkPos]map[uint32]struct{}),
		scheduled:     newScheduledTickQueue(),
		rng:           rand.New(conf.Seed),
		redstoneQd:    redstone.NewDedupeSet(64),
		redstoneEng:   redstone.NewEngine(),
		lightEng:      light.NewEngine(),
	}
}

// Log returns the world's logger.
func (w *World) Log() *slog.Logger { return w.conf.Log }

// Range returns the vertical range of the world.
func (w *World) Range() cube.Range { return w.conf.Range }

// Dimension returns the world's Dimension.
func (w *World) Dimension() Dimension { return w.conf.Dim }

// CurrentTick returns the number of ticks simulated so far.
func (w *World) CurrentTick() int64 { return w.currentTick }

// AddViewer registers a Viewer to receive synchronous view calls during
// Tick.
func (w *World) AddViewer(v Viewer) { w.viewers = append(w.viewers, v) }

// RemoveViewer unregisters a previously added Viewer.
func (w *World) RemoveViewer(v Viewer) {
	for i, existing := range w.viewers {
		if existing == v {
			w.viewers = append(w.viewers[:i], w.viewers[i+1:]...)
			return
		}
	}
}

// DrainEvents returns every event queued since the last call and empties
// the queue, in emission order (spec §4.8, §8).
func (w *World) DrainEvents() []event.Event {
	return w.events.Drain()
}

// ---- Chunk access ----

// LoadedChunk returns the Chunk at pos and whether it is currently loaded.
func (w *World) LoadedChunk(pos cube.ChunkPos) (*chunk.Chunk, bool) {
	c, ok := w.chunks[pos]
	return c, ok
}

// InsertChunk inserts a loaded chunk into the world at the current tick
// boundary (spec §4.7, §8 scenario 6).
func (w *World) InsertChunk(pos cube.ChunkPos, c *chunk.Chunk) {
	w.chunks[pos] = c
	w.events.Push(event.ChunkSet{Pos: pos})
}

// UnloadChunk removes a chunk from the loaded set.
func (w *World) UnloadChunk(pos cube.ChunkPos) {
	if _, ok := w.chunks[pos]; !ok {
		return
	}
	delete(w.chunks, pos)
	w.events.Push(event.ChunkRemove{Pos: pos})
}

func chunkAndLocal(pos cube.Pos) (cp cube.ChunkPos, x, y, z int) {
	cx := pos[0] >> 4
	cz := pos[2] >> 4
	x = pos[0] - (cx << 4)
	z = pos[2] - (cz << 4)
	if x < 0 {
		x += 16
	}
	if z < 0 {
		z += 16
	}
	return cube.ChunkPos{int32(cx), int32(cz)}, x, pos[1], z
}

// ---- Block access (spec §4.1) ----

// Block returns the block id and metadata at pos. If the owning chunk is
// not loaded or pos is out of vertical range, it returns (0, 0) as if the
// position held air.
func (w *World) Block(pos cube.Pos) (id, meta byte) {
	if pos.OutOfBounds(w.conf.Range) {
		return 0, 0
	}
	cp, x, y, z := chunkAndLocal(pos)
	c, ok := w.chunks[cp]
	if !ok {
		return 0, 0
	}
	return c.Block(x, y, z)
}

// SetBlock writes id/meta at pos with no notification and no event,
// matching spec §4.1's "set_block". It returns the previous (id, meta) and
// ok=true iff the owning chunk was loaded and pos in range; otherwise it is
// a no-op.
func (w *World) SetBlock(pos cube.Pos, id, meta byte) (prevID, prevMeta byte, ok bool) {
	if pos.OutOfBounds(w.conf.Range) {
		return 0, 0, false
	}
	cp, x, y, z := chunkAndLocal(pos)
	c, loaded := w.chunks[cp]
	if !loaded {
		return 0, 0, false
	}
	prevID, prevMeta = c.Block(x, y, z)
	c.SetBlock(x, y, z, id, meta)
	w.updateHeightAfterSet(c, x, y, z, id)
	w.maintainBlockEntity(pos, id)
	return prevID, prevMeta, true
}

// SetBlockSelfNotify writes the block, fires a BlockSet event (unless the
// (id, meta) pair is unchanged, per the no-op invariant of spec §8) and
// enqueues pos and its six neighbours for light recomputation.
func (w *World) SetBlockSelfNotify(pos cube.Pos, id, meta byte) bool {
	prevID, prevMeta, ok := w.SetBlock(pos, id, meta)
	if !ok {
		return false
	}
	if prevID == id && prevMeta == meta {
		return true
	}
	w.events.Push(event.BlockSet{Pos: pos, ID: id, Meta: meta, OldID: prevID, OldMeta: prevMeta})
	w.lightEng.Enqueue(pos)
	for _, f := range cube.Faces() {
		w.lightEng.Enqueue(pos.Side(f))
	}
	for _, v := range w.viewers {
		v.ViewBlockChange(pos, id, meta)
	}
	return true
}

// SetBlockNotify writes the block (self-notifying) and additionally queues
// a neighbour_changed notification for all six face-adjacent positions,
// processed on the next performNeighbourUpdates pass (spec §4.1 step 5).
func (w *World) SetBlockNotify(pos cube.Pos, id, meta byte) bool {
	if !w.SetBlockSelfNotify(pos, id, meta) {
		return false
	}
	w.QueueNeighbourUpdates(pos)
	return true
}

// QueueNeighbourUpdates enqueues a neighbour_changed notification for every
// face-adjacent block of pos.
func (w *World) QueueNeighbourUpdates(pos cube.Pos) {
	for _, f := range cube.Faces() {
		nb := pos.Side(f)
		w.neighbourQ = append(w.neighbourQ, neighbourUpdate{pos: nb, neighbour: pos})
	}
}

func (w *World) updateHeightAfterSet(c *chunk.Chunk, x, y, z int, id byte) {
	opacity := MaterialOf(id).Opacity
	h := int(c.Heightmap[x][z])
	if opacity > 0 && y > h {
		c.Heightmap[x][z] = int16(y)
		return
	}
	if y == h && opacity == 0 {
		for ny := y; ny >= w.conf.Range[0]; ny-- {
			nid, _ := c.Block(x, ny, z)
			if MaterialOf(nid).Opacity > 0 {
				c.Heightmap[x][z] = int16(ny)
				return
			}
		}
		c.Heightmap[x][z] = int16(w.conf.Range[0] - 1)
	}
}

// maintainBlockEntity removes a stale block entity if the block at pos no
// longer requires one (spec §3's 1-to-1 lifecycle rule, §8 invariant).
func (w *World) maintainBlockEntity(pos cube.Pos, newID byte) {
	be, ok := w.blockEntities[pos]
	if !ok {
		return
	}
	if be.RequiredBlockID() != newID {
		delete(w.blockEntities, pos)
		w.events.Push(event.BlockEntityRemove{Pos: pos})
	}
}

// BlockEntity returns the block entity at pos, if any.
func (w *World) BlockEntity(pos cube.Pos) (BlockEntity, bool) {
	be, ok := w.blockEntities[pos]
	return be, ok
}

// SetBlockEntity installs (or replaces) the block entity at pos.
func (w *World) SetBlockEntity(pos cube.Pos, be BlockEntity) {
	w.blockEntities[pos] = be
	w.events.Push(event.BlockEntitySet{Pos: pos, Kind: fmt.Sprintf("%T", be)})
}

// RemoveBlockEntity removes the block entity at pos, if any.
func (w *World) RemoveBlockEntity(pos cube.Pos) {
	if _, ok := w.blockEntities[pos]; !ok {
		return
	}
	delete(w.blockEntities, pos)
	w.events.Push(event.BlockEntityRemove{Pos: pos})
}

// ---- Scheduled ticks (spec §4.1) ----

// ScheduleBlockTick inserts a scheduled tick (pos, id, now+delay) unless one
// already exists for (pos, id), in which case it is a no-op (spec §3, §8).
func (w *World) ScheduleBlockTick(pos cube.Pos, id byte, delay int64) {
	w.scheduled.schedule(pos, id, w.currentTick+delay)
}

// ScheduledTickPending reports whether a scheduled tick exists for (pos, id).
func (w *World) ScheduledTickPending(pos cube.Pos, id byte) bool {
	return w.scheduled.pending(pos, id)
}

// ---- Entities (spec §3, §4.1) ----

func (w *World) indexEntity(id uint32, e Entity) {
	cp := cube.PosFromVec3(e.Position()).ChunkPos()
	w.entityChunk[id] = cp
	if w.chunkEntities[cp] == nil {
		w.chunkEntities[cp] = make(map[uint32]struct{})
	}
	w.chunkEntities[cp][id] = struct{}{}
}

// SpawnEntity inserts e into the world, assigns it a fresh id via setID and
// returns that id. An entity spawned mid-tick is not ticked again until the
// next World.Tick call (spec §4.1 step 4).
func (w *World) SpawnEntity(e Entity, setID func(uint32)) uint32 {
	w.nextEntityID++
	id := w.nextEntityID
	setID(id)
	w.entities[id] = e
	w.indexEntity(id, e)
	w.events.Push(event.EntitySpawn{ID: id, Kind: e.Kind(), Pos: e.Position()})
	for _, v := range w.viewers {
		v.ViewEntitySpawn(e)
	}
	return id
}

// RemoveEntity removes the entity with the given id, if present, and emits
// an EntityRemove event with the supplied reason.
func (w *World) RemoveEntity(id uint32, reason string) {
	e, ok := w.entities[id]
	if !ok {
		return
	}
	cp := w.entityChunk[id]
	delete(w.chunkEntities[cp], id)
	delete(w.entityChunk, id)
	delete(w.entities, id)
	w.events.Push(event.EntityRemove{ID: id, Reason: reason})
	for _, v := range w.viewers {
		v.ViewEntityRemove(e, reason)
	}
}

// EntityByID returns the entity with the given id, if it is still present.
func (w *World) EntityByID(id uint32) (Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// reindexEntity moves an entity's chunk-bucket membership to match its
// current position, called once per tick after entities have moved (spec
// §4.1 step 6).
func (w *World) reindexEntity(id uint32) {
	e, ok := w.entities[id]
	if !ok {
		return
	}
	cp := cube.PosFromVec3(e.Position()).ChunkPos()
	old := w.entityChunk[id]
	if old == cp {
		return
	}
	delete(w.chunkEntities[old], id)
	w.entityChunk[id] = cp
	if w.chunkEntities[cp] == nil {
		w.chunkEntities[cp] = make(map[uint32]struct{})
	}
	w.chunkEntities[cp][id] = struct{}{}
}

// EntitiesInChunk returns the ids of every entity currently indexed under
// the given chunk.
func (w *World) EntitiesInChunk(pos cube.ChunkPos) []uint32 {
	set := w.chunkEntities[pos]
	out := make([]uint32, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AllEntityIDs returns every currently spawned entity id, in a deterministic
// ascending order, for use by the per-tick entity snapshot (spec §4.1 step
// 4: entities are ticked over a frozen list taken at the start of the
// step).
func (w *World) AllEntityIDs() []uint32 {
	out := make([]uint32, 0, len(w.entities))
	for id := range w.entities {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IterEntitiesColliding calls fn for every entity (other than excludeID)
// whose BBox intersects bb.
func (w *World) IterEntitiesColliding(bb cube.BBox, excludeID uint32, fn func(id uint32, e Entity)) {
	for id, e := range w.entities {
		if id == excludeID {
			continue
		}
		if e.BBox().IntersectsWith(bb) {
			fn(id, e)
		}
	}
}

// RNG returns the world's deterministic RNG (spec §9): used for random
// ticks and any world-level randomness, as opposed to per-entity RNGs.
func (w *World) RNG() *rand.Source { return w.rng }

// Weather returns the current raining/thundering state.
func (w *World) Weather() (raining, thundering bool) { return w.raining, w.thundering }

// SetWeather updates the weather state machine and emits a WeatherChange
// event if it actually changed.
func (w *World) SetWeather(raining, thundering bool) {
	if raining == w.raining && thundering == w.thundering {
		return
	}
	w.raining, w.thundering = raining, thundering
	w.events.Push(event.WeatherChange{Raining: raining, Thundering: thundering})
	for _, v := range w.viewers {
		v.ViewWeather(raining, thundering)
	}
}
