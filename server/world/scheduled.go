package world

import (
	"container/heap"

	"github.com/beta173/core/server/block/cube"
)

// ScheduledTick is a deferred block-handler invocation at a future tick. The
// BlockID gate (spec §3) ensures a schedule is ignored if the block at Pos
// is no longer that id by the time it comes due.
type ScheduledTick struct {
	Pos     cube.Pos
	BlockID byte
	Due     int64
	seq     int64
}

type scheduledKey struct {
	pos cube.Pos
	id  byte
}

// scheduledTickQueue is a min-heap ordered by (Due, seq), with an index for
// O(1) duplicate detection, enforcing "at most one scheduled tick per
// (pos, id)" (spec §3, §8).
type scheduledTickQueue struct {
	items   []*ScheduledTick
	present map[scheduledKey]bool
	nextSeq int64
}

func newScheduledTickQueue() *scheduledTickQueue {
	q := &scheduledTickQueue{present: make(map[scheduledKey]bool)}
	heap.Init(q)
	return q
}

func (q *scheduledTickQueue) Len() int { return len(q.items) }
func (q *scheduledTickQueue) Less(i, j int) bool {
	if q.items[i].Due != q.items[j].Due {
		return q.items[i].Due < q.items[j].Due
	}
	return q.items[i].seq < q.items[j].seq
}
func (q *scheduledTickQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }
func (q *scheduledTickQueue) Push(x any)    { q.items = append(q.items, x.(*ScheduledTick)) }
func (q *scheduledTickQueue) Pop() any {
	old := q.items
	n := len(old)
	it := old[n-1]
	q.items = old[:n-1]
	return it
}

// schedule inserts (pos, id, now+delay) if no pending tick exists for
// (pos, id). Returns false if it was a no-op.
func (q *scheduledTickQueue) schedule(pos cube.Pos, id byte, due int64) bool {
	key := scheduledKey{pos, id}
	if q.present[key] {
		return false
	}
	q.present[key] = true
	q.nextSeq++
	heap.Push(q, &ScheduledTick{Pos: pos, BlockID: id, Due: due, seq: q.nextSeq})
	return true
}

// due pops and returns every scheduled tick whose Due is <= tick, in
// (Due, seq) order.
func (q *scheduledTickQueue) due(tick int64) []*ScheduledTick {
	var out []*ScheduledTick
	for q.Len() > 0 && q.items[0].Due <= tick {
		it := heap.Pop(q).(*ScheduledTick)
		delete(q.present, scheduledKey{it.Pos, it.BlockID})
		out = append(out, it)
	}
	return out
}

// pending reports whether a scheduled tick exists for (pos, id).
func (q *scheduledTickQueue) pending(pos cube.Pos, id byte) bool {
	return q.present[scheduledKey{pos, id}]
}
