package redstone

import (
	"github.com/segmentio/fasthash/fnv1a"

	"github.com/beta173/core/server/block/cube"
)

// DedupeSet is a bucketed cube.Pos set keyed by an FNV-1a hash of the
// packed position, used anywhere a redstone pass needs at-most-once
// semantics (settle-pass Notify calls, pending-update queues) without
// paying for Go's built-in map hashing on every block touched.
type DedupeSet struct {
	buckets [][]cube.Pos
}

// NewDedupeSet returns a DedupeSet with the given bucket count. size is
// rounded up to 1 if given as 0 or less.
func NewDedupeSet(size int) *DedupeSet {
	if size < 1 {
		size = 1
	}
	return &DedupeSet{buckets: make([][]cube.Pos, size)}
}

func (s *DedupeSet) bucket(pos cube.Pos) int {
	h := fnv1a.HashUint64(uint64(packPos(pos)))
	return int(h % uint64(len(s.buckets)))
}

// Add inserts pos, reporting whether it was newly added.
func (s *DedupeSet) Add(pos cube.Pos) bool {
	b := s.bucket(pos)
	for _, p := range s.buckets[b] {
		if p == pos {
			return false
		}
	}
	s.buckets[b] = append(s.buckets[b], pos)
	return true
}

// Contains reports whether pos is currently a member.
func (s *DedupeSet) Contains(pos cube.Pos) bool {
	b := s.bucket(pos)
	for _, p := range s.buckets[b] {
		if p == pos {
			return true
		}
	}
	return false
}

// Remove deletes pos from the set, if present.
func (s *DedupeSet) Remove(pos cube.Pos) {
	b := s.bucket(pos)
	bucket := s.buckets[b]
	for i, p := range bucket {
		if p == pos {
			s.buckets[b] = append(bucket[:i], bucket[i+1:]...)
			return
		}
	}
}

// Reset empties every bucket while keeping the underlying allocation.
func (s *DedupeSet) Reset() {
	for i := range s.buckets {
		s.buckets[i] = s.buckets[i][:0]
	}
}
