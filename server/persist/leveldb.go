// Package persist provides a LevelDB-backed world.ChunkSource, storing one
// record per chunk keyed by its position and skipping writes for chunks
// whose serialized content hasn't changed since the last save.
package persist

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/df-mc/goleveldb/leveldb"
	"github.com/df-mc/goleveldb/leveldb/opt"

	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world"
	"github.com/beta173/core/server/world/chunk"
)

// LevelDBSource persists chunks to a LevelDB database on disk.
type LevelDBSource struct {
	db     *leveldb.DB
	hashes map[cube.ChunkPos]uint64
}

// Open opens (or creates) a LevelDB database at dir for chunk storage.
func Open(dir string) (*LevelDBSource, error) {
	db, err := leveldb.OpenFile(dir, &opt.Options{Compression: opt.SnappyCompression})
	if err != nil {
		return nil, fmt.Errorf("persist: open %s: %w", dir, err)
	}
	return &LevelDBSource{db: db, hashes: make(map[cube.ChunkPos]uint64)}, nil
}

// Close closes the underlying database.
func (s *LevelDBSource) Close() error { return s.db.Close() }

func chunkKey(pos cube.ChunkPos) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint32(key[0:4], uint32(pos.X()))
	binary.BigEndian.PutUint32(key[4:8], uint32(pos.Z()))
	return key
}

// Load reads the chunk at pos, returning a freshly generated empty chunk
// if no record exists (matching world.NopSource's behaviour for unwritten
// parts of the world).
func (s *LevelDBSource) Load(pos cube.ChunkPos) (world.ChunkSnapshot, error) {
	data, err := s.db.Get(chunkKey(pos), nil)
	if err == leveldb.ErrNotFound {
		return world.ChunkSnapshot{Pos: pos, Chunk: chunk.New()}, nil
	}
	if err != nil {
		return world.ChunkSnapshot{}, fmt.Errorf("persist: load %v: %w", pos, err)
	}
	c, err := decodeChunk(data)
	if err != nil {
		return world.ChunkSnapshot{}, fmt.Errorf("persist: decode %v: %w", pos, err)
	}
	s.hashes[pos] = xxhash.Sum64(data)
	return world.ChunkSnapshot{Pos: pos, Chunk: c}, nil
}

// Save writes the chunk if its encoded content changed since the last
// Load/Save for that position, skipping the disk write otherwise.
func (s *LevelDBSource) Save(snap world.ChunkSnapshot) error {
	data := encodeChunk(snap.Chunk)
	sum := xxhash.Sum64(data)
	if s.hashes[snap.Pos] == sum {
		return nil
	}
	if err := s.db.Put(chunkKey(snap.Pos), data, nil); err != nil {
		return fmt.Errorf("persist: save %v: %w", snap.Pos, err)
	}
	s.hashes[snap.Pos] = sum
	return nil
}

const (
	idsLen        = chunk.Volume
	halfLen       = chunk.Volume / 2
	recordLen     = idsLen + 3*halfLen
)

func encodeChunk(c *chunk.Chunk) []byte {
	buf := make([]byte, 0, recordLen)
	ids := c.Ids()
	meta := c.Metadata()
	block := c.BlockLightArray()
	sky := c.SkyLightArray()
	buf = append(buf, ids[:]...)
	buf = append(buf, meta[:]...)
	buf = append(buf, block[:]...)
	buf = append(buf, sky[:]...)
	return buf
}

func decodeChunk(data []byte) (*chunk.Chunk, error) {
	if len(data) != recordLen {
		return nil, fmt.Errorf("unexpected chunk record length %d", len(data))
	}
	var ids [idsLen]byte
	var meta, block, sky [halfLen]byte
	copy(ids[:], data[:idsLen])
	copy(meta[:], data[idsLen:idsLen+halfLen])
	copy(block[:], data[idsLen+halfLen:idsLen+2*halfLen])
	copy(sky[:], data[idsLen+2*halfLen:])

	c := chunk.New()
	c.LoadArrays(ids, meta, block, sky)
	return c, nil
}
