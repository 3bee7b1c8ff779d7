package world

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world/chunk"
)

// ChunkSnapshot is the serializable form of a Chunk, handed to and from a
// ChunkSource. It intentionally excludes any in-memory-only state (loaded
// entity ids, scratch buffers); persisting entities and block entities is
// the responsibility of the block-entity serializer hook and a companion
// entity snapshot the persistence collaborator defines for itself (out of
// scope here per spec §1).
type ChunkSnapshot struct {
	Pos   cube.ChunkPos
	Chunk *chunk.Chunk
}

// ErrUnsupported is returned by a ChunkSource that does not implement the
// requested operation (e.g. a read-only or generator-backed source asked to
// Save).
var ErrUnsupported = sourceError("operation not supported by this chunk source")

type sourceError string

func (e sourceError) Error() string { return string(e) }

// ChunkSource is the trait a terrain generator or persistence backend
// implements (spec §4.7). Load and Save are synchronous; package
// world/source wraps a ChunkSource in a worker pool so the world does not
// block its tick on I/O.
type ChunkSource interface {
	Load(pos cube.ChunkPos) (ChunkSnapshot, error)
	Save(snapshot ChunkSnapshot) error
}

// NopSource is a ChunkSource that generates empty chunks and discards
// saves; it is the default when no source is configured.
type NopSource struct{}

func (NopSource) Load(pos cube.ChunkPos) (ChunkSnapshot, error) {
	return ChunkSnapshot{Pos: pos, Chunk: chunk.New()}, nil
}

func (NopSource) Save(ChunkSnapshot) error { return nil }
