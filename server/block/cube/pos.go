// Package cube contains geometry primitives shared by the world, block and
// entity packages: block positions, faces, axes, rotations and axis-aligned
// bounding boxes.
package cube

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Pos is the position of a block within a world. It is always composed of
// three integers, and is therefore different from mgl64.Vec3, which is
// commonly used for entity positions instead.
type Pos [3]int

// X returns the X coordinate of the position.
func (p Pos) X() int { return p[0] }

// Y returns the Y coordinate of the position.
func (p Pos) Y() int { return p[1] }

// Z returns the Z coordinate of the position.
func (p Pos) Z() int { return p[2] }

// Add adds two Pos values together and returns a new Pos.
func (p Pos) Add(p2 Pos) Pos {
	return Pos{p[0] + p2[0], p[1] + p2[1], p[2] + p2[2]}
}

// Side returns the position of the block at the given side of this position.
func (p Pos) Side(face Face) Pos {
	switch face {
	case FaceDown:
		return Pos{p[0], p[1] - 1, p[2]}
	case FaceUp:
		return Pos{p[0], p[1] + 1, p[2]}
	case FaceNorth:
		return Pos{p[0], p[1], p[2] - 1}
	case FaceSouth:
		return Pos{p[0], p[1], p[2] + 1}
	case FaceWest:
		return Pos{p[0] - 1, p[1], p[2]}
	case FaceEast:
		return Pos{p[0] + 1, p[1], p[2]}
	}
	panic("invalid face")
}

// Vec3 returns the Pos as a mgl64.Vec3, pointing at the corner of the block
// with the lowest coordinates on each axis.
func (p Pos) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
}

// Vec3Centre returns the Pos as a mgl64.Vec3 pointing at the centre of the
// block.
func (p Pos) Vec3Centre() mgl64.Vec3 {
	return p.Vec3().Add(mgl64.Vec3{0.5, 0.5, 0.5})
}

// PosFromVec3 returns the Pos of the block that v is inside of, flooring
// each axis.
func PosFromVec3(v mgl64.Vec3) Pos {
	return Pos{int(math.Floor(v[0])), int(math.Floor(v[1])), int(math.Floor(v[2]))}
}

// ChunkPos returns the ChunkPos that owns this block position.
func (p Pos) ChunkPos() ChunkPos {
	return ChunkPos{int32(p[0] >> 4), int32(p[2] >> 4)}
}

// OutOfBounds reports whether the Y coordinate of the position falls outside
// the given vertical Range.
func (p Pos) OutOfBounds(r Range) bool {
	return p[1] < r[0] || p[1] > r[1]
}

func (p Pos) String() string {
	return fmt.Sprintf("(%v, %v, %v)", p[0], p[1], p[2])
}

// Range represents the vertical range of a world, analogous to a pair of Y
// coordinates of the lowest and highest points in the world.
type Range [2]int

// Height returns the total height of the Range: the amount of blocks it
// spans on the vertical axis.
func (r Range) Height() int {
	return r[1] - r[0] + 1
}

// ChunkPos holds the coordinates of a chunk. Chunks are always 16x16 blocks
// and the ChunkPos holds the index of such a chunk: (0,0) holds blocks
// (0,0) through (15,127,15).
type ChunkPos [2]int32

// X returns the X coordinate of the chunk position.
func (p ChunkPos) X() int32 { return p[0] }

// Z returns the Z coordinate of the chunk position.
func (p ChunkPos) Z() int32 { return p[1] }

func (p ChunkPos) String() string {
	return fmt.Sprintf("(%v, %v)", p[0], p[1])
}
