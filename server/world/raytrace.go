package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/beta173/core/server/block/cube"
)

// BlockRayTraceResult is returned by RayTraceBlock for the first solid
// block a ray hits.
type BlockRayTraceResult struct {
	Pos      cube.Pos
	Face     cube.Face
	Point    mgl64.Vec3
	Distance float64
}

// RayTraceBlock walks a ray forward from origin in dir for up to
// maxDistance, returning the first block whose collision boxes it
// intersects. It underlies line-of-sight checks such as block picking and
// projectile impact (§4.9).
func RayTraceBlock(w *World, origin, dir mgl64.Vec3, maxDistance float64) (BlockRayTraceResult, bool) {
	if dir.Len() == 0 {
		return BlockRayTraceResult{}, false
	}
	dir = dir.Normalize()

	const step = 0.1
	pos := origin
	seen := make(map[cube.Pos]bool)
	for travelled := 0.0; travelled <= maxDistance; travelled += step {
		blockPos := cube.Pos{int(math.Floor(pos[0])), int(math.Floor(pos[1])), int(math.Floor(pos[2]))}
		if !seen[blockPos] {
			seen[blockPos] = true
			if hit, ok := testBlock(w, blockPos, origin, dir, maxDistance); ok {
				return hit, true
			}
		}
		pos = origin.Add(dir.Mul(travelled))
	}
	return BlockRayTraceResult{}, false
}

func testBlock(w *World, blockPos cube.Pos, origin, dir mgl64.Vec3, maxDistance float64) (BlockRayTraceResult, bool) {
	id, meta := w.Block(blockPos)
	var boxes []cube.BBox
	if behaviour, ok := BehaviorFor(id).(Collider); ok {
		boxes = behaviour.CollidingBoxes(w, blockPos, id, meta)
	} else if MaterialOf(id).Solid {
		offset := mgl64.Vec3{float64(blockPos[0]), float64(blockPos[1]), float64(blockPos[2])}
		boxes = []cube.BBox{cube.Box(0, 0, 0, 1, 1, 1).Translate(offset)}
	}

	best := BlockRayTraceResult{}
	found := false
	for _, bb := range boxes {
		hit, ok := bb.IntersectsLine(origin, dir, maxDistance)
		if !ok {
			continue
		}
		if !found || hit.Distance < best.Distance {
			best = BlockRayTraceResult{Pos: blockPos, Face: hit.Face, Point: hit.Pos, Distance: hit.Distance}
			found = true
		}
	}
	return best, found
}
