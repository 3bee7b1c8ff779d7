package cube

import "github.com/go-gl/mathgl/mgl64"

// Intersection holds the result of a ray intersecting with a BBox: the
// distance travelled along the ray before the hit, the face that was hit
// and the exact point of intersection.
type Intersection struct {
	Distance float64
	Face     Face
	Pos      mgl64.Vec3
}

// IntersectsLine performs a ray-box intersection test (slab method) between
// the BBox and a ray defined by an origin and direction. ok is false if the
// ray does not intersect with the box within [0, maxDistance].
func (b BBox) IntersectsLine(origin, dir mgl64.Vec3, maxDistance float64) (hit Intersection, ok bool) {
	tMin, tMax := 0.0, maxDistance
	hitFace := FaceUp
	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < b.min[axis] || origin[axis] > b.max[axis] {
				return Intersection{}, false
			}
			continue
		}
		invD := 1 / dir[axis]
		t1 := (b.min[axis] - origin[axis]) * invD
		t2 := (b.max[axis] - origin[axis]) * invD
		enteringFromMin := true
		if t1 > t2 {
			t1, t2 = t2, t1
			enteringFromMin = false
		}
		if t1 > tMin {
			tMin = t1
			hitFace = axisEnterFace(axis, enteringFromMin)
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return Intersection{}, false
		}
	}
	if tMin < 0 || tMin > maxDistance {
		return Intersection{}, false
	}
	return Intersection{Distance: tMin, Face: hitFace, Pos: origin.Add(dir.Mul(tMin))}, true
}

func axisEnterFace(axis int, fromMin bool) Face {
	switch axis {
	case 0:
		if fromMin {
			return FaceWest
		}
		return FaceEast
	case 1:
		if fromMin {
			return FaceDown
		}
		return FaceUp
	default:
		if fromMin {
			return FaceNorth
		}
		return FaceSouth
	}
}
