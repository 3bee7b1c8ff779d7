package cube

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BBox represents an axis-aligned bounding box, defined by a minimum and a
// maximum mgl64.Vec3. It is used for collision detection of entities and
// blocks, and for ray tracing.
type BBox struct {
	min, max mgl64.Vec3
}

// Box creates a new BBox with the minimum and maximum coordinates given. The
// components of min are interchangeable with those of max: Box will pick the
// smallest for min and the largest for max for every component.
func Box(x1, y1, z1, x2, y2, z2 float64) BBox {
	return BBox{
		min: mgl64.Vec3{math.Min(x1, x2), math.Min(y1, y2), math.Min(z1, z2)},
		max: mgl64.Vec3{math.Max(x1, x2), math.Max(y1, y2), math.Max(z1, z2)},
	}
}

// Min returns the minimum corner of the BBox.
func (b BBox) Min() mgl64.Vec3 { return b.min }

// Max returns the maximum corner of the BBox.
func (b BBox) Max() mgl64.Vec3 { return b.max }

// Width, Height and Length return the size of the BBox on each axis.
func (b BBox) Width() float64  { return b.max[0] - b.min[0] }
func (b BBox) Height() float64 { return b.max[1] - b.min[1] }
func (b BBox) Length() float64 { return b.max[2] - b.min[2] }

// Grow grows the BBox by x on all axes and returns the result.
func (b BBox) Grow(x float64) BBox {
	return BBox{min: b.min.Sub(mgl64.Vec3{x, x, x}), max: b.max.Add(mgl64.Vec3{x, x, x})}
}

// GrowVec3 grows the BBox by the individual components of vec and returns
// the result. A negative component extends the minimum side of that axis
// and a positive one the maximum side, so the BBox never shrinks.
func (b BBox) GrowVec3(vec mgl64.Vec3) BBox {
	bb := b
	for i := 0; i < 3; i++ {
		if vec[i] < 0 {
			bb.min[i] += vec[i]
		} else {
			bb.max[i] += vec[i]
		}
	}
	return bb
}

// Translate moves the BBox by the vector passed and returns the result.
func (b BBox) Translate(vec mgl64.Vec3) BBox {
	return BBox{min: b.min.Add(vec), max: b.max.Add(vec)}
}

// IntersectsWith reports whether the BBox intersects with the one given.
func (b BBox) IntersectsWith(other BBox) bool {
	const epsilon = 1e-10
	if other.max[0]-b.min[0] > epsilon && b.max[0]-other.min[0] > epsilon {
		if other.max[1]-b.min[1] > epsilon && b.max[1]-other.min[1] > epsilon {
			return other.max[2]-b.min[2] > epsilon && b.max[2]-other.min[2] > epsilon
		}
	}
	return false
}

// ExtendTowards extends the BBox by d in the direction of face and returns
// the result. A negative d shrinks the box.
func (b BBox) ExtendTowards(face Face, d float64) BBox {
	bb := b
	switch face {
	case FaceDown:
		bb.min[1] -= d
	case FaceUp:
		bb.max[1] += d
	case FaceNorth:
		bb.min[2] -= d
	case FaceSouth:
		bb.max[2] += d
	case FaceWest:
		bb.min[0] -= d
	case FaceEast:
		bb.max[0] += d
	}
	return bb
}

// calculateMaxDistance finds the largest d (same sign as delta) such that
// moving this box by d along the given axis component of delta will not
// produce an intersection with other. It is used by the three XYZ resolution
// passes of entity movement.
func calculateMaxDistance(axisMin, axisMax, otherMin, otherMax, delta float64) float64 {
	if delta == 0 {
		return 0
	}
	if delta > 0 {
		if axisMax <= otherMin {
			d := otherMin - axisMax
			if d < delta {
				return d
			}
		}
		return delta
	}
	if axisMin >= otherMax {
		d := otherMax - axisMin
		if d > delta {
			return d
		}
	}
	return delta
}

// XOffset returns the largest distance the BBox can move along the X axis by
// deltaX without colliding with other. The returned value always has the same
// sign as deltaX (or is zero).
func (b BBox) XOffset(other BBox, deltaX float64) float64 {
	if b.max[1] <= other.min[1] || b.min[1] >= other.max[1] || b.max[2] <= other.min[2] || b.min[2] >= other.max[2] {
		return deltaX
	}
	return calculateMaxDistance(b.min[0], b.max[0], other.min[0], other.max[0], deltaX)
}

// YOffset returns the largest distance the BBox can move along the Y axis by
// deltaY without colliding with other.
func (b BBox) YOffset(other BBox, deltaY float64) float64 {
	if b.max[0] <= other.min[0] || b.min[0] >= other.max[0] || b.max[2] <= other.min[2] || b.min[2] >= other.max[2] {
		return deltaY
	}
	return calculateMaxDistance(b.min[1], b.max[1], other.min[1], other.max[1], deltaY)
}

// ZOffset returns the largest distance the BBox can move along the Z axis by
// deltaZ without colliding with other.
func (b BBox) ZOffset(other BBox, deltaZ float64) float64 {
	if b.max[0] <= other.min[0] || b.min[0] >= other.max[0] || b.max[1] <= other.min[1] || b.min[1] >= other.max[1] {
		return deltaZ
	}
	return calculateMaxDistance(b.min[2], b.max[2], other.min[2], other.max[2], deltaZ)
}

// Vec3Centre returns the centre point of the BBox.
func (b BBox) Vec3Centre() mgl64.Vec3 {
	return b.min.Add(b.max).Mul(0.5)
}
