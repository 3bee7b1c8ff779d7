package entity

import (
	"math"

	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

func init() {
	world.SpawnPrimedTNT = func(w *world.World, pos cube.Pos, fuse int) {
		t := NewTNT(pos.Vec3Centre(), fuse)
		w.SpawnEntity(t, t.setID)
	}
}

// explosionRadius is the TNT blast radius in blocks, matching the
// original's primed-TNT explosion strength of 4.
const explosionRadius = 4.0

// TNT is a primed block of dynamite counting down to an explosion that
// clears blocks within explosionRadius, weighted by each block's blast
// resistance the same way the original scales destruction by material.
type TNT struct {
	Base
	move MovementComputer
	fuse int
}

func NewTNT(pos mgl64.Vec3, fuse int) *TNT {
	return &TNT{
		Base: newBase("tnt", pos, 0.98, 0.98),
		move: MovementComputer{Gravity: 0.04},
		fuse: fuse,
	}
}

func (t *TNT) Tick(w *world.World, currentTick int64) {
	t.pos, t.vel = t.move.TickMovement(w, t.BBox(), t.pos, t.vel)
	t.fuse--
	if t.fuse > 0 {
		return
	}
	w.RemoveEntity(t.id, "exploded")
	explode(w, t.pos, explosionRadius)
}

// explode clears every block within radius of centre whose blast
// resistance is below a threshold scaled by distance, then drops any
// entities in range with an outward velocity impulse.
func explode(w *world.World, centre mgl64.Vec3, radius float64) {
	ir := int(math.Ceil(radius))
	origin := cube.PosFromVec3(centre)
	for dx := -ir; dx <= ir; dx++ {
		for dy := -ir; dy <= ir; dy++ {
			for dz := -ir; dz <= ir; dz++ {
				d := math.Sqrt(float64(dx*dx + dy*dy + dz*dz))
				if d > radius {
					continue
				}
				pos := origin.Add(cube.Pos{dx, dy, dz})
				id, _ := w.Block(pos)
				if id == 0 {
					continue
				}
				mat := world.MaterialOf(id)
				intensity := (1 - d/radius) * (radius + 1)
				if mat.BlastResistance/5+0.3 < intensity {
					w.SetBlockSelfNotify(pos, 0, 0)
				}
			}
		}
	}
	blastBox := cube.Box(-radius, -radius, -radius, radius, radius, radius).Translate(centre)
	w.IterEntitiesColliding(blastBox, 0, func(id uint32, e world.Entity) {
		diff := e.Position().Sub(centre)
		dist := diff.Len()
		if dist == 0 {
			dist = 0.01
		}
		push := diff.Mul((1 - dist/radius) / dist)
		if living, ok := e.(world.Living); ok {
			living.Hurt((1-dist/radius)*20, nil)
		}
		if mover, ok := e.(velocitySetter); ok {
			mover.ApplyImpulse(push)
		}
	})
}

// velocitySetter is implemented by entities that can receive an external
// velocity impulse, such as from an explosion.
type velocitySetter interface {
	ApplyImpulse(mgl64.Vec3)
}
