package entity

import (
	"github.com/beta173/core/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// ProjectileKind distinguishes the handful of thrown/shot entities that
// share flight and impact handling but differ in damage and effect.
type ProjectileKind uint8

const (
	ProjectileArrow ProjectileKind = iota
	ProjectileSnowball
	ProjectileEgg
	ProjectileFireball
)

// Projectile is a thrown or shot entity that flies under gravity (except
// fireballs, which fly straight) until it hits a solid block or a living
// entity other than its shooter.
type Projectile struct {
	Base
	Kind      ProjectileKind
	ShooterID uint32
	Damage    float64

	stuck bool
}

func NewProjectile(kind ProjectileKind, pos, vel mgl64.Vec3, shooterID uint32, damage float64) *Projectile {
	p := &Projectile{
		Base:      newBase(projectileKindName(kind), pos, 0.25, 0.25),
		Kind:      kind,
		ShooterID: shooterID,
		Damage:    damage,
	}
	p.vel = vel
	return p
}

// Fire constructs and spawns a projectile in one step, the entry point
// package item's bow dispatch uses; it hands the projectile's id setter to
// World.SpawnEntity itself.
func Fire(w *world.World, kind ProjectileKind, pos, vel mgl64.Vec3, shooterID uint32, damage float64) uint32 {
	p := NewProjectile(kind, pos, vel, shooterID, damage)
	return w.SpawnEntity(p, p.setID)
}

func projectileKindName(k ProjectileKind) string {
	switch k {
	case ProjectileArrow:
		return "arrow"
	case ProjectileSnowball:
		return "snowball"
	case ProjectileEgg:
		return "egg"
	case ProjectileFireball:
		return "fireball"
	}
	return "projectile"
}

func (p *Projectile) Tick(w *world.World, currentTick int64) {
	if p.stuck {
		return
	}
	if p.Kind != ProjectileFireball {
		p.vel[1] -= 0.03
	}
	from := p.pos
	to := from.Add(p.vel)

	if hitID, hit, ok := p.firstEntityHit(w, from, to); ok {
		w.RemoveEntity(p.id, "hit_entity")
		if living, lok := hit.(world.Living); lok {
			sid := p.ShooterID
			living.Hurt(p.Damage, &sid)
		}
		_ = hitID
		return
	}

	travelled := to.Sub(from)
	if hit, ok := world.RayTraceBlock(w, from, travelled, travelled.Len()); ok {
		p.pos = hit.Point
		p.stuck = true
		p.vel = mgl64.Vec3{}
		return
	}

	p.pos = to
	p.vel = p.vel.Mul(0.99)
}

// firstEntityHit steps the segment from->to in small increments, testing
// the projectile's translated BBox against every other entity: a cheap
// discrete substitute for a continuous ray/swept-AABB test, adequate at
// arrow speeds over a single tick.
func (p *Projectile) firstEntityHit(w *world.World, from, to mgl64.Vec3) (uint32, world.Entity, bool) {
	const steps = 4
	step := to.Sub(from).Mul(1.0 / steps)
	pos := from
	for i := 0; i < steps; i++ {
		pos = pos.Add(step)
		box := p.BBox().Translate(pos.Sub(p.pos))
		var hitID uint32
		var hit world.Entity
		found := false
		w.IterEntitiesColliding(box, p.id, func(id uint32, e world.Entity) {
			if found || id == p.ShooterID {
				return
			}
			if _, ok := e.(world.Living); !ok {
				return
			}
			hitID, hit, found = id, e, true
		})
		if found {
			return hitID, hit, true
		}
	}
	return 0, nil, false
}
