package entity

import (
	"github.com/beta173/core/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// Slime is a small hopping hostile mob: it never walks smoothly like the
// ground mobs in mobs.go, instead queuing a jump impulse every time it
// lands, the same hop-don't-walk locomotion the original gives slimes.
type Slime struct {
	Living
	wasOnGround bool
}

func NewSlime(pos mgl64.Vec3) *Slime {
	s := &Slime{Living: newLiving("slime", pos, 0.6, 0.6, 4)}
	s.huntOptions(1.2, 2, 0.1)
	return s
}

func (s *Slime) Tick(w *world.World, currentTick int64) {
	onGround := s.move.OnGround()
	if onGround && !s.wasOnGround {
		s.vel[1] = 0.42
	}
	s.wasOnGround = onGround
	s.tickBody(w)
}

// Ghast is a flying hostile mob that never touches the ground: it ignores
// gravity/collision entirely (NoClip) and attacks at range with fireballs
// instead of melee, reusing the huntAI target-acquisition pass but firing
// a projectile once in range rather than strafing into contact.
type Ghast struct {
	Living
	fireCooldown int
}

func NewGhast(pos mgl64.Vec3) *Ghast {
	g := &Ghast{Living: newLiving("ghast", pos, 4, 4, 10)}
	g.move.NoClip = true
	g.move.Gravity = 0
	g.huntOptions(16, 0, 0.06)
	return g
}

func (g *Ghast) Tick(w *world.World, currentTick int64) {
	g.tickBody(w)
	if g.Dead() {
		return
	}
	if g.fireCooldown > 0 {
		g.fireCooldown--
		return
	}
	if !g.hunt.hasTarget {
		return
	}
	target, ok := w.EntityByID(g.hunt.targetID)
	if !ok {
		return
	}
	dir := target.Position().Sub(g.pos)
	if dir.Len() == 0 || dir.Len() > g.hunt.attackRange {
		return
	}
	Fire(w, ProjectileFireball, g.pos, dir.Normalize().Mul(0.8), g.id, 6)
	g.fireCooldown = 40
}
