package entity

import (
	"math"

	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/entity/ai"
	"github.com/beta173/core/server/rand"
	"github.com/beta173/core/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// Living implements world.Living: a health pool, a per-tick hurt queue and
// the shared movement/AI scaffolding mobs tick against. Concrete mobs
// embed it and set Kind/MaxHP/AI at construction.
type Living struct {
	Base
	move MovementComputer

	health, maxHealth float64
	hurtQueue         []world.HurtRecord
	hurtCooldown      int
	deathTick         int

	wander wanderAI
	hunt   huntAI
	Loot   []world.ItemStack
}

func newLiving(kind string, pos mgl64.Vec3, width, height, maxHealth float64) Living {
	return Living{
		Base:      newBase(kind, pos, width, height),
		move:      MovementComputer{Gravity: 0.08, Drag: 0.02, StepHeight: 0.5},
		health:    maxHealth,
		maxHealth: maxHealth,
		deathTick: -1,
	}
}

// huntOptions configures a Living for hostile target-seeking behaviour;
// zero value leaves the mob on the passive wanderAI fallback.
func (l *Living) huntOptions(attackRange, attackDamage, moveSpeed float64) {
	l.hunt = huntAI{
		hostile:      true,
		attackRange:  attackRange,
		attackDamage: attackDamage,
		moveSpeed:    moveSpeed,
	}
}

func (l *Living) Health() float64    { return l.health }
func (l *Living) MaxHealth() float64 { return l.maxHealth }
func (l *Living) Dead() bool         { return l.health <= 0 }

func (l *Living) Hurt(amount float64, origin *uint32) {
	l.hurtQueue = append(l.hurtQueue, world.HurtRecord{Amount: amount, OriginID: origin})
}

func (l *Living) ApplyImpulse(v mgl64.Vec3) {
	l.vel = l.vel.Add(v)
}

// drainHurt applies the largest pending hit once the invulnerability
// cooldown has expired, the same "one hit counts per cooldown window"
// rule the original game uses for attack spam and fall damage alike.
func (l *Living) drainHurt() {
	if l.hurtCooldown > 0 {
		l.hurtCooldown--
	}
	if len(l.hurtQueue) == 0 {
		return
	}
	var max float64
	for _, h := range l.hurtQueue {
		if h.Amount > max {
			max = h.Amount
		}
	}
	l.hurtQueue = l.hurtQueue[:0]
	if l.hurtCooldown > 0 {
		return
	}
	l.health -= max
	l.hurtCooldown = 10
}

// wanderAI is a minimal stand-in for the original's random-walk idle
// behaviour: every few ticks it picks a random horizontal heading and
// walks it for a short duration, pausing between bouts.
type wanderAI struct {
	ticksLeft int
	heading   mgl64.Vec3
}

func (a *wanderAI) tick(r *rand.Source) mgl64.Vec3 {
	if a.ticksLeft <= 0 {
		if r.IntN(20) != 0 {
			a.heading = mgl64.Vec3{}
			a.ticksLeft = 10
			return a.heading
		}
		yaw := r.Float64() * 2 * math.Pi
		a.heading = mgl64.Vec3{math.Cos(yaw) * 0.1, 0, math.Sin(yaw) * 0.1}
		a.ticksLeft = 40
	}
	a.ticksLeft--
	return a.heading
}

// tickBody runs movement, gravity and hurt-queue resolution common to
// every Living mob; callers run this before their own kind-specific
// behaviour (attacking, fleeing, breeding, ...). A dead mob drops its loot
// on the first tick it spends at zero health and despawns twenty ticks
// later (spec §4.5 step 5), matching the original's death animation
// window rather than vanishing the instant its health reaches zero.
func (l *Living) tickBody(w *world.World) {
	l.drainHurt()
	if l.Dead() {
		if l.deathTick < 0 {
			l.deathTick = 0
			l.dropLoot(w)
		}
		l.deathTick++
		if l.deathTick >= 20 {
			w.RemoveEntity(l.id, "died")
		}
		return
	}

	heading, jumping := l.runAI(w)
	if jumping && l.move.OnGround() {
		l.vel[1] = 0.42
	}
	l.vel[0] += heading[0]
	l.vel[2] += heading[2]
	l.pos, l.vel = l.move.TickMovement(w, l.BBox(), l.pos, l.vel)
}

func (l *Living) dropLoot(w *world.World) {
	if len(l.Loot) == 0 || world.SpawnDroppedItem == nil {
		return
	}
	pos := cube.PosFromVec3(l.pos)
	for _, stack := range l.Loot {
		world.SpawnDroppedItem(w, pos, stack)
	}
}

// runAI dispatches to the hunting AI for hostile mobs and the passive
// wander fallback for everything else, returning a horizontal heading
// impulse and whether the mob wants to jump this tick.
func (l *Living) runAI(w *world.World) (mgl64.Vec3, bool) {
	if !l.hunt.hostile {
		return l.wander.tick(w.RNG()), false
	}
	return l.hunt.tick(w, l)
}

// worldGrid adapts *world.World to ai.Grid for pathfinding queries.
type worldGrid struct{ w *world.World }

func (g worldGrid) Walkable(pos cube.Pos) bool {
	id, _ := g.w.Block(pos)
	if world.MaterialOf(id).Solid {
		return false
	}
	above, _ := g.w.Block(pos.Side(cube.FaceUp))
	if world.MaterialOf(above).Solid {
		return false
	}
	below, _ := g.w.Block(pos.Side(cube.FaceDown))
	return world.MaterialOf(below).Solid
}

// huntAI implements the target-acquisition, path-following, jump and
// strafe behaviour of spec §4.5 step 6, grounded on the original's
// update_creature_ai/update_creature_path pair: search for a target, find
// a path to it with small re-plan probability, walk the path's waypoints,
// jump when the next waypoint is higher, and strafe instead of closing
// straight in once within attack range.
type huntAI struct {
	hostile      bool
	attackRange  float64
	attackDamage float64
	moveSpeed    float64

	targetID  uint32
	hasTarget bool

	path    []cube.Pos
	pathIdx int

	attackCooldown int
}

const searchRadius = 16.0

func (h *huntAI) findTarget(w *world.World, l *Living) (uint32, bool) {
	box := l.BBox().Grow(searchRadius)
	var bestID uint32
	bestDist := math.MaxFloat64
	found := false
	w.IterEntitiesColliding(box, l.id, func(id uint32, e world.Entity) {
		if e.Kind() != "player" {
			return
		}
		living, ok := e.(world.Living)
		if !ok || living.Dead() {
			return
		}
		d := e.Position().Sub(l.pos).Len()
		if d < bestDist {
			bestDist, bestID, found = d, id, true
		}
	})
	return bestID, found
}

func (h *huntAI) tick(w *world.World, l *Living) (mgl64.Vec3, bool) {
	if h.attackCooldown > 0 {
		h.attackCooldown--
	}

	if !h.hasTarget {
		if id, ok := h.findTarget(w, l); ok {
			h.targetID, h.hasTarget = id, true
			h.path = nil
		} else {
			return l.wander.tick(w.RNG()), false
		}
	}

	target, ok := w.EntityByID(h.targetID)
	targetLiving, lok := target.(world.Living)
	if !ok || !lok || targetLiving.Dead() {
		h.hasTarget, h.path = false, nil
		return l.wander.tick(w.RNG()), false
	}

	targetPos := target.Position()
	dist := targetPos.Sub(l.pos).Len()
	if dist <= h.attackRange {
		h.path = nil
		if h.attackCooldown == 0 {
			sid := l.id
			targetLiving.Hurt(h.attackDamage, &sid)
			h.attackCooldown = 20
		}
		return h.strafe(l.pos, targetPos), false
	}

	// update_creature_ai abandons the current path with 1/100 odds each
	// tick; the replacement is searched for in the same tick.
	if len(h.path) == 0 || w.RNG().IntN(100) == 0 {
		start := cube.PosFromVec3(l.pos)
		goal := cube.PosFromVec3(targetPos)
		if p, ok := ai.FindPath(worldGrid{w}, start, goal, 18.0); ok {
			h.path, h.pathIdx = p, 0
		} else {
			h.path = nil
			return l.wander.tick(w.RNG()), false
		}
	}
	return h.followPath(l)
}

// strafe returns a heading perpendicular to the vector toward target,
// keeping the mob at melee range rather than walking into it every tick.
func (h *huntAI) strafe(pos, target mgl64.Vec3) mgl64.Vec3 {
	toTarget := target.Sub(pos)
	toTarget[1] = 0
	if toTarget.Len() == 0 {
		return mgl64.Vec3{}
	}
	perp := mgl64.Vec3{-toTarget[2], 0, toTarget[0]}.Normalize()
	return perp.Mul(h.moveSpeed)
}

// followPath advances along the current waypoint list, only stepping to
// the next point once the current one is close enough, and signals a
// jump whenever the next waypoint sits above the mob's feet.
func (h *huntAI) followPath(l *Living) (mgl64.Vec3, bool) {
	for h.pathIdx < len(h.path) {
		wp := h.path[h.pathIdx].Vec3Centre()
		flat := mgl64.Vec3{wp[0], l.pos[1], wp[2]}
		if flat.Sub(l.pos).Len() < 0.5 {
			h.pathIdx++
			continue
		}
		heading := mgl64.Vec3{wp[0] - l.pos[0], 0, wp[2] - l.pos[2]}
		if heading.Len() == 0 {
			return mgl64.Vec3{}, false
		}
		jumping := wp[1] > l.pos[1]+0.1
		return heading.Normalize().Mul(h.moveSpeed), jumping
	}
	h.path = nil
	return mgl64.Vec3{}, false
}
