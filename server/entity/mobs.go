package entity

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// Pig is a passive mob that only wanders; it never attacks and is not
// hurt by other mobs, matching the original's "passive" mob class.
type Pig struct{ Living }

func NewPig(pos mgl64.Vec3) *Pig {
	p := &Pig{Living: newLiving("pig", pos, 0.9, 0.9, 10)}
	p.Loot = []world.ItemStack{{ID: 319, Count: 1}} // raw porkchop
	return p
}

func (p *Pig) Tick(w *world.World, currentTick int64) { p.tickBody(w) }

// Zombie, Skeleton, Creeper and Spider are the original's four overworld
// hostile mobs. They all run the shared huntAI once they spot a player
// within range: path to it, close in, then strafe and attack at melee
// distance (spec §4.5 step 6).
type Zombie struct{ Living }

func NewZombie(pos mgl64.Vec3) *Zombie {
	z := &Zombie{Living: newLiving("zombie", pos, 0.6, 1.95, 20)}
	z.huntOptions(1.5, 4, 0.12)
	z.Loot = []world.ItemStack{{ID: 367, Count: 1}} // rotten flesh
	return z
}

func (z *Zombie) Tick(w *world.World, currentTick int64) { z.tickBody(w) }

type Skeleton struct{ Living }

func NewSkeleton(pos mgl64.Vec3) *Skeleton {
	s := &Skeleton{Living: newLiving("skeleton", pos, 0.6, 1.95, 20)}
	s.huntOptions(8, 0, 0.12) // bow range; melee damage handled by a future arrow-firing pass
	s.Loot = []world.ItemStack{{ID: 262, Count: 1}} // arrow
	return s
}

func (s *Skeleton) Tick(w *world.World, currentTick int64) { s.tickBody(w) }

// Creeper additionally tracks a fuse; Ignite starts it manually (e.g. from
// a lightning strike), and proximity to a player with a clear line of
// sight also starts it, matching the original's detection trigger. Tick
// counts the fuse down and explodes exactly like TNT when it reaches
// zero.
type Creeper struct {
	Living
	fuse int
}

func NewCreeper(pos mgl64.Vec3) *Creeper {
	c := &Creeper{Living: newLiving("creeper", pos, 0.6, 1.7, 20), fuse: -1}
	c.huntOptions(2.5, 0, 0.1) // no melee hit; the fuse/explosion is its attack
	c.Loot = []world.ItemStack{{ID: 289, Count: 1}} // gunpowder
	return c
}

func (c *Creeper) Ignite() { c.fuse = 30 }

const creeperSightRange = 8.0

func (c *Creeper) Tick(w *world.World, currentTick int64) {
	c.tickBody(w)
	if c.Dead() {
		return
	}
	if c.fuse < 0 {
		if id, ok := c.hunt.targetID, c.hunt.hasTarget; ok {
			if target, found := w.EntityByID(id); found {
				c.checkIgnite(w, target.Position())
			}
		}
	}
	if c.fuse < 0 {
		return
	}
	c.fuse--
	if c.fuse == 0 {
		w.RemoveEntity(c.id, "exploded")
		explode(w, c.pos, 3)
	}
}

// checkIgnite starts the fuse once a player is within sight range and
// there is an unobstructed line of sight to them, the proximity-detection
// trigger that was previously missing entirely.
func (c *Creeper) checkIgnite(w *world.World, targetPos mgl64.Vec3) {
	eye := c.pos.Add(mgl64.Vec3{0, c.height * 0.85, 0})
	toTarget := targetPos.Sub(eye)
	dist := toTarget.Len()
	if dist > creeperSightRange || dist == 0 {
		return
	}
	if _, blocked := world.RayTraceBlock(w, eye, toTarget, dist); !blocked {
		c.Ignite()
	}
}

// Spider climbs whatever wall is blocking its horizontal path instead of
// only ever walking around it: once a tick's horizontal movement came up
// short against a solid face, it gets a small upward velocity so the next
// tick's sweep carries it up the wall, the closest approximation of true
// wall-climbing the bounding-box sweep in MovementComputer supports.
type Spider struct{ Living }

func NewSpider(pos mgl64.Vec3) *Spider {
	s := &Spider{Living: newLiving("spider", pos, 1.4, 0.9, 16)}
	s.huntOptions(1.8, 2, 0.14)
	s.Loot = []world.ItemStack{{ID: 287, Count: 1}} // string
	return s
}

func (s *Spider) Tick(w *world.World, currentTick int64) {
	before := s.pos
	s.tickBody(w)
	if s.Dead() {
		return
	}
	if s.hunt.hostile && horizontallyBlocked(before, s.pos) && horizontallySolidAhead(w, s.pos, s.rot) {
		s.vel[1] = 0.2
	}
}

func horizontallyBlocked(before, after mgl64.Vec3) bool {
	dx, dz := after[0]-before[0], after[2]-before[2]
	return dx*dx+dz*dz < 0.0001
}

func horizontallySolidAhead(w *world.World, pos mgl64.Vec3, rot cube.Rotation) bool {
	face := rot.Direction().Face()
	ahead := cube.PosFromVec3(pos).Side(face)
	id, _ := w.Block(ahead)
	return world.MaterialOf(id).Solid
}
