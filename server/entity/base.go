// Package entity implements the non-player entities driven by a world's
// per-tick simulation: dropped items, falling blocks, primed TNT,
// projectiles and the living mobs. Every entity embeds Base for its id,
// transform and bounding box bookkeeping, and is ticked directly by
// world.World.Tick through the world.Entity interface.
package entity

import (
	"math"

	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// Base holds the state every entity needs to satisfy world.Entity. Kind
// specific types embed it and set kind/size once at construction.
type Base struct {
	id       uint32
	kind     string
	pos, vel mgl64.Vec3
	rot      cube.Rotation
	width    float64
	height   float64
}

func newBase(kind string, pos mgl64.Vec3, width, height float64) Base {
	return Base{kind: kind, pos: pos, width: width, height: height}
}

func (b *Base) ID() uint32            { return b.id }
func (b *Base) Kind() string          { return b.kind }
func (b *Base) Position() mgl64.Vec3  { return b.pos }
func (b *Base) Rotation() cube.Rotation { return b.rot }
func (b *Base) Velocity() mgl64.Vec3  { return b.vel }

func (b *Base) BBox() cube.BBox {
	w, h := b.width/2, b.height
	return cube.Box(-w, 0, -w, w, h, w).Translate(b.pos)
}

func (b *Base) setID(id uint32) { b.id = id }

// SetRotation sets the entity's yaw/pitch directly, the same kind of
// external hook SetID provides for id assignment: the full server drives
// this from incoming look packets, and it lets a caller without package
// entity's internals (tests, a future spawn-with-facing path) place an
// entity at a specific look direction.
func (b *Base) SetRotation(rot cube.Rotation) { b.rot = rot }

// SetID is the exported form of setID, letting a caller outside this
// package (Spawn below, or a future world-loading path) satisfy
// world.World.SpawnEntity's id-assignment callback directly.
func (b *Base) SetID(id uint32) { b.setID(id) }

// settable is any entity whose id World.SpawnEntity can assign.
type settable interface {
	world.Entity
	SetID(uint32)
}

// Spawn inserts e into w and returns its assigned id, the general-purpose
// counterpart to Fire for every non-projectile entity this package
// constructs (mobs, minecarts, the player).
func Spawn(w *world.World, e settable) uint32 {
	return w.SpawnEntity(e, e.SetID)
}

// MovementComputer applies gravity, drag and block collision to an
// entity's velocity each tick, the same three-axis sweep the original
// game and this codebase's teacher both use: resolve Y, then X, then Z
// against every block bounding box the translated BBox could touch.
// StepHeight, when positive, lets the horizontal sweep retry one block
// higher and keep whichever attempt advances farther (spec §4.5), the
// same auto-step behaviour that lets ground mobs climb a single block
// without jumping.
type MovementComputer struct {
	Gravity, Drag float64
	NoClip        bool
	StepHeight     float64

	onGround bool
}

func (c *MovementComputer) OnGround() bool { return c.onGround }

// TickMovement advances pos/vel by one tick and returns the new values.
func (c *MovementComputer) TickMovement(w *world.World, bbox cube.BBox, pos, vel mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	vel[1] -= c.Gravity
	vel[0] *= 1 - c.Drag
	vel[1] *= 1 - c.Drag
	vel[2] *= 1 - c.Drag

	if c.NoClip {
		return pos.Add(vel), vel
	}

	entityBox := bbox
	boxes := collidingBoxes(w, entityBox.Grow(0.25))

	dx, dy, dz := vel[0], vel[1], vel[2]
	for _, bb := range boxes {
		dy = entityBox.YOffset(bb, dy)
	}
	yBox := entityBox.Translate(mgl64.Vec3{0, dy, 0})
	fdx := dx
	for _, bb := range boxes {
		fdx = yBox.XOffset(bb, fdx)
	}
	xBox := yBox.Translate(mgl64.Vec3{fdx, 0, 0})
	fdz := dz
	for _, bb := range boxes {
		fdz = xBox.ZOffset(bb, fdz)
	}

	if c.StepHeight > 0 && (fdx != dx || fdz != dz) {
		if sdx, sdy, sdz, ok := c.tryStep(entityBox, boxes, dx, dz); ok {
			if sdx*sdx+sdz*sdz > fdx*fdx+fdz*fdz {
				fdx, dy, fdz = sdx, sdy, sdz
			}
		}
	}
	dx, dz = fdx, fdz

	if dy != vel[1] {
		c.onGround = vel[1] < 0
		vel[1] = 0
	} else {
		c.onGround = false
	}
	if dx != vel[0] {
		vel[0] = 0
	}
	if dz != vel[2] {
		vel[2] = 0
	}
	return pos.Add(mgl64.Vec3{dx, dy, dz}), vel
}

// tryStep retries the horizontal move with the entity's box raised by up
// to StepHeight, then settles it back down onto whatever it lands on. It
// reports ok=false if the raise is fully blocked (e.g. a low ceiling).
func (c *MovementComputer) tryStep(entityBox cube.BBox, boxes []cube.BBox, dx, dz float64) (ndx, ndy, ndz float64, ok bool) {
	raise := c.StepHeight
	for _, bb := range boxes {
		raise = entityBox.YOffset(bb, raise)
	}
	if raise <= 0 {
		return 0, 0, 0, false
	}
	raised := entityBox.Translate(mgl64.Vec3{0, raise, 0})
	sdx := dx
	for _, bb := range boxes {
		sdx = raised.XOffset(bb, sdx)
	}
	raised = raised.Translate(mgl64.Vec3{sdx, 0, 0})
	sdz := dz
	for _, bb := range boxes {
		sdz = raised.ZOffset(bb, sdz)
	}
	raised = raised.Translate(mgl64.Vec3{0, 0, sdz})

	fall := -raise
	for _, bb := range boxes {
		fall = raised.YOffset(bb, fall)
	}
	return sdx, raise + fall, sdz, true
}

// collidingBoxes gathers the world-space collision boxes of every block
// whose cell intersects box, consulting world.Collider where a block
// registers one and falling back to a solid full cube otherwise.
func collidingBoxes(w *world.World, box cube.BBox) []cube.BBox {
	min, max := box.Min(), box.Max()
	minX, minY, minZ := int(math.Floor(min.X())), int(math.Floor(min.Y())), int(math.Floor(min.Z()))
	maxX, maxY, maxZ := int(math.Ceil(max.X())), int(math.Ceil(max.Y())), int(math.Ceil(max.Z()))

	var out []cube.BBox
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				pos := cube.Pos{x, y, z}
				id, meta := w.Block(pos)
				behaviour := world.BehaviorFor(id)
				if collider, ok := behaviour.(world.Collider); ok {
					out = append(out, collider.CollidingBoxes(w, pos, id, meta)...)
					continue
				}
				if world.MaterialOf(id).Solid {
					offset := mgl64.Vec3{float64(x), float64(y), float64(z)}
					out = append(out, cube.Box(0, 0, 0, 1, 1, 1).Translate(offset))
				}
			}
		}
	}
	return out
}
