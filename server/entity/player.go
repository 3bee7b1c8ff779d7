package entity

import (
	"github.com/beta173/core/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// Player is the controlled entity behind a connected client. Its position
// and rotation are normally driven by incoming packets rather than
// tickBody's AI, but it still ticks its movement/hurt-queue scaffolding
// the same way every other Living does so that falling, drowning and
// hostile-mob damage apply uniformly.
//
// Arrows is a placeholder inventory slot sufficient for the bow-use
// scenario (spec §8 scenario 4): a full inventory/container model is out
// of this core's scope (spec §6's external-interfaces seam), but a shot
// arrow still has to come from, and be decremented out of, somewhere.
type Player struct {
	Living
	Arrows int
}

func NewPlayer(pos mgl64.Vec3) *Player {
	p := &Player{Living: newLiving("player", pos, 0.6, 1.8, 20)}
	return p
}

func (p *Player) Tick(w *world.World, currentTick int64) {
	p.drainHurt()
	if p.Dead() {
		if p.deathTick < 0 {
			p.deathTick = 0
			p.dropLoot(w)
		}
		p.deathTick++
		return
	}
	p.pos, p.vel = p.move.TickMovement(w, p.BBox(), p.pos, p.vel)
}

// ConsumeArrow removes one arrow from the player's inventory, reporting
// whether one was available to fire.
func (p *Player) ConsumeArrow() bool {
	if p.Arrows <= 0 {
		return false
	}
	p.Arrows--
	return true
}

// EyeHeight returns the vertical offset from Position to the player's eye
// point, used for line-of-sight and bow-firing origin math.
func (p *Player) EyeHeight() float64 { return p.height * 0.9 }
