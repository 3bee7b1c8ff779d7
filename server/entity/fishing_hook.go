package entity

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// biteWaitMin/biteWaitMax bound the random delay before a cast bobber
// gets a bite, matching the wide variance of the original's fishing wait.
const (
	biteWaitMin = 100
	biteWaitMax = 600
)

// FishingHook is a cast bobber: it falls until it settles on a fluid
// surface, then waits a random interval before a bite pulls it under,
// after which the caster is expected to reel it in.
type FishingHook struct {
	Base
	move MovementComputer

	OwnerID  uint32
	floating bool
	biteIn   int
	bitten   bool
}

func NewFishingHook(pos mgl64.Vec3, ownerID uint32, w *world.World) *FishingHook {
	h := &FishingHook{
		Base:    newBase("fishing_hook", pos, 0.25, 0.25),
		move:    MovementComputer{Gravity: 0.03, Drag: 0.08},
		OwnerID: ownerID,
	}
	h.biteIn = biteWaitMin + int(w.RNG().IntN(int32(biteWaitMax-biteWaitMin)))
	return h
}

func (h *FishingHook) Tick(w *world.World, currentTick int64) {
	below := cube.PosFromVec3(h.pos).Side(cube.FaceDown)
	id, _ := w.Block(below)
	h.floating = id == world.IDWater || id == world.IDFlowingWater

	if h.floating {
		h.vel[1] = 0
	} else {
		h.pos, h.vel = h.move.TickMovement(w, h.BBox(), h.pos, h.vel)
	}

	if !h.floating || h.bitten {
		return
	}
	h.biteIn--
	if h.biteIn <= 0 {
		h.bitten = true
	}
}

// Bitten reports whether a fish has taken the hook, letting the owner's
// reel-in interaction award a catch.
func (h *FishingHook) Bitten() bool { return h.bitten }
