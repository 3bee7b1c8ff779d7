package item

import (
	"math"

	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/entity"
	"github.com/beta173/core/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// arrowSpeed is the initial velocity magnitude (blocks/tick) a fully-drawn
// bow gives its arrow, matching the original's full-charge shot speed.
const arrowSpeed = 3.0

// arrowDamage is the base hit damage an arrow deals on impact (spec §8
// scenario 4: a zombie at 20 health drops to 16 after one hit).
const arrowDamage = 4.0

// FireBow fires an arrow from shooter's eye position along its current
// look direction, decrementing one arrow from its inventory. It reports
// false without spawning anything if the shooter has no arrows left.
func FireBow(w *world.World, shooter *entity.Player) (uint32, bool) {
	if !shooter.ConsumeArrow() {
		return 0, false
	}
	origin := shooter.Position().Add(mgl64.Vec3{0, shooter.EyeHeight(), 0})
	dir := lookDirection(shooter.Rotation())
	id := entity.Fire(w, entity.ProjectileArrow, origin, dir.Mul(arrowSpeed), shooter.ID(), arrowDamage)
	return id, true
}

// lookDirection converts a yaw/pitch rotation (degrees, per cube.Rotation)
// into a unit direction vector, matching the original's yaw-0-faces-south
// convention that cube.Rotation.Direction() also uses.
func lookDirection(rot cube.Rotation) mgl64.Vec3 {
	yaw := rot.Yaw() * math.Pi / 180
	pitch := rot.Pitch() * math.Pi / 180
	cosPitch := math.Cos(pitch)
	return mgl64.Vec3{
		-math.Sin(yaw) * cosPitch,
		-math.Sin(pitch),
		math.Cos(yaw) * cosPitch,
	}
}
