package block

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world"
)

func init() {
	world.RegisterBehavior(IDRepeaterOff, Repeater{Powered: false})
	world.RegisterBehavior(IDRepeaterOn, Repeater{Powered: true})
}

// Repeater relays power in a single direction with a configurable delay
// (1-4 ticks), toggling synchronously only after that delay elapses,
// giving the characteristic signal-delay behaviour (spec §4.3). Metadata
// packs the facing direction (bits 0-1) and the delay minus one (bits 2-3).
type Repeater struct{ Powered bool }

func (r Repeater) BlockName() string {
	if r.Powered {
		return "powered_repeater"
	}
	return "unpowered_repeater"
}

func repeaterFacing(meta byte) cube.Direction { return cube.Direction(meta & 0x3) }

// repeaterDelay maps the stored 1-4 setting to the 2/4/6/8 world-tick delay
// the original game actually schedules (one redstone tick is two world
// ticks).
func repeaterDelay(meta byte) int64 { return (int64((meta>>2)&0x3) + 1) * 2 }
func repeaterEncode(dir cube.Direction, delay int64) byte {
	return byte(dir&0x3) | byte(((delay-1)&0x3)<<2)
}

func (r Repeater) CanPlace(w *world.World, pos cube.Pos, face cube.Face, id byte) bool {
	return face == cube.FaceUp && solidSupportBelow(w, pos)
}

func (r Repeater) Place(w *world.World, pos cube.Pos, face cube.Face, id byte, placer world.Entity) byte {
	dir := cube.North
	if placer != nil {
		dir = placer.Rotation().Direction()
	}
	return repeaterEncode(dir, 1)
}

// SourcePower emits full power only out of the repeater's facing
// direction, and only while powered: unlike a lever or torch, a repeater
// must not bleed power back into the wire feeding its input, or a chain
// could never settle to zero once the repeater itself turns off.
func (r Repeater) SourcePower(w *world.World, pos cube.Pos, id, meta byte, face cube.Face) uint8 {
	if !r.Powered {
		return 0
	}
	if face != repeaterFacing(meta).Face() {
		return 0
	}
	return 15
}

// NeighbourChanged reschedules a re-evaluation on any neighbour change
// rather than filtering by origin: a redstone-engine settle pass notifies a
// repeater through PropagateRedstone's Notify call, which (unlike
// QueueNeighbourUpdates) always reports the repeater itself as the origin,
// so an origin-equality check against the input face would silently ignore
// every power change that arrives purely through wire. ScheduledTick reads
// the true input state itself once the delay elapses, so an extra
// reschedule from an unrelated face costs nothing beyond the dedupe guard
// below.
func (r Repeater) NeighbourChanged(w *world.World, pos cube.Pos, id, meta byte, origin cube.Pos) {
	if !solidSupportBelow(w, pos) {
		w.SetBlockNotify(pos, world.IDAir, 0)
		return
	}
	if !w.ScheduledTickPending(pos, id) {
		w.ScheduleBlockTick(pos, id, repeaterDelay(meta))
	}
}

func (r Repeater) ScheduledTick(w *world.World, pos cube.Pos, id, meta byte) {
	inputFace := repeaterFacing(meta).Opposite().Face()
	powered := w.InputPower(pos.Side(inputFace), inputFace.Opposite()) > 0
	if powered == r.Powered {
		return
	}
	newID := byte(IDRepeaterOff)
	if powered {
		newID = IDRepeaterOn
	}
	w.SetBlockNotify(pos, newID, meta)
	w.QueueRedstoneUpdate(pos)
}
