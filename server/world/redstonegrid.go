package world

import "github.com/beta173/core/server/block/cube"

// PowerSource is implemented by blocks that inject active power into an
// adjacent redstone wire network without themselves being wire: levers,
// buttons, redstone torches, repeater outputs. face is the direction, as
// seen from pos, pointing toward whichever neighbour is asking for power —
// a non-directional source (lever, button, torch) can ignore it, but it
// lets a directional one (a repeater, which must only emit out of the face
// it points toward) answer "no" to every other neighbour.
type PowerSource interface {
	SourcePower(w *World, pos cube.Pos, id, meta byte, face cube.Face) uint8
}

// The methods below let *World satisfy redstone.Grid directly, avoiding an
// adapter type: the method set matches by name, not by explicit
// implements-interface declaration, which is how package redstone avoids
// importing package world.

// IsWire reports whether pos holds redstone wire.
func (w *World) IsWire(pos cube.Pos) bool {
	id, _ := w.Block(pos)
	return id == IDRedstoneWire
}

// SourcePower returns the power injected into pos by a non-wire neighbour
// source, via the block's PowerSource hook if it has one. The redstone
// engine calls this once per node of a collected wire network to seed that
// cell's starting power, so it looks outward at pos's six neighbours
// rather than at pos itself — a wire cell sitting at pos is never itself a
// PowerSource, so checking pos directly would always yield zero and no
// lever or button could ever power its own adjoining wire.
func (w *World) SourcePower(pos cube.Pos) uint8 {
	var best uint8
	for _, f := range cube.Faces() {
		nb := pos.Side(f)
		id, meta := w.Block(nb)
		b, ok := BehaviorFor(id).(PowerSource)
		if !ok {
			continue
		}
		if p := b.SourcePower(w, nb, id, meta, f.Opposite()); p > best {
			best = p
		}
	}
	return best
}

// InputPower returns the effective redstone power a consuming block (a
// repeater's input face, a lamp, a door) sees at pos, where the consumer
// sits on the far side of pos.Side(face) — i.e. face is the direction,
// from pos, back toward the consumer asking. Wire is non-directional and
// returns its own settled power regardless of face; a directional
// PowerSource (a repeater) answers only on its configured output face.
// SourcePower alone is not enough for this since, per the Grid contract,
// it deliberately excludes power relayed through wire — callers that need
// "is pos currently powered, wire included" must use InputPower instead.
func (w *World) InputPower(pos cube.Pos, face cube.Face) uint8 {
	id, meta := w.Block(pos)
	if id == IDRedstoneWire {
		return meta
	}
	if b, ok := BehaviorFor(id).(PowerSource); ok {
		return b.SourcePower(w, pos, id, meta, face)
	}
	return 0
}

// SetWirePower writes the settled power level into a wire block's metadata.
func (w *World) SetWirePower(pos cube.Pos, power uint8) {
	id, meta := w.Block(pos)
	if id != IDRedstoneWire || meta == byte(power) {
		return
	}
	w.SetBlockSelfNotify(pos, IDRedstoneWire, byte(power))
}

// Notify informs the block at pos that nearby redstone state changed,
// invoking its NeighbourChanger hook with itself as the origin.
func (w *World) Notify(pos cube.Pos) {
	id, meta := w.Block(pos)
	if b, ok := BehaviorFor(id).(NeighbourChanger); ok {
		b.NeighbourChanged(w, pos, id, meta, pos)
	}
}

// PropagateRedstone runs the redstone engine's BFS/settle pass seeded at
// pos, writing settled power levels back and notifying affected
// neighbours. Called from a wire placement/removal or a PowerSource change
// (spec §4.3).
func (w *World) PropagateRedstone(pos cube.Pos) {
	w.redstoneEng.Propagate(w, pos)
}
