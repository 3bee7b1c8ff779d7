package world

import "github.com/beta173/core/server/block/cube"

// The methods below let *World satisfy light.Grid directly.

// Opacity returns the registered Material opacity of the block at pos.
func (w *World) Opacity(pos cube.Pos) byte {
	id, _ := w.Block(pos)
	return MaterialOf(id).Opacity
}

// Emission returns the registered Material luminance of the block at pos.
func (w *World) Emission(pos cube.Pos) byte {
	id, _ := w.Block(pos)
	return MaterialOf(id).Luminance
}

// BlockLight returns the block light level at pos.
func (w *World) BlockLight(pos cube.Pos) byte {
	if !w.InBounds(pos) {
		return 0
	}
	cp, x, y, z := chunkAndLocal(pos)
	c := w.chunks[cp]
	block, _ := c.Light(x, y, z)
	return block
}

// SetBlockLight writes the block light level at pos.
func (w *World) SetBlockLight(pos cube.Pos, v byte) {
	if !w.InBounds(pos) {
		return
	}
	cp, x, y, z := chunkAndLocal(pos)
	w.chunks[cp].SetBlockLight(x, y, z, v)
}

// SkyLight returns the sky light level at pos.
func (w *World) SkyLight(pos cube.Pos) byte {
	if !w.InBounds(pos) {
		return 0
	}
	cp, x, y, z := chunkAndLocal(pos)
	c := w.chunks[cp]
	_, sky := c.Light(x, y, z)
	return sky
}

// SetSkyLight writes the sky light level at pos.
func (w *World) SetSkyLight(pos cube.Pos, v byte) {
	if !w.InBounds(pos) {
		return
	}
	cp, x, y, z := chunkAndLocal(pos)
	w.chunks[cp].SetSkyLight(x, y, z, v)
}

// AtOrAboveHeight reports whether pos is at or above the highest opaque
// block in its column, and therefore receives direct sky light in
// dimensions with an open sky.
func (w *World) AtOrAboveHeight(pos cube.Pos) bool {
	if !w.conf.Dim.SkyLight() {
		return false
	}
	cp, x, y, z := chunkAndLocal(pos)
	c, ok := w.chunks[cp]
	if !ok {
		return false
	}
	_ = z
	return y >= int(c.Heightmap[x][z])
}

// InBounds reports whether pos is within the world's vertical range and its
// owning chunk is currently loaded.
func (w *World) InBounds(pos cube.Pos) bool {
	if pos.OutOfBounds(w.conf.Range) {
		return false
	}
	cp, _, _, _ := chunkAndLocal(pos)
	_, ok := w.chunks[cp]
	return ok
}

// PropagateLight drains up to the configured per-tick light budget from the
// pending worklist (spec §4.1 step 5, §4.6).
func (w *World) PropagateLight() int {
	return w.lightEng.Propagate(w, w.conf.LightBudgetPerTick)
}
