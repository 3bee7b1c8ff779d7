package block

import (
	"github.com/beta173/core/server/block/cube"
	"github.com/beta173/core/server/world"
)

// fullCube returns the single full-cube box at pos, the collision/overlay
// geometry of a solid cube block.
func fullCube(pos cube.Pos) []cube.BBox {
	return []cube.BBox{cube.Box(0, 0, 0, 1, 1, 1).Translate(pos.Vec3())}
}

// solidSupportBelow reports whether the block below pos is solid, the
// support rule shared by torches, dust, repeaters, beds and the plants in
// plants.go.
func solidSupportBelow(w *world.World, pos cube.Pos) bool {
	id, _ := w.Block(pos.Side(cube.FaceDown))
	return world.MaterialOf(id).Solid
}

// horizontalFaceFromLook maps a placer's look direction to one of the four
// horizontal faces, for blocks placed facing away from the player.
func horizontalFaceFromLook(look cube.Rotation) cube.Face {
	return look.Direction().Opposite().Face()
}
