package world

// Material holds the static, id-keyed properties of a block kind: the
// metadata-independent facts the world needs for height-map maintenance,
// lighting and generic collision, without having to ask the block's
// Behavior (which may not be registered at all for "plain" blocks like
// stone or dirt that have no special logic).
type Material struct {
	Name string
	// Opacity is the light attenuation the block applies per block of light
	// passing through it: 15 for a fully opaque cube, 0 for air and other
	// fully transparent blocks.
	Opacity byte
	// Luminance is the light level the block itself emits (0-15).
	Luminance byte
	// Hardness affects break duration; see the item package's break-speed
	// tables.
	Hardness float64
	// Solid blocks fill their full cube for collision and height-map
	// purposes; non-solid blocks (dust, torches, flowers, ...) do not.
	Solid bool
	Flammable bool
	// BlastResistance affects explosion destruction radius falloff.
	BlastResistance float64
}

var materials [256]Material

// RegisterMaterial installs the static material properties for a block id.
// Called from package block's init functions.
func RegisterMaterial(id byte, m Material) {
	materials[id] = m
}

// MaterialOf returns the registered Material for id, or the zero Material
// (fully transparent, non-solid, zero hardness) if nothing was registered.
func MaterialOf(id byte) Material {
	return materials[id]
}
