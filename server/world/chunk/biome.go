package chunk

// Biome ids, matching the small fixed palette of the original biome grid.
const (
	BiomeOcean byte = iota
	BiomePlains
	BiomeDesert
	BiomeForest
	BiomeTaiga
	BiomeSwamp
	BiomeRiver
	BiomeMountains
)
