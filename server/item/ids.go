// Package item implements spec component #12: break-duration/speed tables
// keyed off package world's BreakInfo, and the use/placement dispatch for
// hand-held items (tools breaking blocks faster, a bow firing an arrow).
// Unlike package block, it registers nothing from init; besides its id
// constants it exports the break-duration and use/placement functions.
package item

// Item ids, matching the original game's fixed numbering (mirroring
// package block's own id constants for the same reason: saved data and
// loot tables need a stable, game-accurate numbering).
const (
	IDIronShovel   = 256
	IDIronPickaxe  = 257
	IDIronAxe      = 258
	IDArrow        = 262
	IDBow          = 261
	IDWoodShovel   = 269
	IDWoodPickaxe  = 270
	IDWoodAxe      = 271
	IDStoneShovel  = 273
	IDStonePickaxe = 274
	IDStoneAxe     = 275
	IDDiamondShovel  = 277
	IDDiamondPickaxe = 278
	IDDiamondAxe     = 279
	IDGoldShovel   = 284
	IDGoldPickaxe  = 285
	IDGoldAxe      = 286
	IDString       = 287
	IDGunpowder    = 289
	IDRawPorkchop  = 319
	IDRottenFlesh  = 367
)
