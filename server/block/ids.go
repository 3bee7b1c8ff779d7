// Package block registers the static Material and Behavior singletons for
// every implemented block kind into package world's id-keyed tables, each
// file from its own init(). Besides its id constants the package exports
// the behaviour types it registers (Wire, Lever, Repeater, ...), which
// callers normally reach through world.BehaviorFor.
package block

// Block ids, matching the original game's fixed numbering so that saved
// chunk data and the fluid/redstone engines' own fixed ids (world.IDWater,
// world.IDRedstoneWire, ...) agree with this catalog.
const (
	IDAir        = 0
	IDStone      = 1
	IDGrass      = 2
	IDDirt       = 3
	IDCobblestone = 4
	IDPlanks     = 5
	IDSapling    = 6
	IDBedrock    = 7
	IDFlowingWater = 8
	IDWater      = 9
	IDFlowingLava = 10
	IDLava       = 11
	IDSand       = 12
	IDGravel     = 13
	IDLog        = 17
	IDLeaves     = 18
	IDGlass      = 20
	IDDispenser  = 23
	IDSandstone  = 24
	IDNoteBlock  = 25
	IDBed        = 26
	IDPoweredRail = 27
	IDRail       = 66
	IDTorch      = 50
	IDFire       = 51
	IDWoodStairs = 53
	IDChest      = 54
	IDRedstoneWire = 55
	IDCraftingTable = 58
	IDWheat      = 59
	IDFarmland   = 60
	IDFurnace    = 61
	IDLitFurnace = 62
	IDSignPost   = 63
	IDWoodDoor   = 64
	IDLever      = 69
	IDStoneButton = 77
	IDSnow       = 78
	IDIce        = 79
	IDCactus     = 81
	IDJukebox    = 84
	IDFence      = 85
	IDSoulSand   = 88
	IDGlowstone  = 89
	IDRedstoneLampOff = 123
	IDRedstoneLampOn  = 124
	IDRedstoneTorchOff = 75
	IDRedstoneTorchOn  = 76
	IDRepeaterOff = 93
	IDRepeaterOn  = 94
	IDObsidian   = 49
	IDSugarCane  = 83
	IDTNT        = 46
	IDMonsterSpawner = 52
)
