package block

import "github.com/beta173/core/server/world"

func init() {
	reg := world.RegisterMaterial
	reg(IDStone, world.Material{Name: "stone", Opacity: 15, Hardness: 1.5, Solid: true, BlastResistance: 30})
	reg(IDGrass, world.Material{Name: "grass", Opacity: 15, Hardness: 0.6, Solid: true, BlastResistance: 3})
	reg(IDDirt, world.Material{Name: "dirt", Opacity: 15, Hardness: 0.5, Solid: true, BlastResistance: 2.5})
	reg(IDCobblestone, world.Material{Name: "cobblestone", Opacity: 15, Hardness: 2, Solid: true, BlastResistance: 30})
	reg(IDPlanks, world.Material{Name: "planks", Opacity: 15, Hardness: 2, Solid: true, Flammable: true, BlastResistance: 15})
	reg(IDSapling, world.Material{Name: "sapling", Opacity: 0, Hardness: 0, Solid: false, Flammable: true})
	reg(IDBedrock, world.Material{Name: "bedrock", Opacity: 15, Solid: true, BlastResistance: 18000000})
	reg(IDFlowingWater, world.Material{Name: "flowing_water", Opacity: 3, Solid: false})
	reg(IDWater, world.Material{Name: "water", Opacity: 3, Solid: false})
	reg(IDFlowingLava, world.Material{Name: "flowing_lava", Opacity: 15, Luminance: 15, Solid: false})
	reg(IDLava, world.Material{Name: "lava", Opacity: 15, Luminance: 15, Solid: false})
	reg(IDSand, world.Material{Name: "sand", Opacity: 15, Hardness: 0.5, Solid: true, BlastResistance: 2.5})
	reg(IDGravel, world.Material{Name: "gravel", Opacity: 15, Hardness: 0.6, Solid: true, BlastResistance: 3})
	reg(IDLog, world.Material{Name: "log", Opacity: 15, Hardness: 2, Solid: true, Flammable: true, BlastResistance: 10})
	reg(IDLeaves, world.Material{Name: "leaves", Opacity: 1, Hardness: 0.2, Solid: true, Flammable: true, BlastResistance: 1})
	reg(IDGlass, world.Material{Name: "glass", Opacity: 0, Hardness: 0.3, Solid: true, BlastResistance: 1.5})
	reg(IDDispenser, world.Material{Name: "dispenser", Opacity: 15, Hardness: 3.5, Solid: true, BlastResistance: 17.5})
	reg(IDSandstone, world.Material{Name: "sandstone", Opacity: 15, Hardness: 0.8, Solid: true, BlastResistance: 4})
	reg(IDNoteBlock, world.Material{Name: "noteblock", Opacity: 15, Hardness: 0.8, Solid: true, Flammable: true, BlastResistance: 4})
	reg(IDBed, world.Material{Name: "bed", Opacity: 0, Hardness: 0.2, Solid: false, Flammable: true})
	reg(IDRail, world.Material{Name: "rail", Opacity: 0, Hardness: 0.7, Solid: false})
	reg(IDTorch, world.Material{Name: "torch", Opacity: 0, Luminance: 14, Hardness: 0, Solid: false, Flammable: true})
	reg(IDFire, world.Material{Name: "fire", Opacity: 0, Luminance: 15, Solid: false})
	reg(IDChest, world.Material{Name: "chest", Opacity: 0, Hardness: 2.5, Solid: true, Flammable: true, BlastResistance: 12.5})
	reg(IDRedstoneWire, world.Material{Name: "redstone_wire", Opacity: 0, Hardness: 0, Solid: false})
	reg(IDCraftingTable, world.Material{Name: "crafting_table", Opacity: 15, Hardness: 2.5, Solid: true, Flammable: true, BlastResistance: 12.5})
	reg(IDWheat, world.Material{Name: "wheat", Opacity: 0, Hardness: 0, Solid: false, Flammable: true})
	reg(IDFarmland, world.Material{Name: "farmland", Opacity: 15, Hardness: 0.6, Solid: true, BlastResistance: 3})
	reg(IDFurnace, world.Material{Name: "furnace", Opacity: 15, Hardness: 3.5, Solid: true, BlastResistance: 17.5})
	reg(IDLitFurnace, world.Material{Name: "lit_furnace", Opacity: 15, Luminance: 13, Hardness: 3.5, Solid: true, BlastResistance: 17.5})
	reg(IDSignPost, world.Material{Name: "sign", Opacity: 0, Hardness: 1, Solid: false, Flammable: true})
	reg(IDWoodDoor, world.Material{Name: "wood_door", Opacity: 0, Hardness: 3, Solid: true, Flammable: true, BlastResistance: 15})
	reg(IDLever, world.Material{Name: "lever", Opacity: 0, Hardness: 0.5, Solid: false})
	reg(IDStoneButton, world.Material{Name: "stone_button", Opacity: 0, Hardness: 0.5, Solid: false})
	reg(IDSnow, world.Material{Name: "snow_layer", Opacity: 0, Hardness: 0.1, Solid: false})
	reg(IDIce, world.Material{Name: "ice", Opacity: 3, Hardness: 0.5, Solid: true, BlastResistance: 2.5})
	reg(IDCactus, world.Material{Name: "cactus", Opacity: 0, Hardness: 0.4, Solid: false, BlastResistance: 2})
	reg(IDJukebox, world.Material{Name: "jukebox", Opacity: 15, Hardness: 2, Solid: true, BlastResistance: 30})
	reg(IDFence, world.Material{Name: "fence", Opacity: 0, Hardness: 2, Solid: true, Flammable: true, BlastResistance: 15})
	reg(IDSoulSand, world.Material{Name: "soul_sand", Opacity: 15, Hardness: 0.5, Solid: true, BlastResistance: 2.5})
	reg(IDGlowstone, world.Material{Name: "glowstone", Opacity: 15, Luminance: 15, Hardness: 0.3, Solid: true, BlastResistance: 1.5})
	reg(IDRedstoneLampOff, world.Material{Name: "redstone_lamp", Opacity: 15, Solid: true, Hardness: 0.3, BlastResistance: 1.5})
	reg(IDRedstoneLampOn, world.Material{Name: "lit_redstone_lamp", Opacity: 15, Luminance: 15, Solid: true, Hardness: 0.3, BlastResistance: 1.5})
	reg(IDRedstoneTorchOff, world.Material{Name: "unlit_redstone_torch", Opacity: 0, Solid: false})
	reg(IDRedstoneTorchOn, world.Material{Name: "redstone_torch", Opacity: 0, Luminance: 7, Solid: false})
	reg(IDRepeaterOff, world.Material{Name: "unpowered_repeater", Opacity: 0, Hardness: 0, Solid: false})
	reg(IDRepeaterOn, world.Material{Name: "powered_repeater", Opacity: 0, Luminance: 9, Hardness: 0, Solid: false})
	reg(IDObsidian, world.Material{Name: "obsidian", Opacity: 15, Hardness: 50, Solid: true, BlastResistance: 6000})
	reg(IDSugarCane, world.Material{Name: "sugar_cane", Opacity: 0, Hardness: 0, Solid: false})
	reg(IDTNT, world.Material{Name: "tnt", Opacity: 15, Hardness: 0, Solid: true, Flammable: true})
	reg(IDMonsterSpawner, world.Material{Name: "mob_spawner", Opacity: 0, Hardness: 5, Solid: true})
	reg(IDPoweredRail, world.Material{Name: "golden_rail", Opacity: 0, Hardness: 0.7, Solid: false})
}
