package item

import (
	"math"

	"github.com/beta173/core/server/world"
)

// ToolTier describes a tool material's harvest level and digging speed
// multiplier, the same two numbers the original game keys break speed on
// (wood/stone/iron/diamond/gold, each both faster and able to harvest
// higher-tier blocks than the last).
type ToolTier struct {
	Level byte
	Speed float64
}

var (
	TierWood    = ToolTier{Level: 0, Speed: 2}
	TierStone   = ToolTier{Level: 1, Speed: 4}
	TierIron    = ToolTier{Level: 2, Speed: 6}
	TierDiamond = ToolTier{Level: 3, Speed: 8}
	TierGold    = ToolTier{Level: 0, Speed: 12}
)

// Tool is the subset of a held item's identity break-speed math needs.
type Tool struct {
	Kind world.ToolKind
	Tier ToolTier
}

// handTool is used whenever the holder has nothing equipped, or the held
// item isn't a tool at all.
var handTool = Tool{Kind: world.ToolNone, Tier: ToolTier{Level: 0, Speed: 1}}

// ToolForID maps a tool item id to its Tool descriptor, falling back to
// the bare-hand tool for anything not registered (non-tool items, or id
// 0 for an empty hand).
func ToolForID(id int16) Tool {
	if t, ok := tools[id]; ok {
		return t
	}
	return handTool
}

var tools = map[int16]Tool{
	IDWoodPickaxe:    {Kind: world.ToolPickaxe, Tier: TierWood},
	IDStonePickaxe:   {Kind: world.ToolPickaxe, Tier: TierStone},
	IDIronPickaxe:    {Kind: world.ToolPickaxe, Tier: TierIron},
	IDDiamondPickaxe: {Kind: world.ToolPickaxe, Tier: TierDiamond},
	IDGoldPickaxe:    {Kind: world.ToolPickaxe, Tier: TierGold},

	IDWoodAxe:    {Kind: world.ToolAxe, Tier: TierWood},
	IDStoneAxe:   {Kind: world.ToolAxe, Tier: TierStone},
	IDIronAxe:    {Kind: world.ToolAxe, Tier: TierIron},
	IDDiamondAxe: {Kind: world.ToolAxe, Tier: TierDiamond},
	IDGoldAxe:    {Kind: world.ToolAxe, Tier: TierGold},

	IDWoodShovel:    {Kind: world.ToolShovel, Tier: TierWood},
	IDStoneShovel:   {Kind: world.ToolShovel, Tier: TierStone},
	IDIronShovel:    {Kind: world.ToolShovel, Tier: TierIron},
	IDDiamondShovel: {Kind: world.ToolShovel, Tier: TierDiamond},
	IDGoldShovel:    {Kind: world.ToolShovel, Tier: TierGold},
}

// BreakDuration returns the number of ticks needed to break a block with
// the given BreakInfo using tool, following the original's break-speed
// shape: a tool of the matching kind and a sufficient harvest level breaks
// at 1/(1.5*hardness) of the base rate times the tool's speed multiplier;
// anything else (hand, wrong tool kind, too-low tier) falls back to a
// slow 1/(5*hardness) rate. The minimum duration is one tick, matching
// instant-break blocks (hardness 0) still consuming the tick they're
// broken on.
func BreakDuration(info world.BreakInfo, tool Tool) int {
	if info.Hardness < 0 {
		return math.MaxInt32 // unbreakable (e.g. bedrock)
	}
	base := 5.0
	speed := 1.0
	if info.Tool != world.ToolNone && tool.Kind == info.Tool && int(tool.Tier.Level) >= info.MinToolTier {
		base = 1.5
		speed = tool.Tier.Speed
	}
	ticks := info.Hardness * base / speed
	return int(math.Ceil(math.Max(ticks, 1)))
}
