package world

import (
	"log/slog"

	"github.com/beta173/core/server/block/cube"
)

// Dimension distinguishes the overworld from the nether, which changes lava
// flow cost (spec §4.4) and whether sky light propagates at all.
type Dimension uint8

const (
	Overworld Dimension = iota
	Nether
)

// SkyLight reports whether the dimension has an open sky (the overworld
// does; the nether does not).
func (d Dimension) SkyLight() bool { return d == Overworld }

// Config holds the parameters needed to construct a World. The zero value
// is usable; New applies the documented defaults, following the pattern of
// the teacher's server.Config/New().
type Config struct {
	// Log is the logger used for world-level diagnostics (TPS warnings,
	// save failures, ...). If nil, Log is set to slog.Default().
	Log *slog.Logger
	// Range is the vertical range of the world. Defaults to [0, 127].
	Range cube.Range
	// Dim is the Dimension of the world.
	Dim Dimension
	// RandomTickSpeed is the fixed number of random block ticks performed
	// per loaded chunk per world tick (spec §4.1 step 3). Defaults to 3.
	RandomTickSpeed int
	// LightBudgetPerTick caps how many light recomputations Tick performs
	// per call (spec §4.1 step 5). Defaults to 8192.
	LightBudgetPerTick int
	// RedstoneBudgetPerTick caps how many queued redstone perturbations
	// Tick settles per call; the same number separately caps the queued
	// fluid updates. Work left over stays queued for the next call.
	// Defaults to 512.
	RedstoneBudgetPerTick int
	// Source is the ChunkSource used to load/save chunks. Defaults to
	// NopSource{}.
	Source ChunkSource
	// Seed seeds the world's deterministic RNG (spec §9).
	Seed int64
}

// New builds a World from the Config, applying defaults for zero-valued
// fields.
func (c Config) New() *World {
	if c.Log == nil {
		c.Log = slog.Default()
	}
	if c.Range == (cube.Range{}) {
		c.Range = cube.Range{0, 127}
	}
	if c.RandomTickSpeed == 0 {
		c.RandomTickSpeed = 3
	}
	if c.LightBudgetPerTick <= 0 {
		c.LightBudgetPerTick = 8192
	}
	if c.RedstoneBudgetPerTick <= 0 {
		c.RedstoneBudgetPerTick = 512
	}
	if c.Source == nil {
		c.Source = NopSource{}
	}
	return newWorld(c)
}
