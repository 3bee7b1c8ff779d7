package redstone

import (
	"testing"

	"github.com/beta173/core/server/block/cube"
)

// fakeGrid is a minimal in-memory Grid used to exercise the engine without a
// real world.
type fakeGrid struct {
	wire    map[cube.Pos]bool
	source  map[cube.Pos]uint8
	power   map[cube.Pos]uint8
	notices map[cube.Pos]int
}

func newFakeGrid() *fakeGrid {
	return &fakeGrid{
		wire:    map[cube.Pos]bool{},
		source:  map[cube.Pos]uint8{},
		power:   map[cube.Pos]uint8{},
		notices: map[cube.Pos]int{},
	}
}

func (g *fakeGrid) IsWire(pos cube.Pos) bool       { return g.wire[pos] }
func (g *fakeGrid) SourcePower(pos cube.Pos) uint8 { return g.source[pos] }
func (g *fakeGrid) SetWirePower(pos cube.Pos, power uint8) {
	g.power[pos] = power
}
func (g *fakeGrid) Notify(pos cube.Pos) { g.notices[pos]++ }

func withWireLine(g *fakeGrid, from, to int) {
	for x := from; x <= to; x++ {
		g.wire[cube.Pos{x, 64, 0}] = true
	}
}

func TestPropagateDecaysOverDistance(t *testing.T) {
	g := newFakeGrid()
	withWireLine(g, 0, 5)
	g.source[cube.Pos{0, 64, 0}] = 15

	e := NewEngine()
	e.Propagate(g, cube.Pos{0, 64, 0})

	want := map[int]uint8{0: 15, 1: 14, 2: 13, 3: 12, 4: 11, 5: 10}
	for x, p := range want {
		if got := g.power[cube.Pos{x, 64, 0}]; got != p {
			t.Fatalf("pos x=%d: got power %d, want %d", x, got, p)
		}
	}
}

func TestPropagateNotifiesEachNeighbourOnce(t *testing.T) {
	g := newFakeGrid()
	withWireLine(g, 0, 2)
	g.source[cube.Pos{0, 64, 0}] = 15

	e := NewEngine()
	e.Propagate(g, cube.Pos{0, 64, 0})

	// (1,64,0) is a neighbour of both (0,64,0) and (2,64,0); it must only be
	// notified once despite being adjacent to two settled nodes.
	if g.notices[cube.Pos{1, 64, 0}] != 1 {
		t.Fatalf("expected exactly one notify for shared neighbour, got %d", g.notices[cube.Pos{1, 64, 0}])
	}
}

func TestPropagateStepsUpAndDown(t *testing.T) {
	g := newFakeGrid()
	// Wire climbs a one-block step at x=1 (wire at y=65 instead of y=64),
	// then drops back down at x=2.
	g.wire[cube.Pos{0, 64, 0}] = true
	g.wire[cube.Pos{1, 65, 0}] = true
	g.wire[cube.Pos{2, 64, 0}] = true
	g.source[cube.Pos{0, 64, 0}] = 15

	e := NewEngine()
	e.Propagate(g, cube.Pos{0, 64, 0})

	if _, ok := g.power[cube.Pos{1, 65, 0}]; !ok {
		t.Fatalf("expected the stepped-up wire to join the network")
	}
	if _, ok := g.power[cube.Pos{2, 64, 0}]; !ok {
		t.Fatalf("expected the wire past the step to join the network")
	}
	if g.power[cube.Pos{2, 64, 0}] >= g.power[cube.Pos{0, 64, 0}] {
		t.Fatalf("expected power to decay across the step, got %d at origin and %d past it",
			g.power[cube.Pos{0, 64, 0}], g.power[cube.Pos{2, 64, 0}])
	}
}

func TestPropagateNonWireSeedIsNoop(t *testing.T) {
	g := newFakeGrid()
	e := NewEngine()
	e.Propagate(g, cube.Pos{0, 64, 0})
	if len(g.power) != 0 {
		t.Fatalf("expected no writes for a non-wire seed")
	}
}
