package chunk

import "testing"

func TestSetBlockRoundTrip(t *testing.T) {
	c := New()
	c.SetBlock(1, 2, 3, 42, 7)
	id, meta := c.Block(1, 2, 3)
	if id != 42 || meta != 7 {
		t.Fatalf("got id=%d meta=%d, want id=42 meta=7", id, meta)
	}
}

func TestMetadataNibblePacking(t *testing.T) {
	c := New()
	// Two adjacent cells (even/odd dense index) must not clobber one another.
	c.SetBlock(0, 0, 0, 1, 0xF)
	c.SetBlock(0, 1, 0, 2, 0x3)
	if _, meta := c.Block(0, 0, 0); meta != 0xF {
		t.Fatalf("low nibble clobbered: got %x", meta)
	}
	if _, meta := c.Block(0, 1, 0); meta != 0x3 {
		t.Fatalf("high nibble clobbered: got %x", meta)
	}
}

func TestLightRoundTrip(t *testing.T) {
	c := New()
	c.SetBlockLight(4, 5, 6, 12)
	c.SetSkyLight(4, 5, 6, 15)
	block, sky := c.Light(4, 5, 6)
	if block != 12 || sky != 15 {
		t.Fatalf("got block=%d sky=%d, want block=12 sky=15", block, sky)
	}
}

func TestArraySnapshotRoundTrip(t *testing.T) {
	c := New()
	c.SetBlock(8, 64, 8, 9, 2)
	c.SetBlockLight(8, 64, 8, 5)
	c.SetSkyLight(8, 64, 8, 15)

	ids, meta, bl, sl := c.Ids(), c.Metadata(), c.BlockLightArray(), c.SkyLightArray()

	c2 := New()
	c2.LoadArrays(ids, meta, bl, sl)

	id, m := c2.Block(8, 64, 8)
	if id != 9 || m != 2 {
		t.Fatalf("id/meta did not round-trip: got id=%d meta=%d", id, m)
	}
	b, s := c2.Light(8, 64, 8)
	if b != 5 || s != 15 {
		t.Fatalf("light did not round-trip: got block=%d sky=%d", b, s)
	}
	if c2.Ids() != ids || c2.Metadata() != meta || c2.BlockLightArray() != bl || c2.SkyLightArray() != sl {
		t.Fatalf("snapshot arrays are not bit-exact after round trip")
	}
}

func TestIndexOrder(t *testing.T) {
	// (x<<11)|(z<<7)|y must distinguish all in-range coordinates.
	seen := make(map[int]bool)
	for x := 0; x < Width; x++ {
		for z := 0; z < Width; z++ {
			for y := 0; y < Height; y++ {
				i := index(x, y, z)
				if seen[i] {
					t.Fatalf("duplicate index for (%d,%d,%d): %d", x, y, z, i)
				}
				seen[i] = true
			}
		}
	}
	if len(seen) != Volume {
		t.Fatalf("got %d distinct indices, want %d", len(seen), Volume)
	}
}
