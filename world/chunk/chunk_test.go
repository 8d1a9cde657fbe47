package chunk

import (
	"testing"

	"github.com/dm-vev/terra/block"
	"github.com/dm-vev/terra/world"
)

// TestNewChunk ensures a fresh chunk is all air and starts in the generating
// state with no flags set.
func TestNewChunk(t *testing.T) {
	t.Parallel()

	c := New()
	if c.State() != world.StateGenerating {
		t.Fatalf("State() = %v, want %v", c.State(), world.StateGenerating)
	}
	if c.Dirty() || c.Generated() {
		t.Fatal("fresh chunk already dirty or generated")
	}
	for _, p := range [][3]int{{0, 0, 0}, {15, 15, 127}, {7, 3, 60}} {
		if got := c.Block(p[0], p[1], p[2]); got != 0 {
			t.Fatalf("Block(%v) = %d, want air", p, got)
		}
	}
}

// TestSetBlock checks a write round trip and that neighbouring voxels stay
// untouched.
func TestSetBlock(t *testing.T) {
	t.Parallel()

	c := New()
	s := block.StateRef(1 << 4)
	c.SetBlock(3, 4, 5, s)
	if got := c.Block(3, 4, 5); got != s {
		t.Fatalf("Block(3, 4, 5) = %d, want %d", got, s)
	}
	for _, p := range [][3]int{{2, 4, 5}, {4, 4, 5}, {3, 3, 5}, {3, 5, 5}, {3, 4, 4}, {3, 4, 6}} {
		if got := c.Block(p[0], p[1], p[2]); got != 0 {
			t.Fatalf("neighbour %v = %d, want air", p, got)
		}
	}
}

// TestOutOfBounds ensures out-of-range access reads air and ignores writes.
func TestOutOfBounds(t *testing.T) {
	t.Parallel()

	c := New()
	bad := [][3]int{
		{-1, 0, 0}, {16, 0, 0},
		{0, -1, 0}, {0, 16, 0},
		{0, 0, -1}, {0, 0, 128},
	}
	for _, p := range bad {
		c.SetBlock(p[0], p[1], p[2], 99)
		if got := c.Block(p[0], p[1], p[2]); got != 0 {
			t.Fatalf("Block(%v) = %d, want air", p, got)
		}
	}
	// The writes above must not have aliased into valid voxels.
	for x := 0; x < world.ChunkSizeX; x++ {
		for y := 0; y < world.ChunkSizeY; y++ {
			if got := c.Block(x, y, 0); got != 0 {
				t.Fatalf("Block(%d, %d, 0) = %d after out-of-bounds writes", x, y, got)
			}
		}
	}
}

// TestStateTransitions walks the lifecycle states.
func TestStateTransitions(t *testing.T) {
	t.Parallel()

	c := New()
	c.SetState(world.StateActive)
	if c.State() != world.StateActive {
		t.Fatalf("State() = %v, want %v", c.State(), world.StateActive)
	}
	c.SetState(world.StateUnloaded)
	if c.State() != world.StateUnloaded {
		t.Fatalf("State() = %v, want %v", c.State(), world.StateUnloaded)
	}
	c.MarkDirty()
	c.SetGenerated(true)
	if !c.Dirty() || !c.Generated() {
		t.Fatal("flags not set")
	}
}
