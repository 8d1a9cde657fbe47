package generator_test

import (
	"testing"

	"github.com/dm-vev/terra/block"
	"github.com/dm-vev/terra/generator"
	"github.com/dm-vev/terra/world"
	"github.com/dm-vev/terra/world/chunk"
)

// TestFlatLayers checks the flat generator's layer stack: stone up to height
// 63, grass at 64, air above, no water anywhere.
func TestFlatLayers(t *testing.T) {
	t.Parallel()

	reg := block.DefaultRegistry()
	g := generator.NewFlat(generator.Config{Seed: 12345, Registry: reg})
	c := chunk.New()
	if !g.GenerateChunk(world.ChunkPos{0, 0}, c) {
		t.Fatal("GenerateChunk failed")
	}

	stoneID, _ := reg.BlockID("minecraft", "stone")
	grassID, _ := reg.BlockID("minecraft", "grass_block")
	waterID, _ := reg.BlockID("minecraft", "water")

	for x := 0; x < world.ChunkSizeX; x++ {
		for y := 0; y < world.ChunkSizeY; y++ {
			for z := 0; z < world.ChunkHeight; z++ {
				got := c.Block(x, y, z).ID()
				switch {
				case z < 64:
					if got != stoneID {
						t.Fatalf("block at (%d, %d, %d) has ID %d, want stone", x, y, z, got)
					}
				case z == 64:
					if got != grassID {
						t.Fatalf("block at (%d, %d, %d) has ID %d, want grass", x, y, z, got)
					}
				default:
					if got != 0 {
						t.Fatalf("block at (%d, %d, %d) has ID %d, want air", x, y, z, got)
					}
				}
				if got == waterID && waterID != 0 {
					t.Fatalf("water at (%d, %d, %d) in a flat world", x, y, z)
				}
			}
		}
	}
	if !c.Generated() || !c.Dirty() {
		t.Fatal("chunk flags not set after flat generation")
	}
}

// TestFlatSeedIndependent ensures the flat generator ignores the seed.
func TestFlatSeedIndependent(t *testing.T) {
	t.Parallel()

	a := generator.NewFlat(generator.Config{Seed: 1})
	b := generator.NewFlat(generator.Config{Seed: 2})
	ca, cb := chunk.New(), chunk.New()
	if !a.GenerateChunk(world.ChunkPos{3, -3}, ca) || !b.GenerateChunk(world.ChunkPos{3, -3}, cb) {
		t.Fatal("GenerateChunk failed")
	}
	for z := 0; z < world.ChunkHeight; z += 7 {
		if ca.Block(1, 1, z) != cb.Block(1, 1, z) {
			t.Fatalf("flat output depends on the seed at z=%d", z)
		}
	}
}

// TestFlatCancelled ensures a chunk outside the generating state is refused.
func TestFlatCancelled(t *testing.T) {
	t.Parallel()

	g := generator.NewFlat(generator.Config{})
	c := chunk.New()
	c.SetState(world.StateUnloaded)
	if g.GenerateChunk(world.ChunkPos{0, 0}, c) {
		t.Fatal("GenerateChunk reported success on an unloaded chunk")
	}
}
