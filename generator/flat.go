package generator

import (
	"log/slog"

	"github.com/dm-vev/terra/block"
	"github.com/dm-vev/terra/world"
)

// flatSurface is the height of the grass layer a flat world tops out at:
// solid stone fills everything beneath it.
const flatSurface = 64

// Flat is a noiseless debug generator: 64 stone layers capped with a single
// grass layer in every chunk, no water, no trees. Its output is independent
// of the seed.
type Flat struct {
	log *slog.Logger

	stone, grass     block.StateRef
	stoneOK, grassOK bool
}

// NewFlat creates a Flat generator for the config passed.
func NewFlat(conf Config) *Flat {
	log := conf.Log
	if log == nil {
		log = slog.Default()
	}
	reg := conf.Registry
	if reg == nil {
		reg = block.DefaultRegistry()
	}
	blocks := block.NewSnapshot(reg, log, "minecraft:stone", "minecraft:grass_block")
	f := &Flat{log: log}
	f.stone, f.stoneOK = blocks.State("minecraft:stone")
	f.grass, f.grassOK = blocks.State("minecraft:grass_block")
	return f
}

// GenerateChunk fills the chunk with the flat layer stack. It aborts and
// reports failure when the chunk leaves world.StateGenerating mid-call.
func (f *Flat) GenerateChunk(pos world.ChunkPos, c world.Chunk) bool {
	if c == nil {
		f.log.Error("generate chunk: nil chunk", "pos", pos)
		return false
	}
	for z := 0; z <= flatSurface; z++ {
		if c.State() != world.StateGenerating {
			return false
		}
		s, ok := f.stone, f.stoneOK
		if z == flatSurface {
			s, ok = f.grass, f.grassOK
		}
		if !ok {
			continue
		}
		for y := 0; y < world.ChunkSizeY; y++ {
			for x := 0; x < world.ChunkSizeX; x++ {
				c.SetBlock(x, y, z, s)
			}
		}
	}
	if c.State() != world.StateGenerating {
		return false
	}
	c.SetGenerated(true)
	c.MarkDirty()
	return true
}
