package generator

import (
	"log/slog"
	"strings"

	"github.com/dm-vev/terra/block"
	"github.com/dm-vev/terra/generator/biome"
	"github.com/dm-vev/terra/generator/feature"
	"github.com/dm-vev/terra/generator/noise"
	"github.com/dm-vev/terra/world"
)

const (
	// cancelStride is how many middle-loop rows pass between cancellation
	// polls during the density pass.
	cancelStride = 10

	// Above packedIceHeight, mountain and peak biomes swap their top block
	// for packed ice; above iceHeight for ice.
	packedIceHeight = 96
	iceHeight       = 112
)

// snapshotNames is every block name the generator and its features write.
// They are resolved into the immutable snapshot once, at construction.
var snapshotNames = []string{
	"minecraft:air",
	"minecraft:stone",
	"minecraft:dirt",
	"minecraft:grass_block",
	"minecraft:sand",
	"minecraft:sandstone",
	"minecraft:gravel",
	"minecraft:water",
	"minecraft:ice",
	"minecraft:packed_ice",
	"minecraft:snow",
	"minecraft:snow_block",
	"minecraft:short_grass",
	"minecraft:tall_grass",
	"minecraft:oak_log",
	"minecraft:oak_leaves",
	"minecraft:birch_log",
	"minecraft:birch_leaves",
	"minecraft:spruce_log",
	"minecraft:spruce_leaves",
	"minecraft:jungle_log",
	"minecraft:jungle_leaves",
	"minecraft:acacia_log",
	"minecraft:acacia_leaves",
}

// Overworld is the noise-based terrain generator. It is safe for concurrent
// use: all fields are immutable after NewOverworld returns and the only
// mutable state a generation call touches is the chunk it was handed.
type Overworld struct {
	log  *slog.Logger
	seed uint32

	biomes  *biome.Table
	terrain *noise.Field
	trees   *feature.Trees
	blocks  *block.Snapshot

	stone, water     block.StateRef
	stoneOK, oceanOK bool
}

// NewOverworld creates an Overworld generator for the config passed.
func NewOverworld(conf Config) *Overworld {
	log := conf.Log
	if log == nil {
		log = slog.Default()
	}
	reg := conf.Registry
	if reg == nil {
		reg = block.DefaultRegistry()
	}
	blocks := block.NewSnapshot(reg, log, snapshotNames...)

	g := &Overworld{
		log:     log,
		seed:    conf.Seed,
		biomes:  biome.NewTable(conf.Seed, log),
		terrain: noise.NewField(noise.ChannelSeed(conf.Seed, "terrain"), 1.0/64, 3, 0.5, 2.0, true),
		blocks:  blocks,
	}
	g.stone, g.stoneOK = blocks.State("minecraft:stone")
	g.water, g.oceanOK = blocks.State("minecraft:water")
	g.trees = feature.NewTrees(feature.Config{
		Log:    log,
		Seed:   conf.Seed,
		Ground: g.GroundHeight,
		Biome:  g.biomes.Get,
		Blocks: blocks,
	})
	return g
}

// BiomeAt returns the biome of the global column passed.
func (g *Overworld) BiomeAt(gx, gy int) biome.Biome {
	return g.biomes.Get(gx, gy)
}

// GenerateChunk fills the chunk passed with terrain, water, surface material
// and trees. It reports whether generation ran to completion; it returns
// false without rollback when the chunk leaves world.StateGenerating
// mid-call.
func (g *Overworld) GenerateChunk(pos world.ChunkPos, c world.Chunk) bool {
	if c == nil {
		g.log.Error("generate chunk: nil chunk", "pos", pos)
		return false
	}
	if c.State() != world.StateGenerating {
		return false
	}
	baseX := int(pos[0]) * world.ChunkSizeX
	baseY := int(pos[1]) * world.ChunkSizeY

	// 2D influences and biomes are per-column; evaluate them once, not per
	// voxel.
	var (
		cols   [world.ChunkSizeX][world.ChunkSizeY]column
		biomes [world.ChunkSizeX][world.ChunkSizeY]biome.Biome
	)
	for x := 0; x < world.ChunkSizeX; x++ {
		for y := 0; y < world.ChunkSizeY; y++ {
			cols[x][y] = g.column(baseX+x, baseY+y)
			biomes[x][y] = g.biomes.Get(baseX+x, baseY+y)
		}
	}

	for z := 0; z < world.ChunkHeight; z++ {
		if c.State() != world.StateGenerating {
			return false
		}
		for y := 0; y < world.ChunkSizeY; y++ {
			if y%cancelStride == 0 && c.State() != world.StateGenerating {
				return false
			}
			for x := 0; x < world.ChunkSizeX; x++ {
				if g.density(cols[x][y], baseX+x, baseY+y, z) >= 0 || !g.stoneOK {
					continue
				}
				if c.State() != world.StateGenerating {
					return false
				}
				c.SetBlock(x, y, z, g.stone)
			}
		}
	}

	// Flood everything still open at or below sea level.
	for z := 0; z <= world.SeaLevel; z++ {
		if c.State() != world.StateGenerating {
			return false
		}
		for y := 0; y < world.ChunkSizeY; y++ {
			for x := 0; x < world.ChunkSizeX; x++ {
				if c.Block(x, y, z) == 0 && g.oceanOK {
					c.SetBlock(x, y, z, g.water)
				}
			}
		}
	}

	if !g.applySurface(c, &biomes) {
		return false
	}
	g.trees.Generate(pos, c)
	if c.State() != world.StateGenerating {
		return false
	}
	c.SetGenerated(true)
	c.MarkDirty()
	return true
}

// ApplySurfaceRules re-resolves the biomes of the chunk passed and applies
// their surface rules. GenerateChunk calls this as part of a full generation;
// it is exposed for callers regenerating surfaces in isolation.
func (g *Overworld) ApplySurfaceRules(pos world.ChunkPos, c world.Chunk) bool {
	if c == nil {
		return false
	}
	baseX := int(pos[0]) * world.ChunkSizeX
	baseY := int(pos[1]) * world.ChunkSizeY
	var biomes [world.ChunkSizeX][world.ChunkSizeY]biome.Biome
	for x := 0; x < world.ChunkSizeX; x++ {
		for y := 0; y < world.ChunkSizeY; y++ {
			biomes[x][y] = g.biomes.Get(baseX+x, baseY+y)
		}
	}
	return g.applySurface(c, &biomes)
}

func (g *Overworld) applySurface(c world.Chunk, biomes *[world.ChunkSizeX][world.ChunkSizeY]biome.Biome) bool {
	for x := 0; x < world.ChunkSizeX; x++ {
		if c.State() != world.StateGenerating {
			return false
		}
		for y := 0; y < world.ChunkSizeY; y++ {
			surfZ := g.surfaceHeight(c, x, y)
			if surfZ < 0 {
				continue
			}
			g.applyColumnSurface(c, x, y, surfZ, biomes[x][y])
		}
	}
	return true
}

// surfaceHeight scans the column top-down for the first voxel that is
// neither air nor water and returns its height, or -1 for an empty column.
func (g *Overworld) surfaceHeight(c world.Chunk, x, y int) int {
	for z := world.ChunkHeight - 1; z >= 0; z-- {
		b := c.Block(x, y, z)
		if b == 0 || (g.oceanOK && b == g.water) {
			continue
		}
		return z
	}
	return -1
}

// applyColumnSurface writes the top and filler blocks of one column per the
// biome's surface rules, swapping in the underwater block for submerged
// surfaces and ice variants on high peaks.
func (g *Overworld) applyColumnSurface(c world.Chunk, x, y, surfZ int, b biome.Biome) {
	surf := b.Surface()

	top := surf.Top
	if surfZ >= packedIceHeight && isPeaksBiome(b.Name()) {
		if surfZ >= iceHeight {
			top = "minecraft:ice"
		} else {
			top = "minecraft:packed_ice"
		}
	}
	if s, ok := g.blocks.State(top); ok {
		c.SetBlock(x, y, surfZ, s)
	}
	if filler, ok := g.blocks.State(surf.Filler); ok {
		for d := 1; d <= surf.FillerDepth && surfZ-d >= 0; d++ {
			c.SetBlock(x, y, surfZ-d, filler)
		}
	}
	if surfZ < world.SeaLevel {
		if s, ok := g.blocks.State(surf.Underwater); ok {
			c.SetBlock(x, y, surfZ, s)
		}
	}
}

func isPeaksBiome(name string) bool {
	return strings.Contains(name, "peaks") || strings.Contains(name, "mountain")
}
