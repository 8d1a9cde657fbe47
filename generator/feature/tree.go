// Package feature overlays generated terrain with features. Placement is
// driven entirely by pure functions of global coordinates: a feature rooted
// in one chunk stamps exactly the same blocks into a neighbouring chunk no
// matter which of the two is generated first, or whether the other is ever
// generated at all.
package feature

import (
	"log/slog"
	"strings"

	"github.com/dm-vev/terra/block"
	"github.com/dm-vev/terra/cube"
	"github.com/dm-vev/terra/generator/biome"
	"github.com/dm-vev/terra/generator/noise"
	"github.com/dm-vev/terra/world"
	"github.com/segmentio/fasthash/fnv1a"
)

// ceilingMargin is the minimum clearance a tree needs below the top of the
// world.
const ceilingMargin = 14

// Config contains the collaborators a Trees feature generator needs.
type Config struct {
	// Log is the Logger used for placement statistics. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
	// Seed is the world seed.
	Seed uint32
	// Ground returns the ground height of a global column without reading
	// chunk memory. It must agree with the density field terrain was shaped
	// by.
	Ground func(gx, gy int) int
	// Biome returns the biome of a global column.
	Biome func(gx, gy int) biome.Biome
	// Blocks resolves the block states trees are stamped from.
	Blocks *block.Snapshot
}

// Trees finds well-separated tree sites on a dedicated placement noise
// channel and stamps cached templates into chunks. Immutable after
// construction and shared across workers.
type Trees struct {
	log *slog.Logger

	seed      uint32
	placement *noise.Field
	variety   *noise.Field
	ground    func(gx, gy int) int
	biomeAt   func(gx, gy int) biome.Biome
	blocks    *block.Snapshot

	templates   templateCache
	replaceable map[block.StateRef]struct{}
}

// replaceableNames are the blocks a stamped tree voxel may overwrite. Solid
// terrain is never overwritten; the canopy flows around it.
var replaceableNames = []string{
	"minecraft:air",
	"minecraft:water",
	"minecraft:grass_block",
	"minecraft:short_grass",
	"minecraft:tall_grass",
	"minecraft:snow",
	"minecraft:oak_leaves",
	"minecraft:birch_leaves",
	"minecraft:spruce_leaves",
	"minecraft:jungle_leaves",
	"minecraft:acacia_leaves",
}

// NewTrees creates a Trees feature generator from the config passed.
func NewTrees(conf Config) *Trees {
	log := conf.Log
	if log == nil {
		log = slog.Default()
	}
	t := &Trees{
		log:       log,
		seed:      conf.Seed,
		placement: noise.NewField(noise.ChannelSeed(conf.Seed, "tree_placement"), 0.47, 2, 0.5, 2.0, true),
		variety:   noise.NewField(noise.ChannelSeed(conf.Seed, "tree_variety"), 1.0/24, 1, 0.5, 2.0, true),
		ground:    conf.Ground,
		biomeAt:   conf.Biome,
		blocks:    conf.Blocks,
	}
	t.replaceable = make(map[block.StateRef]struct{}, len(replaceableNames))
	for _, name := range replaceableNames {
		if s, ok := conf.Blocks.State(name); ok {
			t.replaceable[s] = struct{}{}
		}
	}
	return t
}

// Generate stamps every tree whose footprint overlaps the chunk passed and
// reports whether at least one tree placed blocks into it. The search covers
// the chunk bounds extended by MaxRadius, so trees rooted in neighbouring
// chunks contribute their overlap.
func (t *Trees) Generate(pos world.ChunkPos, c world.Chunk) bool {
	if c == nil {
		return false
	}
	baseX := int(pos[0]) * world.ChunkSizeX
	baseY := int(pos[1]) * world.ChunkSizeY

	placed := 0
	for gx := baseX - MaxRadius; gx < baseX+world.ChunkSizeX+MaxRadius; gx++ {
		if c.State() != world.StateGenerating {
			return placed > 0
		}
		for gy := baseY - MaxRadius; gy < baseY+world.ChunkSizeY+MaxRadius; gy++ {
			v := t.placement.Sample2(float64(gx), float64(gy))
			if !t.localMax(gx, gy, v) {
				continue
			}
			b := t.biomeAt(gx, gy)
			threshold := b.TreeThreshold()
			if threshold >= 1 || v < threshold {
				continue
			}
			ground := t.ground(gx, gy)
			if ground <= world.SeaLevel || ground >= world.ChunkHeight-ceilingMargin {
				continue
			}
			tpl := t.templates.get(t.kindFor(b, gx, gy), sizeFor(v-threshold), t.blocks)
			if t.stamp(c, pos, cube.Pos{gx, gy, ground + 1}, tpl) {
				placed++
			}
		}
	}
	t.log.Debug("tree placement", "chunk_x", pos[0], "chunk_y", pos[1], "trees", placed)
	return placed > 0
}

// localMax reports whether the placement sample v at (gx, gy) is strictly
// greater than all eight neighbouring samples. Local maxima are inherently
// well separated, which keeps placement deterministic without any record of
// already-placed trees.
func (t *Trees) localMax(gx, gy int, v float64) bool {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if t.placement.Sample2(float64(gx+dx), float64(gy+dy)) >= v {
				return false
			}
		}
	}
	return true
}

// kindFor selects the tree species for a site. Forests mix oak and birch on
// a secondary noise channel; other biomes map from their name.
func (t *Trees) kindFor(b biome.Biome, gx, gy int) Kind {
	name := b.Name()
	switch {
	case strings.Contains(name, "taiga"), strings.Contains(name, "snowy"):
		return Spruce
	case strings.Contains(name, "jungle"):
		return Jungle
	case strings.Contains(name, "savanna"), strings.Contains(name, "desert"):
		return Acacia
	case strings.Contains(name, "forest"):
		if t.variety.Sample2(float64(gx), float64(gy)) > 0.35 {
			return Birch
		}
		return Oak
	default:
		return Oak
	}
}

// sizeFor bands the margin by which the placement sample cleared the biome
// threshold into a size tier.
func sizeFor(margin float64) Size {
	switch {
	case margin >= 0.22:
		return Large
	case margin >= 0.1:
		return Medium
	default:
		return Small
	}
}

// stamp writes the template's placements rooted at the global position into
// the chunk, skipping voxels outside the chunk bounds (the owning neighbour
// places those itself) and voxels holding non-replaceable blocks. It reports
// whether any voxel was written.
func (t *Trees) stamp(c world.Chunk, pos world.ChunkPos, root cube.Pos, tpl *Template) bool {
	baseX := int(pos[0]) * world.ChunkSizeX
	baseY := int(pos[1]) * world.ChunkSizeY

	written := false
	for _, p := range tpl.placements {
		g := root.Add(p.Offset)
		lx, ly, lz := g.X()-baseX, g.Y()-baseY, g.Z()
		if lx < 0 || lx >= world.ChunkSizeX || ly < 0 || ly >= world.ChunkSizeY || lz < 0 || lz >= world.ChunkHeight {
			continue
		}
		if p.Trim && t.trimmed(g) {
			continue
		}
		if _, ok := t.replaceable[c.Block(lx, ly, lz)]; !ok {
			continue
		}
		if c.State() != world.StateGenerating {
			return written
		}
		c.SetBlock(lx, ly, lz, p.Block)
		written = true
	}
	return written
}

// trimmed decides whether a trimmable canopy corner at the global position
// passed is dropped. Keyed on global coordinates so both chunks sharing a
// tree agree.
func (t *Trees) trimmed(g cube.Pos) bool {
	h := fnv1a.Init64
	h = fnv1a.AddUint64(h, uint64(t.seed))
	h = fnv1a.AddUint64(h, uint64(int64(g.X())))
	h = fnv1a.AddUint64(h, uint64(int64(g.Y())))
	h = fnv1a.AddUint64(h, uint64(int64(g.Z())))
	return h&1 == 0
}
