// Package biome classifies climate noise into named biomes and carries the
// per-biome surface and feature configuration. Biomes are stateless values
// constructed once and shared read-only by every chunk.
package biome

// Surface bundles the surface-rule triple of a biome: the block forming the
// top layer, the filler written beneath it and the block replacing the top
// when the surface sits below sea level.
type Surface struct {
	Top         string
	Filler      string
	Underwater  string
	FillerDepth int
}

// Biome describes a named climate region. Implementations are empty value
// types; every method returns a constant.
type Biome interface {
	// Name returns the lowercase identifier of the biome.
	Name() string
	// Surface returns the surface rules applied to columns of this biome.
	Surface() Surface
	// TreeThreshold is the placement-noise cutoff a local maximum must reach
	// for a tree to root in this biome. Values at or above 1 effectively
	// prohibit trees. Hand-tuned, reproduced as opaque configuration.
	TreeThreshold() float64
	// Temperature returns the representative temperature of the biome's
	// climate range.
	Temperature() float64
	// Rainfall returns the representative rainfall of the biome's climate
	// range.
	Rainfall() float64
}

// grassy is the surface mixin of temperate land biomes.
type grassy struct{}

func (grassy) Surface() Surface {
	return Surface{
		Top:         "minecraft:grass_block",
		Filler:      "minecraft:dirt",
		Underwater:  "minecraft:gravel",
		FillerDepth: 3,
	}
}

// snowy is the surface mixin of frozen land biomes.
type snowy struct{}

func (snowy) Surface() Surface {
	return Surface{
		Top:         "minecraft:snow_block",
		Filler:      "minecraft:dirt",
		Underwater:  "minecraft:gravel",
		FillerDepth: 2,
	}
}

// sandy is the surface mixin of beaches and deserts.
type sandy struct{}

func (sandy) Surface() Surface {
	return Surface{
		Top:         "minecraft:sand",
		Filler:      "minecraft:sandstone",
		Underwater:  "minecraft:sand",
		FillerDepth: 4,
	}
}
