package biome

type FrozenOcean struct{}

func (FrozenOcean) Name() string {
	return "frozen_ocean"
}

// Surface returns packed ice for submerged columns so frozen oceans read as
// an ice sheet rather than a gravel floor.
func (FrozenOcean) Surface() Surface {
	return Surface{
		Top:         "minecraft:snow_block",
		Filler:      "minecraft:gravel",
		Underwater:  "minecraft:packed_ice",
		FillerDepth: 3,
	}
}

func (FrozenOcean) TreeThreshold() float64 {
	return 1
}

func (FrozenOcean) Temperature() float64 {
	return 0.0
}

func (FrozenOcean) Rainfall() float64 {
	return 0.5
}
