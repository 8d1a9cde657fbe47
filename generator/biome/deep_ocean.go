package biome

type DeepOcean struct{}

func (DeepOcean) Name() string {
	return "deep_ocean"
}

func (DeepOcean) Surface() Surface {
	return Surface{
		Top:         "minecraft:gravel",
		Filler:      "minecraft:gravel",
		Underwater:  "minecraft:gravel",
		FillerDepth: 3,
	}
}

func (DeepOcean) TreeThreshold() float64 {
	return 1
}

func (DeepOcean) Temperature() float64 {
	return 0.5
}

func (DeepOcean) Rainfall() float64 {
	return 0.5
}
