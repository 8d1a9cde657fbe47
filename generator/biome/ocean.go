package biome

type Ocean struct{}

func (Ocean) Name() string {
	return "ocean"
}

func (Ocean) Surface() Surface {
	return Surface{
		Top:         "minecraft:gravel",
		Filler:      "minecraft:gravel",
		Underwater:  "minecraft:gravel",
		FillerDepth: 3,
	}
}

func (Ocean) TreeThreshold() float64 {
	return 1
}

func (Ocean) Temperature() float64 {
	return 0.5
}

func (Ocean) Rainfall() float64 {
	return 0.5
}
