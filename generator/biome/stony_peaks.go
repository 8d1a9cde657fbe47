package biome

type StonyPeaks struct{}

func (StonyPeaks) Name() string {
	return "stony_peaks"
}

func (StonyPeaks) Surface() Surface {
	return Surface{
		Top:         "minecraft:stone",
		Filler:      "minecraft:stone",
		Underwater:  "minecraft:gravel",
		FillerDepth: 1,
	}
}

func (StonyPeaks) TreeThreshold() float64 {
	return 1
}

func (StonyPeaks) Temperature() float64 {
	return 1.0
}

func (StonyPeaks) Rainfall() float64 {
	return 0.3
}
