package biome

type SnowyPeaks struct{}

func (SnowyPeaks) Name() string {
	return "snowy_peaks"
}

func (SnowyPeaks) Surface() Surface {
	return Surface{
		Top:         "minecraft:snow_block",
		Filler:      "minecraft:stone",
		Underwater:  "minecraft:gravel",
		FillerDepth: 2,
	}
}

func (SnowyPeaks) TreeThreshold() float64 {
	return 1
}

func (SnowyPeaks) Temperature() float64 {
	return -0.7
}

func (SnowyPeaks) Rainfall() float64 {
	return 0.9
}
