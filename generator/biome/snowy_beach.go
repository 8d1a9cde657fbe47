package biome

type SnowyBeach struct{}

func (SnowyBeach) Name() string {
	return "snowy_beach"
}

func (SnowyBeach) Surface() Surface {
	return Surface{
		Top:         "minecraft:snow_block",
		Filler:      "minecraft:sand",
		Underwater:  "minecraft:sand",
		FillerDepth: 3,
	}
}

func (SnowyBeach) TreeThreshold() float64 {
	return 0.95
}

func (SnowyBeach) Temperature() float64 {
	return 0.05
}

func (SnowyBeach) Rainfall() float64 {
	return 0.3
}
