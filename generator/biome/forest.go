package biome

type Forest struct {
	grassy
}

func (Forest) Name() string {
	return "forest"
}

func (Forest) TreeThreshold() float64 {
	return 0.34
}

func (Forest) Temperature() float64 {
	return 0.7
}

func (Forest) Rainfall() float64 {
	return 0.8
}
