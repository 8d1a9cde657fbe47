package biome

type Taiga struct {
	grassy
}

func (Taiga) Name() string {
	return "taiga"
}

func (Taiga) TreeThreshold() float64 {
	return 0.42
}

func (Taiga) Temperature() float64 {
	return 0.25
}

func (Taiga) Rainfall() float64 {
	return 0.8
}
