package biome

type Jungle struct {
	grassy
}

func (Jungle) Name() string {
	return "jungle"
}

func (Jungle) TreeThreshold() float64 {
	return 0.28
}

func (Jungle) Temperature() float64 {
	return 0.95
}

func (Jungle) Rainfall() float64 {
	return 0.9
}
