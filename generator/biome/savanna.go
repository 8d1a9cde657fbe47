package biome

type Savanna struct {
	grassy
}

func (Savanna) Name() string {
	return "savanna"
}

func (Savanna) TreeThreshold() float64 {
	return 0.72
}

func (Savanna) Temperature() float64 {
	return 1.2
}

func (Savanna) Rainfall() float64 {
	return 0.0
}
