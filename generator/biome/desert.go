package biome

type Desert struct {
	sandy
}

func (Desert) Name() string {
	return "desert"
}

func (Desert) TreeThreshold() float64 {
	return 0.97
}

func (Desert) Temperature() float64 {
	return 2.0
}

func (Desert) Rainfall() float64 {
	return 0.0
}
