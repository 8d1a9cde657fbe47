package biome

type Plains struct {
	grassy
}

func (Plains) Name() string {
	return "plains"
}

func (Plains) TreeThreshold() float64 {
	return 0.82
}

func (Plains) Temperature() float64 {
	return 0.8
}

func (Plains) Rainfall() float64 {
	return 0.4
}
