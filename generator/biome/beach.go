package biome

type Beach struct {
	sandy
}

func (Beach) Name() string {
	return "beach"
}

func (Beach) TreeThreshold() float64 {
	return 0.92
}

func (Beach) Temperature() float64 {
	return 0.8
}

func (Beach) Rainfall() float64 {
	return 0.4
}
