package biome

type SnowyTaiga struct {
	snowy
}

func (SnowyTaiga) Name() string {
	return "snowy_taiga"
}

func (SnowyTaiga) TreeThreshold() float64 {
	return 0.48
}

func (SnowyTaiga) Temperature() float64 {
	return -0.5
}

func (SnowyTaiga) Rainfall() float64 {
	return 0.4
}
