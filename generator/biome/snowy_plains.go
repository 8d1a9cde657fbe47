package biome

type SnowyPlains struct {
	snowy
}

func (SnowyPlains) Name() string {
	return "snowy_plains"
}

func (SnowyPlains) TreeThreshold() float64 {
	return 0.86
}

func (SnowyPlains) Temperature() float64 {
	return 0.0
}

func (SnowyPlains) Rainfall() float64 {
	return 0.5
}
