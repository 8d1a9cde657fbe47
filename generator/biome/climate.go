package biome

// Sample holds the five raw climate channel values of one column. Samples are
// recomputed on demand and never stored.
type Sample struct {
	Temperature     float64
	Humidity        float64
	Continentalness float64
	Erosion         float64
	PeaksValleys    float64
}

// Temperature is the ordinal temperature category of a column.
type Temperature int

const (
	TemperatureFrozen Temperature = iota
	TemperatureCold
	TemperatureTemperate
	TemperatureWarm
	TemperatureHot
)

// Humidity is the ordinal humidity category of a column.
type Humidity int

const (
	HumidityArid Humidity = iota
	HumidityDry
	HumidityNeutral
	HumidityDamp
	HumidityHumid
)

// Continentalness is the ordinal land-vs-ocean category of a column.
type Continentalness int

const (
	ContinentalnessDeepOcean Continentalness = iota
	ContinentalnessOcean
	ContinentalnessCoast
	ContinentalnessNearInland
	ContinentalnessMidInland
	ContinentalnessFarInland
)

// Erosion is the ordinal erosion level of a column. Lower levels produce
// rougher, more mountainous terrain.
type Erosion int

// PeaksValleys is the ordinal mountain/valley extremity of a column, derived
// from the ridge-folded weirdness channel.
type PeaksValleys int

const (
	PVValleys PeaksValleys = iota
	PVLow
	PVMid
	PVHigh
	PVPeaks
)

// Classification holds the five ordinal categories of one column.
type Classification struct {
	Temperature     Temperature
	Humidity        Humidity
	Continentalness Continentalness
	Erosion         Erosion
	PeaksValleys    PeaksValleys
}

// The threshold tables below were tuned against the clamped density formula
// and the spline tables in the generator package; they are configuration
// constants, not derived values. Each table is open-ended at both extremes so
// that every input, infinities included, maps to exactly one category.
var (
	temperatureCuts     = []float64{-0.45, -0.15, 0.2, 0.55}
	humidityCuts        = []float64{-0.35, -0.1, 0.1, 0.3}
	continentalnessCuts = []float64{-0.455, -0.19, -0.11, 0.03, 0.30}
	erosionCuts         = []float64{-0.78, -0.375, -0.2225, 0.05, 0.45, 0.55}
	peaksValleysCuts    = []float64{-0.85, -0.6, 0.2, 0.7}
)

// Classify buckets the five raw channel values of the sample into their
// ordinal categories.
func Classify(s Sample) Classification {
	return Classification{
		Temperature:     Temperature(bucket(s.Temperature, temperatureCuts)),
		Humidity:        Humidity(bucket(s.Humidity, humidityCuts)),
		Continentalness: Continentalness(bucket(s.Continentalness, continentalnessCuts)),
		Erosion:         Erosion(bucket(s.Erosion, erosionCuts)),
		PeaksValleys:    PeaksValleys(bucket(s.PeaksValleys, peaksValleysCuts)),
	}
}

// bucket returns the index of the first ascending threshold greater than v,
// or len(cuts) if v exceeds them all.
func bucket(v float64, cuts []float64) int {
	for i, c := range cuts {
		if v < c {
			return i
		}
	}
	return len(cuts)
}
