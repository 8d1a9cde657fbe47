package biome

import (
	"log/slog"
	"math"

	"github.com/dm-vev/terra/generator/noise"
)

// Table selects the biome of a column from the five climate channels. It owns
// one noise field per channel, all derived from the world seed, and is
// immutable after construction: Get is a pure function of the global
// coordinates, regardless of which chunk asks or in which order.
type Table struct {
	log *slog.Logger

	temperature     *noise.Field
	humidity        *noise.Field
	continentalness *noise.Field
	erosion         *noise.Field
	weirdness       *noise.Field
}

// NewTable constructs the climate channels for the world seed passed.
func NewTable(seed uint32, log *slog.Logger) *Table {
	if log == nil {
		log = slog.Default()
	}
	return &Table{
		log:             log,
		temperature:     noise.NewField(noise.ChannelSeed(seed, "temperature"), 1.0/256, 3, 0.5, 2.0, true),
		humidity:        noise.NewField(noise.ChannelSeed(seed, "humidity"), 1.0/256, 3, 0.5, 2.0, true),
		continentalness: noise.NewField(noise.ChannelSeed(seed, "continentalness"), 1.0/512, 4, 0.5, 2.0, true),
		erosion:         noise.NewField(noise.ChannelSeed(seed, "erosion"), 1.0/512, 3, 0.5, 2.0, true),
		weirdness:       noise.NewField(noise.ChannelSeed(seed, "peaks_valleys"), 1.0/128, 2, 0.5, 2.0, true),
	}
}

// Sample computes the five raw climate values at the global column passed.
// The peaks/valleys channel is the ridge-folded weirdness noise.
func (t *Table) Sample(gx, gy int) Sample {
	x, y := float64(gx), float64(gy)
	w := t.weirdness.Sample2(x, y)
	return Sample{
		Temperature:     t.temperature.Sample2(x, y),
		Humidity:        t.humidity.Sample2(x, y),
		Continentalness: t.continentalness.Sample2(x, y),
		Erosion:         t.erosion.Sample2(x, y),
		PeaksValleys:    1 - math.Abs(3*math.Abs(w)-2),
	}
}

// Get returns the biome of the global column passed. The returned value is a
// shared stateless singleton; callers never mutate it.
func (t *Table) Get(gx, gy int) Biome {
	return t.Lookup(Classify(t.Sample(gx, gy)))
}

// Lookup resolves a classification through the three decision tiers.
func (t *Table) Lookup(c Classification) Biome {
	// Tier 1: open ocean.
	if c.Continentalness <= ContinentalnessOcean {
		if c.Temperature == TemperatureFrozen {
			return FrozenOcean{}
		}
		if c.Continentalness == ContinentalnessDeepOcean {
			return DeepOcean{}
		}
		return Ocean{}
	}

	// Tier 2: coasts and peaks.
	if c.Continentalness == ContinentalnessCoast || (c.PeaksValleys == PVValleys && c.Erosion <= 1) {
		switch {
		case c.Temperature == TemperatureFrozen:
			return SnowyBeach{}
		case c.Temperature == TemperatureHot:
			return Desert{}
		default:
			return Beach{}
		}
	}
	if c.PeaksValleys >= PVHigh && c.Erosion == 0 {
		if c.Temperature <= TemperatureCold {
			return SnowyPeaks{}
		}
		return StonyPeaks{}
	}

	// Tier 3: middle biomes. The hottest bucket always resolves by humidity
	// alone.
	if c.Temperature == TemperatureHot {
		if c.Humidity <= HumidityDry {
			return Desert{}
		}
		return Savanna{}
	}
	if c.Temperature >= 0 && int(c.Temperature) < len(middleBiomes) &&
		c.Humidity >= 0 && int(c.Humidity) < len(middleBiomes[0]) {
		return middleBiomes[c.Temperature][c.Humidity]
	}

	t.log.Debug("no biome branch matched, defaulting to plains", "classification", c)
	return Plains{}
}

// middleBiomes is the temperature×humidity grid of tier 3. The hottest row is
// shadowed by the desert/savanna rule above but kept consistent with it.
var middleBiomes = [5][5]Biome{
	{SnowyPlains{}, SnowyPlains{}, SnowyPlains{}, SnowyTaiga{}, SnowyTaiga{}},
	{Plains{}, Plains{}, Forest{}, Taiga{}, Taiga{}},
	{Plains{}, Plains{}, Forest{}, Forest{}, Forest{}},
	{Savanna{}, Savanna{}, Forest{}, Jungle{}, Jungle{}},
	{Desert{}, Desert{}, Savanna{}, Savanna{}, Savanna{}},
}
