// Package noise implements the fractal gradient noise fields terrain
// generation is built on. A Field is immutable after construction and shared
// read-only across every worker generating a chunk.
package noise

import (
	"github.com/cespare/xxhash/v2"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Field is a deterministic fractal noise sampler: identical (seed,
// coordinates) always yields identical output across calls, goroutines and
// processes. It sums octaves of gradient noise, multiplying the frequency by
// the lacunarity and the amplitude by the persistence per octave.
type Field struct {
	noise       opensimplex.Noise
	scale       float64
	octaves     int
	persistence float64
	lacunarity  float64
	renorm      float64
}

// NewField creates a Field from the seed and shaping parameters passed.
// Renormalize keeps the output within the documented [-1, 1] range regardless
// of the octave count.
func NewField(seed int64, scale float64, octaves int, persistence, lacunarity float64, renormalize bool) *Field {
	if octaves < 1 {
		octaves = 1
	}
	f := &Field{
		noise:       opensimplex.New(seed),
		scale:       scale,
		octaves:     octaves,
		persistence: persistence,
		lacunarity:  lacunarity,
		renorm:      1,
	}
	if renormalize {
		amplitude, total := 1.0, 0.0
		for i := 0; i < octaves; i++ {
			total += amplitude
			amplitude *= persistence
		}
		f.renorm = total
	}
	return f
}

// ChannelSeed derives the 64-bit noise seed of a named channel from the world
// seed. Each channel offsets the seed by a stable hash of its name, so
// channels are decorrelated while remaining a pure function of the world
// seed.
func ChannelSeed(seed uint32, channel string) int64 {
	return int64(uint64(seed) + xxhash.Sum64String(channel))
}

// Sample2 samples the field at the 2D coordinates passed. The result lies in
// [-1, 1] when the field renormalizes.
func (f *Field) Sample2(x, y float64) float64 {
	sum, amplitude, frequency := 0.0, 1.0, f.scale
	for i := 0; i < f.octaves; i++ {
		sum += f.noise.Eval2(x*frequency, y*frequency) * amplitude
		amplitude *= f.persistence
		frequency *= f.lacunarity
	}
	return sum / f.renorm
}

// Sample3 samples the field at the 3D coordinates passed.
func (f *Field) Sample3(x, y, z float64) float64 {
	sum, amplitude, frequency := 0.0, 1.0, f.scale
	for i := 0; i < f.octaves; i++ {
		sum += f.noise.Eval3(x*frequency, y*frequency, z*frequency) * amplitude
		amplitude *= f.persistence
		frequency *= f.lacunarity
	}
	return sum / f.renorm
}
