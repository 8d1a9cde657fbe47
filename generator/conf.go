// Package generator turns a world seed and chunk coordinates into fully
// populated voxel grids. All seed-derived state is built once at construction
// and immutable afterwards, so one generator value serves any number of
// concurrent workers.
package generator

import (
	"fmt"
	"log/slog"

	"github.com/dm-vev/terra/block"
)

// Config contains options for constructing a generator.
type Config struct {
	// Log is the Logger used for diagnostics. If nil, Log is set to
	// slog.Default(). Placement statistics and fallback decisions are only
	// logged if Log has at least debug level.
	Log *slog.Logger
	// Seed is the world seed. Every noise channel derives its own seed from
	// it, so the full terrain is a pure function of this value.
	Seed uint32
	// Registry resolves the block names the generator writes. If nil, the
	// built-in default registry is used.
	Registry block.Registry
}

// UserConfig is the disk representation of a generator configuration,
// decoded from TOML.
type UserConfig struct {
	World struct {
		// Seed is the world seed.
		Seed uint32
		// Flat selects the flat debug generator instead of the noise
		// generator.
		Flat bool
	}
	Viewer struct {
		// Radius is the chunk radius tools such as terramap generate around
		// the origin.
		Radius int
		// Workers is the number of goroutines generating chunks. Zero or
		// lower derives the count from the host's CPUs.
		Workers int
	}
}

// DefaultConfig returns a sane default UserConfig.
func DefaultConfig() UserConfig {
	uc := UserConfig{}
	uc.World.Seed = 0
	uc.Viewer.Radius = 8
	return uc
}

// Config converts the UserConfig to a Config usable for constructing a
// generator, using the logger passed.
func (uc UserConfig) Config(log *slog.Logger) (Config, error) {
	if uc.Viewer.Radius < 0 {
		return Config{}, fmt.Errorf("config: viewer radius must not be negative, got %v", uc.Viewer.Radius)
	}
	return Config{Log: log, Seed: uc.World.Seed}, nil
}
