package generator

import (
	"math"

	"github.com/dm-vev/terra/generator/spline"
	"github.com/dm-vev/terra/world"
)

const (
	// baseHeight is the altitude the density bias pivots around: absent all
	// shaping, terrain surfaces settle here.
	baseHeight = 64
	// biasPerZ is the density added per voxel of altitude above baseHeight.
	biasPerZ = 1.0 / 32
)

// The four spline tables below remap the 2D climate channels into density
// influences. Their control points were tuned together with the clamped
// dynamic-base formula in density; they are configuration constants and the
// land/ocean balance depends on their exact values.
var (
	// heightOffsetSpline maps continentalness to a base height offset: deep
	// ocean floors well below sea level through far-inland highlands.
	heightOffsetSpline = spline.New(
		spline.Point{Location: -1.0, Value: -0.85, Derivative: 0},
		spline.Point{Location: -0.455, Value: -0.65, Derivative: 0.6},
		spline.Point{Location: -0.19, Value: -0.28, Derivative: 1.6},
		spline.Point{Location: -0.11, Value: -0.05, Derivative: 1.1},
		spline.Point{Location: 0.03, Value: 0.06, Derivative: 0.5},
		spline.Point{Location: 0.30, Value: 0.32, Derivative: 1.0},
		spline.Point{Location: 1.0, Value: 0.85, Derivative: 0},
	)
	// squashSpline maps continentalness to how strongly terrain is pulled
	// towards its base height. Oceans are squashed hard, far-inland terrain
	// barely at all, leaving room for mountains.
	squashSpline = spline.New(
		spline.Point{Location: -1.0, Value: 0.55, Derivative: 0},
		spline.Point{Location: -0.455, Value: 0.48, Derivative: -0.2},
		spline.Point{Location: -0.11, Value: 0.35, Derivative: -0.5},
		spline.Point{Location: 0.03, Value: 0.24, Derivative: -0.4},
		spline.Point{Location: 0.30, Value: 0.14, Derivative: -0.25},
		spline.Point{Location: 1.0, Value: 0.05, Derivative: 0},
	)
	// erosionSpline maps erosion to a flattening influence: heavily eroded
	// terrain hugs its base height.
	erosionSpline = spline.New(
		spline.Point{Location: -1.0, Value: 0.03, Derivative: 0},
		spline.Point{Location: -0.78, Value: 0.06, Derivative: 0.2},
		spline.Point{Location: -0.375, Value: 0.14, Derivative: 0.4},
		spline.Point{Location: 0.05, Value: 0.32, Derivative: 0.6},
		spline.Point{Location: 0.45, Value: 0.6, Derivative: 1.2},
		spline.Point{Location: 0.55, Value: 0.78, Derivative: 0.8},
		spline.Point{Location: 1.0, Value: 0.95, Derivative: 0},
	)
	// peaksValleysSpline maps the ridge-folded weirdness channel to an
	// extremity term: positive pushes peaks up, negative digs valleys.
	peaksValleysSpline = spline.New(
		spline.Point{Location: -1.0, Value: -0.24, Derivative: 0},
		spline.Point{Location: -0.85, Value: -0.18, Derivative: 0.3},
		spline.Point{Location: -0.6, Value: -0.06, Derivative: 0.25},
		spline.Point{Location: 0.2, Value: 0.05, Derivative: 0.2},
		spline.Point{Location: 0.7, Value: 0.28, Derivative: 0.9},
		spline.Point{Location: 1.0, Value: 0.55, Derivative: 0},
	)
)

// column holds the spline-shaped 2D influences of one (gx, gy) column. They
// are evaluated once per column and reused for all 128 voxels above it.
type column struct {
	height  float64
	squash  float64
	erosion float64
	peaks   float64
}

// column computes the shaped 2D influences at the global column passed.
func (g *Overworld) column(gx, gy int) column {
	s := g.biomes.Sample(gx, gy)
	return column{
		height:  heightOffsetSpline.Evaluate(s.Continentalness),
		squash:  squashSpline.Evaluate(s.Continentalness),
		erosion: erosionSpline.Evaluate(s.Erosion),
		peaks:   peaksValleysSpline.Evaluate(s.PeaksValleys),
	}
}

// density evaluates the signed density at (gx, gy, gz) using the
// per-column influences passed. Negative density means solid.
//
// The dynamic base height clamps to a minimum of 1 to keep the relative
// altitude term finite for deep-ocean columns. The clamp is load-bearing: the
// spline tables above were tuned against the clamped output, so it must not
// be removed in favour of the unclamped form.
func (g *Overworld) density(col column, gx, gy, gz int) float64 {
	d := g.terrain.Sample3(float64(gx), float64(gy), float64(gz))
	d += biasPerZ * (float64(gz) - baseHeight)
	d -= col.height

	dynamicBase := math.Max(1, baseHeight+col.height*(world.ChunkHeight/2))
	t := (float64(gz) - dynamicBase) / dynamicBase
	d += col.squash*t + col.erosion*t - col.peaks*t
	return d
}

// DensityAt evaluates the density at the global coordinates passed. It is a
// pure function of the seed and the coordinates: neighbouring chunks
// evaluating the same global position obtain the same value.
func (g *Overworld) DensityAt(gx, gy, gz int) float64 {
	return g.density(g.column(gx, gy), gx, gy, gz)
}

// GroundHeight returns the highest z whose density is negative at the global
// column passed, or -1 for columns with no solid voxel at the bottom of the
// world. It never reads chunk memory, so it answers identically for any
// chunk, generated or not.
func (g *Overworld) GroundHeight(gx, gy int) int {
	col := g.column(gx, gy)
	if g.density(col, gx, gy, 0) >= 0 {
		return -1
	}
	lo, hi := 0, world.ChunkHeight-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if g.density(col, gx, gy, mid) < 0 {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
