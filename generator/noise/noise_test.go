package noise

import (
	"math"
	"testing"
)

// TestFieldDeterminism ensures two independently constructed fields with the
// same parameters agree everywhere, which is the foundation of cross-chunk
// consistency.
func TestFieldDeterminism(t *testing.T) {
	t.Parallel()

	a := NewField(42, 1.0/64, 3, 0.5, 2.0, true)
	b := NewField(42, 1.0/64, 3, 0.5, 2.0, true)
	for x := -64; x <= 64; x += 7 {
		for y := -64; y <= 64; y += 7 {
			if got, want := b.Sample2(float64(x), float64(y)), a.Sample2(float64(x), float64(y)); got != want {
				t.Fatalf("Sample2(%v, %v) = %v, want %v", x, y, got, want)
			}
			if got, want := b.Sample3(float64(x), float64(y), 31), a.Sample3(float64(x), float64(y), 31); got != want {
				t.Fatalf("Sample3(%v, %v, 31) = %v, want %v", x, y, got, want)
			}
		}
	}
}

// TestFieldSeedSeparation ensures differently seeded fields do not produce
// the same terrain.
func TestFieldSeedSeparation(t *testing.T) {
	t.Parallel()

	a := NewField(1, 1.0/64, 3, 0.5, 2.0, true)
	b := NewField(2, 1.0/64, 3, 0.5, 2.0, true)
	for x := 0; x < 256; x += 5 {
		if a.Sample2(float64(x), 8) != b.Sample2(float64(x), 8) {
			return
		}
	}
	t.Fatal("fields with different seeds agree over the whole sample grid")
}

// TestFieldRenormalizedRange ensures renormalized fields stay within the
// documented output range regardless of octave count.
func TestFieldRenormalizedRange(t *testing.T) {
	t.Parallel()

	f := NewField(7, 1.0/16, 6, 0.6, 2.1, true)
	for x := -200; x <= 200; x += 3 {
		for y := -200; y <= 200; y += 13 {
			if v := f.Sample2(float64(x), float64(y)); math.Abs(v) > 1+1e-9 {
				t.Fatalf("Sample2(%v, %v) = %v, outside [-1, 1]", x, y, v)
			}
			if v := f.Sample3(float64(x), float64(y), float64(x+y)); math.Abs(v) > 1+1e-9 {
				t.Fatalf("Sample3(%v, %v, %v) = %v, outside [-1, 1]", x, y, x+y, v)
			}
		}
	}
}

// TestChannelSeed ensures channel seeds are stable per name and distinct
// across names and world seeds.
func TestChannelSeed(t *testing.T) {
	t.Parallel()

	if ChannelSeed(1, "temperature") != ChannelSeed(1, "temperature") {
		t.Fatal("channel seed not stable across calls")
	}
	if ChannelSeed(1, "temperature") == ChannelSeed(1, "humidity") {
		t.Fatal("different channels derive the same seed")
	}
	if ChannelSeed(1, "temperature") == ChannelSeed(2, "temperature") {
		t.Fatal("different world seeds derive the same channel seed")
	}
}
