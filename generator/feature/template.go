package feature

import (
	"sync"

	"github.com/dm-vev/terra/block"
	"github.com/dm-vev/terra/cube"
)

// Kind is the species of a tree template.
type Kind int

const (
	Oak Kind = iota
	Birch
	Spruce
	Jungle
	Acacia
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Oak:
		return "oak"
	case Birch:
		return "birch"
	case Spruce:
		return "spruce"
	case Jungle:
		return "jungle"
	case Acacia:
		return "acacia"
	}
	return "unknown"
}

// Size is the size tier of a tree template.
type Size int

const (
	Small Size = iota
	Medium
	Large
)

// MaxRadius is the widest horizontal reach of any template. Feature passes
// extend their search rectangle by this much so trees rooted in neighbouring
// chunks still stamp their overlap into the chunk being generated.
const MaxRadius = 3

// Placement is one voxel of a template, relative to the tree root (the block
// above the ground surface).
type Placement struct {
	Offset cube.Pos
	Block  block.StateRef
	// Trim marks canopy corners that may be dropped per-position for a less
	// blocky silhouette.
	Trim bool
}

// Template is a reusable stamp: an ordered list of placements plus the
// cached height of the tree. Templates are immutable and a pure function of
// (kind, size); every chunk that builds the same template obtains the same
// stamp.
type Template struct {
	placements []Placement
	height     int
}

// Height returns the total height of the template above its root.
func (t *Template) Height() int {
	return t.height
}

// templateCache lazily builds and retains templates. The cache only ever
// holds immutable values, so a template fetched under the read lock is safe
// to use without further synchronisation.
type templateCache struct {
	mu sync.RWMutex
	m  map[templateKey]*Template
}

type templateKey struct {
	kind Kind
	size Size
}

func (tc *templateCache) get(k Kind, s Size, blocks *block.Snapshot) *Template {
	key := templateKey{kind: k, size: s}
	tc.mu.RLock()
	t, ok := tc.m[key]
	tc.mu.RUnlock()
	if ok {
		return t
	}
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if t, ok = tc.m[key]; ok {
		return t
	}
	if tc.m == nil {
		tc.m = make(map[templateKey]*Template)
	}
	t = buildTemplate(k, s, blocks)
	tc.m[key] = t
	return t
}

// trunkHeight returns the trunk length of a template.
func trunkHeight(k Kind, s Size) int {
	base := 4
	switch k {
	case Birch, Acacia:
		base = 5
	case Spruce:
		base = 7
	case Jungle:
		base = 8
	}
	return base + 2*int(s)
}

// buildTemplate assembles the stamp for the kind and size passed. Blocks
// missing from the snapshot are left out of the template; the rest of the
// tree still stamps.
func buildTemplate(k Kind, s Size, blocks *block.Snapshot) *Template {
	trunk := trunkHeight(k, s)
	t := &Template{height: trunk + 2}

	if dirt, ok := blocks.State("minecraft:dirt"); ok {
		t.placements = append(t.placements, Placement{Offset: cube.Pos{0, 0, -1}, Block: dirt})
	}
	log, okLog := blocks.State("minecraft:" + k.String() + "_log")
	if okLog {
		for z := 0; z < trunk; z++ {
			t.placements = append(t.placements, Placement{Offset: cube.Pos{0, 0, z}, Block: log})
		}
	}
	leaves, okLeaves := blocks.State("minecraft:" + k.String() + "_leaves")
	if okLeaves {
		switch k {
		case Spruce:
			t.addSpruceCanopy(trunk, leaves)
		case Acacia:
			t.addFlatCanopy(trunk, 3, leaves)
		case Jungle:
			t.addFlatCanopy(trunk, 2, leaves)
		default:
			t.addRoundCanopy(trunk, leaves)
		}
	}
	return t
}

// addRoundCanopy builds the oak/birch blob: four layers around the trunk
// top, two wide below, one wide above.
func (t *Template) addRoundCanopy(trunk int, leaves block.StateRef) {
	for zz := trunk - 2; zz <= trunk+1; zz++ {
		zOff := zz - (trunk + 1)
		mid := 1 - zOff/2
		for xx := -mid; xx <= mid; xx++ {
			for yy := -mid; yy <= mid; yy++ {
				if xx == 0 && yy == 0 && zz < trunk {
					continue
				}
				corner := abs(xx) == mid && abs(yy) == mid
				if corner && zOff == 0 {
					continue
				}
				t.placements = append(t.placements, Placement{
					Offset: cube.Pos{xx, yy, zz},
					Block:  leaves,
					Trim:   corner,
				})
			}
		}
	}
}

// addSpruceCanopy builds the conical spruce shape with a leaf cap on top.
func (t *Template) addSpruceCanopy(trunk int, leaves block.StateRef) {
	for zz := 2; zz <= trunk; zz++ {
		radius := (trunk - zz) / 2
		if radius > MaxRadius {
			radius = MaxRadius
		}
		if radius == 0 {
			continue
		}
		// Wide rows only every other layer, narrowing towards the top.
		if radius >= 2 && zz%2 == 0 {
			radius = 1
		}
		for xx := -radius; xx <= radius; xx++ {
			for yy := -radius; yy <= radius; yy++ {
				if xx == 0 && yy == 0 {
					continue
				}
				t.placements = append(t.placements, Placement{
					Offset: cube.Pos{xx, yy, zz},
					Block:  leaves,
					Trim:   abs(xx) == radius && abs(yy) == radius,
				})
			}
		}
	}
	t.placements = append(t.placements,
		Placement{Offset: cube.Pos{0, 0, trunk}, Block: leaves},
		Placement{Offset: cube.Pos{0, 0, trunk + 1}, Block: leaves},
	)
}

// addFlatCanopy builds the wide, flat acacia/jungle crown: two layers at the
// trunk top.
func (t *Template) addFlatCanopy(trunk, radius int, leaves block.StateRef) {
	for zz := trunk; zz <= trunk+1; zz++ {
		r := radius - (zz - trunk)
		for xx := -r; xx <= r; xx++ {
			for yy := -r; yy <= r; yy++ {
				if xx == 0 && yy == 0 && zz == trunk {
					continue
				}
				t.placements = append(t.placements, Placement{
					Offset: cube.Pos{xx, yy, zz},
					Block:  leaves,
					Trim:   abs(xx) == r && abs(yy) == r,
				})
			}
		}
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
