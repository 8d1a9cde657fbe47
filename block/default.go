package block

// RegistryBuilder assembles an immutable Registry. Blocks are registered
// before any generator is constructed; the built registry is never mutated
// afterwards, so reads need no locking.
type RegistryBuilder struct {
	byName map[string]int32
	byID   []Ref
}

// NewRegistryBuilder returns an empty RegistryBuilder.
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{byName: make(map[string]int32)}
}

// Register adds a block under the namespace and name passed and returns the
// ID assigned to it. Registering the same block twice returns the original
// ID.
func (b *RegistryBuilder) Register(namespace, name string) int32 {
	full := namespace + ":" + name
	if id, ok := b.byName[full]; ok {
		return id
	}
	id := int32(len(b.byID))
	b.byName[full] = id
	b.byID = append(b.byID, Ref{id: id, namespace: namespace, name: name})
	return id
}

// Build returns the finished Registry.
func (b *RegistryBuilder) Build() Registry {
	byName := make(map[string]int32, len(b.byName))
	for k, v := range b.byName {
		byName[k] = v
	}
	return &registry{byName: byName, byID: append([]Ref(nil), b.byID...)}
}

type registry struct {
	byName map[string]int32
	byID   []Ref
}

func (r *registry) BlockID(namespace, name string) (int32, bool) {
	id, ok := r.byName[namespace+":"+name]
	return id, ok
}

func (r *registry) BlockByID(id int32) (Ref, bool) {
	if id < 0 || int(id) >= len(r.byID) {
		return Ref{}, false
	}
	return r.byID[id], true
}

// defaultBlocks is the block set the generator references. Air must be first:
// the zero StateRef has to resolve to air so that untouched voxels in a fresh
// chunk read as air.
var defaultBlocks = []string{
	"air",
	"stone",
	"dirt",
	"grass_block",
	"sand",
	"red_sand",
	"sandstone",
	"gravel",
	"water",
	"ice",
	"packed_ice",
	"snow",
	"snow_block",
	"short_grass",
	"tall_grass",
	"oak_log",
	"oak_leaves",
	"birch_log",
	"birch_leaves",
	"spruce_log",
	"spruce_leaves",
	"jungle_log",
	"jungle_leaves",
	"acacia_log",
	"acacia_leaves",
}

// DefaultRegistry builds a registry holding the vanilla-ish block set the
// generator writes. Hosts embedding the generator into a larger engine supply
// their own Registry instead.
func DefaultRegistry() Registry {
	b := NewRegistryBuilder()
	for _, name := range defaultBlocks {
		b.Register("minecraft", name)
	}
	return b.Build()
}
