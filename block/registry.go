// Package block exposes the block registry that the terrain generator
// consumes. The registry resolves namespaced block names to numeric IDs and
// block states; the generator itself never stores names at runtime.
package block

import "strings"

// StateRef is a reference to a concrete block state. It encodes the numeric
// block ID in the upper bits and a metadata value in the lower four, so the
// zero value is the default state of the block with ID 0 (air).
type StateRef int32

// ID returns the numeric block ID the state belongs to.
func (s StateRef) ID() int32 {
	return int32(s) >> 4
}

// Ref is a reference to a registered block.
type Ref struct {
	id        int32
	namespace string
	name      string
}

// ID returns the numeric ID assigned to the block at registration.
func (r Ref) ID() int32 {
	return r.id
}

// Namespace returns the namespace the block was registered under.
func (r Ref) Namespace() string {
	return r.namespace
}

// Name returns the name of the block within its namespace.
func (r Ref) Name() string {
	return r.name
}

// String returns the fully qualified name of the block.
func (r Ref) String() string {
	return r.namespace + ":" + r.name
}

// DefaultState returns the default state of the block.
func (r Ref) DefaultState() StateRef {
	return StateRef(r.id << 4)
}

// Registry resolves block names and IDs. Implementations must be safe for
// concurrent use: the generator reads from the registry from every worker
// generating a chunk.
type Registry interface {
	// BlockID looks up the numeric ID of the block registered under the
	// namespace and name passed. The second return value is false if no such
	// block exists.
	BlockID(namespace, name string) (int32, bool)
	// BlockByID returns the block registered with the ID passed.
	BlockByID(id int32) (Ref, bool)
}

// splitName splits a fully qualified "namespace:name" string. Names without a
// namespace resolve under "minecraft".
func splitName(full string) (namespace, name string) {
	if ns, n, ok := strings.Cut(full, ":"); ok {
		return ns, n
	}
	return "minecraft", full
}
