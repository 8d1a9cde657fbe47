// Package world holds the types shared between the terrain generator and the
// systems that own chunk memory. Axes are normalised to a single convention
// throughout: X and Y span the horizontal plane, Z grows upwards.
package world

import "github.com/dm-vev/terra/block"

const (
	// ChunkSizeX and ChunkSizeY are the horizontal dimensions of a chunk.
	ChunkSizeX = 16
	ChunkSizeY = 16
	// ChunkHeight is the vertical extent of a chunk.
	ChunkHeight = 128
	// SeaLevel is the height up to which air is flooded with water during
	// generation.
	SeaLevel = 62
)

// ChunkPos holds the position of a chunk. The first index is the X
// coordinate, the second the Y coordinate. Multiplying either by 16 yields
// the corresponding global coordinate of the chunk's lowest column.
type ChunkPos [2]int32

// X returns the X coordinate of the chunk position.
func (p ChunkPos) X() int32 {
	return p[0]
}

// Y returns the Y coordinate of the chunk position.
func (p ChunkPos) Y() int32 {
	return p[1]
}

// ChunkState is the lifecycle state of a chunk. It is read and written from
// different goroutines: the streaming system may flip a chunk away from
// StateGenerating while a generator worker is filling it, which the worker
// must observe and abort on.
type ChunkState int32

const (
	// StateGenerating marks a chunk currently owned by a generation worker.
	StateGenerating ChunkState = iota
	// StateActive marks a fully generated, live chunk.
	StateActive
	// StateUnloaded marks a chunk released by the streaming system.
	StateUnloaded
)

// String returns the name of the chunk state.
func (s ChunkState) String() string {
	switch s {
	case StateGenerating:
		return "generating"
	case StateActive:
		return "active"
	case StateUnloaded:
		return "unloaded"
	}
	return "unknown"
}

// Chunk is the voxel container a generator fills. The generator holds a
// reference only for the duration of one generation call and is the sole
// writer during that call. Implementations must load State with acquire
// semantics so that an external state flip is observed promptly.
type Chunk interface {
	// Block returns the block state at the chunk-local coordinates passed.
	Block(x, y, z int) block.StateRef
	// SetBlock sets the block state at the chunk-local coordinates passed.
	SetBlock(x, y, z int, s block.StateRef)
	// State returns the current lifecycle state of the chunk.
	State() ChunkState
	// MarkDirty flags the chunk for remeshing.
	MarkDirty()
	// SetGenerated records whether generation completed for the chunk.
	SetGenerated(generated bool)
}

// Generator generates chunks deterministically from their position. Any
// number of chunks may be generated concurrently; implementations hold no
// per-call mutable state beyond the chunk itself.
type Generator interface {
	// GenerateChunk fills the chunk passed. It reports whether generation ran
	// to completion; a false return means the chunk was left partially
	// written, which the caller recovers from by resetting and re-generating.
	GenerateChunk(pos ChunkPos, c Chunk) bool
}
