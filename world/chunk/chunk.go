// Package chunk provides an array-backed chunk used by the tests and tools in
// this module. Engines embedding the generator typically supply their own
// world.Chunk implementation instead.
package chunk

import (
	"sync/atomic"

	"github.com/dm-vev/terra/block"
	"github.com/dm-vev/terra/world"
)

// Chunk is a fixed-size 16×16×128 voxel grid with an atomic lifecycle state.
// Voxel access is not synchronised: exactly one generation worker owns the
// voxel memory while the chunk is in world.StateGenerating. The state flag
// itself may be flipped concurrently by other goroutines.
type Chunk struct {
	blocks [world.ChunkSizeX * world.ChunkSizeY * world.ChunkHeight]block.StateRef

	state     atomic.Int32
	dirty     atomic.Bool
	generated atomic.Bool
}

// New returns an all-air chunk in world.StateGenerating.
func New() *Chunk {
	return &Chunk{}
}

func index(x, y, z int) int {
	return (z*world.ChunkSizeY+y)*world.ChunkSizeX + x
}

// Block returns the block state at the chunk-local coordinates passed.
// Out-of-bounds coordinates return air.
func (c *Chunk) Block(x, y, z int) block.StateRef {
	if !inBounds(x, y, z) {
		return 0
	}
	return c.blocks[index(x, y, z)]
}

// SetBlock sets the block state at the chunk-local coordinates passed.
// Out-of-bounds coordinates are ignored.
func (c *Chunk) SetBlock(x, y, z int, s block.StateRef) {
	if !inBounds(x, y, z) {
		return
	}
	c.blocks[index(x, y, z)] = s
}

// State returns the lifecycle state of the chunk.
func (c *Chunk) State() world.ChunkState {
	return world.ChunkState(c.state.Load())
}

// SetState sets the lifecycle state of the chunk. It may be called from any
// goroutine; a generation worker polling State observes the change and
// aborts.
func (c *Chunk) SetState(s world.ChunkState) {
	c.state.Store(int32(s))
}

// MarkDirty flags the chunk for remeshing.
func (c *Chunk) MarkDirty() {
	c.dirty.Store(true)
}

// Dirty reports whether the chunk was flagged for remeshing.
func (c *Chunk) Dirty() bool {
	return c.dirty.Load()
}

// SetGenerated records whether generation completed for the chunk.
func (c *Chunk) SetGenerated(generated bool) {
	c.generated.Store(generated)
}

// Generated reports whether generation completed for the chunk.
func (c *Chunk) Generated() bool {
	return c.generated.Load()
}

func inBounds(x, y, z int) bool {
	return x >= 0 && x < world.ChunkSizeX && y >= 0 && y < world.ChunkSizeY && z >= 0 && z < world.ChunkHeight
}
