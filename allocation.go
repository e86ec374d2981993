package d3d12ma

import "github.com/gogpu/d3d12ma/suballoc"

// Allocation is a handle to a sub-allocated (or dedicated) range of a heap.
// The zero value is a valid "null" allocation: it has no chunk id and frees
// as a no-op. Committed resources carry no Allocation at all
// (Resource.Allocation returns nil for them).
//
// A non-null Allocation holds its own reference on the backing heap, taken
// when it is created and dropped when it is freed, so the heap survives
// even if the allocator retires the block slot underneath it.
type Allocation struct {
	chunkID          suballoc.ChunkID
	offset           uint64
	size             uint64
	memoryBlockIndex int
	memoryTypeIndex  int
	heap             Heap
	name             string
}

// ChunkID identifies this allocation's range within its sub-allocator.
func (a *Allocation) ChunkID() suballoc.ChunkID { return a.chunkID }

// Offset is the byte offset of this allocation within its heap.
func (a *Allocation) Offset() uint64 { return a.offset }

// Size is the byte size of this allocation.
func (a *Allocation) Size() uint64 { return a.size }

// Heap is the heap this allocation's range lives in.
func (a *Allocation) Heap() Heap { return a.heap }

// Name is the debug name this allocation was created or renamed with.
func (a *Allocation) Name() string { return a.name }

// IsNull reports whether this is the zero-value allocation rather than a
// real sub-allocation. A null allocation has no chunk id.
func (a *Allocation) IsNull() bool { return a.chunkID == 0 }
