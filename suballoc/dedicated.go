package suballoc

import (
	"context"
	"fmt"
	"log/slog"
)

// dedicatedChunkIndex is the only slot index a DedicatedBlockAllocator ever
// hands out; the generation still increments across reuse so a stale
// ChunkID from a prior allocation on the same block is rejected.
const dedicatedChunkIndex slotIndex = 0

// DedicatedBlockAllocator is the minimal sub-allocation strategy for a
// block sized to exactly one allocation: the whole block is either free or
// entirely spoken for.
type DedicatedBlockAllocator struct {
	size       uint64
	allocated  bool
	generation uint32
	name       string
}

// NewDedicatedBlockAllocator returns a sub-allocator for a block of size
// bytes that will ever hold exactly one allocation.
func NewDedicatedBlockAllocator(size uint64) *DedicatedBlockAllocator {
	return &DedicatedBlockAllocator{size: size}
}

func (d *DedicatedBlockAllocator) Allocate(size, alignment uint64, _ AllocationType, _ uint64, name string) (uint64, ChunkID, error) {
	if d.allocated {
		return 0, 0, ErrOutOfMemory
	}
	if size > d.size {
		return 0, 0, ErrOutOfMemory
	}
	d.allocated = true
	d.generation++
	d.name = name
	return 0, ZipChunkID(dedicatedChunkIndex, d.generation), nil
}

func (d *DedicatedBlockAllocator) Free(chunkID ChunkID) error {
	idx, gen := chunkID.Unzip()
	if idx != dedicatedChunkIndex || !d.allocated || gen != d.generation {
		return &InternalError{Msg: fmt.Sprintf("free of unknown or already-freed chunk id %s on dedicated block", chunkID)}
	}
	d.allocated = false
	d.name = ""
	return nil
}

func (d *DedicatedBlockAllocator) RenameAllocation(chunkID ChunkID, name string) error {
	idx, gen := chunkID.Unzip()
	if idx != dedicatedChunkIndex || !d.allocated || gen != d.generation {
		return &InternalError{Msg: fmt.Sprintf("rename of unknown chunk id %s on dedicated block", chunkID)}
	}
	d.name = name
	return nil
}

func (d *DedicatedBlockAllocator) ReportMemoryLeaks(logger *slog.Logger, level slog.Level, memoryTypeIndex, blockIndex int) {
	if !d.allocated {
		return
	}
	logger.Log(context.Background(), level, "memory leak: dedicated allocation still alive at shutdown",
		"memory_type_index", memoryTypeIndex,
		"block_index", blockIndex,
		"chunk_id", ZipChunkID(dedicatedChunkIndex, d.generation).String(),
		"name", d.name,
		"size", d.size,
	)
}

func (d *DedicatedBlockAllocator) ReportAllocations() []AllocationReport {
	if !d.allocated {
		return nil
	}
	return []AllocationReport{{
		ChunkID: ZipChunkID(dedicatedChunkIndex, d.generation),
		Name:    d.name,
		Offset:  0,
		Size:    d.size,
	}}
}

func (d *DedicatedBlockAllocator) SupportsGeneralAllocations() bool { return false }

func (d *DedicatedBlockAllocator) IsEmpty() bool { return !d.allocated }
