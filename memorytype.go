package d3d12ma

import (
	"errors"
	"log/slog"

	"github.com/gogpu/d3d12ma/d3d12"
	"github.com/gogpu/d3d12ma/suballoc"
)

// CommittedAllocationStatistics tracks the committed-resource bookkeeping
// for one memory type. Committed resources never touch a sub-allocator, so
// these counters are the only record of how much committed memory a
// memory type backs. See SPEC_FULL.md's SUPPLEMENTED FEATURES note.
type CommittedAllocationStatistics struct {
	NumAllocations int
	TotalSize      uint64
}

// memoryType is a bucket of block slots sharing one (residency, category,
// heap-properties) triple. Block slots are a sparse
// vector: a nil entry is a tombstone, reused on the next block creation so
// Allocation.memoryBlockIndex stays stable across the lifetime of any
// outstanding Allocation that cites it.
type memoryType struct {
	index               int
	location            MemoryLocation
	heapCategory        HeapCategory
	heapProperties      d3d12.D3D12_HEAP_PROPERTIES
	blocks              []*memoryBlock
	activeGeneralBlocks int
	committedStats      CommittedAllocationStatistics
}

func (mt *memoryType) isHost() bool {
	return mt.heapProperties.Type != d3d12.D3D12_HEAP_TYPE_DEFAULT
}

// matches reports whether this memory type can satisfy a request for
// resourceCategory at the given residency: the location must match
// Unknown or the requested residency, and the heap category must be All
// or equal to the requested resource category.
func (mt *memoryType) matches(resourceCategory ResourceCategory, location MemoryLocation) bool {
	locationOK := location == Unknown || mt.location == location
	categoryOK := mt.heapCategory == HeapCategoryAll || mt.heapCategory == resourceCategory.HeapCategory()
	return locationOK && categoryOK
}

// newAllocation builds the caller-facing token for a successful
// sub-allocation. The token takes its own reference on the block's heap so
// the heap outlives any slot turnover in the pool; Allocator.Free drops it.
func (mt *memoryType) newAllocation(block *memoryBlock, blockIndex int, offset uint64, chunkID suballoc.ChunkID, desc AllocationCreateDesc) Allocation {
	block.heap.AddRef()
	return Allocation{
		chunkID:          chunkID,
		offset:           offset,
		size:             desc.Size,
		memoryBlockIndex: blockIndex,
		memoryTypeIndex:  mt.index,
		heap:             block.heap,
		name:             desc.Name,
	}
}

// allocate implements a three-phase algorithm: a dedicated block for
// oversize requests, else a reverse scan of existing blocks, else growth
// by one new general block.
func (mt *memoryType) allocate(device Device, desc AllocationCreateDesc, sizes AllocationSizes) (Allocation, error) {
	memblockSize := sizes.GetMemblockSize(mt.isHost(), mt.activeGeneralBlocks)

	if desc.Size > memblockSize {
		return mt.allocateDedicated(device, desc)
	}

	emptySlot := -1
	for i := len(mt.blocks) - 1; i >= 0; i-- {
		block := mt.blocks[i]
		if block == nil {
			if emptySlot == -1 {
				emptySlot = i
			}
			continue
		}

		offset, chunkID, err := block.sub.Allocate(desc.Size, desc.Alignment, suballoc.AllocationTypeLinear, 0, desc.Name)
		if err == nil {
			return mt.newAllocation(block, i, offset, chunkID, desc), nil
		}
		if !errors.Is(err, suballoc.ErrOutOfMemory) {
			return Allocation{}, wrapErr(KindInternal, "sub-allocator failed", err)
		}
	}

	block, err := newMemoryBlock(device, memblockSize, mt.heapProperties, mt.heapCategory, false)
	if err != nil {
		return Allocation{}, err
	}

	var idx int
	if emptySlot != -1 {
		mt.blocks[emptySlot] = block
		idx = emptySlot
	} else {
		mt.blocks = append(mt.blocks, block)
		idx = len(mt.blocks) - 1
	}
	mt.activeGeneralBlocks++

	offset, chunkID, err := block.sub.Allocate(desc.Size, desc.Alignment, suballoc.AllocationTypeLinear, 0, desc.Name)
	if err != nil {
		return Allocation{}, wrapErr(KindInternal, "allocator bug: guaranteed-succeed sub-allocation failed on a freshly created block", err)
	}

	return mt.newAllocation(block, idx, offset, chunkID, desc), nil
}

func (mt *memoryType) allocateDedicated(device Device, desc AllocationCreateDesc) (Allocation, error) {
	block, err := newMemoryBlock(device, desc.Size, mt.heapProperties, mt.heapCategory, true)
	if err != nil {
		return Allocation{}, err
	}

	idx := -1
	for i, existing := range mt.blocks {
		if existing == nil {
			idx = i
			break
		}
	}
	if idx == -1 {
		mt.blocks = append(mt.blocks, block)
		idx = len(mt.blocks) - 1
	} else {
		mt.blocks[idx] = block
	}

	offset, chunkID, err := block.sub.Allocate(desc.Size, desc.Alignment, suballoc.AllocationTypeLinear, 0, desc.Name)
	if err != nil {
		return Allocation{}, wrapErr(KindInternal, "allocator bug: dedicated block failed to satisfy the allocation it was sized for", err)
	}

	return mt.newAllocation(block, idx, offset, chunkID, desc), nil
}

// free resolves the block by index and forwards chunkID to its
// sub-allocator, then destroys the block if the retention rule permits it:
// empty, and either dedicated or more than one general block remains.
func (mt *memoryType) free(alloc Allocation) error {
	block := mt.blocks[alloc.memoryBlockIndex]
	if block == nil {
		return newErr(KindInternal, "free of allocation whose memory block has already been destroyed")
	}
	if err := block.sub.Free(alloc.chunkID); err != nil {
		return wrapErr(KindInternal, "sub-allocator free failed", err)
	}

	if !block.sub.IsEmpty() {
		return nil
	}

	retirable := !block.sub.SupportsGeneralAllocations() || mt.activeGeneralBlocks > 1
	if !retirable {
		return nil
	}

	block.heap.Release()
	mt.blocks[alloc.memoryBlockIndex] = nil
	if block.sub.SupportsGeneralAllocations() {
		mt.activeGeneralBlocks--
	}
	return nil
}

func (mt *memoryType) capacity() uint64 {
	var total uint64
	for _, b := range mt.blocks {
		if b != nil {
			total += b.size
		}
	}
	return total
}

func (mt *memoryType) reportLeaks(level slog.Level) {
	for i, b := range mt.blocks {
		if b == nil {
			continue
		}
		b.sub.ReportMemoryLeaks(Logger(), level, mt.index, i)
	}
}

// generateReport flattens every block's per-chunk reports into allocs,
// recording each block's contributed range.
func (mt *memoryType) generateReport() (allocs []AllocationReport, blocks []MemoryBlockReport) {
	for _, b := range mt.blocks {
		if b == nil {
			continue
		}
		start := len(allocs)
		for _, r := range b.sub.ReportAllocations() {
			allocs = append(allocs, AllocationReport{
				ChunkID: r.ChunkID,
				Name:    r.Name,
				Offset:  r.Offset,
				Size:    r.Size,
			})
		}
		blocks = append(blocks, MemoryBlockReport{
			Size:            b.size,
			FirstAllocation: start,
			AllocationCount: len(allocs) - start,
		})
	}
	return allocs, blocks
}
