package suballoc

import (
	"context"
	"fmt"
	"log/slog"
)

// freeNode is one gap in a block's address space, kept in an
// offset-ordered doubly linked list so a freed range's new neighbors are
// known in O(1) and can be coalesced immediately. Shape grounded on
// other_examples' region_alloc.go FreeBlock{Size,Offset,Next,Prev} node.
type freeNode struct {
	offset, size uint64
	prev, next   *freeNode
}

// chunkSlot records a live (or tombstoned) allocation. Slots are reused by
// generation the same way suballoc.ChunkID itself is generational, so a
// stale handle into a freed-then-reused slot is rejected instead of
// aliasing silently.
type chunkSlot struct {
	offset, size uint64
	name         string
	generation   uint32
	alive        bool
}

// FreeListAllocator is a general-purpose sub-allocator: best-fit search
// over an address-ordered list of free ranges, splitting the winning range
// on allocate and coalescing adjacent ranges on free. Grounded directly on
// other_examples' region_alloc.go (BestFit strategy, FreeBlock node shape)
// and wasm-allocator.go (allocateBestFit/allocateFromBlock/coalesce), both
// carried from their source domains (OS-backed regions, WASM linear
// memory) to D3D12 heap offsets.
type FreeListAllocator struct {
	size      uint64
	freeHead  *freeNode
	slots     []chunkSlot
	freeSlots []slotIndex
	used      uint64
}

// NewFreeListAllocator returns a sub-allocator over a block of size bytes,
// initially one single free range spanning the whole block.
func NewFreeListAllocator(size uint64) *FreeListAllocator {
	return &FreeListAllocator{
		size:     size,
		freeHead: &freeNode{offset: 0, size: size},
	}
}

func alignUp(v, alignment uint64) uint64 {
	return (v + alignment - 1) &^ (alignment - 1)
}

func (f *FreeListAllocator) Allocate(size, alignment uint64, _ AllocationType, _ uint64, name string) (uint64, ChunkID, error) {
	if size == 0 {
		return 0, 0, &InternalError{Msg: "zero-size allocation requested"}
	}

	// Best fit: among every free range that can hold the aligned request,
	// pick the smallest - it wastes the least of a larger range that might
	// satisfy a future bigger request.
	var best *freeNode
	var bestOffset uint64
	for n := f.freeHead; n != nil; n = n.next {
		aligned := alignUp(n.offset, alignment)
		if aligned+size > n.offset+n.size {
			continue
		}
		if best == nil || n.size < best.size {
			best = n
			bestOffset = aligned
		}
	}
	if best == nil {
		return 0, 0, ErrOutOfMemory
	}

	f.splitNode(best, bestOffset, size)

	f.used += size
	chunkID := f.allocSlot(bestOffset, size, name)
	return bestOffset, chunkID, nil
}

// splitNode carves [offset, offset+size) out of node, which must already
// contain that range, leaving up to two smaller free ranges behind (or
// none, if the allocation consumed the whole node).
func (f *FreeListAllocator) splitNode(node *freeNode, offset, size uint64) {
	leadSize := offset - node.offset
	tailOffset := offset + size
	tailSize := (node.offset + node.size) - tailOffset

	switch {
	case leadSize == 0 && tailSize == 0:
		f.unlink(node)
	case leadSize == 0:
		node.offset = tailOffset
		node.size = tailSize
	case tailSize == 0:
		node.size = leadSize
	default:
		node.size = leadSize
		tail := &freeNode{offset: tailOffset, size: tailSize, prev: node, next: node.next}
		if node.next != nil {
			node.next.prev = tail
		}
		node.next = tail
	}
}

func (f *FreeListAllocator) unlink(n *freeNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		f.freeHead = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
}

func (f *FreeListAllocator) allocSlot(offset, size uint64, name string) ChunkID {
	if len(f.freeSlots) > 0 {
		idx := f.freeSlots[len(f.freeSlots)-1]
		f.freeSlots = f.freeSlots[:len(f.freeSlots)-1]
		slot := &f.slots[idx]
		slot.offset, slot.size, slot.name, slot.alive = offset, size, name, true
		slot.generation++
		return ZipChunkID(idx, slot.generation)
	}
	idx := slotIndex(len(f.slots))
	f.slots = append(f.slots, chunkSlot{offset: offset, size: size, name: name, generation: 1, alive: true})
	return ZipChunkID(idx, 1)
}

func (f *FreeListAllocator) slotFor(chunkID ChunkID) (*chunkSlot, error) {
	idx, gen := chunkID.Unzip()
	if int(idx) >= len(f.slots) {
		return nil, &InternalError{Msg: fmt.Sprintf("unknown chunk id %s", chunkID)}
	}
	slot := &f.slots[idx]
	if !slot.alive || slot.generation != gen {
		return nil, &InternalError{Msg: fmt.Sprintf("double free or stale chunk id %s", chunkID)}
	}
	return slot, nil
}

func (f *FreeListAllocator) Free(chunkID ChunkID) error {
	slot, err := f.slotFor(chunkID)
	if err != nil {
		return err
	}

	offset, size := slot.offset, slot.size
	slot.alive = false
	slot.name = ""
	idx, _ := chunkID.Unzip()
	f.freeSlots = append(f.freeSlots, idx)
	f.used -= size

	f.insertFree(offset, size)
	return nil
}

// insertFree reinserts a freed range in address order, coalescing with
// whichever neighbor(s) turn out to be adjacent.
func (f *FreeListAllocator) insertFree(offset, size uint64) {
	var prev *freeNode
	cur := f.freeHead
	for cur != nil && cur.offset < offset {
		prev = cur
		cur = cur.next
	}

	node := &freeNode{offset: offset, size: size}

	if cur != nil && offset+size == cur.offset {
		node.size += cur.size
		node.next = cur.next
		if cur.next != nil {
			cur.next.prev = node
		}
	} else {
		node.next = cur
		if cur != nil {
			cur.prev = node
		}
	}

	if prev != nil && prev.offset+prev.size == node.offset {
		prev.size += node.size
		prev.next = node.next
		if node.next != nil {
			node.next.prev = prev
		}
		return
	}

	node.prev = prev
	if prev != nil {
		prev.next = node
	} else {
		f.freeHead = node
	}
}

func (f *FreeListAllocator) RenameAllocation(chunkID ChunkID, name string) error {
	slot, err := f.slotFor(chunkID)
	if err != nil {
		return err
	}
	slot.name = name
	return nil
}

func (f *FreeListAllocator) ReportMemoryLeaks(logger *slog.Logger, level slog.Level, memoryTypeIndex, blockIndex int) {
	for idx := range f.slots {
		slot := &f.slots[idx]
		if !slot.alive {
			continue
		}
		logger.Log(context.Background(), level, "memory leak: allocation still alive at shutdown",
			"memory_type_index", memoryTypeIndex,
			"block_index", blockIndex,
			"chunk_id", ZipChunkID(slotIndex(idx), slot.generation).String(),
			"name", slot.name,
			"offset", slot.offset,
			"size", slot.size,
		)
	}
}

func (f *FreeListAllocator) ReportAllocations() []AllocationReport {
	reports := make([]AllocationReport, 0, len(f.slots))
	for idx := range f.slots {
		slot := &f.slots[idx]
		if !slot.alive {
			continue
		}
		reports = append(reports, AllocationReport{
			ChunkID: ZipChunkID(slotIndex(idx), slot.generation),
			Name:    slot.name,
			Offset:  slot.offset,
			Size:    slot.size,
		})
	}
	return reports
}

func (f *FreeListAllocator) SupportsGeneralAllocations() bool { return true }

func (f *FreeListAllocator) IsEmpty() bool { return f.used == 0 }
