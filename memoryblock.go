package d3d12ma

import (
	"errors"

	"github.com/gogpu/d3d12ma/d3d12"
	"github.com/gogpu/d3d12ma/suballoc"
)

// categoryHeapFlags maps a heap category to the "allow only X" flag the
// heap is created with.
var categoryHeapFlags = map[HeapCategory]d3d12.D3D12_HEAP_FLAGS{
	HeapCategoryAll:           d3d12.D3D12_HEAP_FLAG_NONE,
	HeapCategoryBuffer:        d3d12.D3D12_HEAP_FLAG_ALLOW_ONLY_BUFFERS,
	HeapCategoryRTVDSVTexture: d3d12.D3D12_HEAP_FLAG_ALLOW_ONLY_RT_DS_TEXTURES,
	HeapCategoryOtherTexture:  d3d12.D3D12_HEAP_FLAG_ALLOW_ONLY_NON_RT_DS_TEXTURES,
}

// memoryBlock is one heap plus the sub-allocator that places ranges inside
// it.
type memoryBlock struct {
	heap      Heap
	size      uint64
	dedicated bool
	sub       suballoc.SubAllocator
}

// newMemoryBlock creates a heap of size bytes with this memory type's
// properties and category flag, wrapping it in a dedicated or free-list
// sub-allocator. Every heap this allocator creates uses the fixed MSAA
// placement alignment regardless of category, per the Open Question
// recorded in DESIGN.md.
func newMemoryBlock(device Device, size uint64, heapProperties d3d12.D3D12_HEAP_PROPERTIES, category HeapCategory, dedicated bool) (*memoryBlock, error) {
	desc := d3d12.D3D12_HEAP_DESC{
		SizeInBytes: size,
		Properties:  heapProperties,
		Alignment:   d3d12.DefaultMSAAResourcePlacementAlignment,
		Flags:       categoryHeapFlags[category],
	}

	heap, err := device.CreateHeap(desc)
	if err != nil {
		var hr d3d12.HRESULTError
		if errors.As(err, &hr) && hr.Code() == d3d12.E_OUTOFMEMORY {
			return nil, ErrOutOfMemory
		}
		return nil, wrapErr(KindInternal, "CreateHeap failed", err)
	}
	if heap == nil {
		return nil, newErr(KindInternal, "CreateHeap succeeded but returned a null heap")
	}

	var sub suballoc.SubAllocator
	if dedicated {
		sub = suballoc.NewDedicatedBlockAllocator(size)
	} else {
		sub = suballoc.NewFreeListAllocator(size)
	}

	return &memoryBlock{heap: heap, size: size, dedicated: dedicated, sub: sub}, nil
}
