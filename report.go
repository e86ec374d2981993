package d3d12ma

import "github.com/gogpu/d3d12ma/suballoc"

// AllocationReport describes one live allocation, as returned by
// Allocator.GenerateReport.
type AllocationReport struct {
	ChunkID suballoc.ChunkID
	Name    string
	Offset  uint64
	Size    uint64
}

// MemoryBlockReport describes one live block and the contiguous range of
// AllocatorReport.Allocations it contributed.
type MemoryBlockReport struct {
	Size            uint64
	FirstAllocation int
	AllocationCount int
}

// AllocatorReport is a point-in-time snapshot of every live allocation and
// block across every memory type.
type AllocatorReport struct {
	Allocations         []AllocationReport
	Blocks              []MemoryBlockReport
	TotalAllocatedBytes uint64
	TotalCapacityBytes  uint64
}
