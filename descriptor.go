package d3d12ma

import "github.com/gogpu/d3d12ma/d3d12"

// MemoryLocation classifies where an allocation should live.
type MemoryLocation int

const (
	// Unknown lets the allocator pick any compatible memory type.
	Unknown MemoryLocation = iota
	// GpuOnly requests device-local memory with no CPU access.
	GpuOnly
	// CpuToGpu requests host-visible, write-combined memory for uploads.
	CpuToGpu
	// GpuToCpu requests host-visible, cached memory for readback.
	GpuToCpu
)

func (l MemoryLocation) String() string {
	switch l {
	case GpuOnly:
		return "GpuOnly"
	case CpuToGpu:
		return "CpuToGpu"
	case GpuToCpu:
		return "GpuToCpu"
	default:
		return "Unknown"
	}
}

// HeapCategory classifies what a heap may hold. On resource-heap-tier-1
// devices a heap only ever holds one category; tier-2 devices use All.
type HeapCategory int

const (
	HeapCategoryAll HeapCategory = iota
	HeapCategoryBuffer
	HeapCategoryRTVDSVTexture
	HeapCategoryOtherTexture
)

// ResourceCategory classifies a resource for heap-category compatibility.
type ResourceCategory int

const (
	ResourceCategoryBuffer ResourceCategory = iota
	ResourceCategoryRTVDSVTexture
	ResourceCategoryOtherTexture
)

// HeapCategory converts a resource category to the heap category that can
// hold it.
func (c ResourceCategory) HeapCategory() HeapCategory {
	switch c {
	case ResourceCategoryRTVDSVTexture:
		return HeapCategoryRTVDSVTexture
	case ResourceCategoryOtherTexture:
		return HeapCategoryOtherTexture
	default:
		return HeapCategoryBuffer
	}
}

// AllocationCreateDesc describes a bare memory allocation request.
type AllocationCreateDesc struct {
	Name             string
	Location         MemoryLocation
	Size             uint64
	Alignment        uint64
	ResourceCategory ResourceCategory
}

// ResourceType distinguishes a committed resource, which owns a dedicated
// heap, from a placed resource, which is sub-allocated out of a pooled one.
type ResourceType interface{ isResourceType() }

// Committed requests a dedicated heap sized exactly for the resource.
type Committed struct {
	HeapProperties d3d12.D3D12_HEAP_PROPERTIES
	HeapFlags      d3d12.D3D12_HEAP_FLAGS
}

func (Committed) isResourceType() {}

// Placed requests the resource be sub-allocated out of a pooled heap chosen
// by ResourceCreateDesc.Location.
type Placed struct{}

func (Placed) isResourceType() {}

// InitialStateOrLayout selects between the legacy resource-states model and
// the Device10+ enhanced-barriers layout model for a resource's initial
// state. Exactly one of the two concrete implementations is ever used.
type InitialStateOrLayout interface{ isInitialStateOrLayout() }

// ResourceState is the legacy initial state, valid on every device tier.
type ResourceState struct {
	State d3d12.D3D12_RESOURCE_STATES
}

func (ResourceState) isInitialStateOrLayout() {}

// BarrierLayout is the enhanced-barriers initial layout, valid from
// Device10 onward.
type BarrierLayout struct {
	Layout d3d12.D3D12_BARRIER_LAYOUT
}

func (BarrierLayout) isInitialStateOrLayout() {}

// ResourceCreateDesc describes a resource to be created alongside the
// memory that backs it. Location selects the residency class for both the
// placed sub-allocation path and the committed-statistics memory-type
// lookup; it is ignored by neither path.
type ResourceCreateDesc struct {
	Name                 string
	ResourceDesc         d3d12.D3D12_RESOURCE_DESC
	ResourceCategory     ResourceCategory
	Location             MemoryLocation
	ResourceType         ResourceType
	InitialStateOrLayout InitialStateOrLayout
	ClearValue           *d3d12.D3D12_CLEAR_VALUE
	CastableFormats      []d3d12.DXGI_FORMAT
}

// AllocatorDebugSettings tunes diagnostic behavior. None of these flags
// affect allocation semantics, only logging.
type AllocatorDebugSettings struct {
	LogMemoryInformation bool
	LogLeaksOnShutdown   bool
	StoreStackTraces     bool
	LogAllocations       bool
	LogFrees             bool
	LogStackTraces       bool
}

// AllocationSizes controls the size of the general (pooled, non-dedicated)
// memory blocks the allocator creates as it grows a memory type.
type AllocationSizes struct {
	// DeviceMemblockSize is the block size used for GpuOnly memory types.
	DeviceMemblockSize uint64
	// HostMemblockSize is the block size used for CpuToGpu/GpuToCpu memory
	// types, which tend to be allocated in smaller, more numerous chunks.
	HostMemblockSize uint64
}

// DefaultAllocationSizes returns the allocator's default block-size policy:
// 256 MiB device blocks, 64 MiB host blocks.
func DefaultAllocationSizes() AllocationSizes {
	return AllocationSizes{
		DeviceMemblockSize: 256 * 1024 * 1024,
		HostMemblockSize:   64 * 1024 * 1024,
	}
}

// GetMemblockSize returns the size of the next general block to create for
// a memory type. activeGeneralBlocks is accepted for parity with the policy
// this was modeled after conceptually (larger backing stores may grow block
// size as a memory type accumulates blocks); this implementation keeps a
// fixed size regardless, which trivially satisfies monotonic non-decrease.
func (s AllocationSizes) GetMemblockSize(isHost bool, activeGeneralBlocks int) uint64 {
	if isHost {
		return s.HostMemblockSize
	}
	return s.DeviceMemblockSize
}

// AllocatorDescriptor configures a new Allocator.
type AllocatorDescriptor struct {
	Device          Device
	DebugSettings   AllocatorDebugSettings
	AllocationSizes AllocationSizes
}
