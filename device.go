package d3d12ma

import "github.com/gogpu/d3d12ma/d3d12"

// DeviceTier identifies which capability tier a Device implementation
// supports: the base legacy tier, Device10 (enhanced barriers), or
// Device12 (enhanced barriers plus castable formats).
type DeviceTier int

const (
	// DeviceTierBase supports only legacy CreateCommittedResource,
	// CreatePlacedResource, and GetResourceAllocationInfo.
	DeviceTierBase DeviceTier = iota
	// DeviceTierDevice10 adds CreateCommittedResource3/CreatePlacedResource2
	// with a barrier layout but no castable-format list.
	DeviceTierDevice10
	// DeviceTierDevice12 further adds castable-format lists and
	// GetResourceAllocationInfo3.
	DeviceTierDevice12
)

func (t DeviceTier) String() string {
	switch t {
	case DeviceTierDevice10:
		return "Device10"
	case DeviceTierDevice12:
		return "Device12"
	default:
		return "Device"
	}
}

// Heap is a created heap handle. Its concrete identity (a COM ID3D12Heap
// on Windows) lives behind this interface so the core stays buildable
// without a Windows host. AddRef/Release mirror the COM reference count:
// the owning block slot holds one reference and every live Allocation
// carved out of the heap holds another.
type Heap interface {
	AddRef() uint32
	Release() uint32
}

// APIResource is a device-created resource object (an ID3D12Resource on
// Windows), opaque to the allocator core beyond the release it issues when
// a Resource is freed.
type APIResource interface {
	Release() uint32
}

// Device is a capability union over the three D3D12 device tiers.
// Allocator enforces its own precondition matrix on Tier() before ever
// calling a Device10/Device12-only method. Implementations are not required
// to gate those methods themselves: WindowsDevice returns an error from
// CreateCommittedResource3/CreatePlacedResource2 when the Device10
// interface is missing, while fakedevice.Device does no gating at all.
type Device interface {
	// AddRef/Release mirror the underlying COM object's reference count.
	// Allocator calls AddRef once at construction and Release once at
	// Close.
	AddRef() uint32
	Release() uint32

	Tier() DeviceTier
	ResourceHeapTier() d3d12.D3D12_RESOURCE_HEAP_TIER

	CreateHeap(desc d3d12.D3D12_HEAP_DESC) (Heap, error)

	CreateCommittedResource(
		heapProperties d3d12.D3D12_HEAP_PROPERTIES,
		heapFlags d3d12.D3D12_HEAP_FLAGS,
		desc d3d12.D3D12_RESOURCE_DESC,
		initialState d3d12.D3D12_RESOURCE_STATES,
		clearValue *d3d12.D3D12_CLEAR_VALUE,
	) (APIResource, error)

	CreatePlacedResource(
		heap Heap,
		heapOffset uint64,
		desc d3d12.D3D12_RESOURCE_DESC,
		initialState d3d12.D3D12_RESOURCE_STATES,
		clearValue *d3d12.D3D12_CLEAR_VALUE,
	) (APIResource, error)

	GetResourceAllocationInfo(desc d3d12.D3D12_RESOURCE_DESC) d3d12.D3D12_RESOURCE_ALLOCATION_INFO

	CreateCommittedResource3(
		heapProperties d3d12.D3D12_HEAP_PROPERTIES,
		heapFlags d3d12.D3D12_HEAP_FLAGS,
		desc d3d12.D3D12_RESOURCE_DESC1,
		initialLayout d3d12.D3D12_BARRIER_LAYOUT,
		clearValue *d3d12.D3D12_CLEAR_VALUE,
		castableFormats []d3d12.DXGI_FORMAT,
	) (APIResource, error)

	CreatePlacedResource2(
		heap Heap,
		heapOffset uint64,
		desc d3d12.D3D12_RESOURCE_DESC1,
		initialLayout d3d12.D3D12_BARRIER_LAYOUT,
		castableFormats []d3d12.DXGI_FORMAT,
	) (APIResource, error)

	GetResourceAllocationInfo3(desc d3d12.D3D12_RESOURCE_DESC1, castableFormats []d3d12.DXGI_FORMAT) d3d12.D3D12_RESOURCE_ALLOCATION_INFO

	// DeviceRemovedReason reports the reason the device was removed, used
	// to enrich an Internal error when a call fails with DEVICE_REMOVED.
	DeviceRemovedReason() error
}

// heapPropertiesForLocation returns the fixed heap properties for a
// residency class.
func heapPropertiesForLocation(loc MemoryLocation) d3d12.D3D12_HEAP_PROPERTIES {
	switch loc {
	case CpuToGpu:
		return d3d12.D3D12_HEAP_PROPERTIES{
			Type:                 d3d12.D3D12_HEAP_TYPE_CUSTOM,
			CPUPageProperty:      d3d12.D3D12_CPU_PAGE_PROPERTY_WRITE_COMBINE,
			MemoryPoolPreference: d3d12.D3D12_MEMORY_POOL_L0,
		}
	case GpuToCpu:
		return d3d12.D3D12_HEAP_PROPERTIES{
			Type:                 d3d12.D3D12_HEAP_TYPE_CUSTOM,
			CPUPageProperty:      d3d12.D3D12_CPU_PAGE_PROPERTY_WRITE_BACK,
			MemoryPoolPreference: d3d12.D3D12_MEMORY_POOL_L0,
		}
	default: // GpuOnly, Unknown
		return d3d12.D3D12_HEAP_PROPERTIES{Type: d3d12.D3D12_HEAP_TYPE_DEFAULT}
	}
}
