package d3d12ma

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/gogpu/d3d12ma/d3d12"
)

// Allocator is the root façade: it owns the device handle, the
// memory-type table, and routes resource creation between the committed
// and placed paths. Callers must serialize access to an Allocator
// themselves.
type Allocator struct {
	device          Device
	debug           AllocatorDebugSettings
	allocationSizes AllocationSizes
	memoryTypes     []*memoryType
}

// New builds an Allocator, cloning the device handle (an observable AddRef)
// and deriving the memory-type table from the device's
// resource-heap tier: three (Buffer, RtvDsvTexture, OtherTexture) entries
// per residency on tier-1 devices, or one (All) entry per residency on
// tier-2 and above.
func New(desc AllocatorDescriptor) (*Allocator, error) {
	if desc.Device == nil {
		return nil, newErr(KindInvalidAllocatorCreateDesc, "Device must not be nil")
	}
	desc.Device.AddRef()

	sizes := desc.AllocationSizes
	if sizes.DeviceMemblockSize == 0 && sizes.HostMemblockSize == 0 {
		sizes = DefaultAllocationSizes()
	}

	a := &Allocator{
		device:          desc.Device,
		debug:           desc.DebugSettings,
		allocationSizes: sizes,
	}

	tier2 := desc.Device.ResourceHeapTier() >= d3d12.D3D12_RESOURCE_HEAP_TIER_2
	for _, loc := range []MemoryLocation{GpuOnly, CpuToGpu, GpuToCpu} {
		props := heapPropertiesForLocation(loc)
		if tier2 {
			a.memoryTypes = append(a.memoryTypes, &memoryType{
				index:          len(a.memoryTypes),
				location:       loc,
				heapCategory:   HeapCategoryAll,
				heapProperties: props,
			})
			continue
		}
		for _, cat := range []HeapCategory{HeapCategoryBuffer, HeapCategoryRTVDSVTexture, HeapCategoryOtherTexture} {
			a.memoryTypes = append(a.memoryTypes, &memoryType{
				index:          len(a.memoryTypes),
				location:       loc,
				heapCategory:   cat,
				heapProperties: props,
			})
		}
	}

	return a, nil
}

func isPowerOfTwo(v uint64) bool { return v != 0 && v&(v-1) == 0 }

// Allocate sub-allocates a bare range of memory for desc.
func (a *Allocator) Allocate(desc AllocationCreateDesc) (Allocation, error) {
	if desc.Size == 0 || !isPowerOfTwo(desc.Alignment) {
		return Allocation{}, newErr(KindInvalidAllocationCreateDesc, "size must be nonzero and alignment must be a power of two")
	}

	if a.debug.LogAllocations {
		Logger().Debug("allocating", "name", desc.Name, "size", desc.Size, "alignment", desc.Alignment)
	}

	mt := a.findMemoryType(desc.ResourceCategory, desc.Location)
	if mt == nil {
		return Allocation{}, newErr(KindNoCompatibleMemoryTypeFound, fmt.Sprintf("no memory type for location=%s category=%d", desc.Location, desc.ResourceCategory))
	}

	return mt.allocate(a.device, desc, a.allocationSizes)
}

func (a *Allocator) findMemoryType(category ResourceCategory, location MemoryLocation) *memoryType {
	for _, mt := range a.memoryTypes {
		if mt.matches(category, location) {
			return mt
		}
	}
	return nil
}

// Free releases alloc back to its memory type. Freeing a null allocation is
// a no-op.
func (a *Allocator) Free(alloc Allocation) error {
	if alloc.IsNull() {
		return nil
	}
	if a.debug.LogFrees {
		Logger().Debug("freeing", "name", alloc.name, "size", alloc.size)
	}
	if err := a.memoryTypes[alloc.memoryTypeIndex].free(alloc); err != nil {
		return err
	}
	// Drop the allocation's own reference on the heap, after the block
	// slot has had its chance to retire.
	alloc.heap.Release()
	return nil
}

// RenameAllocation updates alloc's display name, propagating to the
// sub-allocator only when alloc is non-null.
func (a *Allocator) RenameAllocation(alloc *Allocation, name string) error {
	alloc.name = name
	if alloc.IsNull() {
		return nil
	}
	block := a.memoryTypes[alloc.memoryTypeIndex].blocks[alloc.memoryBlockIndex]
	if block == nil {
		return newErr(KindInternal, "rename of allocation whose memory block has already been destroyed")
	}
	if err := block.sub.RenameAllocation(alloc.chunkID, name); err != nil {
		return wrapErr(KindInternal, "sub-allocator rename failed", err)
	}
	return nil
}

// Capacity returns the sum of every live block's size across every memory
// type.
func (a *Allocator) Capacity() uint64 {
	var total uint64
	for _, mt := range a.memoryTypes {
		total += mt.capacity()
	}
	return total
}

// GenerateReport walks every block of every memory type.
func (a *Allocator) GenerateReport() AllocatorReport {
	var report AllocatorReport
	for _, mt := range a.memoryTypes {
		allocs, blocks := mt.generateReport()
		base := len(report.Allocations)
		report.Allocations = append(report.Allocations, allocs...)
		for _, b := range blocks {
			b.FirstAllocation += base
			report.Blocks = append(report.Blocks, b)
			report.TotalCapacityBytes += b.Size
		}
	}
	for _, alloc := range report.Allocations {
		report.TotalAllocatedBytes += alloc.Size
	}
	return report
}

// gateCreateResource enforces the device-tier/initial-state/castable-format
// precondition matrix before any device call is made.
func gateCreateResource(tier DeviceTier, initial InitialStateOrLayout, castableFormats []d3d12.DXGI_FORMAT) error {
	hasCastable := len(castableFormats) > 0
	switch initial.(type) {
	case BarrierLayout:
		if tier == DeviceTierBase {
			return newErr(KindBarrierLayoutNeedsDevice10, "BarrierLayout initial state requires at least Device10")
		}
		if hasCastable && tier != DeviceTierDevice12 {
			return newErr(KindCastableFormatsRequiresAtLeastDevice12, "castable formats with BarrierLayout require Device12")
		}
		return nil
	case ResourceState:
		if hasCastable {
			return newErr(KindCastableFormatsRequiresEnhancedBarriers, "castable formats require a BarrierLayout initial state")
		}
		return nil
	default:
		return newErr(KindInvalidAllocationCreateDesc, "unknown InitialStateOrLayout variant")
	}
}

// CreateResource creates an API resource bound to either a dedicated heap
// (Committed) or a sub-allocated range (Placed).
func (a *Allocator) CreateResource(desc ResourceCreateDesc) (*Resource, error) {
	if err := gateCreateResource(a.device.Tier(), desc.InitialStateOrLayout, desc.CastableFormats); err != nil {
		return nil, err
	}

	switch rt := desc.ResourceType.(type) {
	case Committed:
		return a.createCommittedResource(desc, rt)
	case Placed:
		return a.createPlacedResource(desc)
	default:
		return nil, newErr(KindInvalidAllocationCreateDesc, "unknown ResourceType variant")
	}
}

func (a *Allocator) createCommittedResource(desc ResourceCreateDesc, rt Committed) (*Resource, error) {
	apiResource, err := a.dispatchCreate(desc, rt.HeapProperties, rt.HeapFlags, nil, 0)
	if err != nil {
		return nil, err
	}

	info := a.resourceAllocationInfo(desc)

	mt := a.findMemoryType(desc.ResourceCategory, desc.Location)
	if mt == nil {
		apiResource.Release()
		return nil, newErr(KindNoCompatibleMemoryTypeFound, fmt.Sprintf("no memory type for location=%s category=%d", desc.Location, desc.ResourceCategory))
	}
	mt.committedStats.NumAllocations++
	mt.committedStats.TotalSize += info.SizeInBytes

	return trackResource(&Resource{
		name:            desc.Name,
		apiResource:     apiResource,
		location:        desc.Location,
		memoryTypeIndex: mt.index,
		size:            info.SizeInBytes,
	}), nil
}

func (a *Allocator) createPlacedResource(desc ResourceCreateDesc) (*Resource, error) {
	info := a.resourceAllocationInfo(desc)

	alloc, err := a.Allocate(AllocationCreateDesc{
		Name:             desc.Name,
		Location:         desc.Location,
		Size:             info.SizeInBytes,
		Alignment:        info.Alignment,
		ResourceCategory: desc.ResourceCategory,
	})
	if err != nil {
		return nil, err
	}

	apiResource, err := a.dispatchCreate(desc, d3d12.D3D12_HEAP_PROPERTIES{}, d3d12.D3D12_HEAP_FLAG_NONE, alloc.heap, alloc.offset)
	if err != nil {
		_ = a.Free(alloc)
		return nil, err
	}

	return trackResource(&Resource{
		name:            desc.Name,
		apiResource:     apiResource,
		allocation:      &alloc,
		location:        desc.Location,
		memoryTypeIndex: -1,
		size:            info.SizeInBytes,
	}), nil
}

// dispatchCreate performs the device-call selection: heap == nil selects
// the committed path; heap != nil selects the placed path at the given
// offset.
func (a *Allocator) dispatchCreate(desc ResourceCreateDesc, heapProperties d3d12.D3D12_HEAP_PROPERTIES, heapFlags d3d12.D3D12_HEAP_FLAGS, heap Heap, offset uint64) (APIResource, error) {
	var apiResource APIResource
	var err error

	switch initial := desc.InitialStateOrLayout.(type) {
	case BarrierLayout:
		desc1 := d3d12.ResourceDesc1FromDesc(desc.ResourceDesc)
		if heap == nil {
			apiResource, err = a.device.CreateCommittedResource3(heapProperties, heapFlags, desc1, initial.Layout, desc.ClearValue, desc.CastableFormats)
		} else {
			apiResource, err = a.device.CreatePlacedResource2(heap, offset, desc1, initial.Layout, desc.CastableFormats)
		}
	case ResourceState:
		if heap == nil {
			apiResource, err = a.device.CreateCommittedResource(heapProperties, heapFlags, desc.ResourceDesc, initial.State, desc.ClearValue)
		} else {
			apiResource, err = a.device.CreatePlacedResource(heap, offset, desc.ResourceDesc, initial.State, desc.ClearValue)
		}
	default:
		return nil, newErr(KindInvalidAllocationCreateDesc, "unknown InitialStateOrLayout variant")
	}

	if err != nil {
		return nil, a.wrapDeviceError(err)
	}
	if apiResource == nil {
		return nil, newErr(KindInternal, "device call succeeded but returned a null resource")
	}
	return apiResource, nil
}

// wrapDeviceError classifies a resource-creation device-call failure,
// surfacing the device-removed reason alongside DEVICE_REMOVED failures.
// Every other failure, out-of-memory included, is an Internal error:
// OutOfMemory is reserved for heap creation and sub-allocator exhaustion.
func (a *Allocator) wrapDeviceError(err error) error {
	var hr d3d12.HRESULTError
	if errors.As(err, &hr) && hr.Code() == d3d12.DXGI_ERROR_DEVICE_REMOVED {
		reason := a.device.DeviceRemovedReason()
		return wrapErr(KindInternal, fmt.Sprintf("device removed: %v", reason), err)
	}
	return wrapErr(KindInternal, "device call failed", err)
}

// resourceAllocationInfo queries the natural size/alignment for desc,
// using the castable-format-aware v3 query only when it is actually
// needed (Device12 with a non-empty castable-format list).
func (a *Allocator) resourceAllocationInfo(desc ResourceCreateDesc) d3d12.D3D12_RESOURCE_ALLOCATION_INFO {
	if a.device.Tier() == DeviceTierDevice12 && len(desc.CastableFormats) > 0 {
		return a.device.GetResourceAllocationInfo3(d3d12.ResourceDesc1FromDesc(desc.ResourceDesc), desc.CastableFormats)
	}
	return a.device.GetResourceAllocationInfo(desc.ResourceDesc)
}

// FreeResource releases resource's API object, then its backing memory, in
// that order - the driver expects the resource to drop before the heap
// beneath its allocation.
func (a *Allocator) FreeResource(resource *Resource) error {
	resource.apiResource.Release()
	resource.freed = true
	runtime.SetFinalizer(resource, nil)

	if resource.allocation != nil {
		return a.Free(*resource.allocation)
	}

	if resource.memoryTypeIndex >= 0 {
		mt := a.memoryTypes[resource.memoryTypeIndex]
		mt.committedStats.NumAllocations--
		mt.committedStats.TotalSize -= resource.size
	}
	return nil
}

// Close tears the allocator down: optionally emits a leak report, then
// releases every block before releasing the device handle - every heap
// must drop before the device that created it.
func (a *Allocator) Close() error {
	if a.debug.LogLeaksOnShutdown {
		for _, mt := range a.memoryTypes {
			mt.reportLeaks(slog.LevelWarn)
		}
	}

	for _, mt := range a.memoryTypes {
		for i, block := range mt.blocks {
			if block == nil {
				continue
			}
			block.heap.Release()
			mt.blocks[i] = nil
		}
	}

	a.device.Release()
	return nil
}
