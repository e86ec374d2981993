// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package d3d12

import (
	"syscall"
	"unsafe"
)

// -----------------------------------------------------------------------------
// IUnknown methods (shared by all COM interfaces)
// -----------------------------------------------------------------------------

// Release decrements the reference count of the object.
func (d *ID3D12Device) Release() uint32 {
	ret, _, _ := syscall.Syscall(d.vtbl.Release, 1, uintptr(unsafe.Pointer(d)), 0, 0)
	return uint32(ret)
}

// AddRef increments the reference count of the object.
func (d *ID3D12Device) AddRef() uint32 {
	ret, _, _ := syscall.Syscall(d.vtbl.AddRef, 1, uintptr(unsafe.Pointer(d)), 0, 0)
	return uint32(ret)
}

// queryInterface is the shared IUnknown::QueryInterface shape every COM
// object in this package exposes under a different vtable offset.
func queryInterface(self unsafe.Pointer, vtblSlot uintptr, iid *GUID) (unsafe.Pointer, error) {
	var out unsafe.Pointer
	ret, _, _ := syscall.Syscall6(
		vtblSlot,
		3,
		uintptr(self),
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&out)),
		0, 0, 0,
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return out, nil
}

// AsDevice10 upgrades the device to the Device10 tier via QueryInterface, or
// reports ok=false when the runtime does not support it.
func (d *ID3D12Device) AsDevice10() (dev *ID3D12Device10, ok bool) {
	p, err := queryInterface(unsafe.Pointer(d), d.vtbl.QueryInterface, &IID_ID3D12Device10)
	if err != nil {
		return nil, false
	}
	return (*ID3D12Device10)(p), true
}

// -----------------------------------------------------------------------------
// ID3D12Device methods
// -----------------------------------------------------------------------------

// CheckFeatureSupport queries feature support, mirroring
// ID3D12Device::CheckFeatureSupport.
func (d *ID3D12Device) CheckFeatureSupport(feature D3D12_FEATURE, featureData unsafe.Pointer, featureDataSize uint32) error {
	ret, _, _ := syscall.Syscall6(
		d.vtbl.CheckFeatureSupport,
		4,
		uintptr(unsafe.Pointer(d)),
		uintptr(feature),
		uintptr(featureData),
		uintptr(featureDataSize),
		0, 0,
	)
	if ret != 0 {
		return HRESULTError(ret)
	}
	return nil
}

// CreateHeap creates a heap.
func (d *ID3D12Device) CreateHeap(desc *D3D12_HEAP_DESC) (*ID3D12Heap, error) {
	var heap *ID3D12Heap
	ret, _, _ := syscall.Syscall6(
		d.vtbl.CreateHeap,
		4,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12Heap)),
		uintptr(unsafe.Pointer(&heap)),
		0, 0,
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return heap, nil
}

// CreateCommittedResource creates a committed resource (device-owned heap
// plus resource) using a legacy resource-state initial state.
func (d *ID3D12Device) CreateCommittedResource(
	heapProperties *D3D12_HEAP_PROPERTIES,
	heapFlags D3D12_HEAP_FLAGS,
	desc *D3D12_RESOURCE_DESC,
	initialResourceState D3D12_RESOURCE_STATES,
	optimizedClearValue *D3D12_CLEAR_VALUE,
) (*ID3D12Resource, error) {
	var resource *ID3D12Resource
	ret, _, _ := syscall.Syscall9(
		d.vtbl.CreateCommittedResource,
		8,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(heapProperties)),
		uintptr(heapFlags),
		uintptr(unsafe.Pointer(desc)),
		uintptr(initialResourceState),
		uintptr(unsafe.Pointer(optimizedClearValue)),
		uintptr(unsafe.Pointer(&IID_ID3D12Resource)),
		uintptr(unsafe.Pointer(&resource)),
		0,
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return resource, nil
}

// CreatePlacedResource creates a resource placed in an existing heap using a
// legacy resource-state initial state.
func (d *ID3D12Device) CreatePlacedResource(
	heap *ID3D12Heap,
	heapOffset uint64,
	desc *D3D12_RESOURCE_DESC,
	initialState D3D12_RESOURCE_STATES,
	optimizedClearValue *D3D12_CLEAR_VALUE,
) (*ID3D12Resource, error) {
	var resource *ID3D12Resource
	ret, _, _ := syscall.Syscall9(
		d.vtbl.CreatePlacedResource,
		8,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(heap)),
		uintptr(heapOffset),
		uintptr(unsafe.Pointer(desc)),
		uintptr(initialState),
		uintptr(unsafe.Pointer(optimizedClearValue)),
		uintptr(unsafe.Pointer(&IID_ID3D12Resource)),
		uintptr(unsafe.Pointer(&resource)),
		0,
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return resource, nil
}

// GetDeviceRemovedReason returns the reason the device was removed.
func (d *ID3D12Device) GetDeviceRemovedReason() error {
	ret, _, _ := syscall.Syscall(d.vtbl.GetDeviceRemovedReason, 1, uintptr(unsafe.Pointer(d)), 0, 0)
	if ret != 0 {
		return HRESULTError(ret)
	}
	return nil
}

// GetResourceAllocationInfo returns resource allocation info.
func (d *ID3D12Device) GetResourceAllocationInfo(visibleMask uint32, numResourceDescs uint32, resourceDescs *D3D12_RESOURCE_DESC) D3D12_RESOURCE_ALLOCATION_INFO {
	var info D3D12_RESOURCE_ALLOCATION_INFO
	// GetResourceAllocationInfo returns the struct by value, which on the
	// Windows x64 ABI means the caller passes a hidden pointer as the first
	// parameter to receive the result.
	_, _, _ = syscall.Syscall6(
		d.vtbl.GetResourceAllocationInfo,
		5,
		uintptr(unsafe.Pointer(&info)),
		uintptr(unsafe.Pointer(d)),
		uintptr(visibleMask),
		uintptr(numResourceDescs),
		uintptr(unsafe.Pointer(resourceDescs)),
		0,
	)
	return info
}

// -----------------------------------------------------------------------------
// ID3D12Device10 methods
// -----------------------------------------------------------------------------

// Release decrements the reference count of the object.
func (d *ID3D12Device10) Release() uint32 {
	ret, _, _ := syscall.Syscall(d.vtbl.Release, 1, uintptr(unsafe.Pointer(d)), 0, 0)
	return uint32(ret)
}

// AddRef increments the reference count of the object.
func (d *ID3D12Device10) AddRef() uint32 {
	ret, _, _ := syscall.Syscall(d.vtbl.AddRef, 1, uintptr(unsafe.Pointer(d)), 0, 0)
	return uint32(ret)
}

// AsDevice12 upgrades the device to the Device12 tier via QueryInterface, or
// reports ok=false when the runtime does not support it.
func (d *ID3D12Device10) AsDevice12() (dev *ID3D12Device12, ok bool) {
	p, err := queryInterface(unsafe.Pointer(d), d.vtbl.QueryInterface, &IID_ID3D12Device12)
	if err != nil {
		return nil, false
	}
	return (*ID3D12Device12)(p), true
}

// CheckFeatureSupport queries feature support.
func (d *ID3D12Device10) CheckFeatureSupport(feature D3D12_FEATURE, featureData unsafe.Pointer, featureDataSize uint32) error {
	ret, _, _ := syscall.Syscall6(
		d.vtbl.CheckFeatureSupport,
		4,
		uintptr(unsafe.Pointer(d)),
		uintptr(feature),
		uintptr(featureData),
		uintptr(featureDataSize),
		0, 0,
	)
	if ret != 0 {
		return HRESULTError(ret)
	}
	return nil
}

// CreateHeap creates a heap.
func (d *ID3D12Device10) CreateHeap(desc *D3D12_HEAP_DESC) (*ID3D12Heap, error) {
	var heap *ID3D12Heap
	ret, _, _ := syscall.Syscall6(
		d.vtbl.CreateHeap,
		4,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12Heap)),
		uintptr(unsafe.Pointer(&heap)),
		0, 0,
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return heap, nil
}

// GetDeviceRemovedReason returns the reason the device was removed.
func (d *ID3D12Device10) GetDeviceRemovedReason() error {
	ret, _, _ := syscall.Syscall(d.vtbl.GetDeviceRemovedReason, 1, uintptr(unsafe.Pointer(d)), 0, 0)
	if ret != 0 {
		return HRESULTError(ret)
	}
	return nil
}

// GetResourceAllocationInfo returns resource allocation info via the legacy
// (v0 descriptor) entry point, still present on Device10.
func (d *ID3D12Device10) GetResourceAllocationInfo(visibleMask uint32, numResourceDescs uint32, resourceDescs *D3D12_RESOURCE_DESC) D3D12_RESOURCE_ALLOCATION_INFO {
	var info D3D12_RESOURCE_ALLOCATION_INFO
	_, _, _ = syscall.Syscall6(
		d.vtbl.GetResourceAllocationInfo,
		5,
		uintptr(unsafe.Pointer(&info)),
		uintptr(unsafe.Pointer(d)),
		uintptr(visibleMask),
		uintptr(numResourceDescs),
		uintptr(unsafe.Pointer(resourceDescs)),
		0,
	)
	return info
}

// CreateCommittedResource3 creates a committed resource with an
// enhanced-barriers initial layout and, optionally, a castable-format list.
func (d *ID3D12Device10) CreateCommittedResource3(
	heapProperties *D3D12_HEAP_PROPERTIES,
	heapFlags D3D12_HEAP_FLAGS,
	desc *D3D12_RESOURCE_DESC1,
	initialLayout D3D12_BARRIER_LAYOUT,
	optimizedClearValue *D3D12_CLEAR_VALUE,
	numCastableFormats uint32,
	castableFormats *DXGI_FORMAT,
) (*ID3D12Resource, error) {
	var resource *ID3D12Resource
	ret, _, _ := syscall.Syscall12(
		d.vtbl.CreateCommittedResource3,
		11,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(heapProperties)),
		uintptr(heapFlags),
		uintptr(unsafe.Pointer(desc)),
		uintptr(initialLayout),
		uintptr(unsafe.Pointer(optimizedClearValue)),
		0, // protected_session: always nil, sessions are out of scope
		uintptr(numCastableFormats),
		uintptr(unsafe.Pointer(castableFormats)),
		uintptr(unsafe.Pointer(&IID_ID3D12Resource)),
		uintptr(unsafe.Pointer(&resource)),
		0,
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return resource, nil
}

// CreatePlacedResource2 creates a placed resource with an enhanced-barriers
// initial layout and, optionally, a castable-format list. Unlike the
// committed path this never takes a clear value.
func (d *ID3D12Device10) CreatePlacedResource2(
	heap *ID3D12Heap,
	heapOffset uint64,
	desc *D3D12_RESOURCE_DESC1,
	initialLayout D3D12_BARRIER_LAYOUT,
	numCastableFormats uint32,
	castableFormats *DXGI_FORMAT,
) (*ID3D12Resource, error) {
	var resource *ID3D12Resource
	ret, _, _ := syscall.Syscall9(
		d.vtbl.CreatePlacedResource2,
		9,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(heap)),
		uintptr(heapOffset),
		uintptr(unsafe.Pointer(desc)),
		uintptr(initialLayout),
		uintptr(numCastableFormats),
		uintptr(unsafe.Pointer(castableFormats)),
		uintptr(unsafe.Pointer(&IID_ID3D12Resource)),
		uintptr(unsafe.Pointer(&resource)),
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return resource, nil
}

// -----------------------------------------------------------------------------
// ID3D12Device12 methods
// -----------------------------------------------------------------------------

// Release decrements the reference count of the object.
func (d *ID3D12Device12) Release() uint32 {
	ret, _, _ := syscall.Syscall(d.vtbl.Release, 1, uintptr(unsafe.Pointer(d)), 0, 0)
	return uint32(ret)
}

// AddRef increments the reference count of the object.
func (d *ID3D12Device12) AddRef() uint32 {
	ret, _, _ := syscall.Syscall(d.vtbl.AddRef, 1, uintptr(unsafe.Pointer(d)), 0, 0)
	return uint32(ret)
}

// CheckFeatureSupport queries feature support.
func (d *ID3D12Device12) CheckFeatureSupport(feature D3D12_FEATURE, featureData unsafe.Pointer, featureDataSize uint32) error {
	ret, _, _ := syscall.Syscall6(
		d.vtbl.CheckFeatureSupport,
		4,
		uintptr(unsafe.Pointer(d)),
		uintptr(feature),
		uintptr(featureData),
		uintptr(featureDataSize),
		0, 0,
	)
	if ret != 0 {
		return HRESULTError(ret)
	}
	return nil
}

// CreateHeap creates a heap.
func (d *ID3D12Device12) CreateHeap(desc *D3D12_HEAP_DESC) (*ID3D12Heap, error) {
	var heap *ID3D12Heap
	ret, _, _ := syscall.Syscall6(
		d.vtbl.CreateHeap,
		4,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&IID_ID3D12Heap)),
		uintptr(unsafe.Pointer(&heap)),
		0, 0,
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return heap, nil
}

// GetDeviceRemovedReason returns the reason the device was removed.
func (d *ID3D12Device12) GetDeviceRemovedReason() error {
	ret, _, _ := syscall.Syscall(d.vtbl.GetDeviceRemovedReason, 1, uintptr(unsafe.Pointer(d)), 0, 0)
	if ret != 0 {
		return HRESULTError(ret)
	}
	return nil
}

// CreateCommittedResource3 creates a committed resource with an
// enhanced-barriers initial layout and, optionally, a castable-format list.
func (d *ID3D12Device12) CreateCommittedResource3(
	heapProperties *D3D12_HEAP_PROPERTIES,
	heapFlags D3D12_HEAP_FLAGS,
	desc *D3D12_RESOURCE_DESC1,
	initialLayout D3D12_BARRIER_LAYOUT,
	optimizedClearValue *D3D12_CLEAR_VALUE,
	numCastableFormats uint32,
	castableFormats *DXGI_FORMAT,
) (*ID3D12Resource, error) {
	var resource *ID3D12Resource
	ret, _, _ := syscall.Syscall12(
		d.vtbl.CreateCommittedResource3,
		11,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(heapProperties)),
		uintptr(heapFlags),
		uintptr(unsafe.Pointer(desc)),
		uintptr(initialLayout),
		uintptr(unsafe.Pointer(optimizedClearValue)),
		0,
		uintptr(numCastableFormats),
		uintptr(unsafe.Pointer(castableFormats)),
		uintptr(unsafe.Pointer(&IID_ID3D12Resource)),
		uintptr(unsafe.Pointer(&resource)),
		0,
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return resource, nil
}

// CreatePlacedResource2 creates a placed resource with an enhanced-barriers
// initial layout and, optionally, a castable-format list.
func (d *ID3D12Device12) CreatePlacedResource2(
	heap *ID3D12Heap,
	heapOffset uint64,
	desc *D3D12_RESOURCE_DESC1,
	initialLayout D3D12_BARRIER_LAYOUT,
	numCastableFormats uint32,
	castableFormats *DXGI_FORMAT,
) (*ID3D12Resource, error) {
	var resource *ID3D12Resource
	ret, _, _ := syscall.Syscall9(
		d.vtbl.CreatePlacedResource2,
		9,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(heap)),
		uintptr(heapOffset),
		uintptr(unsafe.Pointer(desc)),
		uintptr(initialLayout),
		uintptr(numCastableFormats),
		uintptr(unsafe.Pointer(castableFormats)),
		uintptr(unsafe.Pointer(&IID_ID3D12Resource)),
		uintptr(unsafe.Pointer(&resource)),
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return resource, nil
}

// GetResourceAllocationInfo3 returns allocation info for a resource
// descriptor, honoring a per-resource castable-format list. Only one
// resource descriptor is ever queried at a time by this allocator, so the
// array-oriented real signature collapses to single-value parameters here.
func (d *ID3D12Device12) GetResourceAllocationInfo3(
	visibleMask uint32,
	desc *D3D12_RESOURCE_DESC1,
	numCastableFormats uint32,
	castableFormats *DXGI_FORMAT,
) D3D12_RESOURCE_ALLOCATION_INFO {
	var info D3D12_RESOURCE_ALLOCATION_INFO
	_, _, _ = syscall.Syscall9(
		d.vtbl.GetResourceAllocationInfo3,
		8,
		uintptr(unsafe.Pointer(&info)),
		uintptr(unsafe.Pointer(d)),
		uintptr(visibleMask),
		1, // numResourceDescs: always one
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&numCastableFormats)),
		uintptr(unsafe.Pointer(&castableFormats)),
		0,
		0,
	)
	return info
}
