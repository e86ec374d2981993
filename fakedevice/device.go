// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package fakedevice

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/d3d12ma"
	"github.com/gogpu/d3d12ma/d3d12"
)

// defaultResourceAlignment is the D3D12 default placement alignment used
// when a resource descriptor does not request MSAA or small-resource
// alignment explicitly.
const defaultResourceAlignment = 64 * 1024

// Heap is the in-memory stand-in for an ID3D12Heap.
type Heap struct {
	size     uint64
	refCount atomic.Int32
}

// Release implements d3d12ma.Heap.
func (h *Heap) Release() uint32 { return uint32(h.refCount.Add(-1)) }

// AddRef implements d3d12ma.Heap. The allocator core calls it once per
// live Allocation carved out of the heap.
func (h *Heap) AddRef() uint32 { return uint32(h.refCount.Add(1)) }

// Size returns the heap's byte size, for test assertions.
func (h *Heap) Size() uint64 { return h.size }

// RefCount reports the current reference count, for test assertions about
// the allocator's AddRef/Release pairing.
func (h *Heap) RefCount() int32 { return h.refCount.Load() }

// Resource is the in-memory stand-in for an ID3D12Resource.
type Resource struct {
	desc     d3d12.D3D12_RESOURCE_DESC
	refCount atomic.Int32
}

// Release implements d3d12ma.APIResource.
func (r *Resource) Release() uint32 { return uint32(r.refCount.Add(-1)) }

// Device is an in-memory implementation of d3d12ma.Device. It creates no
// real GPU resources; CreateHeap/CreateResource* calls just allocate and
// track bookkeeping structs, making it suitable for driving the allocator
// core's logic in tests and the report CLI on a host with no D3D12
// adapter - see the noop HAL backend this package is modeled on.
type Device struct {
	tier             d3d12ma.DeviceTier
	resourceHeapTier d3d12.D3D12_RESOURCE_HEAP_TIER
	refCount         atomic.Int32

	mu              sync.Mutex
	nextHeapErr     error
	nextResourceErr error
	removedReason   error
	heapsCreated    int
	bytesAllocated  uint64
}

// New builds a Device reporting the given capability tier and resource
// heap tier. Most tests want Device12/Tier2 for maximum code-path
// coverage; NewTier1Base returns the most restrictive configuration for
// exercising the gating matrix.
func New(tier d3d12ma.DeviceTier, resourceHeapTier d3d12.D3D12_RESOURCE_HEAP_TIER) *Device {
	d := &Device{tier: tier, resourceHeapTier: resourceHeapTier}
	d.refCount.Store(1)
	return d
}

// NewTier1Base returns a Device reporting the legacy base tier and
// resource-heap-tier 1 (one heap category per block), the most
// restrictive configuration a real adapter can report.
func NewTier1Base() *Device {
	return New(d3d12ma.DeviceTierBase, d3d12.D3D12_RESOURCE_HEAP_TIER_1)
}

// NewTier2Device12 returns a Device reporting Device12 and resource-heap-
// tier 2 (mixed-category heaps), the most permissive configuration.
func NewTier2Device12() *Device {
	return New(d3d12ma.DeviceTierDevice12, d3d12.D3D12_RESOURCE_HEAP_TIER_2)
}

// FailNextHeap makes the next CreateHeap call (and only the next one)
// return err, for exercising the allocator's out-of-memory recovery paths.
func (d *Device) FailNextHeap(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextHeapErr = err
}

// FailNextResource makes the next CreateCommittedResource* or
// CreatePlacedResource* call (and only the next one) return err, for
// exercising the allocator's resource-creation error classification.
func (d *Device) FailNextResource(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextResourceErr = err
}

func (d *Device) takeResourceErr() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	err := d.nextResourceErr
	d.nextResourceErr = nil
	return err
}

// SetDeviceRemovedReason makes DeviceRemovedReason return err afterward.
func (d *Device) SetDeviceRemovedReason(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.removedReason = err
}

// HeapsCreated reports the number of heaps created so far, for test
// assertions about block retention/reuse.
func (d *Device) HeapsCreated() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.heapsCreated
}

func (d *Device) AddRef() uint32  { return uint32(d.refCount.Add(1)) }
func (d *Device) Release() uint32 { return uint32(d.refCount.Add(-1)) }

func (d *Device) Tier() d3d12ma.DeviceTier { return d.tier }

func (d *Device) ResourceHeapTier() d3d12.D3D12_RESOURCE_HEAP_TIER { return d.resourceHeapTier }

func (d *Device) CreateHeap(desc d3d12.D3D12_HEAP_DESC) (d3d12ma.Heap, error) {
	d.mu.Lock()
	if d.nextHeapErr != nil {
		err := d.nextHeapErr
		d.nextHeapErr = nil
		d.mu.Unlock()
		return nil, err
	}
	d.heapsCreated++
	d.bytesAllocated += desc.SizeInBytes
	d.mu.Unlock()

	h := &Heap{size: desc.SizeInBytes}
	h.refCount.Store(1)
	return h, nil
}

func (d *Device) CreateCommittedResource(
	_ d3d12.D3D12_HEAP_PROPERTIES,
	_ d3d12.D3D12_HEAP_FLAGS,
	desc d3d12.D3D12_RESOURCE_DESC,
	_ d3d12.D3D12_RESOURCE_STATES,
	_ *d3d12.D3D12_CLEAR_VALUE,
) (d3d12ma.APIResource, error) {
	if err := d.takeResourceErr(); err != nil {
		return nil, err
	}
	return newResource(desc), nil
}

func (d *Device) CreatePlacedResource(
	_ d3d12ma.Heap,
	_ uint64,
	desc d3d12.D3D12_RESOURCE_DESC,
	_ d3d12.D3D12_RESOURCE_STATES,
	_ *d3d12.D3D12_CLEAR_VALUE,
) (d3d12ma.APIResource, error) {
	if err := d.takeResourceErr(); err != nil {
		return nil, err
	}
	return newResource(desc), nil
}

func (d *Device) GetResourceAllocationInfo(desc d3d12.D3D12_RESOURCE_DESC) d3d12.D3D12_RESOURCE_ALLOCATION_INFO {
	return allocationInfo(desc.Width, desc.Height, desc.DepthOrArraySize, desc.Alignment)
}

func (d *Device) CreateCommittedResource3(
	_ d3d12.D3D12_HEAP_PROPERTIES,
	_ d3d12.D3D12_HEAP_FLAGS,
	desc d3d12.D3D12_RESOURCE_DESC1,
	_ d3d12.D3D12_BARRIER_LAYOUT,
	_ *d3d12.D3D12_CLEAR_VALUE,
	_ []d3d12.DXGI_FORMAT,
) (d3d12ma.APIResource, error) {
	if err := d.takeResourceErr(); err != nil {
		return nil, err
	}
	return newResource1(desc), nil
}

func (d *Device) CreatePlacedResource2(
	_ d3d12ma.Heap,
	_ uint64,
	desc d3d12.D3D12_RESOURCE_DESC1,
	_ d3d12.D3D12_BARRIER_LAYOUT,
	_ []d3d12.DXGI_FORMAT,
) (d3d12ma.APIResource, error) {
	if err := d.takeResourceErr(); err != nil {
		return nil, err
	}
	return newResource1(desc), nil
}

func (d *Device) GetResourceAllocationInfo3(desc d3d12.D3D12_RESOURCE_DESC1, _ []d3d12.DXGI_FORMAT) d3d12.D3D12_RESOURCE_ALLOCATION_INFO {
	return allocationInfo(desc.Width, desc.Height, desc.DepthOrArraySize, desc.Alignment)
}

func (d *Device) DeviceRemovedReason() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.removedReason
}

func newResource(desc d3d12.D3D12_RESOURCE_DESC) *Resource {
	r := &Resource{desc: desc}
	r.refCount.Store(1)
	return r
}

func newResource1(desc d3d12.D3D12_RESOURCE_DESC1) *Resource {
	return newResource(d3d12.D3D12_RESOURCE_DESC{
		Dimension:        desc.Dimension,
		Alignment:        desc.Alignment,
		Width:            desc.Width,
		Height:           desc.Height,
		DepthOrArraySize: desc.DepthOrArraySize,
		MipLevels:        desc.MipLevels,
		Format:           desc.Format,
		SampleDesc:       desc.SampleDesc,
		Layout:           desc.Layout,
		Flags:            desc.Flags,
	})
}

// allocationInfo approximates what a real device's GetResourceAllocationInfo
// would return: the byte footprint of the descriptor rounded up to its
// alignment (or the default placement alignment if none was requested).
func allocationInfo(width uint64, height uint32, depthOrArraySize uint16, alignment uint64) d3d12.D3D12_RESOURCE_ALLOCATION_INFO {
	if alignment == 0 {
		alignment = defaultResourceAlignment
	}

	h := uint64(height)
	if h == 0 {
		h = 1
	}
	depth := uint64(depthOrArraySize)
	if depth == 0 {
		depth = 1
	}

	size := width * h * depth
	if rem := size % alignment; rem != 0 {
		size += alignment - rem
	}
	if size == 0 {
		size = alignment
	}

	return d3d12.D3D12_RESOURCE_ALLOCATION_INFO{SizeInBytes: size, Alignment: alignment}
}
