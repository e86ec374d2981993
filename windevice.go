//go:build windows

package d3d12ma

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/d3d12ma/d3d12"
)

// windowsHeap wraps a raw COM heap pointer to satisfy the Heap interface.
type windowsHeap struct{ h *d3d12.ID3D12Heap }

func (w windowsHeap) AddRef() uint32  { return w.h.AddRef() }
func (w windowsHeap) Release() uint32 { return w.h.Release() }

// windowsResource wraps a raw COM resource pointer to satisfy APIResource.
type windowsResource struct{ r *d3d12.ID3D12Resource }

func (w windowsResource) Release() uint32 { return w.r.Release() }

// WindowsDevice is the concrete Device backed by a live D3D12 adapter. It
// probes its own tier and resource-heap tier once at construction, the way
// hal/dx12/device.go's newDevice() and hal/dx12/adapter.go's
// queryD3D12Options probe theirs.
type WindowsDevice struct {
	base *d3d12.ID3D12Device
	d10  *d3d12.ID3D12Device10
	d12  *d3d12.ID3D12Device12

	tier     DeviceTier
	heapTier d3d12.D3D12_RESOURCE_HEAP_TIER
}

// NewWindowsDevice wraps a base D3D12 device, querying upward for the
// Device10/Device12 interfaces and the device's resource-heap tier.
func NewWindowsDevice(base *d3d12.ID3D12Device) *WindowsDevice {
	wd := &WindowsDevice{
		base:     base,
		tier:     DeviceTierBase,
		heapTier: d3d12.D3D12_RESOURCE_HEAP_TIER_1,
	}

	var opts d3d12.D3D12_FEATURE_DATA_D3D12_OPTIONS
	if err := base.CheckFeatureSupport(d3d12.D3D12_FEATURE_D3D12_OPTIONS, unsafe.Pointer(&opts), uint32(unsafe.Sizeof(opts))); err == nil {
		wd.heapTier = d3d12.D3D12_RESOURCE_HEAP_TIER(opts.ResourceHeapTier)
	}
	// CheckFeatureSupport failure is treated conservatively as tier 1,
	// matching hal/dx12/adapter.go's fallback.

	if d10, ok := base.AsDevice10(); ok {
		wd.d10 = d10
		wd.tier = DeviceTierDevice10
		if d12, ok := d10.AsDevice12(); ok {
			wd.d12 = d12
			wd.tier = DeviceTierDevice12
		}
	}

	return wd
}

func (d *WindowsDevice) AddRef() uint32  { return d.base.AddRef() }
func (d *WindowsDevice) Release() uint32 { return d.base.Release() }

func (d *WindowsDevice) Tier() DeviceTier                                 { return d.tier }
func (d *WindowsDevice) ResourceHeapTier() d3d12.D3D12_RESOURCE_HEAP_TIER { return d.heapTier }

func (d *WindowsDevice) CreateHeap(desc d3d12.D3D12_HEAP_DESC) (Heap, error) {
	h, err := d.base.CreateHeap(&desc)
	if err != nil {
		return nil, err
	}
	return windowsHeap{h}, nil
}

func (d *WindowsDevice) CreateCommittedResource(
	heapProperties d3d12.D3D12_HEAP_PROPERTIES,
	heapFlags d3d12.D3D12_HEAP_FLAGS,
	desc d3d12.D3D12_RESOURCE_DESC,
	initialState d3d12.D3D12_RESOURCE_STATES,
	clearValue *d3d12.D3D12_CLEAR_VALUE,
) (APIResource, error) {
	r, err := d.base.CreateCommittedResource(&heapProperties, heapFlags, &desc, initialState, clearValue)
	if err != nil {
		return nil, err
	}
	return windowsResource{r}, nil
}

func (d *WindowsDevice) CreatePlacedResource(
	heap Heap,
	heapOffset uint64,
	desc d3d12.D3D12_RESOURCE_DESC,
	initialState d3d12.D3D12_RESOURCE_STATES,
	clearValue *d3d12.D3D12_CLEAR_VALUE,
) (APIResource, error) {
	wh, ok := heap.(windowsHeap)
	if !ok {
		return nil, fmt.Errorf("d3d12ma: heap was not created by this Device")
	}
	r, err := d.base.CreatePlacedResource(wh.h, heapOffset, &desc, initialState, clearValue)
	if err != nil {
		return nil, err
	}
	return windowsResource{r}, nil
}

func (d *WindowsDevice) GetResourceAllocationInfo(desc d3d12.D3D12_RESOURCE_DESC) d3d12.D3D12_RESOURCE_ALLOCATION_INFO {
	return d.base.GetResourceAllocationInfo(0, 1, &desc)
}

func (d *WindowsDevice) CreateCommittedResource3(
	heapProperties d3d12.D3D12_HEAP_PROPERTIES,
	heapFlags d3d12.D3D12_HEAP_FLAGS,
	desc d3d12.D3D12_RESOURCE_DESC1,
	initialLayout d3d12.D3D12_BARRIER_LAYOUT,
	clearValue *d3d12.D3D12_CLEAR_VALUE,
	castableFormats []d3d12.DXGI_FORMAT,
) (APIResource, error) {
	if d.d10 == nil {
		return nil, fmt.Errorf("d3d12ma: device does not support CreateCommittedResource3")
	}
	r, err := d.d10.CreateCommittedResource3(&heapProperties, heapFlags, &desc, initialLayout, clearValue, uint32(len(castableFormats)), formatsPtr(castableFormats))
	if err != nil {
		return nil, err
	}
	return windowsResource{r}, nil
}

func (d *WindowsDevice) CreatePlacedResource2(
	heap Heap,
	heapOffset uint64,
	desc d3d12.D3D12_RESOURCE_DESC1,
	initialLayout d3d12.D3D12_BARRIER_LAYOUT,
	castableFormats []d3d12.DXGI_FORMAT,
) (APIResource, error) {
	if d.d10 == nil {
		return nil, fmt.Errorf("d3d12ma: device does not support CreatePlacedResource2")
	}
	wh, ok := heap.(windowsHeap)
	if !ok {
		return nil, fmt.Errorf("d3d12ma: heap was not created by this Device")
	}
	r, err := d.d10.CreatePlacedResource2(wh.h, heapOffset, &desc, initialLayout, uint32(len(castableFormats)), formatsPtr(castableFormats))
	if err != nil {
		return nil, err
	}
	return windowsResource{r}, nil
}

func (d *WindowsDevice) GetResourceAllocationInfo3(desc d3d12.D3D12_RESOURCE_DESC1, castableFormats []d3d12.DXGI_FORMAT) d3d12.D3D12_RESOURCE_ALLOCATION_INFO {
	if d.d12 == nil {
		// Should never be reached: Allocator only calls this after gating
		// on Tier() == DeviceTierDevice12.
		return d.GetResourceAllocationInfo(d3d12.D3D12_RESOURCE_DESC{
			Dimension: desc.Dimension, Alignment: desc.Alignment, Width: desc.Width,
			Height: desc.Height, DepthOrArraySize: desc.DepthOrArraySize, MipLevels: desc.MipLevels,
			Format: desc.Format, SampleDesc: desc.SampleDesc, Layout: desc.Layout, Flags: desc.Flags,
		})
	}
	return d.d12.GetResourceAllocationInfo3(0, &desc, uint32(len(castableFormats)), formatsPtr(castableFormats))
}

func (d *WindowsDevice) DeviceRemovedReason() error {
	switch {
	case d.d12 != nil:
		return d.d12.GetDeviceRemovedReason()
	case d.d10 != nil:
		return d.d10.GetDeviceRemovedReason()
	default:
		return d.base.GetDeviceRemovedReason()
	}
}

func formatsPtr(formats []d3d12.DXGI_FORMAT) *d3d12.DXGI_FORMAT {
	if len(formats) == 0 {
		return nil
	}
	return &formats[0]
}
