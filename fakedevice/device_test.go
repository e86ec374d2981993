package fakedevice_test

import (
	"errors"
	"testing"

	"github.com/gogpu/d3d12ma"
	"github.com/gogpu/d3d12ma/d3d12"
	"github.com/gogpu/d3d12ma/fakedevice"
)

func TestDevice_TierReporting(t *testing.T) {
	base := fakedevice.NewTier1Base()
	if base.Tier() != d3d12ma.DeviceTierBase {
		t.Errorf("NewTier1Base().Tier() = %v, want DeviceTierBase", base.Tier())
	}
	if base.ResourceHeapTier() != d3d12.D3D12_RESOURCE_HEAP_TIER_1 {
		t.Errorf("NewTier1Base().ResourceHeapTier() = %v, want tier 1", base.ResourceHeapTier())
	}

	d12 := fakedevice.NewTier2Device12()
	if d12.Tier() != d3d12ma.DeviceTierDevice12 {
		t.Errorf("NewTier2Device12().Tier() = %v, want DeviceTierDevice12", d12.Tier())
	}
	if d12.ResourceHeapTier() != d3d12.D3D12_RESOURCE_HEAP_TIER_2 {
		t.Errorf("NewTier2Device12().ResourceHeapTier() = %v, want tier 2", d12.ResourceHeapTier())
	}
}

func TestDevice_CreateHeap(t *testing.T) {
	d := fakedevice.NewTier2Device12()

	h, err := d.CreateHeap(d3d12.D3D12_HEAP_DESC{SizeInBytes: 4096})
	if err != nil {
		t.Fatalf("CreateHeap() error = %v", err)
	}
	if h == nil {
		t.Fatal("CreateHeap() returned a nil heap")
	}
	if d.HeapsCreated() != 1 {
		t.Errorf("HeapsCreated() = %d, want 1", d.HeapsCreated())
	}
}

func TestDevice_FailNextHeap(t *testing.T) {
	d := fakedevice.NewTier2Device12()
	injected := errors.New("injected failure")
	d.FailNextHeap(injected)

	if _, err := d.CreateHeap(d3d12.D3D12_HEAP_DESC{SizeInBytes: 4096}); !errors.Is(err, injected) {
		t.Errorf("CreateHeap() error = %v, want injected error", err)
	}

	// Only the next call fails; the one after succeeds normally.
	if _, err := d.CreateHeap(d3d12.D3D12_HEAP_DESC{SizeInBytes: 4096}); err != nil {
		t.Errorf("second CreateHeap() error = %v, want nil", err)
	}
}

func TestDevice_FailNextResource(t *testing.T) {
	d := fakedevice.NewTier2Device12()
	injected := errors.New("injected failure")
	d.FailNextResource(injected)

	desc := d3d12.D3D12_RESOURCE_DESC{Dimension: d3d12.D3D12_RESOURCE_DIMENSION_BUFFER, Width: 1024}
	props := d3d12.D3D12_HEAP_PROPERTIES{Type: d3d12.D3D12_HEAP_TYPE_DEFAULT}

	if _, err := d.CreateCommittedResource(props, d3d12.D3D12_HEAP_FLAG_NONE, desc, d3d12.D3D12_RESOURCE_STATE_COMMON, nil); !errors.Is(err, injected) {
		t.Errorf("CreateCommittedResource() error = %v, want injected error", err)
	}

	// Only the next call fails; the one after succeeds normally.
	if _, err := d.CreateCommittedResource(props, d3d12.D3D12_HEAP_FLAG_NONE, desc, d3d12.D3D12_RESOURCE_STATE_COMMON, nil); err != nil {
		t.Errorf("second CreateCommittedResource() error = %v, want nil", err)
	}
}

func TestDevice_GetResourceAllocationInfo_RoundsUpToAlignment(t *testing.T) {
	d := fakedevice.NewTier2Device12()

	info := d.GetResourceAllocationInfo(d3d12.D3D12_RESOURCE_DESC{
		Width:  100,
		Height: 1,
	})
	if info.SizeInBytes%info.Alignment != 0 {
		t.Errorf("SizeInBytes=%d not a multiple of Alignment=%d", info.SizeInBytes, info.Alignment)
	}
	if info.SizeInBytes < 100 {
		t.Errorf("SizeInBytes=%d smaller than requested Width=100", info.SizeInBytes)
	}
}

func TestDevice_DeviceRemovedReason(t *testing.T) {
	d := fakedevice.NewTier2Device12()
	if d.DeviceRemovedReason() != nil {
		t.Errorf("DeviceRemovedReason() = %v, want nil before injection", d.DeviceRemovedReason())
	}

	removed := errors.New("device removed: reset")
	d.SetDeviceRemovedReason(removed)
	if !errors.Is(d.DeviceRemovedReason(), removed) {
		t.Errorf("DeviceRemovedReason() = %v, want %v", d.DeviceRemovedReason(), removed)
	}
}

func TestHeap_ReleaseDecrementsRefcount(t *testing.T) {
	d := fakedevice.NewTier2Device12()
	h, err := d.CreateHeap(d3d12.D3D12_HEAP_DESC{SizeInBytes: 1024})
	if err != nil {
		t.Fatalf("CreateHeap() error = %v", err)
	}
	fh := h.(*fakedevice.Heap)
	if fh.Size() != 1024 {
		t.Errorf("Size() = %d, want 1024", fh.Size())
	}
	if got := h.Release(); got != 0 {
		t.Errorf("Release() = %d, want 0", got)
	}
}
