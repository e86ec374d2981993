package d3d12ma_test

import (
	"errors"
	"testing"

	"github.com/gogpu/d3d12ma"
	"github.com/gogpu/d3d12ma/fakedevice"
)

func newTestAllocator(t *testing.T, device *fakedevice.Device) *d3d12ma.Allocator {
	t.Helper()
	alloc, err := d3d12ma.New(d3d12ma.AllocatorDescriptor{Device: device})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = alloc.Close() })
	return alloc
}

func TestNew_RejectsNilDevice(t *testing.T) {
	if _, err := d3d12ma.New(d3d12ma.AllocatorDescriptor{}); err == nil {
		t.Fatal("New() with nil Device succeeded, want error")
	}
}

func TestNew_AddRefsDevice(t *testing.T) {
	device := fakedevice.NewTier2Device12()
	before := device.AddRef()
	device.Release()

	alloc := newTestAllocator(t, device)
	_ = alloc

	after := device.AddRef()
	device.Release()
	if after != before+1 {
		t.Errorf("refcount after New() = %d, want %d", after, before+1)
	}
}

func TestAllocate_ZeroSizeRejected(t *testing.T) {
	alloc := newTestAllocator(t, fakedevice.NewTier2Device12())
	_, err := alloc.Allocate(d3d12ma.AllocationCreateDesc{Size: 0, Alignment: 256})
	if !errors.Is(err, d3d12ma.ErrInvalidAllocationCreateDesc) {
		t.Errorf("Allocate() error = %v, want ErrInvalidAllocationCreateDesc", err)
	}
}

func TestAllocate_NonPowerOfTwoAlignmentRejected(t *testing.T) {
	alloc := newTestAllocator(t, fakedevice.NewTier2Device12())
	_, err := alloc.Allocate(d3d12ma.AllocationCreateDesc{Size: 1024, Alignment: 3})
	if !errors.Is(err, d3d12ma.ErrInvalidAllocationCreateDesc) {
		t.Errorf("Allocate() error = %v, want ErrInvalidAllocationCreateDesc", err)
	}
}

func TestAllocateFree_RoundTripsCapacity(t *testing.T) {
	alloc := newTestAllocator(t, fakedevice.NewTier2Device12())

	a, err := alloc.Allocate(d3d12ma.AllocationCreateDesc{
		Name: "a", Location: d3d12ma.GpuOnly, Size: 4096, Alignment: 256,
		ResourceCategory: d3d12ma.ResourceCategoryBuffer,
	})
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if a.IsNull() {
		t.Fatal("Allocate() returned a null allocation")
	}
	if capacity := alloc.Capacity(); capacity == 0 {
		t.Error("Capacity() = 0 after allocate, want > 0")
	}

	capacityBeforeFree := alloc.Capacity()

	if err := alloc.Free(a); err != nil {
		t.Fatalf("Free() error = %v", err)
	}
	// The sole empty general block is retained rather than destroyed, so
	// capacity is unchanged by freeing the only live allocation in it.
	if capacity := alloc.Capacity(); capacity != capacityBeforeFree {
		t.Errorf("Capacity() = %d after freeing the only allocation, want %d (sole empty block retained)", capacity, capacityBeforeFree)
	}
}

func TestAllocate_AllocationHoldsItsOwnHeapReference(t *testing.T) {
	alloc := newTestAllocator(t, fakedevice.NewTier2Device12())

	a, err := alloc.Allocate(d3d12ma.AllocationCreateDesc{
		Name: "ref", Location: d3d12ma.GpuOnly, Size: 4096, Alignment: 256,
		ResourceCategory: d3d12ma.ResourceCategoryBuffer,
	})
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}

	fh := a.Heap().(*fakedevice.Heap)
	if got := fh.RefCount(); got != 2 {
		t.Errorf("heap RefCount() = %d while allocation is live, want 2 (block slot + allocation)", got)
	}

	if err := alloc.Free(a); err != nil {
		t.Fatalf("Free() error = %v", err)
	}
	// The sole general block is retained, so only the allocation's own
	// reference drops.
	if got := fh.RefCount(); got != 1 {
		t.Errorf("heap RefCount() = %d after free, want 1 (retained block slot)", got)
	}
}

func TestFree_NullAllocationIsNoOp(t *testing.T) {
	alloc := newTestAllocator(t, fakedevice.NewTier2Device12())
	if err := alloc.Free(d3d12ma.Allocation{}); err != nil {
		t.Errorf("Free() of null allocation error = %v, want nil", err)
	}
}

func TestAllocate_NoCompatibleMemoryType(t *testing.T) {
	alloc := newTestAllocator(t, fakedevice.NewTier2Device12())
	_, err := alloc.Allocate(d3d12ma.AllocationCreateDesc{
		Name: "x", Location: d3d12ma.MemoryLocation(99), Size: 1024, Alignment: 256,
	})
	if !errors.Is(err, d3d12ma.ErrNoCompatibleMemoryTypeFound) {
		t.Errorf("Allocate() error = %v, want ErrNoCompatibleMemoryTypeFound", err)
	}
}

func TestAllocate_NonOverlappingWithinABlock(t *testing.T) {
	alloc := newTestAllocator(t, fakedevice.NewTier2Device12())

	type live struct{ offset, size uint64 }
	var allocs []d3d12ma.Allocation
	var ranges []live
	for i := 0; i < 16; i++ {
		a, err := alloc.Allocate(d3d12ma.AllocationCreateDesc{
			Name: "chunk", Location: d3d12ma.GpuOnly, Size: 4096, Alignment: 256,
			ResourceCategory: d3d12ma.ResourceCategoryBuffer,
		})
		if err != nil {
			t.Fatalf("Allocate() %d error = %v", i, err)
		}
		allocs = append(allocs, a)
		ranges = append(ranges, live{a.Offset(), a.Size()})
	}

	for i := range ranges {
		for j := range ranges {
			if i == j || allocs[i].Heap() != allocs[j].Heap() {
				continue
			}
			a, b := ranges[i], ranges[j]
			if a.offset < b.offset+b.size && b.offset < a.offset+a.size {
				t.Fatalf("allocations %d and %d overlap within the same heap: %+v, %+v", i, j, a, b)
			}
		}
	}
}

func TestRenameAllocation(t *testing.T) {
	alloc := newTestAllocator(t, fakedevice.NewTier2Device12())
	a, err := alloc.Allocate(d3d12ma.AllocationCreateDesc{
		Name: "before", Location: d3d12ma.GpuOnly, Size: 1024, Alignment: 256,
		ResourceCategory: d3d12ma.ResourceCategoryBuffer,
	})
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}

	if err := alloc.RenameAllocation(&a, "after"); err != nil {
		t.Fatalf("RenameAllocation() error = %v", err)
	}
	if a.Name() != "after" {
		t.Errorf("Name() = %q, want %q", a.Name(), "after")
	}

	report := alloc.GenerateReport()
	found := false
	for _, r := range report.Allocations {
		if r.Name == "after" {
			found = true
		}
	}
	if !found {
		t.Error("GenerateReport() did not reflect the renamed allocation")
	}
}

func TestRenameAllocation_NullIsNoOp(t *testing.T) {
	alloc := newTestAllocator(t, fakedevice.NewTier2Device12())
	a := d3d12ma.Allocation{}
	if err := alloc.RenameAllocation(&a, "anything"); err != nil {
		t.Errorf("RenameAllocation() on null allocation error = %v, want nil", err)
	}
}

func TestGenerateReport_ConsistentWithCapacity(t *testing.T) {
	alloc := newTestAllocator(t, fakedevice.NewTier2Device12())

	for i := 0; i < 4; i++ {
		if _, err := alloc.Allocate(d3d12ma.AllocationCreateDesc{
			Name: "x", Location: d3d12ma.GpuOnly, Size: 1024, Alignment: 256,
			ResourceCategory: d3d12ma.ResourceCategoryBuffer,
		}); err != nil {
			t.Fatalf("Allocate() error = %v", err)
		}
	}

	report := alloc.GenerateReport()
	if len(report.Allocations) != 4 {
		t.Errorf("len(Allocations) = %d, want 4", len(report.Allocations))
	}
	if report.TotalCapacityBytes != alloc.Capacity() {
		t.Errorf("TotalCapacityBytes = %d, want Capacity() = %d", report.TotalCapacityBytes, alloc.Capacity())
	}
	var blockSum int
	for _, b := range report.Blocks {
		blockSum += b.AllocationCount
	}
	if blockSum != len(report.Allocations) {
		t.Errorf("sum of per-block AllocationCount = %d, want %d", blockSum, len(report.Allocations))
	}
}

func TestFree_RetiresOneOfTwoEmptyGeneralBlocks(t *testing.T) {
	device := fakedevice.NewTier2Device12()
	alloc := newTestAllocator(t, device)

	blockSize := d3d12ma.DefaultAllocationSizes().DeviceMemblockSize

	a, err := alloc.Allocate(d3d12ma.AllocationCreateDesc{
		Name: "first", Location: d3d12ma.GpuOnly, Size: blockSize, Alignment: 256,
		ResourceCategory: d3d12ma.ResourceCategoryBuffer,
	})
	if err != nil {
		t.Fatalf("Allocate() first error = %v", err)
	}
	b, err := alloc.Allocate(d3d12ma.AllocationCreateDesc{
		Name: "second", Location: d3d12ma.GpuOnly, Size: 256, Alignment: 256,
		ResourceCategory: d3d12ma.ResourceCategoryBuffer,
	})
	if err != nil {
		t.Fatalf("Allocate() second error = %v", err)
	}

	if device.HeapsCreated() != 2 {
		t.Fatalf("HeapsCreated() = %d, want 2 before any free", device.HeapsCreated())
	}

	capacityWithTwoBlocks := alloc.Capacity()

	if err := alloc.Free(a); err != nil {
		t.Fatalf("Free(a) error = %v", err)
	}

	if capacity := alloc.Capacity(); capacity >= capacityWithTwoBlocks {
		t.Errorf("Capacity() = %d after emptying one of two blocks, want less than %d (one block retired)", capacity, capacityWithTwoBlocks)
	}

	if err := alloc.Free(b); err != nil {
		t.Fatalf("Free(b) error = %v", err)
	}
}

func TestAllocate_OversizeRequestGetsDedicatedBlock(t *testing.T) {
	alloc := newTestAllocator(t, fakedevice.NewTier2Device12())
	huge := d3d12ma.DefaultAllocationSizes().DeviceMemblockSize + 1

	a, err := alloc.Allocate(d3d12ma.AllocationCreateDesc{
		Name: "huge", Location: d3d12ma.GpuOnly, Size: huge, Alignment: 256,
		ResourceCategory: d3d12ma.ResourceCategoryBuffer,
	})
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if a.Size() != huge {
		t.Errorf("Size() = %d, want %d", a.Size(), huge)
	}
}

func TestAllocate_RecoversFromFullBlockDuringPooledScan(t *testing.T) {
	device := fakedevice.NewTier2Device12()
	alloc := newTestAllocator(t, device)

	blockSize := d3d12ma.DefaultAllocationSizes().DeviceMemblockSize
	chunk := blockSize / 4

	var allocs []d3d12ma.Allocation
	for i := 0; i < 4; i++ {
		a, err := alloc.Allocate(d3d12ma.AllocationCreateDesc{
			Name: "fill", Location: d3d12ma.GpuOnly, Size: chunk, Alignment: 256,
			ResourceCategory: d3d12ma.ResourceCategoryBuffer,
		})
		if err != nil {
			t.Fatalf("Allocate() %d error = %v", i, err)
		}
		allocs = append(allocs, a)
	}

	if _, err := alloc.Allocate(d3d12ma.AllocationCreateDesc{
		Name: "overflow", Location: d3d12ma.GpuOnly, Size: chunk, Alignment: 256,
		ResourceCategory: d3d12ma.ResourceCategoryBuffer,
	}); err != nil {
		t.Fatalf("Allocate() into a freshly grown second block error = %v", err)
	}

	if device.HeapsCreated() < 2 {
		t.Errorf("HeapsCreated() = %d, want at least 2 (first block full)", device.HeapsCreated())
	}
	_ = allocs
}
