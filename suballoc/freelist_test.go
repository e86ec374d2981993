package suballoc

import (
	"errors"
	"testing"
)

func TestFreeListAllocator_AllocateFree(t *testing.T) {
	f := NewFreeListAllocator(1024)

	offset, chunkID, err := f.Allocate(256, 64, AllocationTypeLinear, 0, "a")
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if offset != 0 {
		t.Errorf("offset = %d, want 0", offset)
	}
	if f.IsEmpty() {
		t.Fatal("allocator should not be empty after allocate")
	}

	if err := f.Free(chunkID); err != nil {
		t.Fatalf("Free() error = %v", err)
	}
	if !f.IsEmpty() {
		t.Fatal("allocator should be empty after free")
	}
}

func TestFreeListAllocator_AlignmentRespected(t *testing.T) {
	f := NewFreeListAllocator(1024)

	// Consume 10 bytes so the next natural offset (10) is unaligned.
	if _, _, err := f.Allocate(10, 1, AllocationTypeLinear, 0, "lead"); err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}

	offset, _, err := f.Allocate(16, 64, AllocationTypeLinear, 0, "aligned")
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if offset%64 != 0 {
		t.Errorf("offset = %d, not aligned to 64", offset)
	}
}

func TestFreeListAllocator_NonOverlapping(t *testing.T) {
	f := NewFreeListAllocator(4096)

	type live struct{ offset, size uint64 }
	var allocs []live
	for i := 0; i < 8; i++ {
		offset, _, err := f.Allocate(128, 16, AllocationTypeLinear, 0, "chunk")
		if err != nil {
			t.Fatalf("Allocate() %d error = %v", i, err)
		}
		allocs = append(allocs, live{offset, 128})
	}

	for i := range allocs {
		for j := range allocs {
			if i == j {
				continue
			}
			a, b := allocs[i], allocs[j]
			if a.offset < b.offset+b.size && b.offset < a.offset+a.size {
				t.Fatalf("allocations %d and %d overlap: %+v, %+v", i, j, a, b)
			}
		}
	}
}

func TestFreeListAllocator_OutOfMemory(t *testing.T) {
	f := NewFreeListAllocator(256)
	if _, _, err := f.Allocate(512, 1, AllocationTypeLinear, 0, "too-big"); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("Allocate() error = %v, want ErrOutOfMemory", err)
	}
}

func TestFreeListAllocator_CoalescesAdjacentFreedRanges(t *testing.T) {
	f := NewFreeListAllocator(256)

	_, c1, err := f.Allocate(64, 1, AllocationTypeLinear, 0, "a")
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	_, c2, err := f.Allocate(64, 1, AllocationTypeLinear, 0, "b")
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	_, c3, err := f.Allocate(64, 1, AllocationTypeLinear, 0, "c")
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}

	if err := f.Free(c1); err != nil {
		t.Fatalf("Free(c1) error = %v", err)
	}
	if err := f.Free(c2); err != nil {
		t.Fatalf("Free(c2) error = %v", err)
	}
	if err := f.Free(c3); err != nil {
		t.Fatalf("Free(c3) error = %v", err)
	}

	// Coalescing back to one span should allow a request for the full
	// original 192 bytes used by a, b, c to succeed in one allocation.
	if _, _, err := f.Allocate(192, 1, AllocationTypeLinear, 0, "reclaimed"); err != nil {
		t.Errorf("Allocate() after coalesce error = %v, want success", err)
	}
}

func TestFreeListAllocator_DoubleFreeRejected(t *testing.T) {
	f := NewFreeListAllocator(64)
	_, chunkID, err := f.Allocate(64, 1, AllocationTypeLinear, 0, "x")
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if err := f.Free(chunkID); err != nil {
		t.Fatalf("first Free() error = %v", err)
	}
	var internal *InternalError
	if err := f.Free(chunkID); !errors.As(err, &internal) {
		t.Errorf("second Free() error = %v, want *InternalError", err)
	}
}

func TestFreeListAllocator_SlotReuseAfterFree(t *testing.T) {
	f := NewFreeListAllocator(256)

	_, c1, err := f.Allocate(64, 1, AllocationTypeLinear, 0, "a")
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if err := f.Free(c1); err != nil {
		t.Fatalf("Free() error = %v", err)
	}

	_, c2, err := f.Allocate(64, 1, AllocationTypeLinear, 0, "b")
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}

	if c1.Index() != c2.Index() {
		t.Errorf("expected slot reuse: c1.Index()=%d c2.Index()=%d", c1.Index(), c2.Index())
	}
	if c1.Generation() == c2.Generation() {
		t.Error("expected generation to change across slot reuse")
	}

	if err := f.Free(c1); err == nil {
		t.Error("Free() of stale chunk id succeeded, want error")
	}
}

func TestFreeListAllocator_RenameAllocation(t *testing.T) {
	f := NewFreeListAllocator(64)
	_, chunkID, err := f.Allocate(64, 1, AllocationTypeLinear, 0, "old-name")
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if err := f.RenameAllocation(chunkID, "new-name"); err != nil {
		t.Fatalf("RenameAllocation() error = %v", err)
	}
	reports := f.ReportAllocations()
	if len(reports) != 1 || reports[0].Name != "new-name" {
		t.Errorf("ReportAllocations() = %+v, want name = new-name", reports)
	}
}

func TestFreeListAllocator_SupportsGeneralAllocations(t *testing.T) {
	f := NewFreeListAllocator(1)
	if !f.SupportsGeneralAllocations() {
		t.Error("SupportsGeneralAllocations() = false, want true")
	}
}
