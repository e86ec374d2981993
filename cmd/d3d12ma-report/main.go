// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command d3d12ma-report drives the allocator over the in-memory fake
// device and prints a capacity/allocation report, for smoke-testing the
// allocator's bookkeeping on a host with no D3D12 adapter.
//
// Usage:
//
//	d3d12ma-report -buffers 8 -textures 4 -size 65536
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gogpu/d3d12ma"
	"github.com/gogpu/d3d12ma/d3d12"
	"github.com/gogpu/d3d12ma/fakedevice"
)

var (
	numBuffers  = flag.Int("buffers", 8, "number of placed buffer allocations to create")
	numTextures = flag.Int("textures", 4, "number of committed texture resources to create")
	bufferSize  = flag.Uint64("size", 64*1024, "byte size of each buffer allocation")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "d3d12ma-report: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	device := fakedevice.NewTier2Device12()

	alloc, err := d3d12ma.New(d3d12ma.AllocatorDescriptor{
		Device:        device,
		DebugSettings: d3d12ma.AllocatorDebugSettings{LogLeaksOnShutdown: true},
	})
	if err != nil {
		return fmt.Errorf("create allocator: %w", err)
	}
	defer alloc.Close()

	fmt.Printf("Created allocator over fake Device12 device\n\n")

	var placed []d3d12ma.Allocation
	for i := 0; i < *numBuffers; i++ {
		a, err := alloc.Allocate(d3d12ma.AllocationCreateDesc{
			Name:             fmt.Sprintf("buffer-%d", i),
			Location:         d3d12ma.GpuOnly,
			Size:             *bufferSize,
			Alignment:        256,
			ResourceCategory: d3d12ma.ResourceCategoryBuffer,
		})
		if err != nil {
			return fmt.Errorf("allocate buffer %d: %w", i, err)
		}
		placed = append(placed, a)
	}
	fmt.Printf("Allocated %d placed buffers of %d bytes each\n", *numBuffers, *bufferSize)

	var committed []*d3d12ma.Resource
	for i := 0; i < *numTextures; i++ {
		r, err := alloc.CreateResource(d3d12ma.ResourceCreateDesc{
			Name:             fmt.Sprintf("texture-%d", i),
			Location:         d3d12ma.GpuOnly,
			ResourceCategory: d3d12ma.ResourceCategoryOtherTexture,
			ResourceType:     d3d12ma.Committed{HeapProperties: d3d12.D3D12_HEAP_PROPERTIES{Type: d3d12.D3D12_HEAP_TYPE_DEFAULT}},
			ResourceDesc: d3d12.D3D12_RESOURCE_DESC{
				Dimension:        d3d12.D3D12_RESOURCE_DIMENSION_TEXTURE2D,
				Width:            512,
				Height:           512,
				DepthOrArraySize: 1,
				MipLevels:        1,
				Format:           d3d12.DXGI_FORMAT_R8G8B8A8_UNORM,
				SampleDesc:       d3d12.DXGI_SAMPLE_DESC{Count: 1},
			},
			InitialStateOrLayout: d3d12ma.ResourceState{State: d3d12.D3D12_RESOURCE_STATE_COMMON},
		})
		if err != nil {
			return fmt.Errorf("create committed texture %d: %w", i, err)
		}
		committed = append(committed, r)
	}
	fmt.Printf("Created %d committed 512x512 RGBA8 textures\n\n", *numTextures)

	printReport(alloc.GenerateReport())

	for i := 0; i < len(placed)/2; i++ {
		if err := alloc.Free(placed[i]); err != nil {
			return fmt.Errorf("free buffer %d: %w", i, err)
		}
	}
	for i := 0; i < len(committed)/2; i++ {
		if err := alloc.FreeResource(committed[i]); err != nil {
			return fmt.Errorf("free texture %d: %w", i, err)
		}
	}
	fmt.Printf("Freed half of each set\n\n")

	printReport(alloc.GenerateReport())

	for i := len(placed) / 2; i < len(placed); i++ {
		if err := alloc.Free(placed[i]); err != nil {
			return fmt.Errorf("free buffer %d: %w", i, err)
		}
	}
	for i := len(committed) / 2; i < len(committed); i++ {
		if err := alloc.FreeResource(committed[i]); err != nil {
			return fmt.Errorf("free texture %d: %w", i, err)
		}
	}

	return nil
}

func printReport(report d3d12ma.AllocatorReport) {
	fmt.Printf("Report: %d live allocations across %d blocks, %d/%d bytes used\n",
		len(report.Allocations), len(report.Blocks), report.TotalAllocatedBytes, report.TotalCapacityBytes)
	for _, b := range report.Blocks {
		fmt.Printf("  block: %d bytes, %d allocations\n", b.Size, b.AllocationCount)
	}
	for _, a := range report.Allocations {
		fmt.Printf("    %-16s offset=%-10d size=%d\n", a.Name, a.Offset, a.Size)
	}
	fmt.Println()
}
