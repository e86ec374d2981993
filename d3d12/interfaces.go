// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package d3d12

// Vtable layouts below mirror the real COM ABI slot-for-slot, including
// methods this package never calls, because the offset of every method this
// package does call depends on every slot before it existing in order.

// ID3D12Heap is a heap object resources can be placed into.
type ID3D12Heap struct {
	vtbl *id3d12HeapVtbl
}

type id3d12HeapVtbl struct {
	// IUnknown
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr

	// ID3D12Object
	GetPrivateData          uintptr
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	SetName                 uintptr

	// ID3D12DeviceChild
	GetDevice uintptr

	// ID3D12Heap
	GetDesc uintptr
}

// ID3D12Resource is a committed or placed GPU resource.
type ID3D12Resource struct {
	vtbl *id3d12ResourceVtbl
}

type id3d12ResourceVtbl struct {
	// IUnknown
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr

	// ID3D12Object
	GetPrivateData          uintptr
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	SetName                 uintptr

	// ID3D12DeviceChild
	GetDevice uintptr

	// ID3D12Resource
	Map                  uintptr
	Unmap                uintptr
	GetDesc              uintptr
	GetGPUVirtualAddress uintptr
	WriteToSubresource   uintptr
	ReadFromSubresource  uintptr
	GetHeapProperties    uintptr
}

// ID3D12Device is the base device tier: legacy committed/placed resource
// creation and resource-state barriers only.
type ID3D12Device struct {
	vtbl *id3d12DeviceVtbl
}

type id3d12DeviceVtbl struct {
	// IUnknown
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr

	// ID3D12Object
	GetPrivateData          uintptr
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	SetName                 uintptr

	// ID3D12Device
	GetNodeCount                      uintptr
	CreateCommandQueue                uintptr
	CreateCommandAllocator            uintptr
	CreateGraphicsPipelineState       uintptr
	CreateComputePipelineState        uintptr
	CreateCommandList                 uintptr
	CheckFeatureSupport               uintptr
	CreateDescriptorHeap              uintptr
	GetDescriptorHandleIncrementSize  uintptr
	CreateRootSignature               uintptr
	CreateConstantBufferView          uintptr
	CreateShaderResourceView          uintptr
	CreateUnorderedAccessView         uintptr
	CreateRenderTargetView            uintptr
	CreateDepthStencilView            uintptr
	CreateSampler                     uintptr
	CopyDescriptors                   uintptr
	CopyDescriptorsSimple             uintptr
	GetResourceAllocationInfo         uintptr
	GetCustomHeapProperties           uintptr
	CreateCommittedResource           uintptr
	CreateHeap                        uintptr
	CreatePlacedResource              uintptr
	CreateReservedResource            uintptr
	CreateSharedHandle                uintptr
	OpenSharedHandle                  uintptr
	OpenSharedHandleByName            uintptr
	MakeResident                      uintptr
	Evict                             uintptr
	CreateFence                       uintptr
	GetDeviceRemovedReason            uintptr
	GetCopyableFootprints             uintptr
	CreateQueryHeap                   uintptr
	SetStablePowerState               uintptr
	CreateCommandSignature            uintptr
	GetResourceTiling                 uintptr
	GetAdapterLuid                    uintptr
}

// ID3D12Device10 extends ID3D12Device (through the intervening Device1-9
// tiers, whose methods this package never calls and so does not name) with
// enhanced-barrier committed/placed resource creation.
type ID3D12Device10 struct {
	vtbl *id3d12Device10Vtbl
}

type id3d12Device10Vtbl struct {
	id3d12DeviceVtbl

	// Device1 through Device9 slots this package has no use for but that
	// occupy real vtable positions between Device and Device10.
	_reserved [41]uintptr

	// ID3D12Device10
	CreateCommittedResource3 uintptr
	CreatePlacedResource2    uintptr
	CreateReservedResource2  uintptr
}

// ID3D12Device12 extends ID3D12Device10 with a castable-format-aware
// allocation-info query. Device11 contributes no method this allocator
// needs, so only one reserved slot separates the two.
type ID3D12Device12 struct {
	vtbl *id3d12Device12Vtbl
}

type id3d12Device12Vtbl struct {
	id3d12Device10Vtbl

	_reservedDevice11 [1]uintptr

	// ID3D12Device12
	GetResourceAllocationInfo3 uintptr
}
