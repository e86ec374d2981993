// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package d3d12

// D3D12_HEAP_PROPERTIES describes a heap's CPU visibility and residency.
type D3D12_HEAP_PROPERTIES struct {
	Type                 D3D12_HEAP_TYPE
	CPUPageProperty      D3D12_CPU_PAGE_PROPERTY
	MemoryPoolPreference D3D12_MEMORY_POOL
	CreationNodeMask     uint32
	VisibleNodeMask      uint32
}

// D3D12_HEAP_DESC describes a heap to be created.
type D3D12_HEAP_DESC struct {
	SizeInBytes uint64
	Properties  D3D12_HEAP_PROPERTIES
	Alignment   uint64
	Flags       D3D12_HEAP_FLAGS
}

// DXGI_SAMPLE_DESC describes multi-sampling parameters.
type DXGI_SAMPLE_DESC struct {
	Count   uint32
	Quality uint32
}

// D3D12_RESOURCE_DESC describes a resource (v0 form).
type D3D12_RESOURCE_DESC struct {
	Dimension        D3D12_RESOURCE_DIMENSION
	Alignment        uint64
	Width            uint64
	Height           uint32
	DepthOrArraySize uint16
	MipLevels        uint16
	Format           DXGI_FORMAT
	SampleDesc       DXGI_SAMPLE_DESC
	Layout           D3D12_TEXTURE_LAYOUT
	Flags            D3D12_RESOURCE_FLAGS
}

// D3D12_MIP_REGION describes sampler feedback mip region dimensions. Added
// in the v1 resource descriptor; always zero for resources that do not use
// sampler feedback, which is every resource this allocator creates.
type D3D12_MIP_REGION struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

// D3D12_RESOURCE_DESC1 is the Device12-era resource descriptor: identical
// to D3D12_RESOURCE_DESC plus a trailing SamplerFeedbackMipRegion field.
type D3D12_RESOURCE_DESC1 struct {
	Dimension                D3D12_RESOURCE_DIMENSION
	Alignment                uint64
	Width                    uint64
	Height                   uint32
	DepthOrArraySize         uint16
	MipLevels                uint16
	Format                   DXGI_FORMAT
	SampleDesc               DXGI_SAMPLE_DESC
	Layout                   D3D12_TEXTURE_LAYOUT
	Flags                    D3D12_RESOURCE_FLAGS
	SamplerFeedbackMipRegion D3D12_MIP_REGION
}

// ResourceDesc1FromDesc bridges a v0 resource descriptor to the v1 form
// Device10+ calls require, copying every field verbatim and zeroing the new
// SamplerFeedbackMipRegion field - the only one v0 lacks.
func ResourceDesc1FromDesc(d D3D12_RESOURCE_DESC) D3D12_RESOURCE_DESC1 {
	return D3D12_RESOURCE_DESC1{
		Dimension:        d.Dimension,
		Alignment:        d.Alignment,
		Width:            d.Width,
		Height:           d.Height,
		DepthOrArraySize: d.DepthOrArraySize,
		MipLevels:        d.MipLevels,
		Format:           d.Format,
		SampleDesc:       d.SampleDesc,
		Layout:           d.Layout,
		Flags:            d.Flags,
	}
}

// D3D12_RESOURCE_ALLOCATION_INFO reports the natural size and alignment the
// device would assign a resource descriptor.
type D3D12_RESOURCE_ALLOCATION_INFO struct {
	SizeInBytes uint64
	Alignment   uint64
}

// D3D12_CLEAR_VALUE describes an optimized clear value for a resource.
type D3D12_CLEAR_VALUE struct {
	Format DXGI_FORMAT
	// This is a union in C; Color is reused/reinterpreted for depth-stencil
	// clears too.
	Color [4]float32
}

// D3D12_FEATURE_DATA_D3D12_OPTIONS is the struct CheckFeatureSupport fills
// in for D3D12_FEATURE_D3D12_OPTIONS. Only ResourceHeapTier matters to this
// allocator; the rest are carried for ABI-accurate struct size.
type D3D12_FEATURE_DATA_D3D12_OPTIONS struct {
	DoublePrecisionFloatShaderOps                                              int32
	OutputMergerLogicOp                                                        int32
	MinPrecisionSupport                                                        uint32
	TiledResourcesTier                                                         uint32
	ResourceBindingTier                                                        uint32
	PSSpecifiedStencilRefSupported                                             int32
	TypedUAVLoadAdditionalFormats                                              int32
	ROVsSupported                                                              int32
	ConservativeRasterizationTier                                              uint32
	MaxGPUVirtualAddressBitsPerResource                                        uint32
	StandardSwizzle64KBSupported                                               int32
	CrossNodeSharingTier                                                       uint32
	CrossAdapterRowMajorTextureSupported                                       int32
	VPAndRTArrayIndexFromAnyShaderFeedingRasterizerSupportedWithoutGSEmulation int32
	ResourceHeapTier                                                           uint32
}

// DefaultMSAAResourcePlacementAlignment is the fixed alignment this
// allocator uses for every heap it creates, including buffer-only heaps -
// see the Open Question recorded in DESIGN.md.
const DefaultMSAAResourcePlacementAlignment uint64 = 4 * 1024 * 1024
