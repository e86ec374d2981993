// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package d3d12

// D3D12_HEAP_TYPE selects a heap's residency behavior.
type D3D12_HEAP_TYPE uint32

const (
	D3D12_HEAP_TYPE_DEFAULT D3D12_HEAP_TYPE = iota + 1
	D3D12_HEAP_TYPE_UPLOAD
	D3D12_HEAP_TYPE_READBACK
	D3D12_HEAP_TYPE_CUSTOM
)

// D3D12_CPU_PAGE_PROPERTY describes CPU access and caching of a custom heap.
type D3D12_CPU_PAGE_PROPERTY uint32

const (
	D3D12_CPU_PAGE_PROPERTY_UNKNOWN D3D12_CPU_PAGE_PROPERTY = iota
	D3D12_CPU_PAGE_PROPERTY_NOT_AVAILABLE
	D3D12_CPU_PAGE_PROPERTY_WRITE_COMBINE
	D3D12_CPU_PAGE_PROPERTY_WRITE_BACK
)

// D3D12_MEMORY_POOL describes which physical memory pool backs a heap.
type D3D12_MEMORY_POOL uint32

const (
	D3D12_MEMORY_POOL_UNKNOWN D3D12_MEMORY_POOL = iota
	D3D12_MEMORY_POOL_L0
	D3D12_MEMORY_POOL_L1
)

// D3D12_HEAP_FLAGS restricts the categories of resource a heap may back.
type D3D12_HEAP_FLAGS uint32

const (
	D3D12_HEAP_FLAG_NONE                          D3D12_HEAP_FLAGS = 0
	D3D12_HEAP_FLAG_ALLOW_ONLY_BUFFERS            D3D12_HEAP_FLAGS = 0x00001000
	D3D12_HEAP_FLAG_ALLOW_ONLY_NON_RT_DS_TEXTURES D3D12_HEAP_FLAGS = 0x00002000
	D3D12_HEAP_FLAG_ALLOW_ONLY_RT_DS_TEXTURES     D3D12_HEAP_FLAGS = 0x00004000
)

// D3D12_RESOURCE_DIMENSION distinguishes buffers from the texture kinds.
type D3D12_RESOURCE_DIMENSION uint32

const (
	D3D12_RESOURCE_DIMENSION_UNKNOWN D3D12_RESOURCE_DIMENSION = iota
	D3D12_RESOURCE_DIMENSION_BUFFER
	D3D12_RESOURCE_DIMENSION_TEXTURE1D
	D3D12_RESOURCE_DIMENSION_TEXTURE2D
	D3D12_RESOURCE_DIMENSION_TEXTURE3D
)

// D3D12_RESOURCE_FLAGS flags a resource as a render target, depth-stencil
// surface, or otherwise - used to derive a resource's heap category.
type D3D12_RESOURCE_FLAGS uint32

const (
	D3D12_RESOURCE_FLAG_NONE                      D3D12_RESOURCE_FLAGS = 0
	D3D12_RESOURCE_FLAG_ALLOW_RENDER_TARGET       D3D12_RESOURCE_FLAGS = 0x1
	D3D12_RESOURCE_FLAG_ALLOW_DEPTH_STENCIL       D3D12_RESOURCE_FLAGS = 0x2
	D3D12_RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS    D3D12_RESOURCE_FLAGS = 0x4
	D3D12_RESOURCE_FLAG_DENY_SHADER_RESOURCE      D3D12_RESOURCE_FLAGS = 0x8
	D3D12_RESOURCE_FLAG_ALLOW_CROSS_ADAPTER       D3D12_RESOURCE_FLAGS = 0x10
	D3D12_RESOURCE_FLAG_ALLOW_SIMULTANEOUS_ACCESS D3D12_RESOURCE_FLAGS = 0x20
)

// D3D12_TEXTURE_LAYOUT describes the memory layout of a texture resource.
type D3D12_TEXTURE_LAYOUT uint32

const (
	D3D12_TEXTURE_LAYOUT_UNKNOWN D3D12_TEXTURE_LAYOUT = iota
	D3D12_TEXTURE_LAYOUT_ROW_MAJOR
	D3D12_TEXTURE_LAYOUT_UNDEFINED_SWIZZLE64KB
	D3D12_TEXTURE_LAYOUT_STANDARD_SWIZZLE64KB
)

// D3D12_RESOURCE_STATES are legacy initial/transition states.
type D3D12_RESOURCE_STATES uint32

const (
	D3D12_RESOURCE_STATE_COMMON        D3D12_RESOURCE_STATES = 0
	D3D12_RESOURCE_STATE_GENERIC_READ  D3D12_RESOURCE_STATES = 0x2C0
	D3D12_RESOURCE_STATE_COPY_DEST     D3D12_RESOURCE_STATES = 0x400
	D3D12_RESOURCE_STATE_COPY_SOURCE   D3D12_RESOURCE_STATES = 0x800
	D3D12_RESOURCE_STATE_RENDER_TARGET D3D12_RESOURCE_STATES = 0x4
	D3D12_RESOURCE_STATE_DEPTH_WRITE   D3D12_RESOURCE_STATES = 0x10
)

// D3D12_BARRIER_LAYOUT is the enhanced-barriers initial-state equivalent,
// available from Device10 onward.
type D3D12_BARRIER_LAYOUT int32

const (
	D3D12_BARRIER_LAYOUT_UNDEFINED D3D12_BARRIER_LAYOUT = iota - 1
	D3D12_BARRIER_LAYOUT_COMMON
	D3D12_BARRIER_LAYOUT_PRESENT
	D3D12_BARRIER_LAYOUT_GENERIC_READ
	D3D12_BARRIER_LAYOUT_RENDER_TARGET
	D3D12_BARRIER_LAYOUT_UNORDERED_ACCESS
	D3D12_BARRIER_LAYOUT_DEPTH_STENCIL_WRITE
	D3D12_BARRIER_LAYOUT_DEPTH_STENCIL_READ
	D3D12_BARRIER_LAYOUT_SHADER_RESOURCE
	D3D12_BARRIER_LAYOUT_COPY_SOURCE
	D3D12_BARRIER_LAYOUT_COPY_DEST
	D3D12_BARRIER_LAYOUT_RESOLVE_SOURCE
	D3D12_BARRIER_LAYOUT_RESOLVE_DEST
)

// D3D12_RESOURCE_HEAP_TIER reports whether a device requires one heap per
// resource category (tier 1) or allows mixing them (tier 2).
type D3D12_RESOURCE_HEAP_TIER uint32

const (
	D3D12_RESOURCE_HEAP_TIER_1 D3D12_RESOURCE_HEAP_TIER = 1
	D3D12_RESOURCE_HEAP_TIER_2 D3D12_RESOURCE_HEAP_TIER = 2
)

// D3D12_FEATURE selects which feature struct CheckFeatureSupport populates.
type D3D12_FEATURE uint32

const (
	D3D12_FEATURE_D3D12_OPTIONS D3D12_FEATURE = 0
)

// DXGI_FORMAT is a (trimmed) subset of the DXGI format enumeration, covering
// the values a castable-format list or resource descriptor plausibly needs.
type DXGI_FORMAT uint32

const (
	DXGI_FORMAT_UNKNOWN             DXGI_FORMAT = 0
	DXGI_FORMAT_R8G8B8A8_UNORM      DXGI_FORMAT = 28
	DXGI_FORMAT_R8G8B8A8_UNORM_SRGB DXGI_FORMAT = 29
	DXGI_FORMAT_R8G8B8A8_TYPELESS   DXGI_FORMAT = 27
	DXGI_FORMAT_R32_TYPELESS        DXGI_FORMAT = 39
	DXGI_FORMAT_R32_FLOAT           DXGI_FORMAT = 41
	DXGI_FORMAT_D32_FLOAT           DXGI_FORMAT = 40
)

// D3D_FEATURE_LEVEL is the minimum feature level requested of D3D12CreateDevice.
type D3D_FEATURE_LEVEL uint32

const (
	D3D_FEATURE_LEVEL_11_0 D3D_FEATURE_LEVEL = 0xb000
	D3D_FEATURE_LEVEL_12_0 D3D_FEATURE_LEVEL = 0xc000
	D3D_FEATURE_LEVEL_12_1 D3D_FEATURE_LEVEL = 0xc100
)
