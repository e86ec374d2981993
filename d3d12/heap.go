// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package d3d12

import (
	"syscall"
	"unsafe"
)

// Release decrements the reference count of the heap.
func (h *ID3D12Heap) Release() uint32 {
	ret, _, _ := syscall.Syscall(h.vtbl.Release, 1, uintptr(unsafe.Pointer(h)), 0, 0)
	return uint32(ret)
}

// AddRef increments the reference count of the heap.
func (h *ID3D12Heap) AddRef() uint32 {
	ret, _, _ := syscall.Syscall(h.vtbl.AddRef, 1, uintptr(unsafe.Pointer(h)), 0, 0)
	return uint32(ret)
}

// GetDesc returns the descriptor the heap was created with.
func (h *ID3D12Heap) GetDesc() D3D12_HEAP_DESC {
	var desc D3D12_HEAP_DESC
	_, _, _ = syscall.Syscall(
		h.vtbl.GetDesc,
		2,
		uintptr(unsafe.Pointer(&desc)),
		uintptr(unsafe.Pointer(h)),
		0,
	)
	return desc
}
