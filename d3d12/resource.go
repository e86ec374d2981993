// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package d3d12

import (
	"syscall"
	"unsafe"
)

// Release decrements the reference count of the resource.
func (r *ID3D12Resource) Release() uint32 {
	ret, _, _ := syscall.Syscall(r.vtbl.Release, 1, uintptr(unsafe.Pointer(r)), 0, 0)
	return uint32(ret)
}

// AddRef increments the reference count of the resource.
func (r *ID3D12Resource) AddRef() uint32 {
	ret, _, _ := syscall.Syscall(r.vtbl.AddRef, 1, uintptr(unsafe.Pointer(r)), 0, 0)
	return uint32(ret)
}

// GetDesc returns the descriptor the resource was created with.
func (r *ID3D12Resource) GetDesc() D3D12_RESOURCE_DESC {
	var desc D3D12_RESOURCE_DESC
	_, _, _ = syscall.Syscall(
		r.vtbl.GetDesc,
		2,
		uintptr(unsafe.Pointer(&desc)),
		uintptr(unsafe.Pointer(r)),
		0,
	)
	return desc
}
