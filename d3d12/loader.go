// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package d3d12

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	d3d12Lib     *D3D12Lib
	d3d12LibOnce sync.Once
	d3d12LibErr  error
)

// D3D12Lib provides access to the entry points d3d12.dll exports.
type D3D12Lib struct {
	dll               *windows.LazyDLL
	handle            windows.Handle
	d3d12CreateDevice *windows.LazyProc
}

// LoadD3D12 loads d3d12.dll. Safe to call multiple times; the library is
// loaded and its procs resolved exactly once.
func LoadD3D12() (*D3D12Lib, error) {
	d3d12LibOnce.Do(func() {
		d3d12Lib, d3d12LibErr = loadD3D12Internal()
	})
	return d3d12Lib, d3d12LibErr
}

func loadD3D12Internal() (*D3D12Lib, error) {
	dll := windows.NewLazySystemDLL("d3d12.dll")
	if err := dll.Load(); err != nil {
		return nil, fmt.Errorf("failed to load d3d12.dll: %w", err)
	}

	lib := &D3D12Lib{
		dll:               dll,
		handle:            windows.Handle(dll.Handle()),
		d3d12CreateDevice: dll.NewProc("D3D12CreateDevice"),
	}
	return lib, nil
}

// CreateDevice creates a base-tier D3D12 device. adapter may be nil to use
// the default adapter. Callers upgrade the returned device to Device10 or
// Device12 via its AsDevice10/AsDevice12 methods where the runtime supports
// it; this allocator never requires a feature level beyond 11_0 to run.
func (lib *D3D12Lib) CreateDevice(adapter unsafe.Pointer, minFeatureLevel D3D_FEATURE_LEVEL) (*ID3D12Device, error) {
	var device *ID3D12Device

	ret, _, _ := lib.d3d12CreateDevice.Call(
		uintptr(adapter),
		uintptr(minFeatureLevel),
		uintptr(unsafe.Pointer(&IID_ID3D12Device)),
		uintptr(unsafe.Pointer(&device)),
	)
	if ret != 0 {
		return nil, HRESULTError(ret)
	}
	return device, nil
}

// Handle returns the Win32 module handle d3d12.dll was loaded at, typed the
// way the rest of the Windows surface (events, waits) is: as a
// windows.Handle rather than a bare uintptr.
func (lib *D3D12Lib) Handle() windows.Handle {
	return lib.handle
}
