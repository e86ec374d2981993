// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package d3d12 provides raw Go bindings to the subset of the Direct3D 12
// COM surface a GPU memory sub-allocator needs: device feature queries,
// heap creation, and committed/placed resource creation across the legacy,
// Device10 (barrier layout), and Device12 (castable formats) capability
// tiers.
//
// Descriptor struct and enum definitions (types.go, enums.go, guid.go,
// hresult.go) carry no build constraint so that higher-level packages can
// reason about D3D12 descriptors on any platform; the COM interface types,
// the DLL loader, and the files that dispatch COM calls through
// syscall.Syscall are restricted to windows via //go:build windows.
//
// Status: core allocator surface only. This is not a general D3D12 binding;
// pipeline state, command lists, and descriptor heaps are out of scope.
//
// Use HRESULTError to recover the underlying HRESULT code from a failed
// call:
//
//	if hr, ok := err.(HRESULTError); ok {
//		if hr.Code() == E_OUTOFMEMORY { ... }
//	}
package d3d12
