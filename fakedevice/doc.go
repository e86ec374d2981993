// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package fakedevice provides an in-memory implementation of
// d3d12ma.Device for use in tests and the d3d12ma-report CLI on hosts with
// no D3D12 adapter, modeled on the noop HAL backend pattern used elsewhere
// in this codebase: stateless calls that track just enough bookkeeping to
// make CreateHeap/CreateResource behave plausibly, with no real graphics
// API underneath.
package fakedevice
