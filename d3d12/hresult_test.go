// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package d3d12

import (
	"errors"
	"testing"
)

func TestHRESULTError_Is(t *testing.T) {
	err := HRESULTError(E_OUTOFMEMORY)
	if !errors.Is(err, HRESULTError(E_OUTOFMEMORY)) {
		t.Error("errors.Is(err, HRESULTError(E_OUTOFMEMORY)) = false, want true")
	}
	if errors.Is(err, HRESULTError(E_FAIL)) {
		t.Error("errors.Is(err, HRESULTError(E_FAIL)) = true, want false")
	}
}

func TestHRESULTError_Code(t *testing.T) {
	err := HRESULTError(DXGI_ERROR_DEVICE_REMOVED)
	if err.Code() != DXGI_ERROR_DEVICE_REMOVED {
		t.Errorf("Code() = %#x, want %#x", err.Code(), DXGI_ERROR_DEVICE_REMOVED)
	}
}

func TestResourceDesc1FromDesc(t *testing.T) {
	d := D3D12_RESOURCE_DESC{
		Dimension:        D3D12_RESOURCE_DIMENSION_TEXTURE2D,
		Alignment:        65536,
		Width:            512,
		Height:           256,
		DepthOrArraySize: 1,
		MipLevels:        1,
		Format:           DXGI_FORMAT_R8G8B8A8_UNORM,
		SampleDesc:       DXGI_SAMPLE_DESC{Count: 1},
	}

	d1 := ResourceDesc1FromDesc(d)

	if d1.Width != d.Width || d1.Height != d.Height || d1.Format != d.Format {
		t.Errorf("ResourceDesc1FromDesc() = %+v, want fields copied from %+v", d1, d)
	}
	if d1.SamplerFeedbackMipRegion != (D3D12_MIP_REGION{}) {
		t.Errorf("SamplerFeedbackMipRegion = %+v, want zero value", d1.SamplerFeedbackMipRegion)
	}
}
