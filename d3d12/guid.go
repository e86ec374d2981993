// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package d3d12

// GUID represents a Windows GUID (Globally Unique Identifier).
// Layout must match Windows GUID structure exactly.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// D3D12 interface GUIDs this package dispatches against.
// Reference: https://learn.microsoft.com/en-us/windows/win32/api/d3d12/

// IID_ID3D12Device is the interface ID for ID3D12Device.
// {189819F1-1DB6-4B57-BE54-1821339B85F7}
var IID_ID3D12Device = GUID{
	Data1: 0x189819F1,
	Data2: 0x1DB6,
	Data3: 0x4B57,
	Data4: [8]byte{0xBE, 0x54, 0x18, 0x21, 0x33, 0x9B, 0x85, 0xF7},
}

// IID_ID3D12Device10 is the interface ID for ID3D12Device10.
// {517AB4C4-0DB2-47A1-B30F-59C5DB4D81D7}
var IID_ID3D12Device10 = GUID{
	Data1: 0x517AB4C4,
	Data2: 0x0DB2,
	Data3: 0x47A1,
	Data4: [8]byte{0xB3, 0x0F, 0x59, 0xC5, 0xDB, 0x4D, 0x81, 0xD7},
}

// IID_ID3D12Device12 is the interface ID for ID3D12Device12.
// {5051461C-3F87-44C6-9FE1-73640A78E25D}
var IID_ID3D12Device12 = GUID{
	Data1: 0x5051461C,
	Data2: 0x3F87,
	Data3: 0x44C6,
	Data4: [8]byte{0x9F, 0xE1, 0x73, 0x64, 0x0A, 0x78, 0xE2, 0x5D},
}

// IID_ID3D12Heap is the interface ID for ID3D12Heap.
// {6B3B2502-6E51-45B3-90EE-9884265E8DF3}
var IID_ID3D12Heap = GUID{
	Data1: 0x6B3B2502,
	Data2: 0x6E51,
	Data3: 0x45B3,
	Data4: [8]byte{0x90, 0xEE, 0x98, 0x84, 0x26, 0x5E, 0x8D, 0xF3},
}

// IID_ID3D12Resource is the interface ID for ID3D12Resource.
// {696442BE-A72E-4059-BC79-5B5C98040FAD}
var IID_ID3D12Resource = GUID{
	Data1: 0x696442BE,
	Data2: 0xA72E,
	Data3: 0x4059,
	Data4: [8]byte{0xBC, 0x79, 0x5B, 0x5C, 0x98, 0x04, 0x0F, 0xAD},
}
