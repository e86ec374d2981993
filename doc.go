// Package d3d12ma implements a GPU memory sub-allocator for Direct3D 12.
//
// The host API exposes coarse heaps of fixed size, residency class, and
// category. Allocating one heap per resource wastes address space and
// driver bookkeeping, so this package pools heaps per (residency, category)
// and sub-allocates resource-aligned ranges out of them through a pluggable
// SubAllocator strategy (see the suballoc package).
//
// The core is deliberately free of interior concurrency: callers serialize
// access to an Allocator themselves, same as with the d3d12 COM objects it
// wraps.
package d3d12ma
