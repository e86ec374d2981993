package d3d12ma

import "runtime"

// Resource bundles a device-created API resource object with the
// sub-allocation (if any) backing it. Exactly one of Allocation()/nil and a
// committed memory-type index is set: placed resources carry an
// Allocation, committed resources carry a memory-type index instead.
//
// FreeResource is the only supported disposal path. A Resource dropped any
// other way is caught by a finalizer that logs a warning through the
// ambient logger instead of panicking - it leaks until the underlying API
// refcount eventually reaches zero on its own.
type Resource struct {
	name            string
	apiResource     APIResource
	allocation      *Allocation
	location        MemoryLocation
	memoryTypeIndex int // -1 unless this is a committed resource
	size            uint64
	freed           bool
}

func (r *Resource) Name() string             { return r.name }
func (r *Resource) Size() uint64             { return r.size }
func (r *Resource) Location() MemoryLocation { return r.location }
func (r *Resource) APIResource() APIResource { return r.apiResource }

// Allocation returns the backing sub-allocation for a placed resource, or
// nil for a committed one.
func (r *Resource) Allocation() *Allocation { return r.allocation }

func finalizeResource(r *Resource) {
	if r.freed {
		return
	}
	Logger().Warn("Resource dropped without FreeResource; its backing memory will leak until the API refcount reaches zero", "name", r.name)
}

func trackResource(r *Resource) *Resource {
	runtime.SetFinalizer(r, finalizeResource)
	return r
}
