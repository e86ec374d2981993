package d3d12ma

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an AllocationError without pinning callers to a
// concrete Go type for every failure mode, mirroring the closed error
// taxonomy the allocator is specified against.
type ErrorKind int

const (
	// KindOutOfMemory means the device reported out-of-memory creating a
	// heap, or a sub-allocator could not satisfy a request within a block.
	KindOutOfMemory ErrorKind = iota
	// KindFailedToMap is reserved for the host-visible mapping subsystem,
	// which this core does not implement, kept for taxonomy stability.
	KindFailedToMap
	// KindNoCompatibleMemoryTypeFound means no memory-type entry matches
	// the requested (residency, category) pair.
	KindNoCompatibleMemoryTypeFound
	// KindInvalidAllocationCreateDesc means zero size or a non-power-of-two
	// alignment was requested.
	KindInvalidAllocationCreateDesc
	// KindInvalidAllocatorCreateDesc is reserved for constructor validation.
	KindInvalidAllocatorCreateDesc
	// KindInternal covers driver errors other than OOM, a null-but-successful
	// handle, or an invariant violation.
	KindInternal
	// KindBarrierLayoutNeedsDevice10 means a barrier-layout initial state was
	// requested against the base device.
	KindBarrierLayoutNeedsDevice10
	// KindCastableFormatsRequiresEnhancedBarriers means castable formats were
	// supplied alongside a legacy resource-state initial state.
	KindCastableFormatsRequiresEnhancedBarriers
	// KindCastableFormatsRequiresAtLeastDevice12 means castable formats were
	// supplied with a barrier layout on a Device10 (but not Device12) device.
	KindCastableFormatsRequiresAtLeastDevice12
)

func (k ErrorKind) String() string {
	switch k {
	case KindOutOfMemory:
		return "out of memory"
	case KindFailedToMap:
		return "failed to map memory"
	case KindNoCompatibleMemoryTypeFound:
		return "no compatible memory type available"
	case KindInvalidAllocationCreateDesc:
		return "invalid AllocationCreateDesc"
	case KindInvalidAllocatorCreateDesc:
		return "invalid AllocatorCreateDesc"
	case KindInternal:
		return "internal error"
	case KindBarrierLayoutNeedsDevice10:
		return "initial BarrierLayout needs at least Device10"
	case KindCastableFormatsRequiresEnhancedBarriers:
		return "castable formats require enhanced barriers"
	case KindCastableFormatsRequiresAtLeastDevice12:
		return "castable formats require at least Device12"
	default:
		return "unknown error"
	}
}

// AllocationError is the error type returned by every Allocator operation.
type AllocationError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *AllocationError) Error() string {
	if e.Msg == "" {
		return "d3d12ma: " + e.Kind.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("d3d12ma: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("d3d12ma: %s: %s", e.Kind, e.Msg)
}

func (e *AllocationError) Unwrap() error { return e.Err }

// Is reports whether target carries the same ErrorKind, so callers can write
// errors.Is(err, d3d12ma.ErrOutOfMemory) instead of type-asserting.
func (e *AllocationError) Is(target error) bool {
	var other *AllocationError
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}

func newErr(kind ErrorKind, msg string) *AllocationError {
	return &AllocationError{Kind: kind, Msg: msg}
}

func wrapErr(kind ErrorKind, msg string, cause error) *AllocationError {
	return &AllocationError{Kind: kind, Msg: msg, Err: cause}
}

// Sentinel values for errors.Is comparisons against a bare kind, with no
// message attached.
var (
	ErrOutOfMemory                             = &AllocationError{Kind: KindOutOfMemory}
	ErrNoCompatibleMemoryTypeFound             = &AllocationError{Kind: KindNoCompatibleMemoryTypeFound}
	ErrInvalidAllocationCreateDesc             = &AllocationError{Kind: KindInvalidAllocationCreateDesc}
	ErrBarrierLayoutNeedsDevice10              = &AllocationError{Kind: KindBarrierLayoutNeedsDevice10}
	ErrCastableFormatsRequiresEnhancedBarriers = &AllocationError{Kind: KindCastableFormatsRequiresEnhancedBarriers}
	ErrCastableFormatsRequiresAtLeastDevice12  = &AllocationError{Kind: KindCastableFormatsRequiresAtLeastDevice12}
)
