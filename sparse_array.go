package containers

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

const (
	// ErrIndexOutOfRange is returned when an index falls outside the
	// capacity fixed at construction.
	ErrIndexOutOfRange = ConstError("index out of range")

	// ErrNotInitialized is returned when reading a slot that has never
	// been assigned.
	ErrNotInitialized = ConstError("slot not initialized")
)

// SparseArray is a fixed-capacity container over the dense index space
// [0, N) where most slots are expected to stay unused. Unlike a plain array,
// reading a slot that was never assigned fails with ErrNotInitialized
// instead of yielding a zero value, so an accidental read of an untouched
// slot surfaces immediately rather than leaking a default into downstream
// computation.
//
// The index is a generic integer type, letting callers address slots
// directly with enum-like constants.
//
// A SparseArray is not synchronized; concurrent use requires external
// locking by the caller.
type SparseArray[K constraints.Integer, V any] struct {
	values []V
	set    []bool
	size   int
}

// NewSparseArray creates an array of the given fixed capacity with every
// slot unset. Negative capacities are treated as zero.
func NewSparseArray[K constraints.Integer, V any](capacity int) *SparseArray[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &SparseArray[K, V]{
		values: make([]V, capacity),
		set:    make([]bool, capacity),
	}
}

// Set assigns value to the slot at index. The first assignment marks the
// slot initialized and increases Size by one; later assignments replace the
// value without a size change. Indices outside the capacity are rejected
// with ErrIndexOutOfRange.
func (a *SparseArray[K, V]) Set(index K, value V) error {
	if index < 0 || uint64(index) >= uint64(len(a.values)) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(a.values))
	}
	a.values[index] = value
	if !a.set[index] {
		a.set[index] = true
		a.size++
	}
	return nil
}

// Get returns the value stored at index. Indices outside the capacity fail
// with ErrIndexOutOfRange, in-range slots that were never assigned fail with
// ErrNotInitialized.
func (a *SparseArray[K, V]) Get(index K) (V, error) {
	var zero V
	if index < 0 || uint64(index) >= uint64(len(a.values)) {
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(a.values))
	}
	if !a.set[index] {
		return zero, fmt.Errorf("%w: %d", ErrNotInitialized, index)
	}
	return a.values[index], nil
}

// IsInitialized reports whether the slot at index has been assigned at least
// once. Indices outside the capacity are reported as not initialized.
func (a *SparseArray[K, V]) IsInitialized(index K) bool {
	if index < 0 || uint64(index) >= uint64(len(a.set)) {
		return false
	}
	return a.set[index]
}

// Size returns the number of initialized slots.
func (a *SparseArray[K, V]) Size() int {
	return a.size
}

// Capacity returns the fixed number of slots.
func (a *SparseArray[K, V]) Capacity() int {
	return len(a.values)
}

// ForEach calls the callback for every initialized slot in index order.
func (a *SparseArray[K, V]) ForEach(callback func(K, V)) {
	for i := 0; i < len(a.values); i++ {
		if a.set[i] {
			callback(K(i), a.values[i])
		}
	}
}

// GetMemoryFootprint provides the memory consumed by this array.
func (a *SparseArray[K, V]) GetMemoryFootprint() *MemoryFootprint {
	var item V
	selfSize := unsafe.Sizeof(*a)
	return NewMemoryFootprint(selfSize + uintptr(len(a.values))*unsafe.Sizeof(item) + uintptr(len(a.set)))
}
