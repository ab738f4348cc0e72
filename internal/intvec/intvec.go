// Package intvec provides growable, indexable int32 vectors with a
// "safe" access mode that grows the backing store instead of panicking.
//
// Two implementations share the [Vector] contract:
//
//   - [ChunkedVector] splits the index space into fixed-size leaf chunks,
//     trading a small amount of indirection for low slack while the vector
//     is sparse or still growing.
//   - [ContiguousVector] is a single flat array with geometric growth,
//     trading slack for pointer-chasing-free reads once the final size is
//     roughly known.
package intvec

import "errors"

// Reserved is the sentinel value for "absent" across every field that
// uses this package. It is the minimum value representable in a signed
// 32-bit integer.
const Reserved int32 = -1 << 31

// ErrOutOfBounds is the panic value of Get/Set (not SafeGet/SafeSet) when
// the index is beyond the current size of the vector, and of any access
// with a negative index. In correct internal use this should be
// unreachable; it signals a programmer error.
var ErrOutOfBounds = errors.New("intvec: index out of bounds")

// ErrInvalidArgument is the panic value of constructors given a
// nonsensical configuration (growth rate <= 1.0, capacity < 1).
var ErrInvalidArgument = errors.New("intvec: invalid argument")

// Vector is an unbounded, indexable store of int32 values with a fixed
// default for indices that have never been written.
type Vector interface {
	// Get returns the value at i. The behavior is undefined (the
	// implementation panics) if i >= Len().
	Get(i int) int32

	// SafeGet returns the stored value at i, or the vector's default
	// value if i >= Len(). Never grows the vector.
	SafeGet(i int) int32

	// Set stores v at i. The behavior is undefined (the implementation
	// panics) if i >= Len().
	Set(i int, v int32)

	// SafeSet grows the vector so that i < Len() afterward, then stores
	// v at i. Reports whether growth occurred.
	SafeSet(i int, v int32) bool

	// Len returns one past the highest index ever reached via SafeSet.
	Len() int
}
