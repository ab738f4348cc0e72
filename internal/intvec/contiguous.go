package intvec

// DefaultGrowthRate is the default geometric growth factor applied by
// [ContiguousVector] when it must resize.
const DefaultGrowthRate = 1.5

// DefaultInitialCapacity is the default starting capacity for a
// ContiguousVector created without an explicit one.
const DefaultInitialCapacity = 16

// ContiguousVector is a [Vector] backed by a single flat slice, resized
// geometrically. It has no per-leaf indirection, so reads and writes are
// a single slice index once the final size is roughly known; this is the
// representation [ChunkedVector] is frozen into after a build finishes.
type ContiguousVector struct {
	data []int32
	def  int32
	rate float64
	size int
}

// NewContiguousVector creates a ContiguousVector with the given initial
// capacity, geometric growth rate, and default value.
//
// Panics with [ErrInvalidArgument] if rate <= 1.0 or
// initialCapacity < 1.
func NewContiguousVector(initialCapacity int, rate float64, def int32) *ContiguousVector {
	if rate <= 1.0 {
		panic(ErrInvalidArgument)
	}

	if initialCapacity < 1 {
		panic(ErrInvalidArgument)
	}

	data := make([]int32, initialCapacity)
	if def != 0 {
		for i := range data {
			data[i] = def
		}
	}

	return &ContiguousVector{data: data, def: def, rate: rate}
}

// Get returns the value at i. Panics if i >= Len().
func (v *ContiguousVector) Get(i int) int32 {
	if i < 0 || i >= v.size {
		panic(ErrOutOfBounds)
	}

	return v.data[i]
}

// SafeGet returns the value at i, or the default if i >= Len().
func (v *ContiguousVector) SafeGet(i int) int32 {
	if i < 0 || i >= v.size {
		return v.def
	}

	return v.data[i]
}

// Set stores val at i. Panics if i >= Len().
func (v *ContiguousVector) Set(i int, val int32) {
	if i < 0 || i >= v.size {
		panic(ErrOutOfBounds)
	}

	v.data[i] = val
}

// SafeSet grows the vector so i < Len(), stores val at i, and reports
// whether growth occurred.
func (v *ContiguousVector) SafeSet(i int, val int32) bool {
	if i < 0 {
		panic(ErrOutOfBounds)
	}

	grew := v.grow(i)
	v.data[i] = val

	return grew
}

func (v *ContiguousVector) grow(i int) bool {
	if i < v.size {
		return false
	}

	if i >= len(v.data) {
		newCap := int(float64(i+1) * v.rate)
		if newCap <= i {
			newCap = i + 1
		}

		bigger := make([]int32, newCap)
		copy(bigger, v.data)

		if v.def != 0 {
			for j := len(v.data); j < newCap; j++ {
				bigger[j] = v.def
			}
		}

		v.data = bigger
	}

	v.size = i + 1

	return true
}

// Len returns one past the highest index ever reached via SafeSet.
func (v *ContiguousVector) Len() int {
	return v.size
}
