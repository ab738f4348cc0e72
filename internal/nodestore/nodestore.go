// Package nodestore holds the five parallel fields of every automaton
// node and the one-time switch from a compact build-time representation
// to a fast runtime one.
package nodestore

import "github.com/matchkit/ahocorasick/internal/intvec"

// Field indices, for readability at call sites that address a single
// field vector directly.
const (
	Base = iota
	Parent
	Value
	Aux1
	Aux2

	fieldCount
)

// Reserved is the sentinel for "absent", shared with every vector in
// the store.
const Reserved = intvec.Reserved

// Store holds the five node fields described in the data model: base,
// parent, value, aux1, aux2. During a build it keeps each field in a
// [intvec.ChunkedVector] to minimize slack while the trie is sparse and
// still growing; [Store.Freeze] copies every field into a
// [intvec.ContiguousVector] exactly once, trading the chunk indirection
// for flat-array reads once the automaton is read-only.
type Store struct {
	fields [fieldCount]intvec.Vector
	frozen bool
}

// New creates an empty Store backed by chunked vectors, with chunkSize
// <= 0 selecting [intvec.DefaultChunkSize].
func New(chunkSize int) *Store {
	s := &Store{}
	for i := range s.fields {
		s.fields[i] = intvec.NewChunkedVector(chunkSize, Reserved)
	}

	return s
}

// Base returns the base field vector.
func (s *Store) Base() intvec.Vector { return s.fields[Base] }

// Parent returns the parent field vector.
func (s *Store) Parent() intvec.Vector { return s.fields[Parent] }

// Value returns the value field vector.
func (s *Store) Value() intvec.Vector { return s.fields[Value] }

// Aux1 returns the aux1 field vector (sibling offset / BFS queue link /
// failure link, depending on build phase).
func (s *Store) Aux1() intvec.Vector { return s.fields[Aux1] }

// Aux2 returns the aux2 field vector (first-child offset / prefix
// link, depending on build phase).
func (s *Store) Aux2() intvec.Vector { return s.fields[Aux2] }

// Len returns the current size of the field vectors (they always grow
// together, so any one field's length is authoritative).
func (s *Store) Len() int {
	return s.fields[Base].Len()
}

// WriteAll atomically writes all five fields of node i.
//
// It calls SafeSet on the base vector first; if that caused growth, the
// remaining four fields are also written with SafeSet (they are
// guaranteed to need the same growth, since all five vectors grow in
// lockstep). If the base write did not grow the vector, the remaining
// fields are written with the plain, non-growing Set, which is cheaper
// for the common case where no growth occurs.
func (s *Store) WriteAll(i int, base, parent, value, aux1, aux2 int32) {
	grew := s.fields[Base].SafeSet(i, base)

	if grew {
		s.fields[Parent].SafeSet(i, parent)
		s.fields[Value].SafeSet(i, value)
		s.fields[Aux1].SafeSet(i, aux1)
		s.fields[Aux2].SafeSet(i, aux2)

		return
	}

	s.fields[Parent].Set(i, parent)
	s.fields[Value].Set(i, value)
	s.fields[Aux1].Set(i, aux1)
	s.fields[Aux2].Set(i, aux2)
}

// IsFrozen reports whether Freeze has already run.
func (s *Store) IsFrozen() bool {
	return s.frozen
}

// Freeze copies every chunked field vector into a contiguous vector
// sized exactly to the store's current length, and discards the
// chunked backing. It is idempotent: the copy happens only on the first
// call, and later calls return without touching the data (the
// automaton calls it once, from Build).
func (s *Store) Freeze() {
	if s.frozen {
		return
	}

	size := s.Len()

	for i, field := range s.fields {
		flat := intvec.NewContiguousVector(max(size, 1), intvec.DefaultGrowthRate, Reserved)

		for idx := 0; idx < size; idx++ {
			flat.SafeSet(idx, field.Get(idx))
		}

		s.fields[i] = flat
	}

	s.frozen = true
}
