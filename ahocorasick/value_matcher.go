package ahocorasick

import (
	"iter"

	"github.com/matchkit/ahocorasick/internal/core"
)

// ValueMatch is one occurrence reported by ValueMatcher.Parse.
type ValueMatch[V any] struct {
	// Start and End are rune offsets into the normalized input; End is
	// exclusive.
	Start, End int

	// Value is the external value associated with the matched key.
	Value V
}

// ValueMatcher maps keys to arbitrary external values kept in a side
// vector, indexed by the int the core assigns to each newly inserted
// key. A second side vector holds each key's normalized rune length,
// needed to derive match start positions.
type ValueMatcher[V any] struct {
	a    *core.Automaton
	opts Options

	values  []V
	lengths []int32
}

// NewValueMatcher creates an empty matcher ready for Add.
func NewValueMatcher[V any](opts Options) *ValueMatcher[V] {
	return &ValueMatcher[V]{
		a:    core.New(opts.CaseInsensitive, opts.WholeWordsOnly),
		opts: opts,
	}
}

// Add inserts key with the given external value. A duplicate key gets
// a fresh id and a new side-vector pair; the automaton's stored id for
// that key now points at the new pair, so the previous pair becomes
// unreachable dead weight rather than being overwritten in place (use
// Replace to avoid that).
func (m *ValueMatcher[V]) Add(key string, value V) error {
	id := int32(len(m.values))

	if err := m.a.AddEntry(key, id); err != nil {
		return err
	}

	m.values = append(m.values, value)
	m.lengths = append(m.lengths, int32(m.a.NormalizedRuneLen(key)))

	return nil
}

// Replace performs an explicit lookup and, if key exists, updates its
// value in place with no dead-tuple accumulation. If key is absent and
// insertOnFail is true, it behaves like Add; otherwise it returns
// ErrKeyNotFound. Replace is forbidden after Build.
func (m *ValueMatcher[V]) Replace(key string, value V, insertOnFail bool) error {
	if m.a.IsBuilt() {
		return ErrAlreadyBuilt
	}

	id, ok := m.a.ValueOf(key)
	if ok {
		m.values[id] = value
		return nil
	}

	if insertOnFail {
		return m.Add(key, value)
	}

	return ErrKeyNotFound
}

// Build freezes the matcher. Add and Replace may not be called again
// afterward.
func (m *ValueMatcher[V]) Build() error {
	return m.a.Build()
}

// IsBuilt reports whether Build has completed.
func (m *ValueMatcher[V]) IsBuilt() bool { return m.a.IsBuilt() }

// NodeCount returns the total number of trie nodes, root included.
func (m *ValueMatcher[V]) NodeCount() int { return m.a.NodeCount() }

// Contains reports whether key was inserted.
func (m *ValueMatcher[V]) Contains(key string) bool { return m.a.Contains(key) }

// ValueOf returns the value most recently associated with key.
func (m *ValueMatcher[V]) ValueOf(key string) (V, bool) {
	id, ok := m.a.ValueOf(key)
	if !ok {
		var zero V
		return zero, false
	}

	return m.values[id], true
}

// Stats reports the matcher's current memory footprint.
func (m *ValueMatcher[V]) Stats() Stats {
	return Stats{NodeCount: m.a.NodeCount(), Built: m.a.IsBuilt()}
}

// Parse scans input and returns a lazy sequence of matches in order of
// ascending end position, then descending length. Parse requires Build
// to have already run.
func (m *ValueMatcher[V]) Parse(input string) (iter.Seq[ValueMatch[V]], error) {
	if !m.a.IsBuilt() {
		return nil, ErrNotBuilt
	}

	norm := m.a.NormalizeRunes(input)
	inner := m.a.Parse(norm, func(v int32) int { return int(m.lengths[v]) })

	return func(yield func(ValueMatch[V]) bool) {
		inner(func(start, end int, id int32) bool {
			return yield(ValueMatch[V]{Start: start, End: end, Value: m.values[id]})
		})
	}, nil
}
