package ahocorasick

import (
	"iter"
	"unicode/utf8"

	"github.com/matchkit/ahocorasick/internal/core"
)

// StringMatch is one occurrence reported by StringMatcher.Parse.
type StringMatch struct {
	// Start and End are rune offsets into the (possibly case-folded)
	// input; End is exclusive.
	Start, End int

	// Value is the matched substring, taken from the input at
	// [Start:End) in the input's own casing. If case folding changed the
	// input's rune length (an expanding code point such as U+0130), it
	// is taken from the case-folded input instead.
	Value string
}

// StringMatcher is the façade where a key is also its own value: it
// stores only each key's normalized rune length and reconstructs the
// matched text from the input at match time, rather than retaining the
// original key strings.
type StringMatcher struct {
	a    *core.Automaton
	opts Options
}

// NewStringMatcher creates an empty matcher ready for Add/AddAll.
func NewStringMatcher(opts Options) *StringMatcher {
	return &StringMatcher{
		a:    core.New(opts.CaseInsensitive, opts.WholeWordsOnly),
		opts: opts,
	}
}

// Add inserts key. In case-insensitive mode, keys containing a code
// unit whose case-folded form spans more than one rune (e.g. the
// Turkish dotted capital I) are rejected with ErrCaseFoldExpands: the
// façade's start = end - length(key) derivation would otherwise
// silently misplace the match.
func (m *StringMatcher) Add(key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	normLen := m.a.NormalizedRuneLen(key)

	if m.opts.CaseInsensitive && normLen != utf8.RuneCountInString(key) {
		return ErrCaseFoldExpands
	}

	return m.a.AddEntry(key, int32(normLen))
}

// AddAll inserts every key in order, stopping at the first error.
func (m *StringMatcher) AddAll(keys []string) error {
	for _, k := range keys {
		if err := m.Add(k); err != nil {
			return err
		}
	}

	return nil
}

// Build freezes the matcher. Add may not be called again afterward.
func (m *StringMatcher) Build() error {
	return m.a.Build()
}

// IsBuilt reports whether Build has completed.
func (m *StringMatcher) IsBuilt() bool { return m.a.IsBuilt() }

// NodeCount returns the total number of trie nodes, root included.
func (m *StringMatcher) NodeCount() int { return m.a.NodeCount() }

// Contains reports whether key was inserted.
func (m *StringMatcher) Contains(key string) bool { return m.a.Contains(key) }

// Stats reports the matcher's current memory footprint.
func (m *StringMatcher) Stats() Stats {
	return Stats{NodeCount: m.a.NodeCount(), Built: m.a.IsBuilt()}
}

// Parse scans input and returns a lazy sequence of matches in order of
// ascending end position, then descending length. Parse requires Build
// to have already run.
func (m *StringMatcher) Parse(input string) (iter.Seq[StringMatch], error) {
	if !m.a.IsBuilt() {
		return nil, ErrNotBuilt
	}

	norm := m.a.NormalizeRunes(input)
	inner := m.a.Parse(norm, func(v int32) int { return int(v) })

	src := norm
	if m.opts.CaseInsensitive {
		if orig := []rune(input); len(orig) == len(norm) {
			src = orig
		}
	}

	return func(yield func(StringMatch) bool) {
		inner(func(start, end int, _ int32) bool {
			return yield(StringMatch{Start: start, End: end, Value: string(src[start:end])})
		})
	}, nil
}
