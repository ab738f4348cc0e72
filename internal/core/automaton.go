// Package core implements the modified double-array trie and the
// Aho-Corasick failure/prefix link construction on top of it: the
// insertion algorithm with its child-relocation strategy and free-slot
// cache, the BFS-in-place link construction, and the lazy matching state
// machine. The two public façades (StringMatcher, ValueMatcher) in the
// ahocorasick package are thin wrappers over a single *Automaton.
package core

import (
	"unicode"

	"github.com/matchkit/ahocorasick/internal/freeslot"
	"github.com/matchkit/ahocorasick/internal/nodestore"
)

// expandingFolds lists the code points whose full case folding spans
// more than one rune. Go's unicode.ToLower only ever does simple
// (one-to-one) case mapping, so the one-to-many cases of the full
// Unicode case folding tables (used by e.g. strings.ToLower in other
// languages' standard libraries) are handled here explicitly; this is
// the only source of multi-rune expansion in normalizeRune.
var expandingFolds = map[rune][]rune{
	0x0130: {0x0069, 0x0307}, // LATIN CAPITAL LETTER I WITH DOT ABOVE -> "i" + COMBINING DOT ABOVE
}

// Reserved is the sentinel for "absent" across every node field.
const Reserved = nodestore.Reserved

// Automaton is the trie + automaton engine. It owns a [nodestore.Store]
// and a [freeslot.Cache]; neither is safe for concurrent mutation, so
// insertion and Build must be serialized by the caller. Once built, the
// store is frozen and Parse is read-only and safe for concurrent use.
type Automaton struct {
	store *nodestore.Store
	free  *freeslot.Cache

	caseInsensitive bool
	wholeWordsOnly  bool

	built     bool
	nodeCount int

	singleCursor int32
	multiCursor  int32

	// Reusable scratch buffers for collision handling: two lists of
	// child offsets, one per colliding parent, plus a third swapped in
	// during the inner re-parenting loop. Retained across calls to
	// avoid allocation churn.
	scratchA []int32
	scratchB []int32
	scratchC []int32
}

// New creates an empty Automaton with the root node initialized at index
// 0: base=1, parent=0 (self, "always live"), value/aux1/aux2=Reserved.
func New(caseInsensitive, wholeWordsOnly bool) *Automaton {
	a := &Automaton{
		store:           nodestore.New(0),
		caseInsensitive: caseInsensitive,
		wholeWordsOnly:  wholeWordsOnly,
	}
	a.free = freeslot.New(a.occupied, 0, 0)
	a.store.WriteAll(0, 1, 0, Reserved, Reserved, Reserved)
	a.nodeCount = 1

	return a
}

// --- field accessors -------------------------------------------------

func (a *Automaton) base(n int32) int32     { return a.store.Base().SafeGet(int(n)) }
func (a *Automaton) parentOf(n int32) int32 { return a.store.Parent().SafeGet(int(n)) }
func (a *Automaton) value(n int32) int32    { return a.store.Value().SafeGet(int(n)) }
func (a *Automaton) aux1(n int32) int32     { return a.store.Aux1().SafeGet(int(n)) }
func (a *Automaton) aux2(n int32) int32     { return a.store.Aux2().SafeGet(int(n)) }
func (a *Automaton) occupied(n int32) bool  { return a.parentOf(n) != Reserved }

// IsBuilt reports whether Build has already completed.
func (a *Automaton) IsBuilt() bool { return a.built }

// NodeCount returns the total number of nodes, root included.
func (a *Automaton) NodeCount() int { return a.nodeCount }

// WholeWordsOnly reports the whole-word-boundary matching flag this
// automaton was constructed with.
func (a *Automaton) WholeWordsOnly() bool { return a.wholeWordsOnly }

// --- normalization -----------------------------------------------------

// normalizeRune expands a single input rune to the sequence of runes it
// folds to. Case-sensitive automatons return the rune unchanged. In
// case-insensitive mode, most runes lower to exactly one rune via
// unicode.ToLower; a small set of code points fold to more than one
// rune (expandingFolds) and are handled as a length-changing edge case.
func (a *Automaton) normalizeRune(r rune) []rune {
	if !a.caseInsensitive {
		return []rune{r}
	}

	if expanded, ok := expandingFolds[r]; ok {
		return expanded
	}

	return []rune{unicode.ToLower(r)}
}

// NormalizeRunes expands every rune of s under normalizeRune and
// concatenates the results. Façades use this both to precompute the
// normalized input once per Parse call and to validate key length.
func (a *Automaton) NormalizeRunes(s string) []rune {
	if !a.caseInsensitive {
		return []rune(s)
	}

	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, a.normalizeRune(r)...)
	}

	return out
}

// NormalizedRuneLen returns the rune length of key after normalization,
// without allocating the full expansion unless a rune actually expands.
func (a *Automaton) NormalizedRuneLen(key string) int {
	if !a.caseInsensitive {
		n := 0
		for range key {
			n++
		}

		return n
	}

	n := 0
	for _, r := range key {
		n += len(a.normalizeRune(r))
	}

	return n
}
