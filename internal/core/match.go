package core

import "unicode"

// LengthFunc maps a stored payload value to the rune length of the key
// it was recorded for. StringMatcher's payload is the length itself;
// ValueMatcher looks it up in a side vector. Parse uses it only to
// derive each match's start position and to check word boundaries.
type LengthFunc func(value int32) int

// MatchSeq is a lazy, pull-based stream of matches: start and end are
// rune offsets into the normalized input, end exclusive. Iteration
// stops as soon as yield returns false, and advances the underlying
// scan no further than necessary to produce the result it just handed
// back - callers that break out of a range loop pay for nothing past
// that point.
type MatchSeq func(yield func(start, end int, value int32) bool)

// step transitions from state s on code unit u, chasing failure links
// when the trie has no direct edge. Returns 0 (root) when even root has
// no edge for u.
func (a *Automaton) step(s int32, u rune) int32 {
	uOffset := int32(u)
	t := a.base(s) + uOffset

	for a.parentOf(t) != s && s != 0 {
		s = a.aux1(s) // failure link, finalized by Build
		t = a.base(s) + uOffset
	}

	if a.parentOf(t) == s {
		return t
	}

	return 0
}

// Parse scans normInput against the automaton and returns a lazy
// sequence of matches. length maps a node's stored payload to the rune
// length of the key it terminates, which Parse uses to derive each
// match's start and, in whole-word mode, to locate the boundary runes.
//
// Per advance step the deepest match at the current node is emitted
// first, then progressively shorter suffix-key matches via the prefix
// chain, before another input rune is consumed: results are globally
// ordered by end position ascending, then by length descending.
func (a *Automaton) Parse(normInput []rune, length LengthFunc) MatchSeq {
	return func(yield func(start, end int, value int32) bool) {
		var (
			current int32 = 0
			pending int32 = Reserved
			i       int
		)

		for {
			var v int32

			if pending == Reserved {
				if i == len(normInput) {
					return
				}

				current = a.step(current, normInput[i])
				i++

				pending = a.aux2(current)
				v = a.value(current)

				if v == Reserved {
					continue
				}
			} else {
				v = a.value(pending)
				pending = a.aux2(pending)
			}

			end := i
			start := end - length(v)

			if a.wholeWordsOnly && !isWordBoundary(normInput, start, end) {
				continue
			}

			if !yield(start, end, v) {
				return
			}
		}
	}
}

// isWordBoundary reports whether the rune immediately before start and
// the rune immediately at end are whitespace, treating the positions
// outside norm as boundaries too.
func isWordBoundary(norm []rune, start, end int) bool {
	if start > 0 && !unicode.IsSpace(norm[start-1]) {
		return false
	}

	if end < len(norm) && !unicode.IsSpace(norm[end]) {
		return false
	}

	return true
}
