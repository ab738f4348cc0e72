// Package ahocorasick implements a low-memory multi-pattern string
// matcher: build a dictionary of keys once, then scan any number of
// input strings for every occurrence of any key, including nested and
// overlapping matches.
//
// Two façades share one underlying automaton. StringMatcher treats
// each key as its own value and stores only its length; ValueMatcher
// associates each key with an arbitrary value of type V. Both follow
// the same lifecycle: construct, Add/AddAll keys, Build once, then
// Parse any number of inputs. Add and Replace return an error wrapping
// ErrState if called after Build.
package ahocorasick
