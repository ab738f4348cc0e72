package ahocorasick

import (
	"fmt"

	"github.com/matchkit/ahocorasick/internal/core"
)

// Error classification. Implementations may wrap these with additional
// context; callers classify with errors.Is against either the specific
// error or the umbrella kind.
var (
	// ErrArgument is the umbrella for invalid-argument failures.
	ErrArgument = core.ErrArgument
	// ErrState is the umbrella for invalid-lifecycle-state failures.
	ErrState = core.ErrState
)

var (
	// ErrEmptyKey is returned by Add for an empty key.
	ErrEmptyKey = core.ErrEmptyKey

	// ErrAlreadyBuilt is returned by Add, Replace, or Build once Build
	// has already succeeded once.
	ErrAlreadyBuilt = core.ErrAlreadyBuilt

	// ErrNotBuilt is returned by Parse before Build has run.
	ErrNotBuilt = core.ErrNotBuilt

	// ErrCaseFoldExpands is returned by StringMatcher.Add in
	// case-insensitive mode when a key contains a code unit whose
	// normalized form is more than one rune long: the length-based
	// start = end - length(key) derivation would silently misplace the
	// match, so such keys are rejected rather than accepted.
	ErrCaseFoldExpands = fmt.Errorf("%w: key's case-folded length differs from its own length", ErrArgument)

	// ErrKeyNotFound is returned by ValueMatcher.Replace when key is
	// absent and insertOnFail is false.
	ErrKeyNotFound = fmt.Errorf("%w: key not found", ErrArgument)
)
