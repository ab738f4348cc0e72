package core

import (
	"errors"
	"fmt"
)

// Errors fall into two categories, mirroring the reference repo's
// rebuild-class/transient-class split in spirit: ArgumentErrors are
// caller mistakes discoverable before any mutation happens, StateErrors
// are preconditions violated by calling an operation at the wrong point
// in the automaton's lifecycle. Callers classify with errors.Is against
// either the specific error or the umbrella kind below.
var (
	// ErrArgument is the umbrella for invalid-argument failures.
	ErrArgument = errors.New("ahocorasick: invalid argument")

	// ErrState is the umbrella for invalid-lifecycle-state failures.
	ErrState = errors.New("ahocorasick: invalid state")
)

var (
	// ErrEmptyKey is returned by AddEntry for an empty key.
	ErrEmptyKey = fmt.Errorf("%w: key must not be empty", ErrArgument)

	// ErrAlreadyBuilt is returned by AddEntry or Build once Build has
	// already succeeded once.
	ErrAlreadyBuilt = fmt.Errorf("%w: automaton already built", ErrState)

	// ErrNotBuilt is returned by Parse before Build has run.
	ErrNotBuilt = fmt.Errorf("%w: automaton not yet built", ErrState)
)
