package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matchkit/ahocorasick/internal/core"
)

func TestNormalizedRuneLen_CaseSensitivePassesThrough(t *testing.T) {
	a := core.New(false, false)
	require.Equal(t, 5, a.NormalizedRuneLen("Hello"))
}

func TestNormalizedRuneLen_ExpandingCodePoint(t *testing.T) {
	a := core.New(true, false)
	require.Equal(t, 2, a.NormalizedRuneLen("İ")) // İ folds to "i" + combining dot above
}

func TestNormalizeRunes_PreservesAlignmentPerCodeUnit(t *testing.T) {
	a := core.New(true, false)
	got := a.NormalizeRunes("CAT")
	require.Equal(t, []rune("cat"), got)
}
