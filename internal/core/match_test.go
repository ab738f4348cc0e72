package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matchkit/ahocorasick/internal/core"
)

type triple struct {
	start, end int
	value      int32
}

func collect(t *testing.T, seq core.MatchSeq) []triple {
	t.Helper()

	var got []triple
	seq(func(start, end int, value int32) bool {
		got = append(got, triple{start, end, value})
		return true
	})

	return got
}

func TestParse_EmptyAutomaton(t *testing.T) {
	a := core.New(false, false)
	require.NoError(t, a.Build())

	got := collect(t, a.Parse([]rune("any text"), byLength))
	require.Empty(t, got)
}

func TestParse_EmptyInput(t *testing.T) {
	a := core.New(false, false)
	require.NoError(t, a.AddEntry("cat", 3))
	require.NoError(t, a.Build())

	got := collect(t, a.Parse(nil, byLength))
	require.Empty(t, got)
}

func TestParse_NestedKeysDescendingLength(t *testing.T) {
	a := core.New(false, false)
	require.NoError(t, a.AddEntry("bobcat", 6))
	require.NoError(t, a.AddEntry("cat", 3))
	require.NoError(t, a.AddEntry("at", 2))
	require.NoError(t, a.Build())

	got := collect(t, a.Parse([]rune("I have a bobcat"), byLength))

	require.Equal(t, []triple{
		{9, 15, 6},
		{12, 15, 3},
		{13, 15, 2},
	}, got)
}

func TestParse_CatapultOrdering(t *testing.T) {
	a := core.New(false, false)
	for _, k := range []string{"cat", "at", "catapult", "tap", "a", "t"} {
		require.NoError(t, a.AddEntry(k, int32(len(k))))
	}
	require.NoError(t, a.Build())

	got := collect(t, a.Parse([]rune("catapult"), byLength))

	require.Equal(t, []triple{
		{1, 2, 1}, // a
		{0, 3, 3}, // cat
		{1, 3, 2}, // at
		{2, 3, 1}, // t
		{4, 5, 1}, // a
		{2, 5, 3}, // tap
		{0, 8, 8}, // catapult
		{7, 8, 1}, // t
	}, got)
}

func TestParse_OverlappingKeys(t *testing.T) {
	a := core.New(false, false)
	require.NoError(t, a.AddEntry("baby", 4))
	require.NoError(t, a.AddEntry("byte", 4))
	require.NoError(t, a.Build())

	got := collect(t, a.Parse([]rune("babyte"), byLength))

	require.Equal(t, []triple{
		{0, 4, 4},
		{2, 6, 4},
	}, got)
}

func TestParse_CaseSensitiveDefaultDistinguishesKeys(t *testing.T) {
	a := core.New(false, false)
	require.NoError(t, a.AddEntry("cAt", 1))
	require.NoError(t, a.AddEntry("CaT", 2))
	require.NoError(t, a.Build())

	// Payloads 1 and 2 tell the keys apart; both keys are three runes long.
	got := collect(t, a.Parse([]rune("CAT CaT CAt Cat cAT caT cAt cat"), func(int32) int { return 3 }))

	require.Equal(t, []triple{
		{4, 7, 2},   // CaT
		{24, 27, 1}, // cAt
	}, got)
}

func TestParse_CaseInsensitiveMatchesNormalizedInput(t *testing.T) {
	a := core.New(true, false)
	require.NoError(t, a.AddEntry("cat", 3))
	require.NoError(t, a.Build())

	got := collect(t, a.Parse(a.NormalizeRunes("The CAT sat"), byLength))

	require.Equal(t, []triple{{4, 7, 3}}, got)
}

func TestParse_WholeWordsOnlyRejectsAdjacentNonWhitespace(t *testing.T) {
	a := core.New(false, true)
	require.NoError(t, a.AddEntry("Expected", 8))
	require.NoError(t, a.AddEntry("Double Expected", 15))
	require.NoError(t, a.AddEntry("Exp", 3))
	require.NoError(t, a.Build())

	input := "Double Expected\tnotExpected notDouble\rExpected Expected\nExpectedNot Exp"
	got := collect(t, a.Parse([]rune(input), byLength))

	var starts []int
	for _, tr := range got {
		starts = append(starts, tr.start)
	}

	require.Equal(t, []int{0, 7, 38, 47, 68}, starts)
}

func TestParse_StopsWhenYieldReturnsFalse(t *testing.T) {
	a := core.New(false, false)
	require.NoError(t, a.AddEntry("cat", 3))
	require.NoError(t, a.AddEntry("at", 2))
	require.NoError(t, a.Build())

	var got []triple
	a.Parse([]rune("a cat at"), byLength)(func(start, end int, value int32) bool {
		got = append(got, triple{start, end, value})
		return false
	})

	require.Len(t, got, 1)
}

func TestParse_InsertionOrderDoesNotAffectResults(t *testing.T) {
	keys := map[string]int32{"cat": 3, "at": 2, "bobcat": 6}

	build := func(order []string) []triple {
		a := core.New(false, false)
		for _, k := range order {
			require.NoError(t, a.AddEntry(k, keys[k]))
		}
		require.NoError(t, a.Build())

		return collect(t, a.Parse([]rune("I have a bobcat"), byLength))
	}

	a := build([]string{"cat", "at", "bobcat"})
	b := build([]string{"bobcat", "at", "cat"})

	require.ElementsMatch(t, a, b)
}
