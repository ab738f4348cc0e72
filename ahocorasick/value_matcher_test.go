package ahocorasick_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matchkit/ahocorasick/ahocorasick"
)

func collectValues[V any](t *testing.T, seq func(func(ahocorasick.ValueMatch[V]) bool)) []ahocorasick.ValueMatch[V] {
	t.Helper()

	var got []ahocorasick.ValueMatch[V]
	seq(func(m ahocorasick.ValueMatch[V]) bool {
		got = append(got, m)
		return true
	})

	return got
}

func TestValueMatcher_BasicLookup(t *testing.T) {
	m := ahocorasick.NewValueMatcher[string](ahocorasick.Options{})
	require.NoError(t, m.Add("np", "no problem"))
	require.NoError(t, m.Add("ty", "thank you"))
	require.NoError(t, m.Build())

	seq, err := m.Parse("It was np, ty though.")
	require.NoError(t, err)

	got := collectValues[string](t, seq)

	var values []string
	for _, g := range got {
		values = append(values, g.Value)
	}

	require.Equal(t, []string{"no problem", "thank you"}, values)
}

func TestValueMatcher_ValueOfReturnsLatest(t *testing.T) {
	m := ahocorasick.NewValueMatcher[int](ahocorasick.Options{})
	require.NoError(t, m.Add("x", 1))
	require.NoError(t, m.Add("x", 2))

	v, ok := m.ValueOf("x")
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestValueMatcher_ReplaceUpdatesInPlace(t *testing.T) {
	m := ahocorasick.NewValueMatcher[int](ahocorasick.Options{})
	require.NoError(t, m.Add("x", 1))

	require.NoError(t, m.Replace("x", 99, false))

	v, ok := m.ValueOf("x")
	require.True(t, ok)
	require.Equal(t, 99, v)
}

func TestValueMatcher_ReplaceMissingWithoutInsertOnFail(t *testing.T) {
	m := ahocorasick.NewValueMatcher[int](ahocorasick.Options{})
	require.ErrorIs(t, m.Replace("x", 1, false), ahocorasick.ErrKeyNotFound)
}

func TestValueMatcher_ReplaceMissingWithInsertOnFail(t *testing.T) {
	m := ahocorasick.NewValueMatcher[int](ahocorasick.Options{})
	require.NoError(t, m.Replace("x", 1, true))

	v, ok := m.ValueOf("x")
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestValueMatcher_ReplaceAfterBuildRejected(t *testing.T) {
	m := ahocorasick.NewValueMatcher[int](ahocorasick.Options{})
	require.NoError(t, m.Add("x", 1))
	require.NoError(t, m.Build())

	require.ErrorIs(t, m.Replace("x", 2, true), ahocorasick.ErrAlreadyBuilt)
}

func TestValueMatcher_GenericFacadeKeepsOriginalKeyCasing(t *testing.T) {
	m := ahocorasick.NewValueMatcher[string](ahocorasick.Options{CaseInsensitive: true})
	require.NoError(t, m.Add("Cat", "Cat"))
	require.NoError(t, m.Build())

	seq, err := m.Parse("the CAT sat")
	require.NoError(t, err)

	got := collectValues[string](t, seq)
	require.Len(t, got, 1)
	require.Equal(t, "Cat", got[0].Value)
}
