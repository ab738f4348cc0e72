package intvec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matchkit/ahocorasick/internal/intvec"
)

func TestChunkedVector_SafeGetDefaultBeforeWrite(t *testing.T) {
	v := intvec.NewChunkedVector(4, intvec.Reserved)

	require.Equal(t, intvec.Reserved, v.SafeGet(0))
	require.Equal(t, intvec.Reserved, v.SafeGet(1000))
	require.Equal(t, 0, v.Len())
}

func TestChunkedVector_SafeSetGrowsAndReportsGrowth(t *testing.T) {
	v := intvec.NewChunkedVector(4, intvec.Reserved)

	grew := v.SafeSet(0, 7)
	require.True(t, grew)
	require.Equal(t, 1, v.Len())
	require.Equal(t, int32(7), v.Get(0))

	grew = v.SafeSet(0, 9)
	require.False(t, grew)
	require.Equal(t, int32(9), v.Get(0))
}

func TestChunkedVector_SpansMultipleLeaves(t *testing.T) {
	const chunkSize = 4
	v := intvec.NewChunkedVector(chunkSize, intvec.Reserved)

	for i := 0; i < chunkSize*3+1; i++ {
		v.SafeSet(i, int32(i))
	}

	for i := 0; i < chunkSize*3+1; i++ {
		require.Equal(t, int32(i), v.Get(i))
	}

	// Unwritten index within an allocated leaf keeps the default.
	v2 := intvec.NewChunkedVector(chunkSize, intvec.Reserved)
	v2.SafeSet(chunkSize+2, 1)
	require.Equal(t, intvec.Reserved, v2.SafeGet(chunkSize))
}

func TestChunkedVector_GetOutOfBoundsPanics(t *testing.T) {
	v := intvec.NewChunkedVector(4, intvec.Reserved)

	require.Panics(t, func() { v.Get(0) })
	require.Panics(t, func() { v.Set(0, 1) })
}

func TestChunkedVector_RejectsNonPowerOfTwoChunkSize(t *testing.T) {
	require.Panics(t, func() { intvec.NewChunkedVector(3, 0) })
}
