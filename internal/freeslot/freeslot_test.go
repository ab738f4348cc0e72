package freeslot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matchkit/ahocorasick/internal/freeslot"
)

func alwaysFree(int32) bool { return false }

func TestCache_AddAndPopForHit(t *testing.T) {
	c := freeslot.New(alwaysFree, 4, 10)

	c.Add(5)
	c.Add(10)

	require.Equal(t, int32(5), c.PopFor(0))
	require.Equal(t, 1, c.Len())
}

func TestCache_PopForSkipsTooSmallOffsetsButKeepsThem(t *testing.T) {
	c := freeslot.New(alwaysFree, 4, 3)

	c.Add(2)

	require.Equal(t, int32(0), c.PopFor(5))
	require.Equal(t, 1, c.Len(), "entry below the offset is kept, not consumed")
}

func TestCache_EvictsAfterMissTolerance(t *testing.T) {
	c := freeslot.New(alwaysFree, 4, 2)

	c.Add(2)

	require.Equal(t, int32(0), c.PopFor(5))
	require.Equal(t, 1, c.Len())

	require.Equal(t, int32(0), c.PopFor(5))
	require.Equal(t, 0, c.Len(), "entry evicted once miss tolerance reached")
}

func TestCache_OccupiedEntryIsDroppedNotReturned(t *testing.T) {
	occupied := map[int32]bool{3: true}
	c := freeslot.New(func(i int32) bool { return occupied[i] }, 4, 10)

	c.Add(3)
	c.Add(7)

	require.Equal(t, int32(7), c.PopFor(0))
	require.Equal(t, 0, c.Len())
}

func TestCache_AddNoOpWhenFull(t *testing.T) {
	c := freeslot.New(alwaysFree, 1, 10)

	c.Add(1)
	c.Add(2)

	require.Equal(t, 1, c.Len())
	require.Equal(t, int32(1), c.PopFor(0))
}

func TestCache_PopForEmptyReturnsZero(t *testing.T) {
	c := freeslot.New(alwaysFree, 4, 10)

	require.Equal(t, int32(0), c.PopFor(0))
}
