package bisect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertionPoint_Exact(t *testing.T) {
	idx, ok := At(7).Exact()
	require.True(t, ok)
	require.Equal(t, 7, idx)

	_, ok = Before(7).Exact()
	require.False(t, ok)
	_, ok = After(7).Exact()
	require.False(t, ok)
}

func TestInsertionPoint_FloorCeiling(t *testing.T) {
	assert.Equal(t, 7, At(7).Floor())
	assert.Equal(t, 7, At(7).Ceiling())
	assert.Equal(t, 6, Before(7).Floor())
	assert.Equal(t, 7, Before(7).Ceiling())
	assert.Equal(t, 7, After(7).Floor())
	assert.Equal(t, 8, After(7).Ceiling())
}

func TestInsertionPoint_Saturation(t *testing.T) {
	assert.Equal(t, int32(math.MinInt32), Before(int32(math.MinInt32)).Floor())
	assert.Equal(t, int32(math.MaxInt32), After(int32(math.MaxInt32)).Ceiling())
	assert.Equal(t, int64(math.MinInt64), Before(int64(math.MinInt64)).Floor())
	assert.Equal(t, int64(math.MaxInt64), After(int64(math.MaxInt64)).Ceiling())
	assert.Equal(t, int8(math.MinInt8), Before(int8(math.MinInt8)).Floor())
	assert.Equal(t, int8(math.MaxInt8), After(int8(math.MaxInt8)).Ceiling())

	assert.True(t, Before(int32(math.MinInt32)).IsBelowAll())
	assert.True(t, After(int32(math.MaxInt32)).IsAboveAll())
	assert.False(t, Before(int32(0)).IsBelowAll())
	assert.False(t, After(int32(0)).IsAboveAll())
	assert.False(t, At(int32(math.MaxInt32)).IsAboveAll())
}

func TestInsertionPoint_AdjacentGapRepresentations(t *testing.T) {
	// Before(i) and After(i-1) are the same logical gap yet distinct
	// representations.
	require.NotEqual(t, Before(4), After(3))
	require.Equal(t, Before(4).Floor(), After(3).Floor())
	require.Equal(t, Before(4).Ceiling(), After(3).Ceiling())
}

func TestInsertionPoint_String(t *testing.T) {
	assert.Equal(t, "at 2", At(2).String())
	assert.Equal(t, "before 2", Before(2).String())
	assert.Equal(t, "after 2", After(2).String())
}

func TestIndexLimits(t *testing.T) {
	require.Equal(t, int32(math.MinInt32), minIndex[int32]())
	require.Equal(t, int32(math.MaxInt32), maxIndex[int32]())
	require.Equal(t, int64(math.MinInt64), minIndex[int64]())
	require.Equal(t, int64(math.MaxInt64), maxIndex[int64]())
	require.Equal(t, math.MinInt, minIndex[int]())
	require.Equal(t, math.MaxInt, maxIndex[int]())
}

func TestSpan(t *testing.T) {
	s := Closed(1, 3)
	require.False(t, s.IsEmpty())
	require.Equal(t, 1, s.Lo())
	require.Equal(t, 3, s.Hi())
	require.True(t, s.Contains(1))
	require.True(t, s.Contains(3))
	require.False(t, s.Contains(0))
	require.False(t, s.Contains(4))
	require.Equal(t, "[1, 3]", s.String())

	e := EmptyAt(4)
	require.True(t, e.IsEmpty())
	require.Equal(t, 4, e.Lo())
	require.Equal(t, 4, e.Hi())
	require.False(t, e.Contains(4))
	require.Equal(t, "[4, 4)", e.String())

	require.Panics(t, func() { Closed(3, 1) })
}
