package rangekdtree_test

import (
	"testing"

	"github.com/go-sampen/sampen/kdpoint"
	"github.com/go-sampen/sampen/rangekdtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(box []int32, last int32) kdpoint.Point[int32] {
	coords := append(append([]int32{}, box...), last)
	return kdpoint.NewPoint(coords, 1)
}

func TestNewRangeTree2K_Errors(t *testing.T) {
	_, err := rangekdtree.NewRangeTree2K[int32](0, []kdpoint.Point[int32]{pt([]int32{0}, 0)})
	assert.ErrorIs(t, err, rangekdtree.ErrInvalidDimension)

	_, err = rangekdtree.NewRangeTree2K[int32](1, nil)
	assert.ErrorIs(t, err, rangekdtree.ErrEmptyInput)

	_, err = rangekdtree.NewRangeTree2K[int32](2, []kdpoint.Point[int32]{pt([]int32{0}, 0)})
	assert.ErrorIs(t, err, rangekdtree.ErrPointDimensionMismatch)
}

func TestRangeTree2K_StartsClosed(t *testing.T) {
	points := []kdpoint.Point[int32]{pt([]int32{0}, 0), pt([]int32{1}, 1)}
	tree, err := rangekdtree.NewRangeTree2K(1, points)
	require.NoError(t, err)

	a, b, err := tree.CountRange([]int32{-100}, []int32{100}, -100, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), a)
	assert.Equal(t, int64(0), b)
}

func TestRangeTree2K_JointCounting(t *testing.T) {
	// Box axis and last axis deliberately diverge so A < B.
	points := []kdpoint.Point[int32]{
		pt([]int32{0}, 0),
		pt([]int32{1}, 100),
		pt([]int32{2}, 2),
		pt([]int32{10}, 10),
	}
	tree, err := rangekdtree.NewRangeTree2K(1, points)
	require.NoError(t, err)
	for i := range points {
		require.NoError(t, tree.UpdateCount(i, 1))
	}

	// Box query [0, 2] matches points 0, 1, 2 (b == 3). Last-axis query
	// [0, 5] additionally requires the last coordinate in [0,5]: points
	// 0 (last=0) and 2 (last=2) qualify, point 1 (last=100) does not.
	a, b, err := tree.CountRange([]int32{0}, []int32{2}, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), b)
	assert.Equal(t, int64(2), a)
}

func TestRangeTree2K_CloseRemovesFromBothCounts(t *testing.T) {
	points := []kdpoint.Point[int32]{pt([]int32{0}, 0), pt([]int32{1}, 1)}
	tree, err := rangekdtree.NewRangeTree2K(1, points)
	require.NoError(t, err)
	for i := range points {
		require.NoError(t, tree.UpdateCount(i, 1))
	}

	a, b, err := tree.CountRange([]int32{0}, []int32{1}, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), a)
	assert.Equal(t, int64(2), b)

	require.NoError(t, tree.Close(0))
	a, b, err = tree.CountRange([]int32{0}, []int32{1}, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), a)
	assert.Equal(t, int64(1), b)
}

func TestRangeTree2K_PositionOutOfRange(t *testing.T) {
	points := []kdpoint.Point[int32]{pt([]int32{0}, 0), pt([]int32{1}, 1)}
	tree, err := rangekdtree.NewRangeTree2K(1, points)
	require.NoError(t, err)

	assert.ErrorIs(t, tree.UpdateCount(-1, 1), rangekdtree.ErrPositionOutOfRange)
	assert.ErrorIs(t, tree.UpdateCount(5, 1), rangekdtree.ErrPositionOutOfRange)
	assert.ErrorIs(t, tree.Close(5), rangekdtree.ErrPositionOutOfRange)
}

func TestRangeTree2K_RangeDimensionMismatch(t *testing.T) {
	points := []kdpoint.Point[int32]{pt([]int32{0}, 0), pt([]int32{1}, 1)}
	tree, err := rangekdtree.NewRangeTree2K(1, points)
	require.NoError(t, err)

	_, _, err = tree.CountRange([]int32{0, 0}, []int32{1, 1}, 0, 1)
	assert.ErrorIs(t, err, rangekdtree.ErrRangeDimensionMismatch)
}

// TestRangeTree2K_LargeSubtreeUsesIndexedPath exercises the Fenwick
// path in lastAxisTree (subtree size above bruteThreshold).
func TestRangeTree2K_LargeSubtreeUsesIndexedPath(t *testing.T) {
	const n = 200
	points := make([]kdpoint.Point[int32], n)
	for i := 0; i < n; i++ {
		points[i] = pt([]int32{int32(i)}, int32(n-i))
	}
	tree, err := rangekdtree.NewRangeTree2K(1, points)
	require.NoError(t, err)
	for i := range points {
		require.NoError(t, tree.UpdateCount(i, 1))
	}

	a, b, err := tree.CountRange([]int32{0}, []int32{int32(n - 1)}, 0, int32(n))
	require.NoError(t, err)
	assert.Equal(t, int64(n), b)
	assert.Equal(t, int64(n), a)

	// Narrow last-axis window: last-axis value for index i is n-i, so
	// last-axis in [0, 10] matches i in [190, 199] — 10 points.
	a, _, err = tree.CountRange([]int32{0}, []int32{int32(n - 1)}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), a)
}
