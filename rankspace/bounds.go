package rankspace

import "github.com/go-sampen/sampen/kdpoint"

// Bounds holds, per rank i of a lexicographically sorted point set, the
// widest contiguous rank window [Lower[i], Upper[i]] whose first-axis
// coordinate stays within the matching threshold r of sorted[i]'s first
// coordinate. Both slices are monotonically non-decreasing in i.
type Bounds struct {
	Lower []uint32
	Upper []uint32
}

// ComputeBounds derives Bounds from sorted, a point set already sorted in
// ascending lexicographic order (as produced by Rank/Sorted). It only
// examines each point's first coordinate, via two linear scans exploiting
// that first-axis values are non-decreasing in rank order.
//
// Complexity: O(N) time, O(N) space.
func ComputeBounds[T kdpoint.Numeric](sorted []kdpoint.Point[T], r T) Bounds {
	n := len(sorted)
	bounds := Bounds{Lower: make([]uint32, n), Upper: make([]uint32, n)}
	if n == 0 {
		return bounds
	}

	data := make([]T, n)
	for i, p := range sorted {
		data[i] = p.At(0)
	}

	k := 0
	for i := 0; i < n; i++ {
		for data[k]+r < data[i] {
			k++
		}
		bounds.Lower[i] = uint32(k)
	}

	k = n - 1
	for i := n; i > 0; i-- {
		for data[k]-r > data[i-1] {
			k--
		}
		bounds.Upper[i-1] = uint32(k)
	}

	return bounds
}

// HyperCube translates a rank-space grid point into the query box a
// range count should use: coordinate j of point is itself the rank of
// some original point, so axis j's bound is [bounds.Lower[coord],
// bounds.Upper[coord]] — the same contiguous rank window that point
// would use if it were doing the matching itself.
func HyperCube(point kdpoint.Point[uint32], bounds Bounds) (lower, upper []uint32) {
	dim := point.Dim()
	lower = make([]uint32, dim)
	upper = make([]uint32, dim)
	for j := 0; j < dim; j++ {
		r := point.At(j)
		lower[j] = bounds.Lower[r]
		upper[j] = bounds.Upper[r]
	}
	return lower, upper
}
