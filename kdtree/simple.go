package kdtree

import "github.com/go-sampen/sampen/kdpoint"

// CountSimple is the "simple-kd" parity baseline: it builds a
// CountingTree2K directly over raw, value-space points (no rank-space
// reduction) and counts matching pairs by opening points strictly in
// original order, one at a time, querying each newly-seen point against
// every previously-opened one. Because a matching pair (i, j) with i < j
// is discovered exactly once, when j queries against the already-open
// i, the running total is the total count of matching pairs under
// Chebyshev distance r.
//
// This never closes a point once opened, so it ignores any windowing:
// it is the direct O(N * query-cost) baseline used to cross-check the
// amortized sliding-window engines, not a production code path.
func CountSimple[T kdpoint.Numeric](points []kdpoint.Point[T], r T) (int64, error) {
	n := len(points)
	if n == 0 {
		return 0, ErrEmptyInput
	}
	k := points[0].Dim()

	tree, err := NewCountingTree2K(k, points)
	if err != nil {
		return 0, err
	}

	lower := make([]T, k)
	upper := make([]T, k)

	var total int64
	for i := 1; i < n; i++ {
		if err := tree.UpdateCount(i-1, points[i-1].Count()); err != nil {
			return 0, err
		}
		for d := 0; d < k; d++ {
			lower[d] = points[i].At(d) - r
			upper[d] = points[i].At(d) + r
		}
		count, err := tree.CountRange(lower, upper)
		if err != nil {
			return 0, err
		}
		total += count
	}
	return total, nil
}
