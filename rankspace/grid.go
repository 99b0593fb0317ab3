package rankspace

import "github.com/go-sampen/sampen/kdpoint"

// MapToGrid re-expresses a sorted K-dimensional point set as a (K-1)-
// dimensional integer-rank point set. Coordinate 0 is dropped (it is
// implicit in a point's rank within sorted); coordinate j of the result
// is the rank reached by following the cyclic successor map j+1 times
// from rank i, where the successor of rank i is the rank of the point
// whose original index is one past sorted[i]'s original index (wrapping
// modulo N). This is the rank-space construction that lets the counting
// trees operate over small integers instead of arbitrary value types.
//
// When skipNoCount is true, points with Count == 0 are left as zero-value
// grid points (never consulted by callers, since they filter on Count);
// skipNoCount should be false only when every point, including zero-count
// ones, must retain a meaningful grid coordinate (the disabled-rank
// accounting paths).
//
// Complexity: O(N*K) time, O(N*K) space.
func MapToGrid[T kdpoint.Numeric](sorted []kdpoint.Point[T], rank2index []uint32, skipNoCount bool) []kdpoint.Point[uint32] {
	n := len(sorted)
	if n == 0 {
		return nil
	}
	k := sorted[0].Dim()

	index2rank := InverseMap(rank2index)
	rank2next := make([]uint32, n)
	for i := 0; i < n; i++ {
		rank2next[i] = index2rank[(rank2index[i]+1)%uint32(n)]
	}

	result := make([]kdpoint.Point[uint32], n)
	for i := range result {
		result[i] = kdpoint.NewPoint(make([]uint32, k-1), 0)
	}

	for i := 0; i < n; i++ {
		count := sorted[i].Count()
		if skipNoCount && count == 0 {
			continue
		}
		result[i].SetCount(count)
		grid := uint32(i)
		for j := 0; j < k-1; j++ {
			grid = rank2next[grid]
			result[i].Set(j, grid)
		}
	}

	return result
}

// CloseAuxiliary marks the Count of every point in sorted to 1, except
// auxiliary padding points (identified by their original index being one
// of the last K-1 indices appended by template.ExtractPadded), which are
// set to 0. It implements the resolved auxiliary-point policy: an
// auxiliary point never contributes to a range count and is never opened
// by the sliding-window controller.
//
// Complexity: O(N) time.
func CloseAuxiliary[T kdpoint.Numeric](sorted []kdpoint.Point[T], rank2index []uint32) {
	n := len(sorted)
	if n == 0 {
		return
	}
	k := sorted[0].Dim()

	for i := 0; i < n; i++ {
		if int(rank2index[i]) >= n-k+1 {
			sorted[i].SetCount(0)
		} else {
			sorted[i].SetCount(1)
		}
	}
}

// MergeRepeated collapses runs of lexicographically equal points (adjacent
// in sorted) into a single representative carrying the sum of their
// counts, excluding any auxiliary points in the run from that sum. The
// representative is the last member of the run; every other member ends
// up with Count == 0, and so does a representative whose run holds only
// auxiliary points.
//
// Complexity: O(N) time.
func MergeRepeated[T kdpoint.Numeric](sorted []kdpoint.Point[T], rank2index []uint32) {
	n := len(sorted)
	if n == 0 {
		return
	}
	k := sorted[0].Dim()

	i := 0
	for i < n {
		j := i
		var count int32
		for j < n && sorted[j].Equal(sorted[i]) {
			if int(rank2index[j]) < n-k+1 {
				count += sorted[j].Count()
			}
			sorted[j].SetCount(0)
			j++
		}
		sorted[j-1].SetCount(count)
		i = j
	}
}
