package rankspace

import (
	"sort"

	"github.com/go-sampen/sampen/kdpoint"
)

// Rank lexicographically sorts points and returns the two mappings between
// original index and sorted rank: rank2index[rank] is the original index of
// the point occupying that rank, and index2rank is its inverse.
//
// Complexity: O(N log N) time, O(N) space.
func Rank[T kdpoint.Numeric](points []kdpoint.Point[T]) (rank2index, index2rank []uint32, err error) {
	n := len(points)
	if n == 0 {
		return nil, nil, ErrEmptyInput
	}

	rank2index = make([]uint32, n)
	for i := range rank2index {
		rank2index[i] = uint32(i)
	}

	sort.SliceStable(rank2index, func(a, b int) bool {
		return points[rank2index[a]].Less(points[rank2index[b]])
	})

	index2rank = InverseMap(rank2index)
	return rank2index, index2rank, nil
}

// Sorted materializes the sorted point set implied by rank2index: the
// point at rank i is points[rank2index[i]].
func Sorted[T kdpoint.Numeric](points []kdpoint.Point[T], rank2index []uint32) []kdpoint.Point[T] {
	sorted := make([]kdpoint.Point[T], len(points))
	for i, idx := range rank2index {
		sorted[i] = points[idx]
	}
	return sorted
}

// InverseMap returns index2rank such that index2rank[rank2index[i]] == i
// for every i. rank2index must be a permutation of [0, len(rank2index)).
func InverseMap(rank2index []uint32) []uint32 {
	index2rank := make([]uint32, len(rank2index))
	for rank, index := range rank2index {
		index2rank[index] = uint32(rank)
	}
	return index2rank
}
