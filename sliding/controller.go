package sliding

import (
	"github.com/go-sampen/sampen/kdpoint"
	"github.com/go-sampen/sampen/kdtree"
	"github.com/go-sampen/sampen/rangekdtree"
	"github.com/go-sampen/sampen/rankspace"
	"github.com/go-sampen/sampen/template"
)

// prepare extracts padDim-dimensional templates from seq, rank-sorts
// them, derives matching bounds from the threshold r, remaps them into
// a rank-space grid, and returns only the entries with positive count
// together with their position in the full rank-sorted order (the
// "points_count_indices" of the window-advance loop below). closeAux
// controls whether auxiliary padding points are re-zeroed after
// sorting; the B-only path relies solely on template.ExtractPadded
// having zeroed them at creation, while the joint path additionally
// re-asserts it post-sort, mirroring the upstream algorithm exactly.
func prepare[T kdpoint.Numeric](seq []T, padDim int, r T, closeAux bool) (rankspace.Bounds, []kdpoint.Point[uint32], []uint32, error) {
	points, err := template.ExtractPadded(seq, padDim)
	if err != nil {
		return rankspace.Bounds{}, nil, nil, err
	}

	rank2index, _, err := rankspace.Rank(points)
	if err != nil {
		return rankspace.Bounds{}, nil, nil, err
	}
	sorted := rankspace.Sorted(points, rank2index)
	if closeAux {
		rankspace.CloseAuxiliary(sorted, rank2index)
	}

	bounds := rankspace.ComputeBounds(sorted, r)
	grid := rankspace.MapToGrid(sorted, rank2index, true)

	gridPoints := make([]kdpoint.Point[uint32], 0, len(grid))
	gridIndices := make([]uint32, 0, len(grid))
	for i, p := range grid {
		if sorted[i].Count() == 0 {
			continue
		}
		gridPoints = append(gridPoints, p)
		gridIndices = append(gridIndices, uint32(i))
	}

	return bounds, gridPoints, gridIndices, nil
}

// ComputeB returns the count of matched m-length template pairs within
// Chebyshev distance r, using kdtree.CountingTree2K over a rank-space
// reduction of dimension m-1.
func ComputeB[T kdpoint.Numeric](seq []T, m int, r T) (int64, error) {
	if m <= 0 {
		return 0, ErrInvalidDimension
	}
	if len(seq) <= m {
		return 0, ErrShortInput
	}

	bounds, gridPoints, gridIndices, err := prepare(seq, m, r, false)
	if err != nil {
		return 0, err
	}
	nCount := len(gridPoints)
	if nCount == 0 {
		return 0, nil
	}

	gridDim := gridPoints[0].Dim()
	tree, err := kdtree.NewCountingTree2K(gridDim, gridPoints)
	if err != nil {
		return 0, err
	}

	var result int64
	var upperboundPrev uint32
	for i := 0; i < nCount-1; i++ {
		if err := tree.Close(i); err != nil {
			return 0, err
		}

		rank1 := gridIndices[i]
		upperbound := bounds.Upper[rank1]
		countRepeated := int64(gridPoints[i].Count())
		result += (countRepeated - 1) * countRepeated / 2

		if upperbound < gridIndices[i+1] {
			continue
		}
		if upperboundPrev < rank1 {
			upperboundPrev = rank1
		}
		j := i + 1
		for j < nCount && gridIndices[j] <= upperboundPrev {
			j++
		}
		for j < nCount && gridIndices[j] <= upperbound {
			if err := tree.UpdateCount(j, gridPoints[j].Count()); err != nil {
				return 0, err
			}
			j++
		}

		lower, upper := rankspace.HyperCube(gridPoints[i], bounds)
		count, err := tree.CountRange(lower, upper)
		if err != nil {
			return 0, err
		}
		result += count * countRepeated
		upperboundPrev = upperbound
	}
	return result, nil
}

// ComputeABKD returns (a, b) exactly like ComputeAB, but drives two
// independent passes over kdtree.CountingTree2K (the plain counting tree,
// not rangekdtree's fused range tree): one at dimension m+1 for a, one at
// dimension m for b, both restricted to the same aligned N-m template
// range. This is the kd-counting-tree exact engine — a distinct index
// structure and code path from ComputeAB's range-tree, kept so the two
// can cross-check each other.
//
// b's aligned range is obtained by dropping the trailing sample before
// calling ComputeB: templates of dimension m over seq[:len(seq)-1] are
// exactly the N-m templates that don't touch seq's final sample, the same
// restriction ComputeAB and the direct baseline apply.
func ComputeABKD[T kdpoint.Numeric](seq []T, m int, r T) (a, b int64, err error) {
	if m <= 0 {
		return 0, 0, ErrInvalidDimension
	}
	if len(seq) <= m+1 {
		return 0, 0, ErrShortInput
	}

	b, err = ComputeB(seq[:len(seq)-1], m, r)
	if err != nil {
		return 0, 0, err
	}
	a, err = ComputeB(seq, m+1, r)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// ComputeSampledAB computes (a, b) restricted to the caller-supplied,
// ascending-sorted set of template start-indices: only templates at those
// indices are ever rank-sorted, opened or queried, and only pairs drawn
// from the sample itself are counted — the sample is the universe this
// pass works against, not the full signal. This is the joint (A,B)
// sampling estimator driving the same range-tree window-advance shape as
// ComputeAB, scoped down to a small population instead of [0, N-m).
//
// Unlike ComputeAB, no auxiliary padding is used: ExtractAt returns
// exactly len(indices) points, so every window position is already
// count-bearing and nothing needs skipping.
func ComputeSampledAB[T kdpoint.Numeric](seq []T, indices []int, m int, r T) (a, b int64, err error) {
	if m <= 0 {
		return 0, 0, ErrInvalidDimension
	}
	if len(indices) == 0 {
		return 0, 0, nil
	}

	points, err := template.ExtractAt(seq, indices, m+1)
	if err != nil {
		return 0, 0, err
	}

	rank2index, _, err := rankspace.Rank(points)
	if err != nil {
		return 0, 0, err
	}
	sorted := rankspace.Sorted(points, rank2index)
	bounds := rankspace.ComputeBounds(sorted, r)
	gridPoints := rankspace.MapToGrid(sorted, rank2index, true)

	nCount := len(gridPoints)
	if nCount < 2 {
		return 0, 0, nil
	}

	gridDim := gridPoints[0].Dim()
	tree, err := rangekdtree.NewRangeTree2K(gridDim-1, gridPoints)
	if err != nil {
		return 0, 0, err
	}

	var upperboundPrev uint32
	for i := 0; i < nCount-1; i++ {
		if err := tree.Close(i); err != nil {
			return 0, 0, err
		}

		rank1 := uint32(i)
		upperbound := bounds.Upper[rank1]
		if upperbound < uint32(i+1) {
			continue
		}
		if upperboundPrev < rank1 {
			upperboundPrev = rank1
		}
		j := i + 1
		for j < nCount && uint32(j) <= upperboundPrev {
			j++
		}
		for j < nCount && uint32(j) <= upperbound {
			if err := tree.UpdateCount(j, gridPoints[j].Count()); err != nil {
				return 0, 0, err
			}
			j++
		}

		lower, upper := rankspace.HyperCube(gridPoints[i], bounds)
		boxDims := gridDim - 1
		da, db, err := tree.CountRange(lower[:boxDims], upper[:boxDims], lower[boxDims], upper[boxDims])
		if err != nil {
			return 0, 0, err
		}
		a += da
		b += db
		upperboundPrev = upperbound
	}
	return a, b, nil
}

// ComputeAB returns (a, b): a is the count of matched (m+1)-length
// template pairs, b the count of matched m-length prefixes, computed in
// one window-advance pass over rangekdtree.RangeTree2K so every query
// contributes to both counts at once.
func ComputeAB[T kdpoint.Numeric](seq []T, m int, r T) (a, b int64, err error) {
	if m <= 0 {
		return 0, 0, ErrInvalidDimension
	}
	if len(seq) <= m+1 {
		return 0, 0, ErrShortInput
	}

	bounds, gridPoints, gridIndices, err := prepare(seq, m+1, r, true)
	if err != nil {
		return 0, 0, err
	}
	nCount := len(gridPoints)
	if nCount == 0 {
		return 0, 0, nil
	}

	gridDim := gridPoints[0].Dim()
	tree, err := rangekdtree.NewRangeTree2K(gridDim-1, gridPoints)
	if err != nil {
		return 0, 0, err
	}

	var upperboundPrev uint32
	for i := 0; i < nCount-1; i++ {
		if err := tree.Close(i); err != nil {
			return 0, 0, err
		}

		rank1 := gridIndices[i]
		upperbound := bounds.Upper[rank1]
		if upperbound < gridIndices[i+1] {
			continue
		}
		if upperboundPrev < rank1 {
			upperboundPrev = rank1
		}
		j := i + 1
		for j < nCount && gridIndices[j] <= upperboundPrev {
			j++
		}
		for j < nCount && gridIndices[j] <= upperbound {
			if err := tree.UpdateCount(j, gridPoints[j].Count()); err != nil {
				return 0, 0, err
			}
			j++
		}

		lower, upper := rankspace.HyperCube(gridPoints[i], bounds)
		boxDims := gridDim - 1
		da, db, err := tree.CountRange(lower[:boxDims], upper[:boxDims], lower[boxDims], upper[boxDims])
		if err != nil {
			return 0, 0, err
		}
		a += da
		b += db
		upperboundPrev = upperbound
	}
	return a, b, nil
}
