package kdtree

import "github.com/go-sampen/sampen/kdpoint"

// CountingTree2K is a static 2^K-ary spatial tree over a fixed point set
// that answers "sum of Count over currently open points inside this box"
// queries. Every point starts closed (weightedCount 0); callers open and
// close points by original index through UpdateCount/Close.
//
// Complexity: O(N log N) to build (2^K-ary median splits at every level),
// O(log N) amortized per UpdateCount/Close, O(sqrt-ish fan-out * log N)
// per CountRange in the typical case (degrades to O(N) worst case).
type CountingTree2K[T kdpoint.Numeric] struct {
	k          int
	root       *node[T]
	leaves     []*node[T]
	index2leaf []int
	n          int

	// Scratch BFS frontiers, pre-sized to n so CountRange never
	// allocates on the hot path.
	q1, q2 []*node[T]
}

// NewCountingTree2K builds a tree with fan-out 2^k over points. Every
// point starts closed; callers must UpdateCount them open before
// CountRange will report anything.
func NewCountingTree2K[T kdpoint.Numeric](k int, points []kdpoint.Point[T]) (*CountingTree2K[T], error) {
	if k <= 0 {
		return nil, ErrInvalidDimension
	}
	n := len(points)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	work := make([]kdpoint.Point[T], n)
	copy(work, points)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	index2leaf := make([]int, n)
	var leaves []*node[T]
	root := buildNode(k, 0, n, work, order, nil, &leaves, index2leaf)

	return &CountingTree2K[T]{
		k: k, root: root, leaves: leaves, index2leaf: index2leaf, n: n,
		q1: make([]*node[T], n), q2: make([]*node[T], n),
	}, nil
}

// N reports the number of points the tree was built over.
func (t *CountingTree2K[T]) N() int { return t.n }

// UpdateCount adjusts the open weight of the point originally at
// position by delta (positive to open/increase, negative to
// decrease/close).
func (t *CountingTree2K[T]) UpdateCount(position int, delta int32) error {
	if position < 0 || position >= t.n {
		return ErrPositionOutOfRange
	}
	if delta == 0 {
		return nil
	}
	t.leaves[t.index2leaf[position]].addWeight(int64(delta))
	return nil
}

// Close fully closes the point originally at position, whatever its
// current open weight is.
func (t *CountingTree2K[T]) Close(position int) error {
	if position < 0 || position >= t.n {
		return ErrPositionOutOfRange
	}
	leaf := t.leaves[t.index2leaf[position]]
	if leaf.weightedCount != 0 {
		leaf.addWeight(-leaf.weightedCount)
	}
	return nil
}

// CountRange sums the open weight of every point whose coordinates fall
// within [lower[i], upper[i]] on every axis i. It performs an iterative
// two-frontier BFS: a node entirely WITHIN the query box contributes its
// whole weightedCount without descending; a node only partially
// intersecting is expanded into its children; a node with no overlap is
// dropped.
func (t *CountingTree2K[T]) CountRange(lower, upper []T) (int64, error) {
	if len(lower) != t.k || len(upper) != t.k {
		return 0, ErrRangeDimensionMismatch
	}
	if t.root.weightedCount == 0 {
		return 0, nil
	}

	q1, q2 := t.q1, t.q2
	q1[0] = t.root
	n1, n2 := 1, 0

	var result int64
	for n1 > 0 {
		for j := 0; j < n1; j++ {
			cur := q1[j]
			switch classify(cur.box, lower, upper) {
			case within:
				result += cur.weightedCount
			case intersecting:
				for _, child := range cur.children {
					if child.weightedCount != 0 {
						q2[n2] = child
						n2++
					}
				}
			}
		}
		q1, q2 = q2, q1
		n1, n2 = n2, 0
	}
	return result, nil
}
