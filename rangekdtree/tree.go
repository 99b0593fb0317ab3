package rangekdtree

import "github.com/go-sampen/sampen/kdpoint"

// RangeTree2K is a static 2^K-ary spatial tree over points carrying
// boxDims+1 coordinates: the first boxDims form the box-splitting axes
// (a rank-space box, typically), and the last is held in a per-node
// lastAxisTree. CountRange answers both counts a query needs in one
// traversal: B, the count of open points inside the box, and A, the
// count of those also inside the last-axis interval.
type RangeTree2K[T kdpoint.Numeric] struct {
	boxDims    int
	root       *node[T]
	leaves     []*node[T]
	index2leaf []int
	refs       [][]ref[T]
	n          int

	q1, q2 []*node[T]
}

// NewRangeTree2K builds a tree with boxDims box-splitting axes over
// points, each of which must carry boxDims+1 coordinates. Every point
// starts closed.
func NewRangeTree2K[T kdpoint.Numeric](boxDims int, points []kdpoint.Point[T]) (*RangeTree2K[T], error) {
	if boxDims <= 0 {
		return nil, ErrInvalidDimension
	}
	n := len(points)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if points[0].Dim() != boxDims+1 {
		return nil, ErrPointDimensionMismatch
	}

	work := make([]kdpoint.Point[T], n)
	copy(work, points)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	index2leaf := make([]int, n)
	refs := make([][]ref[T], n)
	var leaves []*node[T]
	root := buildNode(boxDims, 0, n, work, order, nil, &leaves, index2leaf, refs)

	return &RangeTree2K[T]{
		boxDims: boxDims, root: root, leaves: leaves, index2leaf: index2leaf, refs: refs, n: n,
		q1: make([]*node[T], n), q2: make([]*node[T], n),
	}, nil
}

// N reports the number of points the tree was built over.
func (t *RangeTree2K[T]) N() int { return t.n }

func (t *RangeTree2K[T]) addWeight(position int, delta int64) error {
	if position < 0 || position >= t.n {
		return ErrPositionOutOfRange
	}
	if delta == 0 {
		return nil
	}
	for _, r := range t.refs[position] {
		r.node.weightedCount += delta
		r.node.subtree.add(r.localIdx, delta)
	}
	return nil
}

// UpdateCount adjusts the open weight of the point originally at
// position by delta, propagating the change to every ancestor node's
// weightedCount and lastAxisTree.
func (t *RangeTree2K[T]) UpdateCount(position int, delta int32) error {
	return t.addWeight(position, int64(delta))
}

// Close fully closes the point originally at position.
func (t *RangeTree2K[T]) Close(position int) error {
	if position < 0 || position >= t.n {
		return ErrPositionOutOfRange
	}
	leaf := t.leaves[t.index2leaf[position]]
	if leaf.weightedCount == 0 {
		return nil
	}
	return t.addWeight(position, -leaf.weightedCount)
}

// CountRange returns (a, b): b is the open weight inside the box
// [lower, upper], and a is the subset of that weight whose last-axis
// coordinate also falls inside [lastAxisLower, lastAxisUpper]. Both are
// computed in a single two-frontier BFS.
func (t *RangeTree2K[T]) CountRange(lower, upper []T, lastAxisLower, lastAxisUpper T) (a, b int64, err error) {
	if len(lower) != t.boxDims || len(upper) != t.boxDims {
		return 0, 0, ErrRangeDimensionMismatch
	}
	if t.root.weightedCount == 0 {
		return 0, 0, nil
	}

	q1, q2 := t.q1, t.q2
	q1[0] = t.root
	n1, n2 := 1, 0

	for n1 > 0 {
		for j := 0; j < n1; j++ {
			cur := q1[j]
			switch classify(cur.lower, cur.upper, lower, upper) {
			case within:
				b += cur.weightedCount
				a += cur.subtree.countRange(lastAxisLower, lastAxisUpper)
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
	return a, b, nil
}
