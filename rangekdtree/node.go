package rangekdtree

import "github.com/go-sampen/sampen/kdpoint"

// node is one node of a range KD tree: a box over boxDims axes plus a
// lastAxisTree over the one remaining coordinate, built from every point
// spanned by this node (leaf or internal alike).
type node[T kdpoint.Numeric] struct {
	lower, upper []T
	father       *node[T]
	children     []*node[T]
	weightedCount int64
	subtree       *lastAxisTree[T]
	isLeaf        bool
}

// ref points a point's original index at the (node, local index within
// that node's lastAxisTree) pair it must update whenever it opens or
// closes. Every point accumulates one ref per ancestor, leaf to root.
type ref[T kdpoint.Numeric] struct {
	node     *node[T]
	localIdx int
}

func computeBoxBounds[T kdpoint.Numeric](points []kdpoint.Point[T], boxDims int) (lower, upper []T) {
	lower = make([]T, boxDims)
	upper = make([]T, boxDims)
	for i := 0; i < boxDims; i++ {
		lower[i] = points[0].At(i)
		upper[i] = points[0].At(i)
	}
	for _, p := range points[1:] {
		for i := 0; i < boxDims; i++ {
			v := p.At(i)
			if v < lower[i] {
				lower[i] = v
			}
			if v > upper[i] {
				upper[i] = v
			}
		}
	}
	return lower, upper
}

type relation int

const (
	notIntersecting relation = iota
	within
	intersecting
)

func classify[T kdpoint.Numeric](nodeLower, nodeUpper, qLower, qUpper []T) relation {
	result := within
	for i := range nodeLower {
		a, b, c, d := nodeLower[i], nodeUpper[i], qLower[i], qUpper[i]
		if a > d || b < c {
			return notIntersecting
		}
		if a < c || b > d {
			result = intersecting
		}
	}
	return result
}

// buildNode partitions points[lo:hi] (with order tracking original
// indices) into a 2^K-ary box tree over boxDims axes. Before descending
// into children (which further reorders the segment for box-splitting),
// it builds this node's own lastAxisTree over the segment's remaining
// coordinate and records a ref for every point it spans — so a point
// deep in the tree accumulates one ref per ancestor on its way to the
// root, exactly the set of subtrees CountRange will consult for it.
func buildNode[T kdpoint.Numeric](boxDims, lo, hi int, points []kdpoint.Point[T], order []int, father *node[T], leaves *[]*node[T], index2leaf []int, refs [][]ref[T]) *node[T] {
	segment := points[lo:hi]
	count := len(segment)

	n := &node[T]{father: father}
	n.lower, n.upper = computeBoxBounds(segment, boxDims)

	lastAxisValues := make([]T, count)
	for i, p := range segment {
		lastAxisValues[i] = p.At(boxDims)
	}
	n.subtree = newLastAxisTree(lastAxisValues)
	for i := 0; i < count; i++ {
		origIdx := order[lo+i]
		refs[origIdx] = append(refs[origIdx], ref[T]{node: n, localIdx: i})
	}

	if count == 1 {
		n.isLeaf = true
		index2leaf[order[lo]] = len(*leaves)
		*leaves = append(*leaves, n)
		return n
	}

	fanout := 1 << uint(boxDims)
	splitters := make([]int, fanout+1)
	splitters[0] = lo
	splitters[fanout] = hi

	for i := 0; i < boxDims; i++ {
		spacing := fanout >> uint(i)
		for j := 0; j < (1 << uint(i)); j++ {
			s1 := splitters[j*spacing]
			s2 := splitters[(j+1)*spacing]
			median := s1 + (s2-s1)/2
			splitters[j*spacing+spacing/2] = median
			selectNth(points, order, i, median, s1, s2-1)
		}
	}

	for i := 0; i < fanout; i++ {
		s1, s2 := splitters[i], splitters[i+1]
		if s1 == s2 {
			continue
		}
		child := buildNode(boxDims, s1, s2, points, order, n, leaves, index2leaf, refs)
		n.children = append(n.children, child)
	}
	return n
}
