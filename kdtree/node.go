package kdtree

import "github.com/go-sampen/sampen/kdpoint"

// node is one node of a 2^K-ary counting tree. weightedCount is the sum
// of Count over every currently open point in the node's subtree; it
// starts at zero (every point closed) and is maintained incrementally by
// UpdateCount/Close walking the father chain.
type node[T kdpoint.Numeric] struct {
	box           box[T]
	father        *node[T]
	children      []*node[T]
	weightedCount int64
	isLeaf        bool
}

// buildNode recursively partitions points[lo:hi] (with the parallel
// order slice tracking original indices) into a 2^K-ary tree, appending
// each leaf to leaves and recording index2leaf[originalIndex] = leaf
// position. Splitting rotates through axis 0..k-1, halving the span at
// each level the way a single-axis kd-tree would, but unrolled K levels
// deep in a single node so every internal node has up to 2^K children.
func buildNode[T kdpoint.Numeric](k, lo, hi int, points []kdpoint.Point[T], order []int, father *node[T], leaves *[]*node[T], index2leaf []int) *node[T] {
	segment := points[lo:hi]
	n := &node[T]{box: computeBox(segment), father: father}
	count := hi - lo

	if count == 1 {
		n.isLeaf = true
		index2leaf[order[lo]] = len(*leaves)
		*leaves = append(*leaves, n)
		return n
	}

	fanout := 1 << uint(k)
	splitters := make([]int, fanout+1)
	splitters[0] = lo
	splitters[fanout] = hi

	for i := 0; i < k; i++ {
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
		child := buildNode(k, s1, s2, points, order, n, leaves, index2leaf)
		n.children = append(n.children, child)
	}
	return n
}

// addWeight propagates delta up from a leaf to the root, keeping every
// ancestor's weightedCount equal to the sum of its currently open
// descendants.
func (n *node[T]) addWeight(delta int64) {
	for cur := n; cur != nil; cur = cur.father {
		cur.weightedCount += delta
	}
}
