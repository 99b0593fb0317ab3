package kdtree

import "github.com/go-sampen/sampen/kdpoint"

// selectNth partitions points[lo:hi+1] in place along axis (keeping the
// parallel order slice, which tracks each point's original index, in
// sync) so that the element at index k lands where it would in a full
// ascending sort by that axis, every element before it is <=, and every
// element after it is >=. It is the Go stand-in for std::nth_element:
// the standard library offers no partial-sort primitive, so the 2^K-ary
// splitter construction below uses this Lomuto-partition quickselect
// directly.
//
// Complexity: expected O(hi-lo) time.
func selectNth[T kdpoint.Numeric](points []kdpoint.Point[T], order []int, axis, k, lo, hi int) {
	for lo < hi {
		p := partition(points, order, axis, lo, hi)
		switch {
		case k < p:
			hi = p - 1
		case k > p:
			lo = p + 1
		default:
			return
		}
	}
}

func partition[T kdpoint.Numeric](points []kdpoint.Point[T], order []int, axis, lo, hi int) int {
	mid := lo + (hi-lo)/2
	pivot := points[mid].At(axis)
	points[mid], points[hi] = points[hi], points[mid]
	order[mid], order[hi] = order[hi], order[mid]

	store := lo
	for i := lo; i < hi; i++ {
		if points[i].At(axis) < pivot {
			points[i], points[store] = points[store], points[i]
			order[i], order[store] = order[store], order[i]
			store++
		}
	}
	points[store], points[hi] = points[hi], points[store]
	order[store], order[hi] = order[hi], order[store]
	return store
}
