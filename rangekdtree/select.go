package rangekdtree

import "github.com/go-sampen/sampen/kdpoint"

// selectNth partitions points[lo:hi+1] in place along axis (keeping the
// parallel order slice, which tracks each point's original index, in
// sync) so that the element at index k lands where it would in a full
// ascending sort by that axis. Go's standard library has no
// std::nth_element equivalent; this Lomuto-partition quickselect is the
// idiomatic stand-in, mirrored from package kdtree's own copy since the
// two packages build structurally different trees and have no shared
// internal type to hang a common helper off of.
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
