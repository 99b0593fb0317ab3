package kdtree

import "github.com/go-sampen/sampen/kdpoint"

// box is an axis-aligned bounding box over K dimensions.
type box[T kdpoint.Numeric] struct {
	lower []T
	upper []T
}

// computeBox returns the tightest box containing every point in points.
func computeBox[T kdpoint.Numeric](points []kdpoint.Point[T]) box[T] {
	k := points[0].Dim()
	lower := make([]T, k)
	upper := make([]T, k)
	for i := 0; i < k; i++ {
		lower[i] = points[0].At(i)
		upper[i] = points[0].At(i)
	}
	for _, p := range points[1:] {
		for i := 0; i < k; i++ {
			v := p.At(i)
			if v < lower[i] {
				lower[i] = v
			}
			if v > upper[i] {
				upper[i] = v
			}
		}
	}
	return box[T]{lower: lower, upper: upper}
}

// classification of a node's box against a query box.
type relation int

const (
	notIntersecting relation = iota
	within
	intersecting
)

// classify reports how b relates to the query box [qlo, qhi].
func classify[T kdpoint.Numeric](b box[T], qlo, qhi []T) relation {
	result := within
	for i := range b.lower {
		a, bb, c, d := b.lower[i], b.upper[i], qlo[i], qhi[i]
		if a > d || bb < c {
			return notIntersecting
		}
		if a < c || bb > d {
			result = intersecting
		}
	}
	return result
}
