package kdpoint

import "errors"

// Sentinel errors for kdpoint construction.
var (
	// ErrDimensionMismatch indicates a coordinate slice length does not
	// match the point's declared dimension.
	ErrDimensionMismatch = errors.New("kdpoint: dimension mismatch")

	// ErrEmptyCoordinates indicates a point was constructed with zero
	// dimensions, which is never valid for a template or rank-space point.
	ErrEmptyCoordinates = errors.New("kdpoint: coordinates must be non-empty")
)

// Numeric is the constraint satisfied by a template coordinate type: it
// must support a total order and subtraction into the same type. The
// engine instantiates Point over int32 and float64 for value-space
// templates, and over uint32 for rank-space points.
type Numeric interface {
	~int32 | ~int64 | ~float64 | ~uint32
}

// Point is a fixed-dimension coordinate tuple with an associated integer
// multiplicity (Count). Count == 1 marks a real template; Count == 0 marks
// a disabled point (auxiliary padding, or a repeated point merged into its
// representative). Count > 1 marks a representative of a repeated-point
// group.
type Point[T Numeric] struct {
	coords []T
	count  int32
}

// NewPoint constructs a Point from coords with the given initial count.
// The coords slice is retained, not copied; callers must not mutate it
// afterward.
func NewPoint[T Numeric](coords []T, count int32) Point[T] {
	return Point[T]{coords: coords, count: count}
}

// Dim returns the number of coordinates in p.
func (p Point[T]) Dim() int { return len(p.coords) }

// At returns the i-th coordinate of p.
func (p Point[T]) At(i int) T { return p.coords[i] }

// Set assigns the i-th coordinate of p.
func (p *Point[T]) Set(i int, v T) { p.coords[i] = v }

// Coords returns the underlying coordinate slice. Callers must treat it
// as read-only unless they own the Point exclusively.
func (p Point[T]) Coords() []T { return p.coords }

// Count returns the current multiplicity of p.
func (p Point[T]) Count() int32 { return p.count }

// SetCount assigns the multiplicity of p.
func (p *Point[T]) SetCount(c int32) { p.count = c }

// IncreaseCount adds delta to the multiplicity of p.
func (p *Point[T]) IncreaseCount(delta int32) { p.count += delta }

// Less reports whether p sorts strictly before q in lexicographic order
// over coordinates. Count is not compared.
func (p Point[T]) Less(q Point[T]) bool {
	n := len(p.coords)
	if len(q.coords) < n {
		n = len(q.coords)
	}
	for i := 0; i < n; i++ {
		if p.coords[i] != q.coords[i] {
			return p.coords[i] < q.coords[i]
		}
	}
	return len(p.coords) < len(q.coords)
}

// Equal reports whether p and q have identical coordinates. Count is not
// compared.
func (p Point[T]) Equal(q Point[T]) bool {
	if len(p.coords) != len(q.coords) {
		return false
	}
	for i, v := range p.coords {
		if v != q.coords[i] {
			return false
		}
	}
	return true
}

// Clone returns a Point with its own copy of the coordinate slice.
func (p Point[T]) Clone() Point[T] {
	c := make([]T, len(p.coords))
	copy(c, p.coords)
	return Point[T]{coords: c, count: p.count}
}
