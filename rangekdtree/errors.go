package rangekdtree

import "errors"

// Sentinel errors for tree construction and queries.
var (
	// ErrEmptyInput indicates a tree was asked to build over zero points.
	ErrEmptyInput = errors.New("rangekdtree: point set must be non-empty")

	// ErrInvalidDimension indicates a non-positive box dimension.
	ErrInvalidDimension = errors.New("rangekdtree: box dimension must be positive")

	// ErrPointDimensionMismatch indicates the supplied points do not carry
	// exactly one coordinate beyond the box dimension (the last axis).
	ErrPointDimensionMismatch = errors.New("rangekdtree: points must have box dimension + 1 coordinates")

	// ErrPositionOutOfRange indicates UpdateCount/Close was called with a
	// position outside [0, N).
	ErrPositionOutOfRange = errors.New("rangekdtree: position out of range")

	// ErrRangeDimensionMismatch indicates a query box's dimension does not
	// match the tree's box dimension.
	ErrRangeDimensionMismatch = errors.New("rangekdtree: range dimension mismatch")
)
