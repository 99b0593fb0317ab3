package kdtree

import "errors"

// Sentinel errors for tree construction and queries.
var (
	// ErrEmptyInput indicates a tree was asked to build over zero points.
	ErrEmptyInput = errors.New("kdtree: point set must be non-empty")

	// ErrInvalidDimension indicates a non-positive fan-out dimension K.
	ErrInvalidDimension = errors.New("kdtree: dimension must be positive")

	// ErrPositionOutOfRange indicates UpdateCount/Close was called with a
	// position outside [0, N).
	ErrPositionOutOfRange = errors.New("kdtree: position out of range")

	// ErrRangeDimensionMismatch indicates a query range's dimension does
	// not match the tree's.
	ErrRangeDimensionMismatch = errors.New("kdtree: range dimension mismatch")
)
