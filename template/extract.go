package template

import (
	"errors"

	"github.com/go-sampen/sampen/kdpoint"
)

// Sentinel errors for template extraction.
var (
	// ErrShortInput indicates the signal has too few samples to form even
	// a single K-length template.
	ErrShortInput = errors.New("template: signal too short for requested dimension")

	// ErrInvalidDimension indicates a non-positive template length.
	ErrInvalidDimension = errors.New("template: dimension must be positive")

	// ErrIndexOutOfRange indicates a start-index passed to ExtractAt has
	// no room for a full k-length template.
	ErrIndexOutOfRange = errors.New("template: index out of range for requested dimension")
)

// Extract builds the set of k-dimensional templates from seq:
// points[i] = (seq[i], ..., seq[i+k-1]) for i in [0, len(seq)-k].
// Every template starts with Count == count. Returns ErrShortInput when
// len(seq) <= k.
//
// Complexity: O((N-k+1)*k) time and space.
func Extract[T kdpoint.Numeric](seq []T, k int, count int32) ([]kdpoint.Point[T], error) {
	if k <= 0 {
		return nil, ErrInvalidDimension
	}
	n := len(seq)
	if n <= k {
		return nil, ErrShortInput
	}

	points := make([]kdpoint.Point[T], n-k+1)
	for i := 0; i <= n-k; i++ {
		coords := make([]T, k)
		copy(coords, seq[i:i+k])
		points[i] = kdpoint.NewPoint(coords, count)
	}
	return points, nil
}

// ExtractPadded builds k-dimensional templates over seq with k-1 trailing
// auxiliary points appended, each equal to (min(seq), ..., min(seq)) with
// Count == 0, so the resulting array has exactly len(seq) entries
// regardless of k. Callers drive both the B-only path (k == K) and the
// joint (A,B) path (k == K+1) through this same padding rule — in each
// case the auxiliary count (k-1) is exactly what keeps the output length
// equal to N. Auxiliary points are never opened by the sliding-window
// controller: their Count starts and stays at zero until explicitly
// reassigned by rankspace.MergeRepeated.
//
// Complexity: O(N*k) time and space.
func ExtractPadded[T kdpoint.Numeric](seq []T, k int) ([]kdpoint.Point[T], error) {
	if k <= 0 {
		return nil, ErrInvalidDimension
	}
	n := len(seq)
	if n == 0 {
		return nil, ErrShortInput
	}

	numAux := k - 1

	minimum := seq[0]
	for _, v := range seq[1:] {
		if v < minimum {
			minimum = v
		}
	}

	padded := make([]T, n+numAux)
	copy(padded, seq)
	for i := n; i < len(padded); i++ {
		padded[i] = minimum
	}

	if len(padded) <= k {
		return nil, ErrShortInput
	}

	points, err := Extract(padded, k, 1)
	if err != nil {
		return nil, err
	}
	for i := len(points) - numAux; i < len(points); i++ {
		points[i].SetCount(0)
	}
	return points, nil
}

// ExtractAt builds k-dimensional templates only at the given start
// indices (not necessarily contiguous, and not required to be sorted),
// one point per index, each with Count == 1. Unlike ExtractPadded, no
// auxiliary points are appended — the returned set IS the population a
// caller works against, which is what a sampled-index computation needs:
// the universe considered is the sample itself, not the full signal.
//
// Complexity: O(len(indices)*k) time and space.
func ExtractAt[T kdpoint.Numeric](seq []T, indices []int, k int) ([]kdpoint.Point[T], error) {
	if k <= 0 {
		return nil, ErrInvalidDimension
	}
	n := len(seq)
	points := make([]kdpoint.Point[T], len(indices))
	for i, idx := range indices {
		if idx < 0 || idx+k > n {
			return nil, ErrIndexOutOfRange
		}
		coords := make([]T, k)
		copy(coords, seq[idx:idx+k])
		points[i] = kdpoint.NewPoint(coords, 1)
	}
	return points, nil
}
