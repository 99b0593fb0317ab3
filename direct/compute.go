package direct

import "github.com/go-sampen/sampen/kdpoint"

// ComputeAB returns (a, b): a is the number of matched (m+1)-length
// template pairs, b the number of matched m-length template pairs
// restricted to the same aligned index range as a, both under Chebyshev
// distance r. This is the textbook Sample Entropy definition: template i
// runs over [0, N-m), compared against every j > i in the same range.
//
// Returns (0, 0) when the signal is too short to form even one
// (m+1)-length template; this package never returns an error and leaves
// input validation to its callers (sampen.Compute validates before
// reaching EngineDirect).
//
// Complexity: O(N²m) time, O(1) extra space beyond the input.
func ComputeAB[T kdpoint.Numeric](seq []T, m int, r T) (a, b int64) {
	n := len(seq)
	if m <= 0 || n <= m+1 {
		return 0, 0
	}

	numTemplates := n - m
	for i := 0; i < numTemplates; i++ {
		for j := i + 1; j < numTemplates; j++ {
			if chebyshevMatch(seq[i:i+m], seq[j:j+m], r) {
				b++
				if chebyshevMatch(seq[i:i+m+1], seq[j:j+m+1], r) {
					a++
				}
			}
		}
	}
	return a, b
}

// ComputeB returns the number of matched m-length template pairs over
// the full set of N-m+1 templates (the B-only alignment used by
// sliding.ComputeB, distinct from ComputeAB's restricted range).
//
// Complexity: O(N²m) time.
func ComputeB[T kdpoint.Numeric](seq []T, m int, r T) int64 {
	n := len(seq)
	if m <= 0 || n <= m {
		return 0
	}

	numTemplates := n - m + 1
	var b int64
	for i := 0; i < numTemplates; i++ {
		for j := i + 1; j < numTemplates; j++ {
			if chebyshevMatch(seq[i:i+m], seq[j:j+m], r) {
				b++
			}
		}
	}
	return b
}

// ComputeABAt is ComputeAB restricted to an arbitrary, possibly
// non-contiguous set of template start-indices (as drawn by package
// sampling), rather than the full [0, N-m) range. indices need not be
// sorted, and duplicate indices count as distinct draws.
//
// Complexity: O(len(indices)² * m) time.
func ComputeABAt[T kdpoint.Numeric](seq []T, indices []int, m int, r T) (a, b int64) {
	for i := 0; i < len(indices); i++ {
		for j := i + 1; j < len(indices); j++ {
			si, sj := indices[i], indices[j]
			if chebyshevMatch(seq[si:si+m], seq[sj:sj+m], r) {
				b++
				if chebyshevMatch(seq[si:si+m+1], seq[sj:sj+m+1], r) {
					a++
				}
			}
		}
	}
	return a, b
}

func chebyshevMatch[T kdpoint.Numeric](x, y []T, r T) bool {
	for i := range x {
		d := x[i] - y[i]
		if d < 0 {
			d = -d
		}
		if d > r {
			return false
		}
	}
	return true
}
