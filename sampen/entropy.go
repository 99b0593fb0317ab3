package sampen

import "math"

// Entropy implements the SampEn assembler: sampen(A, B) = -ln(A/B). It
// returns +Inf when either count is zero (no matches to form a ratio
// from), which is the documented degenerate-case sentinel rather than a
// panic or NaN.
func Entropy(a, b int64) float64 {
	if a == 0 || b == 0 {
		return math.Inf(1)
	}
	return math.Log(float64(b) / float64(a))
}

// mean returns the arithmetic mean of values, skipping +Inf entries
// (degenerate samples contribute no information to a finite mean).
func mean(values []float64) float64 {
	var sum float64
	var n int
	for _, v := range values {
		if math.IsInf(v, 1) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// sampleVariance returns the Bessel-corrected (n-1) sample variance of
// values around mu, skipping +Inf entries. This is the resolved policy
// for the source's divide-by-(n-1) open question: the correction is
// always enabled here, never the uncorrected population variance.
func sampleVariance(values []float64, mu float64) float64 {
	var sum float64
	var n int
	for _, v := range values {
		if math.IsInf(v, 1) {
			continue
		}
		d := v - mu
		sum += d * d
		n++
	}
	if n < 2 {
		return 0
	}
	return sum / float64(n-1)
}

// meanSquaredError returns the mean squared error of values against a
// fixed reference, skipping +Inf entries.
func meanSquaredError(values []float64, reference float64) float64 {
	var sum float64
	var n int
	for _, v := range values {
		if math.IsInf(v, 1) {
			continue
		}
		d := v - reference
		sum += d * d
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}
