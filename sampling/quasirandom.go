// This file hosts four self-contained, low-discrepancy sequence
// generators used to drive the quasi-random sampling schemes: short,
// direct, no external dependency. sobolSequence is a simplified stand-in
// for true Sobol (which needs per-dimension primitive-polynomial direction
// numbers) rather than a literal port, since a single dimension is all
// this package ever needs. scrambledBase2Sequence makes no claim to be a
// Niederreiter construction at all — it's a fixed-mask XOR scramble of
// the base-2 van der Corput sequence, named for what it does.
package sampling

// radicalInverse computes the base-b radical inverse (van der Corput
// value) of i: i's digits in base b, reversed into the fractional part.
func radicalInverse(i, base int) float64 {
	f := 1.0
	r := 0.0
	for i > 0 {
		f /= float64(base)
		r += f * float64(i%base)
		i /= base
	}
	return r
}

// haltonSequence returns the first n terms of the base-b Halton
// sequence, indices starting at 1 (index 0 is always exactly zero and
// carries no information).
func haltonSequence(n, base int) []float64 {
	seq := make([]float64, n)
	for i := range seq {
		seq[i] = radicalInverse(i+1, base)
	}
	return seq
}

// digitWidth returns the number of base-b digits needed to represent any
// index up to n.
func digitWidth(n, base int) int {
	w := 1
	for p := base; p <= n; p *= base {
		w++
	}
	return w
}

// reverseDigits reverses the order of i's fixed-width base-b digits.
func reverseDigits(i, base, width int) int {
	out := 0
	for k := 0; k < width; k++ {
		out = out*base + i%base
		i /= base
	}
	return out
}

// reverseHaltonSequence returns a Halton-derived sequence distinct from
// haltonSequence: each index's fixed-width digit string is reversed
// before the radical inverse is taken, producing a different but equally
// deterministic enumeration order.
func reverseHaltonSequence(n, base int) []float64 {
	width := digitWidth(n, base)
	seq := make([]float64, n)
	for i := range seq {
		seq[i] = radicalInverse(reverseDigits(i+1, base, width), base)
	}
	return seq
}

// rightmostZeroBit1Indexed returns the 1-indexed bit position of the
// rightmost zero bit of v, the Antonov-Saleev Gray-code step index used
// by sobolSequence.
func rightmostZeroBit1Indexed(v int) int {
	c := 1
	for v&1 == 1 {
		v >>= 1
		c++
	}
	return c
}

// sobolSequence returns the first n terms of the 1-D Sobol sequence
// generated via the Gray-code (Antonov-Saleev) direction-number
// recurrence: x_i = x_{i-1} XOR v_c, where c is the position of the
// rightmost zero bit of (i-1) and v_k = 2^(bits-k).
func sobolSequence(n int) []float64 {
	const bits = 30
	direction := make([]uint32, bits+1)
	for k := 1; k <= bits; k++ {
		direction[k] = uint32(1) << uint(bits-k)
	}

	seq := make([]float64, n)
	var x uint32
	for i := 1; i <= n; i++ {
		c := rightmostZeroBit1Indexed(i - 1)
		if c > bits {
			c = bits
		}
		x ^= direction[c]
		seq[i-1] = float64(x) / float64(uint64(1)<<bits)
	}
	return seq
}

// scrambledBase2Mix XORs a fixed mask into i before radical inversion,
// decorrelating the sequence from the plain base-2 enumeration order.
func scrambledBase2Mix(i int) int {
	return i ^ (i >> 1) ^ 0x2aaaaaab
}

// scrambledBase2Sequence returns the first n terms of a digitally
// scrambled base-2 van der Corput sequence.
func scrambledBase2Sequence(n int) []float64 {
	seq := make([]float64, n)
	for i := range seq {
		seq[i] = radicalInverse(scrambledBase2Mix(i+1), 2)
	}
	return seq
}
