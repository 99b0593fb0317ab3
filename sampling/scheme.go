package sampling

import "sort"

// Scheme selects how GenerateIndices draws a sample of indices from
// [0, populationSize).
type Scheme int

const (
	// Uniform draws i.i.d. uniform indices with replacement.
	Uniform Scheme = iota
	// SWRUniform draws a uniform sample without replacement by taking the
	// first n0 entries of a Fisher-Yates shuffle of the whole population.
	SWRUniform
	// Sobol draws indices from a 1-D Sobol low-discrepancy sequence.
	Sobol
	// Halton draws indices from a 1-D Halton low-discrepancy sequence
	// (base 2).
	Halton
	// ReverseHalton draws indices from a Halton sequence with its radix
	// digits reversed before remapping.
	ReverseHalton
	// ScrambledBase2 draws indices from a digitally-scrambled base-2 van
	// der Corput sequence (XOR decorrelation against a fixed mask before
	// radical inversion) — a cheap low-discrepancy approximation, not a
	// literal GF(2)-polynomial Niederreiter construction.
	ScrambledBase2
	// Grid draws an equispaced lattice of indices.
	Grid
)

// String renders the scheme name, used in error messages and logging.
func (s Scheme) String() string {
	switch s {
	case Uniform:
		return "uniform"
	case SWRUniform:
		return "swr_uniform"
	case Sobol:
		return "sobol"
	case Halton:
		return "halton"
	case ReverseHalton:
		return "reverse_halton"
	case ScrambledBase2:
		return "scrambled_base2"
	case Grid:
		return "grid"
	default:
		return "unknown"
	}
}

// GenerateIndices draws n0 indices from [0, populationSize) under scheme.
// Uniform and SWRUniform are seeded deterministically from seed unless
// random is true (in which case the seed is instead derived from the wall
// clock); the quasi-random and Grid schemes use neither seed nor random
// and always return the same indices for a given (n0, populationSize).
// The returned slice is
// always sorted ascending, as required by the sliding-window controller's
// amortization invariant.
func GenerateIndices(scheme Scheme, n0, populationSize int, seed int64, random bool) ([]int, error) {
	if n0 <= 0 {
		return nil, ErrInvalidSampleSize
	}
	if populationSize <= 0 {
		return nil, ErrInvalidPopulation
	}

	var indices []int
	switch scheme {
	case Uniform:
		rng := rngFromSeed(resolveSeed(seed, random))
		indices = make([]int, n0)
		for i := range indices {
			indices[i] = rng.Intn(populationSize)
		}
	case SWRUniform:
		if n0 > populationSize {
			return nil, ErrInvalidPopulation
		}
		rng := rngFromSeed(resolveSeed(seed, random))
		indices = permRange(populationSize, rng)[:n0]
	case Sobol:
		indices = scaleQuasi(sobolSequence(n0), populationSize)
	case Halton:
		indices = scaleQuasi(haltonSequence(n0, 2), populationSize)
	case ReverseHalton:
		indices = scaleQuasi(reverseHaltonSequence(n0, 2), populationSize)
	case ScrambledBase2:
		indices = scaleQuasi(scrambledBase2Sequence(n0), populationSize)
	case Grid:
		indices = gridIndices(n0, populationSize)
	default:
		return nil, ErrUnknownScheme
	}

	sort.Ints(indices)
	return indices, nil
}

// scaleQuasi maps each value of a [0,1) quasi-random sequence into
// [0, populationSize) by truncation.
func scaleQuasi(seq []float64, populationSize int) []int {
	indices := make([]int, len(seq))
	for i, v := range seq {
		idx := int(v * float64(populationSize))
		if idx >= populationSize {
			idx = populationSize - 1
		}
		indices[i] = idx
	}
	return indices
}

// gridIndices lays out n0 equispaced integer indices across
// [0, populationSize).
func gridIndices(n0, populationSize int) []int {
	indices := make([]int, n0)
	if n0 == 1 {
		indices[0] = 0
		return indices
	}
	step := float64(populationSize-1) / float64(n0-1)
	for i := 0; i < n0; i++ {
		idx := int(float64(i)*step + 0.5)
		if idx >= populationSize {
			idx = populationSize - 1
		}
		indices[i] = idx
	}
	return indices
}
