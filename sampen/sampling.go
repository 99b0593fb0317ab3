package sampen

import (
	"sync"
	"time"

	"github.com/go-sampen/sampen/kdpoint"
	"github.com/go-sampen/sampen/sampling"
	"github.com/go-sampen/sampen/sliding"
)

// ComputeSampling estimates SampEn by drawing opts.SampleCount index sets
// of size opts.SampleSize from [0, N-M) under opts.Scheme, and computing
// each draw's exact (A, B) by driving the same rank-space/range-tree
// window-advance controller the exact engines use (sliding.ComputeSampledAB),
// restricted to just that draw's template start-indices: only the sampled
// leaves are ever opened, and they're closed again once the pass over them
// finishes. sampling.GenerateIndices always returns its draw sorted
// ascending, which is what the controller's window-advance needs.
func ComputeSampling[T kdpoint.Numeric](data []T, opts Options) (SamplingResult, error) {
	start := time.Now()
	if err := opts.ValidateSampling(); err != nil {
		return SamplingResult{}, err
	}
	populationSize := len(data) - opts.M
	if populationSize <= 0 {
		return SamplingResult{}, ErrShortInput
	}

	r := T(opts.R)
	samples := make([]Sample, opts.SampleCount)
	entropies := make([]float64, opts.SampleCount)

	for i := 0; i < opts.SampleCount; i++ {
		seed := opts.Seed
		if seed != 0 {
			seed = sampling.DeriveSeed(seed, uint64(i))
		}
		indices, err := sampling.GenerateIndices(opts.Scheme, opts.SampleSize, populationSize, seed, opts.Random)
		if err != nil {
			return SamplingResult{}, err
		}

		a, b, err := sliding.ComputeSampledAB(data, indices, opts.M, r)
		if err != nil {
			return SamplingResult{}, err
		}
		e := Entropy(a, b)
		samples[i] = Sample{A: a, B: b, Entropy: e}
		entropies[i] = e
	}

	mu := mean(entropies)
	var mse float64
	if opts.Reference != nil {
		mse = meanSquaredError(entropies, *opts.Reference)
	}
	return SamplingResult{
		Samples:  samples,
		Mean:     mu,
		Variance: sampleVariance(entropies, mu),
		MSE:      mse,
		Elapsed:  time.Since(start),
	}, nil
}

// ComputeSamplingConcurrent behaves like ComputeSampling but evaluates
// each draw on its own goroutine, fanned out across a bounded pool of
// workers workers wide. Index-set generation is fully deterministic per
// draw (each draw's seed is derived independently of execution order via
// sampling.DeriveSeed), so which draws run concurrently never changes
// the resulting (A, B) per sample — only the order they complete in.
func ComputeSamplingConcurrent[T kdpoint.Numeric](data []T, opts Options, workers int) (SamplingResult, error) {
	start := time.Now()
	if err := opts.ValidateSampling(); err != nil {
		return SamplingResult{}, err
	}
	if workers <= 0 {
		return SamplingResult{}, ErrInvalidWorkerCount
	}
	populationSize := len(data) - opts.M
	if populationSize <= 0 {
		return SamplingResult{}, ErrShortInput
	}

	r := T(opts.R)
	samples := make([]Sample, opts.SampleCount)
	errs := make([]error, opts.SampleCount)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				seed := opts.Seed
				if seed != 0 {
					seed = sampling.DeriveSeed(seed, uint64(i))
				}
				indices, err := sampling.GenerateIndices(opts.Scheme, opts.SampleSize, populationSize, seed, opts.Random)
				if err != nil {
					errs[i] = err
					continue
				}

				a, b, err := sliding.ComputeSampledAB(data, indices, opts.M, r)
				if err != nil {
					errs[i] = err
					continue
				}
				samples[i] = Sample{A: a, B: b, Entropy: Entropy(a, b)}
			}
		}()
	}
	for i := 0; i < opts.SampleCount; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return SamplingResult{}, err
		}
	}

	entropies := make([]float64, len(samples))
	for i, s := range samples {
		entropies[i] = s.Entropy
	}
	mu := mean(entropies)
	var mse float64
	if opts.Reference != nil {
		mse = meanSquaredError(entropies, *opts.Reference)
	}
	return SamplingResult{
		Samples:  samples,
		Mean:     mu,
		Variance: sampleVariance(entropies, mu),
		MSE:      mse,
		Elapsed:  time.Since(start),
	}, nil
}
