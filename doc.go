// Package sampen computes Sample Entropy (SampEn) for 1-D signals using
// spatial kd-trees for fast approximate-match counting.
//
// 🚀 What is Sample Entropy?
//
//	A regularity measure for time series: how surprised should you be
//	that two windows of length m that look alike still look alike once
//	extended by one more sample? Low entropy means the signal is
//	repetitive and predictable; high entropy means it is irregular.
//
// ✨ Key features
//
//   - Exact engines: an amortized sliding-window kd-tree counter, a
//     joint range-tree counter, a plain kd-tree baseline, and a
//     brute-force O(N²m) reference — all returning identical (A, B)
//     counts on the same input.
//   - Sampling mode: estimate entropy on large signals from repeated
//     draws of a subset of template indices, under uniform,
//     sampling-without-replacement, or quasi-random (Sobol, Halton,
//     reverse-Halton, scrambled base-2) index schemes.
//   - Deterministic by default: every RNG-backed path accepts an
//     explicit seed and reproduces identical output across runs and
//     platforms.
//
// Under the hood, the computation is organized as a pipeline:
//
//	kdpoint/     — generic fixed-dimension point type shared by every tree
//	template/    — embeds a signal into m- and (m+1)-dimensional templates
//	rankspace/   — maps template coordinates to dense integer ranks
//	kdtree/      — 2^K-ary counting kd-tree over ranked points
//	rangekdtree/ — kd-tree fused with one extra range axis, for joint (A,B)
//	sliding/     — open/close window controller driving the trees
//	direct/      — brute-force baseline used to cross-check the fast path
//	sampling/    — index-set draws for sampling-mode estimation
//	sampen/      — facade tying the pipeline together behind Compute/ComputeSampling
//
// ⚙️ Usage
//
//	res, err := sampen.Compute(signal, sampen.Options{M: 2, R: 0.2 * stddev})
//	if err != nil {
//		// handle err
//	}
//	fmt.Println(res.Entropy)
//
//	go get github.com/go-sampen/sampen
package sampen
