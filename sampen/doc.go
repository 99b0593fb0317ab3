// Package sampen is the public facade for Sample Entropy computation: it
// wires together template extraction, rank-space reduction, the two
// counting-tree engines, the sliding-window controller and the sampling
// front-end behind a small, stable surface (Options, Result, Compute,
// ComputeSampling).
//
// 🚀 What is Sample Entropy?
//
//	Given a signal of length N, an embedding dimension m and a similarity
//	threshold r, SampEn is −ln(A/B): B counts unordered pairs of m-length
//	templates within Chebyshev distance r of each other, A the analogous
//	count for (m+1)-length templates. Lower entropy means the signal is
//	more self-similar/predictable; higher entropy means less so. It's
//	widely used for:
//	  • Physiological signal complexity (HRV, EEG)
//	  • Financial time-series regularity
//	  • Vibration/fault-detection regularity analysis
//
// ✨ Key features:
//   - four interchangeable exact engines (EngineSlidingKD, EngineRangeKD,
//     EngineSimpleKD, EngineDirect), all guaranteed to agree bit-for-bit
//   - a sampling front-end (uniform, quasi-random, grid schemes) for
//     estimating SampEn on signals too large for an exact pass
//   - an optional concurrent sampling driver, one tree instance per worker
//
// ⚙️ Usage:
//
//	opts := sampen.DefaultOptions()
//	opts.M = 2
//	opts.R = 0.2 * stddev(data)
//	result, err := sampen.Compute(data, opts)
//
// Performance:
//   - Exact engines: O(N log^K N) typical, with EngineDirect as the
//     O(N²m) reference baseline.
//   - Sampling: O(N0 log^K N0) per sample, N1 samples.
package sampen
