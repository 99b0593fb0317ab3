// Package fixtures generates deterministic synthetic signals for tests:
// white noise and periodic (rectangular/triangular) waveforms with
// optional linear trend and additive Gaussian noise.
package fixtures
