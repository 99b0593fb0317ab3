// Package sampling generates index sets into [0, populationSize) under a
// chosen scheme (uniform with or without replacement, one of four 1-D
// quasi-random low-discrepancy sequences, or an equispaced grid), for
// driving a single sliding-window pass against only those indices
// instead of the full template set.
//
// Every scheme returns its indices sorted ascending: the amortized
// window-advance controller in package sliding relies on processing
// templates in rank order, so an unsorted sample would break its O(N)
// open/close accounting.
package sampling
