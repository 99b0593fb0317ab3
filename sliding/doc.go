// Package sliding drives package kdtree's or package rangekdtree's
// counting tree through an amortized open/close/query pass over a
// rank-space template set, computing the matched-pair counts Sample
// Entropy needs without ever re-scanning the whole set per template.
//
// Both ComputeB (template length m, one count) and ComputeAB (template
// length m+1 joined against its length-m prefix, two counts in one
// traversal) share the same window-advance shape: advance a pointer
// through rank-sorted templates, closing the one just passed, opening
// every template newly within threshold of the current one, and
// querying the currently-open set. Total opens and closes across a full
// pass are O(N), which is what makes the whole pipeline sub-quadratic.
package sliding
