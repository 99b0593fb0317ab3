// Package rankspace reduces a K-dimensional range-count problem over
// value-space templates to a (K-1)-dimensional range-count problem over
// integer ranks. It sorts templates lexicographically, derives per-point
// threshold bounds from the first coordinate alone, then re-expresses the
// remaining K-1 coordinates as ranks of a cyclic successor map — the
// construction that lets the counting trees work over small integers
// instead of arbitrary value types.
package rankspace
