// Package rangekdtree implements the range KD tree: a 2^K-ary spatial
// tree, like package kdtree, but over K-1 box-splitting axes plus one
// extra "last axis" coordinate held in a per-node lastAxisTree. A single
// CountRange call returns both the B-count (box-only match) and the
// A-count (box match AND last-axis match) in one traversal, which is
// what lets the sliding-window controller compute matched (m+1)-length
// and m-length template pairs together instead of in two passes.
package rangekdtree
