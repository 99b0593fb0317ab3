// Package kdtree implements the 2^K-ary counting tree used to answer
// "how many currently open points fall inside this axis-aligned box"
// queries against a static K-dimensional point set. Leaves start closed;
// the sliding-window controller in package sliding opens and closes them
// as it advances, and CountRange only ever tallies currently-open points
// (their weighted count).
package kdtree
