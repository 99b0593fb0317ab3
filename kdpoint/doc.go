// Package kdpoint defines the fixed-dimension numeric tuple shared by every
// spatial-tree package in this module: a template point in value-space and
// a rank-space point are both a Point[T], distinguished only by T and by
// how their coordinates were produced.
package kdpoint
