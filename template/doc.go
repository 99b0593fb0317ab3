// Package template extracts fixed-length templates from a 1-D signal: the
// sliding windows that Sample Entropy compares pairwise. It also builds the
// padded variant used by the joint (A,B) range-kd path, which appends K
// auxiliary points so every downstream array has exactly N entries.
package template
