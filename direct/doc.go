// Package direct implements the unaccelerated Θ(N²m) definition of the
// Sample Entropy match counts: every pair of templates is compared
// directly under the Chebyshev (L∞) metric, with no spatial structure of
// any kind. It exists purely as ground truth for cross-checking the
// rank-space/KD-tree engines in packages kdtree, rangekdtree and sliding
// — never call it from production code paths, since its running time
// makes it impractical for any signal beyond a few thousand samples.
package direct
