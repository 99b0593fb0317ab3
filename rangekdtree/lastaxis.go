package rangekdtree

import (
	"sort"

	"github.com/go-sampen/sampen/kdpoint"
)

// bruteThreshold is the subtree size at or below which lastAxisTree answers
// CountRange with a direct linear scan instead of paying for a sorted
// index and Fenwick tree. Most leaves and near-leaf nodes fall under
// this threshold, so the brute path is the common case in practice.
const bruteThreshold = 24

// lastAxisTree counts, among the points owned by one rangekdtree node,
// how many currently-open ones have a last-axis coordinate inside a
// query interval. It is rebuilt once per node at tree construction and
// then only mutated through add (never rebuilt), so the sorted index
// and Fenwick tree (used above bruteThreshold) stay valid for the
// node's lifetime.
type lastAxisTree[T kdpoint.Numeric] struct {
	brute bool

	// Brute-path state: values/weight are parallel, in original local
	// order.
	values []T
	weight []int64

	// Indexed-path state: sortedValues ascending, posOf[localIdx] gives
	// the rank of that local point in sortedValues, bit is a Fenwick
	// tree over ranks (1-based internally).
	sortedValues []T
	posOf        []int
	bit          []int64
}

// newLastAxisTree builds a lastAxisTree over values, one per local
// point index 0..len(values)-1, all initially closed (weight 0).
func newLastAxisTree[T kdpoint.Numeric](values []T) *lastAxisTree[T] {
	n := len(values)
	if n <= bruteThreshold {
		t := &lastAxisTree[T]{brute: true, values: make([]T, n), weight: make([]int64, n)}
		copy(t.values, values)
		return t
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })

	sortedValues := make([]T, n)
	posOf := make([]int, n)
	for rank, idx := range order {
		sortedValues[rank] = values[idx]
		posOf[idx] = rank
	}

	return &lastAxisTree[T]{
		sortedValues: sortedValues,
		posOf:        posOf,
		bit:          make([]int64, n+1),
	}
}

// add adjusts the open weight of local point localIdx by delta.
func (t *lastAxisTree[T]) add(localIdx int, delta int64) {
	if delta == 0 {
		return
	}
	if t.brute {
		t.weight[localIdx] += delta
		return
	}
	t.bitAdd(t.posOf[localIdx], delta)
}

func (t *lastAxisTree[T]) bitAdd(i int, delta int64) {
	for i++; i < len(t.bit); i += i & (-i) {
		t.bit[i] += delta
	}
}

func (t *lastAxisTree[T]) bitPrefixSum(i int) int64 {
	var sum int64
	for i++; i > 0; i -= i & (-i) {
		sum += t.bit[i]
	}
	return sum
}

// countRange returns the sum of open weight over local points whose
// value lies in [lo, hi].
func (t *lastAxisTree[T]) countRange(lo, hi T) int64 {
	if t.brute {
		var total int64
		for i, v := range t.values {
			if v >= lo && v <= hi {
				total += t.weight[i]
			}
		}
		return total
	}

	n := len(t.sortedValues)
	loRank := sort.Search(n, func(i int) bool { return t.sortedValues[i] >= lo })
	if loRank == n {
		return 0
	}
	hiRank := sort.Search(n, func(i int) bool { return t.sortedValues[i] > hi }) - 1
	if hiRank < loRank {
		return 0
	}

	sum := t.bitPrefixSum(hiRank)
	if loRank > 0 {
		sum -= t.bitPrefixSum(loRank - 1)
	}
	return sum
}
