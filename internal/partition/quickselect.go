// Package partition implements the nth-element partitioning used by the
// VP-Tree builder's median split. It operates purely on index positions and
// a caller-supplied key/swap pair so it has no dependency on the item type
// stored above it.
package partition

// Select reorders the half-open range [lo, hi) so that the k smallest
// elements, as measured by key, occupy [lo, lo+k) and the remainder occupy
// [lo+k, hi). Neither half is sorted internally. Ties may land on either
// side of the split.
//
// This is the classic quickselect / nth_element algorithm: O(hi-lo) on
// average, O((hi-lo)^2) worst case. swap must exchange every piece of
// out-of-band state associated with two positions (the item itself plus any
// parallel key cache) so the caller's arrays stay synchronized with the
// reordering.
func Select(lo, hi, k int, key func(i int) float64, swap func(i, j int)) {
	if hi-lo <= 1 || k <= 0 || k >= hi-lo {
		return
	}

	target := lo + k
	for hi-lo > 1 {
		p := partitionRange(lo, hi, key, swap)
		switch {
		case p == target:
			return
		case p < target:
			lo = p + 1
		default:
			hi = p
		}
	}
}

// partitionRange performs a single Lomuto partition step over [lo, hi)
// using the midpoint element as pivot, and returns the pivot's final index.
func partitionRange(lo, hi int, key func(i int) float64, swap func(i, j int)) int {
	mid := lo + (hi-lo)/2
	pivotKey := key(mid)
	swap(mid, hi-1) // move pivot to the end

	store := lo
	for i := lo; i < hi-1; i++ {
		if key(i) < pivotKey {
			swap(i, store)
			store++
		}
	}
	swap(store, hi-1) // move pivot into its final place
	return store
}
