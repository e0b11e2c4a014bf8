package vptree

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Tomyyy-1337/vptree/internal/partition"
)

// buildRange implements §4.3's build(range = [lo, hi]) recursively on an
// inclusive index range. keys is a scratch buffer, sized to the whole
// arena, used to cache each item's heuristic distance to the range's pivot
// so quickselect never recomputes it mid-partition.
func buildRange[S Distance[S]](a arena[S], thresholds, keys []float64, lo, hi int, logger *Logger) {
	if lo >= hi {
		return // empty or single-item range: leaf, no threshold needed
	}

	pivot := a.get(lo)
	for i := lo + 1; i <= hi; i++ {
		keys[i] = heuristicOf[S](pivot, a.get(i))
	}

	m := lo + (hi-lo)/2 // median split point: (lo, m] gets floor((hi-lo)/2) items
	k := m - lo

	partition.Select(lo+1, hi+1, k, func(i int) float64 { return keys[i] }, func(i, j int) {
		a.swap(i, j)
		keys[i], keys[j] = keys[j], keys[i]
	})

	var threshold float64
	if m < hi {
		threshold = distanceWithCheck[S](pivot, a.get(m+1), logger)
	} else {
		threshold = distanceWithCheck[S](pivot, a.get(m), logger)
	}
	thresholds[lo] = threshold

	buildRange[S](a, thresholds, keys, lo+1, m, logger)
	buildRange[S](a, thresholds, keys, m+1, hi, logger)
}

// distanceWithCheck calls Distance and logs (but does not otherwise react
// to) a negative return value, per §7's caller-contract-violation handling.
func distanceWithCheck[S Distance[S]](a, b S, logger *Logger) float64 {
	d := a.Distance(b)
	if d < 0 && logger != nil {
		logger.LogContractViolation(context.Background(), d)
	}
	return d
}

// buildParallel is the fork/join variant of buildRange described in §4.3:
// a single errgroup.Group, bounded by SetLimit(workers), is shared across
// the whole recursive build purely to cap worker concurrency — not to
// cancel it. Construction is not cancellable (spec.md §5): the group's
// Wait is only ever used to join, and the callbacks it runs never return an
// error. Each call at or above sequentialThreshold submits its left subtree
// to the group when a worker slot is free (building it inline otherwise)
// and continues the right subtree inline. Every subtree writes only its own
// index range with the same split rule as buildRange, so both produce
// identical trees for the same input.
func buildParallel[S Distance[S]](a arena[S], thresholds, keys []float64, lo, hi int, sequentialThreshold int, g *errgroup.Group, logger *Logger) {
	if lo >= hi {
		return
	}

	if hi-lo+1 < sequentialThreshold {
		buildRange[S](a, thresholds, keys, lo, hi, logger)
		return
	}

	pivot := a.get(lo)
	for i := lo + 1; i <= hi; i++ {
		keys[i] = heuristicOf[S](pivot, a.get(i))
	}

	m := lo + (hi-lo)/2
	k := m - lo

	partition.Select(lo+1, hi+1, k, func(i int) float64 { return keys[i] }, func(i, j int) {
		a.swap(i, j)
		keys[i], keys[j] = keys[j], keys[i]
	})

	var threshold float64
	if m < hi {
		threshold = distanceWithCheck[S](pivot, a.get(m+1), logger)
	} else {
		threshold = distanceWithCheck[S](pivot, a.get(m), logger)
	}
	thresholds[lo] = threshold

	// TryGo hands the left subtree to the group only when a worker slot is
	// free; otherwise it is built inline, so a goroutine that already holds
	// a slot never blocks waiting for another one.
	left := func() error {
		buildParallel[S](a, thresholds, keys, lo+1, m, sequentialThreshold, g, logger)
		return nil
	}
	if !g.TryGo(left) {
		_ = left()
	}

	buildParallel[S](a, thresholds, keys, m+1, hi, sequentialThreshold, g, logger)
}
