package vptree

import (
	"context"
	"time"
)

// searchRange implements §4.4's search(node_range = [lo, hi], target)
// exactly: offer the pivot, then recurse into whichever child is nearer
// first (so the accumulator's bound tightens before the far side is
// considered), pruning a side only when the triangle inequality rules it
// out. The split point m is recomputed from (lo, hi) rather than stored,
// since this module's position-based pivot rule makes it a pure function
// of the range bounds (see layoutHeight's comment in vptree.go).
func searchRange[S Distance[S], Q Distance[S]](a arena[S], thresholds []float64, lo, hi int, target Q, acc accumulator[S]) {
	if lo > hi {
		return
	}

	pivot := a.get(lo)
	d := target.Distance(pivot)
	acc.offer(pivot, d)

	if lo == hi {
		return
	}

	threshold := thresholds[lo]
	b := acc.bound()
	m := lo + (hi-lo)/2

	if d < threshold {
		if d-b <= threshold {
			searchRange[S, Q](a, thresholds, lo+1, m, target, acc)
		}
		if d+b >= threshold {
			searchRange[S, Q](a, thresholds, m+1, hi, target, acc)
		}
	} else {
		if d+b >= threshold {
			searchRange[S, Q](a, thresholds, m+1, hi, target, acc)
		}
		if d-b <= threshold {
			searchRange[S, Q](a, thresholds, lo+1, m, target, acc)
		}
	}
}

// NearestNeighbor returns the stored item minimizing distance to target, or
// false if the tree is empty. Ties are broken by first-encountered-wins
// during the traversal; callers must not depend on which tied item wins
// (spec's tie-breaking is explicitly unspecified).
func NearestNeighbor[S Distance[S], Q Distance[S]](t *VpTree[S], target Q) (S, bool) {
	start := time.Now()
	acc := newNearestAccumulator[S](false)
	if t.arena.len() > 0 {
		searchRange[S, Q](t.arena, t.thresholds, 0, t.arena.len()-1, target, acc)
	}
	item, _, ok := acc.result()
	t.recordQuery(QueryKindNearest, boolToCount(ok), start)
	return item, ok
}

// KNearest returns up to k stored items closest to target, in arbitrary
// order. k <= 0 returns an empty slice; k >= Len() returns all items.
func KNearest[S Distance[S], Q Distance[S]](t *VpTree[S], target Q, k int) []S {
	return kNearest[S, Q](t, target, k, false)
}

// KNearestSorted is like KNearest, but the result is sorted ascending by
// distance to target.
func KNearestSorted[S Distance[S], Q Distance[S]](t *VpTree[S], target Q, k int) []S {
	return kNearest[S, Q](t, target, k, true)
}

func kNearest[S Distance[S], Q Distance[S]](t *VpTree[S], target Q, k int, sorted bool) []S {
	start := time.Now()
	if k <= 0 {
		t.recordQuery(QueryKindKNN, 0, start)
		return nil
	}
	acc := newKNNAccumulator[S](k, false)
	if t.arena.len() > 0 {
		searchRange[S, Q](t.arena, t.thresholds, 0, t.arena.len()-1, target, acc)
	}
	result := acc.results(sorted)
	t.recordQuery(QueryKindKNN, len(result), start)
	return result
}

// InRadius returns every stored item within r of target, in arbitrary
// order. A negative r returns an empty slice.
func InRadius[S Distance[S], Q Distance[S]](t *VpTree[S], target Q, r float64) []S {
	return inRadius[S, Q](t, target, r, false)
}

// InRadiusSorted is like InRadius, but the result is sorted ascending by
// distance to target.
func InRadiusSorted[S Distance[S], Q Distance[S]](t *VpTree[S], target Q, r float64) []S {
	return inRadius[S, Q](t, target, r, true)
}

func inRadius[S Distance[S], Q Distance[S]](t *VpTree[S], target Q, r float64, sorted bool) []S {
	start := time.Now()
	if r < 0 {
		t.recordQuery(QueryKindRadius, 0, start)
		return nil
	}
	acc := newRadiusAccumulator[S](r, false)
	if t.arena.len() > 0 {
		searchRange[S, Q](t.arena, t.thresholds, 0, t.arena.len()-1, target, acc)
	}
	result := acc.results(sorted)
	t.recordQuery(QueryKindRadius, len(result), start)
	return result
}

// Query runs a single generalized traversal controlled by opts, combining
// what the five named methods above offer individually — e.g. WithMaxItems
// and WithMaxDistance together express "k nearest within radius r", which
// none of the named methods can express alone (see SPEC_FULL.md §4.5).
func Query[S Distance[S], Q Distance[S]](t *VpTree[S], target Q, opts ...QueryOption) []S {
	start := time.Now()
	cfg := newQueryConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	maxItems := cfg.maxItems
	if maxItems < 0 {
		maxItems = t.arena.len()
	}
	maxDistance := cfg.maxDistance
	if maxDistance < 0 {
		maxDistance = posInf
	}

	if maxItems <= 0 || maxDistance < 0 {
		t.recordQuery(QueryKindGeneral, 0, start)
		return nil
	}

	acc := newBoundedAccumulator[S](maxItems, maxDistance, cfg.exclusive)
	if t.arena.len() > 0 {
		searchRange[S, Q](t.arena, t.thresholds, 0, t.arena.len()-1, target, acc)
	}
	result := acc.results(cfg.sorted)
	t.recordQuery(QueryKindGeneral, len(result), start)
	return result
}

func boolToCount(ok bool) int {
	if ok {
		return 1
	}
	return 0
}

func (t *VpTree[S]) recordQuery(kind QueryKind, resultCount int, start time.Time) {
	d := time.Since(start)
	t.metrics.RecordQuery(kind, resultCount, d)
	t.logger.LogQuery(context.Background(), kind, resultCount, d)
}
