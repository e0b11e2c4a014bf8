// Package vptree implements a Vantage-Point Tree for exact nearest-neighbor,
// k-nearest-neighbor, and radius search over an arbitrary metric space.
//
// Stored items need only implement Distance[S] against themselves; query
// targets need only implement Distance[S] against the stored type, so a
// query type may carry less (or different) data than what is stored — see
// the package example for a heterogeneous query.
//
// A VpTree is built once from a complete dataset and is immutable
// thereafter: there is no insertion, deletion, or incremental rebalancing.
// Once built, it is safe for any number of goroutines to query concurrently
// without coordination.
package vptree

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// VpTree is a Vantage-Point Tree over items of type S. It is constructed
// once (New, NewParallel, or NewIndex) and never mutated afterward.
type VpTree[S Distance[S]] struct {
	arena      arena[S]
	thresholds []float64

	logger  *Logger
	metrics MetricsCollector

	height int // cached on first Stats() call; -1 until computed
}

// New builds a VpTree that owns a copy of items. The caller's slice is left
// untouched; the tree's own arena is an independent permutation of it.
func New[S Distance[S]](items []S, opts ...BuildOption) *VpTree[S] {
	cfg := newBuildConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	start := time.Now()
	owned := make(ownedArena[S], len(items))
	copy(owned, items)

	thresholds := make([]float64, len(owned))
	keys := make([]float64, len(owned))
	if len(owned) > 0 {
		buildRange[S](owned, thresholds, keys, 0, len(owned)-1, cfg.logger)
	}

	t := &VpTree[S]{arena: owned, thresholds: thresholds, logger: cfg.logger, metrics: cfg.metrics, height: -1}
	cfg.metrics.RecordBuild(len(items), 1, time.Since(start))
	cfg.logger.LogBuild(context.Background(), len(items), 1, time.Since(start))
	return t
}

// NewParallel builds a VpTree like New, but distributes the recursive
// median-split build across up to workers goroutines using a bounded
// errgroup.Group whose only job is to cap concurrency (SetLimit) and join
// (Wait) — construction itself is not cancellable (spec.md §5), so
// NewParallel, like New, is infallible whenever the caller's Distance is.
// A non-positive workers is treated as 1 (sequential), per §7. Given the
// same pivot-selection rule (always true for this module), the resulting
// tree is identical to what New would have produced.
func NewParallel[S Distance[S]](items []S, workers int, opts ...BuildOption) *VpTree[S] {
	cfg := newBuildConfig()
	cfg.workers = max1(workers)
	for _, opt := range opts {
		opt(cfg)
	}

	start := time.Now()
	owned := make(ownedArena[S], len(items))
	copy(owned, items)

	thresholds := make([]float64, len(owned))
	keys := make([]float64, len(owned))

	if len(owned) > 0 {
		var g errgroup.Group
		g.SetLimit(cfg.workers)
		buildParallel[S](owned, thresholds, keys, 0, len(owned)-1, cfg.sequentialThreshold, &g, cfg.logger)
		_ = g.Wait() // callbacks never return an error; see buildParallel's doc comment
	}

	t := &VpTree[S]{arena: owned, thresholds: thresholds, logger: cfg.logger, metrics: cfg.metrics, height: -1}
	cfg.metrics.RecordBuild(len(items), cfg.workers, time.Since(start))
	cfg.logger.LogBuild(context.Background(), len(items), cfg.workers, time.Since(start))
	return t
}

// NewIndex builds a VpTree over items borrowed from an external slice: the
// arena stores only a permutation of indices, never a copy of S. The
// returned tree's lifetime is bounded by the caller keeping *items alive
// and unmodified.
func NewIndex[S Distance[S]](items *[]S, opts ...BuildOption) *VpTree[S] {
	cfg := newBuildConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	start := time.Now()
	index := make([]int, len(*items))
	for i := range index {
		index[i] = i
	}
	idxArena := &indexArena[S]{items: items, index: index}

	thresholds := make([]float64, len(index))
	keys := make([]float64, len(index))
	if len(index) > 0 {
		buildRange[S](idxArena, thresholds, keys, 0, len(index)-1, cfg.logger)
	}

	t := &VpTree[S]{arena: idxArena, thresholds: thresholds, logger: cfg.logger, metrics: cfg.metrics, height: -1}
	cfg.metrics.RecordBuild(len(index), 1, time.Since(start))
	cfg.logger.LogBuild(context.Background(), len(index), 1, time.Since(start))
	return t
}

func max1(workers int) int {
	if workers <= 0 {
		return 1
	}
	return workers
}

// Len returns the number of items stored in the tree.
func (t *VpTree[S]) Len() int {
	return t.arena.len()
}

// Items returns a copy of the tree's items in their internal (permuted)
// order. Callers must not assume this matches the order items were
// originally inserted in.
func (t *VpTree[S]) Items() []S {
	out := make([]S, t.arena.len())
	for i := range out {
		out[i] = t.arena.get(i)
	}
	return out
}

// Stats reports structural information about the tree.
type Stats struct {
	Size   int
	Height int
}

// Stats returns the tree's size and height. Height is computed from Size
// alone (the position-based split is data-independent — see DESIGN.md) and
// cached after the first call.
func (t *VpTree[S]) Stats() Stats {
	if t.height < 0 {
		t.height = layoutHeight(t.arena.len())
	}
	return Stats{Size: t.arena.len(), Height: t.height}
}

// layoutHeight computes the recursion depth of a VP-Tree over n items built
// by this module's position-based median split. Because the split point is
// a pure function of the range size (not the data), height depends only on
// n, not on the actual items or distances involved.
func layoutHeight(n int) int {
	if n <= 1 {
		return n
	}
	leftSize := (n - 1) / 2
	rightSize := (n - 1) - leftSize
	lh := layoutHeight(leftSize)
	rh := layoutHeight(rightSize)
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}
