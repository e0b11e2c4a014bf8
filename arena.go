package vptree

// arena is the flat indexed storage backing a VpTree: a permutable sequence
// of N items addressed by position. Both construction modes from §4.6 share
// this interface — ownedArena holds the items directly, indexArena holds a
// permutation of indices into a caller-owned slice — so the builder and
// search engine never need to know which mode produced the tree.
type arena[S any] interface {
	get(i int) S
	swap(i, j int)
	len() int
}

// ownedArena stores items directly; used by the owned and parallel-owned
// construction modes. The tree fully owns this backing slice.
type ownedArena[S any] []S

func (a ownedArena[S]) get(i int) S   { return a[i] }
func (a ownedArena[S]) swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a ownedArena[S]) len() int      { return len(a) }

// indexArena stores a permutation of indices into an externally owned
// slice; used by the borrowed/index construction mode. The tree's lifetime
// is bounded by the caller keeping items alive and unmodified.
type indexArena[S any] struct {
	items *[]S
	index []int
}

func (a *indexArena[S]) get(i int) S   { return (*a.items)[a.index[i]] }
func (a *indexArena[S]) swap(i, j int) { a.index[i], a.index[j] = a.index[j], a.index[i] }
func (a *indexArena[S]) len() int      { return len(a.index) }
