package testutil

import (
	"math/rand"
	"sort"
	"sync"
)

// Point2D is a simple 2-D point used by the generators below. It carries no
// distance method of its own — tests pair it with whatever Distance
// implementation (Euclidean, Manhattan, ...) the scenario under test needs.
type Point2D struct {
	X, Y float64
}

// RNG wraps math/rand with a fixed seed, kept under a mutex so the same
// instance can be shared across parallel subtests without each one needing
// its own source.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Reset rewinds the RNG to its initial seed, so a test can regenerate the
// exact same sequence after consuming some of it.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Intn returns a non-negative pseudo-random number in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UniformPoints generates n points with each coordinate independently
// uniform in [lo, hi).
func (r *RNG) UniformPoints(n int, lo, hi float64) []Point2D {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := hi - lo
	points := make([]Point2D, n)
	for i := range points {
		points[i] = Point2D{
			X: lo + r.rand.Float64()*span,
			Y: lo + r.rand.Float64()*span,
		}
	}
	return points
}

// GaussianPoints generates n points with coordinates drawn from a standard
// normal distribution, scaled by stddev and centered on (cx, cy).
func (r *RNG) GaussianPoints(n int, cx, cy, stddev float64) []Point2D {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]Point2D, n)
	for i := range points {
		points[i] = Point2D{
			X: cx + r.rand.NormFloat64()*stddev,
			Y: cy + r.rand.NormFloat64()*stddev,
		}
	}
	return points
}

// ClusteredPoints generates n points split across clusters random centroids
// in [lo, hi), each with Gaussian spread around its centroid.
func (r *RNG) ClusteredPoints(n, clusters int, lo, hi, spread float64) []Point2D {
	if clusters < 1 {
		clusters = 1
	}
	centroids := r.UniformPoints(clusters, lo, hi)

	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]Point2D, n)
	for i := range points {
		c := centroids[i%clusters]
		points[i] = Point2D{
			X: c.X + r.rand.NormFloat64()*spread,
			Y: c.Y + r.rand.NormFloat64()*spread,
		}
	}
	return points
}

// Shuffle returns a random permutation of the indices [0, n), which a test
// applies to its own slice. Used to check permutation invariance: a tree built from any
// reordering of the same multiset must answer queries identically.
func (r *RNG) Shuffle(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	perm := r.rand.Perm(n)
	return perm
}

// Result pairs an item with its distance to some query, as returned by the
// brute-force oracles below.
type Result[T any] struct {
	Item     T
	Distance float64
}

// BruteForceNearest returns the single closest item to query by exhaustive
// scan, using dist as the distance function. It is the ground truth for
// vptree.NearestNeighbor.
func BruteForceNearest[T any](items []T, query T, dist func(a, b T) float64) (Result[T], bool) {
	if len(items) == 0 {
		return Result[T]{}, false
	}
	best := Result[T]{Item: items[0], Distance: dist(query, items[0])}
	for _, it := range items[1:] {
		d := dist(query, it)
		if d < best.Distance {
			best = Result[T]{Item: it, Distance: d}
		}
	}
	return best, true
}

// BruteForceKNearest returns the k closest items to query by exhaustive
// scan, sorted ascending by distance. If k >= len(items) every item is
// returned.
func BruteForceKNearest[T any](items []T, query T, k int, dist func(a, b T) float64) []Result[T] {
	if k <= 0 {
		return nil
	}
	results := make([]Result[T], len(items))
	for i, it := range items {
		results[i] = Result[T]{Item: it, Distance: dist(query, it)}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Distance < results[j].Distance })
	if k < len(results) {
		results = results[:k]
	}
	return results
}

// BruteForceInRadius returns every item within r of query by exhaustive
// scan, sorted ascending by distance.
func BruteForceInRadius[T any](items []T, query T, r float64, dist func(a, b T) float64) []Result[T] {
	var results []Result[T]
	for _, it := range items {
		if d := dist(query, it); d <= r {
			results = append(results, Result[T]{Item: it, Distance: d})
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Distance < results[j].Distance })
	return results
}
