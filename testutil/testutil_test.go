package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func euclidean(a, b Point2D) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	points := rng.UniformPoints(50, 0, 10)

	assert.Len(t, points, 50)
	for _, p := range points {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 10.0)
	}
}

func TestGaussianPoints(t *testing.T) {
	rng := NewRNG(4711)

	points := rng.GaussianPoints(200, 5, 5, 1)

	assert.Len(t, points, 200)
	var meanX float64
	for _, p := range points {
		meanX += p.X
	}
	meanX /= float64(len(points))
	assert.InDelta(t, 5.0, meanX, 0.5)
}

func TestClusteredPoints(t *testing.T) {
	rng := NewRNG(4711)

	points := rng.ClusteredPoints(60, 3, 0, 100, 0.5)

	assert.Len(t, points, 60)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	p1 := rng.UniformPoints(5, 0, 1)
	rng.Reset()
	p2 := rng.UniformPoints(5, 0, 1)
	assert.Equal(t, p1, p2)
}

func TestShuffleIsPermutation(t *testing.T) {
	rng := NewRNG(99)
	perm := rng.Shuffle(10)

	assert.Len(t, perm, 10)
	seen := make(map[int]bool)
	for _, idx := range perm {
		assert.False(t, seen[idx])
		seen[idx] = true
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 10)
	}
}

func TestBruteForceNearest(t *testing.T) {
	points := []Point2D{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	query := Point2D{2.1, 2.5}

	best, ok := BruteForceNearest(points, query, euclidean)
	assert.True(t, ok)
	assert.Equal(t, Point2D{2, 2}, best.Item)
}

func TestBruteForceKNearest(t *testing.T) {
	points := []Point2D{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	query := Point2D{2.1, 2.5}

	results := BruteForceKNearest(points, query, 2, euclidean)
	assert.Len(t, results, 2)
	assert.Equal(t, Point2D{2, 2}, results[0].Item)
	assert.True(t, results[0].Distance <= results[1].Distance)
}

func TestBruteForceInRadius(t *testing.T) {
	points := []Point2D{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	query := Point2D{2.1, 2.5}

	results := BruteForceInRadius(points, query, 1.0, euclidean)
	for _, r := range results {
		assert.LessOrEqual(t, r.Distance, 1.0)
	}
}
