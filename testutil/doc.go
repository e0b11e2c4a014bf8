// Package testutil provides testing utilities for vptree.
//
// This package is intended for use in tests and benchmarks only. It provides
// helpers for generating random 2-D point datasets and computing exact
// (brute-force) nearest-neighbor results to check a VpTree's answers
// against.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformPoints(1000, 0, 100)
//
// # Exact Search (Ground Truth)
//
//	results := testutil.BruteForceKNearest(points, query, k, dist)
package testutil
