// Package testutil provides testing utilities for diskpack.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for candidate point sets and a brute force
// packing checker used as ground truth.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(1000, 1000)        // integral coords in [0, 1000)
//	pts = rng.ClusteredPoints(1000, 5, 20, 1000) // gaussian clusters
//
// # Ground Truth
//
//	ok := testutil.BruteForceNoOverlap(pts, radius, sol)
package testutil
