// Package testutil provides testing utilities for shapesim.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic mesh fixtures and a seeded generator for
// random triangle soups.
//
// # Fixtures
//
//	cube := testutil.Cube("cube", 1)          // 36 vertices, 12 faces
//	box := testutil.Box("box", 1, 1, 2)
//	flat := testutil.Plane("sheet", 2, 3)     // zero thickness
//
// # Random Meshes
//
//	rng := testutil.NewRNG(seed)
//	soup := rng.Soup("noise", 1000, 10)
package testutil
