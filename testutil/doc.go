// Package testutil provides testing utilities for spaces.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic stand-ins for the uniform random source and
// helpers for generating random bounds and shapes.
//
// # Fake Sources
//
//	box.SampleWith(testutil.FixedUniform{Fraction: 0.5}) // midpoint of every coordinate
//	box.SampleWith(testutil.FailingUniform{Err: err})
//
// # Random Bounds
//
//	rng := testutil.NewRNG(seed)
//	shape := rng.Shape(3, 4)
//	low, high := rng.Bounds(shape.Size(), 100)
package testutil
