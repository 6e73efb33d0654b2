// Package testutil provides testing utilities for somgo.
//
// This package is intended for use in tests, examples and benchmarks only.
// It provides deterministic random sources that satisfy somgo.RandomSource
// and helpers for generating input vectors.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vec := make([]float32, 3)
//	rng.FillUniform(vec)      // uniform [0, 1)
//	rng.FillGaussian(vec)     // standard normal
//
// # Scripted Weights
//
//	src := testutil.NewSequence(0, 0.5, 1) // cycles 0, 0.5, 1, 0, ...
//	m := somgo.New(2, 2, 1, 1, 10, 0.5, somgo.WithRandomSource(src))
package testutil
