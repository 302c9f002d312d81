// Package testutil provides testing utilities for bloomscore.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG that builds random bit arrays.
//
//	rng := testutil.NewRNG(seed)
//	a := rng.BitArray(1024)             // each bit set with p = 0.5
//	b := rng.BitArrayDensity(1024, 0.1) // sparse filter
//	corpus := rng.BitArrays(1000, 1024)
package testutil
