// Package testutil provides testing utilities for flatmap.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Keys
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.Keys(1000, 4, 16)   // distinct printable keys
//	raw := rng.BinaryKeys(100, 8)   // arbitrary bytes, NUL included
//
// # Skewed Access
//
//	idx := rng.ZipfIndices(10000, len(keys), 1.2)
package testutil
