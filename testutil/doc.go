// Package testutil provides testing utilities for fastsplit.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random byte buffers with a controlled
// delimiter density, and naive reference implementations of the locator and
// the splitter to compare against.
//
// # Random Buffers
//
//	rng := testutil.NewRNG(seed)
//	buf := rng.Buffer(4096, ',', 0.05) // ~5% commas
//	rng.FillAlphabet(buf, "abc,")
//
// # Ground Truth
//
//	want := testutil.NaiveSegmentLen(buf, ',')
//	segs := testutil.NaiveSplit(buf, ',')
package testutil
