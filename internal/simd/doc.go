// Package simd locates delimiter bytes with fixed-width vector compares.
//
// # Algorithm
//
// SegmentLen walks the input in VectorWidth-byte chunks. Each chunk gets one
// vector-wide equality test; a hit is narrowed to the exact lane by halving
// the vector and always testing the left half first, which keeps the result
// identical to a left-to-right scan. The tail shorter than VectorWidth is
// searched with the widest vector that fits, then narrower ones, and finally
// byte by byte once fewer than MinVectorWidth bytes remain.
//
// Vector compares are done within 64-bit general purpose registers (SWAR),
// so the package is pure Go and needs no assembly.
//
// # Kernels
//
//   - tiered: the algorithm above (default)
//   - scalar: byte-by-byte reference scan
//   - runtime: the Go runtime's bytes.IndexByte
//
// Set FASTSPLIT_KERNEL to one of the names above to override the default.
// Every kernel returns len(s) when the delimiter is absent.
//
// # Supported Platforms
//
// CPU features are detected on x86-64 (AVX2, AVX-512) and ARM64 (NEON, SVE2)
// and reported through ActiveISA for diagnostics.
package simd
