package simd

import "bytes"

const (
	// VectorWidth is the number of lanes scanned per full-width chunk.
	// It must be a power of two between MinVectorWidth and 64.
	VectorWidth = 64

	// MinVectorWidth is the narrowest vector tried on a remainder; shorter
	// tails are scanned byte by byte.
	MinVectorWidth = 4
)

// Compile-time checks on the width constants.
var (
	_ [64 - VectorWidth]struct{}
	_ [VectorWidth - MinVectorWidth]struct{}
	_ = [1]struct{}{}[VectorWidth&(VectorWidth-1)]
)

// kernelSegmentLen is replaced by initCapabilities according to the active
// kernel.
var kernelSegmentLen = segmentLenTiered

// SegmentLen returns the index of the first byte of s equal to c, or len(s)
// if there is none.
func SegmentLen(s []byte, c byte) int {
	return kernelSegmentLen(s, c)
}

// KernelFunc returns the search function implementing k. Unknown kernels
// map to Tiered.
func KernelFunc(k Kernel) func(s []byte, c byte) int {
	switch k {
	case Scalar:
		return segmentLenScalar
	case Runtime:
		return segmentLenRuntime
	default:
		return segmentLenTiered
	}
}

// segmentLenTiered scans full-width chunks from the start of s and hands the
// trailing remainder to the narrower tiers.
func segmentLenTiered(s []byte, c byte) int {
	off := 0
	for ; off+VectorWidth <= len(s); off += VectorWidth {
		if l, ok := findVector(s[off:off+VectorWidth], c); ok {
			return off + l
		}
	}
	return off + segmentLenRemainder(s[off:], c)
}

// segmentLenRemainder searches s, len(s) < VectorWidth, with the largest
// vector that still fits, halving the width as the tail shrinks.
func segmentLenRemainder(s []byte, c byte) int {
	off := 0
	for w := VectorWidth / 2; w >= MinVectorWidth; w /= 2 {
		if len(s)-off < w {
			continue
		}
		if l, ok := findVector(s[off:off+w], c); ok {
			return off + l
		}
		off += w
	}
	return off + segmentLenScalar(s[off:], c)
}

func segmentLenScalar(s []byte, c byte) int {
	for i, b := range s {
		if b == c {
			return i
		}
	}
	return len(s)
}

func segmentLenRuntime(s []byte, c byte) int {
	if i := bytes.IndexByte(s, c); i >= 0 {
		return i
	}
	return len(s)
}
