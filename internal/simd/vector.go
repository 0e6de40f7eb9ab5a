package simd

import "encoding/binary"

// ==============================================================================
// Fixed-width byte vectors
// ==============================================================================
//
// A width-N vector is a *[N]byte view into the searched slice. The vector-wide
// equality test is done within 64-bit registers: each word is XORed with the
// splatted delimiter, which turns matching lanes into zero bytes, and the
// zero-byte detector (x - 0x01..01) &^ x & 0x80..80 is non-zero iff some lane
// is zero. Only the non-zero-ness is used; the detector's bit positions are
// unreliable above the first zero lane because of borrow propagation.
//
// Halving goes through slice-to-array-pointer conversions, which are checked,
// so no layout reinterpretation is needed.

const (
	lo64 = 0x0101010101010101
	hi64 = 0x8080808080808080
	lo32 = 0x01010101
	hi32 = 0x80808080
)

// matchWords reports whether any lane of v equals c.
// len(v) must be a multiple of 8.
func matchWords(v []byte, c byte) bool {
	splat := uint64(c) * lo64
	var acc uint64
	for i := 0; i+8 <= len(v); i += 8 {
		x := binary.LittleEndian.Uint64(v[i:]) ^ splat
		acc |= (x - lo64) &^ x & hi64
	}
	return acc != 0
}

func match64(v *[64]byte, c byte) bool { return matchWords(v[:], c) }
func match32(v *[32]byte, c byte) bool { return matchWords(v[:], c) }
func match16(v *[16]byte, c byte) bool { return matchWords(v[:], c) }
func match8(v *[8]byte, c byte) bool   { return matchWords(v[:], c) }

func match4(v *[4]byte, c byte) bool {
	x := binary.LittleEndian.Uint32(v[:]) ^ uint32(c)*lo32
	return (x-lo32)&^x&hi32 != 0
}

func match2(v *[2]byte, c byte) bool {
	return v[0] == c || v[1] == c
}

// The locateN functions resolve the lowest matching lane of a vector that is
// known to contain c. The left half is always tested first.

func locate64(v *[64]byte, c byte) int {
	if lo := (*[32]byte)(v[:32]); match32(lo, c) {
		return locate32(lo, c)
	}
	return 32 + locate32((*[32]byte)(v[32:]), c)
}

func locate32(v *[32]byte, c byte) int {
	if lo := (*[16]byte)(v[:16]); match16(lo, c) {
		return locate16(lo, c)
	}
	return 16 + locate16((*[16]byte)(v[16:]), c)
}

func locate16(v *[16]byte, c byte) int {
	if lo := (*[8]byte)(v[:8]); match8(lo, c) {
		return locate8(lo, c)
	}
	return 8 + locate8((*[8]byte)(v[8:]), c)
}

func locate8(v *[8]byte, c byte) int {
	if lo := (*[4]byte)(v[:4]); match4(lo, c) {
		return locate4(lo, c)
	}
	return 4 + locate4((*[4]byte)(v[4:]), c)
}

func locate4(v *[4]byte, c byte) int {
	if lo := (*[2]byte)(v[:2]); match2(lo, c) {
		return locate2(lo, c)
	}
	return 2 + locate2((*[2]byte)(v[2:]), c)
}

// locate2 is the bisection base case. A match is guaranteed, so lane 1 is
// the answer whenever lane 0 is not.
func locate2(v *[2]byte, c byte) int {
	if v[0] == c {
		return 0
	}
	return 1
}

// findVector tests v as a single vector of width len(v) and, on a hit,
// bisects to the lowest matching lane.
func findVector(v []byte, c byte) (int, bool) {
	switch len(v) {
	case 64:
		if p := (*[64]byte)(v); match64(p, c) {
			return locate64(p, c), true
		}
	case 32:
		if p := (*[32]byte)(v); match32(p, c) {
			return locate32(p, c), true
		}
	case 16:
		if p := (*[16]byte)(v); match16(p, c) {
			return locate16(p, c), true
		}
	case 8:
		if p := (*[8]byte)(v); match8(p, c) {
			return locate8(p, c), true
		}
	case 4:
		if p := (*[4]byte)(v); match4(p, c) {
			return locate4(p, c), true
		}
	default:
		// Not a vector width; keep the contract with a plain scan.
		if i := segmentLenScalar(v, c); i < len(v) {
			return i, true
		}
	}
	return 0, false
}
