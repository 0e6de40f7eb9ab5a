// Package conv provides checked conversions between int and the 32-bit
// offsets stored in the segment index.
//
// Buffers are addressed with int, the index stores uint32. Conversions that
// are provably safe after the buffer length has been validated use direct
// casts instead.
package conv
