// Package bitmap stores sorted delimiter offsets in a Roaring bitmap.
//
// Offsets are 32-bit, so a single bitmap covers buffers up to 4 GiB. Rank and
// Select give the segment arithmetic used by the segment index:
//
//	Select(i)  offset of the i-th delimiter (0-based)
//	Rank(x)    number of delimiters at offsets <= x
package bitmap
