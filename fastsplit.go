package fastsplit

import (
	"iter"

	"github.com/hupe1980/fastsplit/internal/simd"
)

// VectorWidth is the number of bytes compared per full-width vector.
const VectorWidth = simd.VectorWidth

// SegmentLen returns the index of the first byte of s equal to delim, or
// len(s) if delim does not occur.
//
// It never allocates and is safe for concurrent use.
func SegmentLen(s []byte, delim byte) int {
	return simd.SegmentLen(s, delim)
}

// Iterator yields the segments of a byte slice separated by a delimiter.
//
// Segments are subslices of the input; nothing is copied. An Iterator is not
// safe for concurrent use.
type Iterator struct {
	rest   []byte
	delim  byte
	locate func([]byte, byte) int
}

// New returns an Iterator over the segments of s separated by delim.
func New(s []byte, delim byte) *Iterator {
	return &Iterator{
		rest:   s,
		delim:  delim,
		locate: simd.SegmentLen,
	}
}

// Next returns the next segment. It returns nil, false once the input is
// exhausted.
//
// Exhaustion is detected when the remaining input is empty, so an input that
// ends with the delimiter produces no trailing empty segment: "a," yields
// only "a", and "," yields a single empty segment.
func (it *Iterator) Next() ([]byte, bool) {
	if len(it.rest) == 0 {
		return nil, false
	}

	l := it.locate(it.rest, it.delim)
	head, tail := it.rest[:l], it.rest[l:]
	if len(tail) != 0 {
		tail = tail[1:]
	}
	it.rest = tail

	return head, true
}

// Remaining returns the not yet consumed suffix of the input.
func (it *Iterator) Remaining() []byte {
	return it.rest
}

// All returns an iterator over the remaining segments. Breaking out of the
// loop leaves the Iterator positioned after the last yielded segment.
func (it *Iterator) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for {
			seg, ok := it.Next()
			if !ok || !yield(seg) {
				return
			}
		}
	}
}

// Split returns an iterator over the segments of s separated by delim.
//
//	for seg := range fastsplit.Split(line, ',') {
//	    ...
//	}
func Split(s []byte, delim byte) iter.Seq[[]byte] {
	return New(s, delim).All()
}

// Count returns the number of segments Split would yield for s.
func Count(s []byte, delim byte) int {
	return countWith(simd.SegmentLen, s, delim)
}

func countWith(locate func([]byte, byte) int, s []byte, delim byte) int {
	n := 0
	for len(s) > 0 {
		l := locate(s, delim)
		n++
		if l == len(s) {
			break
		}
		s = s[l+1:]
	}
	return n
}

// Bytes is a byte slice with a FastSplit method.
type Bytes []byte

// FastSplit is equivalent to New(b, delim).
func (b Bytes) FastSplit(delim byte) *Iterator {
	return New(b, delim)
}
