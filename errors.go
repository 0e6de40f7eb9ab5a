package fastsplit

import (
	"errors"
	"fmt"
)

var (
	// ErrBufferTooLarge is returned when a buffer exceeds the 32-bit offset
	// space of the segment index.
	ErrBufferTooLarge = errors.New("buffer exceeds 4 GiB index limit")

	// ErrOutOfRange is returned when a segment index or byte offset lies
	// outside the indexed buffer.
	ErrOutOfRange = errors.New("out of range")
)

// SegmentRangeError indicates a segment index outside [0, Len).
//
// errors.Is(err, ErrOutOfRange) reports true for it.
type SegmentRangeError struct {
	Index int
	Len   int
}

func (e *SegmentRangeError) Error() string {
	return fmt.Sprintf("segment %d out of range [0, %d)", e.Index, e.Len)
}

func (e *SegmentRangeError) Unwrap() error { return ErrOutOfRange }

// OffsetRangeError indicates a byte offset outside [0, Size).
//
// errors.Is(err, ErrOutOfRange) reports true for it.
type OffsetRangeError struct {
	Offset int
	Size   int
}

func (e *OffsetRangeError) Error() string {
	return fmt.Sprintf("offset %d out of range [0, %d)", e.Offset, e.Size)
}

func (e *OffsetRangeError) Unwrap() error { return ErrOutOfRange }
