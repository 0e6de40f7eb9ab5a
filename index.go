package fastsplit

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/hupe1980/fastsplit/internal/bitmap"
	"github.com/hupe1980/fastsplit/internal/conv"
)

// Index gives random access to the segments of a buffer.
//
// It records every delimiter offset in a compressed bitmap, so Segment and
// SegmentAt are answered without rescanning. The segmentation is identical
// to the one produced by New and Split, including the missing trailing empty
// segment.
//
// The buffer is borrowed: it must not be modified while the Index is in use.
// An Index is immutable after construction and safe for concurrent reads.
type Index struct {
	buf      []byte
	delim    byte
	delims   *bitmap.Offsets
	segments int
	metrics  MetricsCollector
}

// NewIndex scans buf once and indexes the positions of delim.
//
// It returns ErrBufferTooLarge if buf does not fit 32-bit offsets.
func NewIndex(buf []byte, delim byte, optFns ...Option) (*Index, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	ctx := context.Background()
	locate := o.locate()
	logger := o.logger.WithDelimiter(delim)
	if o.kernelSet {
		logger = logger.WithKernel(o.kernel)
	}
	logger.LogRuntime(ctx)

	start := time.Now()

	if _, err := conv.IntToUint32(len(buf)); err != nil {
		err = fmt.Errorf("%w: %w", ErrBufferTooLarge, err)
		o.metricsCollector.RecordIndexBuild(len(buf), 0, time.Since(start), err)
		logger.LogIndexBuild(ctx, len(buf), 0, time.Since(start), err)
		return nil, err
	}

	delims := bitmap.New()
	segments := 0
	for off := 0; off < len(buf); {
		l := locate(buf[off:], delim)
		segments++
		if off+l == len(buf) {
			break
		}
		delims.Add(uint32(off + l))
		off += l + 1
	}
	delims.Optimize()

	elapsed := time.Since(start)
	o.metricsCollector.RecordIndexBuild(len(buf), segments, elapsed, nil)
	logger.LogIndexBuild(ctx, len(buf), segments, elapsed, nil)

	return &Index{
		buf:      buf,
		delim:    delim,
		delims:   delims,
		segments: segments,
		metrics:  o.metricsCollector,
	}, nil
}

// Len returns the number of segments.
func (ix *Index) Len() int {
	return ix.segments
}

// Size returns the length of the indexed buffer in bytes.
func (ix *Index) Size() int {
	return len(ix.buf)
}

// Delimiter returns the delimiter byte.
func (ix *Index) Delimiter() byte {
	return ix.delim
}

// Segment returns the i-th segment.
//
// It returns a *SegmentRangeError if i is not in [0, Len()).
func (ix *Index) Segment(i int) ([]byte, error) {
	seg, err := ix.segment(i)
	ix.metrics.RecordSegmentLookup(err)
	return seg, err
}

func (ix *Index) segment(i int) ([]byte, error) {
	if i < 0 || i >= ix.segments {
		return nil, &SegmentRangeError{Index: i, Len: ix.segments}
	}

	start := 0
	if i > 0 {
		prev, err := ix.delimAt(i - 1)
		if err != nil {
			return nil, err
		}
		start = prev + 1
	}

	end := len(ix.buf)
	if uint64(i) < ix.delims.Cardinality() {
		next, err := ix.delimAt(i)
		if err != nil {
			return nil, err
		}
		end = next
	}

	return ix.buf[start:end], nil
}

// delimAt returns the offset of the i-th delimiter.
func (ix *Index) delimAt(i int) (int, error) {
	// i < segments <= len(buf), which NewIndex checked against uint32.
	off, err := ix.delims.Select(uint32(i))
	if err != nil {
		return 0, err
	}
	return conv.Uint32ToInt(off)
}

// SegmentAt returns the index of the segment containing byte offset off.
// A delimiter byte belongs to the segment it terminates.
//
// It returns an *OffsetRangeError if off is not in [0, Size()).
func (ix *Index) SegmentAt(off int) (int, error) {
	if off < 0 || off >= len(ix.buf) {
		err := &OffsetRangeError{Offset: off, Size: len(ix.buf)}
		ix.metrics.RecordSegmentLookup(err)
		return 0, err
	}

	seg := 0
	if off > 0 {
		// Delimiters strictly before off.
		seg = int(ix.delims.Rank(uint32(off - 1)))
	}
	ix.metrics.RecordSegmentLookup(nil)
	return seg, nil
}

// IsDelimiter reports whether buf[off] is a delimiter.
func (ix *Index) IsDelimiter(off int) bool {
	if off < 0 || off >= len(ix.buf) {
		return false
	}
	return ix.delims.Contains(uint32(off))
}

// Delimiters returns an iterator over the delimiter offsets in ascending
// order.
func (ix *Index) Delimiters() iter.Seq[int] {
	return func(yield func(int) bool) {
		for off := range ix.delims.All() {
			if !yield(int(off)) {
				return
			}
		}
	}
}

// All returns an iterator over (segment index, segment) pairs in order.
func (ix *Index) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		i, start := 0, 0
		for off := range ix.delims.All() {
			if !yield(i, ix.buf[start:off]) {
				return
			}
			i, start = i+1, int(off)+1
		}
		if start < len(ix.buf) {
			yield(i, ix.buf[start:])
		}
	}
}

// SizeInBytes returns the memory used by the delimiter bitmap.
func (ix *Index) SizeInBytes() uint64 {
	return ix.delims.GetSizeInBytes()
}
