// Package fastsplit splits byte slices on a single delimiter byte using
// vectorized delimiter search.
//
// # Quick Start
//
//	line := []byte("314159265,1234578976543234567,12352352")
//	for seg := range fastsplit.Split(line, ',') {
//	    fmt.Println(string(seg))
//	}
//
// Pull-style iteration:
//
//	it := fastsplit.New(line, ',')
//	for seg, ok := it.Next(); ok; seg, ok = it.Next() {
//	    ...
//	}
//
// Segments are subslices of the input and are never copied.
//
// # Segmentation Rules
//
//   - An empty input yields no segments.
//   - An input without the delimiter yields itself.
//   - Consecutive delimiters yield empty segments: "a,,b" → "a", "", "b".
//   - A trailing delimiter does not yield a trailing empty segment:
//     "a," → "a", and "," → "".
//
// The last rule differs from bytes.Split, which would also return a final
// empty slice.
//
// # Random Access
//
// NewIndex scans a buffer once and stores the delimiter offsets in a Roaring
// bitmap, so the i-th segment is found without rescanning the buffer:
//
//	ix, _ := fastsplit.NewIndex(buf, '\n')
//	row, _ := ix.Segment(41)
//
// # Search Kernels
//
// SegmentLen compares VectorWidth bytes at a time and bisects a matching
// vector down to the exact lane. The FASTSPLIT_KERNEL environment variable
// selects an alternative kernel ("scalar" or "runtime") at startup; all
// kernels return identical results. Runtime reports the selection.
package fastsplit
