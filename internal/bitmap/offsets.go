package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Offsets implements a 32-bit Roaring Bitmap of byte offsets.
// It wraps the official roaring implementation.
type Offsets struct {
	rb *roaring.Bitmap
}

// New creates a new empty offset set.
func New() *Offsets {
	return &Offsets{
		rb: roaring.New(),
	}
}

// Add adds an offset.
func (o *Offsets) Add(off uint32) {
	o.rb.Add(off)
}

// Contains checks if an offset is in the set.
func (o *Offsets) Contains(off uint32) bool {
	return o.rb.Contains(off)
}

// Cardinality returns the number of offsets in the set.
func (o *Offsets) Cardinality() uint64 {
	return o.rb.GetCardinality()
}

// IsEmpty returns true if the set is empty.
func (o *Offsets) IsEmpty() bool {
	return o.rb.IsEmpty()
}

// Select returns the i-th smallest offset.
func (o *Offsets) Select(i uint32) (uint32, error) {
	return o.rb.Select(i)
}

// Rank returns the number of offsets less than or equal to off.
func (o *Offsets) Rank(off uint32) uint64 {
	return o.rb.Rank(off)
}

// Optimize converts containers to run-length encoding where that is smaller.
func (o *Offsets) Optimize() {
	o.rb.RunOptimize()
}

// All returns an iterator over the offsets in ascending order.
func (o *Offsets) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := o.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// GetSizeInBytes returns the size of the set in bytes.
func (o *Offsets) GetSizeInBytes() uint64 {
	return o.rb.GetSizeInBytes()
}
