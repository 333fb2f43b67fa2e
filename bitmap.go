package sparseset

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Bitmap returns a compressed snapshot of the members.
// Later changes to s are not reflected in the bitmap.
func (s *IndexSet) Bitmap() *roaring64.Bitmap {
	rb := roaring64.New()
	for _, x := range s.dense {
		rb.Add(uint64(x))
	}
	return rb
}

// FromBitmap returns a set over [0, max) holding the members of rb.
//
// It returns an *OutOfRangeError if rb holds a value >= max.
// A nil rb yields an empty set.
func FromBitmap(max int, rb *roaring64.Bitmap) (*IndexSet, error) {
	if max < 0 {
		return nil, ErrInvalidMax
	}
	if rb == nil || rb.IsEmpty() {
		return New(max), nil
	}
	if hi := rb.Maximum(); hi >= uint64(max) {
		return nil, &OutOfRangeError{Value: clampInt(hi), Max: max}
	}

	s := New(max, WithCapacity(int(rb.GetCardinality())))
	it := rb.Iterator()
	for it.HasNext() {
		x := int(it.Next())
		s.sparse[x] = len(s.dense)
		s.dense = append(s.dense, x)
	}
	return s, nil
}

// clampInt converts a bitmap member to int for error reporting.
func clampInt(x uint64) int {
	const maxInt = int(^uint(0) >> 1)
	if x > uint64(maxInt) {
		return maxInt
	}
	return int(x)
}
