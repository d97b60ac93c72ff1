package array

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/arloliu/varbin/buffer"
	"github.com/arloliu/varbin/errs"
	"github.com/arloliu/varbin/format"
	"github.com/arloliu/varbin/internal/hash"
	"github.com/arloliu/varbin/offsets"
)

// BinaryArray is an immutable column of variable-length byte or string values.
//
// It is created by MutableBinaryValues.AsExclusive and owned by a single handle.
// No method mutates it, so it is safe for concurrent reads. Slices returned by
// its accessors alias the frozen buffers and must not be modified.
type BinaryArray[O offsets.Offset] struct {
	dataType format.DataType
	offsets  offsets.Frozen[O]
	values   buffer.FrozenValues
}

// DataType returns the data type of the array.
func (a *BinaryArray[O]) DataType() format.DataType {
	return a.dataType
}

// Len returns the number of values.
func (a *BinaryArray[O]) Len() int {
	return a.offsets.Len()
}

// IsEmpty reports whether the array holds no values.
func (a *BinaryArray[O]) IsEmpty() bool {
	return a.offsets.Len() == 0
}

// Value returns value i. Panics if i is out of range.
func (a *BinaryArray[O]) Value(i int) []byte {
	v, ok := a.ValueAt(i)
	if !ok {
		panic(fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfRange, i, a.Len()))
	}

	return v
}

// ValueAt returns value i.
// Returns (nil, false) if i is out of range.
func (a *BinaryArray[O]) ValueAt(i int) ([]byte, bool) {
	if i < 0 || i >= a.offsets.Len() {
		return nil, false
	}

	start, end := a.offsets.Range(i)

	return a.values.Slice(start, end), true
}

// ValueString returns value i as a string. Panics if i is out of range.
func (a *BinaryArray[O]) ValueString(i int) string {
	return string(a.Value(i))
}

// All returns an iterator over the index and content of every value.
func (a *BinaryArray[O]) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for i := range a.offsets.Len() {
			start, end := a.offsets.Range(i)
			if !yield(i, a.values.Slice(start, end)) {
				return
			}
		}
	}
}

// Iter returns an exactly sized sequence over the values, suitable for
// ExtendTrustedLen.
func (a *BinaryArray[O]) Iter() SizedSeq[[]byte] {
	return Exactly(a.Len(), func(yield func([]byte) bool) {
		for _, v := range a.All() {
			if !yield(v) {
				return
			}
		}
	})
}

// Offsets returns the frozen offsets.
//
// Offsets of a sliced array do not start at 0; they are positions in Values.
func (a *BinaryArray[O]) Offsets() offsets.Frozen[O] {
	return a.offsets
}

// Values returns the frozen value bytes. Do not modify the returned slice.
func (a *BinaryArray[O]) Values() []byte {
	return a.values.Bytes()
}

// Slice returns a view of length values starting at value offset. No data is copied.
//
// Returns:
//   - *BinaryArray[O]: View sharing the buffers of a
//   - error: ErrIndexOutOfRange if the window is outside the array
func (a *BinaryArray[O]) Slice(offset, length int) (*BinaryArray[O], error) {
	offs, err := a.offsets.Slice(offset, length)
	if err != nil {
		return nil, err
	}

	return &BinaryArray[O]{dataType: a.dataType, offsets: offs, values: a.values}, nil
}

// Fingerprint returns the xxHash64 fingerprint of the value sequence.
//
// Structurally equal arrays have the same fingerprint regardless of buffer
// capacities or slicing.
func (a *BinaryArray[O]) Fingerprint() uint64 {
	h := hash.NewValueHasher()
	for _, v := range a.All() {
		h.WriteValue(v)
	}

	return h.Sum64()
}

// Equal reports whether a and other are structurally equal. See Equal.
func (a *BinaryArray[O]) Equal(other *BinaryArray[O]) bool {
	return Equal(a, other)
}

// Equal reports whether two arrays hold the same values.
//
// Arrays are equal when their offsets describe the same value boundaries and the
// corresponding value bytes are equal. Buffer capacities and the position of a
// slice within its parent buffers are not compared.
//
// The data type is not compared either: a Binary array and a Utf8 array holding
// the same values are equal, and so are their fingerprints. Compare DataType
// separately when the logical type matters.
//
// Two nil arrays are equal.
func Equal[O offsets.Offset](a, b *BinaryArray[O]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}

	if !a.offsets.Equal(b.offsets) {
		return false
	}

	aBytes := a.values.Slice(int(a.offsets.First()), int(a.offsets.Last()))
	bBytes := b.values.Slice(int(b.offsets.First()), int(b.offsets.Last()))

	return bytes.Equal(aBytes, bBytes)
}
