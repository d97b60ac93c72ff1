package array

import (
	"fmt"
	"iter"

	"github.com/arloliu/varbin/offsets"
)

// ExtendTrustedLen appends every item of items to m.
//
// Capacity for items.Len offsets is reserved up front and the items are then
// pushed as Push does. The offsets are not re-checked for monotonicity since each
// item only adds a non-negative length.
//
// The declared length is a caller obligation and is not cross-checked. If items
// yields fewer or more items than declared, the result is still correct and only
// the up-front reservation was too large or too small.
//
// Panics with ErrOffsetOverflow if the total byte length would exceed the range
// of O, and with ErrInvalidUTF8 if the container holds strings and an item is not
// valid UTF-8. The items appended before the failing one are kept.
func ExtendTrustedLen[O offsets.Offset, V Bytes](m *MutableBinaryValues[O], items SizedSeq[V]) {
	m.mustBeOpen()
	m.offsets.Reserve(items.Len)

	for item := range items.Seq {
		mustPush(m, item)
	}
}

// TryExtend appends every item of seq to m, validating each one as TryPush does.
//
// The extension is all or nothing: if an item is rejected, m is truncated back to
// its length before the call and the error names the index of the rejected item
// within seq.
func TryExtend[O offsets.Offset, V Bytes](m *MutableBinaryValues[O], seq iter.Seq[V]) error {
	m.mustBeOpen()

	n := m.offsets.Len()
	i := 0
	for item := range seq {
		if err := tryPush(m, item); err != nil {
			m.Truncate(n)
			return fmt.Errorf("item %d: %w", i, err)
		}
		i++
	}

	return nil
}

// FromTrustedLenIter builds a container from a sized sequence.
//
// It is equivalent to WithCapacity(items.Len, opts...) followed by
// ExtendTrustedLen, so the same caller obligation on items.Len applies.
//
// Returns:
//   - *MutableBinaryValues[O]: Container holding every item
//   - error: Configuration error from opts
func FromTrustedLenIter[O offsets.Offset, V Bytes](items SizedSeq[V], opts ...MutableOption) (*MutableBinaryValues[O], error) {
	m, err := WithCapacity[O](items.Len, opts...)
	if err != nil {
		return nil, err
	}

	ExtendTrustedLen(m, items)

	return m, nil
}

// FromIter builds a container from an unsized sequence, validating every item.
//
// Returns:
//   - *MutableBinaryValues[O]: Container holding every item
//   - error: Configuration error from opts, or the first validation error of TryExtend
func FromIter[O offsets.Offset, V Bytes](seq iter.Seq[V], opts ...MutableOption) (*MutableBinaryValues[O], error) {
	m, err := New[O](opts...)
	if err != nil {
		return nil, err
	}

	if err := TryExtend(m, seq); err != nil {
		return nil, err
	}

	return m, nil
}

// FromSlice builds a container holding the items of a slice, validating every item.
func FromSlice[O offsets.Offset, V Bytes](items []V, opts ...MutableOption) (*MutableBinaryValues[O], error) {
	m, err := WithCapacity[O](len(items), opts...)
	if err != nil {
		return nil, err
	}

	if err := TryExtend(m, SliceSeq(items).Seq); err != nil {
		return nil, err
	}

	return m, nil
}
