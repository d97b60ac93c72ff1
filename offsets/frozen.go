package offsets

import (
	"fmt"
	"iter"

	"github.com/arloliu/varbin/errs"
)

// Frozen is the read-only form of an offsets sequence.
//
// A Frozen sequence produced by Offsets.Freeze starts at 0. A sequence produced
// by Slice may start at any offset; value ranges are always absolute positions in
// the value buffer the sequence was built for.
//
// Frozen is a small value type and is safe for concurrent reads.
type Frozen[O Offset] struct {
	buf []O
}

// Len returns the number of values delimited by the sequence.
func (f Frozen[O]) Len() int {
	if len(f.buf) == 0 {
		return 0
	}

	return len(f.buf) - 1
}

// First returns the first offset.
func (f Frozen[O]) First() O {
	if len(f.buf) == 0 {
		return 0
	}

	return f.buf[0]
}

// Last returns the last offset.
func (f Frozen[O]) Last() O {
	if len(f.buf) == 0 {
		return 0
	}

	return f.buf[len(f.buf)-1]
}

// ByteLen returns the number of value bytes covered by the sequence.
func (f Frozen[O]) ByteLen() int {
	return int(f.Last() - f.First())
}

// Range returns the byte range [start, end) of value i.
// Panics if i is out of range.
func (f Frozen[O]) Range(i int) (int, int) {
	return int(f.buf[i]), int(f.buf[i+1])
}

// Buffer returns the underlying offsets. Do not modify the returned slice.
func (f Frozen[O]) Buffer() []O {
	return f.buf
}

// Lengths returns an iterator over the byte length of every value.
func (f Frozen[O]) Lengths() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 1; i < len(f.buf); i++ {
			if !yield(int(f.buf[i] - f.buf[i-1])) {
				return
			}
		}
	}
}

// Slice returns the sub-sequence describing length values starting at value offset.
// No data is copied.
//
// Returns:
//   - Frozen[O]: Sub-sequence of length+1 offsets
//   - error: ErrIndexOutOfRange if the requested window is outside the sequence
func (f Frozen[O]) Slice(offset, length int) (Frozen[O], error) {
	if offset < 0 || length < 0 || offset+length > f.Len() {
		return Frozen[O]{}, fmt.Errorf("%w: slice [%d, %d) of %d values",
			errs.ErrIndexOutOfRange, offset, offset+length, f.Len())
	}

	return Frozen[O]{buf: f.buf[offset : offset+length+1]}, nil
}

// Equal reports whether both sequences describe the same value lengths.
//
// Sequences are compared relative to their first offset, so a sliced sequence
// equals a freshly built one with the same value boundaries.
func (f Frozen[O]) Equal(other Frozen[O]) bool {
	if f.Len() != other.Len() {
		return false
	}
	if f.Len() == 0 {
		return true
	}

	base, otherBase := f.First(), other.First()
	for i := range f.buf {
		if f.buf[i]-base != other.buf[i]-otherBase {
			return false
		}
	}

	return true
}
