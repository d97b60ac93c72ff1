package offsets

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/arloliu/varbin/errs"
	"github.com/arloliu/varbin/format"
)

// Offset is the set of integer types usable as offsets.
type Offset interface {
	~int32 | ~int64
}

// Offsets is a growable, monotonically non-decreasing offsets sequence.
//
// The zero value is not usable; create one with New, WithCapacity or TryFrom.
// Offsets is not safe for concurrent mutation.
type Offsets[O Offset] struct {
	buf    []O
	frozen bool
}

// Width returns the offset width of O.
func Width[O Offset]() format.OffsetWidth {
	var o O
	if unsafe.Sizeof(o) == 4 {
		return format.OffsetNarrow
	}

	return format.OffsetWide
}

// MaxValue returns the largest offset representable by O.
func MaxValue[O Offset]() int64 {
	if Width[O]() == format.OffsetNarrow {
		return math.MaxInt32
	}

	return math.MaxInt64
}

// New creates an offsets sequence holding the single offset 0.
func New[O Offset]() *Offsets[O] {
	return &Offsets[O]{buf: []O{0}}
}

// WithCapacity creates an offsets sequence holding the single offset 0 with
// room for capacity values (capacity+1 offsets) without reallocation.
//
// Parameters:
//   - capacity: Number of values to reserve space for; negative values are treated as zero
//
// Returns:
//   - *Offsets[O]: Empty sequence with reserved capacity
func WithCapacity[O Offset](capacity int) *Offsets[O] {
	capacity = max(capacity, 0)
	buf := make([]O, 1, capacity+1)

	return &Offsets[O]{buf: buf}
}

// TryFrom validates values and takes ownership of it as an offsets sequence.
//
// The caller must not modify values after a successful call.
//
// Parameters:
//   - values: Raw offsets, one more than the number of values
//
// Returns:
//   - *Offsets[O]: Sequence backed by values
//   - error: ErrOffsetsOutOfBounds if values is empty or does not start at 0,
//     ErrNonMonotonicOffsets if some offset is greater than its successor
func TryFrom[O Offset](values []O) (*Offsets[O], error) {
	if err := Validate(values); err != nil {
		return nil, err
	}

	return &Offsets[O]{buf: values}, nil
}

// Validate checks that values is a well-formed offsets sequence.
func Validate[O Offset](values []O) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: offsets must contain at least one element", errs.ErrOffsetsOutOfBounds)
	}

	if values[0] != 0 {
		return fmt.Errorf("%w: first offset is %d, expected 0", errs.ErrOffsetsOutOfBounds, values[0])
	}

	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return fmt.Errorf("%w: offset[%d]=%d > offset[%d]=%d",
				errs.ErrNonMonotonicOffsets, i-1, values[i-1], i, values[i])
		}
	}

	return nil
}

func (o *Offsets[O]) mustBeOpen() {
	if o.frozen {
		panic(fmt.Errorf("%w: offsets", errs.ErrFrozen))
	}
}

// Len returns the number of values delimited by the sequence.
func (o *Offsets[O]) Len() int {
	o.mustBeOpen()
	return len(o.buf) - 1
}

// Last returns the last offset, which equals the total byte length of all values.
func (o *Offsets[O]) Last() O {
	o.mustBeOpen()
	return o.buf[len(o.buf)-1]
}

// Range returns the byte range [start, end) of value i.
// Panics if i is out of range.
func (o *Offsets[O]) Range(i int) (int, int) {
	o.mustBeOpen()
	return int(o.buf[i]), int(o.buf[i+1])
}

// Buffer returns the underlying offsets.
//
// The returned slice is valid until the next mutation. Do not modify it.
func (o *Offsets[O]) Buffer() []O {
	o.mustBeOpen()
	return o.buf
}

// Capacity returns the number of offsets the sequence can hold without reallocation.
func (o *Offsets[O]) Capacity() int {
	o.mustBeOpen()
	return cap(o.buf)
}

// Push appends a value of the given byte length, i.e. the offset last+length.
//
// Parameters:
//   - length: Byte length of the appended value
//
// Returns:
//   - error: ErrNegativeLength if length < 0, ErrOffsetOverflow if the new offset
//     does not fit into O. The sequence is left unchanged on error.
func (o *Offsets[O]) Push(length int) error {
	o.mustBeOpen()

	if length < 0 {
		return fmt.Errorf("%w: %d", errs.ErrNegativeLength, length)
	}

	last := int64(o.buf[len(o.buf)-1])
	if int64(length) > MaxValue[O]()-last {
		return fmt.Errorf("%w: %d + %d exceeds %d", errs.ErrOffsetOverflow, last, length, MaxValue[O]())
	}

	o.buf = append(o.buf, O(last+int64(length)))

	return nil
}

// Pop removes the last value and returns its byte length.
// Returns false if the sequence holds no values.
func (o *Offsets[O]) Pop() (int, bool) {
	o.mustBeOpen()

	n := len(o.buf)
	if n == 1 {
		return 0, false
	}

	length := int(o.buf[n-1] - o.buf[n-2])
	o.buf = o.buf[:n-1]

	return length, true
}

// Truncate keeps the first n values and discards the rest.
// It does nothing if n is greater than or equal to Len.
func (o *Offsets[O]) Truncate(n int) {
	o.mustBeOpen()

	if n < 0 {
		n = 0
	}
	if n+1 < len(o.buf) {
		o.buf = o.buf[:n+1]
	}
}

// Reserve ensures room for at least additional more values without reallocation.
func (o *Offsets[O]) Reserve(additional int) {
	o.mustBeOpen()

	if additional <= 0 || cap(o.buf)-len(o.buf) >= additional {
		return
	}

	newBuf := make([]O, len(o.buf), len(o.buf)+additional)
	copy(newBuf, o.buf)
	o.buf = newBuf
}

// ShrinkToFit releases unused capacity so that Capacity equals Len+1.
func (o *Offsets[O]) ShrinkToFit() {
	o.mustBeOpen()

	if cap(o.buf) == len(o.buf) {
		return
	}

	newBuf := make([]O, len(o.buf))
	copy(newBuf, o.buf)
	o.buf = newBuf
}

// Clone returns a deep copy of the sequence with exactly fitting capacity.
func (o *Offsets[O]) Clone() *Offsets[O] {
	o.mustBeOpen()

	buf := make([]O, len(o.buf))
	copy(buf, o.buf)

	return &Offsets[O]{buf: buf}
}

// Freeze converts the sequence into its read-only form.
//
// After Freeze the Offsets handle is no longer usable; any further call panics.
func (o *Offsets[O]) Freeze() Frozen[O] {
	o.mustBeOpen()

	f := Frozen[O]{buf: o.buf}
	o.buf = nil
	o.frozen = true

	return f
}
