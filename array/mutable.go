package array

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/varbin/buffer"
	"github.com/arloliu/varbin/errs"
	"github.com/arloliu/varbin/format"
	"github.com/arloliu/varbin/offsets"
)

// MutableBinaryValues is a growable column of variable-length byte or string values.
//
// It owns an offsets sequence and a values buffer and keeps them in lockstep:
// after every public method returns, the offsets start at 0, never decrease and
// end at the length of the values buffer. The capacities of both buffers are
// independent.
//
// The offset width O is fixed at compile time; the data type carries the same
// width as a runtime marker and must agree with O.
//
// A MutableBinaryValues has a single owner and is not safe for concurrent use.
// AsExclusive and AsShared consume it: afterwards every method panics.
type MutableBinaryValues[O offsets.Offset] struct {
	dataType format.DataType
	offsets  *offsets.Offsets[O]
	values   *buffer.Values
	frozen   bool
}

// New creates an empty container.
//
// Parameters:
//   - opts: Optional configuration (data type, values capacity, growth policy)
//
// Returns:
//   - *MutableBinaryValues[O]: Empty container
//   - error: Configuration error, or ErrTypeMismatch if the data type does not match O
func New[O offsets.Offset](opts ...MutableOption) (*MutableBinaryValues[O], error) {
	return WithCapacity[O](0, opts...)
}

// WithCapacity creates an empty container with room for capacity values.
//
// Only the offsets are reserved (capacity+1 entries). The values buffer starts
// without capacity unless WithValuesCapacity is given, since the number of
// values says nothing about their byte volume.
//
// Parameters:
//   - capacity: Number of values to reserve offsets for
//   - opts: Optional configuration (data type, values capacity, growth policy)
//
// Returns:
//   - *MutableBinaryValues[O]: Empty container
//   - error: Configuration error, or ErrTypeMismatch if the data type does not match O
func WithCapacity[O offsets.Offset](capacity int, opts ...MutableOption) (*MutableBinaryValues[O], error) {
	cfg, err := newMutableConfig(opts...)
	if err != nil {
		return nil, err
	}

	dt, err := resolveDataType[O](cfg)
	if err != nil {
		return nil, err
	}

	return &MutableBinaryValues[O]{
		dataType: dt,
		offsets:  offsets.WithCapacity[O](capacity),
		values:   buffer.NewValues(cfg.valuesCapacity, cfg.growth),
	}, nil
}

// TryNew validates externally supplied buffers and builds a container from them.
//
// The checks run in this order:
//  1. offsets start at 0 and never decrease (ErrNonMonotonicOffsets; an empty
//     sequence or a non-zero first offset is ErrOffsetsOutOfBounds)
//  2. the last offset equals len(values) (ErrOffsetsOutOfBounds)
//  3. dt is a binary or string type with the width of O (ErrTypeMismatch)
//  4. for string types, every value is valid UTF-8 (ErrInvalidUTF8)
//
// On success the container takes ownership of offs and values; the caller must
// not modify them afterwards.
//
// Parameters:
//   - dt: Data type of the column
//   - offs: Offsets, one more than the number of values
//   - values: Concatenated value bytes
//   - opts: Optional configuration; WithDataType is ignored in favour of dt
//
// Returns:
//   - *MutableBinaryValues[O]: Container backed by offs and values
//   - error: One of the validation errors above, or a configuration error
func TryNew[O offsets.Offset](dt format.DataType, offs []O, values []byte, opts ...MutableOption) (*MutableBinaryValues[O], error) {
	o, err := offsets.TryFrom(offs)
	if err != nil {
		return nil, err
	}

	if last := int64(o.Last()); last != int64(len(values)) {
		return nil, fmt.Errorf("%w: last offset %d does not match values length %d",
			errs.ErrOffsetsOutOfBounds, last, len(values))
	}

	if err := checkDataType[O](dt); err != nil {
		return nil, err
	}

	if dt.IsString() {
		if err := validateUTF8(o, values); err != nil {
			return nil, err
		}
	}

	cfg, err := newMutableConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &MutableBinaryValues[O]{
		dataType: dt,
		offsets:  o,
		values:   buffer.FromBytes(values, cfg.growth),
	}, nil
}

func resolveDataType[O offsets.Offset](cfg *MutableConfig) (format.DataType, error) {
	width := offsets.Width[O]()
	if !cfg.hasDataType {
		if cfg.strings {
			return format.StringType(width), nil
		}

		return format.BinaryType(width), nil
	}

	if err := checkDataType[O](cfg.dataType); err != nil {
		return 0, err
	}

	return cfg.dataType, nil
}

func checkDataType[O offsets.Offset](dt format.DataType) error {
	if !dt.IsBinaryLike() {
		return fmt.Errorf("%w: %s is not a binary or string type", errs.ErrTypeMismatch, dt)
	}

	if want := offsets.Width[O](); dt.OffsetWidth() != want {
		return fmt.Errorf("%w: %s requires %d-byte offsets, container uses %d-byte offsets",
			errs.ErrTypeMismatch, dt, dt.OffsetWidth(), want)
	}

	return nil
}

func validateUTF8[O offsets.Offset](o *offsets.Offsets[O], values []byte) error {
	for i := range o.Len() {
		start, end := o.Range(i)
		if !utf8.Valid(values[start:end]) {
			return fmt.Errorf("%w: value %d", errs.ErrInvalidUTF8, i)
		}
	}

	return nil
}

func validUTF8[V Bytes](v V) bool {
	switch b := any(v).(type) {
	case []byte:
		return utf8.Valid(b)
	case string:
		return utf8.ValidString(b)
	default:
		return utf8.ValidString(string(v))
	}
}

func (m *MutableBinaryValues[O]) mustBeOpen() {
	if m.frozen {
		panic(fmt.Errorf("%w: mutable binary values", errs.ErrFrozen))
	}
}

// DataType returns the data type of the container.
func (m *MutableBinaryValues[O]) DataType() format.DataType {
	m.mustBeOpen()
	return m.dataType
}

// Len returns the number of values.
func (m *MutableBinaryValues[O]) Len() int {
	m.mustBeOpen()
	return m.offsets.Len()
}

// IsEmpty reports whether the container holds no values.
func (m *MutableBinaryValues[O]) IsEmpty() bool {
	return m.Len() == 0
}

// Value returns value i.
//
// The returned slice aliases the values buffer and is valid until the next
// mutation. Do not modify it. Panics if i is out of range.
func (m *MutableBinaryValues[O]) Value(i int) []byte {
	m.mustBeOpen()

	if i < 0 || i >= m.offsets.Len() {
		panic(fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfRange, i, m.offsets.Len()))
	}

	start, end := m.offsets.Range(i)

	return m.values.Bytes()[start:end:end]
}

// Offsets returns the offsets buffer. Do not modify the returned slice.
func (m *MutableBinaryValues[O]) Offsets() []O {
	m.mustBeOpen()
	return m.offsets.Buffer()
}

// Values returns the values buffer. Do not modify the returned slice.
func (m *MutableBinaryValues[O]) Values() []byte {
	m.mustBeOpen()
	return m.values.Bytes()
}

// Capacity returns the capacity of the offsets buffer (in offsets) and of the
// values buffer (in bytes).
func (m *MutableBinaryValues[O]) Capacity() (int, int) {
	m.mustBeOpen()
	return m.offsets.Capacity(), m.values.Capacity()
}

// Reserve ensures room for additional more values holding additionalBytes more bytes.
func (m *MutableBinaryValues[O]) Reserve(additional int, additionalBytes int) {
	m.mustBeOpen()
	m.offsets.Reserve(additional)
	m.values.Reserve(additionalBytes)
}

// ShrinkToFit trims the capacity of both buffers to their lengths.
func (m *MutableBinaryValues[O]) ShrinkToFit() {
	m.mustBeOpen()
	m.offsets.ShrinkToFit()
	m.values.ShrinkToFit()
}

// Push appends a value.
//
// Push panics with ErrInvalidUTF8 if the container holds strings and value is not
// valid UTF-8, and with ErrOffsetOverflow if the total byte length would exceed the
// range of O. The container is left unchanged when Push panics. Use TryPush to get
// these conditions back as errors.
func (m *MutableBinaryValues[O]) Push(value []byte) {
	m.mustBeOpen()
	mustPush(m, value)
}

// PushString appends a string value. See Push.
func (m *MutableBinaryValues[O]) PushString(value string) {
	m.mustBeOpen()
	mustPush(m, value)
}

// TryPush appends a value after validating it.
//
// Returns:
//   - error: ErrInvalidUTF8 if the container holds strings and value is not valid
//     UTF-8, ErrOffsetOverflow if the total byte length would exceed the range of O.
//     The container is left unchanged on error.
func (m *MutableBinaryValues[O]) TryPush(value []byte) error {
	m.mustBeOpen()
	return tryPush(m, value)
}

// TryPushString appends a string value after validating it. See TryPush.
func (m *MutableBinaryValues[O]) TryPushString(value string) error {
	m.mustBeOpen()
	return tryPush(m, value)
}

func mustPush[O offsets.Offset, V Bytes](m *MutableBinaryValues[O], value V) {
	if m.dataType.IsString() && !validUTF8(value) {
		panic(fmt.Errorf("%w: value %d", errs.ErrInvalidUTF8, m.offsets.Len()))
	}
	if err := m.offsets.Push(len(value)); err != nil {
		panic(err)
	}
	buffer.Push(m.values, value)
}

func tryPush[O offsets.Offset, V Bytes](m *MutableBinaryValues[O], value V) error {
	if m.dataType.IsString() && !validUTF8(value) {
		return fmt.Errorf("%w: value %d", errs.ErrInvalidUTF8, m.offsets.Len())
	}

	if err := m.offsets.Push(len(value)); err != nil {
		return err
	}
	buffer.Push(m.values, value)

	return nil
}

// Pop removes the last value and returns a copy of it.
// Returns false if the container is empty.
func (m *MutableBinaryValues[O]) Pop() ([]byte, bool) {
	m.mustBeOpen()

	length, ok := m.offsets.Pop()
	if !ok {
		return nil, false
	}

	end := m.values.Len()
	start := end - length
	value := make([]byte, length)
	copy(value, m.values.Bytes()[start:end])
	m.values.Truncate(start)

	return value, true
}

// Truncate keeps the first n values and discards the rest.
// It does nothing if n is greater than or equal to Len.
func (m *MutableBinaryValues[O]) Truncate(n int) {
	m.mustBeOpen()

	if n < 0 {
		n = 0
	}
	if n >= m.offsets.Len() {
		return
	}

	start, _ := m.offsets.Range(n)
	m.offsets.Truncate(n)
	m.values.Truncate(start)
}

// Iter returns an exactly sized sequence over the values present when Iter is called.
//
// The yielded slices alias the values buffer. Appending to the container while
// iterating is allowed, which makes it possible to extend a container with its
// own contents; the appended values are not visited.
func (m *MutableBinaryValues[O]) Iter() SizedSeq[[]byte] {
	m.mustBeOpen()

	n := m.offsets.Len()

	return Exactly(n, func(yield func([]byte) bool) {
		for i := range n {
			start, end := m.offsets.Range(i)
			if !yield(m.values.Bytes()[start:end:end]) {
				return
			}
		}
	})
}

// Clone returns a deep copy of the container with exactly fitting capacities.
func (m *MutableBinaryValues[O]) Clone() *MutableBinaryValues[O] {
	m.mustBeOpen()

	return &MutableBinaryValues[O]{
		dataType: m.dataType,
		offsets:  m.offsets.Clone(),
		values:   m.values.Clone(),
	}
}

// IntoParts consumes the container and returns its data type, offsets and values.
func (m *MutableBinaryValues[O]) IntoParts() (format.DataType, []O, []byte) {
	m.mustBeOpen()

	offs := m.offsets.Freeze()
	values := m.values.Freeze()
	m.frozen = true

	return m.dataType, offs.Buffer(), values.Bytes()
}

// AsExclusive consumes the container and returns an exclusively owned
// immutable array. The container must not be used afterwards.
func (m *MutableBinaryValues[O]) AsExclusive() *BinaryArray[O] {
	m.mustBeOpen()

	arr := &BinaryArray[O]{
		dataType: m.dataType,
		offsets:  m.offsets.Freeze(),
		values:   m.values.Freeze(),
	}
	m.frozen = true

	return arr
}

// AsShared consumes the container and returns a reference-counted immutable
// array with a reference count of one. Further handles are created with
// SharedBinaryArray.Clone. The container must not be used afterwards.
func (m *MutableBinaryValues[O]) AsShared() *SharedBinaryArray[O] {
	return newShared(m.AsExclusive())
}
