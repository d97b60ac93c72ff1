// Package buffer provides the flat byte store that holds the concatenation of
// all values of a variable-length column.
//
// The buffer performs no validation; value boundaries are tracked by the
// offsets package. Values is the growable form and FrozenValues the read-only
// form produced by Freeze.
package buffer

import (
	"fmt"

	"github.com/arloliu/varbin/errs"
)

const (
	// SmallBufferThreshold is the capacity below which the default growth policy doubles.
	SmallBufferThreshold = 1024 * 64 // 64KiB
	// MinGrowth is the smallest growth step of the default policy.
	MinGrowth = 64
)

// GrowthPolicy returns how many bytes to add to a buffer of capacity curCap that
// needs room for requiredBytes more bytes. Values never grows by less than
// requiredBytes regardless of the returned value.
type GrowthPolicy func(curCap int, requiredBytes int) int

// DefaultGrowth grows proportionally to the byte volume held by the buffer.
//
// The growth strategy is as follows:
//   - For small buffers (<64KiB), double the capacity (at least MinGrowth bytes).
//   - For larger buffers, grow by 25% of current capacity to balance memory usage and reallocation cost.
func DefaultGrowth(curCap int, requiredBytes int) int {
	growBy := max(curCap, MinGrowth)
	if curCap > SmallBufferThreshold {
		growBy = curCap / 4
	}

	return max(growBy, requiredBytes)
}

// ExactGrowth grows by exactly the number of bytes required.
func ExactGrowth(_ int, requiredBytes int) int {
	return requiredBytes
}

// Values is a growable byte buffer.
//
// The zero value is an empty buffer using DefaultGrowth.
// Values is not safe for concurrent mutation.
type Values struct {
	b      []byte
	growth GrowthPolicy
	frozen bool
}

// NewValues creates an empty buffer with the given capacity in bytes.
//
// Parameters:
//   - capacity: Initial capacity in bytes; zero allocates nothing
//   - policy: Growth policy; nil selects DefaultGrowth
//
// Returns:
//   - *Values: Empty buffer
func NewValues(capacity int, policy GrowthPolicy) *Values {
	v := &Values{growth: policy}
	if capacity > 0 {
		v.b = make([]byte, 0, capacity)
	}

	return v
}

// FromBytes takes ownership of b as the buffer content.
// The caller must not modify b afterwards.
func FromBytes(b []byte, policy GrowthPolicy) *Values {
	return &Values{b: b, growth: policy}
}

func (v *Values) mustBeOpen() {
	if v.frozen {
		panic(fmt.Errorf("%w: values", errs.ErrFrozen))
	}
}

// Bytes returns the buffer content.
//
// The returned slice is valid until the next mutation. Do not modify it.
func (v *Values) Bytes() []byte {
	v.mustBeOpen()
	return v.b
}

// Len returns the number of bytes in the buffer.
func (v *Values) Len() int {
	v.mustBeOpen()
	return len(v.b)
}

// Capacity returns the number of bytes the buffer can hold without reallocation.
func (v *Values) Capacity() int {
	v.mustBeOpen()
	return cap(v.b)
}

// SetGrowthPolicy replaces the growth policy; nil selects DefaultGrowth.
func (v *Values) SetGrowthPolicy(policy GrowthPolicy) {
	v.mustBeOpen()
	v.growth = policy
}

// Reserve ensures the buffer can hold requiredBytes more bytes without reallocating.
// If the buffer has sufficient capacity, Reserve does nothing.
func (v *Values) Reserve(requiredBytes int) {
	v.mustBeOpen()

	available := cap(v.b) - len(v.b)
	if requiredBytes <= 0 || available >= requiredBytes {
		return
	}

	policy := v.growth
	if policy == nil {
		policy = DefaultGrowth
	}

	// Ensure we grow enough for at least the required bytes
	growBy := max(policy(cap(v.b), requiredBytes), requiredBytes)

	newBuf := make([]byte, len(v.b), len(v.b)+growBy)
	copy(newBuf, v.b)
	v.b = newBuf
}

// PushSlice appends data to the buffer, growing it as needed.
func (v *Values) PushSlice(data []byte) {
	Push(v, data)
}

// PushString appends s to the buffer, growing it as needed.
func (v *Values) PushString(s string) {
	Push(v, s)
}

// Push appends a byte slice or string to the buffer, growing it as needed.
func Push[V ~[]byte | ~string](v *Values, data V) {
	v.Reserve(len(data))
	v.b = append(v.b, data...)
}

// Truncate keeps the first n bytes and discards the rest.
// It does nothing if n is greater than or equal to Len.
func (v *Values) Truncate(n int) {
	v.mustBeOpen()

	if n < 0 {
		n = 0
	}
	if n < len(v.b) {
		v.b = v.b[:n]
	}
}

// ShrinkToFit releases unused capacity so that Capacity equals Len.
func (v *Values) ShrinkToFit() {
	v.mustBeOpen()

	if cap(v.b) == len(v.b) {
		return
	}

	if len(v.b) == 0 {
		v.b = nil
		return
	}

	newBuf := make([]byte, len(v.b))
	copy(newBuf, v.b)
	v.b = newBuf
}

// Clone returns a deep copy of the buffer with exactly fitting capacity.
func (v *Values) Clone() *Values {
	v.mustBeOpen()

	var b []byte
	if len(v.b) > 0 {
		b = make([]byte, len(v.b))
		copy(b, v.b)
	}

	return &Values{b: b, growth: v.growth}
}

// Freeze converts the buffer into its read-only form.
//
// After Freeze the Values handle is no longer usable; any further call panics.
func (v *Values) Freeze() FrozenValues {
	v.mustBeOpen()

	f := FrozenValues{b: v.b}
	v.b = nil
	v.frozen = true

	return f
}

// FrozenValues is the read-only form of a value buffer.
// It is safe for concurrent reads.
type FrozenValues struct {
	b []byte
}

// Len returns the number of bytes in the buffer.
func (f FrozenValues) Len() int {
	return len(f.b)
}

// Bytes returns the buffer content. Do not modify the returned slice.
func (f FrozenValues) Bytes() []byte {
	return f.b
}

// Slice returns the bytes in [start, end). Do not modify the returned slice.
// Panics with ErrIndexOutOfRange if the indices are out of bounds.
func (f FrozenValues) Slice(start, end int) []byte {
	if start < 0 || end < start || end > len(f.b) {
		panic(fmt.Errorf("%w: slice [%d, %d) of %d bytes", errs.ErrIndexOutOfRange, start, end, len(f.b)))
	}

	return f.b[start:end:end]
}
