// Package varbin provides a growable, offset-indexed columnar container for
// variable-length byte and string values.
//
// Values are stored back to back in a single byte buffer and delimited by an
// offsets sequence, the layout used by columnar formats for binary and string
// columns. A column is built incrementally, then frozen into an immutable array
// that can be owned exclusively or shared through reference counting.
//
// # Core Features
//
//   - Narrow (int32) and wide (int64) offsets selected at compile time
//   - Validation of externally supplied offsets and values with typed errors
//   - Checked (per-item) and trusted-length (bulk) extension
//   - Byte-proportional, tunable growth of the values buffer
//   - Exclusive and reference-counted immutable arrays
//   - xxHash64 content fingerprints for cheap equality checks
//
// # Basic Usage
//
// Building a string column:
//
//	import "github.com/arloliu/varbin"
//
//	col, _ := varbin.NewStrings(2)
//	col.PushString("cpu.usage")
//	col.PushString("memory.usage")
//	arr := col.AsExclusive()
//	fmt.Println(arr.ValueString(0)) // cpu.usage
//
// Validating buffers received from elsewhere:
//
//	col, err := varbin.FromBuffers(format.TypeUtf8, offsets, values)
//	if errors.Is(err, errs.ErrInvalidUTF8) {
//	    // reject the input
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the array package,
// simplifying the most common use cases. For advanced usage and fine-grained
// control, use the array, offsets and buffer packages directly.
package varbin

import (
	"github.com/arloliu/varbin/array"
	"github.com/arloliu/varbin/format"
)

// Binary is a growable raw binary column with 32-bit offsets.
type Binary = array.MutableBinaryValues[int32]

// LargeBinary is a growable raw binary or string column with 64-bit offsets.
type LargeBinary = array.MutableBinaryValues[int64]

// NewBinary creates an empty Binary column with room for capacity values.
//
// Parameters:
//   - capacity: Number of values to reserve offsets for
//
// Returns:
//   - *Binary: Empty column of type format.TypeBinary
//   - error: Always nil with the default options
func NewBinary(capacity int) (*Binary, error) {
	return array.WithCapacity[int32](capacity)
}

// NewStrings creates an empty UTF-8 string column with 32-bit offsets.
func NewStrings(capacity int) (*Binary, error) {
	return array.WithCapacity[int32](capacity, array.WithStrings())
}

// NewLargeBinary creates an empty raw binary column with 64-bit offsets.
//
// Use the wide variant when the total byte volume of a column may exceed 2GiB.
func NewLargeBinary(capacity int) (*LargeBinary, error) {
	return array.WithCapacity[int64](capacity)
}

// NewLargeStrings creates an empty UTF-8 string column with 64-bit offsets.
func NewLargeStrings(capacity int) (*LargeBinary, error) {
	return array.WithCapacity[int64](capacity, array.WithStrings())
}

// FromBuffers validates a 32-bit offsets buffer and a values buffer and wraps them
// in a column without copying. See array.TryNew for the checks performed.
func FromBuffers(dt format.DataType, offsets []int32, values []byte) (*Binary, error) {
	return array.TryNew(dt, offsets, values)
}

// FromLargeBuffers is the 64-bit offsets variant of FromBuffers.
func FromLargeBuffers(dt format.DataType, offsets []int64, values []byte) (*LargeBinary, error) {
	return array.TryNew(dt, offsets, values)
}

// Strings builds a frozen UTF-8 string array from a slice of strings.
//
// Returns:
//   - *array.BinaryArray[int32]: Exclusively owned array holding values
//   - error: errs.ErrInvalidUTF8 if a value is not valid UTF-8
func Strings(values []string) (*array.BinaryArray[int32], error) {
	col, err := array.FromSlice[int32](values, array.WithStrings())
	if err != nil {
		return nil, err
	}

	return col.AsExclusive(), nil
}
