// Package errs defines the sentinel errors returned by varbin.
//
// Errors are wrapped with additional context using fmt.Errorf and the %w verb,
// so callers should match them with errors.Is:
//
//	m, err := array.TryNew[int32](format.TypeBinary, offsets, values)
//	if errors.Is(err, errs.ErrNonMonotonicOffsets) {
//	    // reject the malformed buffer
//	}
package errs

import "errors"

// Validation errors returned when constructing from externally supplied buffers.
var (
	// ErrNonMonotonicOffsets indicates that some offset is greater than the next one.
	ErrNonMonotonicOffsets = errors.New("offsets must be monotonically non-decreasing")
	// ErrOffsetsOutOfBounds indicates that an offset exceeds the value buffer length,
	// or that the first or last offset is wrong.
	ErrOffsetsOutOfBounds = errors.New("offsets out of bounds")
	// ErrTypeMismatch indicates that the data type is not a binary-like type or
	// does not match the offset width.
	ErrTypeMismatch = errors.New("data type mismatch")
	// ErrInvalidUTF8 indicates that a string-typed value is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8")
)

// Errors returned while building.
var (
	// ErrOffsetOverflow indicates that appending a value would overflow the offset type.
	ErrOffsetOverflow = errors.New("offset overflow")
	// ErrNegativeLength indicates that a negative value length was pushed.
	ErrNegativeLength = errors.New("negative value length")
	// ErrFrozen indicates that a mutable buffer was used after it was frozen.
	ErrFrozen = errors.New("buffer already frozen")
	// ErrIndexOutOfRange indicates an index or slice bound outside the array.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrReleased indicates that a shared array handle was used after Release.
	ErrReleased = errors.New("shared array already released")
)
