package array

import (
	"sync/atomic"

	"github.com/arloliu/varbin/errs"
	"github.com/arloliu/varbin/offsets"
)

type sharedState[O offsets.Offset] struct {
	arr  atomic.Pointer[BinaryArray[O]]
	refs atomic.Int64
}

// SharedBinaryArray is a reference-counted handle to an immutable BinaryArray.
//
// Clone creates another handle to the same data by incrementing the reference
// count; no data is copied. Each handle is released exactly once with Release.
// When the last handle is released the buffers are dropped.
//
// The underlying array is immutable, so handles can be read concurrently without
// locking. A single handle must not be released concurrently with its own use.
type SharedBinaryArray[O offsets.Offset] struct {
	state    *sharedState[O]
	released atomic.Bool
}

func newShared[O offsets.Offset](arr *BinaryArray[O]) *SharedBinaryArray[O] {
	state := &sharedState[O]{}
	state.arr.Store(arr)
	state.refs.Store(1)

	return &SharedBinaryArray[O]{state: state}
}

func (s *SharedBinaryArray[O]) mustBeLive() *BinaryArray[O] {
	if s.released.Load() {
		panic(errs.ErrReleased)
	}

	return s.state.arr.Load()
}

// Array returns the shared immutable array.
// Panics if the handle was released.
func (s *SharedBinaryArray[O]) Array() *BinaryArray[O] {
	return s.mustBeLive()
}

// Clone returns a new handle to the same array and increments the reference count.
// Panics if the handle was released.
func (s *SharedBinaryArray[O]) Clone() *SharedBinaryArray[O] {
	s.mustBeLive()
	s.state.refs.Add(1)

	return &SharedBinaryArray[O]{state: s.state}
}

// Release gives up this handle and decrements the reference count.
//
// Releasing a handle more than once has no effect.
//
// Returns:
//   - bool: true if this was the last handle and the buffers were dropped
func (s *SharedBinaryArray[O]) Release() bool {
	if s.released.Swap(true) {
		return false
	}

	if s.state.refs.Add(-1) == 0 {
		s.state.arr.Store(nil)
		return true
	}

	return false
}

// RefCount returns the number of live handles sharing the array.
func (s *SharedBinaryArray[O]) RefCount() int64 {
	return s.state.refs.Load()
}

// Len returns the number of values. Panics if the handle was released.
func (s *SharedBinaryArray[O]) Len() int {
	return s.mustBeLive().Len()
}

// Value returns value i. Panics if i is out of range or the handle was released.
func (s *SharedBinaryArray[O]) Value(i int) []byte {
	return s.mustBeLive().Value(i)
}

// ValueAt returns value i, or (nil, false) if i is out of range.
// Panics if the handle was released.
func (s *SharedBinaryArray[O]) ValueAt(i int) ([]byte, bool) {
	return s.mustBeLive().ValueAt(i)
}

// Equal reports whether both handles refer to structurally equal arrays.
func (s *SharedBinaryArray[O]) Equal(other *SharedBinaryArray[O]) bool {
	return Equal(s.mustBeLive(), other.mustBeLive())
}
