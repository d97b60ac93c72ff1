package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Growth Policy Tests
// =============================================================================

func TestDefaultGrowth(t *testing.T) {
	tests := []struct {
		name     string
		curCap   int
		required int
		want     int
	}{
		{"empty buffer small push", 0, 3, MinGrowth},
		{"empty buffer large push", 0, 1000, 1000},
		{"small buffer doubles", 1024, 10, 1024},
		{"large buffer grows by quarter", 4 * SmallBufferThreshold, 10, SmallBufferThreshold},
		{"required wins", 4 * SmallBufferThreshold, 2 * SmallBufferThreshold, 2 * SmallBufferThreshold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultGrowth(tt.curCap, tt.required))
		})
	}
}

func TestExactGrowth(t *testing.T) {
	assert.Equal(t, 7, ExactGrowth(1024, 7))
}

// =============================================================================
// Values Tests
// =============================================================================

func TestNewValues(t *testing.T) {
	v := NewValues(0, nil)
	require.Equal(t, 0, v.Len())
	require.Equal(t, 0, v.Capacity())

	v = NewValues(128, nil)
	require.Equal(t, 0, v.Len())
	require.Equal(t, 128, v.Capacity())
}

func TestValues_ZeroValue(t *testing.T) {
	var v Values
	v.PushString("abc")
	require.Equal(t, []byte("abc"), v.Bytes())
}

func TestValues_Push(t *testing.T) {
	v := NewValues(0, nil)

	v.PushSlice([]byte("ab"))
	v.PushString("cd")
	v.PushSlice(nil)

	require.Equal(t, []byte("abcd"), v.Bytes())
	require.Equal(t, 4, v.Len())
	require.Equal(t, MinGrowth, v.Capacity(), "first growth uses the minimum step")
}

func TestValues_GrowthIsByteProportional(t *testing.T) {
	v := NewValues(0, ExactGrowth)
	for range 10 {
		v.PushString("x")
	}

	require.Equal(t, 10, v.Len())
	require.Equal(t, 10, v.Capacity())
}

func TestValues_SetGrowthPolicy(t *testing.T) {
	v := NewValues(0, nil)
	v.SetGrowthPolicy(ExactGrowth)
	v.PushString("abc")
	require.Equal(t, 3, v.Capacity())
}

func TestValues_Reserve(t *testing.T) {
	v := NewValues(0, ExactGrowth)
	v.PushString("abc")

	v.Reserve(10)
	require.Equal(t, 13, v.Capacity())
	require.Equal(t, []byte("abc"), v.Bytes())

	v.Reserve(5)
	require.Equal(t, 13, v.Capacity(), "sufficient capacity must not reallocate")
}

func TestValues_Truncate(t *testing.T) {
	v := FromBytes([]byte("abcdef"), nil)

	v.Truncate(10)
	require.Equal(t, 6, v.Len())

	v.Truncate(2)
	require.Equal(t, []byte("ab"), v.Bytes())

	v.Truncate(-3)
	require.Equal(t, 0, v.Len())
}

func TestValues_ShrinkToFit(t *testing.T) {
	v := NewValues(100, nil)
	v.PushString("abc")

	v.ShrinkToFit()
	require.Equal(t, 3, v.Capacity())
	require.Equal(t, []byte("abc"), v.Bytes())

	empty := NewValues(100, nil)
	empty.ShrinkToFit()
	require.Equal(t, 0, empty.Capacity())
}

func TestValues_Clone(t *testing.T) {
	v := NewValues(100, nil)
	v.PushString("abc")

	clone := v.Clone()
	clone.PushString("d")

	require.Equal(t, []byte("abc"), v.Bytes())
	require.Equal(t, []byte("abcd"), clone.Bytes())
	require.Equal(t, 0, NewValues(10, nil).Clone().Capacity())
}

// =============================================================================
// Freeze Tests
// =============================================================================

func TestValues_Freeze(t *testing.T) {
	v := NewValues(0, nil)
	v.PushString("hello")

	frozen := v.Freeze()
	require.Equal(t, 5, frozen.Len())
	require.Equal(t, []byte("hello"), frozen.Bytes())
	require.Equal(t, []byte("ell"), frozen.Slice(1, 4))

	require.PanicsWithError(t, "buffer already frozen: values", func() {
		v.PushString("x")
	})
}

func TestFrozenValues_SliceBounds(t *testing.T) {
	frozen := FromBytes([]byte("abc"), nil).Freeze()

	require.PanicsWithError(t, "index out of range: slice [2, 1) of 3 bytes", func() { frozen.Slice(2, 1) })
	require.PanicsWithError(t, "index out of range: slice [0, 4) of 3 bytes", func() { frozen.Slice(0, 4) })
	require.PanicsWithError(t, "index out of range: slice [-1, 1) of 3 bytes", func() { frozen.Slice(-1, 1) })

	s := frozen.Slice(0, 1)
	require.Equal(t, 1, cap(s), "slices of frozen values must not expose spare capacity")
}
