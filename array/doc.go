// Package array provides the growable binary/string column and its immutable forms.
//
// # Core Types
//
//   - MutableBinaryValues: growable column of variable-length values, built with
//     Push, TryPush, ExtendTrustedLen and TryExtend
//   - BinaryArray: immutable column with a single owner, produced by AsExclusive
//   - SharedBinaryArray: reference-counted handle to an immutable column, produced
//     by AsShared and duplicated with Clone
//
// The offset width is a type parameter: int32 columns use the Binary and Utf8
// data types, int64 columns use LargeBinary and LargeUtf8.
//
// # Building
//
// Build from scratch:
//
//	m, _ := array.WithCapacity[int32](2)
//	m.PushString("hello")
//	m.PushString("world")
//	arr := m.AsExclusive()
//	fmt.Println(arr.ValueString(1)) // world
//
// Validate buffers received from elsewhere:
//
//	m, err := array.TryNew[int32](format.TypeUtf8, []int32{0, 5, 10}, []byte("helloworld"))
//	if err != nil {
//	    return err // errs.ErrNonMonotonicOffsets, errs.ErrOffsetsOutOfBounds, ...
//	}
//
// # Checked and Trusted Extension
//
// TryExtend validates every item (UTF-8 for string columns, offset overflow) and
// rolls back on failure. ExtendTrustedLen panics on the same conditions, keeps the
// items pushed before the failing one, and uses the declared length of a SizedSeq
// to reserve capacity; the declared length is the caller's promise and is never
// verified. A wrong promise only costs extra
// reallocation, never correctness.
//
// # Freezing
//
// AsExclusive and AsShared consume the mutable column. Using it afterwards
// panics. The frozen arrays are read-only and safe for concurrent readers.
package array
