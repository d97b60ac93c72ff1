// Package offsets provides the offsets sequence that delimits variable-length
// values inside a flat byte buffer.
//
// An offsets sequence of n values holds n+1 positions. Value i occupies the
// half-open byte range [O[i], O[i+1]). A well-formed sequence satisfies:
//   - O[0] == 0
//   - O[i] <= O[i+1] for every i
//
// The offset width is a type parameter: int32 for narrow offsets and int64 for
// wide offsets. Appending checks for overflow of the chosen width, so a narrow
// sequence can never silently wrap around.
//
// # Lifecycle
//
// Offsets is the mutable form. Freeze converts it into a read-only Frozen
// sequence; after that the Offsets handle must not be used again and any
// mutation panics.
//
//	offs := offsets.WithCapacity[int32](3)
//	_ = offs.Push(2) // [0 2]
//	_ = offs.Push(1) // [0 2 3]
//	frozen := offs.Freeze()
//	start, end := frozen.Range(1) // 2, 3
package offsets
