package array

import (
	"iter"
	"slices"
)

// Bytes is the set of byte-slice-like value types accepted when appending.
type Bytes interface {
	~[]byte | ~string
}

// SizedSeq is an iterator together with a declared number of items.
//
// When Exact is true the producer promises that Seq yields exactly Len items.
// When Exact is false, Len is only a lower bound. The promise is used to
// reserve capacity and is never verified; see ExtendTrustedLen.
type SizedSeq[V any] struct {
	Seq   iter.Seq[V]
	Len   int
	Exact bool
}

// Exactly wraps seq, declaring that it yields exactly n items.
func Exactly[V any](n int, seq iter.Seq[V]) SizedSeq[V] {
	return SizedSeq[V]{Seq: seq, Len: n, Exact: true}
}

// AtLeast wraps seq, declaring that it yields at least n items.
func AtLeast[V any](n int, seq iter.Seq[V]) SizedSeq[V] {
	return SizedSeq[V]{Seq: seq, Len: n}
}

// SliceSeq returns an exactly sized sequence over the items of a slice.
func SliceSeq[V any](items []V) SizedSeq[V] {
	return Exactly(len(items), slices.Values(items))
}
