package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ValueHasher computes the xxHash64 fingerprint of a sequence of variable-length values.
//
// Every value is hashed as its little-endian uint64 length followed by its bytes,
// so the fingerprint depends only on the value boundaries and content, never on
// buffer capacities or on where the values are stored.
type ValueHasher struct {
	digest *xxhash.Digest
	count  uint64
	lenBuf [8]byte
}

// NewValueHasher creates a hasher with an empty value sequence.
func NewValueHasher() *ValueHasher {
	return &ValueHasher{digest: xxhash.New()}
}

// WriteValue adds a value to the fingerprint.
func (h *ValueHasher) WriteValue(value []byte) {
	binary.LittleEndian.PutUint64(h.lenBuf[:], uint64(len(value)))
	_, _ = h.digest.Write(h.lenBuf[:])
	_, _ = h.digest.Write(value)
	h.count++
}

// Sum64 returns the fingerprint of all values written so far.
// The value count is mixed in so that the empty sequence has a distinct fingerprint.
func (h *ValueHasher) Sum64() uint64 {
	binary.LittleEndian.PutUint64(h.lenBuf[:], h.count)
	sum := xxhash.New()
	_, _ = sum.Write(h.lenBuf[:])
	binary.LittleEndian.PutUint64(h.lenBuf[:], h.digest.Sum64())
	_, _ = sum.Write(h.lenBuf[:])

	return sum.Sum64()
}
