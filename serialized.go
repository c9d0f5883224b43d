// Copyright (c) 2023 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btckeys

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"iter"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// SerializedPublicKey is a serialized ECDSA public key.
//
// A serialized public key is either 33 or 65 bytes long depending on the
// format.  This type holds the bytes without heap allocation while providing
// an API similar to an immutable byte slice.  The format is not stored
// separately since the first byte already encodes it.
//
// The type is a bit large to copy around.  Prefer taking a slice with AsSlice
// or an iterator soon after obtaining it.
//
// Bytes past the logical length are always zero, so two values are == exactly
// when their logical bytes are equal and the type may be used as a map key.
type SerializedPublicKey struct {
	data [secp256k1.PubKeyBytesLenUncompressed]byte
}

// newSerializedPublicKey serializes the key according to format.
func newSerializedPublicKey(key PublicKey, format KeyFormat) SerializedPublicKey {
	var s SerializedPublicKey
	switch format {
	case FormatCompressed:
		key.putCompressed(s.data[:])
	case FormatUncompressed:
		key.putUncompressed(s.data[:])
	default:
		panic(fmt.Sprintf("invalid key format %d", format))
	}
	return s
}

// Len returns the number of serialized bytes, 33 or 65 depending on the
// format of the key.
func (s SerializedPublicKey) Len() int {
	// The first byte is 4 for uncompressed keys and 2 or 3 otherwise, so bit
	// 2 alone selects the length.  Shifting it by 3 gives 32 or 0.
	assertDiscriminant(s.data[0])
	return secp256k1.PubKeyBytesLenCompressed + int(s.data[0]&4)<<3
}

// AsSlice returns the serialized bytes.  The slice aliases s and is only valid
// as long as s is.  AsSlice has a pointer receiver, so the result of a call
// such as SerializeLegacy must be bound to a variable first.
func (s *SerializedPublicKey) AsSlice() []byte {
	return s.data[:s.Len()]
}

// At returns the byte at index i.  It panics if i is out of range.
func (s SerializedPublicKey) At(i int) byte {
	return s.data[:s.Len()][i]
}

// Format returns the format the key was serialized with.
func (s SerializedPublicKey) Format() KeyFormat {
	if s.data[0] == secp256k1.PubKeyFormatUncompressed {
		return FormatUncompressed
	}
	return FormatCompressed
}

// Equal returns true if both keys serialize to the same bytes.
func (s SerializedPublicKey) Equal(other SerializedPublicKey) bool {
	return bytes.Equal(s.data[:s.Len()], other.data[:other.Len()])
}

// Compare lexicographically compares the serialized bytes, returning -1, 0 or
// 1.
func (s SerializedPublicKey) Compare(other SerializedPublicKey) int {
	return bytes.Compare(s.data[:s.Len()], other.data[:other.Len()])
}

// All returns an iterator over the serialized bytes.
func (s SerializedPublicKey) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		it := s.IntoIter()
		for b, ok := it.Next(); ok; b, ok = it.Next() {
			if !yield(b) {
				return
			}
		}
	}
}

// IntoIter returns an owned iterator over the serialized bytes.
func (s SerializedPublicKey) IntoIter() IntoIter {
	return IntoIter{key: s}
}

// Bytes returns the serialized bytes in a newly allocated slice.
func (s SerializedPublicKey) Bytes() []byte {
	return bytes.Clone(s.data[:s.Len()])
}

// AppendTo appends the serialized bytes to dst and returns the extended
// slice.
func (s SerializedPublicKey) AppendTo(dst []byte) []byte {
	return append(dst, s.data[:s.Len()]...)
}

// String returns the serialized bytes hex encoded.
func (s SerializedPublicKey) String() string {
	return hex.EncodeToString(s.data[:s.Len()])
}

// IntoIter is an owned iterator over the bytes of a serialized public key.
//
// Once exhausted it stays exhausted.
type IntoIter struct {
	key SerializedPublicKey

	// pos <= key.Len() always holds.
	pos uint8
}

// Next returns the next byte.  The bool is false once the iterator is
// exhausted.
func (it *IntoIter) Next() (byte, bool) {
	if int(it.pos) >= it.key.Len() {
		return 0, false
	}
	b := it.key.data[it.pos]
	it.pos++
	return b, true
}

// Nth skips n bytes and returns the one after them, as if Next was called n+1
// times.  If fewer bytes remain the iterator is exhausted and the bool is
// false.
func (it *IntoIter) Nth(n int) (byte, bool) {
	if n < 0 || n >= it.Len() {
		it.pos = uint8(it.key.Len())
		return 0, false
	}
	it.pos += uint8(n)
	b := it.key.data[it.pos]
	it.pos++
	return b, true
}

// Last returns the final byte without advancing the iterator.  The bool is
// false if the iterator is exhausted.
func (it IntoIter) Last() (byte, bool) {
	n := it.key.Len()
	if int(it.pos) >= n {
		return 0, false
	}
	return it.key.data[n-1], true
}

// Len returns the number of remaining bytes.
func (it IntoIter) Len() int {
	return it.key.Len() - int(it.pos)
}

// Count returns the number of remaining bytes without producing them.
func (it IntoIter) Count() int {
	return it.Len()
}

// AsSlice returns the remaining bytes.  The slice aliases it.
func (it *IntoIter) AsSlice() []byte {
	return it.key.data[it.pos:it.key.Len()]
}
