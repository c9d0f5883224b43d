// Copyright (c) 2023 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btckeys

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// LegacyPublicKey is a public key that may be serialized as uncompressed, used
// in legacy addresses only.
type LegacyPublicKey = Legacy[PublicKey]

// CompressedPublicKey is a public key that is always serialized as
// compressed.
type CompressedPublicKey = Compressed[PublicKey]

// LegacyPrivateKey is a private key whose public key may be serialized as
// uncompressed, used in legacy addresses only.
type LegacyPrivateKey = Legacy[PrivateKey]

// CompressedPrivateKey is a private key whose public key is always serialized
// as compressed.
type CompressedPrivateKey = Compressed[PrivateKey]

// LegacyKeyPair is a key pair whose public key may be serialized as
// uncompressed, used in legacy addresses only.
type LegacyKeyPair = Legacy[KeyPair]

// CompressedKeyPair is a key pair whose public key is always serialized as
// compressed.
type CompressedKeyPair = Compressed[KeyPair]

// Legacy contains a key whose public key may be serialized as uncompressed.
//
// Old Bitcoin addresses may have used an uncompressed public key.  This is
// discouraged in new software, but it may be required to recover old coins.
// The format decides the address, so a key with the wrong format can not spend
// from the expected address.
//
// Legacy values are comparable with ==, which takes the format into account:
// the same key with different formats is not equal because it derives a
// different address.  Use EqualKey to ignore the format.
type Legacy[K Key] struct {
	key    K
	format KeyFormat
}

// NewLegacy wraps a raw key together with its format.  Only FormatCompressed
// and FormatUncompressed are valid formats; serializing a key with any other
// value panics.
//
// WARNING: make sure to supply the correct format.  An incorrect format leads
// to a different address, making spending difficult or even impossible for
// non-technical people.
func NewLegacy[K Key](key K, format KeyFormat) Legacy[K] {
	return Legacy[K]{key: key, format: format}
}

// Format returns the serialization format of the key.
func (l Legacy[K]) Format() KeyFormat {
	return l.format
}

// RawKey returns the underlying raw key.
func (l Legacy[K]) RawKey() K {
	return l.key
}

// ForceSetFormat overrides the format.
//
// DANGER: this changes the address derived from the key.  Improper use can
// make it hard or impossible to spend from the address.  Only use it when the
// new format is known to be correct, for example in recovery tools.  Values
// other than FormatCompressed and FormatUncompressed are ignored.
func (l *Legacy[K]) ForceSetFormat(format KeyFormat) {
	if !format.isValid() {
		log.Warnf("Ignoring invalid key format %d", uint8(format))
		return
	}
	if l.format != format {
		log.Debugf("Forcing key format from %v to %v", l.format, format)
	}
	l.format = format
}

// ForceToCompressed converts the key to Compressed regardless of its format.
//
// DANGER: if the key is uncompressed this changes the address derived from
// it.  Only use it when compression is known to be correct, for example in
// recovery tools.  ToCompressed is the checked conversion.
func (l Legacy[K]) ForceToCompressed() Compressed[K] {
	if l.format != FormatCompressed {
		log.Debugf("Forcing %v key to compressed", l.format)
	}
	return Compressed[K]{key: l.key}
}

// ToCompressed converts the key to Compressed.  An error of kind
// ErrKeyNotCompressed is returned when the key is uncompressed.
func (l Legacy[K]) ToCompressed() (Compressed[K], error) {
	if l.format != FormatCompressed {
		return Compressed[K]{}, makeError(ErrKeyNotCompressed,
			"the key is not compressed")
	}
	return Compressed[K]{key: l.key}, nil
}

// EqualKey returns true if the keys are equal regardless of the format.
func (l Legacy[K]) EqualKey(other Legacy[K]) bool {
	return l.key == other.key
}

// Compressed contains a key whose public key is guaranteed to be serialized as
// compressed.
//
// Such keys are used in P2SH and SegWit v0 addresses.  Being compressed is a
// property of the type, which statically rules out failures such as building
// a SegWit v0 address from an uncompressed key.
type Compressed[K Key] struct {
	key K
}

// NewCompressed wraps a raw key.
func NewCompressed[K Key](key K) Compressed[K] {
	return Compressed[K]{key: key}
}

// RawKey returns the underlying raw key.
func (c Compressed[K]) RawKey() K {
	return c.key
}

// ToLegacy converts the key to a Legacy key with the compressed format.  This
// never fails.
func (c Compressed[K]) ToLegacy() Legacy[K] {
	return Legacy[K]{key: c.key, format: FormatCompressed}
}

// SerializeLegacy serializes the public key according to the format of the
// key.
//
// This is generally not presented to the user but used to build Bitcoin
// scripts:
//
//	pub := SerializeLegacy(key)
//	script = append(script, pub.AsSlice()...)
//
// It panics if the key carries a format other than FormatCompressed or
// FormatUncompressed.
func SerializeLegacy[K HasPublicKey](l Legacy[K]) SerializedPublicKey {
	return newSerializedPublicKey(l.key.publicKey(), l.format)
}

// SerializeCompressed serializes the public key in the 33-byte compressed
// format.
func SerializeCompressed[K HasPublicKey](c Compressed[K]) [secp256k1.PubKeyBytesLenCompressed]byte {
	return c.key.publicKey().SerializeCompressed()
}

// ComputeLegacyPublicKey computes the public key of a private key, keeping the
// format.  Key pairs return their known public half.
func ComputeLegacyPublicKey[K HasPrivateKey](l Legacy[K]) LegacyPublicKey {
	return Legacy[PublicKey]{key: l.key.computePublicKey(), format: l.format}
}

// ComputeCompressedPublicKey computes the public key of a private key.  Key
// pairs return their known public half.
func ComputeCompressedPublicKey[K HasPrivateKey](c Compressed[K]) CompressedPublicKey {
	return Compressed[PublicKey]{key: c.key.computePublicKey()}
}

// LegacyPublic drops everything but the public key, keeping the format.
func LegacyPublic[K HasPublicKey](l Legacy[K]) LegacyPublicKey {
	return Legacy[PublicKey]{key: l.key.publicKey(), format: l.format}
}

// LegacyPrivate drops everything but the private key, keeping the format.
func LegacyPrivate[K HasPrivateKey](l Legacy[K]) LegacyPrivateKey {
	return Legacy[PrivateKey]{key: l.key.privateKey(), format: l.format}
}

// CompressedPublic drops everything but the public key.
func CompressedPublic[K HasPublicKey](c Compressed[K]) CompressedPublicKey {
	return Compressed[PublicKey]{key: c.key.publicKey()}
}

// CompressedPrivate drops everything but the private key.
func CompressedPrivate[K HasPrivateKey](c Compressed[K]) CompressedPrivateKey {
	return Compressed[PrivateKey]{key: c.key.privateKey()}
}

// ParseLegacyPublicKey parses a compressed or uncompressed public key and
// records the format it was serialized with.  Hybrid encodings are rejected
// with ErrPubKeyHybrid since they derive addresses no KeyFormat can
// reproduce.  Other parse errors are returned unchanged.
func ParseLegacyPublicKey(serialized []byte) (LegacyPublicKey, error) {
	if len(serialized) == secp256k1.PubKeyBytesLenUncompressed &&
		serialized[0] != secp256k1.PubKeyFormatUncompressed {

		switch serialized[0] {
		case secp256k1.PubKeyFormatHybridEven, secp256k1.PubKeyFormatHybridOdd:
			str := fmt.Sprintf("unsupported public key format: hybrid "+
				"(%#02x)", serialized[0])
			return LegacyPublicKey{}, makeError(ErrPubKeyHybrid, str)
		}
	}

	key, err := ParsePublicKey(serialized)
	if err != nil {
		return LegacyPublicKey{}, err
	}

	format := FormatCompressed
	if len(serialized) == secp256k1.PubKeyBytesLenUncompressed {
		format = FormatUncompressed
	}
	return NewLegacy(key, format), nil
}

// ParseCompressedPublicKey parses a 33-byte compressed public key.  An
// uncompressed key fails with ErrKeyNotCompressed.  Other parse errors are
// returned unchanged.
func ParseCompressedPublicKey(serialized []byte) (CompressedPublicKey, error) {
	legacy, err := ParseLegacyPublicKey(serialized)
	if err != nil {
		return CompressedPublicKey{}, err
	}
	return legacy.ToCompressed()
}
