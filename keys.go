// Copyright (c) 2023 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btckeys

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PrivateKeyLen is the length of a serialized private key.
const PrivateKeyLen = 32

// Key restricts the raw key kinds that may be stored in Legacy and Compressed.
//
// The type set is closed: only PublicKey, PrivateKey and KeyPair satisfy it.
type Key interface {
	PublicKey | PrivateKey | KeyPair
}

// HasPublicKey represents raw key kinds that are or contain a public key.
type HasPublicKey interface {
	PublicKey | KeyPair

	publicKey() PublicKey
}

// HasPrivateKey represents raw key kinds that are or contain a private key.
type HasPrivateKey interface {
	PrivateKey | KeyPair

	privateKey() PrivateKey

	// computePublicKey derives the public key through curve multiplication
	// unless the kind already knows it.
	computePublicKey() PublicKey
}

// PublicKey is a raw secp256k1 public key.  It carries no serialization format.
//
// The coordinates are kept normalized so two PublicKey values are == exactly
// when they represent the same point.
type PublicKey struct {
	key secp256k1.PublicKey
}

// NewPublicKey wraps a public key produced by the curve library.
func NewPublicKey(key *btcec.PublicKey) PublicKey {
	return PublicKey{key: canonicalPublicKey(key)}
}

// ParsePublicKey parses a public key in any encoding accepted by
// btcec.ParsePubKey.  Errors from the parser are returned unchanged.
func ParsePublicKey(serialized []byte) (PublicKey, error) {
	key, err := btcec.ParsePubKey(serialized)
	if err != nil {
		return PublicKey{}, err
	}
	return NewPublicKey(key), nil
}

// Raw returns a copy of the underlying curve library public key.
func (k PublicKey) Raw() *btcec.PublicKey {
	key := k.key
	return &key
}

// SerializeCompressed returns the 33-byte compressed encoding of the key.
func (k PublicKey) SerializeCompressed() [secp256k1.PubKeyBytesLenCompressed]byte {
	var b [secp256k1.PubKeyBytesLenCompressed]byte
	k.putCompressed(b[:])
	return b
}

// SerializeUncompressed returns the 65-byte uncompressed encoding of the key.
func (k PublicKey) SerializeUncompressed() [secp256k1.PubKeyBytesLenUncompressed]byte {
	var b [secp256k1.PubKeyBytesLenUncompressed]byte
	k.putUncompressed(b[:])
	return b
}

// putCompressed writes 0x02/0x03 || X into the first 33 bytes of b.
func (k PublicKey) putCompressed(b []byte) {
	var p secp256k1.JacobianPoint
	k.key.AsJacobian(&p)

	b[0] = secp256k1.PubKeyFormatCompressedEven
	if p.Y.IsOdd() {
		b[0] = secp256k1.PubKeyFormatCompressedOdd
	}
	p.X.PutBytesUnchecked(b[1:33])
}

// putUncompressed writes 0x04 || X || Y into the first 65 bytes of b.
func (k PublicKey) putUncompressed(b []byte) {
	var p secp256k1.JacobianPoint
	k.key.AsJacobian(&p)

	b[0] = secp256k1.PubKeyFormatUncompressed
	p.X.PutBytesUnchecked(b[1:33])
	p.Y.PutBytesUnchecked(b[33:65])
}

func (k PublicKey) publicKey() PublicKey {
	return k
}

// PrivateKey is a raw secp256k1 private key.  It carries no serialization
// format.
type PrivateKey struct {
	key secp256k1.PrivateKey
}

// NewPrivateKey wraps a private key produced by the curve library.  The key
// must not be zero.
func NewPrivateKey(key *btcec.PrivateKey) PrivateKey {
	return PrivateKey{key: *key}
}

// ParsePrivateKey parses a 32-byte big-endian private key.  Values that are
// zero or not less than the group order are rejected.
func ParsePrivateKey(serialized []byte) (PrivateKey, error) {
	if len(serialized) != PrivateKeyLen {
		str := fmt.Sprintf("malformed private key: invalid length: %d",
			len(serialized))
		return PrivateKey{}, makeError(ErrInvalidPrivateKeyLen, str)
	}

	scalar, err := ScalarFromBEBytes([PrivateKeyLen]byte(serialized))
	if err != nil {
		return PrivateKey{}, err
	}
	if scalar.IsZero() {
		return PrivateKey{}, makeError(ErrPrivateKeyZero,
			"invalid private key: zero")
	}

	v := scalar.modN()
	return PrivateKey{key: *secp256k1.NewPrivateKey(&v)}, nil
}

// Raw returns a copy of the underlying curve library private key.
func (k PrivateKey) Raw() *btcec.PrivateKey {
	key := k.key
	return &key
}

// Serialize returns the 32-byte big-endian encoding of the key.
func (k PrivateKey) Serialize() [PrivateKeyLen]byte {
	return k.key.Key.Bytes()
}

// PubKey computes the public key through curve multiplication.
func (k PrivateKey) PubKey() PublicKey {
	return NewPublicKey(k.key.PubKey())
}

func (k PrivateKey) privateKey() PrivateKey {
	return k
}

func (k PrivateKey) computePublicKey() PublicKey {
	return k.PubKey()
}

// KeyPair is a private key together with its already computed public key.
type KeyPair struct {
	priv PrivateKey
	pub  PublicKey
}

// NewKeyPair computes the public half of the private key and pairs them.
func NewKeyPair(priv PrivateKey) KeyPair {
	return KeyPair{priv: priv, pub: priv.PubKey()}
}

// PublicKey returns the public half of the pair.
func (k KeyPair) PublicKey() PublicKey {
	return k.pub
}

// PrivateKey returns the private half of the pair.
func (k KeyPair) PrivateKey() PrivateKey {
	return k.priv
}

func (k KeyPair) publicKey() PublicKey {
	return k.pub
}

func (k KeyPair) privateKey() PrivateKey {
	return k.priv
}

// computePublicKey skips the multiplication since the pair already knows the
// result.
func (k KeyPair) computePublicKey() PublicKey {
	return k.pub
}

// canonicalPublicKey copies the key with normalized coordinates.
func canonicalPublicKey(key *btcec.PublicKey) secp256k1.PublicKey {
	var p secp256k1.JacobianPoint
	key.AsJacobian(&p)
	p.X.Normalize()
	p.Y.Normalize()
	return *secp256k1.NewPublicKey(&p.X, &p.Y)
}
