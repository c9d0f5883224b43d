// Copyright (c) 2023 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btckeys

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// XOnlyPublicKeyLen is the length of a serialized x-only public key.
const XOnlyPublicKeyLen = schnorr.PubKeyBytesLen

// XOnlyPublicKey is a public key identified by its X coordinate only, as used
// by BIP340 signatures and P2TR outputs.
//
// The point with the even Y coordinate is stored, so two values are == exactly
// when they serialize to the same 32 bytes.
type XOnlyPublicKey struct {
	key secp256k1.PublicKey
}

// NewXOnlyPublicKey drops the parity of a full public key.
func NewXOnlyPublicKey(key *btcec.PublicKey) XOnlyPublicKey {
	x, _ := xOnlyFromPoint(key)
	return x
}

// ParseXOnlyPublicKey parses a 32-byte x-only public key.  Errors from
// schnorr.ParsePubKey are returned unchanged.
func ParseXOnlyPublicKey(serialized []byte) (XOnlyPublicKey, error) {
	key, err := schnorr.ParsePubKey(serialized)
	if err != nil {
		return XOnlyPublicKey{}, err
	}
	return NewXOnlyPublicKey(key), nil
}

// Serialize returns the 32-byte encoding of the X coordinate.
func (k XOnlyPublicKey) Serialize() [XOnlyPublicKeyLen]byte {
	var b [XOnlyPublicKeyLen]byte
	copy(b[:], schnorr.SerializePubKey(&k.key))
	return b
}

// Raw returns a copy of the underlying curve library public key, which always
// has an even Y coordinate.
func (k XOnlyPublicKey) Raw() *btcec.PublicKey {
	key := k.key
	return &key
}

// AddTweak computes key + tweak*G.  The returned bool reports whether the
// full resulting point had an odd Y coordinate, which spenders of a P2TR
// output need to commit to in control blocks.
func (k XOnlyPublicKey) AddTweak(tweak Scalar) (XOnlyPublicKey, bool, error) {
	tweaked, err := tweakAddPoint(&k.key, tweak)
	if err != nil {
		return XOnlyPublicKey{}, false, err
	}
	x, odd := xOnlyFromPoint(tweaked)
	return x, odd, nil
}

// TapTweak computes the BIP341 output key committing to merkleRoot.  An empty
// merkleRoot commits to no script path.
func (k XOnlyPublicKey) TapTweak(merkleRoot []byte) (XOnlyPublicKey, bool, error) {
	tweak, err := tapTweak(k, merkleRoot)
	if err != nil {
		return XOnlyPublicKey{}, false, err
	}
	return k.AddTweak(tweak)
}

// XOnlyPrivateKey is a private key intended for schnorr signatures.
//
// It wraps PrivateKey to prevent accidental use in ECDSA signatures.  It is
// mostly used to sign P2TR spends or derive P2TR addresses.
type XOnlyPrivateKey struct {
	key PrivateKey
}

// NewXOnlyPrivateKey marks a private key as intended for schnorr signatures.
func NewXOnlyPrivateKey(key PrivateKey) XOnlyPrivateKey {
	return XOnlyPrivateKey{key: key}
}

// RawKey returns the underlying private key.
func (k XOnlyPrivateKey) RawKey() PrivateKey {
	return k.key
}

// ComputePublicKey computes the x-only public key of the private key.
func (k XOnlyPrivateKey) ComputePublicKey() XOnlyPublicKey {
	x, _ := xOnlyFromPoint(k.key.key.PubKey())
	return x
}

// AddTweak adds tweak to the private key.  An error of kind ErrTweakOutOfRange
// is returned if the result is zero.
func (k XOnlyPrivateKey) AddTweak(tweak Scalar) (XOnlyPrivateKey, error) {
	key, err := tweakAddScalar(k.key, tweak)
	if err != nil {
		return XOnlyPrivateKey{}, err
	}
	return XOnlyPrivateKey{key: key}, nil
}

// MulTweak multiplies the private key by tweak.  An error of kind
// ErrTweakOutOfRange is returned if the tweak is zero.
func (k XOnlyPrivateKey) MulTweak(tweak Scalar) (XOnlyPrivateKey, error) {
	v := tweak.modN()
	key := k.key.key.Key
	key.Mul(&v)
	if key.IsZero() {
		err := makeError(ErrTweakOutOfRange, "tweak multiplication "+
			"resulted in zero private key")
		log.Tracef("Rejected tweak: %v", err)
		return XOnlyPrivateKey{}, err
	}
	return XOnlyPrivateKey{key: PrivateKey{key: *secp256k1.NewPrivateKey(&key)}}, nil
}

// XOnlyKeyPair is a key pair intended for schnorr signatures.
//
// It wraps KeyPair to prevent accidental use in ECDSA signatures.  It is
// mostly used to sign P2TR spends or derive P2TR addresses.
type XOnlyKeyPair struct {
	key KeyPair
}

// NewXOnlyKeyPair marks a key pair as intended for schnorr signatures.
func NewXOnlyKeyPair(key KeyPair) XOnlyKeyPair {
	return XOnlyKeyPair{key: key}
}

// RawKey returns the underlying key pair.
func (k XOnlyKeyPair) RawKey() KeyPair {
	return k.key
}

// PublicKey returns the x-only public key.
func (k XOnlyKeyPair) PublicKey() XOnlyPublicKey {
	x, _ := xOnlyFromPoint(&k.key.pub.key)
	return x
}

// PrivateKey returns the private key.
func (k XOnlyKeyPair) PrivateKey() XOnlyPrivateKey {
	return XOnlyPrivateKey{key: k.key.priv}
}

// AddTweak tweaks the pair so its x-only public key becomes P + tweak*G,
// where P is the current x-only public key.  The private key is negated first
// when the full public key has an odd Y coordinate.  An error of kind
// ErrTweakOutOfRange is returned if the result is zero.
func (k XOnlyKeyPair) AddTweak(tweak Scalar) (XOnlyKeyPair, error) {
	priv := k.key.priv
	if _, odd := xOnlyFromPoint(&k.key.pub.key); odd {
		priv.key.Key.Negate()
	}

	tweaked, err := tweakAddScalar(priv, tweak)
	if err != nil {
		return XOnlyKeyPair{}, err
	}
	return XOnlyKeyPair{key: NewKeyPair(tweaked)}, nil
}

// TapTweak tweaks the pair with the BIP341 tweak committing to merkleRoot.
// The result signs for the output key returned by XOnlyPublicKey.TapTweak.
func (k XOnlyKeyPair) TapTweak(merkleRoot []byte) (XOnlyKeyPair, error) {
	tweak, err := tapTweak(k.PublicKey(), merkleRoot)
	if err != nil {
		return XOnlyKeyPair{}, err
	}
	return k.AddTweak(tweak)
}

// tapTweak computes hash_TapTweak(P || merkleRoot) as a scalar.
func tapTweak(internal XOnlyPublicKey, merkleRoot []byte) (Scalar, error) {
	x := internal.Serialize()
	h := chainhash.TaggedHash(chainhash.TagTapTweak, x[:], merkleRoot)
	return ScalarFromBEBytes([ScalarLen]byte(*h))
}

// tweakAddScalar returns key + tweak.
func tweakAddScalar(key PrivateKey, tweak Scalar) (PrivateKey, error) {
	v := tweak.modN()
	sum := key.key.Key
	sum.Add(&v)
	if sum.IsZero() {
		err := makeError(ErrTweakOutOfRange, "tweak addition resulted in "+
			"zero private key")
		log.Tracef("Rejected tweak: %v", err)
		return PrivateKey{}, err
	}
	return PrivateKey{key: *secp256k1.NewPrivateKey(&sum)}, nil
}

// tweakAddPoint returns key + tweak*G.
func tweakAddPoint(key *secp256k1.PublicKey, tweak Scalar) (*secp256k1.PublicKey, error) {
	var point, tweakPoint, result secp256k1.JacobianPoint
	v := tweak.modN()
	key.AsJacobian(&point)
	secp256k1.ScalarBaseMultNonConst(&v, &tweakPoint)
	secp256k1.AddNonConst(&point, &tweakPoint, &result)

	result.X.Normalize()
	result.Y.Normalize()
	result.Z.Normalize()
	if (result.X.IsZero() && result.Y.IsZero()) || result.Z.IsZero() {
		err := makeError(ErrTweakOutOfRange, "tweak addition resulted in "+
			"the point at infinity")
		log.Tracef("Rejected tweak: %v", err)
		return nil, err
	}

	result.ToAffine()
	return secp256k1.NewPublicKey(&result.X, &result.Y), nil
}

// xOnlyFromPoint returns the even-Y version of key and whether key had an odd
// Y coordinate.
func xOnlyFromPoint(key *secp256k1.PublicKey) (XOnlyPublicKey, bool) {
	var p secp256k1.JacobianPoint
	key.AsJacobian(&p)
	p.X.Normalize()
	p.Y.Normalize()

	odd := p.Y.IsOdd()
	if odd {
		p.Y.Negate(1).Normalize()
	}
	return XOnlyPublicKey{key: *secp256k1.NewPublicKey(&p.X, &p.Y)}, odd
}
