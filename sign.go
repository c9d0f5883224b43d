// Copyright (c) 2023 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btckeys

import (
	"crypto"
	"io"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

// SignECDSA produces a deterministic RFC6979 ECDSA signature of hash.  Only the
// ECDSA key families may produce ECDSA signatures; x-only keys sign with
// schnorr instead.
func SignECDSA[K HasPrivateKey](key Legacy[K], hash []byte) *ecdsa.Signature {
	priv := key.key.privateKey()
	return ecdsa.Sign(&priv.key, hash)
}

// SignCompressedECDSA is SignECDSA for compressed keys.
func SignCompressedECDSA[K HasPrivateKey](key Compressed[K], hash []byte) *ecdsa.Signature {
	priv := key.key.privateKey()
	return ecdsa.Sign(&priv.key, hash)
}

// Sign produces a BIP340 signature of the 32-byte hash.
func (k XOnlyPrivateKey) Sign(hash []byte, opts ...schnorr.SignOption) (*schnorr.Signature, error) {
	return schnorr.Sign(&k.key.key, hash, opts...)
}

// Sign produces a BIP340 signature of the 32-byte hash.
func (k XOnlyKeyPair) Sign(hash []byte, opts ...schnorr.SignOption) (*schnorr.Signature, error) {
	return schnorr.Sign(&k.key.priv.key, hash, opts...)
}

// Signer adapts an ECDSA private key to crypto.Signer.  The public key it
// reports carries the format of the wrapped key.
type Signer struct {
	priv   PrivateKey
	format KeyFormat
}

// NewLegacySigner returns a crypto.Signer for a legacy key.
func NewLegacySigner[K HasPrivateKey](key Legacy[K]) *Signer {
	return &Signer{priv: key.key.privateKey(), format: key.format}
}

// NewCompressedSigner returns a crypto.Signer for a compressed key.
func NewCompressedSigner[K HasPrivateKey](key Compressed[K]) *Signer {
	return &Signer{priv: key.key.privateKey(), format: FormatCompressed}
}

// Public returns the LegacyPublicKey of the signer.
func (s *Signer) Public() crypto.PublicKey {
	return NewLegacy(s.priv.PubKey(), s.format)
}

// Sign signs the provided digest and returns the DER encoded signature.  The
// nonce is derived with RFC6979, so rand and opts are ignored.
func (s *Signer) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	return ecdsa.Sign(&s.priv.key, digest).Serialize(), nil
}
