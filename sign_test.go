// Copyright (c) 2023 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btckeys

import (
	"crypto"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

// TestSignECDSA ensures the ECDSA key families produce signatures that verify
// against their public keys regardless of the format.
func TestSignECDSA(t *testing.T) {
	hash := chainhash.DoubleHashB([]byte("legacy spend"))
	priv := privKeyFromInt(t, 99)
	pub := priv.PubKey().Raw()

	sig := SignECDSA(NewLegacy(priv, FormatUncompressed), hash)
	require.True(t, sig.Verify(hash, pub))

	sig = SignECDSA(NewLegacy(NewKeyPair(priv), FormatCompressed), hash)
	require.True(t, sig.Verify(hash, pub))

	sig = SignCompressedECDSA(NewCompressed(priv), hash)
	require.True(t, sig.Verify(hash, pub))

	// RFC6979 signatures are deterministic.
	other := SignCompressedECDSA(NewCompressed(NewKeyPair(priv)), hash)
	require.True(t, sig.IsEqual(other))
}

// TestSignSchnorr ensures the x-only key families produce BIP340 signatures
// that verify against their x-only public keys.
func TestSignSchnorr(t *testing.T) {
	hash := chainhash.HashB([]byte("taproot spend"))

	for _, priv := range []PrivateKey{privKeyFromInt(t, 3), maxPrivKey(t)} {
		xpriv := NewXOnlyPrivateKey(priv)
		pub := xpriv.ComputePublicKey().Raw()

		sig, err := xpriv.Sign(hash)
		require.NoError(t, err)
		require.True(t, sig.Verify(hash, pub))

		sig, err = NewXOnlyKeyPair(NewKeyPair(priv)).Sign(hash)
		require.NoError(t, err)
		require.True(t, sig.Verify(hash, pub))
	}
}

// TestSigner ensures the crypto.Signer adapter produces DER signatures that
// verify and reports a public key with the format of the wrapped key.
func TestSigner(t *testing.T) {
	hash := chainhash.DoubleHashB([]byte("signer spend"))
	priv := privKeyFromInt(t, 42)

	tests := []struct {
		name   string
		signer crypto.Signer
		format KeyFormat
	}{
		{"legacy uncompressed", NewLegacySigner(NewLegacy(priv, FormatUncompressed)), FormatUncompressed},
		{"legacy pair", NewLegacySigner(NewLegacy(NewKeyPair(priv), FormatCompressed)), FormatCompressed},
		{"compressed", NewCompressedSigner(NewCompressed(priv)), FormatCompressed},
	}

	for _, test := range tests {
		der, err := test.signer.Sign(nil, hash, crypto.SHA256)
		require.NoError(t, err, test.name)

		sig, err := ecdsa.ParseDERSignature(der)
		require.NoError(t, err, test.name)
		require.True(t, sig.Verify(hash, priv.PubKey().Raw()), test.name)

		pub, ok := test.signer.Public().(LegacyPublicKey)
		require.True(t, ok, test.name)
		require.Equal(t, NewLegacy(priv.PubKey(), test.format), pub, test.name)
	}
}
