// Copyright (c) 2023 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btckeys

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
)

// PubKeyHashLen is the length of a public key hash.
const PubKeyHashLen = ripemd160.Size

// hash160 returns ripemd160(sha256(in)).
func hash160(in []byte) [PubKeyHashLen]byte {
	rmd := ripemd160.New()
	rmd.Write(chainhash.HashB(in))

	var h [PubKeyHashLen]byte
	copy(h[:], rmd.Sum(nil))
	return h
}

// PubKeyHash returns the HASH160 of the public key serialized according to its
// format.  This is what P2PKH outputs commit to, so the same key with a
// different format yields a different hash.
func PubKeyHash[K HasPublicKey](l Legacy[K]) [PubKeyHashLen]byte {
	s := SerializeLegacy(l)
	return hash160(s.AsSlice())
}

// CompressedPubKeyHash returns the HASH160 of the compressed public key, as
// committed to by P2WPKH outputs.
func CompressedPubKeyHash[K HasPublicKey](c Compressed[K]) [PubKeyHashLen]byte {
	s := SerializeCompressed(c)
	return hash160(s[:])
}
