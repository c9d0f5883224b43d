// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2023 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package btckeys provides types for managing Bitcoin keys without mixing up
their formats.

The Bitcoin protocol deals with multiple formats and contexts of keys.  There
are legacy ECDSA keys that may or may not be compressed, x-only (Taproot) keys,
private keys, key pairs and so on.  The format of a key decides which address
it derives, so confusing two formats may make coins unspendable.  This package
provides distinct types for each of them along with the conversions, parsing
and serialization between them.  Curve arithmetic, signing and hashing are
delegated to the btcec and secp256k1 packages.

An overview of the features provided by this package are as follows:

  - Raw key kinds PublicKey, PrivateKey and KeyPair
  - Legacy keys that remember at runtime whether they are compressed
  - Compressed keys that are statically known to be compressed
  - Heap-free serialized public keys of 33 or 65 bytes
  - X-only public keys, private keys and key pairs for BIP340 and P2TR
  - Range checked 256-bit scalars for tweaking keys
  - Additive and multiplicative tweaks, including BIP341 taproot tweaks
  - HASH160 of public keys as committed to by P2PKH and P2WPKH outputs

# Legacy and Compressed

Legacy and Compressed are generic over the raw key kind, but using the type
aliases such as LegacyPublicKey and CompressedPrivateKey is recommended.  The
set of raw key kinds is closed; the Key, HasPublicKey and HasPrivateKey
constraints can not be satisfied by types outside this package.

A Legacy key may be converted into a Compressed one only when its format is
compressed.  The conversion in the other direction always succeeds.  Methods
prefixed with Force bypass those checks and are meant for recovery tools only.

# Errors

Errors returned by this package are of type Error and can be matched against
the ErrorKind constants with errors.Is.  Errors produced by the btcec parsers
are returned unchanged.

# Logging

The package logs nothing by default.  Call UseLogger to route its log output
to a btclog.Logger.
*/
package btckeys
