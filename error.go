// Copyright (c) 2020-2022 The Decred developers
// Copyright (c) 2023 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btckeys

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrKeyNotCompressed is returned when a key that is required to be
	// serialized as compressed carries the uncompressed format, for example
	// when converting an uncompressed Legacy key into a Compressed one.
	ErrKeyNotCompressed = ErrorKind("ErrKeyNotCompressed")

	// ErrScalarOutOfRange is returned when a 256-bit value is not less than
	// the secp256k1 group order.
	ErrScalarOutOfRange = ErrorKind("ErrScalarOutOfRange")

	// ErrTweakOutOfRange is returned when applying a tweak produces a zero
	// private key or the point at infinity.
	ErrTweakOutOfRange = ErrorKind("ErrTweakOutOfRange")

	// ErrInvalidPrivateKeyLen is returned when a serialized private key is
	// not exactly 32 bytes.
	ErrInvalidPrivateKeyLen = ErrorKind("ErrInvalidPrivateKeyLen")

	// ErrPrivateKeyZero is returned when a serialized private key is zero.
	ErrPrivateKeyZero = ErrorKind("ErrPrivateKeyZero")

	// ErrPubKeyHybrid is returned when parsing a public key serialized in the
	// hybrid format, which a KeyFormat can not represent.
	ErrPubKeyHybrid = ErrorKind("ErrPubKeyHybrid")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to Bitcoin keys.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason for
// the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
