// Copyright (c) 2023 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btckeys

import (
	"bytes"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ScalarLen is the length of a serialized Scalar.
const ScalarLen = 32

// Scalar is a 256-bit unsigned integer guaranteed to be less than the
// secp256k1 group order.  It is mostly used to tweak keys.
//
// The value is stored big endian so comparing the raw arrays is equivalent to
// comparing the numbers.  Scalars are comparable with ==.
//
// NOTE: None of the operations on Scalar are constant time.  Do not use them
// on secrets where timing side channels matter without additional hardening.
type Scalar struct {
	be [ScalarLen]byte
}

var (
	// ScalarZero is the scalar with value 0.
	ScalarZero = Scalar{}

	// ScalarOne is the scalar with value 1.
	ScalarOne = Scalar{be: [ScalarLen]byte{31: 0x01}}

	// ScalarMax is the largest valid scalar, the group order minus one.
	ScalarMax = Scalar{be: maxScalarBytes}
)

// maxScalarBytes is the big-endian encoding of the secp256k1 group order minus
// one.
var maxScalarBytes = [ScalarLen]byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe,
	0xba, 0xae, 0xdc, 0xe6, 0xaf, 0x48, 0xa0, 0x3b,
	0xbf, 0xd2, 0x5e, 0x8c, 0xd0, 0x36, 0x41, 0x40,
}

// ScalarFromBEBytes creates a scalar from its big-endian encoding.  An error
// of kind ErrScalarOutOfRange is returned when the value is not less than the
// group order.
//
// NOTE: This is not constant time.
func ScalarFromBEBytes(b [ScalarLen]byte) (Scalar, error) {
	if bytes.Compare(b[:], maxScalarBytes[:]) > 0 {
		str := fmt.Sprintf("scalar %x is not less than the group order", b)
		return Scalar{}, makeError(ErrScalarOutOfRange, str)
	}
	return Scalar{be: b}, nil
}

// ScalarFromLEBytes creates a scalar from its little-endian encoding.  An
// error of kind ErrScalarOutOfRange is returned when the value is not less
// than the group order.
//
// NOTE: This is not constant time.
func ScalarFromLEBytes(b [ScalarLen]byte) (Scalar, error) {
	return ScalarFromBEBytes(reverse32(b))
}

// ScalarFromPrivateKey returns the scalar value of a private key.  Private
// keys are always in range so this can not fail.
func ScalarFromPrivateKey(key PrivateKey) Scalar {
	return Scalar{be: key.key.Key.Bytes()}
}

// BEBytes returns the big-endian encoding of the scalar.
func (s Scalar) BEBytes() [ScalarLen]byte {
	return s.be
}

// LEBytes returns the little-endian encoding of the scalar.
func (s Scalar) LEBytes() [ScalarLen]byte {
	return reverse32(s.be)
}

// IsZero returns whether or not the scalar is zero.
func (s Scalar) IsZero() bool {
	return s == ScalarZero
}

// Compare returns -1, 0 or 1 depending on whether s is less than, equal to or
// greater than other.
//
// NOTE: This is not constant time.
func (s Scalar) Compare(other Scalar) int {
	return bytes.Compare(s.be[:], other.be[:])
}

// modN returns the scalar as a value of the curve arithmetic.
func (s Scalar) modN() secp256k1.ModNScalar {
	var v secp256k1.ModNScalar
	v.SetBytes(&s.be)
	return v
}

func reverse32(b [32]byte) [32]byte {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
