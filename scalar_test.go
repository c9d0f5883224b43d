// Copyright (c) 2023 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btckeys

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// hexToArray32 converts the passed hex string into a 32-byte array and will
// panic if there is an error.  This is only provided for the hard-coded
// constants so errors in the source code can be detected.
func hexToArray32(s string) [32]byte {
	b := hexToBytes(s)
	if len(b) != 32 {
		panic("invalid hex in source file: " + s)
	}
	return [32]byte(b)
}

// TestScalarFromBEBytes ensures scalars are range checked against the group
// order and round trip through their big-endian encoding.
func TestScalarFromBEBytes(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
	}{{
		name: "zero",
		in:   "0000000000000000000000000000000000000000000000000000000000000000",
	}, {
		name: "one",
		in:   "0000000000000000000000000000000000000000000000000000000000000001",
	}, {
		name: "arbitrary value",
		in:   "7fffffffffffffffffffffffffffffff5d576e7357a4501ddfe92f46681b20a0",
	}, {
		name: "group order minus one",
		in:   "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
	}, {
		name:    "group order",
		in:      "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
		wantErr: ErrScalarOutOfRange,
	}, {
		name:    "all ones",
		in:      "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		wantErr: ErrScalarOutOfRange,
	}}

	for _, test := range tests {
		in := hexToArray32(test.in)
		s, err := ScalarFromBEBytes(in)
		if test.wantErr != nil {
			require.ErrorIs(t, err, test.wantErr, test.name)
			continue
		}
		require.NoError(t, err, test.name)
		require.Equal(t, in, s.BEBytes(), test.name)
	}
}

// TestScalarConstants ensures the predefined scalars have the expected values.
func TestScalarConstants(t *testing.T) {
	require.True(t, ScalarZero.IsZero())
	require.False(t, ScalarOne.IsZero())

	one := hexToArray32("0000000000000000000000000000000000000000000000000000000000000001")
	require.Equal(t, one, ScalarOne.BEBytes())

	max, err := ScalarFromBEBytes(hexToArray32(
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
	))
	require.NoError(t, err)
	require.Equal(t, max, ScalarMax)

	require.Equal(t, -1, ScalarZero.Compare(ScalarOne))
	require.Equal(t, 1, ScalarMax.Compare(ScalarOne))
	require.Equal(t, 0, ScalarMax.Compare(max))
}

// TestScalarLittleEndian ensures the little-endian encoding is the reverse of
// the big-endian one and round trips.
func TestScalarLittleEndian(t *testing.T) {
	for _, s := range []Scalar{ScalarZero, ScalarOne, ScalarMax} {
		be, le := s.BEBytes(), s.LEBytes()
		for i := range be {
			if be[i] != le[len(le)-1-i] {
				t.Fatalf("little endian encoding is not reversed: %s",
					spew.Sdump(s))
			}
		}

		got, err := ScalarFromLEBytes(le)
		require.NoError(t, err)
		require.Equal(t, s, got)
	}

	// The little-endian encoding of the group order is rejected too.
	var le [ScalarLen]byte
	order := hexToArray32("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	for i := range order {
		le[i] = order[len(order)-1-i]
	}
	_, err := ScalarFromLEBytes(le)
	require.True(t, errors.Is(err, ErrScalarOutOfRange))
}

// TestScalarFromPrivateKey ensures private keys convert to the scalar of the
// same value.
func TestScalarFromPrivateKey(t *testing.T) {
	priv, err := ParsePrivateKey(hexToBytes(
		"0000000000000000000000000000000000000000000000000000000000000003",
	))
	require.NoError(t, err)

	s := ScalarFromPrivateKey(priv)
	require.Equal(t, priv.Serialize(), s.BEBytes())
}
