// Copyright (c) 2023 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build btckeys_debug

package btckeys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSerializedPublicKeyDiscriminantTrap ensures debug builds panic when the
// first byte is not a valid public key prefix and accept the valid ones.
func TestSerializedPublicKeyDiscriminantTrap(t *testing.T) {
	tests := []struct {
		name      string
		first     byte
		wantPanic bool
	}{
		{"zero value", 0x00, true},
		{"hybrid even", 0x06, true},
		{"hybrid odd", 0x07, true},
		{"compressed even", 0x02, false},
		{"compressed odd", 0x03, false},
		{"uncompressed", 0x04, false},
	}

	for _, test := range tests {
		var s SerializedPublicKey
		s.data[0] = test.first

		if test.wantPanic {
			require.Panics(t, func() { s.Len() }, test.name)
			require.Panics(t, func() { s.AsSlice() }, test.name)
			continue
		}
		require.NotPanics(t, func() { s.Len() }, test.name)
		require.NotPanics(t, func() { s.AsSlice() }, test.name)
	}
}
