// Copyright (c) 2023 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build btckeys_debug

package btckeys

import "fmt"

// assertDiscriminant panics if b is not the first byte of a compressed or
// uncompressed public key.  A violation means a SerializedPublicKey was made
// without going through the serialization functions of this package.
func assertDiscriminant(b byte) {
	if b != 2 && b != 3 && b != 4 {
		panic(fmt.Sprintf("unexpected first byte %d of serialized public "+
			"key, should've been 2, 3 or 4", b))
	}
}
