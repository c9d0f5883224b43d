// Copyright (c) 2023 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !btckeys_debug

package btckeys

// assertDiscriminant is a no-op unless built with the btckeys_debug tag.
func assertDiscriminant(byte) {}
