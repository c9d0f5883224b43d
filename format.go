// Copyright (c) 2023 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btckeys

// KeyFormat distinguishes compressed public key serialization from
// uncompressed serialization at runtime.  It is a more readable alternative to
// a bool.
type KeyFormat uint8

const (
	// FormatCompressed means the public key is serialized as the 33-byte
	// compressed encoding.
	FormatCompressed KeyFormat = iota

	// FormatUncompressed means the public key is serialized as the 65-byte
	// uncompressed encoding.
	FormatUncompressed
)

// IsCompressed returns true if the format is FormatCompressed.
func (f KeyFormat) IsCompressed() bool {
	return f == FormatCompressed
}

// IsUncompressed returns true if the format is FormatUncompressed.
func (f KeyFormat) IsUncompressed() bool {
	return f == FormatUncompressed
}

// isValid returns true if f is one of the two defined formats.
func (f KeyFormat) isValid() bool {
	return f == FormatCompressed || f == FormatUncompressed
}

// Toggle turns the compressed format into the uncompressed one and vice
// versa.
func (f KeyFormat) Toggle() KeyFormat {
	if f == FormatCompressed {
		return FormatUncompressed
	}
	return FormatCompressed
}

// String returns the format as a human-readable string.
func (f KeyFormat) String() string {
	switch f {
	case FormatCompressed:
		return "compressed"
	case FormatUncompressed:
		return "uncompressed"
	}
	return "unknown"
}
