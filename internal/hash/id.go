package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Seeds derives a pair of 64-bit generator seeds from label.
//
// The first seed is the xxHash64 of the label; the second hashes the label
// followed by a separator byte, so distinct labels give independent streams
// and the same label always reproduces the same stream.
func Seeds(label string) (uint64, uint64) {
	d := xxhash.New()
	_, _ = d.WriteString(label)
	_, _ = d.Write([]byte{0xff})

	return ID(label), d.Sum64()
}
