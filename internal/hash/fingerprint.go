// Package hash computes fast fingerprints of stored value rows.
//
// A fingerprint is the xxHash64 of the value blob and its type tag,
// separated by a NUL byte so ("a", "b") and ("ab", "") cannot collide on
// concatenation. Fingerprints are used to bucket value-list entries during
// resolution and to verify archive payloads; structural equality on decoded
// values remains the authority wherever it matters.
package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of a (value, type) row pair.
func Fingerprint(data []byte, tag string) uint64 {
	d := xxhash.New()
	_, _ = d.Write(data)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(tag)

	return d.Sum64()
}

// Sum computes the xxHash64 of a single byte slice.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
