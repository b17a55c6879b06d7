// Package xhash provides the single seeded hash entry point the qht filters
// build their addressing and fingerprint derivation on. It is not meant to
// be cryptographically strong, portable across processes, or used outside
// this module.
package xhash

import (
	"encoding/binary"

	"github.com/aviddiviner/go-murmur"
)

// Seeded returns a 64-bit digest of data perturbed independently by seed
// and counter. Two calls with different seeds are treated as statistically
// independent hash families by the filters that consume this package (one
// seed for cell addressing, another for fingerprint derivation); counter
// lets the fingerprint loop re-hash the same item on a zero result without
// mutating the caller's data.
func Seeded(data []byte, seed, counter uint64) uint64 {
	header := make([]byte, 16, 16+len(data))
	binary.LittleEndian.PutUint64(header[0:8], seed)
	binary.LittleEndian.PutUint64(header[8:16], counter)
	header = append(header, data...)

	return murmur.MurmurHash64A(header, uint32(seed))
}
