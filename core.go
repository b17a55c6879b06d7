package qht

import (
	"fmt"

	"github.com/vitalvas/qht/bitstore"
	"github.com/vitalvas/qht/internal/xhash"
)

// fingerprintSizeLimit is the maximum supported fingerprint width, in bits.
const fingerprintSizeLimit = 8

// addressSeed and fingerprintSeed are the two independent hash seeds
// spec'd for cell addressing and fingerprint derivation respectively.
// Using different seeds is what keeps the two hash families statistically
// independent of each other.
const (
	addressSeed     = 1
	fingerprintSeed = 2
)

// core holds the geometry and storage shared by all three filter variants:
// a flat bitstore.Store laid out as cells of n_buckets fingerprints each.
// It carries no insertion policy of its own — that distinction lives in
// the insertPolicy implementations in policy.go.
type core struct {
	store   *bitstore.Store
	cells   uint64
	buckets uint64
	fBits   uint64
	powF    uint64
}

// newCore validates (memorySizeBits, numBuckets, fingerprintBits) and
// allocates the backing bitstore only once every parameter has been
// checked — deliberately the opposite order of the original Rust dqQHTc
// constructor, which allocated a zero-length store before discovering
// n_cells was zero.
func newCore(memorySizeBits, numBuckets, fingerprintBits uint64) *core {
	switch {
	case fingerprintBits == 0:
		panic("qht: fingerprint_size cannot be zero")
	case fingerprintBits > fingerprintSizeLimit:
		panic("qht: fingerprint_size cannot exceed 8")
	case numBuckets == 0:
		panic("qht: n_buckets cannot be zero")
	}

	cells := memorySizeBits / (numBuckets * fingerprintBits)
	if cells == 0 {
		panic("qht: memory_size should be at least n_buckets * fingerprint_size")
	}

	return &core{
		store:   bitstore.New(cells * numBuckets * fingerprintBits),
		cells:   cells,
		buckets: numBuckets,
		fBits:   fingerprintBits,
		powF:    1 << fingerprintBits,
	}
}

// Cells reports the number of addressable cells the filter was built with.
func (c *core) Cells() uint64 { return c.cells }

// Buckets reports the number of fingerprint slots per cell.
func (c *core) Buckets() uint64 { return c.buckets }

// FingerprintBits reports the configured fingerprint width, in bits.
func (c *core) FingerprintBits() uint64 { return c.fBits }

func (c *core) bucketOffset(address, bucket uint64) uint64 {
	return (address*c.buckets + bucket) * c.fBits
}

func (c *core) getBucket(address, bucket uint64) uint64 {
	return c.store.Extract(c.bucketOffset(address, bucket), c.fBits)
}

func (c *core) setBucket(address, bucket, fp uint64) {
	c.store.Insert(fp, c.bucketOffset(address, bucket), c.fBits)
}

// inCell reports whether any bucket in the cell at address currently holds
// fp. B is small in practice (typically <= 8), so a linear scan needs no
// auxiliary index.
func (c *core) inCell(address, fp uint64) bool {
	for b := uint64(0); b < c.buckets; b++ {
		if c.getBucket(address, b) == fp {
			return true
		}
	}
	return false
}

// firstEmpty returns the index of the first empty (zero) bucket in the
// cell at address, if any.
func (c *core) firstEmpty(address uint64) (bucket uint64, ok bool) {
	for b := uint64(0); b < c.buckets; b++ {
		if c.getBucket(address, b) == 0 {
			return b, true
		}
	}
	return 0, false
}

// shiftLeftAppend shifts every bucket in the cell one slot towards the
// head, discarding bucket 0's prior content, and writes fp into the tail
// bucket. Used only by the FIFO (dqQHTc) policy.
func (c *core) shiftLeftAppend(address, fp uint64) {
	for b := uint64(0); b+1 < c.buckets; b++ {
		c.setBucket(address, b, c.getBucket(address, b+1))
	}
	c.setBucket(address, c.buckets-1, fp)
}

// fingerprintOf derives item's non-zero fingerprint: hash with seed=2 and
// an incrementing counter until the result modulo 2^F is non-zero. This
// terminates in expected O(1) iterations (probability 1/2^F of landing on
// zero) and never mutates item itself — unlike the source this was
// distilled from, which re-seeds by mutating a copy of the element, the
// counter is passed explicitly to the hash.
func (c *core) fingerprintOf(item []byte) uint64 {
	for counter := uint64(0); ; counter++ {
		fp := xhash.Seeded(item, fingerprintSeed, counter) % c.powF
		if fp != 0 {
			return fp
		}
	}
}

// addressOf maps item to a cell index using a hash seed independent of
// fingerprint derivation, so collisions between the two hashes don't bias
// the filter.
func (c *core) addressOf(item []byte) uint64 {
	return xhash.Seeded(item, addressSeed, 0) % c.cells
}

func (c *core) String() string {
	return fmt.Sprintf("cells=%d buckets=%d fingerprint_bits=%d", c.cells, c.buckets, c.fBits)
}
