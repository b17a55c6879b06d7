package qht

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// distinctFingerprintItems returns n items whose fingerprints under c are
// pairwise distinct, by skipping any candidate that collides with one
// already chosen. Deterministic given c's parameters, regardless of the
// specific hash values involved.
func distinctFingerprintItems(t *testing.T, c *core, n int) [][]byte {
	t.Helper()

	seen := make(map[uint64]bool, n)
	items := make([][]byte, 0, n)
	for i := 0; len(items) < n; i++ {
		item := []byte{byte(i), byte(i >> 8), byte(i >> 16)}
		fp := c.fingerprintOf(item)
		if seen[fp] {
			continue
		}
		seen[fp] = true
		items = append(items, item)
	}
	return items
}

func TestNewCoreValidation(t *testing.T) {
	valid := []struct {
		name                                                    string
		memorySizeBits, numBuckets, fingerprintBits, wantCells uint64
	}{
		{"smoke", 1024, 1, 3, 341},
		{"exact fit", 32, 4, 8, 1},
		{"single cell", 12, 2, 4, 1},
	}
	for _, tc := range valid {
		t.Run(tc.name, func(t *testing.T) {
			c := newCore(tc.memorySizeBits, tc.numBuckets, tc.fingerprintBits)
			assert.Equal(t, tc.wantCells, c.Cells())
			assert.Equal(t, tc.numBuckets, c.Buckets())
			assert.Equal(t, tc.fingerprintBits, c.FingerprintBits())
		})
	}

	invalid := []struct {
		name                                      string
		memorySizeBits, numBuckets, fingerprintBits uint64
	}{
		{"fingerprint size zero", 16, 1, 0},
		{"fingerprint size over 8", 16, 1, 9},
		{"n_buckets zero", 16, 0, 3},
		{"memory too small for one cell", 0, 1, 3},
		{"memory smaller than one bucket*fingerprint", 4, 2, 4},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			assert.Panics(t, func() {
				newCore(tc.memorySizeBits, tc.numBuckets, tc.fingerprintBits)
			})
		})
	}
}

func TestFingerprintNonZero(t *testing.T) {
	c := newCore(1024, 4, 6)
	for i := 0; i < 500; i++ {
		item := []byte{byte(i), byte(i >> 8)}
		fp := c.fingerprintOf(item)
		assert.NotZero(t, fp)
		assert.Less(t, fp, c.powF)
	}
}

func TestAddressWithinRange(t *testing.T) {
	c := newCore(1024, 4, 6)
	for i := 0; i < 500; i++ {
		item := []byte{byte(i), byte(i >> 8)}
		assert.Less(t, c.addressOf(item), c.cells)
	}
}

func TestBucketScan(t *testing.T) {
	c := newCore(64, 4, 4)

	t.Run("empty cell has no fingerprint and an empty bucket", func(t *testing.T) {
		assert.False(t, c.inCell(0, 5))
		bucket, ok := c.firstEmpty(0)
		assert.True(t, ok)
		assert.Equal(t, uint64(0), bucket)
	})

	t.Run("inCell finds a written fingerprint", func(t *testing.T) {
		c.setBucket(0, 2, 7)
		assert.True(t, c.inCell(0, 7))
		assert.False(t, c.inCell(0, 9))
	})

	t.Run("firstEmpty skips occupied buckets", func(t *testing.T) {
		c := newCore(64, 4, 4)
		c.setBucket(0, 0, 1)
		c.setBucket(0, 1, 2)
		bucket, ok := c.firstEmpty(0)
		assert.True(t, ok)
		assert.Equal(t, uint64(2), bucket)
	})

	t.Run("firstEmpty reports false on a full cell", func(t *testing.T) {
		c := newCore(64, 4, 4)
		for b := uint64(0); b < c.buckets; b++ {
			c.setBucket(0, b, b+1)
		}
		_, ok := c.firstEmpty(0)
		assert.False(t, ok)
	})
}

func TestShiftLeftAppend(t *testing.T) {
	c := newCore(16, 2, 4)
	items := distinctFingerprintItems(t, c, 2)
	fpA := c.fingerprintOf(items[0])
	fpB := c.fingerprintOf(items[1])

	c.shiftLeftAppend(0, fpA)
	c.shiftLeftAppend(0, fpB)
	c.shiftLeftAppend(0, fpA)

	assert.Equal(t, fpB, c.getBucket(0, 0))
	assert.Equal(t, fpA, c.getBucket(0, 1))
}
