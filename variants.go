package qht

// QHTc is the insert-if-absent variant: Insert leaves the filter unchanged
// and reports true when the fingerprint is already in its cell; otherwise
// it writes to the first empty bucket, or a uniformly random bucket if the
// cell is full, and reports false.
//
// Because duplicates cost no write, existing fingerprints survive until
// their cell fills up, and random replacement on a full cell avoids
// adversarial eviction patterns.
type QHTc struct {
	*filter
}

// NewQHTc allocates a QHTc filter. memorySizeBits is the total storage
// budget in bits, numBuckets the number of fingerprint slots per cell
// (B >= 1), fingerprintBits the width of each fingerprint in bits
// (1 <= F <= 8). It panics if any parameter combination is invalid — see
// newCore — or if memorySizeBits is too small to fit even one cell.
func NewQHTc(memorySizeBits, numBuckets, fingerprintBits uint64) *QHTc {
	return &QHTc{
		filter: &filter{
			core:            newCore(memorySizeBits, numBuckets, fingerprintBits),
			policy:          emptyThenRandom{rng: newRNG()},
			skipWhenPresent: true,
		},
	}
}

// DQHTc always attempts to write the fingerprint — to the first empty
// bucket, or a uniformly random bucket if the cell is full — even when the
// fingerprint was already present, which can increase that fingerprint's
// multiplicity within the cell. Insert reports whether it was present
// beforehand.
//
// The extra write on a hit is intentional: it reinforces hot fingerprints,
// lowering the odds that a single random eviction removes every copy.
type DQHTc struct {
	*filter
}

// NewDQHTc allocates a dQHTc filter with the same parameters and failure
// modes as NewQHTc.
func NewDQHTc(memorySizeBits, numBuckets, fingerprintBits uint64) *DQHTc {
	return &DQHTc{
		filter: &filter{
			core:            newCore(memorySizeBits, numBuckets, fingerprintBits),
			policy:          emptyThenRandom{rng: newRNG()},
			skipWhenPresent: false,
		},
	}
}

// DQQHTc always inserts at the tail of the cell via a left shift — the
// oldest fingerprint in the cell is evicted unconditionally, giving
// deterministic FIFO recency semantics: the most recent B distinct
// insertions into a cell are retained in arrival order. It needs no
// random-number source.
type DQQHTc struct {
	*filter
}

// NewDQQHTc allocates a dqQHTc filter with the same parameters and failure
// modes as NewQHTc.
func NewDQQHTc(memorySizeBits, numBuckets, fingerprintBits uint64) *DQQHTc {
	return &DQQHTc{
		filter: &filter{
			core:            newCore(memorySizeBits, numBuckets, fingerprintBits),
			policy:          fifoShift{},
			skipWhenPresent: false,
		},
	}
}

// GoString reports the variant name alongside its geometry, for
// diagnostics — e.g. when a caller logs the filter it just built.
func (f *QHTc) GoString() string { return "QHTc{" + f.String() + "}" }

// GoString reports the variant name alongside its geometry.
func (f *DQHTc) GoString() string { return "dQHTc{" + f.String() + "}" }

// GoString reports the variant name alongside its geometry.
func (f *DQQHTc) GoString() string { return "dqQHTc{" + f.String() + "}" }

var (
	_ Filter = (*QHTc)(nil)
	_ Filter = (*DQHTc)(nil)
	_ Filter = (*DQQHTc)(nil)
)
