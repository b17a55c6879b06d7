package qht

// insertPolicy is the single extension point that distinguishes the three
// filter variants once a cell has already been scanned for a fingerprint.
// place writes fp into the cell at address according to the policy's
// placement rule; what the caller does with the pre-scan "was it already
// there" result is the filter's concern, not the policy's.
type insertPolicy interface {
	place(c *core, address, fp uint64)
}

// emptyThenRandom writes to the first empty bucket in the cell, or — if
// the cell is full — a uniformly random bucket. Shared by QHTc and dQHTc;
// they differ only in whether the write is skipped when the fingerprint
// was already present (see filter.skipWhenPresent).
type emptyThenRandom struct {
	rng *rng
}

func (p emptyThenRandom) place(c *core, address, fp uint64) {
	if bucket, ok := c.firstEmpty(address); ok {
		c.setBucket(address, bucket, fp)
		return
	}
	c.setBucket(address, p.rng.bucket(c.buckets), fp)
}

// fifoShift always shifts the cell left by one bucket and appends fp at
// the tail, discarding the oldest fingerprint. Used by dqQHTc, which needs
// no random-number source at all.
type fifoShift struct{}

func (fifoShift) place(c *core, address, fp uint64) {
	c.shiftLeftAppend(address, fp)
}
