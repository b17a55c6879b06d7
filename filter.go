package qht

// filter is the shared engine behind all three exported variant types. It
// is unexported: callers only ever see QHTc, DQHTc or DQQHTc, each of
// which embeds one configured to that variant's semantics.
type filter struct {
	core   *core
	policy insertPolicy

	// skipWhenPresent is true only for QHTc: when the fingerprint is
	// already in the cell, the write is skipped entirely and Insert
	// reports the item as previously present without touching storage.
	skipWhenPresent bool
}

// Lookup reports whether item's fingerprint is present in its cell. It
// never mutates the filter, regardless of variant.
func (f *filter) Lookup(item []byte) bool {
	fp := f.core.fingerprintOf(item)
	address := f.core.addressOf(item)
	return f.core.inCell(address, fp)
}

// Insert computes item's fingerprint and cell address once, scans the
// cell, and then either reports early (QHTc on a hit) or delegates
// placement to the variant's policy.
func (f *filter) Insert(item []byte) bool {
	fp := f.core.fingerprintOf(item)
	address := f.core.addressOf(item)

	detected := f.core.inCell(address, fp)
	if detected && f.skipWhenPresent {
		return true
	}

	f.policy.place(f.core, address, fp)
	return detected
}

// Cells reports the number of addressable cells the filter was built with.
func (f *filter) Cells() uint64 { return f.core.Cells() }

// Buckets reports the number of fingerprint slots per cell.
func (f *filter) Buckets() uint64 { return f.core.Buckets() }

// FingerprintBits reports the configured fingerprint width, in bits.
func (f *filter) FingerprintBits() uint64 { return f.core.FingerprintBits() }

func (f *filter) String() string { return f.core.String() }
