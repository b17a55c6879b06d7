// Package qht implements the Quotient Hash Table family of compact
// approximate membership filters: QHTc, dQHTc and dqQHTc. Each answers
// "have we plausibly seen this item before?" (Lookup) and "record this
// item, report whether it was plausibly seen" (Insert) against a fixed,
// caller-chosen memory budget.
//
// Like a Bloom or cuckoo filter, answers are one-sided: Lookup can return a
// false positive (an item never inserted), and — unlike a Bloom filter —
// can also return a false negative for an item whose fingerprint has since
// been overwritten by a collision. That implicit eviction is what makes
// these filters suitable as bounded-memory recency filters over streams
// too large to ever track exactly.
//
// All three variants share the same bit-packed cell/bucket layout
// (package bitstore), the same fingerprint derivation and addressing
// (internal/xhash), and the same bucket scan; they differ only in how they
// place a fingerprint once a cell has been scanned, captured by the
// unexported insertPolicy in policy.go. Construction is fatal on invalid
// parameters (see newCore) — there is no recoverable error path for a
// configuration mistake, only for runtime Lookup/Insert calls, which
// always return a boolean in bounded time.
package qht

// Filter is the contract all three variants satisfy.
type Filter interface {
	// Lookup reports whether item is plausibly present. It never mutates
	// the filter.
	Lookup(item []byte) bool

	// Insert records item and reports whether it was plausibly present
	// beforehand. Whether — and how — the underlying cell is mutated
	// depends on the variant's insertion policy.
	Insert(item []byte) bool
}
