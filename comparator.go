package ordkv

// comparator.go implements key comparison.
//
// Comparator defines the total ordering over keys in the store. The
// default is bytewise comparison. Alternative comparators (reverse
// lexicographic, numeric-string, ...) are interchangeable at
// construction time; once chosen, a comparator is fixed for the
// lifetime of a store instance and must match the comparator used when
// its backing file was last written. A mismatch is still safe: load
// re-inserts entries one at a time under the current comparator, so the
// store ends up correctly ordered either way (the load is O(n log n)
// whether or not the comparators match).

import "bytes"

// Comparator defines a total ordering over keys.
type Comparator interface {
	// Compare returns a value < 0 if a < b, 0 if a == b, > 0 if a > b.
	// Implementations must be a total order: antisymmetric, transitive,
	// and total. Violating this is a programming error with undefined
	// store behavior.
	Compare(a, b []byte) int

	// Name identifies the comparator. The iterator factory does not
	// consult it: the byte-successor optimization for prefix scans (see
	// Options.Lexicographic in internal/omap) is enabled only when the
	// comparator is the BytewiseComparator type itself.
	Name() string
}

// BytewiseComparator is the default comparator: lexicographic order over
// unsigned bytes.
type BytewiseComparator struct{}

// Compare compares two keys lexicographically.
func (BytewiseComparator) Compare(a, b []byte) int {
	return bytes.Compare(a, b)
}

// Name returns the comparator's identifying name.
func (BytewiseComparator) Name() string {
	return "ordkv.BytewiseComparator"
}

// ReverseComparator orders keys in the opposite direction of bytewise
// comparison. Useful for stores that want newest-first iteration without
// an explicit Reverse option at every call site.
type ReverseComparator struct{}

// Compare compares two keys in reverse lexicographic order.
func (ReverseComparator) Compare(a, b []byte) int {
	return bytes.Compare(b, a)
}

// Name returns the comparator's identifying name.
func (ReverseComparator) Name() string {
	return "ordkv.ReverseComparator"
}

// DefaultComparator returns the default bytewise comparator.
func DefaultComparator() Comparator {
	return BytewiseComparator{}
}

// isLexicographic reports whether cmp is known to agree with plain byte
// order, which lets the iterator factory bound prefix scans efficiently
// by seeking directly to the prefix instead of scanning from the start.
func isLexicographic(cmp Comparator) bool {
	_, ok := cmp.(BytewiseComparator)
	return ok
}
