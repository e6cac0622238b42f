package ordkv

// snapshot.go implements point-in-time read views.
//
// A Snapshot is a cloned ordered map: Store.Snapshot performs an O(n)
// Map.Clone and hands the caller an independent, immutable copy, rather
// than a reference-counted view into the live map. Later writes to the
// Store cannot affect an already-taken Snapshot because they operate on
// a distinct Map value.

import "github.com/aalhour/ordkv/internal/omap"

// Snapshot is an immutable, point-in-time view of a Store's contents. It
// supports every read operation a Store does, and none of the writes.
type Snapshot struct {
	m   *omap.Map
	cmp Comparator
}

// Get returns the value for key in the snapshot, or ok=false if absent.
func (s *Snapshot) Get(key []byte) (value []byte, ok bool) {
	return s.m.Get(key)
}

// Contains reports whether key is present in the snapshot.
func (s *Snapshot) Contains(key []byte) bool {
	return s.m.Contains(key)
}

// Len returns the number of entries in the snapshot.
func (s *Snapshot) Len() int {
	return s.m.Len()
}

// Iterate returns an Iterator over the snapshot per opts.
func (s *Snapshot) Iterate(opts IterOptions) *Iterator {
	return newIterator(s.m, s.cmp, opts)
}
