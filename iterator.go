package ordkv

// iterator.go adapts the internal omap.RangeCursor into the public
// Iterator type, translating IterOptions into internal/omap.Options.

import "github.com/aalhour/ordkv/internal/omap"

// IterOptions configures an iteration over a Store or Snapshot.
type IterOptions struct {
	// Start is the inclusive lower bound of the scanned range. Nil means
	// unbounded below. The bound is the same range regardless of
	// Reverse; Reverse only flips the direction entries are walked in.
	Start []byte

	// End is the exclusive upper bound of the scanned range. Nil means
	// unbounded above. The bound is the same range regardless of
	// Reverse; Reverse only flips the direction entries are walked in.
	End []byte

	// Reverse iterates from the highest qualifying key to the lowest.
	Reverse bool

	// Prefix restricts iteration to keys beginning with Prefix. It takes
	// precedence over Start/End when set.
	Prefix []byte

	// Skip discards this many qualifying entries before the first one
	// returned. Applied before Limit.
	Skip int

	// Limit caps the number of entries returned. Zero means unbounded.
	Limit int
}

// Iterator walks a range of a Store or Snapshot in comparator order
// (or reverse). It is positioned at its first qualifying entry
// immediately on construction.
type Iterator struct {
	rc *omap.RangeCursor
}

func newIterator(m *omap.Map, cmp Comparator, opts IterOptions) *Iterator {
	return &Iterator{
		rc: m.Iterate(omap.Options{
			Start:         opts.Start,
			End:           opts.End,
			Reverse:       opts.Reverse,
			Limit:         opts.Limit,
			Skip:          opts.Skip,
			Prefix:        opts.Prefix,
			Lexicographic: isLexicographic(cmp),
		}),
	}
}

// Valid reports whether the iterator is positioned at a qualifying entry.
func (it *Iterator) Valid() bool { return it.rc.Valid() }

// Key returns the key at the current position. Only valid when Valid().
func (it *Iterator) Key() []byte { return it.rc.Key() }

// Value returns the value at the current position. Only valid when Valid().
func (it *Iterator) Value() []byte { return it.rc.Value() }

// Next advances to the next qualifying entry.
func (it *Iterator) Next() { it.rc.Next() }
