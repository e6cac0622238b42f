package omap

import "bytes"

// Options composes the cursor behaviors from the iterator factory: a
// start/end range, direction, and post-processing (skip, then limit).
//
// A non-empty Prefix overrides Start/End: it is treated as the range
// [Prefix, successor(Prefix)) when Lexicographic is true (the comparator
// is byte-order-compatible, so the successor bound is a valid upper
// bound), and as an unbounded forward scan filtered by a byte-prefix
// predicate otherwise — a non-lexicographic comparator's order need not
// agree with byte order, so no comparator-side bound can be trusted to
// contain exactly the prefix matches.
type Options struct {
	Start         []byte
	End           []byte
	Reverse       bool
	Limit         int
	Skip          int
	Prefix        []byte
	Lexicographic bool
}

// RangeCursor is a lazy, bounded, filtered walk over a Map. It is
// positioned at its first qualifying entry immediately upon construction
// (a Valid/Key/Value/Next cursor, not a pull-then-advance iterator).
type RangeCursor struct {
	cur     *Cursor
	cmp     Comparator
	reverse bool
	end     []byte // forward: exclusive upper bound
	lower   []byte // reverse: inclusive lower bound
	prefix  []byte

	limit    int
	skipLeft int
	yielded  int
	stopped  bool
}

// Iterate constructs a RangeCursor over m per opts.
func (m *Map) Iterate(opts Options) *RangeCursor {
	start, end, prefix := opts.Start, opts.End, opts.Prefix

	if len(opts.Prefix) > 0 {
		if opts.Lexicographic {
			// Byte order and comparator order agree: seeking to Prefix
			// and bounding at its byte-successor is both correct and
			// efficient.
			start = opts.Prefix
			end = byteSuccessor(opts.Prefix)
		} else {
			// The comparator's order need not agree with byte order, so
			// no comparator-side seek position or bound can be trusted
			// to contain exactly the prefix matches (or any of them).
			// Fall back to a full forward scan filtered by byte-prefix.
			start = nil
			end = nil
		}
	}

	rc := &RangeCursor{
		cur:      m.NewCursor(),
		cmp:      m.cmp,
		reverse:  opts.Reverse,
		end:      end,
		lower:    start,
		prefix:   prefix,
		limit:    opts.Limit,
		skipLeft: opts.Skip,
	}

	if !opts.Reverse {
		if len(start) > 0 {
			rc.cur.Seek(start)
		} else {
			rc.cur.SeekToFirst()
		}
	} else {
		if len(end) > 0 {
			rc.cur.Seek(end)
			if rc.cur.Valid() {
				rc.cur.Prev()
			} else {
				rc.cur.SeekToLast()
			}
		} else {
			rc.cur.SeekToLast()
		}
	}

	rc.settle()
	return rc
}

// byteSuccessor returns the smallest byte sequence strictly greater than
// every sequence beginning with p, or nil if no finite successor exists
// (p consists entirely of 0xFF bytes, or is empty).
func byteSuccessor(p []byte) []byte {
	succ := append([]byte(nil), p...)
	for i := len(succ) - 1; i >= 0; i-- {
		if succ[i] != 0xFF {
			succ[i]++
			return succ[:i+1]
		}
	}
	return nil
}

// Valid reports whether the cursor is positioned at a qualifying entry.
func (rc *RangeCursor) Valid() bool {
	return !rc.stopped && rc.cur.Valid()
}

// Key returns the key at the current position. Requires Valid().
func (rc *RangeCursor) Key() []byte {
	return rc.cur.Key()
}

// Value returns the value at the current position. Requires Valid().
func (rc *RangeCursor) Value() []byte {
	return rc.cur.Value()
}

// Next advances to the next qualifying entry, respecting bounds, the
// prefix filter, skip, and limit.
func (rc *RangeCursor) Next() {
	if rc.stopped || !rc.cur.Valid() {
		rc.stopped = true
		return
	}
	rc.yielded++
	rc.advanceRaw()
	rc.settle()
}

// settle advances the raw cursor past out-of-range, filtered-out, and
// skipped entries until it lands on a qualifying entry, the limit is
// reached, or the underlying map is exhausted.
func (rc *RangeCursor) settle() {
	for rc.cur.Valid() {
		key := rc.cur.Key()
		if rc.outOfBounds(key) {
			rc.stopped = true
			return
		}
		if len(rc.prefix) > 0 && !bytes.HasPrefix(key, rc.prefix) {
			rc.advanceRaw()
			continue
		}
		if rc.skipLeft > 0 {
			rc.skipLeft--
			rc.advanceRaw()
			continue
		}
		if rc.limit > 0 && rc.yielded >= rc.limit {
			rc.stopped = true
			return
		}
		return
	}
}

func (rc *RangeCursor) outOfBounds(key []byte) bool {
	if !rc.reverse && rc.end != nil && rc.cmp(key, rc.end) >= 0 {
		return true
	}
	if rc.reverse && rc.lower != nil && rc.cmp(key, rc.lower) < 0 {
		return true
	}
	return false
}

func (rc *RangeCursor) advanceRaw() {
	if rc.reverse {
		rc.cur.Prev()
	} else {
		rc.cur.Next()
	}
}
