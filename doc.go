/*
Package ordkv provides a pure-Go, embedded, ordered key-value store.

Keys are kept in a total order determined by a pluggable Comparator (the
default is plain byte-order comparison). The store supports point
lookups, ordered and prefix iteration in either direction, atomic
multi-key batches with nested savepoints, point-in-time snapshots, and
durable persistence to a single file on close or explicit Flush.

# Usage

	store, err := ordkv.Open(ordkv.DefaultOptions("/var/lib/mystore"))
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Put([]byte("user:1"), []byte("alice")); err != nil {
		return err
	}
	value, ok, err := store.Get([]byte("user:1"))

# Concurrency

A Store's methods are safe for concurrent use by multiple goroutines. A
Snapshot is an independent, immutable read view and is also safe for
concurrent use. An Iterator reads lazily from the map it was created over:
one obtained from a Store walks the live map and must not be advanced
while the Store is being written to, while one obtained from a Snapshot
is unaffected by writes. An Iterator is not safe for concurrent
advancement from multiple goroutines.

# Persistence

A Store with a non-empty path persists its full contents to a single
file on Flush and on Close, in the wire format documented in
internal/codec. There is no write-ahead log: operations between flushes
are only durable once a Flush or Close succeeds. Multi-process access to
the same path is not supported.
*/
package ordkv
