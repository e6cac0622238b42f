// db.go implements the storage engine: the public Store type that owns
// the ordered map and drives load/flush through the persistence codec,
// filesystem, and compression adapters.
package ordkv

import (
	"errors"
	"fmt"
	"sync"

	"github.com/aalhour/ordkv/internal/batch"
	"github.com/aalhour/ordkv/internal/codec"
	"github.com/aalhour/ordkv/internal/compression"
	"github.com/aalhour/ordkv/internal/logging"
	"github.com/aalhour/ordkv/internal/omap"
	"github.com/aalhour/ordkv/internal/vfs"
)

// Store is an embedded, ordered key-value store. It is safe for
// concurrent use by multiple goroutines.
type Store struct {
	mu sync.RWMutex

	m   *omap.Map
	cmp Comparator

	path       string
	persistent bool
	fs         vfs.FS
	compressor compression.Codec
	checksum   bool
	log        Logger

	closed bool
}

// Open constructs a Store per opts. If opts.Path names an existing file,
// it is loaded; otherwise the store starts empty. An empty opts.Path
// makes the store in-memory-only.
func Open(opts Options) (*Store, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	s := &Store{
		m:          omap.New(opts.Comparator.Compare),
		cmp:        opts.Comparator,
		path:       opts.Path,
		persistent: opts.Path != "",
		fs:         opts.FileSystem,
		compressor: opts.Compression.codec(),
		checksum:   opts.Checksum,
		log:        logging.OrDefault(opts.Logger),
	}

	if s.persistent && s.fs.Exists(s.path) {
		if err := s.load(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) load() error {
	s.log.Infof("%sloading %s", logging.NSPersist, s.path)
	data, err := s.fs.Read(s.path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrIOError, err)
	}
	entries, err := codec.Decode(data, s.compressor)
	if err != nil {
		return translateCodecError(err)
	}
	for _, e := range entries {
		s.m.Insert(e.Key, e.Value)
	}
	s.log.Infof("%sloaded %d entries from %s", logging.NSPersist, len(entries), s.path)
	return nil
}

func translateCodecError(err error) error {
	var fe *codec.ErrFormat
	if errors.As(err, &fe) {
		return fmt.Errorf("%w: %s", ErrFormatError, fe.Reason)
	}
	var de *codec.ErrDecompression
	if errors.As(err, &de) {
		return fmt.Errorf("%w: %s", ErrDecompressionError, de.Err)
	}
	return err
}

// Put inserts or overwrites key with value.
func (s *Store) Put(key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosedStore
	}
	s.m.Insert(append([]byte(nil), key...), append([]byte(nil), value...))
	return nil
}

// Get returns the current value for key, or ok=false if absent.
func (s *Store) Get(key []byte) (value []byte, ok bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, false, ErrClosedStore
	}
	v, ok := s.m.Get(key)
	return v, ok, nil
}

// Delete removes key, reporting true iff it was present beforehand.
func (s *Store) Delete(key []byte) (existed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false, ErrClosedStore
	}
	return s.m.Remove(key), nil
}

// Contains reports whether key is present.
func (s *Store) Contains(key []byte) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false, ErrClosedStore
	}
	return s.m.Contains(key), nil
}

// Len returns the number of entries currently in the store.
func (s *Store) Len() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, ErrClosedStore
	}
	return s.m.Len(), nil
}

// Iterate returns an Iterator over the live store per opts.
func (s *Store) Iterate(opts IterOptions) (*Iterator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosedStore
	}
	return newIterator(s.m, s.cmp, opts), nil
}

// Snapshot returns an immutable, point-in-time view of the store.
// Subsequent writes to s never alter what the snapshot reads.
func (s *Store) Snapshot() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosedStore
	}
	return &Snapshot{m: s.m.Clone(), cmp: s.cmp}, nil
}

// NewBatch returns a new, empty Batch bound to s.
func (s *Store) NewBatch() *Batch {
	return &Batch{internal: batch.New(), store: s}
}

// applyBatch applies ops to the live map atomically: readers never
// observe a partially-applied batch, since every op runs while s.mu is
// held for writing.
func (s *Store) applyBatch(ops []batch.Op) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosedStore
	}
	for _, op := range ops {
		switch op.Kind {
		case batch.Put:
			s.m.Insert(op.Key, op.Value)
		case batch.Delete:
			s.m.Remove(op.Key)
		}
	}
	s.log.Debugf("%sapplied batch of %d ops", logging.NSBatch, len(ops))
	return nil
}

// Flush serializes the current store to its backing file. It is a no-op
// for in-memory stores. Flush writes to a temporary sibling file and
// renames it over the target, so a failed flush leaves the existing file
// intact.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked()
}

func (s *Store) flushLocked() error {
	if s.closed {
		return ErrClosedStore
	}
	if !s.persistent {
		return nil
	}

	entries := make([]codec.Entry, 0, s.m.Len())
	cur := s.m.NewCursor()
	for cur.SeekToFirst(); cur.Valid(); cur.Next() {
		entries = append(entries, codec.Entry{Key: cur.Key(), Value: cur.Value()})
	}

	data, err := codec.Encode(entries, s.compressor, s.checksum)
	if err != nil {
		return fmt.Errorf("%w: encode: %s", ErrIOError, err)
	}

	tmp := s.path + ".tmp"
	if err := s.fs.Write(tmp, data); err != nil {
		return fmt.Errorf("%w: %s", ErrIOError, err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: %s", ErrIOError, err)
	}
	s.log.Infof("%sflushed %d entries to %s", logging.NSFlush, len(entries), s.path)
	return nil
}

// Close flushes (if persistent) and releases the store. It is idempotent:
// calling Close on an already-closed store is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	err := s.flushLocked()
	s.closed = true
	return err
}
