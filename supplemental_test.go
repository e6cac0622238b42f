package ordkv

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aalhour/ordkv/internal/vfs"
)

// TestMultipleSnapshotsAtDifferentWritePoints verifies that three
// snapshots taken between interleaved writes each read back exactly the
// state frozen at their own creation time.
func TestMultipleSnapshotsAtDifferentWritePoints(t *testing.T) {
	s := openMem(t, DefaultOptions(""))

	require.NoError(t, s.Put([]byte("a"), []byte("1")))
	snap1, err := s.Snapshot()
	require.NoError(t, err)

	require.NoError(t, s.Put([]byte("b"), []byte("2")))
	snap2, err := s.Snapshot()
	require.NoError(t, err)

	require.NoError(t, s.Put([]byte("c"), []byte("3")))
	snap3, err := s.Snapshot()
	require.NoError(t, err)

	require.NoError(t, s.Put([]byte("a"), []byte("overwritten")))

	v, ok := snap1.Get([]byte("a"))
	require.True(t, ok)
	require.Equal(t, "1", string(v))
	require.Equal(t, 1, snap1.Len())

	require.Equal(t, 2, snap2.Len())
	_, ok = snap2.Get([]byte("c"))
	require.False(t, ok)

	require.Equal(t, 3, snap3.Len())
	v, ok = snap3.Get([]byte("a"))
	require.True(t, ok)
	require.Equal(t, "1", string(v))

	v, ok, err = s.Get([]byte("a"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "overwritten", string(v))
}

// TestMigrationAcrossComparators copies every entry from a lexicographic
// store into a reverse-ordered store via a batch, exercising Iterate and
// Batch composition across two independent Store instances.
func TestMigrationAcrossComparators(t *testing.T) {
	src := openMem(t, DefaultOptions(""))
	for _, k := range []string{"1", "2", "10", "20"} {
		require.NoError(t, src.Put([]byte(k), []byte("v"+k)))
	}

	dstOpts := DefaultOptions("")
	dstOpts.Comparator = ReverseComparator{}
	dst := openMem(t, dstOpts)

	it, err := src.Iterate(IterOptions{})
	require.NoError(t, err)

	b := dst.NewBatch()
	for ; it.Valid(); it.Next() {
		b.Put(append([]byte(nil), it.Key()...), append([]byte(nil), it.Value()...))
	}
	require.NoError(t, b.Commit())

	srcLen, err := src.Len()
	require.NoError(t, err)
	dstLen, err := dst.Len()
	require.NoError(t, err)
	require.Equal(t, srcLen, dstLen)

	for _, k := range []string{"1", "2", "10", "20"} {
		v, ok, err := dst.Get([]byte(k))
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "v"+k, string(v))
	}

	itDst, err := dst.Iterate(IterOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{"20", "2", "10", "1"}, keysOf(t, itDst))
}

// TestLoggingFileSystemDouble exercises the FileSystem adapter via the
// in-memory MemFS double, recording every operation the codec performs.
func TestLoggingFileSystemDouble(t *testing.T) {
	fs := vfs.NewMemFS()
	opts := DefaultOptions("db.kvdb")
	opts.FileSystem = fs

	s, err := Open(opts)
	require.NoError(t, err)
	require.NoError(t, s.Put([]byte("k"), []byte("v")))
	require.NoError(t, s.Close())

	require.Contains(t, fs.Ops, "EXISTS:db.kvdb")
	foundWrite := false
	for _, op := range fs.Ops {
		if op == "WRITE:db.kvdb.tmp" {
			foundWrite = true
		}
	}
	require.True(t, foundWrite)
}
