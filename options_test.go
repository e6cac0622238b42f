package ordkv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptionsFillsCompressionAndChecksum(t *testing.T) {
	opts := DefaultOptions("/tmp/store.kvdb")
	assert.Equal(t, CompressionLZ4, opts.Compression)
	assert.True(t, opts.Checksum)
	assert.Equal(t, "/tmp/store.kvdb", opts.Path)
}

func TestWithDefaultsFillsUnsetFields(t *testing.T) {
	opts := Options{}.withDefaults()
	require.NotNil(t, opts.Comparator)
	require.NotNil(t, opts.FileSystem)
	require.NotNil(t, opts.Logger)
	assert.Equal(t, "ordkv.BytewiseComparator", opts.Comparator.Name())
}

func TestValidateRejectsUnknownCompression(t *testing.T) {
	opts := DefaultOptions("")
	opts.Compression = Compression(99)
	assert.Error(t, opts.validate())
}

func TestEmptyPathIsInMemoryOnly(t *testing.T) {
	s, err := Open(DefaultOptions(""))
	require.NoError(t, err)
	require.NoError(t, s.Put([]byte("k"), []byte("v")))
	require.NoError(t, s.Flush())
	require.NoError(t, s.Close())
}
