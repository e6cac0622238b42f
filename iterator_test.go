package ordkv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func seedLetters(t *testing.T, s *Store) {
	t.Helper()
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, s.Put([]byte(k), []byte(k)))
	}
}

func keysOf(t *testing.T, it *Iterator) []string {
	t.Helper()
	var out []string
	for ; it.Valid(); it.Next() {
		out = append(out, string(it.Key()))
	}
	return out
}

func TestIterateRange(t *testing.T) {
	s := openMem(t, DefaultOptions(""))
	seedLetters(t, s)

	it, err := s.Iterate(IterOptions{Start: []byte("b"), End: []byte("d")})
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c"}, keysOf(t, it))
}

func TestIterateSkipThenLimit(t *testing.T) {
	s := openMem(t, DefaultOptions(""))
	seedLetters(t, s)

	it, err := s.Iterate(IterOptions{Skip: 1, Limit: 2})
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c"}, keysOf(t, it))
}

func TestIterateReverseRange(t *testing.T) {
	s := openMem(t, DefaultOptions(""))
	seedLetters(t, s)

	it, err := s.Iterate(IterOptions{Start: []byte("b"), End: []byte("d"), Reverse: true})
	require.NoError(t, err)
	require.Equal(t, []string{"c", "b"}, keysOf(t, it))
}
