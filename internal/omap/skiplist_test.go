package omap

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexCmp(a, b []byte) int { return bytes.Compare(a, b) }

func TestMapInsertGetOverwrite(t *testing.T) {
	m := New(lexCmp)
	m.Insert([]byte("a"), []byte("1"))
	m.Insert([]byte("b"), []byte("2"))
	m.Insert([]byte("a"), []byte("9")) // later write wins

	v, ok := m.Get([]byte("a"))
	require.True(t, ok)
	assert.Equal(t, []byte("9"), v)
	assert.Equal(t, 2, m.Len())
}

func TestMapRemove(t *testing.T) {
	m := New(lexCmp)
	m.Insert([]byte("a"), []byte("1"))

	assert.True(t, m.Remove([]byte("a")))
	assert.False(t, m.Remove([]byte("a"))) // idempotent
	_, ok := m.Get([]byte("a"))
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestMapForwardOrder(t *testing.T) {
	m := New(lexCmp)
	for _, k := range []string{"c", "a", "b"} {
		m.Insert([]byte(k), []byte(k))
	}

	c := m.NewCursor()
	c.SeekToFirst()
	var got []string
	for c.Valid() {
		got = append(got, string(c.Key()))
		c.Next()
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestMapReverseOrder(t *testing.T) {
	m := New(lexCmp)
	for _, k := range []string{"c", "a", "b"} {
		m.Insert([]byte(k), []byte(k))
	}

	c := m.NewCursor()
	c.SeekToLast()
	var got []string
	for c.Valid() {
		got = append(got, string(c.Key()))
		c.Prev()
	}
	assert.Equal(t, []string{"c", "b", "a"}, got)
}

func TestMapClonePreservesSnapshot(t *testing.T) {
	m := New(lexCmp)
	m.Insert([]byte("a"), []byte("1"))

	snap := m.Clone()
	m.Insert([]byte("a"), []byte("2"))
	m.Remove([]byte("missing-ok"))

	v, ok := snap.Get([]byte("a"))
	require.True(t, ok)
	assert.Equal(t, []byte("1"), v)

	v, ok = m.Get([]byte("a"))
	require.True(t, ok)
	assert.Equal(t, []byte("2"), v)
}

func TestByteSuccessor(t *testing.T) {
	assert.Equal(t, []byte("b"), byteSuccessor([]byte("a")))
	assert.Equal(t, []byte{0x01, 0x01}, byteSuccessor([]byte{0x01, 0x00}))
	assert.Nil(t, byteSuccessor([]byte{0xFF, 0xFF}))
}

func TestIterateRangeSkipLimit(t *testing.T) {
	m := New(lexCmp)
	for i := 0; i < 10; i++ {
		k := []byte(fmt.Sprintf("k%02d", i))
		m.Insert(k, k)
	}

	rc := m.Iterate(Options{Start: []byte("k02"), End: []byte("k08"), Skip: 2, Limit: 3})
	var got []string
	for rc.Valid() {
		got = append(got, string(rc.Key()))
		rc.Next()
	}
	// range [k02,k08) = k02..k07 (6 entries), skip 2 -> k04.., limit 3 -> k04,k05,k06
	assert.Equal(t, []string{"k04", "k05", "k06"}, got)
}

func TestIterateReverse(t *testing.T) {
	m := New(lexCmp)
	for _, k := range []string{"a", "b", "c", "d"} {
		m.Insert([]byte(k), []byte(k))
	}
	rc := m.Iterate(Options{Reverse: true})
	var got []string
	for rc.Valid() {
		got = append(got, string(rc.Key()))
		rc.Next()
	}
	assert.Equal(t, []string{"d", "c", "b", "a"}, got)
}

func TestIteratePrefixLexicographic(t *testing.T) {
	m := New(lexCmp)
	for i := 0; i < 100; i++ {
		k := []byte(fmt.Sprintf("user_%03d", i))
		m.Insert(k, k)
	}

	rc := m.Iterate(Options{Prefix: []byte("user_05"), Lexicographic: true})
	var got []string
	for rc.Valid() {
		got = append(got, string(rc.Key()))
		rc.Next()
	}
	require.Len(t, got, 10)
	assert.Equal(t, "user_050", got[0])
	assert.Equal(t, "user_059", got[9])
}

func TestIteratePrefixNonLexicographic(t *testing.T) {
	// A comparator whose order diverges from byte order: compare by
	// reversed bytes. Prefix must still only yield true byte-prefix
	// matches even though no comparator-side bound is trusted.
	reverseBytes := func(a, b []byte) int {
		ra := make([]byte, len(a))
		for i, c := range a {
			ra[len(a)-1-i] = c
		}
		rb := make([]byte, len(b))
		for i, c := range b {
			rb[len(b)-1-i] = c
		}
		return bytes.Compare(ra, rb)
	}
	m := New(reverseBytes)
	keys := []string{"ab1", "ba1", "ab2", "cc3"}
	for _, k := range keys {
		m.Insert([]byte(k), []byte(k))
	}

	rc := m.Iterate(Options{Prefix: []byte("ab"), Lexicographic: false})
	var got []string
	for rc.Valid() {
		got = append(got, string(rc.Key()))
		rc.Next()
	}
	assert.ElementsMatch(t, []string{"ab1", "ab2"}, got)
}
