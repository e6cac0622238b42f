// Package codec implements the on-disk file format: a small fixed
// header (magic/version/flags/payload length) wrapping an
// optionally compressed, optionally checksummed serialization of every
// entry in the store, written in forward comparator order.
//
//	magic:        4 bytes  = "KVDB"
//	version:      2 bytes  big-endian u16 = 1
//	flags:        2 bytes  bit 0 = compressed, bit 1 = checksummed
//	payload_len:  8 bytes  big-endian u64
//	payload:      payload_len bytes
//
// payload is the (optionally compressed) form of body:
//
//	entry_count:  8 bytes big-endian u64
//	repeat entry_count times:
//	    key_len:    4 bytes big-endian u32
//	    key:        key_len bytes
//	    value_len:  4 bytes big-endian u32
//	    value:      value_len bytes
//
// When the checksummed flag is set, the last 8 bytes of body (after
// decompression) are a big-endian XXH3 checksum (see
// internal/checksum) of the entry_count+entries portion that precedes
// it; this is an additive extension beyond the base v1 diagram above,
// gated on flags bit 1, so a file written with the bit clear round-trips
// through a reader that has never heard of checksums.
package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/aalhour/ordkv/internal/checksum"
	"github.com/aalhour/ordkv/internal/compression"
)

const (
	magic            = "KVDB"
	formatVersion    = uint16(1)
	flagCompressed   = uint16(1 << 0)
	flagChecksummed  = uint16(1 << 1)
	headerSize       = 4 + 2 + 2 + 8 // magic + version + flags + payload_len
	entryCountSize   = 8
	lengthPrefixSize = 4
)

// Entry is a single (key, value) pair as stored on disk.
type Entry struct {
	Key   []byte
	Value []byte
}

// ErrFormat indicates a magic/version/flags/length mismatch.
type ErrFormat struct {
	Reason string
}

func (e *ErrFormat) Error() string { return "codec: format error: " + e.Reason }

// ErrDecompression wraps a compression adapter's rejection of a payload.
type ErrDecompression struct {
	Err error
}

func (e *ErrDecompression) Error() string { return "codec: decompression error: " + e.Err.Error() }
func (e *ErrDecompression) Unwrap() error { return e.Err }

// Encode serializes entries (which must already be in forward comparator
// order) into the file format, compressing with c unless c is the
// identity codec, and appending a checksum when withChecksum is true.
func Encode(entries []Entry, c compression.Codec, withChecksum bool) ([]byte, error) {
	body := encodeBody(entries)
	if withChecksum {
		var sumBuf [checksum.Size]byte
		binary.BigEndian.PutUint64(sumBuf[:], checksum.Sum64(body))
		body = append(body, sumBuf[:]...)
	}

	payload := body
	compressed := !compression.IsNone(c)
	if compressed {
		out, err := c.Compress(body)
		if err != nil {
			return nil, fmt.Errorf("codec: compress: %w", err)
		}
		payload = out
	}

	var flags uint16
	if compressed {
		flags |= flagCompressed
	}
	if withChecksum {
		flags |= flagChecksummed
	}

	out := make([]byte, 0, headerSize+len(payload))
	out = append(out, magic...)
	out = binary.BigEndian.AppendUint16(out, formatVersion)
	out = binary.BigEndian.AppendUint16(out, flags)
	out = binary.BigEndian.AppendUint64(out, uint64(len(payload)))
	out = append(out, payload...)
	return out, nil
}

func encodeBody(entries []Entry) []byte {
	size := entryCountSize
	for _, e := range entries {
		size += lengthPrefixSize + len(e.Key) + lengthPrefixSize + len(e.Value)
	}
	body := make([]byte, 0, size)
	body = binary.BigEndian.AppendUint64(body, uint64(len(entries)))
	for _, e := range entries {
		body = binary.BigEndian.AppendUint32(body, uint32(len(e.Key)))
		body = append(body, e.Key...)
		body = binary.BigEndian.AppendUint32(body, uint32(len(e.Value)))
		body = append(body, e.Value...)
	}
	return body
}

// Decode parses the file format produced by Encode, using c to decompress
// the payload if the compressed flag is set.
func Decode(data []byte, c compression.Codec) ([]Entry, error) {
	if len(data) < headerSize {
		return nil, &ErrFormat{Reason: fmt.Sprintf("file too small: %d bytes", len(data))}
	}
	if string(data[:4]) != magic {
		return nil, &ErrFormat{Reason: "bad magic"}
	}
	version := binary.BigEndian.Uint16(data[4:6])
	if version != formatVersion {
		return nil, &ErrFormat{Reason: fmt.Sprintf("unsupported version %d", version)}
	}
	flags := binary.BigEndian.Uint16(data[6:8])
	if unknown := flags &^ (flagCompressed | flagChecksummed); unknown != 0 {
		return nil, &ErrFormat{Reason: fmt.Sprintf("unknown flags %#x", unknown)}
	}
	payloadLen := binary.BigEndian.Uint64(data[8:16])

	rest := data[headerSize:]
	if uint64(len(rest)) != payloadLen {
		return nil, &ErrFormat{Reason: fmt.Sprintf("payload length mismatch: header says %d, got %d", payloadLen, len(rest))}
	}

	body := rest
	if flags&flagCompressed != 0 {
		out, err := c.Decompress(rest)
		if err != nil {
			return nil, &ErrDecompression{Err: err}
		}
		body = out
	}

	if flags&flagChecksummed != 0 {
		if len(body) < checksum.Size {
			return nil, &ErrFormat{Reason: "body too small for checksum trailer"}
		}
		split := len(body) - checksum.Size
		payload, want := body[:split], binary.BigEndian.Uint64(body[split:])
		if got := checksum.Sum64(payload); got != want {
			return nil, &ErrFormat{Reason: fmt.Sprintf("checksum mismatch: want %x, got %x", want, got)}
		}
		body = payload
	}

	return decodeBody(body)
}

func decodeBody(body []byte) ([]Entry, error) {
	if len(body) < entryCountSize {
		return nil, &ErrFormat{Reason: "body too small for entry count"}
	}
	count := binary.BigEndian.Uint64(body[:entryCountSize])
	body = body[entryCountSize:]

	// Each entry needs at least two length prefixes, so a count claiming
	// more entries than the remaining bytes could possibly hold is
	// corrupt. Reject it before allocating: a bogus count (one flipped
	// bit is enough) would otherwise reach make() directly and panic or
	// exhaust memory instead of surfacing as a FormatError.
	if maxEntries := uint64(len(body)) / (2 * lengthPrefixSize); count > maxEntries {
		return nil, &ErrFormat{Reason: fmt.Sprintf("entry count %d exceeds what %d remaining bytes can hold", count, len(body))}
	}

	entries := make([]Entry, 0, count)
	for i := uint64(0); i < count; i++ {
		key, rest, err := readLengthPrefixed(body)
		if err != nil {
			return nil, err
		}
		value, rest2, err := readLengthPrefixed(rest)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: key, Value: value})
		body = rest2
	}
	if len(body) != 0 {
		return nil, &ErrFormat{Reason: fmt.Sprintf("%d trailing bytes after last entry", len(body))}
	}
	return entries, nil
}

func readLengthPrefixed(body []byte) (value, rest []byte, err error) {
	if len(body) < lengthPrefixSize {
		return nil, nil, &ErrFormat{Reason: "truncated length prefix"}
	}
	n := binary.BigEndian.Uint32(body[:lengthPrefixSize])
	body = body[lengthPrefixSize:]
	if uint64(len(body)) < uint64(n) {
		return nil, nil, &ErrFormat{Reason: "truncated field"}
	}
	return body[:n], body[n:], nil
}
