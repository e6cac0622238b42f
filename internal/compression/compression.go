// Package compression implements the pluggable payload compression
// adapter: a symmetric compress/decompress transform over opaque byte
// blobs, applied to the persistence codec's whole-store payload rather
// than per-block as in a log-structured merge tree.
//
// Because the codec compresses one complete payload per flush (not many
// small blocks of a known uncompressed size), codecs that self-describe
// their uncompressed length are preferred over the raw block APIs a
// block-oriented store would use: LZ4 here uses pierrec/lz4/v4's
// streaming frame format (which carries its own length/checksum framing)
// rather than the fixed-size block API.
package compression

import (
	"bytes"
	"fmt"
	"io"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec is the compression adapter interface. Decompress(Compress(b))
// must equal b for all b.
type Codec interface {
	// Compress returns the compressed form of data.
	Compress(data []byte) ([]byte, error)

	// Decompress returns the original data from its compressed form, or
	// an error if the payload is not valid for this codec.
	Decompress(data []byte) ([]byte, error)

	// Name identifies the codec, stored nowhere in the wire format itself
	// (the format only tracks "compressed or not") but useful for logging
	// and diagnostics.
	Name() string
}

// noneCodec is the identity codec: no compression.
type noneCodec struct{}

// None returns a no-op codec: the wire format's own compressed-flag bit
// already records whether a transform was applied, so this codec need
// not add a header of its own.
func None() Codec { return noneCodec{} }

func (noneCodec) Compress(data []byte) ([]byte, error)   { return data, nil }
func (noneCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
func (noneCodec) Name() string                           { return "none" }

// IsNone reports whether c is the identity codec. The persistence codec
// uses this to decide whether the wire format's compressed-flag bit
// should be set, since the flag records whether a transform was applied
// rather than naming a specific algorithm.
func IsNone(c Codec) bool {
	_, ok := c.(noneCodec)
	return ok
}

// lz4Codec compresses using LZ4 frame format.
type lz4Codec struct{}

// LZ4 returns the default compression codec: LZ4 via pierrec/lz4/v4's
// frame writer/reader.
func LZ4() Codec { return lz4Codec{} }

func (lz4Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lz4 compress: close: %w", err)
	}
	return buf.Bytes(), nil
}

func (lz4Codec) Decompress(data []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(data))
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	return out, nil
}

func (lz4Codec) Name() string { return "lz4" }

// snappyCodec compresses using Google's Snappy block format.
type snappyCodec struct{}

// Snappy returns a codec backed by github.com/golang/snappy.
func Snappy() Codec { return snappyCodec{} }

func (snappyCodec) Compress(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

func (snappyCodec) Decompress(data []byte) ([]byte, error) {
	out, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("snappy decompress: %w", err)
	}
	return out, nil
}

func (snappyCodec) Name() string { return "snappy" }

// zstdCodec compresses using Zstandard.
type zstdCodec struct {
	level zstd.EncoderLevel
}

// Zstd returns a codec backed by github.com/klauspost/compress/zstd at
// the default speed/ratio tradeoff.
func Zstd() Codec { return zstdCodec{level: zstd.SpeedDefault} }

func (z zstdCodec) Compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(z.level))
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

func (zstdCodec) Decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	defer dec.Close()
	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	return out, nil
}

func (zstdCodec) Name() string { return "zstd" }
