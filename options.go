package ordkv

// options.go implements store configuration.

import (
	"fmt"

	"github.com/aalhour/ordkv/internal/compression"
	"github.com/aalhour/ordkv/internal/logging"
	"github.com/aalhour/ordkv/internal/vfs"
)

// Logger is an alias for the logging.Logger interface, so callers can
// supply their own implementation without importing internal/logging.
type Logger = logging.Logger

// LogLevel is an alias for logging.Level.
type LogLevel = logging.Level

// Log level constants.
const (
	LogLevelError = logging.LevelError
	LogLevelWarn  = logging.LevelWarn
	LogLevelInfo  = logging.LevelInfo
	LogLevelDebug = logging.LevelDebug
)

// Compression identifies a payload compression codec.
type Compression int

const (
	// CompressionNone disables compression.
	CompressionNone Compression = iota
	// CompressionLZ4 compresses with LZ4 (the default).
	CompressionLZ4
	// CompressionSnappy compresses with Snappy.
	CompressionSnappy
	// CompressionZstd compresses with Zstandard.
	CompressionZstd
)

func (c Compression) codec() compression.Codec {
	switch c {
	case CompressionNone:
		return compression.None()
	case CompressionSnappy:
		return compression.Snappy()
	case CompressionZstd:
		return compression.Zstd()
	case CompressionLZ4:
		return compression.LZ4()
	default:
		return compression.LZ4()
	}
}

// FileSystem is an alias for the vfs.FS interface, allowing callers to
// substitute an in-memory or instrumented filesystem in tests.
type FileSystem = vfs.FS

// Options configures a Store. Construct with DefaultOptions and override
// only the fields that matter. Open fills a nil Comparator, FileSystem,
// and Logger via withDefaults; it does not fill Compression or Checksum,
// so a zero Options opens a store with no compression and no checksum.
type Options struct {
	// Path is the file a non-empty store persists to on Flush/Close. An
	// empty Path makes the store in-memory-only: Flush and Close succeed
	// but write nothing, and Open always starts empty.
	Path string

	// Comparator orders keys. Defaults to BytewiseComparator. Must be
	// consistent for the lifetime of a given persisted file: opening an
	// existing file with a different comparator still works, since
	// entries load one at a time and get re-sorted under the new
	// comparator.
	Comparator Comparator

	// Compression selects the payload codec applied on Flush/Close.
	// Defaults to CompressionLZ4.
	Compression Compression

	// Checksum enables the additive integrity checksum trailer on the
	// persisted payload. Defaults to true.
	Checksum bool

	// FileSystem backs all file I/O. Defaults to the real OS filesystem.
	// Tests substitute vfs.NewMemFS().
	FileSystem FileSystem

	// Logger receives diagnostic messages. Defaults to a logger at
	// LogLevelInfo writing to stderr. Pass logging.Discard to silence.
	Logger Logger

	// LogLevel sets the level of the default logger. Ignored if Logger
	// is set explicitly.
	LogLevel LogLevel
}

// DefaultOptions returns an Options with every field set to its default,
// persisting to path. Pass an empty path for an in-memory-only store.
func DefaultOptions(path string) Options {
	return Options{
		Path:        path,
		Comparator:  DefaultComparator(),
		Compression: CompressionLZ4,
		Checksum:    true,
		LogLevel:    LogLevelInfo,
	}
}

// withDefaults fills in any zero-value field left unset by the caller,
// returning a copy safe to use without further nil checks.
func (o Options) withDefaults() Options {
	if o.Comparator == nil {
		o.Comparator = DefaultComparator()
	}
	if o.FileSystem == nil {
		o.FileSystem = vfs.Default()
	}
	if logging.IsNil(o.Logger) {
		o.Logger = logging.NewDefaultLogger(o.LogLevel)
	}
	return o
}

// validate reports a configuration error that withDefaults cannot repair.
func (o Options) validate() error {
	if o.Compression < CompressionNone || o.Compression > CompressionZstd {
		return fmt.Errorf("ordkv: invalid compression value %d", o.Compression)
	}
	return nil
}
