// Package logging provides the logging interface and default implementation
// used across ordkv's components.
//
// Design: a four-level interface (Error, Warn, Info, Debug) routed through a
// single level-gated write path, inspired by Badger/Pebble/RocksDB-style
// embedded store loggers. Users can wrap their own structured loggers (slog,
// zap) by implementing Logger.
//
// Log format: YYYY/MM/DD HH:MM:SS LEVEL [component] message
//
// Example: 2026/03/05 18:45:13 INFO [flush] flushed 412 entries to store.kvdb
//
// Component namespace prefixes are used for filtering:
//   - [db]       — storage engine operations (put/get/delete)
//   - [batch]    — batch commit/rollback/savepoint operations
//   - [persist]  — persistence codec load/flush
//   - [flush]    — flush scheduling and atomic replace
//   - [snapshot] — snapshot creation
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"reflect"
)

// Level represents the logging level.
type Level int

const (
	// LevelError logs only errors.
	LevelError Level = iota
	// LevelWarn logs warnings and errors.
	LevelWarn
	// LevelInfo logs info, warnings, and errors.
	LevelInfo
	// LevelDebug logs everything including debug messages.
	LevelDebug
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Logger defines the interface used for ordkv's internal logging.
//
// Concurrency: DefaultLogger and Discard are safe for concurrent use.
// User-provided Logger implementations MUST be safe for concurrent use.
type Logger interface {
	Errorf(format string, args ...any)
	Warnf(format string, args ...any)
	Infof(format string, args ...any)
	Debugf(format string, args ...any)
}

// DefaultLogger is the default logger: it writes level-gated, namespaced
// messages to an io.Writer via the standard log package. It is stateless
// beyond its level and is safe for concurrent use (log.Logger is
// thread-safe). Level is read-only after construction — create a new
// logger to change level.
type DefaultLogger struct {
	out   *log.Logger
	level Level
}

// NewDefaultLogger creates a new default logger at the given level,
// writing to stderr.
func NewDefaultLogger(level Level) *DefaultLogger {
	return NewLogger(os.Stderr, level)
}

// NewLogger creates a new logger writing to w at the given level.
func NewLogger(w io.Writer, level Level) *DefaultLogger {
	return &DefaultLogger{out: log.New(w, "", log.LstdFlags), level: level}
}

// Level returns the logging level.
func (l *DefaultLogger) Level() Level {
	return l.level
}

// write emits msg if at is enabled at l's configured level.
func (l *DefaultLogger) write(at Level, format string, args ...any) {
	if l.level < at {
		return
	}
	_ = l.out.Output(3, at.String()+" "+fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error message.
func (l *DefaultLogger) Errorf(format string, args ...any) { l.write(LevelError, format, args...) }

// Warnf logs a formatted warning message.
func (l *DefaultLogger) Warnf(format string, args ...any) { l.write(LevelWarn, format, args...) }

// Infof logs a formatted informational message.
func (l *DefaultLogger) Infof(format string, args ...any) { l.write(LevelInfo, format, args...) }

// Debugf logs a formatted debug message.
func (l *DefaultLogger) Debugf(format string, args ...any) { l.write(LevelDebug, format, args...) }

// Namespace prefixes for log messages. Use with fmt.Sprintf to add
// component context to a message.
const (
	// NSDB is the namespace for storage engine operations.
	NSDB = "[db] "
	// NSBatch is the namespace for batch commit/rollback operations.
	NSBatch = "[batch] "
	// NSPersist is the namespace for persistence codec load/flush.
	NSPersist = "[persist] "
	// NSFlush is the namespace for flush scheduling.
	NSFlush = "[flush] "
	// NSSnapshot is the namespace for snapshot creation/release.
	NSSnapshot = "[snapshot] "
)

// IsNil returns true if the logger is nil or a typed-nil.
//
//	var l *MyLogger = nil
//	opts.Logger = l  // Interface is not nil, but underlying pointer is
func IsNil(l Logger) bool {
	if l == nil {
		return true
	}
	v := reflect.ValueOf(l)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// OrDefault returns l if it is valid (non-nil and not typed-nil), otherwise
// the discard logger. This ensures a configured logger is never nil.
func OrDefault(l Logger) Logger {
	if IsNil(l) {
		return Discard
	}
	return l
}
