package logging

// discardLogger is a no-op logger that drops every message. Useful for
// benchmarks and callers that don't want diagnostic output.
type discardLogger struct{}

// Discard is the singleton discard logger.
var Discard Logger = discardLogger{}

func (discardLogger) Errorf(format string, args ...any) {}
func (discardLogger) Warnf(format string, args ...any)  {}
func (discardLogger) Infof(format string, args ...any)  {}
func (discardLogger) Debugf(format string, args ...any) {}
