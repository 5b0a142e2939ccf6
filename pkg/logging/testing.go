package logging

import "bytes"

// NewTestLogger returns a DEBUG-level logger capturing output in the
// returned buffer, for assertions in tests.
func NewTestLogger() (*DefaultLogger, *bytes.Buffer) {
	buf := bytes.NewBufferString("")
	logger := &DefaultLogger{
		writer: buf,
		level:  DEBUG,
	}
	return logger, buf
}

// NewNopLogger returns a logger that discards everything below ERROR and
// writes the rest to a throwaway buffer.
func NewNopLogger() *DefaultLogger {
	return &DefaultLogger{
		writer: bytes.NewBufferString(""),
		level:  ERROR + 1,
	}
}
