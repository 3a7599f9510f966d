// Package log provides opt-in debug logging to a file. Nothing is ever
// written to stdout or stderr: stdout carries the status lines and must
// stay clean. Messages logged before SetFile is called are buffered and
// flushed once a destination is known.
package log

import (
	"log"
	"os"
	"sync"
)

type sink struct {
	mu      sync.Mutex
	file    *os.File
	pending []byte
	discard bool
}

var (
	debugSink = &sink{}
	logger    = log.New(debugSink, "", log.LstdFlags|log.Lmicroseconds)
)

// Write implements io.Writer for the standard logger. Output goes to
// the file when one is set, otherwise into the pending buffer.
func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.discard {
		return len(p), nil
	}
	if s.file != nil {
		n, err := s.file.Write(p)
		_ = s.file.Sync()
		return n, err
	}
	s.pending = append(s.pending, p...)
	return len(p), nil
}

// SetFile directs debug output to path, flushing anything buffered so
// far. An empty path discards buffered and future messages.
func SetFile(path string) error {
	debugSink.mu.Lock()
	defer debugSink.mu.Unlock()

	if debugSink.file != nil {
		_ = debugSink.file.Close()
		debugSink.file = nil
	}

	if path == "" {
		debugSink.discard = true
		debugSink.pending = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		debugSink.discard = true
		debugSink.pending = nil
		return err
	}

	debugSink.file = f
	debugSink.discard = false
	if len(debugSink.pending) > 0 {
		_, _ = f.Write(debugSink.pending)
		_ = f.Sync()
		debugSink.pending = nil
	}
	return nil
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	logger.Printf(format, args...)
}

// Close closes the debug log file if one is open.
func Close() error {
	debugSink.mu.Lock()
	defer debugSink.mu.Unlock()

	if debugSink.file == nil {
		return nil
	}
	err := debugSink.file.Close()
	debugSink.file = nil
	return err
}
