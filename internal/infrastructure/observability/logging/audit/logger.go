// Package audit provides audit logging infrastructure for bus nodes.
// It implements the domain logging interfaces with multiple output writers.
package audit

import (
	"sync"

	"github.com/kodflow/myconet-bus/internal/domain/logging"
)

// MultiLogger aggregates multiple writers and dispatches events to all of them.
// It implements the logging.Logger interface.
type MultiLogger struct {
	// mu protects concurrent access to the writers slice.
	mu sync.RWMutex
	// writers is the list of writers to dispatch events to.
	writers []logging.Writer
}

// New creates a new MultiLogger with the specified writers.
//
// Params:
//   - writers: the writers to dispatch events to.
//
// Returns:
//   - *MultiLogger: the created multi-logger.
func New(writers ...logging.Writer) *MultiLogger {
	return &MultiLogger{
		writers: writers,
	}
}

// Log logs an event to all writers.
//
// Params:
//   - event: the log event to write.
func (l *MultiLogger) Log(event logging.LogEvent) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, w := range l.writers {
		// Ignore errors from individual writers - best effort logging.
		_ = w.Write(event)
	}
}

// Debug logs a debug-level event.
//
// Params:
//   - node: the node the event concerns (empty for process-wide events).
//   - kind: the event kind label.
//   - message: the event message.
//   - meta: optional metadata.
func (l *MultiLogger) Debug(node, kind, message string, meta map[string]any) {
	event := logging.NewLogEvent(logging.LevelDebug, node, kind, message).
		WithMetadata(meta)
	l.Log(event)
}

// Info logs an info-level event.
//
// Params:
//   - node: the node the event concerns (empty for process-wide events).
//   - kind: the event kind label.
//   - message: the event message.
//   - meta: optional metadata.
func (l *MultiLogger) Info(node, kind, message string, meta map[string]any) {
	event := logging.NewLogEvent(logging.LevelInfo, node, kind, message).
		WithMetadata(meta)
	l.Log(event)
}

// Warn logs a warning-level event.
//
// Params:
//   - node: the node the event concerns (empty for process-wide events).
//   - kind: the event kind label.
//   - message: the event message.
//   - meta: optional metadata.
func (l *MultiLogger) Warn(node, kind, message string, meta map[string]any) {
	event := logging.NewLogEvent(logging.LevelWarn, node, kind, message).
		WithMetadata(meta)
	l.Log(event)
}

// Error logs an error-level event.
//
// Params:
//   - node: the node the event concerns (empty for process-wide events).
//   - kind: the event kind label.
//   - message: the event message.
//   - meta: optional metadata.
func (l *MultiLogger) Error(node, kind, message string, meta map[string]any) {
	event := logging.NewLogEvent(logging.LevelError, node, kind, message).
		WithMetadata(meta)
	l.Log(event)
}

// AddWriter attaches an additional writer to an already-constructed
// logger, so a caller can wire in a writer built after the logger
// itself (e.g. the HMI panel's live feed writer).
//
// Params:
//   - w: the writer to add.
func (l *MultiLogger) AddWriter(w logging.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.writers = append(l.writers, w)
}

// Close closes all writers.
//
// Returns:
//   - error: the first error encountered, or nil if all closed successfully.
func (l *MultiLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var firstErr error
	for _, w := range l.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Ensure MultiLogger implements logging.Logger.
var _ logging.Logger = (*MultiLogger)(nil)
