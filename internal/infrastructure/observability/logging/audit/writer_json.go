// Package audit provides audit logging infrastructure for bus nodes.
package audit

import (
	"encoding/json"
	"fmt"
	"maps"
	"sync"

	"github.com/kodflow/myconet-bus/internal/domain/config"
	"github.com/kodflow/myconet-bus/internal/domain/logging"
	infralogging "github.com/kodflow/myconet-bus/internal/infrastructure/observability/logging"
)

// JSON entry pool constants.
const (
	// jsonMapInitialCapacity is the pre-allocated capacity for JSON log entries.
	jsonMapInitialCapacity int = 16
)

// jsonMapPool provides reusable map[string]any instances to reduce allocations.
// Maps are cleared before returning to pool.
var jsonMapPool sync.Pool = sync.Pool{
	New: func() any {
		return make(map[string]any, jsonMapInitialCapacity) // Pre-allocate for typical log entries
	},
}

// JSONWriter writes log events as JSON lines to a file, rotating it per
// rotation once it grows past the configured size. Rotation mechanics
// are delegated to the infra logging.Writer; JSONWriter only owns the
// encoding.
type JSONWriter struct {
	mu      sync.Mutex
	writer  *infralogging.Writer
	encoder *json.Encoder
}

// NewJSONWriter creates a new JSON writer with rotation support.
//
// Params:
//   - path: the file path.
//   - rotation: the rotation configuration.
//
// Returns:
//   - *JSONWriter: the created JSON writer.
//   - error: nil on success, error on failure.
func NewJSONWriter(path string, rotation config.RotationConfig) (*JSONWriter, error) {
	streamCfg := config.LogStreamConfig{FilePath: path, RotationConfig: rotation}

	w, err := infralogging.NewWriter(path, &streamCfg)
	if err != nil {
		return nil, fmt.Errorf("opening audit log file: %w", err)
	}

	return &JSONWriter{
		writer:  w,
		encoder: json.NewEncoder(w),
	}, nil
}

// Write writes a log event as a JSON line.
//
// Params:
//   - event: the log event to write.
//
// Returns:
//   - error: nil on success, error on failure.
func (w *JSONWriter) Write(event logging.LogEvent) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Get a pooled map to reduce allocations in hot path.
	pooled := jsonMapPool.Get()
	entry, ok := pooled.(map[string]any)
	if !ok {
		entry = make(map[string]any, jsonMapInitialCapacity)
	}

	entry["ts"] = event.Timestamp.Format("2006-01-02T15:04:05Z07:00")
	entry["level"] = event.Level.String()
	if event.Node != "" {
		entry["node"] = event.Node
	}
	entry["kind"] = event.Kind
	if event.Message != "" {
		entry["message"] = event.Message
	}

	// Flatten metadata into the entry.
	maps.Copy(entry, event.Metadata)

	err := w.encoder.Encode(entry)

	clear(entry)
	jsonMapPool.Put(entry)

	return err
}

// Close closes the file.
//
// Returns:
//   - error: nil on success, error on failure.
func (w *JSONWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.writer.Close()
}

// Ensure JSONWriter implements logging.Writer.
var _ logging.Writer = (*JSONWriter)(nil)
