// Package audit provides audit logging infrastructure for bus nodes.
package audit

import (
	"fmt"

	"github.com/kodflow/myconet-bus/internal/domain/config"
	"github.com/kodflow/myconet-bus/internal/domain/logging"
	infralogging "github.com/kodflow/myconet-bus/internal/infrastructure/observability/logging"
)

// FileWriter writes formatted audit lines to a file, rotating it per
// rotation once it grows past the configured size. The rotating
// mechanics (open, rotate, backup renumbering) are delegated entirely
// to the infra logging.Writer; FileWriter only owns text formatting.
type FileWriter struct {
	writer *infralogging.Writer
	format Formatter
}

// NewFileWriter creates a new file writer with rotation support.
//
// Params:
//   - path: the file path.
//   - rotation: the rotation configuration.
//
// Returns:
//   - *FileWriter: the created file writer.
//   - error: nil on success, error on failure.
func NewFileWriter(path string, rotation config.RotationConfig) (*FileWriter, error) {
	streamCfg := config.LogStreamConfig{FilePath: path, RotationConfig: rotation}

	w, err := infralogging.NewWriter(path, &streamCfg)
	if err != nil {
		return nil, fmt.Errorf("opening audit log file: %w", err)
	}

	return &FileWriter{
		writer: w,
		format: NewTextFormatter(""),
	}, nil
}

// Write writes a log event to the file.
//
// Params:
//   - event: the log event to write.
//
// Returns:
//   - error: nil on success, error on failure.
func (w *FileWriter) Write(event logging.LogEvent) error {
	line := w.format.Format(event)
	_, err := w.writer.Write([]byte(line + "\n"))
	return err
}

// Close closes the file.
//
// Returns:
//   - error: nil on success, error on failure.
func (w *FileWriter) Close() error {
	return w.writer.Close()
}

// Ensure FileWriter implements logging.Writer.
var _ logging.Writer = (*FileWriter)(nil)
