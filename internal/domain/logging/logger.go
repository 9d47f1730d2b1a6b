package logging

// Logger is the port interface for the bus's audit trail. Infrastructure
// layer implements this interface to provide logging capabilities.
type Logger interface {
	// Log logs an event directly.
	//
	// Params:
	//   - event: the log event to write.
	Log(event LogEvent)

	// Debug logs a debug-level event.
	//
	// Params:
	//   - node: the node the event concerns (empty for process-wide events).
	//   - kind: the event kind label.
	//   - message: the event message.
	//   - meta: optional metadata.
	Debug(node, kind, message string, meta map[string]any)

	// Info logs an info-level event.
	//
	// Params:
	//   - node: the node the event concerns (empty for process-wide events).
	//   - kind: the event kind label.
	//   - message: the event message.
	//   - meta: optional metadata.
	Info(node, kind, message string, meta map[string]any)

	// Warn logs a warning-level event.
	//
	// Params:
	//   - node: the node the event concerns (empty for process-wide events).
	//   - kind: the event kind label.
	//   - message: the event message.
	//   - meta: optional metadata.
	Warn(node, kind, message string, meta map[string]any)

	// Error logs an error-level event.
	//
	// Params:
	//   - node: the node the event concerns (empty for process-wide events).
	//   - kind: the event kind label.
	//   - message: the event message.
	//   - meta: optional metadata.
	Error(node, kind, message string, meta map[string]any)

	// Close closes the logger and all underlying writers.
	//
	// Returns:
	//   - error: nil on success, error on failure.
	Close() error
}
