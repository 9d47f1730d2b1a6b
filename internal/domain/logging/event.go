// Package logging provides domain types for the bus's audit trail: one
// LogEvent per Publish, Publish-Signal, Pull and Notify delivery, plus
// the process-wide "bus_started" event bootstrap emits once the
// topology is registered.
package logging

import "time"

// defaultMetadataCapacity is the initial capacity for metadata maps.
// Preallocated for typical 2-4 metadata entries to reduce allocations.
const defaultMetadataCapacity int = 4

// LogEvent is one audit record: a single node-scoped occurrence on the
// bus, carrying enough context to reconstruct what happened without
// replaying the delivery itself.
type LogEvent struct {
	// Timestamp is when the event occurred.
	Timestamp time.Time
	// Level is the severity level.
	Level Level
	// Node is the name of the node the event concerns (empty for
	// process-wide events with no single node, e.g. "bus_started").
	Node string
	// Kind labels the occurrence, e.g. the bus EventKind it originates
	// from ("PUBLISH", "PULL", "NOTIFY") or a lifecycle label such as
	// "bus_started".
	Kind string
	// Message is a human-readable description.
	Message string
	// Metadata contains additional event data (payload size, sender id,
	// error, etc.).
	Metadata map[string]any
}

// NewLogEvent creates a new LogEvent with the current timestamp.
//
// Params:
//   - level: the severity level.
//   - node: the node the event concerns (empty for process-wide events).
//   - kind: the event kind label.
//   - message: the event message.
//
// Returns:
//   - LogEvent: the created event.
func NewLogEvent(level Level, node, kind, message string) LogEvent {
	// Create event with preallocated metadata map.
	return LogEvent{
		Timestamp: time.Now(),
		Level:     level,
		Node:      node,
		Kind:      kind,
		Message:   message,
		Metadata:  make(map[string]any, defaultMetadataCapacity),
	}
}

// WithMeta returns a copy of the event with the specified metadata key-value pair added.
//
// Params:
//   - key: the metadata key.
//   - value: the metadata value.
//
// Returns:
//   - LogEvent: the event with the added metadata.
func (e LogEvent) WithMeta(key string, value any) LogEvent {
	// Create a copy of metadata to avoid mutating the original.
	newMeta := make(map[string]any, len(e.Metadata)+1)
	// Copy existing metadata.
	for k, v := range e.Metadata {
		newMeta[k] = v
	}
	newMeta[key] = value

	// Return new event with updated metadata.
	return LogEvent{
		Timestamp: e.Timestamp,
		Level:     e.Level,
		Node:      e.Node,
		Kind:      e.Kind,
		Message:   e.Message,
		Metadata:  newMeta,
	}
}

// WithMetadata returns a copy of the event with all specified metadata added.
//
// Params:
//   - meta: the metadata map to add.
//
// Returns:
//   - LogEvent: the event with the added metadata.
func (e LogEvent) WithMetadata(meta map[string]any) LogEvent {
	// Return unchanged if no metadata to add.
	if meta == nil {
		// No changes needed.
		return e
	}

	// Create a copy of metadata to avoid mutating the original.
	newMeta := make(map[string]any, len(e.Metadata)+len(meta))
	// Copy existing metadata.
	for k, v := range e.Metadata {
		newMeta[k] = v
	}
	// Merge new metadata.
	for k, v := range meta {
		newMeta[k] = v
	}

	// Return new event with merged metadata.
	return LogEvent{
		Timestamp: e.Timestamp,
		Level:     e.Level,
		Node:      e.Node,
		Kind:      e.Kind,
		Message:   e.Message,
		Metadata:  newMeta,
	}
}
