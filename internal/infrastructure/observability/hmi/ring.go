// Package hmi provides a live terminal panel for observing a running bus:
// registered nodes and their subscription counts, and a scrolling feed of
// audit events, built on bubbletea/bubbles/lipgloss.
package hmi

import (
	"sync"

	domainlogging "github.com/kodflow/myconet-bus/internal/domain/logging"
)

// defaultRingSize is the default feed ring buffer capacity.
const defaultRingSize int = 200

// eventRing is a thread-safe ring buffer of recent log events, sized to
// bound memory for a long-running panel rather than growing a slice
// forever.
type eventRing struct {
	mu      sync.RWMutex
	entries []domainlogging.LogEvent
	head    int
	count   int
	maxSize int
}

// newEventRing creates a ring buffer with the given capacity, falling
// back to defaultRingSize when size is non-positive.
func newEventRing(size int) *eventRing {
	if size <= 0 {
		size = defaultRingSize
	}
	return &eventRing{
		entries: make([]domainlogging.LogEvent, size),
		maxSize: size,
	}
}

// add appends an event, overwriting the oldest entry once full.
func (r *eventRing) add(evt domainlogging.LogEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tail := (r.head + r.count) % r.maxSize
	r.entries[tail] = evt
	if r.count < r.maxSize {
		r.count++
	} else {
		r.head = (r.head + 1) % r.maxSize
	}
}

// snapshot returns a copy of all buffered events, oldest first.
func (r *eventRing) snapshot() []domainlogging.LogEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domainlogging.LogEvent, 0, r.count)
	for i := range r.count {
		out = append(out, r.entries[(r.head+i)%r.maxSize])
	}
	return out
}
