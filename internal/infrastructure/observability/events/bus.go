// Package events provides a fan-out log event bus used to drive the HMI
// live panel from the audit logging stream.
package events

import (
	"sync"

	"github.com/kodflow/myconet-bus/internal/domain/logging"
)

const (
	// defaultBufferSize is the default channel buffer size for subscribers.
	defaultBufferSize int = 64
)

// Bus fans out log events to any number of subscribers. It implements
// logging.Writer so it can be registered alongside file/console/JSON
// writers: every event written to the bus is also broadcast live to
// any channel obtained via Subscribe, e.g. the HMI panel's event feed.
//
// Events are sent non-blocking; slow subscribers may miss events.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[<-chan logging.LogEvent]chan logging.LogEvent
	bufferSize  int
	closed      bool
}

// BusOption configures Bus behavior.
type BusOption func(*Bus)

// WithBufferSize sets the subscriber channel buffer size.
//
// Params:
//   - size: buffer size for subscriber channels (default: 64)
//
// Returns:
//   - BusOption: configuration option
func WithBufferSize(size int) BusOption {
	// Return closure that applies buffer size configuration.
	return func(b *Bus) {
		// Only apply if size is positive to maintain default behavior.
		if size > 0 {
			b.bufferSize = size
		}
	}
}

// NewBus creates a new event bus.
//
// Params:
//   - opts: optional configuration options
//
// Returns:
//   - *Bus: new event bus instance
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{
		subscribers: make(map[<-chan logging.LogEvent]chan logging.LogEvent, 0),
		bufferSize:  defaultBufferSize,
	}
	// Apply all provided options to configure the bus.
	for _, opt := range opts {
		opt(b)
	}

	// Return the fully configured bus instance.
	return b
}

// Write broadcasts a log event to all subscribers (non-blocking; drops if
// buffer full). It implements logging.Writer so the bus can be wired in
// as just another writer alongside file/console/JSON writers.
//
// Params:
//   - event: the log event to broadcast
//
// Returns:
//   - error: always nil; the bus never fails a write
func (b *Bus) Write(event logging.LogEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	// Skip publishing if bus is already closed.
	if b.closed {
		// Silently return when closed to avoid panic.
		return nil
	}

	// Send event to all active subscribers.
	for _, ch := range b.subscribers {
		select {
		case ch <- event:
			// Event sent successfully to this subscriber.
		default:
			// Subscriber buffer full; drop event to avoid blocking.
		}
	}

	return nil
}

// Subscribe creates a new subscription channel that receives events until Unsubscribe or Close.
//
// Returns:
//   - <-chan logging.LogEvent: channel for receiving events
func (b *Bus) Subscribe() <-chan logging.LogEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Return a closed channel if the bus is already closed.
	if b.closed {
		ch := make(chan logging.LogEvent)
		close(ch)

		// Return closed channel to signal bus is unavailable.
		return ch
	}

	// Create new subscriber channel with configured buffer size.
	ch := make(chan logging.LogEvent, b.bufferSize)
	b.subscribers[ch] = ch

	// Return the new subscription channel.
	return ch
}

// Unsubscribe removes a subscription (idempotent; safe with unknown channels).
//
// Params:
//   - ch: the subscription channel to remove
func (b *Bus) Unsubscribe(ch <-chan logging.LogEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Close and remove the subscription if it exists.
	if writeCh, ok := b.subscribers[ch]; ok {
		delete(b.subscribers, ch)
		close(writeCh)
	}
}

// Close shuts down the event bus and closes all subscriber channels (Write becomes a no-op).
//
// Returns:
//   - error: always nil
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Prevent multiple close operations.
	if b.closed {
		// Already closed, nothing to do.
		return nil
	}

	// Mark bus as closed and close all subscriber channels.
	b.closed = true

	// Iterate over all subscribers to close and remove them.
	for readCh, writeCh := range b.subscribers {
		delete(b.subscribers, readCh)
		close(writeCh)
	}

	return nil
}

// SubscriberCount returns the current number of subscribers.
//
// Returns:
//   - int: number of active subscribers
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	// Return the count of active subscribers.
	return len(b.subscribers)
}

// compile-time interface check
var _ logging.Writer = (*Bus)(nil)
