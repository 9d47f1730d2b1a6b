package hmi

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kodflow/myconet-bus/internal/infrastructure/observability/events"
)

// Panel is a live terminal view of a running bus instance: a roster of
// registered nodes plus a scrolling feed of audit events. It is driven
// entirely by polling NodeLister and by events delivered to its Writer,
// fanned out through an events.Bus subscription into its ring buffer.
type Panel struct {
	program *tea.Program
	bus     *events.Bus
}

// NewPanel creates a panel that polls lister for the node roster and
// accepts audit events via Writer(). A background goroutine drains the
// panel's own events.Bus subscription into the feed ring for the
// lifetime of the panel; Run's ctx cancellation closes the bus and lets
// that goroutine exit.
//
// Params:
//   - lister: supplies the live node roster on every tick.
//   - feedSize: capacity of the audit event ring buffer and the bus
//     subscription channel (0 for default).
//
// Returns:
//   - *Panel: the created panel, not yet running.
func NewPanel(lister NodeLister, feedSize int) *Panel {
	ring := newEventRing(feedSize)
	m := newModel(lister, ring)
	bus := events.NewBus(events.WithBufferSize(feedSize))

	sub := bus.Subscribe()
	go func() {
		for evt := range sub {
			ring.add(evt)
		}
	}()

	return &Panel{
		program: tea.NewProgram(m, tea.WithAltScreen()),
		bus:     bus,
	}
}

// Writer returns the domain/logging.Writer that feeds this panel's event
// feed. Register it alongside file/console/JSON writers in the audit
// logger's MultiLogger; every event logged anywhere in the process is
// broadcast to this panel's subscription as well as to its other
// writers.
func (p *Panel) Writer() *events.Bus {
	return p.bus
}

// Run blocks until the panel quits (user pressed q/esc/ctrl+c) or ctx is
// canceled.
//
// Params:
//   - ctx: canceled to stop the panel from the outside.
//
// Returns:
//   - error: nil on clean exit, otherwise the bubbletea run error.
func (p *Panel) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		p.program.Quit()
		_ = p.bus.Close()
	}()
	if _, err := p.program.Run(); err != nil {
		return fmt.Errorf("running panel: %w", err)
	}
	return nil
}
