package bootstrap

import (
	"github.com/kodflow/myconet-bus/bus"
	"github.com/kodflow/myconet-bus/internal/infrastructure/observability/hmi"
)

// busLister adapts a *bus.Bus into hmi.NodeLister, so the panel can poll
// the live roster without the hmi package depending on the bus's public
// API surface.
type busLister struct {
	b *bus.Bus
}

// newBusLister wraps b for HMI polling.
func newBusLister(b *bus.Bus) busLister {
	return busLister{b: b}
}

// ListNodes implements hmi.NodeLister.
func (l busLister) ListNodes() []hmi.NodeStatus {
	nodes := l.b.ListNodes()
	out := make([]hmi.NodeStatus, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, hmi.NodeStatus{
			Name:     n.Name,
			ID:       n.ID,
			Cached:   n.Cached,
			Latched:  n.Latched,
			SubCount: n.SubCount,
			PubCount: n.PubCount,
		})
	}
	return out
}
