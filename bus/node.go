package bus

import (
	domainbus "github.com/kodflow/myconet-bus/internal/domain/bus"
)

// Node is a handle onto one registered node. All operations delegate to
// the owning Bus's delivery engine; the handle itself carries no mutex
// of its own, mirroring §4.2's description of the node as a thin
// wrapper around registry and cache state.
type Node struct {
	bus  *Bus
	node *domainbus.Node
}

// MyID returns the node's assigned id.
func (n *Node) MyID() uint64 {
	return n.node.ID
}

// Name returns the node's registered name.
func (n *Node) Name() string {
	return n.node.Name
}

// Subscribe attaches this node to the publisher named pubName. It
// returns Pending if pubName does not resolve yet; the subscription
// becomes live automatically once a node with that name is created
// (§4.3, §4.4).
func (n *Node) Subscribe(pubName string) Code {
	return n.bus.inst.Engine.Subscribe(n.node, pubName)
}

// Unsubscribe detaches this node from the publisher named pubName.
func (n *Node) Unsubscribe(pubName string) Code {
	return n.bus.inst.Engine.Unsubscribe(n.node, pubName)
}

// UnsubscribeID detaches this node from the publisher identified by
// pubID.
func (n *Node) UnsubscribeID(pubID uint64) Code {
	return n.bus.inst.Engine.UnsubscribeID(n.node, pubID)
}

// Publish delivers buf to every subscriber that accepts EventPublish,
// updating this node's cache first if it is FlagCached (§4.5).
func (n *Node) Publish(buf []byte) Code {
	return n.bus.inst.Engine.Publish(n.node, buf)
}

// PublishSignal delivers a zero-length EventPublishSignal to every
// subscriber that accepts it (§4.5).
func (n *Node) PublishSignal(buf []byte) Code {
	return n.bus.inst.Engine.PublishSignal(n.node, buf)
}

// Pull reads from the node named target, preferring its cache when
// possible and falling back to its EventPull callback (§4.5).
func (n *Node) Pull(target string, out []byte) Code {
	t, ok := n.bus.inst.Registry.LookupByName(target)
	if !ok {
		return NotFound
	}
	code, _ := n.bus.inst.Engine.Pull(t, out, n.node.ID)
	return code
}

// PullByID is the id-keyed counterpart of Pull.
func (n *Node) PullByID(targetID uint64, out []byte) Code {
	t, ok := n.bus.inst.Registry.LookupByID(targetID)
	if !ok {
		return NotFound
	}
	code, _ := n.bus.inst.Engine.Pull(t, out, n.node.ID)
	return code
}

// Notify invokes the EventNotify callback of the node named target
// (§4.5).
func (n *Node) Notify(target string, buf []byte) Code {
	t, ok := n.bus.inst.Registry.LookupByName(target)
	if !ok {
		return NotFound
	}
	return n.bus.inst.Engine.Notify(t, buf, n.node.ID)
}

// NotifyByID is the id-keyed counterpart of Notify.
func (n *Node) NotifyByID(targetID uint64, buf []byte) Code {
	t, ok := n.bus.inst.Registry.LookupByID(targetID)
	if !ok {
		return NotFound
	}
	return n.bus.inst.Engine.Notify(t, buf, n.node.ID)
}

// SubCount reports how many subscribers are attached to this node.
func (n *Node) SubCount() int {
	return n.bus.inst.Graph.SubCount(n.node.ID)
}

// PubCount reports how many publishers this node subscribes to.
func (n *Node) PubCount() int {
	return n.bus.inst.Graph.PubCount(n.node.ID)
}
