package bus

import (
	domainbus "github.com/kodflow/myconet-bus/internal/domain/bus"
)

// Instance is a Bus Instance (§3): it owns a registry, a subscription
// graph, a pending table and the delivery engine built over them. It is
// the unit of isolation the Instance Directory maps names to.
type Instance struct {
	Registry *Registry
	Graph    *domainbus.Graph
	Pending  *domainbus.PendingTable
	Engine   *Engine
}

// NewInstance builds an empty, ready-to-use bus instance.
func NewInstance() *Instance {
	registry := NewRegistry()
	graph := domainbus.NewGraph()
	pending := domainbus.NewPendingTable()
	return &Instance{
		Registry: registry,
		Graph:    graph,
		Pending:  pending,
		Engine:   NewEngine(registry, graph, pending),
	}
}

// CreateNode validates and registers a new node, then drains the
// pending table for its name (§4.1). The registry lock is released
// before the drain begins, matching the acquisition order of §5.4.
func (inst *Instance) CreateNode(name string, params domainbus.Params) (*domainbus.Node, domainbus.Code) {
	node, code := inst.Registry.Create(name, params)
	if code != domainbus.OK {
		return nil, code
	}
	inst.Engine.DrainPending(name)
	return node, domainbus.OK
}

// RemoveNode atomically detaches a node from the subscription graph,
// removes it from the registry and purges any pending entries it still
// owns as a subscriber (§4.1). The node's ID is stamped to InvalidID so
// that a caller still holding the *domainbus.Node strong reference
// observes the deregistration (§9) instead of going on reporting a
// stale id.
func (inst *Instance) RemoveNode(name string) domainbus.Code {
	node, code := inst.Registry.RemoveByName(name)
	if code != domainbus.OK {
		return code
	}
	inst.Graph.DetachNode(node.ID)
	inst.Pending.Purge(node.ID)
	node.ID = domainbus.InvalidID
	return domainbus.OK
}

// RemoveNodeByID is the id-keyed counterpart of RemoveNode.
func (inst *Instance) RemoveNodeByID(id uint64) domainbus.Code {
	node, code := inst.Registry.RemoveByID(id)
	if code != domainbus.OK {
		return code
	}
	inst.Graph.DetachNode(node.ID)
	inst.Pending.Purge(node.ID)
	node.ID = domainbus.InvalidID
	return domainbus.OK
}

// NodeCount reports how many nodes are currently registered on the
// instance.
func (inst *Instance) NodeCount() int {
	return inst.Registry.Count()
}
