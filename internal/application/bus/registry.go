// Package bus implements the application-level services of the
// publish/subscribe runtime: the node registry, the delivery engine, a
// bus instance bundling both with the subscription graph and pending
// table, and the process-wide instance directory.
package bus

import (
	"sort"
	"sync"

	domainbus "github.com/kodflow/myconet-bus/internal/domain/bus"
)

// Registry maps node name to node handle and node id to node handle, and
// allocates monotonically increasing ids that are never reused within
// the lifetime of the owning instance (§4.1). All access is serialized
// by mu, the registry_lock of §5.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]*domainbus.Node
	byID    map[uint64]*domainbus.Node
	nextID  uint64
}

// NewRegistry builds an empty registry whose first allocated id is 1;
// zero is reserved as domainbus.InvalidID.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*domainbus.Node),
		byID:   make(map[uint64]*domainbus.Node),
		nextID: 1,
	}
}

// Create validates and inserts a new node under name with the given
// parameters. It does not drain the pending table; callers do that
// after releasing the registry lock (§5.4).
func (r *Registry) Create(name string, params domainbus.Params) (*domainbus.Node, domainbus.Code) {
	if code := domainbus.ValidateName(name); code != domainbus.OK {
		return nil, code
	}
	if code := params.Validate(); code != domainbus.OK {
		return nil, code
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return nil, domainbus.Exist
	}

	id := r.nextID
	r.nextID++

	node := domainbus.NewNode(id, name, params)
	r.byName[name] = node
	r.byID[id] = node

	return node, domainbus.OK
}

// remove deletes node from both the name and the id index. The caller
// must hold r.mu; RemoveByName and RemoveByID are the locked entry points.
func (r *Registry) remove(node *domainbus.Node) {
	delete(r.byName, node.Name)
	delete(r.byID, node.ID)
}

// RemoveByName deletes the node registered under name, returning the
// removed node so the caller can detach it from the subscription graph
// and pending table outside the registry lock.
func (r *Registry) RemoveByName(name string) (*domainbus.Node, domainbus.Code) {
	r.mu.Lock()
	defer r.mu.Unlock()

	node, ok := r.byName[name]
	if !ok {
		return nil, domainbus.NotFound
	}
	r.remove(node)
	return node, domainbus.OK
}

// RemoveByID deletes the node registered under id.
func (r *Registry) RemoveByID(id uint64) (*domainbus.Node, domainbus.Code) {
	r.mu.Lock()
	defer r.mu.Unlock()

	node, ok := r.byID[id]
	if !ok {
		return nil, domainbus.NotFound
	}
	r.remove(node)
	return node, domainbus.OK
}

// LookupByName resolves a node by name. The returned node pointer is a
// point-in-time snapshot of the registry; the caller must hold a strong
// reference for the duration of use (§4.1).
func (r *Registry) LookupByName(name string) (*domainbus.Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	node, ok := r.byName[name]
	return node, ok
}

// LookupByID resolves a node by id.
func (r *Registry) LookupByID(id uint64) (*domainbus.Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	node, ok := r.byID[id]
	return node, ok
}

// Count returns the number of nodes currently registered.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Snapshot returns every currently registered node, ordered by ascending
// id (i.e. registration order). Used by observability tooling such as
// the HMI panel; never used on the delivery hot path.
func (r *Registry) Snapshot() []*domainbus.Node {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nodes := make([]*domainbus.Node, 0, len(r.byID))
	for _, node := range r.byID {
		nodes = append(nodes, node)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	return nodes
}
