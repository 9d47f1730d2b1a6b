package bus

import (
	"sync"

	domainbus "github.com/kodflow/myconet-bus/internal/domain/bus"
)

// Directory is the process-wide Instance Directory of §4.6: a mapping
// from instance name to bus instance, serialized by a single mutex. A
// default instance named domainbus.DefaultInstanceName exists on first
// reference.
type Directory struct {
	mu        sync.Mutex
	instances map[string]*Instance
}

// NewDirectory builds an empty instance directory.
func NewDirectory() *Directory {
	return &Directory{instances: make(map[string]*Instance)}
}

// GetOrCreate returns the existing instance registered under name, or
// creates, stores and returns a new empty one.
func (d *Directory) GetOrCreate(name string) *Instance {
	d.mu.Lock()
	defer d.mu.Unlock()

	inst, ok := d.instances[name]
	if ok {
		return inst
	}
	inst = NewInstance()
	d.instances[name] = inst
	return inst
}

// Default returns the instance registered under the default instance
// name, creating it on first reference.
func (d *Directory) Default() *Instance {
	return d.GetOrCreate(domainbus.DefaultInstanceName)
}

// Remove drops the instance registered under name and removes every
// node it still holds, so node handles still held by callers observe
// domainbus.InvalidID on subsequent queries; the handles themselves
// remain valid Go pointers until garbage collected.
func (d *Directory) Remove(name string) domainbus.Code {
	d.mu.Lock()
	defer d.mu.Unlock()

	inst, ok := d.instances[name]
	if !ok {
		return domainbus.NotFound
	}
	delete(d.instances, name)
	for _, node := range inst.Registry.Snapshot() {
		inst.RemoveNodeByID(node.ID)
	}
	return domainbus.OK
}

// Count reports how many instances are currently held by the directory,
// primarily useful for tests.
func (d *Directory) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.instances)
}
