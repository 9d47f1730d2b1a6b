// Package procedural is the Procedural surface of the in-process
// publish/subscribe runtime (§6): callers allocate node storage
// themselves as a Node value, then hand it to this package's functions
// to configure, register and operate on it. Every operation returns a
// signed integer Code; there is no out-of-band error channel.
//
// A single procedural machine is process-wide, guarded by Init/Deinit.
// A reserved dummy node (DummyNodeName) is created on Init and serves
// as a legal anonymous sender for Pull and Notify.
package procedural

import (
	"sync"

	appbus "github.com/kodflow/myconet-bus/internal/application/bus"
	domainbus "github.com/kodflow/myconet-bus/internal/domain/bus"
)

// Code is the stable, signed integer result code shared with the
// Object surface.
type Code = domainbus.Code

// Result codes.
const (
	OK             = domainbus.OK
	Pending        = domainbus.Pending
	CachePulled    = domainbus.CachePulled
	Fail           = domainbus.Fail
	Timeout        = domainbus.Timeout
	NoMem          = domainbus.NoMem
	NotFound       = domainbus.NotFound
	NoSupport      = domainbus.NoSupport
	Busy           = domainbus.Busy
	Invalid        = domainbus.Invalid
	Access         = domainbus.Access
	Exist          = domainbus.Exist
	NoData         = domainbus.NoData
	Initialized    = domainbus.Initialized
	NotInitialized = domainbus.NotInitialized
	SizeMismatch   = domainbus.SizeMismatch
	NullPointer    = domainbus.NullPointer
)

// Flag, EventKind, EventMask, Event, Callback and Params mirror the
// Object surface's vocabulary exactly; both surfaces share one domain
// model.
type (
	Flag      = domainbus.Flag
	EventKind = domainbus.EventKind
	EventMask = domainbus.EventMask
	Event     = domainbus.Event
	Callback  = domainbus.Callback
	Params    = domainbus.Params
)

const (
	FlagCached          = domainbus.FlagCached
	FlagNotifySizeCheck = domainbus.FlagNotifySizeCheck
	FlagLatched         = domainbus.FlagLatched

	EventPublish       = domainbus.EventPublish
	EventPublishSignal = domainbus.EventPublishSignal
	EventPull          = domainbus.EventPull
	EventNotify        = domainbus.EventNotify
	EventLatched       = domainbus.EventLatched
)

// MaskOf builds an EventMask from a list of event kinds.
func MaskOf(kinds ...EventKind) EventMask {
	return domainbus.MaskOf(kinds...)
}

// MaxNodeNameLength is the node name length limit, including the
// terminator: a name may contain at most MaxNodeNameLength-1 characters.
const MaxNodeNameLength = domainbus.MaxNodeNameLength

// DummyNodeName is the reserved sentinel node created on Init.
const DummyNodeName = domainbus.DummyNodeName

// Node is caller-allocated storage for one bus participant. The zero
// value is a valid, unregistered node. Fields are only ever mutated by
// this package's functions; callers should treat them as opaque.
type Node struct {
	name       string
	params     Params
	id         uint64
	registered bool
}

// Name returns the node's configured name, valid after InitNode.
func (n *Node) Name() string {
	return n.name
}

// ID returns the node's assigned id, valid after PushBackNode.
func (n *Node) ID() uint64 {
	return n.id
}

// machine is the process-wide procedural state, analogous to the
// single global instance a C translation unit would keep in a static
// variable.
type machine struct {
	mu          sync.Mutex
	initialized bool
	inst        *appbus.Instance
	dummy       *domainbus.Node
}

var m machine

// Init brings up the procedural machine: it allocates a fresh bus
// instance and registers the reserved dummy node. Calling Init twice
// without an intervening Deinit returns Initialized.
func Init() Code {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return Initialized
	}

	m.inst = appbus.NewInstance()
	dummy, code := m.inst.CreateNode(DummyNodeName, Params{})
	if code != OK {
		return code
	}
	m.dummy = dummy
	m.initialized = true
	return OK
}

// Deinit tears down the procedural machine, discarding every node
// still registered on it.
func Deinit() Code {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return NotInitialized
	}
	m.inst = nil
	m.dummy = nil
	m.initialized = false
	return OK
}

func requireInit() (*appbus.Instance, Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return nil, NotInitialized
	}
	return m.inst, OK
}

// dummySenderID returns the reserved dummy node's id, the sender
// identity used for anonymous Pull and Notify calls.
func dummySenderID() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dummy == nil {
		return domainbus.InvalidID
	}
	return m.dummy.ID
}

// NodeCount reports how many nodes are currently registered, including
// the reserved dummy node.
func NodeCount() int {
	inst, code := requireInit()
	if code != OK {
		return 0
	}
	return inst.NodeCount()
}

// SearchByName resolves a node's id by name.
func SearchByName(name string) (uint64, Code) {
	inst, code := requireInit()
	if code != OK {
		return domainbus.InvalidID, code
	}
	n, ok := inst.Registry.LookupByName(name)
	if !ok {
		return domainbus.InvalidID, NotFound
	}
	return n.ID, OK
}

// ErrorString returns the canonical short name of code, or "Unknown"
// for any value outside the published vocabulary.
func ErrorString(code Code) string {
	return code.String()
}

// InitNode configures a caller-allocated Node value with a name and
// parameters. It validates the name and parameters but does not make
// the node visible to the bus; call PushBackNode to register it.
func InitNode(n *Node, name string, params Params) Code {
	if n == nil {
		return NullPointer
	}
	if code := domainbus.ValidateName(name); code != OK {
		return code
	}
	if code := params.Validate(); code != OK {
		return code
	}
	n.name = name
	n.params = params
	n.registered = false
	n.id = domainbus.InvalidID
	return OK
}

// DeinitNode clears a caller-allocated Node value back to its zero
// state. If the node is still registered, callers should RemoveNode
// first; DeinitNode does not touch the bus.
func DeinitNode(n *Node) Code {
	if n == nil {
		return NullPointer
	}
	*n = Node{}
	return OK
}

// PushBackNode registers a previously initialized Node with the bus,
// assigning it an id and draining any pending subscriptions waiting on
// its name (§4.1, §4.4).
func PushBackNode(n *Node) Code {
	if n == nil {
		return NullPointer
	}
	inst, code := requireInit()
	if code != OK {
		return code
	}
	if n.registered {
		return Exist
	}

	node, code := inst.CreateNode(n.name, n.params)
	if code != OK {
		return code
	}
	n.id = node.ID
	n.registered = true
	return OK
}

// RemoveNode deregisters n from the bus, detaching it from the
// subscription graph and purging its pending subscriptions.
func RemoveNode(n *Node) Code {
	if n == nil {
		return NullPointer
	}
	inst, code := requireInit()
	if code != OK {
		return code
	}
	if !n.registered {
		return NotFound
	}
	if code := inst.RemoveNodeByID(n.id); code != OK {
		return code
	}
	n.registered = false
	n.id = domainbus.InvalidID
	return OK
}

// PubCount reports how many publishers n subscribes to.
func PubCount(n *Node) (int, Code) {
	inst, code := requireInit()
	if code != OK {
		return 0, code
	}
	if !n.registered {
		return 0, NotFound
	}
	return inst.Graph.PubCount(n.id), OK
}

// SubCount reports how many subscribers are attached to n.
func SubCount(n *Node) (int, Code) {
	inst, code := requireInit()
	if code != OK {
		return 0, code
	}
	if !n.registered {
		return 0, NotFound
	}
	return inst.Graph.SubCount(n.id), OK
}

// Subscribe attaches n to the publisher named pubName.
func Subscribe(n *Node, pubName string) Code {
	inst, sub, code := resolveRegistered(n)
	if code != OK {
		return code
	}
	return inst.Engine.Subscribe(sub, pubName)
}

// Unsubscribe detaches n from the publisher named pubName.
func Unsubscribe(n *Node, pubName string) Code {
	inst, sub, code := resolveRegistered(n)
	if code != OK {
		return code
	}
	return inst.Engine.Unsubscribe(sub, pubName)
}

// Publish delivers buf to every subscriber of n that accepts
// EventPublish.
func Publish(n *Node, buf []byte) Code {
	inst, sender, code := resolveRegistered(n)
	if code != OK {
		return code
	}
	return inst.Engine.Publish(sender, buf)
}

// PublishSignal delivers a zero-length EventPublishSignal to every
// subscriber of n that accepts it.
func PublishSignal(n *Node, buf []byte) Code {
	inst, sender, code := resolveRegistered(n)
	if code != OK {
		return code
	}
	return inst.Engine.PublishSignal(sender, buf)
}

// Pull reads from the node named target into out, on behalf of sender
// n. Passing nil uses the reserved dummy node as an anonymous sender,
// matching the original implementation's pull_anon behavior.
func Pull(n *Node, target string, out []byte) Code {
	inst, code := requireInit()
	if code != OK {
		return code
	}
	senderID := dummySenderID()
	if n != nil {
		if !n.registered {
			return NotFound
		}
		senderID = n.id
	}
	t, ok := inst.Registry.LookupByName(target)
	if !ok {
		return NotFound
	}
	code, _ = inst.Engine.Pull(t, out, senderID)
	return code
}

// Notify invokes the EventNotify callback of the node named target, on
// behalf of sender n. Passing nil uses the reserved dummy node.
func Notify(n *Node, target string, buf []byte) Code {
	inst, code := requireInit()
	if code != OK {
		return code
	}
	senderID := dummySenderID()
	if n != nil {
		if !n.registered {
			return NotFound
		}
		senderID = n.id
	}
	t, ok := inst.Registry.LookupByName(target)
	if !ok {
		return NotFound
	}
	return inst.Engine.Notify(t, buf, senderID)
}

// resolveRegistered fetches the live instance and the domain node
// behind a caller-allocated, already-registered Node handle.
func resolveRegistered(n *Node) (*appbus.Instance, *domainbus.Node, Code) {
	inst, code := requireInit()
	if code != OK {
		return nil, nil, code
	}
	if n == nil {
		return nil, nil, NullPointer
	}
	if !n.registered {
		return nil, nil, NotFound
	}
	node, ok := inst.Registry.LookupByID(n.id)
	if !ok {
		return nil, nil, NotFound
	}
	return inst, node, OK
}
