// Package bus is the Object surface of the in-process publish/subscribe
// runtime (§6): callers let the library own node storage, working
// through handles returned by GetInstance and Node.
//
// The bus multiplexes structured, fixed-size binary payloads between
// named components of a single process — sensors, controllers,
// actuators, HMI panels, loggers — through four primitives: Publish,
// PublishSignal, Pull and Notify. It is an embedded library, not a
// network service: all traffic stays within one address space.
package bus

import (
	domainbus "github.com/kodflow/myconet-bus/internal/domain/bus"

	appbus "github.com/kodflow/myconet-bus/internal/application/bus"
)

// Code is the stable, signed integer result code returned by every bus
// operation. See the Code constants below for the full vocabulary.
type Code = domainbus.Code

// Result codes. Zero is success; positive values are informational;
// negative values are caller or runtime errors.
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

// Sentinel errors over the failure codes above, for use with
// errors.Is against whatever AsError(code) returns.
var (
	ErrFail           = domainbus.ErrFail
	ErrTimeout        = domainbus.ErrTimeout
	ErrNoMem          = domainbus.ErrNoMem
	ErrNotFound       = domainbus.ErrNotFound
	ErrNoSupport      = domainbus.ErrNoSupport
	ErrBusy           = domainbus.ErrBusy
	ErrInvalid        = domainbus.ErrInvalid
	ErrAccess         = domainbus.ErrAccess
	ErrExist          = domainbus.ErrExist
	ErrNoData         = domainbus.ErrNoData
	ErrInitialized    = domainbus.ErrInitialized
	ErrNotInitialized = domainbus.ErrNotInitialized
	ErrSizeMismatch   = domainbus.ErrSizeMismatch
	ErrNullPointer    = domainbus.ErrNullPointer
)

// Flag configures optional node behavior.
type Flag = domainbus.Flag

// Node configuration flags.
const (
	FlagCached          = domainbus.FlagCached
	FlagNotifySizeCheck = domainbus.FlagNotifySizeCheck
	FlagLatched         = domainbus.FlagLatched
)

// EventKind identifies the kind of event delivered to a callback.
type EventKind = domainbus.EventKind

// Event kinds a node's callback may receive.
const (
	EventPublish       = domainbus.EventPublish
	EventPublishSignal = domainbus.EventPublishSignal
	EventPull          = domainbus.EventPull
	EventNotify        = domainbus.EventNotify
	EventLatched       = domainbus.EventLatched
)

// EventMask is a subset of event kinds a node's callback accepts.
type EventMask = domainbus.EventMask

// MaskOf builds an EventMask from a list of event kinds.
func MaskOf(kinds ...EventKind) EventMask {
	return domainbus.MaskOf(kinds...)
}

// Event is the descriptor carried to a node's callback.
type Event = domainbus.Event

// Callback is the user-supplied event receiver.
type Callback = domainbus.Callback

// Params describes the configuration of a node at creation time.
type Params = domainbus.Params

// MaxNodeNameLength is the node name length limit, including the
// terminator accounted for by C-style callers: a name may contain at
// most MaxNodeNameLength-1 characters.
const MaxNodeNameLength = domainbus.MaxNodeNameLength

// DefaultInstanceName is the instance returned by GetInstance("") and by
// GetInstance(DefaultInstanceName).
const DefaultInstanceName = domainbus.DefaultInstanceName

// DummyNodeName is the reserved name of the anonymous sender node that
// the procedural surface creates on Init. The Object surface registers
// no such node: PullAnon sends as domainbus.DummySenderID.
const DummyNodeName = domainbus.DummyNodeName

// directory is the process-wide instance directory backing every
// package-level Bus returned by GetInstance.
var directory = appbus.NewDirectory()

// Bus is a handle onto one named bus instance. It owns a registry, a
// subscription graph, a pending table and the delivery engine wired
// over them (§3).
type Bus struct {
	name string
	inst *appbus.Instance
}

// GetInstance returns the bus instance registered under name, creating
// it on first reference. An empty name is treated as
// DefaultInstanceName (§4.6).
func GetInstance(name string) *Bus {
	if name == "" {
		name = DefaultInstanceName
	}
	return &Bus{name: name, inst: directory.GetOrCreate(name)}
}

// DeleteInstance drops the instance registered under name. Node handles
// still held by callers continue to observe InvalidID on subsequent
// queries (§4.6).
func DeleteInstance(name string) Code {
	if name == "" {
		name = DefaultInstanceName
	}
	return directory.Remove(name)
}

// Name returns the instance name this handle refers to.
func (b *Bus) Name() string {
	return b.name
}

// NewNode creates and registers a new node under name, draining any
// pending subscriptions that were waiting on it (§4.1, §4.4).
func (b *Bus) NewNode(name string, params Params) (*Node, Code) {
	n, code := b.inst.CreateNode(name, params)
	if code != OK {
		return nil, code
	}
	return &Node{bus: b, node: n}, OK
}

// RemoveNode removes the node registered under name, detaching it from
// the subscription graph and purging its pending subscriptions (§4.1).
func (b *Bus) RemoveNode(name string) Code {
	return b.inst.RemoveNode(name)
}

// RemoveNodeByID is the id-keyed counterpart of RemoveNode.
func (b *Bus) RemoveNodeByID(id uint64) Code {
	return b.inst.RemoveNodeByID(id)
}

// GetNode resolves a node handle by name.
func (b *Bus) GetNode(name string) (*Node, Code) {
	n, ok := b.inst.Registry.LookupByName(name)
	if !ok {
		return nil, NotFound
	}
	return &Node{bus: b, node: n}, OK
}

// GetNodeByID resolves a node handle by id.
func (b *Bus) GetNodeByID(id uint64) (*Node, Code) {
	n, ok := b.inst.Registry.LookupByID(id)
	if !ok {
		return nil, NotFound
	}
	return &Node{bus: b, node: n}, OK
}

// NodeCount reports how many nodes are currently registered on this
// instance.
func (b *Bus) NodeCount() int {
	return b.inst.NodeCount()
}

// NodeInfo is a point-in-time snapshot of one registered node's static
// shape, for observability tooling (e.g. an HMI panel) rather than the
// delivery path.
type NodeInfo struct {
	Name     string
	ID       uint64
	Cached   bool
	Latched  bool
	SubCount int
	PubCount int
}

// ListNodes returns a snapshot of every node currently registered on
// this instance, ordered by registration order (ascending id).
func (b *Bus) ListNodes() []NodeInfo {
	nodes := b.inst.Registry.Snapshot()
	out := make([]NodeInfo, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, NodeInfo{
			Name:     n.Name,
			ID:       n.ID,
			Cached:   n.Flags&domainbus.FlagCached != 0,
			Latched:  n.Flags&domainbus.FlagLatched != 0,
			SubCount: b.inst.Graph.SubCount(n.ID),
			PubCount: b.inst.Graph.PubCount(n.ID),
		})
	}
	return out
}

// PullAnon performs an anonymous pull against the node named target,
// using a reserved dummy sender identity so the call does not require
// the caller to register its own node first. It resolves the same way
// as Node.Pull (cache read when possible, otherwise the target's
// EventPull callback).
func (b *Bus) PullAnon(target string, out []byte) Code {
	t, ok := b.inst.Registry.LookupByName(target)
	if !ok {
		return NotFound
	}
	code, _ := b.inst.Engine.Pull(t, out, domainbus.DummySenderID)
	return code
}
