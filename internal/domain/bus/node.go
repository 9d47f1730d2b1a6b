package bus

import (
	"strings"
	"unicode/utf8"
)

// MaxNodeNameLength is the node name length limit, including the
// terminator accounted for by C-style callers of the procedural surface:
// a name may contain at most MaxNodeNameLength-1 characters.
const MaxNodeNameLength int = 64

// DefaultInstanceName is the name of the bus instance created lazily on
// first reference when no explicit instance name is given.
const DefaultInstanceName string = "default"

// DummyNodeName is the reserved name of the sentinel node created by the
// procedural surface on Init. It carries no callback and exists so
// anonymous callers have a legal sender identity for Pull and Notify.
const DummyNodeName string = "__DummyNode__"

// InvalidID is the id observed by any handle whose node has been removed
// from the registry.
const InvalidID uint64 = 0

// DummySenderID is the reserved sender identity used for anonymous Pull
// and Notify calls on surfaces that have no registered dummy node of
// their own (the Object surface's PullAnon). It is fixed and never
// allocated by a Registry, whose ids start at 1 and increment, so it
// can never collide with a real node's id; unlike InvalidID it is never
// confused with the id reported by a handle whose node was removed.
const DummySenderID uint64 = ^uint64(0)

// Flag is a bit in a node's configuration flag set.
type Flag uint8

const (
	// FlagCached means the node retains the last Publish/Publish-Signal
	// payload in a per-node cache, readable via Pull or a synthetic
	// LATCHED delivery.
	FlagCached Flag = 1 << iota
	// FlagNotifySizeCheck means inbound Notify calls must carry exactly
	// NotifySize bytes or are rejected with SizeMismatch.
	FlagNotifySizeCheck
	// FlagLatched means a newly attached subscriber receives one
	// synthetic LATCHED event carrying the publisher's current cache
	// contents, provided FlagCached is also set and the cache is
	// populated. FlagLatched without FlagCached is rejected at creation.
	FlagLatched
)

// Has reports whether the flag set contains f.
func (flags Flag) Has(f Flag) bool {
	return flags&f != 0
}

// flagNames lists every single-bit Flag alongside its canonical
// lowercase topology name, in declaration order.
var flagNames = []struct {
	flag Flag
	name string
}{
	{FlagCached, "cached"},
	{FlagNotifySizeCheck, "notify_size_check"},
	{FlagLatched, "latched"},
}

// String renders the set bits of flags as a comma-joined list of their
// canonical names, e.g. "cached,latched". An empty set renders "".
func (flags Flag) String() string {
	var out string
	for _, fn := range flagNames {
		if flags.Has(fn.flag) {
			if out != "" {
				out += ","
			}
			out += fn.name
		}
	}
	return out
}

// ParseFlag resolves a single topology flag name (case-insensitive) to
// its Flag bit. It is used by the YAML topology loader to translate
// human-authored node definitions into a Params.Flags bitset.
func ParseFlag(name string) (Flag, bool) {
	for _, fn := range flagNames {
		if strings.EqualFold(fn.name, name) {
			return fn.flag, true
		}
	}
	return 0, false
}

// ParseEventKind resolves a topology event kind name (case-insensitive,
// matching EventKind.String) to its EventKind value.
func ParseEventKind(name string) (EventKind, bool) {
	for k := EventPublish; k <= EventLatched; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return 0, false
}

// EventKind identifies the kind of event delivered to a node's callback.
type EventKind uint8

const (
	// EventPublish is delivered to each subscriber of a node that called
	// Publish, carrying the published payload.
	EventPublish EventKind = iota
	// EventPublishSignal is delivered to each subscriber of a node that
	// called Publish-Signal, carrying no payload.
	EventPublishSignal
	// EventPull is delivered to a target node's callback when Pull is
	// invoked against it and the target is not servable from cache.
	EventPull
	// EventNotify is delivered to a target node's callback when Notify
	// is invoked against it.
	EventNotify
	// EventLatched is delivered once, synchronously, to a subscriber
	// that has just attached to a FlagLatched publisher with a
	// populated cache.
	EventLatched
)

// eventKindUnknown is the fallback label for an EventKind outside the
// published vocabulary.
const eventKindUnknown string = "UNKNOWN"

// String returns the canonical short name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPublish:
		return "PUBLISH"
	case EventPublishSignal:
		return "PUBLISH_SIGNAL"
	case EventPull:
		return "PULL"
	case EventNotify:
		return "NOTIFY"
	case EventLatched:
		return "LATCHED"
	default:
		return eventKindUnknown
	}
}

// EventMask is a subset of event kinds a node's callback is willing to
// receive, expressed as a bitset keyed on 1<<EventKind.
type EventMask uint8

// MaskOf builds an EventMask from a list of event kinds.
func MaskOf(kinds ...EventKind) EventMask {
	var m EventMask
	for _, k := range kinds {
		m |= 1 << EventMask(k)
	}
	return m
}

// Has reports whether the mask accepts the given event kind.
func (m EventMask) Has(k EventKind) bool {
	return m&(1<<EventMask(k)) != 0
}

// Callback is the user-supplied receiver invoked synchronously on the
// caller's thread for every event kind present in the node's EventMask.
// Its return value is surfaced to the caller for Pull and Notify, and
// ignored for Publish, Publish-Signal and the synthetic LATCHED
// delivery (§7: "Publish returns OK even if some subscribers' callbacks
// returned errors"). Implementations must not assume any bus lock is
// held and may freely re-enter the bus, including publishing from
// inside the callback.
type Callback func(evt Event) Code

// Event is the descriptor carried to a node's callback for every
// delivery kind.
type Event struct {
	Kind     EventKind
	SenderID uint64
	Receiver uint64
	Payload  []byte
}

// Params describes the configuration of a node at creation time.
type Params struct {
	// PayloadSize is the declared byte length of Publish/Pull payloads.
	// Zero means variable length; variable length is only accepted for
	// non-cached nodes.
	PayloadSize int
	// NotifySize is the declared byte length required for inbound
	// Notify when FlagNotifySizeCheck is set.
	NotifySize int
	// Flags is the configuration flag set drawn from Flag constants.
	Flags Flag
	// EventMask is the subset of event kinds the callback accepts. It
	// is coerced to zero when Callback is nil.
	EventMask EventMask
	// Callback is the user-supplied receiver. May be nil.
	Callback Callback
}

// Validate checks a Params value against the creation-time invariants
// described for create_node, independent of any registry state (name
// uniqueness and length are checked by the registry, which knows the
// full name string).
func (p *Params) Validate() Code {
	if p.Flags.Has(FlagCached) && p.PayloadSize <= 0 {
		return Invalid
	}
	if p.Flags.Has(FlagLatched) && !p.Flags.Has(FlagCached) {
		return Invalid
	}
	if p.Flags.Has(FlagNotifySizeCheck) && p.NotifySize <= 0 {
		return Invalid
	}
	if p.Callback == nil {
		p.EventMask = 0
	}
	return OK
}

// ValidateName checks a node name against the length and emptiness
// invariants shared by every creation path.
func ValidateName(name string) Code {
	if name == "" {
		return Invalid
	}
	if utf8.RuneCountInString(name) >= MaxNodeNameLength {
		return Invalid
	}
	return OK
}

// Node is a registered participant in a bus instance. Name, ID,
// PayloadSize, NotifySize, Flags and Callback are immutable after
// creation; Cache is the sole piece of mutable per-node state and is
// guarded by its own internal lock (see cache.go).
type Node struct {
	ID          uint64
	Name        string
	PayloadSize int
	NotifySize  int
	Flags       Flag
	EventMask   EventMask
	Callback    Callback

	Cache Cache
}

// NewNode builds a Node from validated parameters and an assigned id.
// Callers must have already run Params.Validate and ValidateName.
func NewNode(id uint64, name string, p Params) *Node {
	n := &Node{
		ID:          id,
		Name:        name,
		PayloadSize: p.PayloadSize,
		NotifySize:  p.NotifySize,
		Flags:       p.Flags,
		EventMask:   p.EventMask,
		Callback:    p.Callback,
	}
	if p.Flags.Has(FlagCached) {
		n.Cache = newCache(p.PayloadSize)
	}
	return n
}

// IsCached reports whether the node retains a latched payload cache.
func (n *Node) IsCached() bool {
	return n.Flags.Has(FlagCached)
}

// IsLatched reports whether the node delivers synthetic LATCHED events
// to newly attached subscribers.
func (n *Node) IsLatched() bool {
	return n.Flags.Has(FlagLatched)
}
