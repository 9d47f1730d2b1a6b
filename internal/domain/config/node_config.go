package config

import domainbus "github.com/kodflow/myconet-bus/internal/domain/bus"

// NodeConfig describes one node to register with the bus at startup:
// its creation parameters (minus the callback, which is wired in code,
// not in topology files), the publishers it should subscribe to
// immediately, and its audit logging settings.
type NodeConfig struct {
	// Name is the node's registered name.
	Name string
	// PayloadSize is the declared byte length of Publish/Pull payloads.
	PayloadSize int
	// NotifySize is the declared byte length required for inbound Notify
	// when Flags carries FlagNotifySizeCheck.
	NotifySize int
	// Flags is the configuration flag set, e.g. Flag(cached|latched).
	Flags domainbus.Flag
	// EventMask is the subset of event kinds the node's callback accepts.
	EventMask domainbus.EventMask
	// Subscriptions lists the publisher names to subscribe to on startup,
	// in order. A name that does not yet exist resolves through the
	// pending table rather than failing (§4.4).
	Subscriptions []string
	// Logging is this node's audit logging configuration.
	Logging NodeLogging
}

// Params projects a NodeConfig into the domainbus.Params accepted by
// CreateNode, attaching cb as the callback.
func (n *NodeConfig) Params(cb domainbus.Callback) domainbus.Params {
	return domainbus.Params{
		PayloadSize: n.PayloadSize,
		NotifySize:  n.NotifySize,
		Flags:       n.Flags,
		EventMask:   n.EventMask,
		Callback:    cb,
	}
}
