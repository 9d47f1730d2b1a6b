package bus

import (
	domainbus "github.com/kodflow/myconet-bus/internal/domain/bus"
)

// Engine is the Delivery Engine of §4.5: it implements Subscribe,
// Unsubscribe, Publish, Publish-Signal, Pull and Notify on top of a
// Registry, Graph and PendingTable, observing the lock acquisition order
// of §5 (registry_lock, then graph_lock, then pending_lock, then
// cache_lock; callbacks always run with no bus lock held).
type Engine struct {
	registry *Registry
	graph    *domainbus.Graph
	pending  *domainbus.PendingTable
}

// NewEngine builds a delivery engine over the given registry, graph and
// pending table. The three collaborators are shared with the owning
// Instance so Registry.Create can trigger a pending-table drain after
// insertion (§4.1, §4.4).
func NewEngine(registry *Registry, graph *domainbus.Graph, pending *domainbus.PendingTable) *Engine {
	return &Engine{registry: registry, graph: graph, pending: pending}
}

// Subscribe attaches subID to the publisher named pubName. It resolves
// the publisher via the registry (released before the graph is
// touched), defers to the pending table when unresolved, and delivers
// one synthetic LATCHED event when the publisher is FlagLatched with a
// populated cache and the subscriber's mask accepts it (§4.3).
func (e *Engine) Subscribe(sub *domainbus.Node, pubName string) domainbus.Code {
	if !sub.EventMask.Has(domainbus.EventPublish) &&
		!sub.EventMask.Has(domainbus.EventPublishSignal) &&
		!sub.EventMask.Has(domainbus.EventLatched) {
		return domainbus.NoSupport
	}

	pub, ok := e.registry.LookupByName(pubName)
	if !ok {
		e.pending.Enqueue(sub.ID, pubName)
		return domainbus.Pending
	}

	code := e.graph.Add(sub.ID, pub.ID)
	if code != domainbus.OK {
		return code
	}

	e.deliverLatchedOnSubscribe(sub, pub)
	return domainbus.OK
}

// deliverLatchedOnSubscribe performs the synthetic LATCHED delivery
// described in §4.3, after the graph lock has been released, reading
// the publisher's cache under its own reader lock.
func (e *Engine) deliverLatchedOnSubscribe(sub, pub *domainbus.Node) {
	if !pub.IsLatched() || sub.Callback == nil || !sub.EventMask.Has(domainbus.EventLatched) {
		return
	}
	payload, ok := pub.Cache.Snapshot()
	if !ok {
		return
	}
	sub.Callback(domainbus.Event{
		Kind:     domainbus.EventLatched,
		SenderID: pub.ID,
		Receiver: sub.ID,
		Payload:  payload,
	})
}

// invoke calls a node's callback, tolerating a nil callback for nodes
// whose EventMask has already been coerced to empty (node.go's
// Params.Validate).
func invoke(cb domainbus.Callback, evt domainbus.Event) domainbus.Code {
	if cb == nil {
		return domainbus.OK
	}
	return cb(evt)
}

// Unsubscribe detaches sub from the publisher named pubName.
func (e *Engine) Unsubscribe(sub *domainbus.Node, pubName string) domainbus.Code {
	pub, ok := e.registry.LookupByName(pubName)
	if !ok {
		return domainbus.NotFound
	}
	return e.graph.Remove(sub.ID, pub.ID)
}

// UnsubscribeID detaches sub from the publisher identified by pubID.
func (e *Engine) UnsubscribeID(sub *domainbus.Node, pubID uint64) domainbus.Code {
	return e.graph.Remove(sub.ID, pubID)
}

// DrainPending reissues, on behalf of each still-existing subscriber,
// a Subscribe call for every pending entry naming the just-registered
// node. It is invoked by Instance.CreateNode immediately after
// insertion, with the registry lock already released (§4.1, §4.4).
func (e *Engine) DrainPending(name string) {
	for _, subID := range e.pending.Drain(name) {
		sub, ok := e.registry.LookupByID(subID)
		if !ok {
			continue
		}
		e.Subscribe(sub, name)
	}
}

// Publish delivers buf to every subscriber of sender that accepts
// EventPublish. If sender is FlagCached, buf is copied into its cache
// before the subscriber snapshot is taken. Publish always returns OK
// once the payload size has been validated; individual subscriber
// callback behavior is never surfaced to the caller (§4.5, §7).
func (e *Engine) Publish(sender *domainbus.Node, buf []byte) domainbus.Code {
	if sender.PayloadSize > 0 && len(buf) != sender.PayloadSize {
		return domainbus.SizeMismatch
	}
	if sender.IsCached() {
		sender.Cache.Write(buf)
	}
	e.dispatch(sender, domainbus.EventPublish, buf)
	return domainbus.OK
}

// PublishSignal delivers a zero-length EventPublishSignal to every
// subscriber of sender that accepts it. Cache update behavior matches
// Publish: the payload is still retained in the cache if sender is
// FlagCached, even though subscribers receive no bytes (§4.5).
func (e *Engine) PublishSignal(sender *domainbus.Node, buf []byte) domainbus.Code {
	if sender.PayloadSize > 0 && len(buf) != sender.PayloadSize {
		return domainbus.SizeMismatch
	}
	if sender.IsCached() {
		sender.Cache.Write(buf)
	}
	e.dispatch(sender, domainbus.EventPublishSignal, nil)
	return domainbus.OK
}

// dispatch snapshots the subscriber set of sender under the graph's
// read lock, releases it, then invokes each accepting subscriber's
// callback synchronously with no bus lock held.
func (e *Engine) dispatch(sender *domainbus.Node, kind domainbus.EventKind, payload []byte) {
	subIDs := e.graph.SubscribersOf(sender.ID)
	for _, subID := range subIDs {
		sub, ok := e.registry.LookupByID(subID)
		if !ok || sub.Callback == nil || !sub.EventMask.Has(kind) {
			continue
		}
		sub.Callback(domainbus.Event{
			Kind:     kind,
			SenderID: sender.ID,
			Receiver: sub.ID,
			Payload:  payload,
		})
	}
}

// Pull reads from target, preferring its cache when target is
// FlagCached and the requested length n matches its declared payload
// size; otherwise it falls back to invoking the target's EventPull
// callback. A size mismatch against a cached target is rejected without
// invoking the callback (§4.5). senderID identifies the puller and is
// carried on the event descriptor when the callback path is taken; pass
// domainbus.DummySenderID for anonymous pulls.
func (e *Engine) Pull(target *domainbus.Node, out []byte, senderID uint64) (domainbus.Code, []byte) {
	if target.IsCached() {
		if len(out) != target.PayloadSize {
			return domainbus.SizeMismatch, nil
		}
		if target.Cache.Read(out) {
			return domainbus.CachePulled, out
		}
		return domainbus.NoData, nil
	}

	if !target.EventMask.Has(domainbus.EventPull) || target.Callback == nil {
		return domainbus.NoSupport, nil
	}

	code := invoke(target.Callback, domainbus.Event{
		Kind:     domainbus.EventPull,
		SenderID: senderID,
		Receiver: target.ID,
		Payload:  out,
	})
	return code, out
}

// Notify invokes target's EventNotify callback with buf, enforcing the
// target's declared notify_size when FlagNotifySizeCheck is set (§4.5,
// and the NOTIFY_SIZE_CHECK resolution of the Notify size-check
// ambiguity documented alongside this engine). senderID identifies the
// notifier; pass domainbus.DummySenderID for anonymous notifies.
func (e *Engine) Notify(target *domainbus.Node, buf []byte, senderID uint64) domainbus.Code {
	if target.Flags.Has(domainbus.FlagNotifySizeCheck) && len(buf) != target.NotifySize {
		return domainbus.SizeMismatch
	}
	if !target.EventMask.Has(domainbus.EventNotify) || target.Callback == nil {
		return domainbus.NoSupport
	}
	return invoke(target.Callback, domainbus.Event{
		Kind:     domainbus.EventNotify,
		SenderID: senderID,
		Receiver: target.ID,
		Payload:  buf,
	})
}
