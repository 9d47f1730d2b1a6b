package bus

import "sync"

// pendingEntry is one deferred subscription request: subscriber id waiting
// on a publisher name that did not resolve at Subscribe time.
type pendingEntry struct {
	subID      uint64
	targetName string
}

// PendingTable is the FIFO deferred-subscription table described in
// §4.4. Entries persist until either a node with the matching name is
// registered (Drain) or the subscriber is removed (Purge); there is no
// timeout. All access is serialized by mu, the pending_lock of §5.
type PendingTable struct {
	mu      sync.Mutex
	entries []pendingEntry
}

// NewPendingTable builds an empty pending table.
func NewPendingTable() *PendingTable {
	return &PendingTable{}
}

// Enqueue records a deferred Subscribe request.
func (t *PendingTable) Enqueue(subID uint64, targetName string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, pendingEntry{subID: subID, targetName: targetName})
}

// Drain removes and returns, in FIFO order, every entry whose target
// name matches name. The caller reissues each returned subscriber id as
// a Subscribe on behalf of the original caller (§4.4); the result of
// that reissue is not reported back to anyone, mirroring the spec.
func (t *PendingTable) Drain(name string) []uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	var matched []uint64
	kept := t.entries[:0]
	for _, e := range t.entries {
		if e.targetName == name {
			matched = append(matched, e.subID)
			continue
		}
		kept = append(kept, e)
	}
	t.entries = kept
	return matched
}

// Purge removes every pending entry belonging to subID, called when a
// subscriber node is removed while its Subscribe calls are still
// pending (§4.4).
func (t *PendingTable) Purge(subID uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.entries[:0]
	for _, e := range t.entries {
		if e.subID == subID {
			continue
		}
		kept = append(kept, e)
	}
	t.entries = kept
}

// CountForName reports how many pending entries currently name target as
// their unresolved target, used by tests asserting invariant 8 (drained
// entries drop to zero after the matching create_node).
func (t *PendingTable) CountForName(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for _, e := range t.entries {
		if e.targetName == name {
			n++
		}
	}
	return n
}
