package config

import (
	"errors"
	"fmt"

	domainbus "github.com/kodflow/myconet-bus/internal/domain/bus"
)

// Validation errors.
var (
	// ErrNoNodes indicates no nodes are configured.
	ErrNoNodes error = errors.New("no nodes configured")
	// ErrEmptyNodeName indicates a node has no name.
	ErrEmptyNodeName error = errors.New("node name is required")
	// ErrDuplicateNodeName indicates duplicate node names in one topology.
	ErrDuplicateNodeName error = errors.New("duplicate node name")
	// ErrInvalidNodeParams indicates a node's parameters fail the bus's
	// own creation-time invariants (see domainbus.Params.Validate).
	ErrInvalidNodeParams error = errors.New("invalid node parameters")
)

// Validate validates a topology configuration structurally and against
// the bus's own node creation invariants. It does not require that
// Subscriptions name nodes present in the same file: bootstrap creates
// every node before attaching subscriptions, and a name absent from the
// file is left in the bus's pending table (§4.4).
func Validate(cfg *Config) error {
	if len(cfg.Nodes) == 0 {
		return ErrNoNodes
	}

	seen := make(map[string]bool, len(cfg.Nodes))
	for i := range cfg.Nodes {
		n := &cfg.Nodes[i]

		if n.Name == "" {
			return fmt.Errorf("node %d: %w", i, ErrEmptyNodeName)
		}
		if seen[n.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateNodeName, n.Name)
		}
		seen[n.Name] = true

		params := n.Params(nil)
		if code := params.Validate(); code != domainbus.OK {
			return fmt.Errorf("node %q: %w: %s", n.Name, ErrInvalidNodeParams, code)
		}
	}

	return nil
}
