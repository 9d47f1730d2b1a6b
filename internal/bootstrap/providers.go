// Package bootstrap wires a running MycoNet bus process together: it
// loads topology configuration, registers the configured nodes against
// one bus instance, attaches audit logging, and starts the optional HMI
// panel. It isolates all dependency construction from cmd/busdemo,
// following the same injector/provider split as Google Wire, though the
// wiring below is hand-written rather than generated (§ ambient stack).
package bootstrap

import (
	"fmt"

	appconfig "github.com/kodflow/myconet-bus/internal/application/config"
	domainbus "github.com/kodflow/myconet-bus/internal/domain/bus"
	domainconfig "github.com/kodflow/myconet-bus/internal/domain/config"
	domainlogging "github.com/kodflow/myconet-bus/internal/domain/logging"
	"github.com/kodflow/myconet-bus/internal/infrastructure/observability/logging/audit"
	infraconfig "github.com/kodflow/myconet-bus/internal/infrastructure/persistence/config/yaml"
	"github.com/kodflow/myconet-bus/bus"
)

// NewLoader provides the YAML-backed configuration loader.
//
// Returns:
//   - *infraconfig.Loader: a fresh loader, bound to no file yet.
func NewLoader() *infraconfig.Loader {
	return infraconfig.New()
}

// LoadConfig loads topology configuration from the given path using the
// provided loader.
//
// Params:
//   - loader: the configuration loader interface.
//   - configPath: the path to the topology YAML file.
//
// Returns:
//   - *domainconfig.Config: the loaded configuration.
//   - error: any error during loading.
func LoadConfig(loader appconfig.Loader, configPath string) (*domainconfig.Config, error) {
	return loader.Load(configPath)
}

// ProvideAuditLogger builds the process-wide audit logger from the
// loaded configuration. Interactive runs (a panel attached) exclude the
// console writer so it does not clobber the panel's own rendering.
//
// Params:
//   - cfg: the loaded topology configuration.
//   - interactive: whether the HMI panel owns the terminal.
//
// Returns:
//   - domainlogging.Logger: the constructed logger.
//   - error: non-nil if any configured writer could not be built.
func ProvideAuditLogger(cfg *domainconfig.Config, interactive bool) (domainlogging.Logger, error) {
	if interactive {
		return audit.BuildLoggerWithoutConsole(cfg.Logging.Audit, cfg.Logging.BaseDir)
	}
	return audit.BuildLogger(cfg.Logging.Audit, cfg.Logging.BaseDir)
}

// ProvideBusInstance returns the named bus instance the topology will be
// registered against. A fresh process always resolves an empty
// directory; the name lets multiple topologies share a process without
// colliding.
//
// Params:
//   - instanceName: the bus instance name (empty for the default instance).
//
// Returns:
//   - *bus.Bus: the (possibly freshly created) instance handle.
func ProvideBusInstance(instanceName string) *bus.Bus {
	return bus.GetInstance(instanceName)
}

// RegisterTopology creates every node in cfg against b, wires its
// per-node audit logger, and attaches its static subscriptions. A first
// pass creates every node in file order; a second pass attaches the
// subscriptions, so a node defined later in the same file is already
// registered when it is subscribed to. A subscription naming a node
// absent from the topology is left in the bus's pending table rather
// than failing (§4.4).
//
// Params:
//   - b: the bus instance to register nodes against.
//   - cfg: the loaded topology configuration.
//   - auditLogger: the process-wide audit logger, used when a node has
//     no file path of its own.
//
// Returns:
//   - error: the first node creation or subscription failure, wrapped
//     with the offending node's name.
func RegisterTopology(b *bus.Bus, cfg *domainconfig.Config, auditLogger domainlogging.Logger) error {
	for i := range cfg.Nodes {
		n := &cfg.Nodes[i]

		logger, err := nodeLogger(n, cfg.Logging.BaseDir, auditLogger)
		if err != nil {
			return fmt.Errorf("node %q: building audit logger: %w", n.Name, err)
		}

		cb := buildAuditCallback(n.Name, logger)
		if _, code := b.NewNode(n.Name, n.Params(cb)); code != bus.OK {
			return fmt.Errorf("node %q: %w", n.Name, code)
		}
	}

	for i := range cfg.Nodes {
		n := &cfg.Nodes[i]
		node, code := b.GetNode(n.Name)
		if code != bus.OK {
			return fmt.Errorf("node %q: %w", n.Name, code)
		}
		for _, pub := range n.Subscriptions {
			if code := node.Subscribe(pub); code != bus.OK && code != bus.Pending {
				return fmt.Errorf("node %q subscribing to %q: %w", n.Name, pub, code)
			}
		}
	}

	return nil
}

// nodeLogger resolves the logger a node's callback reports delivery
// activity to: its own file-backed stream when configured, otherwise
// the process-wide audit logger.
func nodeLogger(n *domainconfig.NodeConfig, baseDir string, fallback domainlogging.Logger) (domainlogging.Logger, error) {
	nodeCfg := n.Logging.AuditConfig()
	if len(nodeCfg.Writers) == 0 {
		return fallback, nil
	}
	return audit.BuildLogger(nodeCfg, baseDir)
}

// buildAuditCallback builds the domainbus.Callback recording every
// delivery a node's callback observes, of any event kind, to logger,
// then returns OK.
//
// Params:
//   - name: the owning node's name, recorded as the log event's node.
//   - logger: the logger to record delivery activity to.
//
// Returns:
//   - domainbus.Callback: the callback to attach via Params.Callback.
func buildAuditCallback(name string, logger domainlogging.Logger) domainbus.Callback {
	return func(evt domainbus.Event) domainbus.Code {
		logger.Info(name, eventKindLabel(evt.Kind), "node event", map[string]any{
			"sender_id":    evt.SenderID,
			"payload_size": len(evt.Payload),
		})
		return domainbus.OK
	}
}

// eventKindLabel maps an EventKind to its audit log event type string.
func eventKindLabel(kind domainbus.EventKind) string {
	return kind.String()
}
