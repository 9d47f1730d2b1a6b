// Package yaml provides YAML configuration loading infrastructure. It
// handles parsing and conversion of YAML topology files into the
// domain config model consumed at startup to register bus nodes.
package yaml

import (
	"strings"

	domainbus "github.com/kodflow/myconet-bus/internal/domain/bus"
	"github.com/kodflow/myconet-bus/internal/domain/config"
)

// TopologyDTO is the YAML representation of the root topology file.
// It serves as the data transfer object for parsing the main
// configuration file into a domain config.Config.
type TopologyDTO struct {
	Version string           `yaml:"version"`
	Logging LoggingConfigDTO `yaml:"logging"`
	Nodes   []NodeDTO        `yaml:"nodes"`
}

// NodeDTO is the YAML representation of one bus node definition.
type NodeDTO struct {
	Name          string     `yaml:"name"`
	PayloadSize   int        `yaml:"payload_size,omitempty"`
	NotifySize    int        `yaml:"notify_size,omitempty"`
	Flags         []string   `yaml:"flags,omitempty"`
	EventMask     []string   `yaml:"event_mask,omitempty"`
	Subscriptions []string   `yaml:"subscriptions,omitempty"`
	Logging       NodeLogDTO `yaml:"logging,omitempty"`
}

// NodeLogDTO is the YAML representation of a node's audit log stream.
type NodeLogDTO struct {
	Audit LogStreamConfigDTO `yaml:"audit,omitempty"`
}

// LoggingConfigDTO is the YAML representation of global audit logging
// configuration: base directory, the process-wide audit writers, and
// the defaults new per-node streams inherit.
type LoggingConfigDTO struct {
	Defaults LogDefaultsDTO    `yaml:"defaults"`
	Writers  []WriterConfigDTO `yaml:"writers,omitempty"`
	BaseDir  string            `yaml:"base_dir"`
}

// WriterConfigDTO is the YAML representation of one audit log writer.
type WriterConfigDTO struct {
	Type  string              `yaml:"type"`
	Level string              `yaml:"level,omitempty"`
	File  FileWriterConfigDTO `yaml:"file,omitempty"`
	JSON  JSONWriterConfigDTO `yaml:"json,omitempty"`
}

// FileWriterConfigDTO is the YAML representation of a plain-text file writer.
type FileWriterConfigDTO struct {
	Path     string            `yaml:"path"`
	Rotation RotationConfigDTO `yaml:"rotation,omitempty"`
}

// JSONWriterConfigDTO is the YAML representation of a structured JSON writer.
type JSONWriterConfigDTO struct {
	Path     string            `yaml:"path"`
	Rotation RotationConfigDTO `yaml:"rotation,omitempty"`
}

// LogDefaultsDTO is the YAML representation of logging defaults.
type LogDefaultsDTO struct {
	TimestampFormat string            `yaml:"timestamp_format"`
	Rotation        RotationConfigDTO `yaml:"rotation"`
}

// RotationConfigDTO is the YAML representation of rotation configuration.
type RotationConfigDTO struct {
	MaxSize  string `yaml:"max_size"`
	MaxAge   string `yaml:"max_age"`
	MaxFiles int    `yaml:"max_files"`
	Compress bool   `yaml:"compress"`
}

// LogStreamConfigDTO is the YAML representation of a single log stream.
type LogStreamConfigDTO struct {
	File            string            `yaml:"file,omitempty"`
	TimestampFormat string            `yaml:"timestamp_format,omitempty"`
	Rotation        RotationConfigDTO `yaml:"rotation,omitempty"`
}

// ToDomain converts TopologyDTO to a domain config.Config.
//
// Params:
//   - configPath: the filesystem path of the loaded configuration file
//
// Returns:
//   - *config.Config: the converted domain configuration object, or an
//     error describing the first malformed flag or event kind name.
func (t *TopologyDTO) ToDomain(configPath string) (*config.Config, error) {
	nodes := make([]config.NodeConfig, 0, len(t.Nodes))
	for i := range t.Nodes {
		n, err := t.Nodes[i].ToDomain()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}

	return &config.Config{
		Version:    t.Version,
		ConfigPath: configPath,
		Logging:    t.Logging.ToDomain(),
		Nodes:      nodes,
	}, nil
}

// ToDomain converts NodeDTO to a domain config.NodeConfig, resolving
// flag and event kind names against the bus's published vocabulary.
func (n *NodeDTO) ToDomain() (config.NodeConfig, error) {
	var flags domainbus.Flag
	for _, name := range n.Flags {
		f, ok := domainbus.ParseFlag(name)
		if !ok {
			return config.NodeConfig{}, unknownFlagError(n.Name, name)
		}
		flags |= f
	}

	var kinds []domainbus.EventKind
	for _, name := range n.EventMask {
		k, ok := domainbus.ParseEventKind(name)
		if !ok {
			return config.NodeConfig{}, unknownEventKindError(n.Name, name)
		}
		kinds = append(kinds, k)
	}

	return config.NodeConfig{
		Name:          n.Name,
		PayloadSize:   n.PayloadSize,
		NotifySize:    n.NotifySize,
		Flags:         flags,
		EventMask:     domainbus.MaskOf(kinds...),
		Subscriptions: n.Subscriptions,
		Logging:       n.Logging.ToDomain(),
	}, nil
}

// ToDomain converts NodeLogDTO to a domain config.NodeLogging.
func (l *NodeLogDTO) ToDomain() config.NodeLogging {
	return config.NodeLogging{Audit: l.Audit.ToDomain()}
}

// ToDomain converts LoggingConfigDTO to a domain config.LoggingConfig.
func (l *LoggingConfigDTO) ToDomain() config.LoggingConfig {
	writers := make([]config.WriterConfig, 0, len(l.Writers))
	for i := range l.Writers {
		writers = append(writers, l.Writers[i].ToDomain())
	}
	return config.LoggingConfig{
		BaseDir:  l.BaseDir,
		Defaults: l.Defaults.ToDomain(),
		Audit:    config.AuditLogging{Writers: writers},
	}
}

// ToDomain converts WriterConfigDTO to a domain config.WriterConfig.
func (w *WriterConfigDTO) ToDomain() config.WriterConfig {
	return config.WriterConfig{
		Type:  w.Type,
		Level: w.Level,
		File: config.FileWriterConfig{
			Path:     w.File.Path,
			Rotation: w.File.Rotation.ToDomain(),
		},
		JSON: config.JSONWriterConfig{
			Path:     w.JSON.Path,
			Rotation: w.JSON.Rotation.ToDomain(),
		},
	}
}

// ToDomain converts LogDefaultsDTO to a domain config.LogDefaults.
func (l *LogDefaultsDTO) ToDomain() config.LogDefaults {
	return config.LogDefaults{
		TimestampFormat: l.TimestampFormat,
		Rotation:        l.Rotation.ToDomain(),
	}
}

// ToDomain converts RotationConfigDTO to a domain config.RotationConfig.
func (r *RotationConfigDTO) ToDomain() config.RotationConfig {
	return config.RotationConfig{
		MaxSize:  r.MaxSize,
		MaxAge:   r.MaxAge,
		MaxFiles: r.MaxFiles,
		Compress: r.Compress,
	}
}

// ToDomain converts LogStreamConfigDTO to a domain config.LogStreamConfig.
func (l *LogStreamConfigDTO) ToDomain() config.LogStreamConfig {
	return config.LogStreamConfig{
		FilePath:       l.File,
		Format:         l.TimestampFormat,
		RotationConfig: l.Rotation.ToDomain(),
	}
}

func unknownFlagError(node, name string) error {
	return &fieldError{node: node, field: "flags", value: name}
}

func unknownEventKindError(node, name string) error {
	return &fieldError{node: node, field: "event_mask", value: name}
}

// fieldError reports an unrecognized flag or event kind name in a
// node's topology entry.
type fieldError struct {
	node  string
	field string
	value string
}

func (e *fieldError) Error() string {
	return "node " + quote(e.node) + ": unknown " + e.field + " value " + quote(e.value)
}

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(s)
	b.WriteByte('"')
	return b.String()
}
