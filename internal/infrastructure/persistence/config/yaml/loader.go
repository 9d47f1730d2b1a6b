// Package yaml provides YAML configuration loading infrastructure.
package yaml

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kodflow/myconet-bus/internal/domain/config"
)

// Default configuration values.
const (
	// defaultVersion is the default configuration schema version.
	defaultVersion string = "1"
	// defaultBaseDir is the default base directory for audit logs.
	defaultBaseDir string = "/var/log/myconet"
	// defaultTimestampFormat is the default timestamp format for logs.
	defaultTimestampFormat string = "iso8601"
	// defaultMaxSize is the default maximum log file size.
	defaultMaxSize string = "100MB"
	// defaultMaxFiles is the default maximum number of rotated log files.
	defaultMaxFiles int = 10
)

// ErrNoConfigurationLoaded is returned when Reload is called without a prior Load.
var ErrNoConfigurationLoaded error = errors.New("no configuration loaded")

// Loader loads topology configuration from YAML files. It keeps the
// last loaded path to support reloading on signal (§ ambient stack).
type Loader struct {
	lastPath string
}

// New creates a new YAML configuration loader.
func New() *Loader {
	return &Loader{}
}

// Load reads and parses a topology file from the given path.
func (l *Loader) Load(path string) (*config.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - config path is trusted input
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := l.Parse(data)
	if err != nil {
		return nil, err
	}

	cfg.ConfigPath = path
	l.lastPath = path

	return cfg, nil
}

// Parse parses topology configuration from YAML bytes.
func (l *Loader) Parse(data []byte) (*config.Config, error) {
	var dto TopologyDTO

	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	applyDefaults(&dto)

	cfg, err := dto.ToDomain("")
	if err != nil {
		return nil, fmt.Errorf("converting config: %w", err)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Reload reloads configuration from the last loaded path.
func (l *Loader) Reload() (*config.Config, error) {
	if l.lastPath == "" {
		return nil, fmt.Errorf("%w", ErrNoConfigurationLoaded)
	}
	return l.Load(l.lastPath)
}

// applyDefaults sets default values for unset configuration options.
func applyDefaults(dto *TopologyDTO) {
	if dto.Version == "" {
		dto.Version = defaultVersion
	}

	if dto.Logging.BaseDir == "" {
		dto.Logging.BaseDir = defaultBaseDir
	}
	if dto.Logging.Defaults.TimestampFormat == "" {
		dto.Logging.Defaults.TimestampFormat = defaultTimestampFormat
	}
	if dto.Logging.Defaults.Rotation.MaxSize == "" {
		dto.Logging.Defaults.Rotation.MaxSize = defaultMaxSize
	}
	if dto.Logging.Defaults.Rotation.MaxFiles == 0 {
		dto.Logging.Defaults.Rotation.MaxFiles = defaultMaxFiles
	}
	if len(dto.Logging.Writers) == 0 {
		dto.Logging.Writers = []WriterConfigDTO{{Type: "console", Level: "info"}}
	}

	for i := range dto.Nodes {
		applyNodeDefaults(&dto.Nodes[i], &dto.Logging)
	}
}

// applyNodeDefaults fills in a node's audit stream defaults from the
// global logging configuration when the node does not override them.
func applyNodeDefaults(n *NodeDTO, logging *LoggingConfigDTO) {
	if n.Logging.Audit.File == "" {
		n.Logging.Audit.File = n.Name + ".log"
	}
	if n.Logging.Audit.TimestampFormat == "" {
		n.Logging.Audit.TimestampFormat = logging.Defaults.TimestampFormat
	}
	if n.Logging.Audit.Rotation.MaxSize == "" {
		n.Logging.Audit.Rotation = logging.Defaults.Rotation
	}
}
