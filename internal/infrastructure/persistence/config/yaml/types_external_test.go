package yaml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodflow/myconet-bus/internal/infrastructure/persistence/config/yaml"
)

// TestNodeDTO_ToDomain tests yaml.NodeDTO to domain conversion, including
// resolution of flag and event_mask string lists against the bus's
// published vocabulary.
//
// Params:
//   - t: testing context
func TestNodeDTO_ToDomain(t *testing.T) {
	tests := []struct {
		name        string
		dto         yaml.NodeDTO
		wantErr     bool
		errContains string
	}{
		{
			name: "minimal_node_converts",
			dto: yaml.NodeDTO{
				Name:        "sensor.temp",
				PayloadSize: 16,
			},
		},
		{
			name: "node_with_flags_and_event_mask_converts",
			dto: yaml.NodeDTO{
				Name:          "sensor.temp",
				PayloadSize:   16,
				NotifySize:    4,
				Flags:         []string{"cached", "latched"},
				EventMask:     []string{"publish", "notify"},
				Subscriptions: []string{"controller"},
			},
		},
		{
			name: "unknown_flag_name_errors",
			dto: yaml.NodeDTO{
				Name:  "sensor.temp",
				Flags: []string{"not-a-flag"},
			},
			wantErr:     true,
			errContains: "flags",
		},
		{
			name: "unknown_event_kind_name_errors",
			dto: yaml.NodeDTO{
				Name:      "sensor.temp",
				EventMask: []string{"not-an-event"},
			},
			wantErr:     true,
			errContains: "event_mask",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.dto.ToDomain()

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.dto.Name, got.Name)
			assert.Equal(t, tt.dto.PayloadSize, got.PayloadSize)
			assert.Equal(t, tt.dto.NotifySize, got.NotifySize)
			assert.Equal(t, tt.dto.Subscriptions, got.Subscriptions)
		})
	}
}

// TestTopologyDTO_ToDomain tests yaml.TopologyDTO to domain conversion.
//
// Params:
//   - t: testing context
func TestTopologyDTO_ToDomain(t *testing.T) {
	dto := yaml.TopologyDTO{
		Version: "1",
		Logging: yaml.LoggingConfigDTO{
			BaseDir: "/var/log/myconet",
			Defaults: yaml.LogDefaultsDTO{
				TimestampFormat: "iso8601",
				Rotation:        yaml.RotationConfigDTO{MaxSize: "100MB", MaxFiles: 5},
			},
		},
		Nodes: []yaml.NodeDTO{
			{Name: "sensor.temp", PayloadSize: 16},
			{Name: "controller", PayloadSize: 8, Subscriptions: []string{"sensor.temp"}},
		},
	}

	got, err := dto.ToDomain("/etc/myconet/topology.yaml")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "1", got.Version)
	assert.Equal(t, "/etc/myconet/topology.yaml", got.ConfigPath)
	assert.Equal(t, "/var/log/myconet", got.Logging.BaseDir)
	require.Len(t, got.Nodes, 2)
	assert.Equal(t, "sensor.temp", got.Nodes[0].Name)
	assert.Equal(t, "controller", got.Nodes[1].Name)
	assert.Equal(t, []string{"sensor.temp"}, got.Nodes[1].Subscriptions)
}

// TestTopologyDTO_ToDomain_PropagatesNodeError tests that an error
// converting any one node aborts the whole topology conversion.
//
// Params:
//   - t: testing context
func TestTopologyDTO_ToDomain_PropagatesNodeError(t *testing.T) {
	dto := yaml.TopologyDTO{
		Version: "1",
		Nodes: []yaml.NodeDTO{
			{Name: "sensor.temp", PayloadSize: 16},
			{Name: "bad-node", Flags: []string{"nonexistent"}},
		},
	}

	got, err := dto.ToDomain("")
	assert.Error(t, err)
	assert.Nil(t, got)
}

// TestLogStreamConfigDTO_ToDomain tests yaml.LogStreamConfigDTO to domain conversion.
//
// Params:
//   - t: testing context
func TestLogStreamConfigDTO_ToDomain(t *testing.T) {
	dto := yaml.LogStreamConfigDTO{
		File:            "sensor.temp.log",
		TimestampFormat: "iso8601",
		Rotation:        yaml.RotationConfigDTO{MaxSize: "50MB", MaxFiles: 3},
	}

	got := dto.ToDomain()

	assert.Equal(t, "sensor.temp.log", got.FilePath)
	assert.Equal(t, "iso8601", got.Format)
	assert.Equal(t, "50MB", got.RotationConfig.MaxSize)
	assert.Equal(t, 3, got.RotationConfig.MaxFiles)
}

// TestWriterConfigDTO_ToDomain tests yaml.WriterConfigDTO to domain conversion.
//
// Params:
//   - t: testing context
func TestWriterConfigDTO_ToDomain(t *testing.T) {
	dto := yaml.WriterConfigDTO{
		Type:  "file",
		Level: "warn",
		File:  yaml.FileWriterConfigDTO{Path: "audit.log", Rotation: yaml.RotationConfigDTO{MaxSize: "10MB"}},
		JSON:  yaml.JSONWriterConfigDTO{Path: "audit.json"},
	}

	got := dto.ToDomain()

	assert.Equal(t, "file", got.Type)
	assert.Equal(t, "warn", got.Level)
	assert.Equal(t, "audit.log", got.File.Path)
	assert.Equal(t, "10MB", got.File.Rotation.MaxSize)
	assert.Equal(t, "audit.json", got.JSON.Path)
}

// TestLoggingConfigDTO_ToDomain_CarriesWriters tests that process-wide
// audit writers survive conversion into config.LoggingConfig.Audit.
//
// Params:
//   - t: testing context
func TestLoggingConfigDTO_ToDomain_CarriesWriters(t *testing.T) {
	dto := yaml.LoggingConfigDTO{
		BaseDir: "/var/log/myconet",
		Writers: []yaml.WriterConfigDTO{
			{Type: "console", Level: "info"},
			{Type: "file", Level: "debug", File: yaml.FileWriterConfigDTO{Path: "bus.log"}},
		},
	}

	got := dto.ToDomain()

	require.Len(t, got.Audit.Writers, 2)
	assert.Equal(t, "console", got.Audit.Writers[0].Type)
	assert.Equal(t, "file", got.Audit.Writers[1].Type)
	assert.Equal(t, "bus.log", got.Audit.Writers[1].File.Path)
}

// TestRotationConfigDTO_ToDomain tests yaml.RotationConfigDTO to domain conversion.
//
// Params:
//   - t: testing context
func TestRotationConfigDTO_ToDomain(t *testing.T) {
	dto := yaml.RotationConfigDTO{
		MaxSize:  "200MB",
		MaxAge:   "168h",
		MaxFiles: 7,
		Compress: true,
	}

	got := dto.ToDomain()

	assert.Equal(t, "200MB", got.MaxSize)
	assert.Equal(t, "168h", got.MaxAge)
	assert.Equal(t, 7, got.MaxFiles)
	assert.True(t, got.Compress)
}
