// Package config_test provides black-box tests for the config package.
package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/kodflow/myconet-bus/internal/application/config"
	"github.com/kodflow/myconet-bus/internal/domain/config"
)

// mockLoader is a mock implementation of Loader for testing.
//
// mockLoader provides a controllable implementation that returns
// pre-configured results for testing interface behavior.
type mockLoader struct {
	cfg *config.Config
	err error
}

// Load returns the pre-configured config and error.
//
// Params:
//   - path: configuration file path (ignored in mock).
//
// Returns:
//   - *config.Config: pre-configured configuration.
//   - error: pre-configured error.
func (m *mockLoader) Load(_ string) (*config.Config, error) {
	// Return pre-configured results for testing.
	return m.cfg, m.err
}

// mockReloader is a mock implementation of Reloader for testing.
//
// mockReloader provides a controllable implementation that returns
// pre-configured results for testing interface behavior.
type mockReloader struct {
	cfg *config.Config
	err error
}

// Reload returns the pre-configured config and error.
//
// Returns:
//   - *config.Config: pre-configured configuration.
//   - error: pre-configured error.
func (m *mockReloader) Reload() (*config.Config, error) {
	// Return pre-configured results for testing.
	return m.cfg, m.err
}

// mockLoaderReloader implements both Loader and Reloader for testing.
//
// mockLoaderReloader demonstrates that a single type can implement
// both interfaces, as is typical in real implementations.
type mockLoaderReloader struct {
	loadCfg     *config.Config
	loadErr     error
	reloadCfg   *config.Config
	reloadErr   error
	loadCalls   int
	reloadCalls int
}

// Load returns the pre-configured load results and increments counter.
//
// Params:
//   - path: configuration file path (ignored in mock).
//
// Returns:
//   - *config.Config: pre-configured configuration.
//   - error: pre-configured error.
func (m *mockLoaderReloader) Load(_ string) (*config.Config, error) {
	// Increment load call counter for verification.
	m.loadCalls++
	// Return pre-configured load results.
	return m.loadCfg, m.loadErr
}

// Reload returns the pre-configured reload results and increments counter.
//
// Returns:
//   - *config.Config: pre-configured configuration.
//   - error: pre-configured error.
func (m *mockLoaderReloader) Reload() (*config.Config, error) {
	// Increment reload call counter for verification.
	m.reloadCalls++
	// Return pre-configured reload results.
	return m.reloadCfg, m.reloadErr
}

// TestLoader_InterfaceSatisfaction tests that mock implements Loader interface.
//
// Params:
//   - t: testing context for assertions and error reporting.
func TestLoader_InterfaceSatisfaction(t *testing.T) {
	tests := []struct {
		name string
	}{
		{
			name: "mock_loader_satisfies_interface",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create mock loader.
			var loader appconfig.Loader = &mockLoader{}

			// Verify interface is satisfied.
			assert.NotNil(t, loader)
		})
	}
}

// TestReloader_InterfaceSatisfaction tests that mock implements Reloader interface.
//
// Params:
//   - t: testing context for assertions and error reporting.
func TestReloader_InterfaceSatisfaction(t *testing.T) {
	tests := []struct {
		name string
	}{
		{
			name: "mock_reloader_satisfies_interface",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create mock reloader.
			var reloader appconfig.Reloader = &mockReloader{}

			// Verify interface is satisfied.
			assert.NotNil(t, reloader)
		})
	}
}

// TestLoaderReloader_BothInterfacesSatisfied tests dual interface implementation.
//
// Params:
//   - t: testing context for assertions and error reporting.
func TestLoaderReloader_BothInterfacesSatisfied(t *testing.T) {
	tests := []struct {
		name string
	}{
		{
			name: "single_type_implements_both_interfaces",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create mock that implements both interfaces.
			mock := &mockLoaderReloader{}

			// Verify Loader interface is satisfied.
			var loader appconfig.Loader = mock
			assert.NotNil(t, loader)

			// Verify Reloader interface is satisfied.
			var reloader appconfig.Reloader = mock
			assert.NotNil(t, reloader)
		})
	}
}

// TestLoader_Load tests the Loader.Load interface method contract.
//
// Params:
//   - t: testing context for assertions and error reporting.
func TestLoader_Load(t *testing.T) {
	tests := []struct {
		name        string
		mockCfg     *config.Config
		mockErr     error
		path        string
		expectError bool
		validateCfg func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "successful_load_returns_config",
			mockCfg: &config.Config{
				Version: "1",
				Nodes: []config.NodeConfig{
					{Name: "test-node", PayloadSize: 16},
				},
			},
			mockErr:     nil,
			path:        "/etc/daemon/config.yaml",
			expectError: false,
			validateCfg: func(t *testing.T, cfg *config.Config) {
				require.NotNil(t, cfg)
				assert.Equal(t, "1", cfg.Version)
				assert.Len(t, cfg.Nodes, 1)
				assert.Equal(t, "test-node", cfg.Nodes[0].Name)
			},
		},
		{
			name:        "error_returns_nil_config",
			mockCfg:     nil,
			mockErr:     errors.New("file not found"),
			path:        "/non/existent/path.yaml",
			expectError: true,
			validateCfg: func(t *testing.T, cfg *config.Config) {
				assert.Nil(t, cfg)
			},
		},
		{
			name:        "empty_path_handled_by_implementation",
			mockCfg:     nil,
			mockErr:     errors.New("empty path"),
			path:        "",
			expectError: true,
			validateCfg: func(t *testing.T, cfg *config.Config) {
				assert.Nil(t, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create mock loader with configured results.
			loader := &mockLoader{
				cfg: tt.mockCfg,
				err: tt.mockErr,
			}

			// Load configuration.
			cfg, err := loader.Load(tt.path)

			// Verify error expectation.
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			// Run custom validation.
			tt.validateCfg(t, cfg)
		})
	}
}

// TestReloader_Reload tests the Reloader.Reload interface method contract.
//
// Params:
//   - t: testing context for assertions and error reporting.
func TestReloader_Reload(t *testing.T) {
	tests := []struct {
		name        string
		mockCfg     *config.Config
		mockErr     error
		expectError bool
		validateCfg func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "successful_reload_returns_updated_config",
			mockCfg: &config.Config{
				Version: "2",
				Nodes: []config.NodeConfig{
					{Name: "updated-node", PayloadSize: 16},
				},
			},
			mockErr:     nil,
			expectError: false,
			validateCfg: func(t *testing.T, cfg *config.Config) {
				require.NotNil(t, cfg)
				assert.Equal(t, "2", cfg.Version)
				assert.Len(t, cfg.Nodes, 1)
				assert.Equal(t, "updated-node", cfg.Nodes[0].Name)
			},
		},
		{
			name:        "reload_without_previous_load_returns_error",
			mockCfg:     nil,
			mockErr:     errors.New("no configuration loaded"),
			expectError: true,
			validateCfg: func(t *testing.T, cfg *config.Config) {
				assert.Nil(t, cfg)
			},
		},
		{
			name:        "reload_file_read_error",
			mockCfg:     nil,
			mockErr:     errors.New("reading config file"),
			expectError: true,
			validateCfg: func(t *testing.T, cfg *config.Config) {
				assert.Nil(t, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create mock reloader with configured results.
			reloader := &mockReloader{
				cfg: tt.mockCfg,
				err: tt.mockErr,
			}

			// Reload configuration.
			cfg, err := reloader.Reload()

			// Verify error expectation.
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			// Run custom validation.
			tt.validateCfg(t, cfg)
		})
	}
}

// TestLoaderReloader_WorkflowIntegration tests typical usage workflow.
//
// Params:
//   - t: testing context for assertions and error reporting.
func TestLoaderReloader_WorkflowIntegration(t *testing.T) {
	tests := []struct {
		name                string
		loadCfg             *config.Config
		loadErr             error
		reloadCfg           *config.Config
		reloadErr           error
		expectedLoadCalls   int
		expectedReloadCalls int
	}{
		{
			name: "load_then_reload_workflow",
			loadCfg: &config.Config{
				Version: "1",
				Nodes: []config.NodeConfig{
					{Name: "initial", PayloadSize: 16},
				},
			},
			loadErr: nil,
			reloadCfg: &config.Config{
				Version: "1",
				Nodes: []config.NodeConfig{
					{Name: "reloaded", PayloadSize: 16},
				},
			},
			reloadErr:           nil,
			expectedLoadCalls:   1,
			expectedReloadCalls: 1,
		},
		{
			name:    "load_failure_prevents_reload",
			loadCfg: nil,
			loadErr: errors.New("load failed"),
			reloadCfg: &config.Config{
				Version: "1",
			},
			reloadErr:           nil,
			expectedLoadCalls:   1,
			expectedReloadCalls: 0,
		},
		{
			name: "multiple_reloads_after_initial_load",
			loadCfg: &config.Config{
				Version: "1",
			},
			loadErr: nil,
			reloadCfg: &config.Config{
				Version: "2",
			},
			reloadErr:           nil,
			expectedLoadCalls:   1,
			expectedReloadCalls: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create mock implementing both interfaces.
			mock := &mockLoaderReloader{
				loadCfg:   tt.loadCfg,
				loadErr:   tt.loadErr,
				reloadCfg: tt.reloadCfg,
				reloadErr: tt.reloadErr,
			}

			// Cast to interfaces.
			loader := appconfig.Loader(mock)
			reloader := appconfig.Reloader(mock)

			// Initial load.
			cfg, err := loader.Load("/etc/daemon/config.yaml")

			// Check load result.
			if tt.loadErr != nil {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				// Skip reload if load failed.
				return
			}
			assert.NoError(t, err)
			require.NotNil(t, cfg)

			// Perform reloads based on expected count.
			for range tt.expectedReloadCalls {
				reloadedCfg, reloadErr := reloader.Reload()
				if tt.reloadErr != nil {
					assert.Error(t, reloadErr)
					assert.Nil(t, reloadedCfg)
				} else {
					assert.NoError(t, reloadErr)
					require.NotNil(t, reloadedCfg)
				}
			}

			// Verify call counts.
			assert.Equal(t, tt.expectedLoadCalls, mock.loadCalls)
			assert.Equal(t, tt.expectedReloadCalls, mock.reloadCalls)
		})
	}
}

// TestLoader_NilConfigHandling tests nil config handling.
//
// Params:
//   - t: testing context for assertions and error reporting.
func TestLoader_NilConfigHandling(t *testing.T) {
	tests := []struct {
		name string
	}{
		{
			name: "loader_can_return_nil_config_with_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create loader that returns nil config with error.
			loader := &mockLoader{
				cfg: nil,
				err: errors.New("validation failed"),
			}

			// Load should return nil config with error.
			cfg, err := loader.Load("/path/to/config.yaml")

			// Verify nil config and error.
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

// TestReloader_NilConfigHandling tests nil config handling for reloader.
//
// Params:
//   - t: testing context for assertions and error reporting.
func TestReloader_NilConfigHandling(t *testing.T) {
	tests := []struct {
		name string
	}{
		{
			name: "reloader_can_return_nil_config_with_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create reloader that returns nil config with error.
			reloader := &mockReloader{
				cfg: nil,
				err: errors.New("no previous load"),
			}

			// Reload should return nil config with error.
			cfg, err := reloader.Reload()

			// Verify nil config and error.
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoader_ValidConfigPath tests that loaded config contains path.
//
// Params:
//   - t: testing context for assertions and error reporting.
func TestLoader_ValidConfigPath(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		configPath string
	}{
		{
			name:       "config_path_matches_load_path",
			path:       "/etc/daemon/config.yaml",
			configPath: "/etc/daemon/config.yaml",
		},
		{
			name:       "relative_path_preserved",
			path:       "./config.yaml",
			configPath: "./config.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create config with path set.
			mockCfg := &config.Config{
				Version:    "1",
				ConfigPath: tt.configPath,
			}

			// Create loader.
			loader := &mockLoader{
				cfg: mockCfg,
				err: nil,
			}

			// Load configuration.
			cfg, err := loader.Load(tt.path)

			// Verify success.
			require.NoError(t, err)
			require.NotNil(t, cfg)

			// Verify config path is set.
			assert.Equal(t, tt.configPath, cfg.ConfigPath)
		})
	}
}

// TestLoaderReloader_TypeAssertions tests type assertions for interfaces.
//
// Params:
//   - t: testing context for assertions and error reporting.
func TestLoaderReloader_TypeAssertions(t *testing.T) {
	tests := []struct {
		name string
	}{
		{
			name: "type_assertions_succeed_for_dual_implementation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create mock implementing both interfaces.
			mock := &mockLoaderReloader{}

			// Create as Loader.
			var loader appconfig.Loader = mock

			// Assert to Reloader should succeed.
			reloader, ok := loader.(appconfig.Reloader)
			assert.True(t, ok)
			assert.NotNil(t, reloader)

			// Create as Reloader.
			var reloader2 appconfig.Reloader = mock

			// Assert to Loader should succeed.
			loader2, ok := reloader2.(appconfig.Loader)
			assert.True(t, ok)
			assert.NotNil(t, loader2)
		})
	}
}
