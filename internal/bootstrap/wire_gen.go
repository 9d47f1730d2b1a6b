// Code generated by Wire would normally populate this file; it is kept
// hand-written here since the generator is not run as part of this
// build. It must stay in lockstep with wire.go's provider set.

package bootstrap

import (
	"github.com/kodflow/myconet-bus/bus"
)

// InitializeApp creates the application with all dependencies wired:
// it loads topology configuration from configPath and resolves the bus
// instance it will be registered against.
//
// Params:
//   - configPath: the path to the topology YAML file.
//
// Returns:
//   - *App: the fully wired application.
//   - error: any error during dependency construction.
func InitializeApp(configPath string) (*App, error) {
	loader := NewLoader()

	cfg, err := LoadConfig(loader, configPath)
	if err != nil {
		return nil, err
	}

	b := ProvideBusInstance(bus.DefaultInstanceName)

	return NewApp(b, cfg, loader), nil
}
