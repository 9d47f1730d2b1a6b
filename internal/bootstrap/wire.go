//go:build wireinject

package bootstrap

import (
	"github.com/google/wire"

	appconfig "github.com/kodflow/myconet-bus/internal/application/config"
	infraconfig "github.com/kodflow/myconet-bus/internal/infrastructure/persistence/config/yaml"
)

// InitializeApp creates the application with all dependencies wired.
// This function is the injector that Wire will generate code for; the
// checked-in wire_gen.go below is its hand-written equivalent.
//
// Params:
//   - configPath: the path to the topology YAML file.
//
// Returns:
//   - *App: the fully wired application.
//   - error: any error during dependency construction.
func InitializeApp(configPath string) (*App, error) {
	wire.Build(
		// Infrastructure: configuration loader.
		NewLoader,
		wire.Bind(new(appconfig.Loader), new(*infraconfig.Loader)),
		wire.Bind(new(appconfig.Reloader), new(*infraconfig.Loader)),

		// Providers: configuration load and bus instance resolution.
		LoadConfig,
		ProvideBusInstance,

		// Bootstrap: final App struct.
		NewApp,
	)
	return nil, nil
}
