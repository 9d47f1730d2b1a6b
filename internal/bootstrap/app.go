package bootstrap

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	appconfig "github.com/kodflow/myconet-bus/internal/application/config"
	domainconfig "github.com/kodflow/myconet-bus/internal/domain/config"
	domainlogging "github.com/kodflow/myconet-bus/internal/domain/logging"
	"github.com/kodflow/myconet-bus/internal/infrastructure/observability/hmi"
	"github.com/kodflow/myconet-bus/bus"
)

// version is the application version, set at build time via ldflags.
var version string = "dev"

// App holds all application dependencies injected by InitializeApp. It
// is the root object of the dependency graph.
type App struct {
	// Bus is the instance the topology is registered against.
	Bus *bus.Bus
	// Config is the loaded topology configuration.
	Config *domainconfig.Config
	// Reloader reloads Config from its original source on SIGHUP.
	Reloader appconfig.Reloader
}

// NewApp creates the App struct from its wired dependencies. This is
// the final provider in the dependency graph.
//
// Params:
//   - b: the bus instance the topology is registered against.
//   - cfg: the loaded topology configuration.
//   - reloader: reloads Config from its original source.
//
// Returns:
//   - *App: the application container with all dependencies wired.
func NewApp(b *bus.Bus, cfg *domainconfig.Config, reloader appconfig.Reloader) *App {
	return &App{Bus: b, Config: cfg, Reloader: reloader}
}

// Run is the main entry point called from cmd/busdemo/main.go. It
// parses flags, initializes the application via InitializeApp, and runs
// the main loop.
//
// Returns:
//   - int: exit code (0 for success, 1 for error).
func Run() int {
	var configPath string
	flag.StringVar(&configPath, "config", "topology.yaml", "path to the topology configuration file")
	showVersion := flag.Bool("version", false, "show version and exit")
	panelMode := flag.Bool("panel", false, "run the live HMI panel")
	flag.Parse()

	if *showVersion {
		fmt.Printf("busdemo %s\n", version)
		return 0
	}

	if err := run(configPath, *panelMode); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// run executes the main application logic.
//
// Params:
//   - configPath: the path to the topology configuration file.
//   - panelMode: whether to run the live HMI panel.
//
// Returns:
//   - error: nil on success, error on failure.
func run(configPath string, panelMode bool) error {
	app, err := InitializeApp(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	logger, panel, err := setupLoggingAndPanel(app, panelMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to build audit logger: %v\n", err)
	}
	defer func() { _ = logger.Close() }()

	if err := RegisterTopology(app.Bus, app.Config, logger); err != nil {
		return fmt.Errorf("failed to register topology: %w", err)
	}
	logger.Info("", "bus_started", "topology registered", map[string]any{
		"nodes": app.Bus.NodeCount(),
	})

	ctx, cancel, sigCh := setupContextAndSignals()
	defer cancel()

	if panel != nil {
		panelDone := make(chan error, 1)
		go func() { panelDone <- panel.Run(ctx) }()
		return waitForPanelOrSignals(ctx, cancel, sigCh, panelDone, app)
	}

	return waitForSignals(ctx, cancel, sigCh, app)
}

// setupLoggingAndPanel builds the process-wide audit logger and, when
// panelMode is set, the live HMI panel wired to receive its events.
//
// Params:
//   - app: the application instance.
//   - panelMode: whether to run the live HMI panel.
//
// Returns:
//   - domainlogging.Logger: the configured logger.
//   - *hmi.Panel: the configured panel, nil when panelMode is false.
//   - error: non-nil if logger construction failed (caller falls back
//     to a default logger and continues).
func setupLoggingAndPanel(app *App, panelMode bool) (domainlogging.Logger, *hmi.Panel, error) {
	logger, err := ProvideAuditLogger(app.Config, panelMode)
	if err != nil {
		logger, _ = ProvideAuditLogger(&domainconfig.Config{}, panelMode)
	}

	if !panelMode {
		return logger, nil, err
	}

	panel := hmi.NewPanel(newBusLister(app.Bus), 0)
	if ml, ok := logger.(multiLoggerAdder); ok {
		ml.AddWriter(panel.Writer())
	}
	return logger, panel, err
}

// multiLoggerAdder is the minimal interface satisfied by
// audit.MultiLogger, letting setupLoggingAndPanel attach the panel's
// writer without importing the concrete type twice.
type multiLoggerAdder interface {
	AddWriter(w domainlogging.Writer)
}

// setupContextAndSignals creates the root context and the signal
// channel the run loop selects on.
//
// Returns:
//   - context.Context: the context for cancellation.
//   - context.CancelFunc: the cancel function.
//   - chan os.Signal: the channel receiving OS signals.
func setupContextAndSignals() (context.Context, context.CancelFunc, chan os.Signal) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP)

	return ctx, cancel, sigCh
}

// waitForSignals handles OS signals in a continuous loop until shutdown.
//
// Params:
//   - ctx: the context for cancellation.
//   - cancel: the cancel function for the context.
//   - sigCh: the channel receiving OS signals.
//   - app: the running application, reloaded/torn down on signal.
//
// Returns:
//   - error: nil on clean shutdown.
func waitForSignals(ctx context.Context, cancel context.CancelFunc, sigCh <-chan os.Signal, app *App) error {
	for {
		select {
		case sig := <-sigCh:
			if done := handleSignal(sig, cancel, app); done {
				return shutdown(app)
			}
		case <-ctx.Done():
			return shutdown(app)
		}
	}
}

// waitForPanelOrSignals is waitForSignals's counterpart when a live HMI
// panel is running: it also unblocks when the panel quits on its own
// (user pressed q/esc/ctrl+c).
//
// Params:
//   - ctx: the context for cancellation.
//   - cancel: the cancel function for the context.
//   - sigCh: the channel receiving OS signals.
//   - panelDone: signaled when the HMI panel's Run returns.
//   - app: the running application, reloaded/torn down on signal.
//
// Returns:
//   - error: nil on clean shutdown, otherwise the panel's run error.
func waitForPanelOrSignals(ctx context.Context, cancel context.CancelFunc, sigCh <-chan os.Signal, panelDone <-chan error, app *App) error {
	for {
		select {
		case sig := <-sigCh:
			if done := handleSignal(sig, cancel, app); done {
				return shutdown(app)
			}
		case err := <-panelDone:
			cancel()
			if err != nil {
				return err
			}
			return shutdown(app)
		case <-ctx.Done():
			return shutdown(app)
		}
	}
}

// handleSignal processes a single OS signal.
//
// Params:
//   - sig: the OS signal received.
//   - cancel: the cancel function for the context.
//   - app: the running application, reloaded on SIGHUP.
//
// Returns:
//   - bool: true when the process should begin shutdown.
func handleSignal(sig os.Signal, cancel context.CancelFunc, app *App) bool {
	switch sig {
	case syscall.SIGHUP:
		if _, err := app.Reloader.Reload(); err != nil {
			fmt.Fprintf(os.Stderr, "reload failed: %v\n", err)
		}
		return false
	case syscall.SIGTERM, syscall.SIGINT:
		cancel()
		return true
	}
	return false
}

// shutdown releases the bus instance app is registered against. Node
// handles held by callers after this point observe InvalidID on
// subsequent queries (§4.6).
func shutdown(app *App) error {
	bus.DeleteInstance(app.Bus.Name())
	return nil
}
