package app

import (
	"context"
	"fmt"
	"os"

	"yamori/internal/config"
	"yamori/pkg/logging"
)

// Application is the main application structure that bootstraps and runs yamori
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads the suite and prepares the engine.
func NewApplication(cfg *Config) (*Application, error) {
	// Configure logging based on debug flag
	appLogLevel := logging.LevelWarn
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Logs go to stderr so that CLI results stay clean on stdout; TUI mode
	// replaces this with the channel logger.
	logging.InitForCLI(appLogLevel, os.Stderr)

	cfg.ConfigPath = config.ResolvePath(cfg.ConfigPath)

	suite, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load test configuration")
		return nil, fmt.Errorf("failed to load config from `%s`: %w", cfg.ConfigPath, err)
	}
	if cfg.Release {
		suite = suite.WithRelease(true)
	}
	logging.Info("Bootstrap", "Loaded %d tests from %s", len(suite.Tests), cfg.ConfigPath)
	cfg.Suite = &suite

	return &Application{
		config:   cfg,
		services: InitializeServices(cfg),
	}, nil
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.CLI {
		return runCLIMode(ctx, a.config, a.services)
	}
	return runTUIMode(ctx, a.config, a.services)
}
