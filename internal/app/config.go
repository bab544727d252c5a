package app

import (
	"io"
	"os"

	"yamori/internal/config"
)

// Config holds the application configuration
type Config struct {
	// ConfigPath is the suite file as given on the command line.
	ConfigPath string

	// UI mode
	CLI bool

	// Debug settings
	Debug bool

	// Release forces release mode for the first run.
	Release bool

	// ReportDir receives a JSON report per run when set.
	ReportDir string

	// Verbose prints progress while the CLI run is going.
	Verbose bool

	// Out receives CLI output; os.Stdout when nil.
	Out io.Writer

	// Suite is populated by NewApplication.
	Suite *config.TestConfig
}

// NewConfig creates a new application configuration
func NewConfig(configPath string, cli, debug bool) *Config {
	return &Config{
		ConfigPath: configPath,
		CLI:        cli,
		Debug:      debug,
	}
}

func (c *Config) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}
