package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"yamori/internal/app"
	"yamori/internal/config"
)

var (
	yamoriConfigPath string
	cliMode          bool
	debugMode        bool
	releaseMode      bool
	reportDir        string
	verbose          bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "yamori",
	Short: "Run command-line test suites and inspect the results",
	Long: `yamori runs the test cases described in a TOML or YAML file, compares each
program's output with the expected output and shows the results.

It can run in two modes:

1. Interactive TUI Mode (default):
   - Runs the suite once, then opens a dashboard with results, statistics,
     diffs, command details and the history of runs.
   - Tests can be re-run, run in release mode, and the build mode toggled
     from the dashboard.

2. CLI Mode (using --cli flag):
   - Runs the suite once, prints a compact report and exits non-zero
     when any test failed.

The configuration file is taken from --yamori-config, or from the
YAMORI_CONFIG environment variable when it is set.`,
	Args: cobra.NoArgs,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. failing tests, missing configuration)
	SilenceUsage: true,
	RunE:         runRoot,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "yamori version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(yamoriConfigPath, cliMode, debugMode)
	cfg.Release = releaseMode
	cfg.ReportDir = reportDir
	cfg.Verbose = verbose
	cfg.Out = cmd.OutOrStdout()

	application, err := app.NewApplication(cfg)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newMCPServerCmd())

	rootCmd.Flags().StringVarP(&yamoriConfigPath, "yamori-config", "y", config.DefaultConfigPath, "Path to the test configuration file (YAML or TOML)")
	rootCmd.Flags().BoolVarP(&cliMode, "cli", "c", false, "Run in CLI mode (no TUI)")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&releaseMode, "release", false, "Run the first pass in release build mode")
	rootCmd.Flags().StringVar(&reportDir, "report", "", "Directory to write a JSON report of every run to")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print progress while running in CLI mode")
}
