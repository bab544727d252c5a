package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"yamori/internal/config"
	"yamori/internal/mcpserver"
	"yamori/internal/runner"
	"yamori/pkg/logging"
)

func newMCPServerCmd() *cobra.Command {
	var configPath string
	var debug bool

	cmd := &cobra.Command{
		Use:   "mcp-server",
		Short: "Serve the test runner over MCP (stdio transport)",
		Long: `Runs an MCP server on stdin/stdout that lets MCP clients list and run
the tests of a yamori configuration.

Tools:
  yamori_list_tests - List the test cases of a configuration
  yamori_run_tests  - Run a configuration and return its results`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := logging.LevelInfo
			if debug {
				level = logging.LevelDebug
			}
			// stdout carries the protocol, logs must stay off it.
			logging.InitForCLI(level, os.Stderr)

			version := rootCmd.Version
			if version == "" {
				version = "dev"
			}
			s := mcpserver.New(version, config.ResolvePath(configPath), runner.New())
			return s.Serve(cmd.Context(), os.Stdin, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&configPath, "yamori-config", "y", config.DefaultConfigPath, "Default test configuration file for tool calls")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	return cmd
}
