// Package mcpserver exposes the test engine to MCP clients over stdio.
//
// Two tools are registered:
//
//   - yamori_list_tests lists the cases of a suite without running them.
//   - yamori_run_tests runs a suite and returns its summary and results.
//
// Both accept an optional config_path; the server's default suite is used
// when it is omitted.
package mcpserver

import (
	"context"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"yamori/internal/config"
	"yamori/internal/runner"
	"yamori/pkg/logging"
)

const subsystem = "MCP"

// TestRunner executes a suite. *runner.Engine satisfies it.
type TestRunner interface {
	Run(ctx context.Context, cfg config.TestConfig) ([]runner.TestResult, error)
}

// Server is a stdio MCP server backed by a TestRunner.
type Server struct {
	mcp           *server.MCPServer
	runner        TestRunner
	defaultConfig string

	// For mocking in tests
	loadConfig func(path string) (config.TestConfig, error)
}

// New creates a server that runs suites with r. defaultConfig is loaded when
// a tool call names no config_path.
func New(version, defaultConfig string, r TestRunner) *Server {
	s := &Server{
		runner:        r,
		defaultConfig: defaultConfig,
		loadConfig:    config.LoadConfig,
	}

	s.mcp = server.NewMCPServer(
		"yamori",
		version,
		server.WithToolCapabilities(true),
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("yamori_list_tests",
		mcp.WithDescription("List the test cases defined in a yamori configuration"),
		mcp.WithString("config_path",
			mcp.Description("Path to the TOML or YAML test configuration"),
		),
	), s.handleListTests)

	s.mcp.AddTool(mcp.NewTool("yamori_run_tests",
		mcp.WithDescription("Run every test case of a yamori configuration and report the results"),
		mcp.WithString("config_path",
			mcp.Description("Path to the TOML or YAML test configuration"),
		),
		mcp.WithBoolean("release",
			mcp.Description("Run in release build mode instead of the mode configured in the file"),
		),
	), s.handleRunTests)
}

// Serve handles MCP requests read from in until ctx is cancelled or in is
// exhausted.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	logging.Info(subsystem, "Starting yamori MCP server (stdio transport)")
	return server.NewStdioServer(s.mcp).Listen(ctx, in, out)
}
