package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"yamori/internal/config"
	"yamori/internal/runner"
	"yamori/pkg/logging"
)

// TestInfo describes one case of a suite.
type TestInfo struct {
	Name    string   `json:"name"`
	Command string   `json:"command"`
	Args    []string `json:"args,omitempty"`
	Release bool     `json:"release"`
}

// RunReport is the payload of yamori_run_tests.
type RunReport struct {
	ConfigPath string              `json:"config_path"`
	Release    bool                `json:"release"`
	Summary    runner.Summary      `json:"summary"`
	Results    []runner.TestResult `json:"results"`
}

func (s *Server) suite(request mcp.CallToolRequest) (string, config.TestConfig, error) {
	path := s.defaultConfig
	if p, ok := request.GetArguments()["config_path"].(string); ok && p != "" {
		path = p
	}
	cfg, err := s.loadConfig(path)
	return path, cfg, err
}

// handleListTests handles the yamori_list_tests MCP tool
func (s *Server) handleListTests(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, cfg, err := s.suite(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to load configuration: %v", err)), nil
	}

	tests := make([]TestInfo, len(cfg.Tests))
	for i, tc := range cfg.Tests {
		tests[i] = TestInfo{
			Name:    tc.Name,
			Command: tc.Command,
			Args:    tc.Args,
			Release: tc.EffectiveRelease(cfg.Build),
		}
	}
	logging.Debug(subsystem, "Listed %d tests from %s", len(tests), path)

	jsonData, err := json.MarshalIndent(tests, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format tests: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleRunTests handles the yamori_run_tests MCP tool
func (s *Server) handleRunTests(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, cfg, err := s.suite(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to load configuration: %v", err)), nil
	}

	if release, ok := request.GetArguments()["release"].(bool); ok {
		cfg = cfg.WithRelease(release)
	}

	logging.Info(subsystem, "Running %d tests from %s", len(cfg.Tests), path)
	results, err := s.runner.Run(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Test run failed: %v", err)), nil
	}

	report := RunReport{
		ConfigPath: path,
		Release:    cfg.Release(),
		Summary:    runner.Summarize(results),
		Results:    results,
	}
	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
