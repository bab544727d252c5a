package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yamori/internal/config"
	"yamori/internal/runner"
)

type fakeRunner struct {
	results []runner.TestResult
	err     error
	got     config.TestConfig
}

func (f *fakeRunner) Run(_ context.Context, cfg config.TestConfig) ([]runner.TestResult, error) {
	f.got = cfg
	return f.results, f.err
}

func newTestServer(r TestRunner, configs map[string]config.TestConfig) *Server {
	s := New("test", "default.toml", r)
	s.loadConfig = func(path string) (config.TestConfig, error) {
		cfg, ok := configs[path]
		if !ok {
			return config.TestConfig{}, config.ErrConfigNotFound
		}
		return cfg, nil
	}
	return s
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

var suites = map[string]config.TestConfig{
	"default.toml": {
		Tests: []config.TestCase{
			{Name: "echo", Command: "echo", Args: []string{"hi"}, ExpectedOutput: "hi"},
		},
	},
	"other.yaml": {
		Tests: []config.TestCase{
			{Name: "a", Command: "true"},
			{Name: "b", Command: "false", Build: &config.BuildConfig{Release: true}},
		},
	},
}

func TestHandleListTests(t *testing.T) {
	tests := []struct {
		name      string
		args      map[string]any
		wantNames []string
		wantErr   bool
	}{
		{name: "default config", args: nil, wantNames: []string{"echo"}},
		{name: "explicit config", args: map[string]any{"config_path": "other.yaml"}, wantNames: []string{"a", "b"}},
		{name: "missing config", args: map[string]any{"config_path": "nope.toml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(&fakeRunner{}, suites)
			res, err := s.handleListTests(context.Background(), callRequest("yamori_list_tests", tt.args))
			require.NoError(t, err)

			if tt.wantErr {
				assert.True(t, res.IsError)
				assert.Contains(t, resultText(t, res), "Failed to load configuration")
				return
			}

			var infos []TestInfo
			require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &infos))
			var names []string
			for _, i := range infos {
				names = append(names, i.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestHandleListTests_ReportsBuildMode(t *testing.T) {
	s := newTestServer(&fakeRunner{}, suites)
	res, err := s.handleListTests(context.Background(), callRequest("yamori_list_tests", map[string]any{"config_path": "other.yaml"}))
	require.NoError(t, err)

	var infos []TestInfo
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &infos))
	require.Len(t, infos, 2)
	assert.False(t, infos[0].Release)
	assert.True(t, infos[1].Release)
}

func TestHandleRunTests(t *testing.T) {
	fr := &fakeRunner{results: []runner.TestResult{
		{Name: "echo", Success: true, ActualOutput: "hi\n"},
		{Name: "other", Success: false},
	}}
	s := newTestServer(fr, suites)

	res, err := s.handleRunTests(context.Background(), callRequest("yamori_run_tests", map[string]any{"release": true}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var report RunReport
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &report))
	assert.Equal(t, "default.toml", report.ConfigPath)
	assert.True(t, report.Release)
	assert.Equal(t, 1, report.Summary.Passed)
	assert.Equal(t, 2, report.Summary.Total)
	assert.Len(t, report.Results, 2)
	assert.True(t, fr.got.Release(), "release argument applied to the suite")
}

func TestHandleRunTests_KeepsConfiguredModeWithoutArgument(t *testing.T) {
	fr := &fakeRunner{}
	s := newTestServer(fr, map[string]config.TestConfig{
		"default.toml": {Build: &config.BuildConfig{Release: true}},
	})

	_, err := s.handleRunTests(context.Background(), callRequest("yamori_run_tests", nil))
	require.NoError(t, err)
	assert.True(t, fr.got.Release())
}

func TestHandleRunTests_Errors(t *testing.T) {
	tests := []struct {
		name     string
		runner   *fakeRunner
		args     map[string]any
		contains string
	}{
		{
			name:     "run failure",
			runner:   &fakeRunner{err: errors.New("pre-build command failed: make")},
			contains: "Test run failed: pre-build command failed: make",
		},
		{
			name:     "config failure",
			runner:   &fakeRunner{},
			args:     map[string]any{"config_path": "missing.toml"},
			contains: "Failed to load configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(tt.runner, suites)
			res, err := s.handleRunTests(context.Background(), callRequest("yamori_run_tests", tt.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Contains(t, resultText(t, res), tt.contains)
		})
	}
}

func TestNew_RegistersTools(t *testing.T) {
	s := New("1.2.3", "default.toml", &fakeRunner{})
	assert.NotNil(t, s.mcp)
	assert.Equal(t, "default.toml", s.defaultConfig)
}
