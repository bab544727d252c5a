package reporting

import (
	"bytes"
	"testing"
	"time"

	"github.com/acarl005/stripansi"
	"github.com/stretchr/testify/assert"

	"yamori/internal/diff"
	"yamori/internal/runner"
)

func sampleResults() []runner.TestResult {
	return []runner.TestResult{
		{
			Name:          "greets",
			Success:       true,
			ActualOutput:  "hi\n",
			Command:       "echo",
			Args:          []string{"hi"},
			ExecutionTime: 12 * time.Millisecond,
		},
		{
			Name:         "farewell",
			Success:      false,
			ActualOutput: "bye\n",
			Command:      "echo",
			Args:         []string{"bye"},
			Diff: []diff.Line{
				{Tag: diff.Equal, Content: "same"},
				{Tag: diff.Delete, Content: "hi"},
				{Tag: diff.Insert, Content: "bye"},
			},
			ExecutionTime: 1500 * time.Millisecond,
			IsRelease:     true,
		},
	}
}

func TestPrinter_Results(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Header("tests/configs/tests.toml")
	p.Results(sampleResults())

	want := "Running tests from configuration: tests/configs/tests.toml\n" +
		"\n=== Test Results ===\n" +
		"Passed: 1/2 (50.0%)\n" +
		"====================\n\n" +
		"[PASS] Test #1: greets (12ms)\n" +
		"[FAIL] Test #2: farewell (1500ms)\n" +
		"  Command: echo bye\n" +
		"  Expected vs Actual:\n" +
		"  - hi\n" +
		"  + bye\n" +
		"\n"
	assert.Equal(t, want, stripansi.Strip(buf.String()))
}

func TestPrinter_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Results(nil)
	assert.Contains(t, stripansi.Strip(buf.String()), "Passed: 0/0 (0.0%)")
}
