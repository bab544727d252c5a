package runner

import (
	"fmt"
	"slices"
	"time"

	"yamori/internal/diff"
)

// TestResult is the outcome of a single test. Diff is nil exactly when
// Success is true.
type TestResult struct {
	Name          string        `json:"name"`
	Success       bool          `json:"success"`
	ActualOutput  string        `json:"actual_output"`
	Diff          []diff.Line   `json:"diff,omitempty"`
	Command       string        `json:"command"`
	Args          []string      `json:"args,omitempty"`
	Input         *string       `json:"input,omitempty"`
	ExecutionTime time.Duration `json:"execution_time_ns"`
	IsRelease     bool          `json:"is_release"`
	BuildCommands []string      `json:"build_commands,omitempty"`
}

// CommandLine joins the resolved command and its arguments for display.
func (r TestResult) CommandLine() string {
	line := r.Command
	for _, a := range r.Args {
		line += " " + a
	}
	return line
}

// Clone returns a deep copy.
func (r TestResult) Clone() TestResult {
	out := r
	out.Diff = slices.Clone(r.Diff)
	out.Args = slices.Clone(r.Args)
	out.BuildCommands = slices.Clone(r.BuildCommands)
	if r.Input != nil {
		in := *r.Input
		out.Input = &in
	}
	return out
}

// CloneResults deep-copies a result sequence. Nil stays nil.
func CloneResults(results []TestResult) []TestResult {
	if results == nil {
		return nil
	}
	out := make([]TestResult, len(results))
	for i, r := range results {
		out[i] = r.Clone()
	}
	return out
}

// Summary aggregates a result sequence.
type Summary struct {
	Passed int     `json:"passed"`
	Total  int     `json:"total"`
	Rate   float64 `json:"pass_rate"`
}

func (s Summary) String() string {
	return fmt.Sprintf("%d/%d (%.1f%%)", s.Passed, s.Total, s.Rate)
}

// Failed is the number of unsuccessful tests.
func (s Summary) Failed() int {
	return s.Total - s.Passed
}

// Summarize counts passing tests. The rate is a percentage, zero for an
// empty sequence.
func Summarize(results []TestResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Success {
			s.Passed++
		}
	}
	if s.Total > 0 {
		s.Rate = float64(s.Passed) / float64(s.Total) * 100
	}
	return s
}

// AllPassed reports whether every test succeeded.
func AllPassed(results []TestResult) bool {
	for _, r := range results {
		if !r.Success {
			return false
		}
	}
	return true
}
