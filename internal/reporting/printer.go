package reporting

import (
	"fmt"
	"io"

	"yamori/internal/color"
	"yamori/internal/diff"
	"yamori/internal/runner"
)

// Printer writes the CLI listing of a run.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Header announces the suite being run.
func (p *Printer) Header(configPath string) {
	fmt.Fprintf(p.out, "Running tests from configuration: %s\n", configPath)
}

// Results prints the pass summary followed by one line per test. Failing
// tests also show the command and the changed lines of their diff.
func (p *Printer) Results(results []runner.TestResult) {
	s := runner.Summarize(results)

	fmt.Fprintf(p.out, "\n=== Test Results ===\n")
	fmt.Fprintf(p.out, "Passed: %s\n", s)
	fmt.Fprintf(p.out, "====================\n\n")

	for i, r := range results {
		fmt.Fprintf(p.out, "[%s] Test #%d: %s (%dms)\n", color.Status(r.Success), i+1, r.Name, r.ExecutionTime.Milliseconds())
		if r.Success {
			continue
		}

		fmt.Fprintf(p.out, "  Command: %s\n", r.CommandLine())
		fmt.Fprintf(p.out, "  Expected vs Actual:\n")
		for _, line := range r.Diff {
			switch line.Tag {
			case diff.Delete:
				fmt.Fprintf(p.out, "  %s\n", color.ErrorStyle.Render(line.String()))
			case diff.Insert:
				fmt.Fprintf(p.out, "  %s\n", color.SuccessStyle.Render(line.String()))
			}
		}
		fmt.Fprintln(p.out)
	}
}
