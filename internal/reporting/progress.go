package reporting

import (
	"fmt"
	"io"

	"yamori/internal/color"
	"yamori/internal/config"
	"yamori/internal/runner"
)

// Progress prints one line per engine event while a run is in flight.
type Progress struct {
	runner.NopObserver
	out   io.Writer
	total int
}

var _ runner.Observer = (*Progress)(nil)

// NewProgress creates a Progress observer writing to out.
func NewProgress(out io.Writer) *Progress {
	return &Progress{out: out}
}

func (p *Progress) ReportStart(cfg config.TestConfig) {
	p.total = len(cfg.Tests)
	mode := "debug"
	if cfg.Release() {
		mode = "release"
	}
	fmt.Fprintf(p.out, "Starting %d tests in %s mode\n", p.total, mode)
}

func (p *Progress) ReportPreBuild(command, test string) {
	if test == "" {
		fmt.Fprintf(p.out, "  pre-build: %s\n", command)
		return
	}
	fmt.Fprintf(p.out, "  pre-build (%s): %s\n", test, command)
}

func (p *Progress) ReportTestStart(index int, tc config.TestCase) {
	fmt.Fprintf(p.out, "  [%d/%d] %s... ", index+1, p.total, tc.Name)
}

func (p *Progress) ReportTestResult(_ int, result runner.TestResult) {
	fmt.Fprintf(p.out, "%s (%s)\n", color.Status(result.Success), formatDuration(result.ExecutionTime))
}
