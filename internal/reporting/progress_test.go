package reporting

import (
	"bytes"
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/stretchr/testify/assert"

	"yamori/internal/config"
)

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf)
	results := sampleResults()

	p.ReportStart(config.TestConfig{
		Tests: []config.TestCase{{Name: "greets"}, {Name: "farewell"}},
		Build: &config.BuildConfig{Release: true},
	})
	p.ReportPreBuild("make", "")
	p.ReportTestStart(0, config.TestCase{Name: "greets"})
	p.ReportTestResult(0, results[0])
	p.ReportPreBuild("make farewell", "farewell")
	p.ReportTestStart(1, config.TestCase{Name: "farewell"})
	p.ReportTestResult(1, results[1])
	p.ReportRunResult(results)

	want := "Starting 2 tests in release mode\n" +
		"  pre-build: make\n" +
		"  [1/2] greets... PASS (12ms)\n" +
		"  pre-build (farewell): make farewell\n" +
		"  [2/2] farewell... FAIL (1.50s)\n"
	assert.Equal(t, want, stripansi.Strip(buf.String()))
}
