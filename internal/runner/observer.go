package runner

import "yamori/internal/config"

// Observer receives progress callbacks while the engine runs. Callbacks are
// made synchronously from the goroutine calling Run.
type Observer interface {
	// ReportStart is called once before any pre-build command runs
	ReportStart(cfg config.TestConfig)
	// ReportPreBuild is called before each pre-build command; test is empty for global commands
	ReportPreBuild(command, test string)
	// ReportTestStart is called before a test command is spawned
	ReportTestStart(index int, tc config.TestCase)
	// ReportTestResult is called when a test completes
	ReportTestResult(index int, result TestResult)
	// ReportRunResult is called after the last test, only when the run succeeded
	ReportRunResult(results []TestResult)
}

// NopObserver ignores every callback. Embed it to implement a subset.
type NopObserver struct{}

func (NopObserver) ReportStart(config.TestConfig)        {}
func (NopObserver) ReportPreBuild(string, string)        {}
func (NopObserver) ReportTestStart(int, config.TestCase) {}
func (NopObserver) ReportTestResult(int, TestResult)     {}
func (NopObserver) ReportRunResult([]TestResult)         {}
