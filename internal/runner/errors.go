package runner

import (
	"errors"
	"fmt"
	"time"

	"yamori/internal/process"
)

// ErrPreBuildFailed matches every PreBuildError.
var ErrPreBuildFailed = errors.New("pre-build command failed")

// PreBuildError is returned when a global or per-test pre-build command
// could not be run or exited unsuccessfully. Test is empty for global
// commands.
type PreBuildError struct {
	Command  string
	Test     string
	ExitCode int
	Output   string
	Err      error
}

func (e *PreBuildError) Error() string {
	if e.Test != "" {
		return fmt.Sprintf("%v for test %q: %s", ErrPreBuildFailed, e.Test, e.Command)
	}
	return fmt.Sprintf("%v: %s", ErrPreBuildFailed, e.Command)
}

func (e *PreBuildError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrPreBuildFailed}
	}
	return []error{ErrPreBuildFailed, e.Err}
}

// TimeoutError is returned when a test command outlived its timeout. It
// matches process.ErrTimedOut.
type TimeoutError struct {
	Test    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%v: %s (after %v)", process.ErrTimedOut, e.Test, e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return process.ErrTimedOut }
