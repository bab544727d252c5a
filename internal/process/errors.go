package process

import (
	"errors"
	"fmt"
)

var (
	// ErrSpawnFailed is returned when the executable could not be started.
	ErrSpawnFailed = errors.New("failed to spawn command")
	// ErrStdinWriteFailed is returned when the input payload could not be written.
	ErrStdinWriteFailed = errors.New("failed to write to stdin")
	// ErrTimedOut is returned when the process outlived its timeout and was killed.
	ErrTimedOut = errors.New("command timed out")
	// ErrWaitFailed is returned when collecting the process status failed.
	ErrWaitFailed = errors.New("command execution failed")
	// ErrNonZeroExit is returned by Shell when the command exits unsuccessfully.
	ErrNonZeroExit = errors.New("command exited with non-zero status")
)

// Error describes a failed interaction with a child process.
// It matches its Kind and its underlying cause with errors.Is.
type Error struct {
	Kind     error
	Command  string
	ExitCode int
	Output   string
	Err      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%v: %s", e.Kind, e.Command)
	if e.Kind == ErrNonZeroExit {
		msg = fmt.Sprintf("%s (exit code %d)", msg, e.ExitCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, command string, err error) *Error {
	return &Error{Kind: kind, Command: command, ExitCode: -1, Err: err}
}
