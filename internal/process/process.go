// Package process spawns the commands under test and the shell steps that
// prepare them.
//
// Completion is observed by polling at a fixed interval up to the Spec timeout;
// a process still alive at the deadline is killed. The caller sees
// at most one poll interval of latency past the deadline. A zero timeout
// kills any process that has not exited by the first check.
package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"yamori/pkg/logging"
)

const (
	// DefaultTimeout applies when a Spec carries no timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultPollInterval is the fixed delay between completion checks.
	DefaultPollInterval = 100 * time.Millisecond

	// waitDelay bounds how long Wait keeps draining stdout after the child
	// is gone, e.g. when a grandchild inherited the pipe.
	waitDelay = 2 * time.Second

	subsystem = "Process"
)

// Spec describes a single command invocation.
type Spec struct {
	// Name is the executable, resolved through PATH when it has no separator.
	Name string
	// Args are passed literally, no shell is involved.
	Args []string
	// Input is written to stdin and then closed. Nil leaves stdin unattached.
	Input *string
	// Timeout defaults to DefaultTimeout when nil.
	Timeout *time.Duration
	// Dir is the working directory; empty means the current one.
	Dir string
}

// Result is what a finished process produced.
type Result struct {
	Stdout   string
	ExitCode int
	Duration time.Duration
}

// Orchestrator runs child processes. The zero value is ready to use.
type Orchestrator struct {
	// PollInterval overrides DefaultPollInterval when positive.
	PollInterval time.Duration
	// ShellPath is the POSIX shell used by Shell, "sh" when empty.
	ShellPath string
}

// New returns an Orchestrator with default settings.
func New() *Orchestrator {
	return &Orchestrator{}
}

var defaultOrchestrator = New()

// Run executes spec with the default Orchestrator.
func Run(ctx context.Context, spec Spec) (*Result, error) {
	return defaultOrchestrator.Run(ctx, spec)
}

// Shell runs command through sh -c with the default Orchestrator.
func Shell(ctx context.Context, command string) (*Result, error) {
	return defaultOrchestrator.Shell(ctx, command)
}

// Run spawns the command, feeds its input and polls it until it exits, the
// timeout elapses or ctx is cancelled. A non-zero exit status is reported in
// the Result, not as an error.
func (o *Orchestrator) Run(ctx context.Context, spec Spec) (*Result, error) {
	timeout := DefaultTimeout
	if spec.Timeout != nil {
		timeout = max(*spec.Timeout, 0)
	}

	cmd := exec.Command(spec.Name, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.WaitDelay = waitDelay

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	var stdin io.WriteCloser
	if spec.Input != nil {
		pipe, err := cmd.StdinPipe()
		if err != nil {
			return nil, newError(ErrSpawnFailed, spec.Name, err)
		}
		stdin = pipe
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, newError(ErrSpawnFailed, spec.Name, err)
	}
	logging.Debug(subsystem, "Spawned %s (pid %d, timeout %v)", spec.Name, cmd.Process.Pid, timeout)

	// Wait closes stdin once the child exits, so it only starts after the
	// payload has been written.
	writeDone := make(chan error, 1)
	done := make(chan error, 1)
	go func() {
		var werr error
		if stdin != nil {
			werr = writeInput(stdin, *spec.Input)
		}
		writeDone <- werr
		done <- cmd.Wait()
	}()

	waitErr, perr := o.poll(ctx, cmd, stdin, done, start, timeout)
	elapsed := time.Since(start)
	if perr != nil {
		perr.Command = spec.Name
		if perr.Kind == ErrTimedOut {
			logging.Warn(subsystem, "Killed %s after %v", spec.Name, timeout)
		}
		return nil, perr
	}

	if werr := <-writeDone; werr != nil {
		return nil, newError(ErrStdinWriteFailed, spec.Name, werr)
	}

	exitCode := 0
	if waitErr != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(waitErr, &exitErr):
			exitCode = exitErr.ExitCode()
		case errors.Is(waitErr, exec.ErrWaitDelay):
			logging.Warn(subsystem, "%s exited but its output pipe stayed open; output may be truncated", spec.Name)
		default:
			return nil, newError(ErrWaitFailed, spec.Name, waitErr)
		}
	}

	logging.Debug(subsystem, "%s exited with code %d in %v", spec.Name, exitCode, elapsed)

	return &Result{
		Stdout:   strings.ToValidUTF8(stdout.String(), "�"),
		ExitCode: exitCode,
		Duration: elapsed,
	}, nil
}

// poll checks for completion once per interval until the deadline. On
// timeout or cancellation the child is killed and reaped before returning.
func (o *Orchestrator) poll(ctx context.Context, cmd *exec.Cmd, stdin io.Closer, done <-chan error, start time.Time, timeout time.Duration) (waitErr error, failure *Error) {
	interval := o.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case waitErr = <-done:
			return waitErr, nil
		default:
		}

		if time.Since(start) >= timeout {
			kill(cmd, stdin, done)
			return nil, newError(ErrTimedOut, "", nil)
		}

		select {
		case waitErr = <-done:
			return waitErr, nil
		case <-ctx.Done():
			kill(cmd, stdin, done)
			return nil, newError(ErrWaitFailed, "", ctx.Err())
		case <-ticker.C:
		}
	}
}

// kill stops the child and reaps it. Closing stdin releases a writer that is
// blocked because a grandchild inherited the pipe without reading it.
func kill(cmd *exec.Cmd, stdin io.Closer, done <-chan error) {
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		logging.Error(subsystem, err, "Failed to kill pid %d", cmd.Process.Pid)
	}
	if stdin != nil {
		_ = stdin.Close()
	}
	<-done
}

// writeInput writes the whole payload and closes stdin so the child sees
// end of input. A child that exits before consuming the payload makes the
// write fail with a broken pipe.
func writeInput(stdin io.WriteCloser, input string) error {
	_, err := io.WriteString(stdin, input)
	if closeErr := stdin.Close(); err == nil && !errors.Is(closeErr, os.ErrClosed) {
		err = closeErr
	}
	return err
}

// Shell runs command through a POSIX shell and captures its combined
// output. A non-zero exit is reported as ErrNonZeroExit.
func (o *Orchestrator) Shell(ctx context.Context, command string) (*Result, error) {
	shell := o.ShellPath
	if shell == "" {
		shell = "sh"
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, shell, "-c", command)
	cmd.WaitDelay = waitDelay
	out, err := cmd.CombinedOutput()
	res := &Result{
		Stdout:   string(out),
		Duration: time.Since(start),
	}
	if err == nil {
		logging.Debug(subsystem, "Shell command succeeded in %v: %s", res.Duration, command)
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ctx.Err() != nil {
			return nil, newError(ErrWaitFailed, command, ctx.Err())
		}
		res.ExitCode = exitErr.ExitCode()
		return res, &Error{
			Kind:     ErrNonZeroExit,
			Command:  command,
			ExitCode: res.ExitCode,
			Output:   res.Stdout,
		}
	}
	return nil, newError(ErrSpawnFailed, command, err)
}
