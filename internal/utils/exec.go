package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"simctl/pkg/logging"
)

// ExitError reports that an external command exited with a non-zero status.
// The CLI propagates Code as its own exit code, leaving diagnostics to the
// command's own stderr output.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("command exited with code %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode extracts the process exit status carried by err. It returns 0 for
// nil and 1 for failures that never produced an exit status (spawn errors,
// precondition failures).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return 1
}

// Runner executes external commands in a working directory. Run streams the
// command's stdio to the caller's terminal (interactive subcommands, `logs -f`),
// Capture collects stdout for inspection (service discovery).
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) error
	Capture(ctx context.Context, dir string, name string, args ...string) (string, error)
}

// ExecRunner is the os/exec backed Runner used outside of tests.
type ExecRunner struct{}

// Run executes the command with inherited stdin/stdout/stderr. It blocks for
// the command's full runtime; cancellation is the child's own signal handling.
func (ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	logging.Debug("exec", "+ %s %s", name, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return &ExitError{Code: ee.ExitCode(), Err: err}
	}
	return fmt.Errorf("failed to run %s: %w", name, err)
}

// Capture executes the command and returns its standard output. Stderr is
// collected and folded into the returned error for diagnostics.
func (ExecRunner) Capture(ctx context.Context, dir string, name string, args ...string) (string, error) {
	logging.Debug("exec", "+ %s %s", name, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return stdout.String(), &ExitError{
			Code: ee.ExitCode(),
			Err:  fmt.Errorf("%s exited with code %d: %s", name, ee.ExitCode(), strings.TrimSpace(stderr.String())),
		}
	}
	return stdout.String(), fmt.Errorf("failed to run %s: %w", name, err)
}
