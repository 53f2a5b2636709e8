package utils

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test relies on POSIX shell utilities")
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 3, ExitCode(&ExitError{Code: 3}))
	assert.Equal(t, 3, ExitCode(fmt.Errorf("wrapped: %w", &ExitError{Code: 3})))
	assert.Equal(t, 1, ExitCode(errors.New("spawn failure")))
}

func TestCaptureReturnsStdout(t *testing.T) {
	skipOnWindows(t)

	out, err := ExecRunner{}.Capture(context.Background(), "", "echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestCaptureRunsInDirectory(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()

	out, err := ExecRunner{}.Capture(context.Background(), dir, "pwd")
	require.NoError(t, err)
	assert.Contains(t, out, dir)
}

func TestCaptureMapsNonZeroExit(t *testing.T) {
	skipOnWindows(t)

	_, err := ExecRunner{}.Capture(context.Background(), "", "false")
	require.Error(t, err)

	var ee *ExitError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 1, ee.Code)
	assert.Equal(t, 1, ExitCode(err))
}

func TestCaptureFoldsStderrIntoError(t *testing.T) {
	skipOnWindows(t)

	_, err := ExecRunner{}.Capture(context.Background(), "", "sh", "-c", "echo boom >&2; exit 7")
	require.Error(t, err)
	assert.Equal(t, 7, ExitCode(err))
	assert.Contains(t, err.Error(), "boom")
}

func TestRunSpawnFailureIsNotExitError(t *testing.T) {
	err := ExecRunner{}.Run(context.Background(), "", "simctl-no-such-binary-for-tests")
	require.Error(t, err)

	var ee *ExitError
	assert.False(t, errors.As(err, &ee), "a spawn failure never carries a child exit status")
	assert.Equal(t, 1, ExitCode(err))
}
