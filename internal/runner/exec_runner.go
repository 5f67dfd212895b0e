// File: internal/runner/exec_runner.go
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"

	"github.com/sirupsen/logrus"

	"github.com/deploymenttheory/go-ledgerbuild/internal/interfaces"
	"github.com/deploymenttheory/go-ledgerbuild/internal/types"
)

var (
	// ErrToolNotFound is returned when the executable does not exist
	ErrToolNotFound = errors.New("tool not found")
	// ErrToolFailed is returned when the tool could not be started or exited non-zero
	ErrToolFailed = errors.New("tool execution failed")
)

// ExecRunner runs commands as child processes
type ExecRunner struct {
	logger logrus.FieldLogger
}

// Ensure ExecRunner implements the CommandRunner interface
var _ interfaces.CommandRunner = (*ExecRunner)(nil)

// NewExecRunner creates a runner that logs invocations to logger.
// A nil logger discards log output.
func NewExecRunner(logger logrus.FieldLogger) *ExecRunner {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &ExecRunner{logger: logger}
}

// Run executes cmd and waits for it to exit. Stdout and stderr are captured
// in full. There is no retry.
func (r *ExecRunner) Run(ctx context.Context, cmd types.Command) (*types.CommandOutput, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("%w: empty executable name", ErrToolNotFound)
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	log := r.logger.WithFields(logrus.Fields{
		"tool": cmd.Name,
		"dir":  cmd.Dir,
	})
	log.Debugf("running %s", cmd)

	err := c.Run()
	out := &types.CommandOutput{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if err == nil {
		log.Debug("tool exited successfully")
		return out, nil
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		log.WithField("exit_code", exitErr.ExitCode()).Debug("tool exited with failure")
		return out, fmt.Errorf("%w: %s exited with status %d: %w", ErrToolFailed, cmd.Name, exitErr.ExitCode(), err)
	case isNotFound(err):
		return nil, fmt.Errorf("%w: %s: %w", ErrToolNotFound, cmd.Name, err)
	default:
		return nil, fmt.Errorf("%w: starting %s: %w", ErrToolFailed, cmd.Name, err)
	}
}

// ExitCode extracts the exit status from an error returned by Run.
// It returns -1 when err does not carry one.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func isNotFound(err error) bool {
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	var pathErr *fs.PathError
	// a missing working directory also surfaces as ENOENT, under "chdir"
	return errors.As(err, &pathErr) && pathErr.Op != "chdir" && errors.Is(pathErr.Err, fs.ErrNotExist)
}
