package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/deploymenttheory/go-ledgerbuild/internal/config"
	"github.com/deploymenttheory/go-ledgerbuild/internal/interfaces"
	"github.com/deploymenttheory/go-ledgerbuild/internal/runner"
	"github.com/deploymenttheory/go-ledgerbuild/internal/toolchain"
)

// Context holds application-wide configuration and state
type Context struct {
	context.Context

	// Output preferences
	OutputFormat string
	Verbose      bool
	Quiet        bool
	NoColor      bool

	// Streams relayed tool output and reports are written to
	Stdout io.Writer
	Stderr io.Writer

	Logger *logrus.Logger

	// Collaborators
	Fs     afero.Fs
	Runner interfaces.CommandRunner
	Config *config.Config
}

// NewContext creates a new application context backed by the OS
// filesystem and real child processes
func NewContext() *Context {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.InfoLevel)

	return &Context{
		Context:      context.Background(),
		OutputFormat: "table",
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Logger:       logger,
		Fs:           afero.NewOsFs(),
		Runner:       runner.NewExecRunner(logger),
		Config:       &config.Config{},
	}
}

// WithCancel creates a cancellable context
func (c *Context) WithCancel() (*Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(c.Context)
	newCtx := *c
	newCtx.Context = ctx
	return &newCtx, cancel
}

// ApplyVerbosity maps the Verbose and Quiet flags onto the logger level
func (c *Context) ApplyVerbosity() {
	switch {
	case c.Quiet:
		c.Logger.SetLevel(logrus.ErrorLevel)
	case c.Verbose:
		c.Logger.SetLevel(logrus.DebugLevel)
	default:
		c.Logger.SetLevel(logrus.InfoLevel)
	}
}

// Tools resolves the external executables from the loaded configuration
func (c *Context) Tools() toolchain.Set {
	if c.Config == nil {
		return toolchain.NewSet(nil)
	}
	return toolchain.NewSet(&c.Config.Tools)
}

// Log outputs a message based on verbosity settings
func (c *Context) Log(message string) {
	c.Logger.Debug(message)
}

// Info outputs a message unless quiet
func (c *Context) Info(message string) {
	c.Logger.Info(message)
}

// Error outputs an error message, even when quiet
func (c *Context) Error(message string) {
	c.Logger.Error(message)
}

// ToolFailed logs the exit status of a tool that ran and failed. Errors that
// carry no exit status are left to the caller's error report.
func (c *Context) ToolFailed(tool string, err error) {
	if code := runner.ExitCode(err); code >= 0 {
		c.Error(fmt.Sprintf("%s exited with status %d", tool, code))
	}
}

// Relay copies captured tool output verbatim to the context's streams
func (c *Context) Relay(stdout, stderr []byte) error {
	if len(stdout) > 0 {
		if _, err := c.Stdout.Write(stdout); err != nil {
			return err
		}
	}
	if len(stderr) > 0 {
		if _, err := c.Stderr.Write(stderr); err != nil {
			return err
		}
	}
	return nil
}
