// File: internal/interfaces/command_runner.go
package interfaces

import (
	"context"

	"github.com/deploymenttheory/go-ledgerbuild/internal/types"
)

// CommandRunner executes external tools
type CommandRunner interface {
	// Run executes cmd once, blocking until it exits, and returns its captured
	// output. A non-zero exit returns both the output and an error.
	Run(ctx context.Context, cmd types.Command) (*types.CommandOutput, error)
}
