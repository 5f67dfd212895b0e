// Package runnertest provides a CommandRunner test double.
package runnertest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/deploymenttheory/go-ledgerbuild/internal/interfaces"
	"github.com/deploymenttheory/go-ledgerbuild/internal/types"
)

// MockRunner records tool invocations instead of spawning processes
type MockRunner struct {
	mock.Mock
}

var _ interfaces.CommandRunner = (*MockRunner)(nil)

// Run records the call and returns the configured output and error
func (m *MockRunner) Run(ctx context.Context, cmd types.Command) (*types.CommandOutput, error) {
	args := m.Called(ctx, cmd)
	out, _ := args.Get(0).(*types.CommandOutput)
	return out, args.Error(1)
}

// Output builds a CommandOutput from strings
func Output(stdout, stderr string) *types.CommandOutput {
	return &types.CommandOutput{Stdout: []byte(stdout), Stderr: []byte(stderr)}
}
