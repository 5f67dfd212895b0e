package install

import (
	"github.com/deploymenttheory/go-ledgerbuild/internal/types"
	"github.com/deploymenttheory/go-ledgerbuild/pkg/app"
)

// Request represents an application install request
type Request struct {
	// Print the command instead of running it
	DryRun bool
	// Run the provisioner as a module of the interpreter (python3 -m ledgerctl)
	UseInterpreter bool
	// Directory the provisioner runs in; ignored for dry runs
	WorkingDir string
	// JSON application manifest handed to the provisioner
	ManifestPath string
}

// Response represents the outcome of an install
type Response struct {
	app.RunInfo `yaml:",inline"`

	Command  types.Command `json:"command" yaml:"command"`
	DryRun   bool          `json:"dry_run" yaml:"dry_run"`
	Executed bool          `json:"executed" yaml:"executed"`
}
