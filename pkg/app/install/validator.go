package install

import (
	"github.com/deploymenttheory/go-ledgerbuild/pkg/app"
)

// Validate validates an install request. The manifest is opaque to
// ledgerbuild and is not opened here.
func (r *Request) Validate() error {
	if r.ManifestPath == "" {
		return app.NewStageError(app.StageInstall, app.ErrCodeInvalidInput, "manifest path is required", nil)
	}
	if !r.DryRun && r.WorkingDir == "" {
		return app.NewStageError(app.StageInstall, app.ErrCodeInvalidInput, "working directory is required unless dry-run", nil)
	}
	return nil
}
