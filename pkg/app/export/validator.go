package export

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/deploymenttheory/go-ledgerbuild/pkg/app"
)

// Validate validates an export request against fs
func (r *Request) Validate(fs afero.Fs) error {
	if r.ELFPath == "" {
		return app.NewStageError(app.StageExport, app.ErrCodeInvalidInput, "ELF path is required", nil)
	}
	if r.DestPath == "" {
		return app.NewStageError(app.StageExport, app.ErrCodeInvalidInput, "destination path is required", nil)
	}
	if filepath.Clean(r.ELFPath) == filepath.Clean(r.DestPath) {
		return app.NewStageError(app.StageExport, app.ErrCodeInvalidInput, "destination would overwrite the ELF input", nil)
	}

	info, err := fs.Stat(r.ELFPath)
	if err != nil {
		return app.NewStageError(app.StageExport, app.ErrCodeIOFailure, "cannot access ELF file", err)
	}
	if info.IsDir() {
		return app.NewStageError(app.StageExport, app.ErrCodeInvalidInput, "ELF path is a directory", nil)
	}

	return nil
}
