package regionsize

import (
	"github.com/deploymenttheory/go-ledgerbuild/pkg/app"
)

// Validate validates a region size request
func (r *Request) Validate() error {
	if r.ELFPath == "" {
		return app.NewStageError(app.StageSize, app.ErrCodeInvalidInput, "ELF path is required", nil)
	}

	if r.StartSymbol != "" && r.StartSymbol == r.EndSymbol {
		return app.NewStageError(app.StageSize, app.ErrCodeInvalidInput, "start and end symbol must differ", nil)
	}

	return nil
}
