package export

import (
	"fmt"
	"path/filepath"

	"github.com/deploymenttheory/go-ledgerbuild/internal/types"
	"github.com/deploymenttheory/go-ledgerbuild/pkg/app"
)

// Handle converts the ELF binary to Intel HEX with objcopy, then runs the
// size tool on the ELF and relays its report
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	run := app.NewRunInfo()

	// 1. Validate request
	if err := req.Validate(ctx.Fs); err != nil {
		return nil, err
	}

	tools := ctx.Tools()
	ctx.Log(fmt.Sprintf("Using %s (%s) and %s (%s)",
		tools.Objcopy.Path, tools.Objcopy.Source, tools.Size.Path, tools.Size.Source))

	// 2. Make sure the destination directory exists
	if dir := filepath.Dir(req.DestPath); dir != "." {
		if err := ctx.Fs.MkdirAll(dir, 0o755); err != nil {
			return nil, app.NewStageError(app.StageExport, app.ErrCodeIOFailure, "cannot create destination directory", err)
		}
	}

	// 3. Convert
	objcopy := types.Command{
		Name: tools.Objcopy.Path,
		Args: []string{req.ELFPath, req.DestPath, "-O", OutputFormat},
	}
	ctx.Log(fmt.Sprintf("Running %s", objcopy))
	out, err := ctx.Runner.Run(ctx, objcopy)
	if out != nil {
		if relayErr := ctx.Relay(out.Stdout, out.Stderr); relayErr != nil {
			return nil, app.NewStageError(app.StageExport, app.ErrCodeOutputFailure, "cannot relay objcopy output", relayErr)
		}
	}
	if err != nil {
		ctx.ToolFailed(tools.Objcopy.Path, err)
		return nil, app.NewToolError(app.StageExport, tools.Objcopy.Path, err)
	}

	// 4. Report sizes
	size := types.Command{
		Name: tools.Size.Path,
		Args: []string{req.ELFPath},
	}
	ctx.Log(fmt.Sprintf("Running %s", size))
	out, err = ctx.Runner.Run(ctx, size)
	if out != nil {
		if relayErr := ctx.Relay(out.Stdout, out.Stderr); relayErr != nil {
			return nil, app.NewStageError(app.StageExport, app.ErrCodeOutputFailure, "cannot relay size output", relayErr)
		}
	}
	if err != nil {
		ctx.ToolFailed(tools.Size.Path, err)
		return nil, app.NewToolError(app.StageExport, tools.Size.Path, err)
	}

	var report string
	if out != nil {
		report = string(out.Stdout)
	}

	run.Finish()
	ctx.Info(fmt.Sprintf("Exported %s to %s in %v", req.ELFPath, req.DestPath, run.Duration))

	return &Response{
		RunInfo:     run,
		ELFPath:     req.ELFPath,
		DestPath:    req.DestPath,
		Format:      OutputFormat,
		ObjcopyTool: tools.Objcopy,
		SizeTool:    tools.Size,
		SizeReport:  report,
	}, nil
}
