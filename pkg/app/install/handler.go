package install

import (
	"fmt"

	"github.com/deploymenttheory/go-ledgerbuild/internal/toolchain"
	"github.com/deploymenttheory/go-ledgerbuild/internal/types"
	"github.com/deploymenttheory/go-ledgerbuild/pkg/app"
)

// BuildCommand constructs the provisioning command for req.
//
// Native mode runs `<provisioner> install -f <manifest>`; interpreter mode runs
// `<interpreter> -m <module> install -f <manifest>`. The working directory is
// only set when the command will actually run.
func BuildCommand(req *Request, tools toolchain.Set) types.Command {
	var cmd types.Command
	if req.UseInterpreter {
		cmd.Name = tools.Interpreter.Path
		cmd.Args = []string{"-m", tools.ProvisionerModule.Path}
	} else {
		cmd.Name = tools.Provisioner.Path
	}
	cmd.Args = append(cmd.Args, "install", "-f", req.ManifestPath)

	if !req.DryRun {
		cmd.Dir = req.WorkingDir
	}
	return cmd
}

// Handle installs the application described by the request's manifest, or
// prints the command when DryRun is set
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	run := app.NewRunInfo()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	cmd := BuildCommand(req, ctx.Tools())
	resp := &Response{
		Command: cmd,
		DryRun:  req.DryRun,
	}

	if req.DryRun {
		if _, err := fmt.Fprintln(ctx.Stdout, cmd.String()); err != nil {
			return nil, app.NewStageError(app.StageInstall, app.ErrCodeOutputFailure, "cannot print command", err)
		}
		run.Finish()
		resp.RunInfo = run
		return resp, nil
	}

	ctx.Log(fmt.Sprintf("Running %s in %s", cmd, cmd.Dir))
	out, err := ctx.Runner.Run(ctx, cmd)
	if out != nil {
		if relayErr := ctx.Relay(out.Stdout, out.Stderr); relayErr != nil {
			return nil, app.NewStageError(app.StageInstall, app.ErrCodeOutputFailure, "cannot relay provisioner output", relayErr)
		}
	}
	if err != nil {
		ctx.ToolFailed(cmd.Name, err)
		return nil, app.NewToolError(app.StageInstall, cmd.Name, err)
	}

	run.Finish()
	resp.RunInfo = run
	resp.Executed = true
	ctx.Info(fmt.Sprintf("Installed %s in %v", req.ManifestPath, run.Duration))

	return resp, nil
}
