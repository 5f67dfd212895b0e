package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-ledgerbuild/pkg/app/install"
)

var (
	// Install options (install command only)
	installDryRun bool
	installPython bool
	installDir    string
)

var installCmd = &cobra.Command{
	Use:   "install [manifest-path]",
	Short: "Install the application on a device with ledgerctl",
	Long: `Install the application described by a JSON manifest using ledgerctl.

Examples:
  # Install from the application directory
  ledgerbuild install app.json --dir target/thumbv6m-none-eabi/release

  # Go through the Python module instead of the ledgerctl script
  ledgerbuild install app.json --python

  # Only print the command
  ledgerbuild install app.json --dry-run`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(installCmd)

	installCmd.Flags().BoolVarP(&installDryRun, "dry-run", "n", false, "print the command without running it")
	installCmd.Flags().BoolVar(&installPython, "python", false, "run ledgerctl as a Python module")
	installCmd.Flags().StringVarP(&installDir, "dir", "C", "", "directory to run ledgerctl in (default from config, else .)")
}

func runInstall(cmd *cobra.Command, manifestPath string) error {
	ctx := newContext(cmd)

	request := &install.Request{
		DryRun:         installDryRun,
		UseInterpreter: installPython,
		WorkingDir:     installDir,
		ManifestPath:   manifestPath,
	}
	if !cmd.Flags().Changed("python") {
		request.UseInterpreter = ctx.Config.Install.Python
	}
	if request.WorkingDir == "" {
		request.WorkingDir = ctx.Config.Install.WorkingDir
	}

	response, err := install.Handle(ctx, request)
	if err != nil {
		return err
	}

	if ctx.Quiet {
		return nil
	}
	return install.FormatOutput(ctx.Stdout, response, ctx.OutputFormat)
}
