package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-ledgerbuild/pkg/app"
)

var (
	// Global output flags only
	verbose      bool
	quiet        bool
	noColor      bool
	outputFormat string
	configFile   string
)

var rootCmd = &cobra.Command{
	Use:   "ledgerbuild",
	Short: "Post-build helper for Ledger device applications",
	Long: `ledgerbuild runs the steps between linking a device application and
loading it onto a device.

Works on the ELF produced for the thumbv6m-none-eabi target and drives the
cross binutils and ledgerctl. Each command is independent, so a build driver
can call them in any order and decide how to treat failures.

Commands:
  size       Compute the NVRAM region size from linker symbols
  export     Convert the ELF to Intel HEX and print section sizes
  install    Install the application on a device with ledgerctl`,
	Version:       "0.1.0-dev",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(configFile)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Only global output control flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output except errors")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored error output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./ledgerbuild.yaml)")
}

// printError writes err with its stage and kind highlighted
func printError(w io.Writer, err error) {
	if noColor {
		color.NoColor = true
	}
	label := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(w, "%s %v\n", label("Error:"), err)
}

// newContext builds the application context from global flags
func newContext(cmd *cobra.Command) *app.Context {
	ctx := app.NewContext()
	if c := cmd.Context(); c != nil {
		ctx.Context = c
	}
	ctx.OutputFormat = GetOutputFormat()
	ctx.Verbose = GetVerbose()
	ctx.Quiet = GetQuiet()
	ctx.NoColor = noColor
	ctx.Stdout = cmd.OutOrStdout()
	ctx.Stderr = cmd.ErrOrStderr()
	ctx.Logger.SetOutput(ctx.Stderr)
	ctx.Config = currentConfig
	ctx.ApplyVerbosity()
	return ctx
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}

// GetQuiet returns the quiet flag value
func GetQuiet() bool {
	return quiet
}

// GetOutputFormat returns the output format
func GetOutputFormat() string {
	return outputFormat
}
