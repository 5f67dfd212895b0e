package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-ledgerbuild/pkg/app/regionsize"
)

var (
	// Boundary symbols (size command only)
	startSymbol string
	endSymbol   string
)

var sizeCmd = &cobra.Command{
	Use:   "size [elf-path]",
	Short: "Compute the NVRAM region size of an application ELF",
	Long: `Compute the size of the region reserved between two linker symbols.

By default the region runs from _nvram_data to _envram_data.

Examples:
  # NVRAM size of a release build
  ledgerbuild size target/thumbv6m-none-eabi/release/app

  # Machine-readable output for a build script
  ledgerbuild size app.elf -o json

  # Size of another linker-defined region
  ledgerbuild size app.elf --start _sdata --end _edata`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSize(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(sizeCmd)

	sizeCmd.Flags().StringVar(&startSymbol, "start", "", "symbol opening the region (default _nvram_data)")
	sizeCmd.Flags().StringVar(&endSymbol, "end", "", "symbol closing the region (default _envram_data)")
}

func runSize(cmd *cobra.Command, elfPath string) error {
	ctx := newContext(cmd)

	request := &regionsize.Request{
		ELFPath:     elfPath,
		StartSymbol: startSymbol,
		EndSymbol:   endSymbol,
	}

	response, err := regionsize.Handle(ctx, request)
	if err != nil {
		return err
	}

	if ctx.Quiet {
		return nil
	}
	return regionsize.FormatOutput(ctx.Stdout, response, ctx.OutputFormat)
}
