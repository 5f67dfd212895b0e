package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-ledgerbuild/pkg/app/export"
)

var exportCmd = &cobra.Command{
	Use:   "export [elf-path] [hex-path]",
	Short: "Convert an application ELF to Intel HEX",
	Long: `Convert the application ELF to an Intel HEX image with objcopy, then
print the section sizes reported by the size tool.

The tools default to arm-none-eabi-objcopy and arm-none-eabi-size and can be
overridden with CARGO_TARGET_THUMBV6M_NONE_EABI_OBJCOPY and
CARGO_TARGET_THUMBV6M_NONE_EABI_SIZE, or tools.objcopy / tools.size in the
config file.

Examples:
  # Export a release build
  ledgerbuild export target/thumbv6m-none-eabi/release/app bin/app.hex

  # Use an LLVM toolchain
  CARGO_TARGET_THUMBV6M_NONE_EABI_OBJCOPY=llvm-objcopy ledgerbuild export app.elf app.hex`,

	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, elfPath, destPath string) error {
	ctx := newContext(cmd)

	response, err := export.Handle(ctx, &export.Request{
		ELFPath:  elfPath,
		DestPath: destPath,
	})
	if err != nil {
		return err
	}

	if ctx.Quiet {
		return nil
	}
	return export.FormatOutput(ctx.Stdout, response, ctx.OutputFormat)
}
