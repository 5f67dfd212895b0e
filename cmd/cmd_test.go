package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-ledgerbuild/internal/elftest"
	"github.com/deploymenttheory/go-ledgerbuild/pkg/app"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags(rootCmd)
	})
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag of cmd and its subcommands to its default,
// including the Changed state later runs consult
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestSizeCommand(t *testing.T) {
	elfPath := writeFile(t, "app.elf", elftest.NVRAM(0x20000100, 0x20000500))

	out, _, err := execute(t, "size", elfPath, "-o", "json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.EqualValues(t, 1024, decoded["size"])
	assert.Equal(t, elfPath, decoded["path"])
}

func TestSizeCommand_Table(t *testing.T) {
	elfPath := writeFile(t, "app.elf", elftest.NVRAM(0x20000100, 0x20000500))

	out, _, err := execute(t, "size", elfPath, "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Region size: 1024 bytes (1.0 KiB)")
}

func TestSizeCommand_NotELF(t *testing.T) {
	binPath := writeFile(t, "app.bin", make([]byte, 128))

	_, _, err := execute(t, "size", binPath, "-o", "table")
	require.Error(t, err)
	assert.Equal(t, app.ErrCodeFormatFailure, app.ErrorCode(err))
}

func TestInstallCommand_DryRun(t *testing.T) {
	out, _, err := execute(t, "install", "app.json", "--dry-run", "-o", "table")
	require.NoError(t, err)
	assert.Equal(t, "ledgerctl install -f app.json\n", out)
}

func TestInstallCommand_DryRunPython(t *testing.T) {
	out, _, err := execute(t, "install", "app.json", "--dry-run", "--python", "-o", "table")
	require.NoError(t, err)
	assert.Equal(t, "python3 -m ledgerctl install -f app.json\n", out)
}

func TestInstallCommand_FlagsDoNotLeak(t *testing.T) {
	t.Run("python", func(t *testing.T) {
		out, _, err := execute(t, "install", "app.json", "--dry-run", "--python")
		require.NoError(t, err)
		assert.Equal(t, "python3 -m ledgerctl install -f app.json\n", out)
	})

	t.Run("native afterwards", func(t *testing.T) {
		assert.False(t, installCmd.Flags().Changed("python"))
		out, _, err := execute(t, "install", "app.json", "--dry-run")
		require.NoError(t, err)
		assert.Equal(t, "ledgerctl install -f app.json\n", out)
	})
}

func TestSizeCommand_VerboseLogsToCommandStderr(t *testing.T) {
	elfPath := writeFile(t, "app.elf", elftest.NVRAM(0x20000100, 0x20000500))

	out, logs, err := execute(t, "size", elfPath, "-o", "json", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, logs, "_nvram_data.._envram_data: 1024 bytes (1.0 KiB)")
	assert.NotContains(t, out, "level=debug")
}

func TestExportCommand_MissingInput(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, "export", filepath.Join(dir, "missing.elf"), filepath.Join(dir, "app.hex"), "-o", "table")
	require.Error(t, err)
	assert.Equal(t, app.ErrCodeIOFailure, app.ErrorCode(err))
}

func TestPrintError(t *testing.T) {
	noColor = true
	t.Cleanup(func() { noColor = false })

	var buf bytes.Buffer
	printError(&buf, app.NewStageError(app.StageSize, app.ErrCodeSymbolResolution, "cannot resolve region symbols", errors.New("missing symbol: _envram_data")))
	assert.Equal(t, "Error: size: [SYMBOL_RESOLUTION_FAILURE] cannot resolve region symbols: missing symbol: _envram_data\n", buf.String())
}
