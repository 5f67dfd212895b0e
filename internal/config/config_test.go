package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, files map[string]string) *viper.Viper {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	v := viper.New()
	v.SetFs(fs)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper(t, nil), "")
	require.NoError(t, err)

	assert.Equal(t, "_nvram_data", cfg.Region.StartSymbol)
	assert.Equal(t, "_envram_data", cfg.Region.EndSymbol)
	assert.False(t, cfg.Install.Python)
	assert.Equal(t, ".", cfg.Install.WorkingDir)
	assert.Empty(t, cfg.Tools.Objcopy)
	assert.Empty(t, cfg.Tools.Size)
}

func TestLoad_CargoEnvironment(t *testing.T) {
	t.Setenv(EnvObjcopy, "/opt/gcc-arm/bin/arm-none-eabi-objcopy")
	t.Setenv(EnvSize, "/opt/gcc-arm/bin/arm-none-eabi-size")

	cfg, err := Load(newViper(t, nil), "")
	require.NoError(t, err)

	assert.Equal(t, "/opt/gcc-arm/bin/arm-none-eabi-objcopy", cfg.Tools.Objcopy)
	assert.Equal(t, "/opt/gcc-arm/bin/arm-none-eabi-size", cfg.Tools.Size)
}

func TestLoad_PrefixedEnvironment(t *testing.T) {
	t.Setenv("LEDGERBUILD_TOOLS_INTERPRETER", "python3.12")
	t.Setenv("LEDGERBUILD_INSTALL_PYTHON", "true")

	cfg, err := Load(newViper(t, nil), "")
	require.NoError(t, err)

	assert.Equal(t, "python3.12", cfg.Tools.Interpreter)
	assert.True(t, cfg.Install.Python)
}

func TestLoad_ConfigFile(t *testing.T) {
	v := newViper(t, map[string]string{
		"/work/ledgerbuild.yaml": `
tools:
  objcopy: llvm-objcopy
  provisioner: /usr/local/bin/ledgerctl
region:
  start_symbol: _sdata
  end_symbol: _edata
install:
  working_dir: build
`,
	})

	cfg, err := Load(v, "/work/ledgerbuild.yaml")
	require.NoError(t, err)

	assert.Equal(t, "llvm-objcopy", cfg.Tools.Objcopy)
	assert.Equal(t, "/usr/local/bin/ledgerctl", cfg.Tools.Provisioner)
	assert.Equal(t, "_sdata", cfg.Region.StartSymbol)
	assert.Equal(t, "_edata", cfg.Region.EndSymbol)
	assert.Equal(t, "build", cfg.Install.WorkingDir)
}

func TestLoad_EnvironmentBeatsConfigFile(t *testing.T) {
	t.Setenv(EnvObjcopy, "arm-none-eabi-objcopy-12")
	v := newViper(t, map[string]string{
		"/work/ledgerbuild.yaml": "tools:\n  objcopy: llvm-objcopy\n",
	})

	cfg, err := Load(v, "/work/ledgerbuild.yaml")
	require.NoError(t, err)
	assert.Equal(t, "arm-none-eabi-objcopy-12", cfg.Tools.Objcopy)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(newViper(t, nil), "/work/missing.yaml")
	assert.Error(t, err)
}
