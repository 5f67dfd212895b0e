package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Environment variables the cargo thumbv6m target uses for its binutils
const (
	EnvObjcopy = "CARGO_TARGET_THUMBV6M_NONE_EABI_OBJCOPY"
	EnvSize    = "CARGO_TARGET_THUMBV6M_NONE_EABI_SIZE"
)

// Config holds ledgerbuild configuration
type Config struct {
	Tools   ToolsConfig   `mapstructure:"tools"`
	Region  RegionConfig  `mapstructure:"region"`
	Install InstallConfig `mapstructure:"install"`
}

// ToolsConfig holds explicit executable overrides. Empty fields fall back
// to the toolchain defaults.
type ToolsConfig struct {
	Objcopy           string `mapstructure:"objcopy"`
	Size              string `mapstructure:"size"`
	Provisioner       string `mapstructure:"provisioner"`
	Interpreter       string `mapstructure:"interpreter"`
	ProvisionerModule string `mapstructure:"provisioner_module"`
}

// RegionConfig names the linker symbols bounding the NVRAM region
type RegionConfig struct {
	StartSymbol string `mapstructure:"start_symbol"`
	EndSymbol   string `mapstructure:"end_symbol"`
}

// InstallConfig holds defaults for the install command
type InstallConfig struct {
	Python     bool   `mapstructure:"python"`
	WorkingDir string `mapstructure:"working_dir"`
}

// Load reads configuration into v and unmarshals it.
//
// When file is empty the config is searched as ledgerbuild.yaml in the
// current directory, $HOME/.ledgerbuild and /etc/ledgerbuild; a missing file
// is not an error. Every key can also be set from LEDGERBUILD_* variables,
// and the objcopy/size overrides honour the cargo target variables.
func Load(v *viper.Viper, file string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("ledgerbuild")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.ledgerbuild")
		v.AddConfigPath("/etc/ledgerbuild")
	}

	// Set defaults
	v.SetDefault("region.start_symbol", "_nvram_data")
	v.SetDefault("region.end_symbol", "_envram_data")
	v.SetDefault("install.python", false)
	v.SetDefault("install.working_dir", ".")

	// Allow environment variables
	v.SetEnvPrefix("LEDGERBUILD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindings := map[string]string{
		"tools.objcopy":            EnvObjcopy,
		"tools.size":               EnvSize,
		"tools.provisioner":        "LEDGERBUILD_TOOLS_PROVISIONER",
		"tools.interpreter":        "LEDGERBUILD_TOOLS_INTERPRETER",
		"tools.provisioner_module": "LEDGERBUILD_TOOLS_PROVISIONER_MODULE",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s to %s: %w", key, env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}
