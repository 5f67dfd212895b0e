package cmd

import (
	"github.com/spf13/viper"

	"github.com/deploymenttheory/go-ledgerbuild/internal/config"
	"github.com/deploymenttheory/go-ledgerbuild/pkg/app"
)

// currentConfig is loaded once per invocation before any command runs
var currentConfig = &config.Config{}

// loadConfig reads the config file and environment overrides
func loadConfig(file string) error {
	cfg, err := config.Load(viper.New(), file)
	if err != nil {
		return app.NewError(app.ErrCodeInvalidInput, "cannot load configuration", err)
	}
	currentConfig = cfg
	return nil
}
