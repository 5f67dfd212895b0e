// Package toolchain resolves which external executables ledgerbuild invokes.
// Resolution only picks names; invoking them is the runner's job.
package toolchain

import (
	"fmt"
	"strings"

	"github.com/deploymenttheory/go-ledgerbuild/internal/config"
)

// Fallback executables used when nothing overrides them
const (
	DefaultObjcopy           = "arm-none-eabi-objcopy"
	DefaultSize              = "arm-none-eabi-size"
	DefaultProvisioner       = "ledgerctl"
	DefaultInterpreter       = "python3"
	DefaultProvisionerModule = "ledgerctl"
)

// Source tells where a resolved tool came from
type Source int

const (
	// SourceDefault is the built-in fallback name
	SourceDefault Source = iota
	// SourceOverride is an explicit value from the environment, a config file or a flag
	SourceOverride
)

func (s Source) String() string {
	switch s {
	case SourceOverride:
		return "override"
	case SourceDefault:
		return "default"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// MarshalText lets reports render the source by name
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Tool is a resolved external executable
type Tool struct {
	Name   string `json:"name" yaml:"name"`
	Path   string `json:"path" yaml:"path"`
	Source Source `json:"source" yaml:"source"`
}

// Resolve picks override when it is non-blank and fallback otherwise
func Resolve(name, override, fallback string) Tool {
	if v := strings.TrimSpace(override); v != "" {
		return Tool{Name: name, Path: v, Source: SourceOverride}
	}
	return Tool{Name: name, Path: fallback, Source: SourceDefault}
}

// Set is the full set of tools ledgerbuild may invoke
type Set struct {
	Objcopy           Tool
	Size              Tool
	Provisioner       Tool
	Interpreter       Tool
	ProvisionerModule Tool
}

// NewSet resolves every tool from cfg. A nil cfg yields the defaults.
func NewSet(cfg *config.ToolsConfig) Set {
	if cfg == nil {
		cfg = &config.ToolsConfig{}
	}
	return Set{
		Objcopy:           Resolve("objcopy", cfg.Objcopy, DefaultObjcopy),
		Size:              Resolve("size", cfg.Size, DefaultSize),
		Provisioner:       Resolve("provisioner", cfg.Provisioner, DefaultProvisioner),
		Interpreter:       Resolve("interpreter", cfg.Interpreter, DefaultInterpreter),
		ProvisionerModule: Resolve("provisioner_module", cfg.ProvisionerModule, DefaultProvisionerModule),
	}
}
