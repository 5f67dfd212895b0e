package export

import (
	"github.com/deploymenttheory/go-ledgerbuild/internal/toolchain"
	"github.com/deploymenttheory/go-ledgerbuild/pkg/app"
)

// OutputFormat handed to objcopy with -O
const OutputFormat = "ihex"

// Request represents an ELF to Intel HEX export request
type Request struct {
	ELFPath  string
	DestPath string
}

// Response represents a completed export
type Response struct {
	app.RunInfo `yaml:",inline"`

	ELFPath     string         `json:"elf_path" yaml:"elf_path"`
	DestPath    string         `json:"dest_path" yaml:"dest_path"`
	Format      string         `json:"format" yaml:"format"`
	ObjcopyTool toolchain.Tool `json:"objcopy" yaml:"objcopy"`
	SizeTool    toolchain.Tool `json:"size" yaml:"size"`

	// Raw size tool output, also relayed to the caller's streams
	SizeReport string `json:"size_report" yaml:"size_report"`
}
