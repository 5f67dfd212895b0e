package regionsize

import (
	"github.com/dustin/go-humanize"

	"github.com/deploymenttheory/go-ledgerbuild/internal/types"
	"github.com/deploymenttheory/go-ledgerbuild/pkg/app"
)

// Request represents a region size computation request
type Request struct {
	ELFPath string

	// Boundary symbols; empty means the configured or built-in default
	StartSymbol string
	EndSymbol   string
}

// Response represents the computed region
type Response struct {
	app.RunInfo `yaml:",inline"`

	Path        string     `json:"path" yaml:"path"`
	StartSymbol string     `json:"start_symbol" yaml:"start_symbol"`
	EndSymbol   string     `json:"end_symbol" yaml:"end_symbol"`
	Start       types.Addr `json:"start" yaml:"start"`
	End         types.Addr `json:"end" yaml:"end"`
	Size        uint64     `json:"size" yaml:"size"`
}

// FormatSize returns a human-readable size string
func (r *Response) FormatSize() string {
	return humanize.IBytes(r.Size)
}
