package export

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/deploymenttheory/go-ledgerbuild/pkg/app"
)

// FormatOutput formats the export result according to output format.
// The size report itself has already been relayed, so the table form only
// summarizes.
func FormatOutput(w io.Writer, response *Response, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(response)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		encoder.SetIndent(2)
		return encoder.Encode(response)
	case "table", "":
		_, err := fmt.Fprintln(w, FormatSummary(response))
		return err
	default:
		return app.NewStageError(app.StageExport, app.ErrCodeUnsupportedFormat,
			fmt.Sprintf("unsupported output format: %s", format), nil)
	}
}

// FormatSummary provides a brief summary of the export
func FormatSummary(response *Response) string {
	return fmt.Sprintf("Exported %s -> %s (%s) with %s",
		response.ELFPath, response.DestPath, response.Format, response.ObjcopyTool.Path)
}
