package install

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/deploymenttheory/go-ledgerbuild/pkg/app"
)

// FormatOutput formats the install result according to output format.
// Dry runs have already printed their command, so the table form stays silent.
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
		if response.DryRun {
			return nil
		}
		_, err := fmt.Fprintln(w, FormatSummary(response))
		return err
	default:
		return app.NewStageError(app.StageInstall, app.ErrCodeUnsupportedFormat,
			fmt.Sprintf("unsupported output format: %s", format), nil)
	}
}

// FormatSummary provides a brief summary of the install
func FormatSummary(response *Response) string {
	if response.DryRun {
		return "Dry run: " + response.Command.String()
	}
	return fmt.Sprintf("Installed with %s in %v", response.Command.Name, response.Duration)
}
