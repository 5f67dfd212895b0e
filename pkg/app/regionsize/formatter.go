package regionsize

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/deploymenttheory/go-ledgerbuild/pkg/app"
)

// FormatOutput formats the region size according to output format
func FormatOutput(w io.Writer, response *Response, format string) error {
	switch format {
	case "json":
		return formatJSON(w, response)
	case "yaml":
		return formatYAML(w, response)
	case "table", "":
		return formatTable(w, response)
	default:
		return app.NewStageError(app.StageSize, app.ErrCodeUnsupportedFormat,
			fmt.Sprintf("unsupported output format: %s", format), nil)
	}
}

// formatTable formats the region as a table
func formatTable(w io.Writer, response *Response) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "SYMBOL\tADDRESS\n")
	fmt.Fprintf(tw, "------\t-------\n")
	fmt.Fprintf(tw, "%s\t%s\n", response.StartSymbol, response.Start)
	fmt.Fprintf(tw, "%s\t%s\n", response.EndSymbol, response.End)
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nRegion size: %d bytes (%s)\n", response.Size, response.FormatSize())
	return err
}

// formatJSON formats the region as JSON
func formatJSON(w io.Writer, response *Response) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

// formatYAML formats the region as YAML
func formatYAML(w io.Writer, response *Response) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(response)
}

// FormatSummary provides a one-line summary for build logs
func FormatSummary(response *Response) string {
	return fmt.Sprintf("%s..%s: %d bytes (%s)",
		response.StartSymbol, response.EndSymbol, response.Size, response.FormatSize())
}
