package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rshade/calckit/internal/calc"
	"github.com/rshade/calckit/internal/config"
)

// tabPadding is the column gap of tabular output.
const tabPadding = 2

// totalMarker flags the headline row in table output.
const totalMarker = "*"

//nolint:gochecknoglobals // Shared render style.
var totalStyle = lipgloss.NewStyle().Bold(true)

// outputFormat resolves --output against the configured default.
func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	format = strings.ToLower(format)
	switch format {
	case config.FormatTable, config.FormatJSON, config.FormatPlain:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

// outputLocale resolves --locale against the configured default.
func outputLocale(cmd *cobra.Command) string {
	if locale, _ := cmd.Flags().GetString("locale"); locale != "" {
		return locale
	}
	return config.GetLocale()
}

// styled reports whether w is an interactive terminal.
func styled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// renderRows writes a result set in a non-JSON format.
func renderRows(w io.Writer, format string, rows []calc.ResultRow) error {
	if format == config.FormatPlain {
		for _, r := range rows {
			if _, err := fmt.Fprintf(w, "%s: %s\n", r.Label, r.Value); err != nil {
				return err
			}
		}
		return nil
	}

	bold := styled(w)
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "\tLabel\tValue")
	fmt.Fprintln(tw, "\t-----\t-----")
	for _, r := range rows {
		marker, value := "", r.Value
		if r.IsTotal {
			marker = totalMarker
			if bold {
				value = totalStyle.Render(value)
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", marker, r.Label, value)
	}
	return tw.Flush()
}

// computeOutput is the JSON shape of one computation.
type computeOutput struct {
	Tool    string           `json:"tool"`
	Title   string           `json:"title"`
	Results []calc.ResultRow `json:"results"`
}
