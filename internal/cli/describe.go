package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/calckit/internal/config"
	"github.com/rshade/calckit/internal/registry"
)

// NewDescribeCmd creates the describe command, which prints a calculator's
// form and explanatory content.
func NewDescribeCmd() *cobra.Command {
	var asHTML bool

	cmd := &cobra.Command{
		Use:   "describe <tool-id>",
		Short: "Show a calculator's inputs and explanation",
		Example: `  # Fields and explanation
  calckit describe mortgage-calculator

  # The explanation as an HTML fragment
  calckit describe mortgage-calculator --html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := registry.Default().Lookup(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if asHTML {
				page, renderErr := registry.RenderHTML(d)
				if renderErr != nil {
					return renderErr
				}
				_, err = fmt.Fprint(out, page)
				return err
			}

			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			switch format {
			case config.FormatJSON:
				return writeJSON(out, d)
			case config.FormatPlain:
				_, err = fmt.Fprint(out, registry.RenderMarkdown(d))
				return err
			}
			return renderDescriptor(cmd, d)
		},
	}

	cmd.Flags().BoolVar(&asHTML, "html", false, "render the explanation as HTML")
	return cmd
}

func renderDescriptor(cmd *cobra.Command, d registry.ToolDescriptor) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", d.Title, d.ID)
	if d.Description != "" {
		fmt.Fprintln(out, d.Description)
	}
	fmt.Fprintf(out, "Category: %s\n\n", d.Category)

	fmt.Fprintln(out, d.FormTitle)
	w := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "Flag\tLabel\tKind\tDefault\tOptions")
	fmt.Fprintln(w, "----\t-----\t----\t-------\t-------")
	for _, f := range d.Fields {
		def := f.Default
		if f.Optional && def == "" {
			def = "(optional)"
		}
		fmt.Fprintf(w, "--%s\t%s\t%s\t%s\t%s\n",
			fieldFlags[f.Key], f.Label, f.Kind, def, summarizeOptions(f.Options))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	_, err := fmt.Fprint(out, registry.RenderMarkdown(d))
	return err
}

// maxListedOptions caps the choices printed per field.
const maxListedOptions = 6

func summarizeOptions(opts []string) string {
	if len(opts) <= maxListedOptions {
		return strings.Join(opts, ", ")
	}
	return fmt.Sprintf("%s, ... (%d total)", strings.Join(opts[:maxListedOptions], ", "), len(opts))
}
