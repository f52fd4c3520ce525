package cli

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/calckit/internal/cli/pagination"
	"github.com/rshade/calckit/internal/config"
	"github.com/rshade/calckit/internal/registry"
)

// listOutput is the JSON shape of the list command.
type listOutput struct {
	Tools      []toolSummary   `json:"tools"`
	Pagination pagination.Meta `json:"pagination"`
}

type toolSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// NewListCmd creates the list command, which prints the tool catalog.
func NewListCmd() *cobra.Command {
	var (
		category   string
		categories bool
		sortExpr   string
		params     pagination.Params
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available calculators",
		Example: `  # Every calculator, grouped by category
  calckit list

  # Health calculators in reverse title order
  calckit list --category health --sort title:desc

  # Second page of ten
  calckit list --page 2 --page-size 10

  # The categories themselves
  calckit list --categories`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := params.Validate(); err != nil {
				return err
			}
			field, order, err := pagination.ParseSort(sortExpr)
			if err != nil {
				return err
			}
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			catalog := registry.Default()
			if categories {
				return renderCategories(cmd, format, catalog.Categories())
			}

			tools := catalog.List()
			if category != "" {
				if !knownCategory(catalog, category) {
					return fmt.Errorf("unknown category %q (valid: %s)", category, strings.Join(categoryIDs(catalog), ", "))
				}
				tools = catalog.ListCategory(category)
			}
			tools, err = pagination.SortTools(tools, field, order)
			if err != nil {
				return err
			}
			meta := pagination.NewMeta(params, len(tools))
			tools = pagination.Apply(params, tools)

			cmdLogger(cmd).Debug().Ctx(cmd.Context()).
				Str("category", category).
				Int("total", meta.TotalItems).
				Int("shown", len(tools)).
				Msg("listing tools")
			return renderTools(cmd, format, tools, meta)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list tools of this category")
	cmd.Flags().BoolVar(&categories, "categories", false, "list the categories instead of the tools")
	cmd.Flags().StringVar(&sortExpr, "sort", "", "sort by id, title or category, optionally with :asc or :desc")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "maximum number of tools to show (0 = all)")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "number of tools to skip")
	cmd.Flags().IntVar(&params.Page, "page", 0, "page number, 1-based (requires --page-size)")
	cmd.Flags().IntVar(&params.PageSize, "page-size", 0, "tools per page")

	return cmd
}

func knownCategory(c *registry.Catalog, id string) bool {
	return slices.Contains(categoryIDs(c), id)
}

func categoryIDs(c *registry.Catalog) []string {
	cats := c.Categories()
	ids := make([]string, len(cats))
	for i, cat := range cats {
		ids[i] = cat.ID
	}
	return ids
}

func renderTools(cmd *cobra.Command, format string, tools []registry.ToolDescriptor, meta pagination.Meta) error {
	out := cmd.OutOrStdout()

	switch format {
	case config.FormatJSON:
		summaries := make([]toolSummary, len(tools))
		for i, d := range tools {
			summaries[i] = toolSummary{ID: d.ID, Title: d.Title, Category: d.Category, Description: d.Description}
		}
		return writeJSON(out, listOutput{Tools: summaries, Pagination: meta})

	case config.FormatPlain:
		for _, d := range tools {
			fmt.Fprintln(out, d.ID)
		}
		return nil
	}

	if len(tools) == 0 {
		fmt.Fprintln(out, "No calculators found.")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "ID\tTitle\tCategory")
	fmt.Fprintln(w, "--\t-----\t--------")
	for _, d := range tools {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.ID, d.Title, d.Category)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if meta.TotalPages > 1 {
		fmt.Fprintf(out, "\nPage %d of %d (%d calculators)\n", meta.CurrentPage, meta.TotalPages, meta.TotalItems)
	}
	return nil
}

func renderCategories(cmd *cobra.Command, format string, cats []registry.Category) error {
	out := cmd.OutOrStdout()

	switch format {
	case config.FormatJSON:
		return writeJSON(out, cats)
	case config.FormatPlain:
		for _, c := range cats {
			fmt.Fprintln(out, c.ID)
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "ID\tTitle\tLink")
	fmt.Fprintln(w, "--\t-----\t----")
	for _, c := range cats {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Title, c.Link)
	}
	return w.Flush()
}
