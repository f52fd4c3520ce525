// Package registry holds the static tool catalog: one ToolDescriptor per
// calculator with its presentation metadata and input field schema.
package registry

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/rshade/calckit/internal/calc"
	"github.com/rshade/calckit/internal/units"
)

// DefaultID is the descriptor returned for unknown tool ids.
const DefaultID = "default"

// ErrUnknownTool is returned by Lookup for ids not in the catalog.
var ErrUnknownTool = constError("unknown tool")

// ErrInvalidCatalog indicates a catalog document that fails validation.
var ErrInvalidCatalog = constError("invalid catalog")

type constError string

func (e constError) Error() string { return string(e) }

//go:embed catalog.yaml
var catalogYAML []byte

// catalogFile is the on-disk shape of catalog.yaml.
type catalogFile struct {
	Categories []Category       `yaml:"categories"`
	Default    ToolDescriptor   `yaml:"default"`
	Tools      []ToolDescriptor `yaml:"tools"`
}

// Catalog is an immutable, validated set of tool descriptors.
type Catalog struct {
	categories []Category
	fallback   ToolDescriptor
	tools      map[string]ToolDescriptor
	order      []string
}

//nolint:gochecknoglobals // Parsed once from the embedded catalog.
var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return Parse(catalogYAML)
})

// Default returns the embedded catalog. It panics if the embedded document
// is invalid, which the package tests rule out.
func Default() *Catalog {
	c, err := defaultCatalog()
	if err != nil {
		panic(fmt.Sprintf("registry: embedded catalog: %v", err))
	}
	return c
}

// Parse decodes and validates a catalog document. Category defaults fill
// empty CategoryLink, FormTitle and ResultTitle values, and fields with
// options_from get their options from the reference tables.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	c := &Catalog{
		categories: file.Categories,
		tools:      make(map[string]ToolDescriptor, len(file.Tools)),
	}
	byID := make(map[string]Category, len(file.Categories))
	for _, cat := range file.Categories {
		byID[cat.ID] = cat
	}

	fallback, err := prepare(file.Default, Category{})
	if err != nil {
		return nil, err
	}
	fallback.ID = DefaultID
	c.fallback = fallback

	for _, d := range file.Tools {
		if d.ID == "" || d.ID == DefaultID {
			return nil, fmt.Errorf("%w: tool id %q is reserved or empty", ErrInvalidCatalog, d.ID)
		}
		if _, dup := c.tools[d.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate tool id %q", ErrInvalidCatalog, d.ID)
		}
		cat, ok := byID[d.Category]
		if !ok {
			return nil, fmt.Errorf("%w: tool %q has unknown category %q", ErrInvalidCatalog, d.ID, d.Category)
		}
		prepared, err := prepare(d, cat)
		if err != nil {
			return nil, err
		}
		c.tools[d.ID] = prepared
		c.order = append(c.order, d.ID)
	}
	return c, nil
}

// prepare applies category defaults and validates the field schema.
func prepare(d ToolDescriptor, cat Category) (ToolDescriptor, error) {
	if d.CategoryLink == "" {
		d.CategoryLink = cat.Link
	}
	if d.FormTitle == "" {
		d.FormTitle = cat.FormTitle
	}
	if d.ResultTitle == "" {
		d.ResultTitle = cat.ResultTitle
	}

	fields := make([]FieldSpec, 0, len(d.Fields))
	seen := make(map[string]bool, len(d.Fields))
	for _, f := range d.Fields {
		if !slices.Contains(FieldKeys(), f.Key) {
			return d, fmt.Errorf("%w: tool %q binds unknown field %q", ErrInvalidCatalog, d.ID, f.Key)
		}
		if seen[f.Key] {
			return d, fmt.Errorf("%w: tool %q binds field %q twice", ErrInvalidCatalog, d.ID, f.Key)
		}
		seen[f.Key] = true
		if f.Kind == "" {
			f.Kind = KindNumber
		}
		if f.OptionsFrom != "" {
			opts, err := optionsFrom(f.OptionsFrom)
			if err != nil {
				return d, fmt.Errorf("%w: tool %q field %q: %w", ErrInvalidCatalog, d.ID, f.Key, err)
			}
			f.Options = opts
		}
		if f.Kind == KindChoice && len(f.Options) == 0 {
			return d, fmt.Errorf("%w: tool %q choice field %q has no options", ErrInvalidCatalog, d.ID, f.Key)
		}
		fields = append(fields, f)
	}
	d.Fields = fields
	return d, nil
}

// optionsFrom resolves a named option source against the reference tables.
func optionsFrom(source string) ([]string, error) {
	switch source {
	case "currency":
		return units.DefaultRates().Codes(), nil
	case "states":
		return units.StateCodes(), nil
	case "filing-status":
		var out []string
		for _, s := range calc.FilingStatuses() {
			out = append(out, string(s))
		}
		return out, nil
	case "gender":
		return []string{string(calc.Male), string(calc.Female)}, nil
	case "activity":
		var out []string
		for _, a := range calc.ActivityLevels() {
			out = append(out, string(a))
		}
		return out, nil
	}
	kind, err := units.ParseKind(source)
	if err != nil {
		return nil, err
	}
	return units.Names(kind), nil
}

// Resolve returns the descriptor for id, or the default descriptor when id
// is unknown. It never fails.
func (c *Catalog) Resolve(id string) ToolDescriptor {
	if d, ok := c.tools[id]; ok {
		return d.clone()
	}
	return c.fallback.clone()
}

// Lookup returns the descriptor for id or ErrUnknownTool.
func (c *Catalog) Lookup(id string) (ToolDescriptor, error) {
	d, ok := c.tools[id]
	if !ok {
		return ToolDescriptor{}, fmt.Errorf("%w: %q", ErrUnknownTool, id)
	}
	return d.clone(), nil
}

// IDs returns every tool id in catalog order.
func (c *Catalog) IDs() []string {
	return slices.Clone(c.order)
}

// List returns every descriptor sorted by category then title.
func (c *Catalog) List() []ToolDescriptor {
	rank := make(map[string]int, len(c.categories))
	for i, cat := range c.categories {
		rank[cat.ID] = i
	}
	out := make([]ToolDescriptor, 0, len(c.tools))
	for _, id := range c.order {
		out = append(out, c.tools[id].clone())
	}
	slices.SortStableFunc(out, func(a, b ToolDescriptor) int {
		if d := rank[a.Category] - rank[b.Category]; d != 0 {
			return d
		}
		return strings.Compare(a.Title, b.Title)
	})
	return out
}

// ListCategory returns the descriptors of one category, sorted by title.
func (c *Catalog) ListCategory(category string) []ToolDescriptor {
	var out []ToolDescriptor
	for _, d := range c.List() {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}

// Categories returns the categories in display order.
func (c *Catalog) Categories() []Category {
	return slices.Clone(c.categories)
}

// Len returns the number of tools.
func (c *Catalog) Len() int {
	return len(c.tools)
}
