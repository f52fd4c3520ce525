package pagination

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rshade/calckit/internal/registry"
)

// toolKeys maps sort fields to the descriptor value compared.
//
//nolint:gochecknoglobals // Static lookup table.
var toolKeys = map[string]func(registry.ToolDescriptor) string{
	"id":       func(d registry.ToolDescriptor) string { return d.ID },
	"title":    func(d registry.ToolDescriptor) string { return strings.ToLower(d.Title) },
	"category": func(d registry.ToolDescriptor) string { return d.Category },
}

// ToolSortFields lists the accepted --sort fields.
func ToolSortFields() []string {
	fields := make([]string, 0, len(toolKeys))
	for f := range toolKeys {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

// SortTools returns a sorted copy of tools. An empty field keeps the input
// order. Ties keep their input order.
func SortTools(tools []registry.ToolDescriptor, field, order string) ([]registry.ToolDescriptor, error) {
	out := slices.Clone(tools)
	if field == "" {
		return out, nil
	}
	key, ok := toolKeys[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(ToolSortFields(), ", "))
	}
	slices.SortStableFunc(out, func(a, b registry.ToolDescriptor) int {
		c := strings.Compare(key(a), key(b))
		if order == SortOrderDesc {
			return -c
		}
		return c
	})
	return out, nil
}
