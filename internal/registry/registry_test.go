package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := Parse(catalogYAML)
	require.NoError(t, err)

	assert.Equal(t, 82, c.Len())
	assert.Len(t, c.Categories(), 7)
	assert.Same(t, Default(), Default())
}

func TestEveryDescriptorIsComplete(t *testing.T) {
	for _, d := range Default().List() {
		t.Run(d.ID, func(t *testing.T) {
			assert.NotEmpty(t, d.Title)
			assert.NotEmpty(t, d.Description)
			assert.NotEmpty(t, d.CategoryLink)
			assert.NotEmpty(t, d.FormTitle)
			assert.NotEmpty(t, d.ResultTitle)
			assert.NotEmpty(t, d.Fields)
			assert.Equal(t, strings.ToLower(d.ID), d.ID, "ids are kebab-case")

			for _, f := range d.Fields {
				if f.Kind == KindChoice {
					assert.Contains(t, f.Options, f.Default, "field %s default must be an option", f.Key)
				}
			}
		})
	}
}

func TestResolve(t *testing.T) {
	c := Default()

	d := c.Resolve("mortgage-calculator")
	assert.Equal(t, "Mortgage Calculator", d.Title)
	assert.Equal(t, "/finance", d.CategoryLink)
	assert.Equal(t, "Loan & Money Details", d.FormTitle)

	fallback := c.Resolve("no-such-tool")
	assert.Equal(t, DefaultID, fallback.ID)
	assert.Equal(t, "Calculator", fallback.Title)
	assert.NotEmpty(t, fallback.Fields)
}

func TestLookup(t *testing.T) {
	_, err := Default().Lookup("no-such-tool")
	require.ErrorIs(t, err, ErrUnknownTool)

	d, err := Default().Lookup("bmi-calculator")
	require.NoError(t, err)
	assert.Equal(t, "health", d.Category)
}

func TestDescriptorsAreCopies(t *testing.T) {
	c := Default()
	d := c.Resolve("currency-converter")
	d.Fields[0].Label = "mutated"
	d.Fields[1].Options[0] = "XXX"

	again := c.Resolve("currency-converter")
	assert.Equal(t, "Amount", again.Fields[0].Label)
	assert.NotEqual(t, "XXX", again.Fields[1].Options[0])
}

func TestOptionsFromReferenceTables(t *testing.T) {
	c := Default()

	from, ok := c.Resolve("currency-converter").Field(FieldFromUnit)
	require.True(t, ok)
	assert.Contains(t, from.Options, "USD")
	assert.Contains(t, from.Options, "JPY")

	state, ok := c.Resolve("paycheck-calculator").Field(FieldState)
	require.True(t, ok)
	assert.Len(t, state.Options, 51)

	to, ok := c.Resolve("temperature-converter").Field(FieldToUnit)
	require.True(t, ok)
	assert.Equal(t, []string{"Celsius", "Fahrenheit", "Kelvin"}, to.Options)
}

func TestListOrder(t *testing.T) {
	c := Default()
	list := c.List()
	require.Len(t, list, c.Len())

	rank := map[string]int{}
	for i, cat := range c.Categories() {
		rank[cat.ID] = i
	}
	for i := 1; i < len(list); i++ {
		prev, cur := list[i-1], list[i]
		require.LessOrEqual(t, rank[prev.Category], rank[cur.Category])
		if prev.Category == cur.Category {
			require.LessOrEqual(t, prev.Title, cur.Title)
		}
	}

	converters := c.ListCategory("converters")
	assert.Len(t, converters, 6)
	assert.Empty(t, c.ListCategory("astrology"))
}

func TestDefaults(t *testing.T) {
	d := Default().Resolve("length-converter")
	assert.Equal(t, map[string]string{
		FieldAmount:   "1",
		FieldFromUnit: "Miles",
		FieldToUnit:   "Kilometers",
	}, d.Defaults())

	w := Default().Resolve("weight-converter").Defaults()
	assert.NotEqual(t, d.Defaults()[FieldFromUnit], w[FieldFromUnit])
}

func TestParseRejectsInvalidCatalogs(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "malformed yaml",
			doc:  "tools: [",
		},
		{
			name: "unknown category",
			doc: `
categories: [{id: math}]
tools:
  - {id: a, category: finance, fields: [{key: amount}]}`,
		},
		{
			name: "duplicate id",
			doc: `
categories: [{id: math}]
tools:
  - {id: a, category: math, fields: [{key: amount}]}
  - {id: a, category: math, fields: [{key: amount}]}`,
		},
		{
			name: "unknown field key",
			doc: `
categories: [{id: math}]
tools:
  - {id: a, category: math, fields: [{key: input9}]}`,
		},
		{
			name: "field bound twice",
			doc: `
categories: [{id: math}]
tools:
  - {id: a, category: math, fields: [{key: amount}, {key: amount}]}`,
		},
		{
			name: "choice without options",
			doc: `
categories: [{id: math}]
tools:
  - {id: a, category: math, fields: [{key: text, kind: choice}]}`,
		},
		{
			name: "unknown option source",
			doc: `
categories: [{id: math}]
tools:
  - {id: a, category: math, fields: [{key: text, kind: choice, options_from: planets}]}`,
		},
		{
			name: "reserved id",
			doc: `
categories: [{id: math}]
tools:
  - {id: default, category: math, fields: [{key: amount}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestParseAppliesDefaults(t *testing.T) {
	c, err := Parse([]byte(`
categories: [{id: math, link: /math, form_title: Enter, result_title: Out}]
tools:
  - {id: a, title: A, category: math, result_title: Custom, fields: [{key: amount}]}`))
	require.NoError(t, err)

	d := c.Resolve("a")
	assert.Equal(t, "/math", d.CategoryLink)
	assert.Equal(t, "Enter", d.FormTitle)
	assert.Equal(t, "Custom", d.ResultTitle)
	assert.Equal(t, KindNumber, d.Fields[0].Kind)
}
