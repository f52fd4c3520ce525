package cli_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	setupCLITest(t)

	tests := []struct {
		name     string
		args     []string
		contains []string
		absent   []string
	}{
		{
			name:     "table",
			args:     []string{"list"},
			contains: []string{"ID", "mortgage-calculator", "Mortgage Calculator", "length-converter"},
		},
		{
			name:     "category",
			args:     []string{"list", "--category", "health"},
			contains: []string{"bmi-calculator"},
			absent:   []string{"mortgage-calculator"},
		},
		{
			name:     "categories",
			args:     []string{"list", "--categories"},
			contains: []string{"finance", "Financial Calculators", "/converters"},
		},
		{
			name:     "paged",
			args:     []string{"list", "--page", "2", "--page-size", "10"},
			contains: []string{"Page 2 of 9 (82 calculators)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.absent {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestList_PlainSorted(t *testing.T) {
	setupCLITest(t)
	out, _, err := execute(t, "list", "-o", "plain", "--category", "converters", "--sort", "id:desc", "--limit", "3")
	require.NoError(t, err)

	ids := strings.Fields(out)
	require.Len(t, ids, 3)
	assert.True(t, ids[0] > ids[1] && ids[1] > ids[2], "ids not descending: %v", ids)
	for _, id := range ids {
		assert.True(t, strings.HasSuffix(id, "-converter"), id)
	}
}

func TestList_JSON(t *testing.T) {
	setupCLITest(t)
	out, _, err := execute(t, "list", "-o", "json", "--limit", "5", "--offset", "80")
	require.NoError(t, err)

	var got struct {
		Tools []struct {
			ID string `json:"id"`
		} `json:"tools"`
		Pagination struct {
			TotalItems int `json:"totalItems"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Tools, 2)
	assert.Equal(t, 82, got.Pagination.TotalItems)
}

func TestList_Errors(t *testing.T) {
	setupCLITest(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown category", args: []string{"list", "--category", "astrology"}, want: `unknown category "astrology"`},
		{name: "bad sort field", args: []string{"list", "--sort", "price"}, want: "price"},
		{name: "mixed pagination", args: []string{"list", "--page", "1", "--page-size", "5", "--offset", "3"}, want: "cannot use both"},
		{name: "negative limit", args: []string{"list", "--limit", "-1"}, want: "cannot be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDescribe(t *testing.T) {
	setupCLITest(t)

	t.Run("table", func(t *testing.T) {
		out, _, err := execute(t, "describe", "bmi-calculator")
		require.NoError(t, err)
		assert.Contains(t, out, "BMI Calculator (bmi-calculator)")
		assert.Contains(t, out, "--amount")
		assert.Contains(t, out, "Height (cm)")
		assert.Contains(t, out, "## Formula")
	})

	t.Run("html", func(t *testing.T) {
		out, _, err := execute(t, "describe", "bmi-calculator", "--html")
		require.NoError(t, err)
		assert.Contains(t, out, "<h1>BMI Calculator</h1>")
		assert.Contains(t, out, "<table>")
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := execute(t, "describe", "bmi-calculator", "-o", "json")
		require.NoError(t, err)
		var d map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &d))
		assert.Equal(t, "bmi-calculator", d["id"])
	})

	t.Run("unknown", func(t *testing.T) {
		_, _, err := execute(t, "describe", "warp-drive-calculator")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown tool")
	})
}
