package calc

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// value returns the value of the row labeled label, failing the test when
// it is missing.
func value(t *testing.T, rows []ResultRow, label string) string {
	t.Helper()
	row, ok := Find(rows, label)
	require.True(t, ok, "row %q not found in %v", label, rows)
	return row.Value
}

// number parses a formatted value such as "$1,234.56", "7.50%" or
// "1,609.344 Meters" back into a float.
func number(t *testing.T, s string) float64 {
	t.Helper()
	field, _, _ := strings.Cut(strings.TrimSpace(s), " ")
	field = strings.NewReplacer("$", "", ",", "", "%", "").Replace(field)
	f, err := strconv.ParseFloat(field, 64)
	require.NoError(t, err, "parse %q", s)
	return f
}
