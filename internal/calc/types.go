// Package calc implements the calculator library: one pure function per
// tool, each returning an ordered list of labeled result rows.
//
// Functions take already-coerced primitive inputs and never read shared
// mutable state, so identical arguments always yield identical rows. The
// single exception is GeneratePassword, which draws from a caller-supplied
// random source.
//
// Structurally impossible inputs (a payment that never covers interest, a
// vertical slope, a malformed point) are reported as a single row labeled
// "Error" rather than as a Go error. Go errors are reserved for reference
// table lookups (unknown unit or currency).
package calc

// ErrorLabel is the label of the row emitted for impossible computations.
const ErrorLabel = "Error"

// ResultRow is one line of calculator output. By convention exactly one row
// per result set carries IsTotal and is rendered as the headline answer.
type ResultRow struct {
	Label   string `json:"label"             yaml:"label"`
	Value   string `json:"value"             yaml:"value"`
	IsTotal bool   `json:"isTotal,omitempty" yaml:"is_total,omitempty"`
}

// Row builds a plain result row.
func Row(label, value string) ResultRow {
	return ResultRow{Label: label, Value: value}
}

// Total builds the headline result row.
func Total(label, value string) ResultRow {
	return ResultRow{Label: label, Value: value, IsTotal: true}
}

// ErrorRow returns the single-row result set for an impossible computation.
func ErrorRow(msg string) []ResultRow {
	return []ResultRow{{Label: ErrorLabel, Value: msg}}
}

// HasError reports whether rows is an error result set.
func HasError(rows []ResultRow) bool {
	return len(rows) == 1 && rows[0].Label == ErrorLabel
}

// TotalRow returns the first row flagged IsTotal.
func TotalRow(rows []ResultRow) (ResultRow, bool) {
	for _, r := range rows {
		if r.IsTotal {
			return r, true
		}
	}
	return ResultRow{}, false
}

// Find returns the first row with the given label.
func Find(rows []ResultRow, label string) (ResultRow, bool) {
	for _, r := range rows {
		if r.Label == label {
			return r, true
		}
	}
	return ResultRow{}, false
}
