package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/calckit/internal/units"
)

func TestBracketSetTax(t *testing.T) {
	tests := []struct {
		name   string
		set    BracketSet
		income float64
		status FilingStatus
		want   float64
	}{
		{name: "zero income", set: PaycheckBrackets2025, income: 0, status: FilingSingle, want: 0},
		{name: "negative income", set: PaycheckBrackets2025, income: -100, status: FilingSingle, want: 0},
		{name: "first bracket", set: PaycheckBrackets2025, income: 10_000, status: FilingSingle, want: 1000},
		{name: "third bracket single 2025", set: PaycheckBrackets2025, income: 50_000, status: FilingSingle, want: 5914},
		{name: "first bracket top married 2024", set: StandaloneBrackets2024, income: 23_200, status: FilingMarried, want: 2320},
		{name: "unknown status uses single", set: PaycheckBrackets2025, income: 10_000, status: "other", want: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.set.Tax(tt.income, tt.status), 1e-6)
		})
	}
}

func TestTaxMonotonicity(t *testing.T) {
	for _, set := range []BracketSet{PaycheckBrackets2025, StandaloneBrackets2024} {
		for _, status := range FilingStatuses() {
			t.Run(set.Name+"/"+string(status), func(t *testing.T) {
				prev := 0.0
				for income := 0.0; income <= 1_500_000; income += 2_500 {
					tax := set.Tax(income, status)
					require.GreaterOrEqual(t, tax, prev, "income %v", income)
					if income > 0 {
						require.LessOrEqual(t, tax/income, set.TopRate(status))
					}
					prev = tax
				}
			})
		}
	}
}

func TestBracketSetsDiffer(t *testing.T) {
	assert.NotEqual(t,
		PaycheckBrackets2025.Tax(100_000, FilingSingle),
		StandaloneBrackets2024.Tax(100_000, FilingSingle))
}

func TestMarginalRate(t *testing.T) {
	assert.InDelta(t, 0.22, PaycheckBrackets2025.MarginalRate(50_000, FilingSingle), 1e-9)
	assert.InDelta(t, 0.37, PaycheckBrackets2025.MarginalRate(5_000_000, FilingSingle), 1e-9)
	assert.InDelta(t, 0.37, PaycheckBrackets2025.TopRate(FilingMarried), 1e-9)
}

func TestParseFilingStatus(t *testing.T) {
	tests := []struct {
		in   string
		want FilingStatus
	}{
		{in: "", want: FilingSingle},
		{in: "Single", want: FilingSingle},
		{in: "Married Filing Jointly", want: FilingMarried},
		{in: "hoh", want: FilingHeadOfHousehold},
		{in: "head_of_household", want: FilingHeadOfHousehold},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFilingStatus(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFilingStatus("widowed")
	require.ErrorIs(t, err, ErrUnknownFilingStatus)
}

func TestBracketSetByName(t *testing.T) {
	set, err := BracketSetByName("standalone-2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, set.Year)

	set, err = BracketSetByName("")
	require.NoError(t, err)
	assert.Equal(t, PaycheckBrackets2025.Name, set.Name)

	_, err = BracketSetByName("2019")
	require.ErrorIs(t, err, ErrUnknownBracketSet)
}

func TestCalculatePaycheck(t *testing.T) {
	texas, err := units.LookupState("TX")
	require.NoError(t, err)

	rows := CalculatePaycheck(52_000, FilingSingle, texas, 26, PaycheckBrackets2025)

	assert.Equal(t, "$2,000.00", value(t, rows, "Gross Pay"))
	assert.Equal(t, "$244.38", value(t, rows, "Federal Income Tax"))
	assert.Equal(t, "$124.00", value(t, rows, "Social Security"))
	assert.Equal(t, "$29.00", value(t, rows, "Medicare"))
	assert.Equal(t, "$0.00", value(t, rows, "Texas State Tax"))
	assert.Equal(t, "$1,602.62", value(t, rows, "Net Pay"))
	assert.Equal(t, "19.87%", value(t, rows, "Effective Tax Rate"))
}

func TestCalculatePaycheckSocialSecurityCap(t *testing.T) {
	wa, err := units.LookupState("WA")
	require.NoError(t, err)

	rows := CalculatePaycheck(300_000, FilingSingle, wa, 1, PaycheckBrackets2025)
	assert.Equal(t, "$10,918.20", value(t, rows, "Social Security"))
}

func TestCalculateFederalTax(t *testing.T) {
	rows := CalculateFederalTax(50_000, FilingSingle, PaycheckBrackets2025)
	assert.Equal(t, "$5,914.00", value(t, rows, "Federal Income Tax"))
	assert.Equal(t, "22%", value(t, rows, "Marginal Tax Rate"))

	rows = CalculateFederalTax(0, FilingSingle, StandaloneBrackets2024)
	assert.Equal(t, "0.00%", value(t, rows, "Effective Tax Rate"))
	assert.Equal(t, "2024", value(t, rows, "Tax Year"))
}

func TestCalculateStateTax(t *testing.T) {
	il, err := units.LookupState("IL")
	require.NoError(t, err)

	rows := CalculateStateTax(100_000, il)
	assert.Equal(t, "$4,950.00", value(t, rows, "Illinois Income Tax"))
	assert.Equal(t, "4.95%", value(t, rows, "State Rate"))

	fl, err := units.LookupState("FL")
	require.NoError(t, err)
	rows = CalculateStateTax(100_000, fl)
	_, ok := Find(rows, "Note")
	assert.True(t, ok)
}
