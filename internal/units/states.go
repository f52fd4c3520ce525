package units

import (
	"fmt"
	"strings"
)

// StateTaxRecord is a flat approximation of a jurisdiction's income tax.
type StateTaxRecord struct {
	Code          string  `json:"code"            yaml:"code"`
	Name          string  `json:"name"            yaml:"name"`
	IncomeTaxRate float64 `json:"income_tax_rate" yaml:"income_tax_rate"`
}

// Rates are fractions (0.05 = 5%). No-income-tax states carry 0.
//
//nolint:gochecknoglobals // Static reference table.
var stateTaxes = []StateTaxRecord{
	{Code: "AL", Name: "Alabama", IncomeTaxRate: 0.05},
	{Code: "AK", Name: "Alaska", IncomeTaxRate: 0},
	{Code: "AZ", Name: "Arizona", IncomeTaxRate: 0.025},
	{Code: "AR", Name: "Arkansas", IncomeTaxRate: 0.044},
	{Code: "CA", Name: "California", IncomeTaxRate: 0.093},
	{Code: "CO", Name: "Colorado", IncomeTaxRate: 0.044},
	{Code: "CT", Name: "Connecticut", IncomeTaxRate: 0.05},
	{Code: "DE", Name: "Delaware", IncomeTaxRate: 0.066},
	{Code: "DC", Name: "District of Columbia", IncomeTaxRate: 0.085},
	{Code: "FL", Name: "Florida", IncomeTaxRate: 0},
	{Code: "GA", Name: "Georgia", IncomeTaxRate: 0.0539},
	{Code: "HI", Name: "Hawaii", IncomeTaxRate: 0.0825},
	{Code: "ID", Name: "Idaho", IncomeTaxRate: 0.058},
	{Code: "IL", Name: "Illinois", IncomeTaxRate: 0.0495},
	{Code: "IN", Name: "Indiana", IncomeTaxRate: 0.0305},
	{Code: "IA", Name: "Iowa", IncomeTaxRate: 0.038},
	{Code: "KS", Name: "Kansas", IncomeTaxRate: 0.057},
	{Code: "KY", Name: "Kentucky", IncomeTaxRate: 0.04},
	{Code: "LA", Name: "Louisiana", IncomeTaxRate: 0.03},
	{Code: "ME", Name: "Maine", IncomeTaxRate: 0.0715},
	{Code: "MD", Name: "Maryland", IncomeTaxRate: 0.0575},
	{Code: "MA", Name: "Massachusetts", IncomeTaxRate: 0.05},
	{Code: "MI", Name: "Michigan", IncomeTaxRate: 0.0425},
	{Code: "MN", Name: "Minnesota", IncomeTaxRate: 0.0785},
	{Code: "MS", Name: "Mississippi", IncomeTaxRate: 0.044},
	{Code: "MO", Name: "Missouri", IncomeTaxRate: 0.047},
	{Code: "MT", Name: "Montana", IncomeTaxRate: 0.059},
	{Code: "NE", Name: "Nebraska", IncomeTaxRate: 0.052},
	{Code: "NV", Name: "Nevada", IncomeTaxRate: 0},
	{Code: "NH", Name: "New Hampshire", IncomeTaxRate: 0},
	{Code: "NJ", Name: "New Jersey", IncomeTaxRate: 0.0637},
	{Code: "NM", Name: "New Mexico", IncomeTaxRate: 0.049},
	{Code: "NY", Name: "New York", IncomeTaxRate: 0.0685},
	{Code: "NC", Name: "North Carolina", IncomeTaxRate: 0.045},
	{Code: "ND", Name: "North Dakota", IncomeTaxRate: 0.025},
	{Code: "OH", Name: "Ohio", IncomeTaxRate: 0.035},
	{Code: "OK", Name: "Oklahoma", IncomeTaxRate: 0.0475},
	{Code: "OR", Name: "Oregon", IncomeTaxRate: 0.0875},
	{Code: "PA", Name: "Pennsylvania", IncomeTaxRate: 0.0307},
	{Code: "RI", Name: "Rhode Island", IncomeTaxRate: 0.0599},
	{Code: "SC", Name: "South Carolina", IncomeTaxRate: 0.062},
	{Code: "SD", Name: "South Dakota", IncomeTaxRate: 0},
	{Code: "TN", Name: "Tennessee", IncomeTaxRate: 0},
	{Code: "TX", Name: "Texas", IncomeTaxRate: 0},
	{Code: "UT", Name: "Utah", IncomeTaxRate: 0.0455},
	{Code: "VT", Name: "Vermont", IncomeTaxRate: 0.066},
	{Code: "VA", Name: "Virginia", IncomeTaxRate: 0.0575},
	{Code: "WA", Name: "Washington", IncomeTaxRate: 0},
	{Code: "WV", Name: "West Virginia", IncomeTaxRate: 0.0512},
	{Code: "WI", Name: "Wisconsin", IncomeTaxRate: 0.053},
	{Code: "WY", Name: "Wyoming", IncomeTaxRate: 0},
}

// States returns a copy of the state tax table in display order.
func States() []StateTaxRecord {
	out := make([]StateTaxRecord, len(stateTaxes))
	copy(out, stateTaxes)
	return out
}

// StateCodes returns the two-letter codes in display order.
func StateCodes() []string {
	codes := make([]string, 0, len(stateTaxes))
	for _, s := range stateTaxes {
		codes = append(codes, s.Code)
	}
	return codes
}

// LookupState finds a state by two-letter code or full name.
func LookupState(codeOrName string) (StateTaxRecord, error) {
	key := strings.TrimSpace(codeOrName)
	for _, s := range stateTaxes {
		if strings.EqualFold(s.Code, key) || strings.EqualFold(s.Name, key) {
			return s, nil
		}
	}
	return StateTaxRecord{}, fmt.Errorf("%w: %q", ErrStateNotFound, codeOrName)
}

// StateRateOrZero returns the state's rate, or 0 for an unknown code.
func StateRateOrZero(codeOrName string) float64 {
	s, err := LookupState(codeOrName)
	if err != nil {
		return 0
	}
	return s.IncomeTaxRate
}
