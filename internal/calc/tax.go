package calc

import (
	"fmt"
	"math"
	"strings"

	"github.com/rshade/calckit/internal/units"
)

// FilingStatus selects the federal bracket schedule.
type FilingStatus string

// Supported filing statuses.
const (
	FilingSingle          FilingStatus = "single"
	FilingMarried         FilingStatus = "married"
	FilingHeadOfHousehold FilingStatus = "head-of-household"
)

// ErrUnknownFilingStatus is returned by ParseFilingStatus.
var ErrUnknownFilingStatus = constError("unknown filing status")

// FilingStatuses lists the statuses in display order.
func FilingStatuses() []FilingStatus {
	return []FilingStatus{FilingSingle, FilingMarried, FilingHeadOfHousehold}
}

// ParseFilingStatus accepts the canonical values plus common spellings
// ("Married Filing Jointly", "hoh").
func ParseFilingStatus(s string) (FilingStatus, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	switch key {
	case "single", "":
		return FilingSingle, nil
	case "married", "married-filing-jointly", "mfj", "joint":
		return FilingMarried, nil
	case "head-of-household", "hoh", "head":
		return FilingHeadOfHousehold, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFilingStatus, s)
	}
}

// Bracket is one step of a progressive schedule. Upper is the inclusive top
// of the bracket; the last bracket has Upper = +Inf.
type Bracket struct {
	Upper float64
	Rate  float64
}

// BracketSet is a named set of schedules, one per filing status.
type BracketSet struct {
	Name     string
	Year     int
	Brackets map[FilingStatus][]Bracket
}

// federalRates are the seven marginal rates shared by both schedules.
//
//nolint:gochecknoglobals // Compile-time lookup table.
var federalRates = []float64{0.10, 0.12, 0.22, 0.24, 0.32, 0.35, 0.37}

func schedule(uppers ...float64) []Bracket {
	out := make([]Bracket, 0, len(federalRates))
	for i, rate := range federalRates {
		upper := math.Inf(1)
		if i < len(uppers) {
			upper = uppers[i]
		}
		out = append(out, Bracket{Upper: upper, Rate: rate})
	}
	return out
}

// PaycheckBrackets2025 is the schedule used by the paycheck calculator.
//
//nolint:gochecknoglobals // Reference data.
var PaycheckBrackets2025 = BracketSet{
	Name: "paycheck-2025",
	Year: 2025,
	Brackets: map[FilingStatus][]Bracket{
		FilingSingle:          schedule(11_925, 48_475, 103_350, 197_300, 250_525, 626_350),
		FilingMarried:         schedule(23_850, 96_950, 206_700, 394_600, 501_050, 751_600),
		FilingHeadOfHousehold: schedule(17_000, 64_850, 103_350, 197_300, 250_500, 626_350),
	},
}

// StandaloneBrackets2024 is the schedule used by the federal tax calculator.
//
//nolint:gochecknoglobals // Reference data.
var StandaloneBrackets2024 = BracketSet{
	Name: "standalone-2024",
	Year: 2024,
	Brackets: map[FilingStatus][]Bracket{
		FilingSingle:          schedule(11_600, 47_150, 100_525, 191_950, 243_725, 609_350),
		FilingMarried:         schedule(23_200, 94_300, 201_050, 383_900, 487_450, 731_200),
		FilingHeadOfHousehold: schedule(16_550, 63_100, 100_500, 191_950, 243_700, 609_350),
	},
}

// ErrUnknownBracketSet is returned by BracketSetByName.
var ErrUnknownBracketSet = constError("unknown bracket set")

// BracketSetByName returns a named bracket set.
func BracketSetByName(name string) (BracketSet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PaycheckBrackets2025.Name, "":
		return PaycheckBrackets2025, nil
	case StandaloneBrackets2024.Name:
		return StandaloneBrackets2024, nil
	default:
		return BracketSet{}, fmt.Errorf("%w: %q", ErrUnknownBracketSet, name)
	}
}

func (s BracketSet) schedule(status FilingStatus) []Bracket {
	if b, ok := s.Brackets[status]; ok {
		return b
	}
	return s.Brackets[FilingSingle]
}

// Tax computes progressive tax on income: each bracket's rate applies to
// the slice of income between the previous bracket's top and its own.
// Unknown statuses use the single schedule. Non-positive income owes zero.
func (s BracketSet) Tax(income float64, status FilingStatus) float64 {
	if math.IsNaN(income) {
		return income
	}
	var tax, floor float64
	for _, b := range s.schedule(status) {
		if income <= floor {
			break
		}
		tax += (math.Min(income, b.Upper) - floor) * b.Rate
		floor = b.Upper
	}
	return tax
}

// MarginalRate returns the rate applied to the last dollar of income.
func (s BracketSet) MarginalRate(income float64, status FilingStatus) float64 {
	brackets := s.schedule(status)
	for _, b := range brackets {
		if income <= b.Upper {
			return b.Rate
		}
	}
	return brackets[len(brackets)-1].Rate
}

// TopRate returns the highest marginal rate for status.
func (s BracketSet) TopRate(status FilingStatus) float64 {
	brackets := s.schedule(status)
	return brackets[len(brackets)-1].Rate
}

// SocialSecurityTax applies the 6.2% rate up to the wage base.
func SocialSecurityTax(annualGross float64) float64 {
	return math.Min(annualGross, SocialSecurityWageBase) * SocialSecurityRate
}

// CalculatePaycheck breaks annual gross pay into per-period withholding.
// Federal tax applies the bracket set to gross; state tax is a flat rate.
func CalculatePaycheck(
	annualGross float64,
	status FilingStatus,
	state units.StateTaxRecord,
	payPeriods float64,
	set BracketSet,
) []ResultRow {
	federal := set.Tax(annualGross, status)
	socialSecurity := SocialSecurityTax(annualGross)
	medicare := annualGross * MedicareRate
	stateTax := annualGross * state.IncomeTaxRate
	totalTax := federal + socialSecurity + medicare + stateTax
	net := annualGross - totalTax

	per := func(v float64) string { return FormatMoney(v / payPeriods) }
	return []ResultRow{
		Row("Gross Pay", per(annualGross)),
		Row("Federal Income Tax", per(federal)),
		Row("Social Security", per(socialSecurity)),
		Row("Medicare", per(medicare)),
		Row(state.Name+" State Tax", per(stateTax)),
		Row("Total Taxes", per(totalTax)),
		Total("Net Pay", per(net)),
		Row("Annual Net Pay", FormatMoney(net)),
		Row("Effective Tax Rate", FormatPercent(totalTax/annualGross*100, 2)),
	}
}

// CalculateFederalTax reports federal income tax on annual income.
func CalculateFederalTax(income float64, status FilingStatus, set BracketSet) []ResultRow {
	tax := set.Tax(income, status)
	effective := 0.0
	if income > 0 {
		effective = tax / income * 100
	}
	return []ResultRow{
		Total("Federal Income Tax", FormatMoney(tax)),
		Row("Effective Tax Rate", FormatPercent(effective, 2)),
		Row("Marginal Tax Rate", FormatPercent(set.MarginalRate(income, status)*100, 0)),
		Row("After-Tax Income", FormatMoney(income-tax)),
		Row("Tax Year", fmt.Sprintf("%d", set.Year)),
	}
}

// CalculateStateTax applies a state's flat income tax rate.
func CalculateStateTax(income float64, state units.StateTaxRecord) []ResultRow {
	tax := income * state.IncomeTaxRate
	rows := []ResultRow{
		Total(state.Name+" Income Tax", FormatMoney(tax)),
		Row("State Rate", FormatPercent(state.IncomeTaxRate*100, 2)),
		Row("After-State-Tax Income", FormatMoney(income-tax)),
	}
	if state.IncomeTaxRate == 0 {
		rows = append(rows, Row("Note", state.Name+" does not tax wage income"))
	}
	return rows
}
