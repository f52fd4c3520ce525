package units

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/currency"
)

// Rates maps an ISO 4217 code to units of that currency per one USD.
// The table is static reference data, not live market rates.
type Rates map[string]float64

//nolint:gochecknoglobals // Static reference table, copied by DefaultRates.
var defaultRates = Rates{
	"USD": 1,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 149.50,
	"CAD": 1.36,
	"AUD": 1.53,
	"CHF": 0.88,
	"CNY": 7.24,
	"INR": 83.12,
	"MXN": 17.05,
	"BRL": 4.97,
	"KRW": 1330.0,
	"SGD": 1.34,
	"NZD": 1.64,
	"SEK": 10.42,
	"NOK": 10.55,
	"ZAR": 18.60,
	"HKD": 7.82,
}

// DefaultRates returns a fresh copy of the static rate table.
func DefaultRates() Rates {
	out := make(Rates, len(defaultRates))
	for k, v := range defaultRates {
		out[k] = v
	}
	return out
}

// Codes returns the currency codes sorted with USD first.
func (r Rates) Codes() []string {
	codes := make([]string, 0, len(r))
	for code := range r {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if codes[i] == "USD" || codes[j] == "USD" {
			return codes[i] == "USD"
		}
		return codes[i] < codes[j]
	})
	return codes
}

// Lookup returns the per-USD rate for code.
func (r Rates) Lookup(code string) (float64, error) {
	rate, ok := r[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrCurrencyNotFound, code)
	}
	return rate, nil
}

// Rate returns the multiplier converting an amount in from into to.
func (r Rates) Rate(from, to string) (float64, error) {
	fromRate, err := r.Lookup(from)
	if err != nil {
		return 0, err
	}
	toRate, err := r.Lookup(to)
	if err != nil {
		return 0, err
	}
	return toRate / fromRate, nil
}

// RateOrIdentity is the lenient form of Rate: unknown codes count as 1.
func (r Rates) RateOrIdentity(from, to string) float64 {
	fromRate, err := r.Lookup(from)
	if err != nil {
		fromRate = 1
	}
	toRate, err := r.Lookup(to)
	if err != nil {
		toRate = 1
	}
	return toRate / fromRate
}

// WithOverrides returns a copy of r with overrides applied. Every code must
// be a valid ISO 4217 code and every rate positive and finite.
func (r Rates) WithOverrides(overrides map[string]float64) (Rates, error) {
	out := make(Rates, len(r)+len(overrides))
	for k, v := range r {
		out[k] = v
	}
	for code, rate := range overrides {
		unit, err := currency.ParseISO(code)
		if err != nil {
			return nil, fmt.Errorf("currency override %q: %w", code, err)
		}
		if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			return nil, fmt.Errorf("%w: %s=%v", ErrInvalidRate, code, rate)
		}
		out[unit.String()] = rate
	}
	return out, nil
}
