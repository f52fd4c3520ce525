// Package units holds the static reference data used by the calculators:
// linear conversion tables per quantity kind, temperature scales, currency
// rates relative to USD and US state income tax rates.
package units

import (
	"fmt"
	"strings"
)

// Kind identifies a family of interconvertible units.
type Kind string

// Supported quantity kinds.
const (
	KindLength      Kind = "length"
	KindWeight      Kind = "weight"
	KindSpeed       Kind = "speed"
	KindVolume      Kind = "volume"
	KindArea        Kind = "area"
	KindTemperature Kind = "temperature"
)

// Unit is a linear unit. Factor converts one of this unit into the kind's
// base unit.
type Unit struct {
	Name   string  `json:"name"   yaml:"name"`
	Factor float64 `json:"factor" yaml:"factor"`
}

// Base units:
//
//	length  meters
//	weight  kilograms
//	speed   meters per second
//	volume  liters
//	area    square meters
//
//nolint:gochecknoglobals // Static reference tables.
var (
	lengthUnits = []Unit{
		{Name: "Meters", Factor: 1},
		{Name: "Kilometers", Factor: 1000},
		{Name: "Centimeters", Factor: 0.01},
		{Name: "Millimeters", Factor: 0.001},
		{Name: "Miles", Factor: 1609.344},
		{Name: "Yards", Factor: 0.9144},
		{Name: "Feet", Factor: 0.3048},
		{Name: "Inches", Factor: 0.0254},
		{Name: "Nautical Miles", Factor: 1852},
	}

	weightUnits = []Unit{
		{Name: "Kilograms", Factor: 1},
		{Name: "Grams", Factor: 0.001},
		{Name: "Milligrams", Factor: 0.000001},
		{Name: "Pounds", Factor: 0.45359237},
		{Name: "Ounces", Factor: 0.028349523125},
		{Name: "Stones", Factor: 6.35029318},
		{Name: "Metric Tons", Factor: 1000},
		{Name: "US Tons", Factor: 907.18474},
	}

	speedUnits = []Unit{
		{Name: "Meters per Second", Factor: 1},
		{Name: "Kilometers per Hour", Factor: 1000.0 / 3600.0},
		{Name: "Miles per Hour", Factor: 0.44704},
		{Name: "Feet per Second", Factor: 0.3048},
		{Name: "Knots", Factor: 1852.0 / 3600.0},
	}

	volumeUnits = []Unit{
		{Name: "Liters", Factor: 1},
		{Name: "Milliliters", Factor: 0.001},
		{Name: "Cubic Meters", Factor: 1000},
		{Name: "Gallons", Factor: 3.785411784},
		{Name: "Quarts", Factor: 0.946352946},
		{Name: "Pints", Factor: 0.473176473},
		{Name: "Cups", Factor: 0.2365882365},
		{Name: "Fluid Ounces", Factor: 0.0295735295625},
		{Name: "Tablespoons", Factor: 0.01478676478125},
		{Name: "Teaspoons", Factor: 0.00492892159375},
	}

	areaUnits = []Unit{
		{Name: "Square Meters", Factor: 1},
		{Name: "Square Kilometers", Factor: 1_000_000},
		{Name: "Square Feet", Factor: 0.09290304},
		{Name: "Square Yards", Factor: 0.83612736},
		{Name: "Square Inches", Factor: 0.00064516},
		{Name: "Acres", Factor: 4046.8564224},
		{Name: "Hectares", Factor: 10_000},
		{Name: "Square Miles", Factor: 2_589_988.110336},
	}
)

// LinearKinds lists the kinds converted with a single factor.
func LinearKinds() []Kind {
	return []Kind{KindLength, KindWeight, KindSpeed, KindVolume, KindArea}
}

// ParseKind maps a user-supplied kind name to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindLength, KindWeight, KindSpeed, KindVolume, KindArea, KindTemperature:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Table returns a copy of the ordered unit table for a linear kind.
func Table(kind Kind) ([]Unit, error) {
	var src []Unit
	switch kind {
	case KindLength:
		src = lengthUnits
	case KindWeight:
		src = weightUnits
	case KindSpeed:
		src = speedUnits
	case KindVolume:
		src = volumeUnits
	case KindArea:
		src = areaUnits
	case KindTemperature:
		return nil, fmt.Errorf("%w: temperature is not linear", ErrUnknownKind)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	out := make([]Unit, len(src))
	copy(out, src)
	return out, nil
}

// Names returns the unit names of a kind in display order.
func Names(kind Kind) []string {
	if kind == KindTemperature {
		names := make([]string, 0, len(temperatureUnits))
		for _, u := range temperatureUnits {
			names = append(names, u.Name)
		}
		return names
	}
	table, err := Table(kind)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(table))
	for _, u := range table {
		names = append(names, u.Name)
	}
	return names
}

// Lookup finds a linear unit by name. Matching is case-insensitive.
func Lookup(kind Kind, name string) (Unit, error) {
	table, err := Table(kind)
	if err != nil {
		return Unit{}, err
	}
	name = strings.TrimSpace(name)
	for _, u := range table {
		if strings.EqualFold(u.Name, name) {
			return u, nil
		}
	}
	return Unit{}, fmt.Errorf("%w: %s %q", ErrUnitNotFound, kind, name)
}

// FactorOrIdentity returns the unit's factor, or 1 when the unit is unknown.
// Only the permissive input mode uses it; strict callers use Lookup.
func FactorOrIdentity(kind Kind, name string) float64 {
	u, err := Lookup(kind, name)
	if err != nil {
		return 1
	}
	return u.Factor
}
