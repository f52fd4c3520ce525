package units

import (
	"fmt"
	"strings"
)

// Scale is a temperature scale.
type Scale string

// Temperature scales.
const (
	ScaleCelsius    Scale = "C"
	ScaleFahrenheit Scale = "F"
	ScaleKelvin     Scale = "K"
)

// kelvinOffset is 0 °C expressed in kelvin.
const kelvinOffset = 273.15

// TemperatureUnit is a non-linear unit converted through an affine formula.
type TemperatureUnit struct {
	Name  string `json:"name"  yaml:"name"`
	Scale Scale  `json:"scale" yaml:"scale"`
}

//nolint:gochecknoglobals // Static reference table.
var temperatureUnits = []TemperatureUnit{
	{Name: "Celsius", Scale: ScaleCelsius},
	{Name: "Fahrenheit", Scale: ScaleFahrenheit},
	{Name: "Kelvin", Scale: ScaleKelvin},
}

// TemperatureUnits returns the temperature table in display order.
func TemperatureUnits() []TemperatureUnit {
	out := make([]TemperatureUnit, len(temperatureUnits))
	copy(out, temperatureUnits)
	return out
}

// LookupTemperature finds a temperature unit by name or scale letter.
func LookupTemperature(name string) (TemperatureUnit, error) {
	name = strings.TrimSpace(name)
	for _, u := range temperatureUnits {
		if strings.EqualFold(u.Name, name) || strings.EqualFold(string(u.Scale), name) {
			return u, nil
		}
	}
	return TemperatureUnit{}, fmt.Errorf("%w: temperature %q", ErrUnitNotFound, name)
}

// ToCelsius converts a value on scale s to Celsius.
func (s Scale) ToCelsius(v float64) float64 {
	switch s {
	case ScaleFahrenheit:
		return (v - 32) * 5 / 9
	case ScaleKelvin:
		return v - kelvinOffset
	default:
		return v
	}
}

// FromCelsius converts a Celsius value to scale s.
func (s Scale) FromCelsius(c float64) float64 {
	switch s {
	case ScaleFahrenheit:
		return c*9/5 + 32
	case ScaleKelvin:
		return c + kelvinOffset
	default:
		return c
	}
}
