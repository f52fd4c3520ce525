package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/calckit/internal/units"
)

func TestConvertLength(t *testing.T) {
	rows, err := ConvertLength(1, "Miles", "Meters")
	require.NoError(t, err)

	total, ok := TotalRow(rows)
	require.True(t, ok)
	assert.InDelta(t, 1609.34, number(t, total.Value), 0.01)
	assert.Equal(t, "1,609.344 Meters", total.Value)
}

func TestConvertUnknownUnit(t *testing.T) {
	_, err := ConvertLength(1, "Furlongs", "Meters")
	require.ErrorIs(t, err, units.ErrUnitNotFound)

	_, err = ConvertTemperature(1, "Celsius", "Rankine")
	require.ErrorIs(t, err, units.ErrUnitNotFound)
}

func TestLinearRoundTrip(t *testing.T) {
	amounts := []float64{0, 1, 3.75, 12_345.678}
	for _, kind := range units.LinearKinds() {
		names := units.Names(kind)
		for _, a := range names {
			for _, b := range names {
				for _, x := range amounts {
					there, err := ConvertValue(kind, x, a, b)
					require.NoError(t, err)
					back, err := ConvertValue(kind, there, b, a)
					require.NoError(t, err)
					assert.InDelta(t, x, back, 1e-9*(1+x), "%s: %s -> %s", kind, a, b)
				}
			}
		}
	}
}

func TestConvertTemperature(t *testing.T) {
	rows, err := ConvertTemperature(100, "Celsius", "Fahrenheit")
	require.NoError(t, err)
	assert.Equal(t, "212 °F", value(t, rows, "Fahrenheit"))
	assert.Equal(t, "373.15", value(t, rows, "Kelvin"))

	rows, err = ConvertTemperature(0, "K", "C")
	require.NoError(t, err)
	assert.Equal(t, "-273.15 °C", value(t, rows, "Celsius"))
}

func TestTemperatureRoundTrip(t *testing.T) {
	scales := []units.Scale{units.ScaleCelsius, units.ScaleFahrenheit, units.ScaleKelvin}
	for _, x := range []float64{-40, 0, 36.6, 100, 1000} {
		for _, a := range scales {
			for _, b := range scales {
				back := ConvertTemperatureValue(ConvertTemperatureValue(x, a, b), b, a)
				assert.InDelta(t, x, back, 1e-9)
			}
		}
	}
}
