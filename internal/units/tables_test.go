package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name       string
		kind       Kind
		unit       string
		wantFactor float64
		wantErr    error
	}{
		{name: "miles", kind: KindLength, unit: "Miles", wantFactor: 1609.344},
		{name: "case insensitive", kind: KindLength, unit: "miles", wantFactor: 1609.344},
		{name: "surrounding spaces", kind: KindWeight, unit: "  Pounds ", wantFactor: 0.45359237},
		{name: "base unit", kind: KindArea, unit: "Square Meters", wantFactor: 1},
		{name: "unknown unit", kind: KindLength, unit: "Furlongs", wantErr: ErrUnitNotFound},
		{name: "unknown kind", kind: Kind("energy"), unit: "Joules", wantErr: ErrUnknownKind},
		{name: "temperature is not linear", kind: KindTemperature, unit: "Celsius", wantErr: ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(tt.kind, tt.unit)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantFactor, got.Factor, 1e-12)
		})
	}
}

func TestFactorOrIdentity(t *testing.T) {
	assert.InDelta(t, 0.3048, FactorOrIdentity(KindLength, "Feet"), 1e-12)
	assert.InDelta(t, 1.0, FactorOrIdentity(KindLength, "Cubits"), 1e-12, "missing unit degrades to identity")
}

func TestTablesAreWellFormed(t *testing.T) {
	for _, kind := range LinearKinds() {
		t.Run(string(kind), func(t *testing.T) {
			table, err := Table(kind)
			require.NoError(t, err)
			require.NotEmpty(t, table)
			assert.InDelta(t, 1.0, table[0].Factor, 1e-12, "first entry is the base unit")

			seen := map[string]bool{}
			for _, u := range table {
				assert.False(t, seen[u.Name], "duplicate unit %s", u.Name)
				seen[u.Name] = true
				assert.Greater(t, u.Factor, 0.0)
				assert.False(t, math.IsInf(u.Factor, 0))
			}
			assert.Len(t, Names(kind), len(table))
		})
	}
}

func TestTableReturnsCopy(t *testing.T) {
	table, err := Table(KindLength)
	require.NoError(t, err)
	table[0].Factor = 42

	again, err := Table(KindLength)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, again[0].Factor, 1e-12)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Length ")
	require.NoError(t, err)
	assert.Equal(t, KindLength, k)

	k, err = ParseKind("temperature")
	require.NoError(t, err)
	assert.Equal(t, KindTemperature, k)

	_, err = ParseKind("pressure")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestTemperature(t *testing.T) {
	tests := []struct {
		name  string
		scale Scale
		in    float64
		wantC float64
	}{
		{name: "freezing F", scale: ScaleFahrenheit, in: 32, wantC: 0},
		{name: "boiling F", scale: ScaleFahrenheit, in: 212, wantC: 100},
		{name: "absolute zero K", scale: ScaleKelvin, in: 0, wantC: -273.15},
		{name: "celsius identity", scale: ScaleCelsius, in: 37, wantC: 37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.scale.ToCelsius(tt.in)
			assert.InDelta(t, tt.wantC, c, 1e-9)
			assert.InDelta(t, tt.in, tt.scale.FromCelsius(c), 1e-9)
		})
	}
}

func TestLookupTemperature(t *testing.T) {
	u, err := LookupTemperature("fahrenheit")
	require.NoError(t, err)
	assert.Equal(t, ScaleFahrenheit, u.Scale)

	u, err = LookupTemperature("K")
	require.NoError(t, err)
	assert.Equal(t, "Kelvin", u.Name)

	_, err = LookupTemperature("Rankine")
	assert.ErrorIs(t, err, ErrUnitNotFound)

	assert.Equal(t, []string{"Celsius", "Fahrenheit", "Kelvin"}, Names(KindTemperature))
}
