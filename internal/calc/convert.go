package calc

import (
	"fmt"

	"github.com/rshade/calckit/internal/units"
)

// ConvertLinearFactors converts amount between two units of the same kind
// given their base factors. The result lists the target value first, then
// the same amount in every other unit of the table.
func ConvertLinearFactors(amount float64, from, to units.Unit, table []units.Unit) []ResultRow {
	value := amount * (from.Factor / to.Factor)
	rows := []ResultRow{
		Total(to.Name, FormatDecimal(value, 6)+" "+to.Name),
		Row("Conversion", fmt.Sprintf("1 %s = %s %s", from.Name, FormatDecimal(from.Factor/to.Factor, 8), to.Name)),
	}
	for _, u := range table {
		if u.Name == to.Name || u.Name == from.Name {
			continue
		}
		rows = append(rows, Row(u.Name, FormatDecimal(amount*(from.Factor/u.Factor), 6)))
	}
	return rows
}

// ConvertValue converts amount between two named units of a linear kind
// and returns the bare number.
func ConvertValue(kind units.Kind, amount float64, from, to string) (float64, error) {
	fromUnit, err := units.Lookup(kind, from)
	if err != nil {
		return 0, err
	}
	toUnit, err := units.Lookup(kind, to)
	if err != nil {
		return 0, err
	}
	return amount * (fromUnit.Factor / toUnit.Factor), nil
}

// ConvertLinear converts amount between two named units of a linear kind.
// Unknown unit names return units.ErrUnitNotFound.
func ConvertLinear(kind units.Kind, amount float64, from, to string) ([]ResultRow, error) {
	table, err := units.Table(kind)
	if err != nil {
		return nil, err
	}
	fromUnit, err := units.Lookup(kind, from)
	if err != nil {
		return nil, err
	}
	toUnit, err := units.Lookup(kind, to)
	if err != nil {
		return nil, err
	}
	return ConvertLinearFactors(amount, fromUnit, toUnit, table), nil
}

// ConvertLength converts between length units.
func ConvertLength(amount float64, from, to string) ([]ResultRow, error) {
	return ConvertLinear(units.KindLength, amount, from, to)
}

// ConvertWeight converts between weight units.
func ConvertWeight(amount float64, from, to string) ([]ResultRow, error) {
	return ConvertLinear(units.KindWeight, amount, from, to)
}

// ConvertSpeed converts between speed units.
func ConvertSpeed(amount float64, from, to string) ([]ResultRow, error) {
	return ConvertLinear(units.KindSpeed, amount, from, to)
}

// ConvertVolume converts between volume units.
func ConvertVolume(amount float64, from, to string) ([]ResultRow, error) {
	return ConvertLinear(units.KindVolume, amount, from, to)
}

// ConvertArea converts between area units.
func ConvertArea(amount float64, from, to string) ([]ResultRow, error) {
	return ConvertLinear(units.KindArea, amount, from, to)
}

// ConvertTemperatureValue converts through Celsius as the pivot.
func ConvertTemperatureValue(amount float64, from, to units.Scale) float64 {
	return to.FromCelsius(from.ToCelsius(amount))
}

// TemperatureRows renders a temperature conversion between resolved units.
func TemperatureRows(amount float64, from, to units.TemperatureUnit) []ResultRow {
	rows := []ResultRow{
		Total(to.Name, FormatDecimal(ConvertTemperatureValue(amount, from.Scale, to.Scale), 4)+degreeSuffix(to.Scale)),
	}
	for _, u := range units.TemperatureUnits() {
		if u.Name == to.Name || u.Name == from.Name {
			continue
		}
		rows = append(rows, Row(u.Name, FormatDecimal(ConvertTemperatureValue(amount, from.Scale, u.Scale), 4)))
	}
	return rows
}

func degreeSuffix(s units.Scale) string {
	if s == units.ScaleKelvin {
		return " K"
	}
	return " °" + string(s)
}

// ConvertTemperature converts between named temperature units.
func ConvertTemperature(amount float64, from, to string) ([]ResultRow, error) {
	fromUnit, err := units.LookupTemperature(from)
	if err != nil {
		return nil, err
	}
	toUnit, err := units.LookupTemperature(to)
	if err != nil {
		return nil, err
	}
	return TemperatureRows(amount, fromUnit, toUnit), nil
}
