package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeometry(t *testing.T) {
	tests := []struct {
		name  string
		rows  []ResultRow
		label string
		want  string
	}{
		{name: "circle area", rows: CalculateCircle(1), label: "Area", want: "3.1416"},
		{name: "circle circumference", rows: CalculateCircle(1), label: "Circumference", want: "6.2832"},
		{name: "rectangle diagonal", rows: CalculateRectangle(3, 4), label: "Diagonal", want: "5"},
		{name: "triangle area", rows: CalculateTriangle(3, 4, 5), label: "Area", want: "6"},
		{name: "equilateral", rows: CalculateTriangle(2, 2, 2), label: "Type", want: "Equilateral"},
		{name: "isosceles", rows: CalculateTriangle(2, 2, 3), label: "Type", want: "Isosceles"},
		{name: "cylinder volume", rows: CalculateCylinder(1, 1), label: "Volume", want: "3.1416"},
		{name: "sphere volume", rows: CalculateSphere(3), label: "Volume", want: "113.0973"},
		{name: "cone slant", rows: CalculateCone(3, 4), label: "Slant Height", want: "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, value(t, tt.rows, tt.label))
		})
	}

	assert.True(t, HasError(CalculateTriangle(1, 2, 3)))
	assert.True(t, HasError(CalculateTriangle(-1, 2, 2)))
}
