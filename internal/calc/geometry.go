package calc

import "math"

func unitless(v float64) string { return FormatDecimal(v, 4) }

// CalculateCircle derives circle measures from the radius.
func CalculateCircle(radius float64) []ResultRow {
	return []ResultRow{
		Total("Area", unitless(math.Pi*radius*radius)),
		Row("Circumference", unitless(2*math.Pi*radius)),
		Row("Diameter", unitless(2*radius)),
	}
}

// CalculateRectangle derives rectangle measures from its sides.
func CalculateRectangle(length, width float64) []ResultRow {
	return []ResultRow{
		Total("Area", unitless(length*width)),
		Row("Perimeter", unitless(2*(length+width))),
		Row("Diagonal", unitless(math.Hypot(length, width))),
	}
}

// CalculateTriangle derives triangle measures from three sides (Heron).
func CalculateTriangle(a, b, c float64) []ResultRow {
	if a <= 0 || b <= 0 || c <= 0 || a+b <= c || a+c <= b || b+c <= a {
		return ErrorRow("Sides do not form a valid triangle")
	}
	s := (a + b + c) / 2
	area := math.Sqrt(s * (s - a) * (s - b) * (s - c))

	kind := "Scalene"
	switch {
	case a == b && b == c:
		kind = "Equilateral"
	case a == b || b == c || a == c:
		kind = "Isosceles"
	}
	return []ResultRow{
		Total("Area", unitless(area)),
		Row("Perimeter", unitless(2*s)),
		Row("Type", kind),
	}
}

// CalculateCylinder derives cylinder measures from radius and height.
func CalculateCylinder(radius, height float64) []ResultRow {
	return []ResultRow{
		Total("Volume", unitless(math.Pi*radius*radius*height)),
		Row("Lateral Surface Area", unitless(2*math.Pi*radius*height)),
		Row("Total Surface Area", unitless(2*math.Pi*radius*(radius+height))),
	}
}

// CalculateSphere derives sphere measures from the radius.
func CalculateSphere(radius float64) []ResultRow {
	return []ResultRow{
		Total("Volume", unitless(4.0/3.0*math.Pi*radius*radius*radius)),
		Row("Surface Area", unitless(4*math.Pi*radius*radius)),
		Row("Diameter", unitless(2*radius)),
	}
}

// CalculateCone derives cone measures from radius and height.
func CalculateCone(radius, height float64) []ResultRow {
	slant := math.Hypot(radius, height)
	return []ResultRow{
		Total("Volume", unitless(math.Pi*radius*radius*height/3)),
		Row("Slant Height", unitless(slant)),
		Row("Lateral Surface Area", unitless(math.Pi*radius*slant)),
		Row("Total Surface Area", unitless(math.Pi*radius*(radius+slant))),
	}
}
