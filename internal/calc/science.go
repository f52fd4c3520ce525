package calc

import (
	"math"
)

// CalculateAlleleFrequency applies Hardy-Weinberg to genotype counts.
func CalculateAlleleFrequency(homDominant, heterozygous, homRecessive float64) []ResultRow {
	total := homDominant + heterozygous + homRecessive
	if total <= 0 {
		return ErrorRow("Total population must be greater than zero")
	}
	p := (2*homDominant + heterozygous) / (2 * total)
	q := (2*homRecessive + heterozygous) / (2 * total)
	return []ResultRow{
		Total("Dominant Allele (p)", FormatFloat(p, 4)),
		Row("Recessive Allele (q)", FormatFloat(q, 4)),
		Row("p + q", FormatFloat(p+q, 4)),
		Row("Expected AA (p²)", FormatFloat(p*p, 4)),
		Row("Expected Aa (2pq)", FormatFloat(2*p*q, 4)),
		Row("Expected aa (q²)", FormatFloat(q*q, 4)),
	}
}

// CalculateOhmsLaw derives current, power and conductance from voltage and
// resistance.
func CalculateOhmsLaw(volts, ohms float64) []ResultRow {
	if ohms == 0 {
		return ErrorRow("Resistance must be non-zero")
	}
	amps := volts / ohms
	return []ResultRow{
		Total("Current", FormatDecimal(amps, 4)+" A"),
		Row("Power", FormatDecimal(volts*amps, 4)+" W"),
		Row("Conductance", FormatDecimal(1/ohms, 6)+" S"),
	}
}

// CalculateDensity computes ρ = m / V from kilograms and cubic meters.
func CalculateDensity(massKg, volumeM3 float64) []ResultRow {
	rho := massKg / volumeM3
	return []ResultRow{
		Total("Density", FormatDecimal(rho, 4)+" kg/m³"),
		Row("Density (g/cm³)", FormatDecimal(rho/1000, 6)),
		Row("Specific Gravity", FormatDecimal(rho/1000, 4)),
	}
}

// CalculateSpeed computes average speed from kilometers and hours.
func CalculateSpeed(distanceKm, hours float64) []ResultRow {
	kmh := distanceKm / hours
	return []ResultRow{
		Total("Speed", FormatDecimal(kmh, 2)+" km/h"),
		Row("Miles per Hour", FormatDecimal(kmh/KmPerMile, 2)),
		Row("Meters per Second", FormatDecimal(kmh/3.6, 2)),
	}
}

// CalculateKineticEnergy computes ½mv² from kilograms and meters per second.
func CalculateKineticEnergy(massKg, velocity float64) []ResultRow {
	joules := 0.5 * massKg * velocity * velocity
	return []ResultRow{
		Total("Kinetic Energy", FormatDecimal(joules, 2)+" J"),
		Row("Kilojoules", FormatDecimal(joules/1000, 4)+" kJ"),
		Row("Momentum", FormatDecimal(massKg*velocity, 2)+" kg·m/s"),
	}
}

// CalculateHalfLife computes the quantity left after elapsed time.
func CalculateHalfLife(initial, halfLife, elapsed float64) []ResultRow {
	if halfLife <= 0 {
		return ErrorRow("Half-life must be greater than zero")
	}
	halvings := elapsed / halfLife
	remaining := initial * math.Pow(0.5, halvings)
	return []ResultRow{
		Total("Remaining Quantity", FormatDecimal(remaining, 4)),
		Row("Decayed", FormatDecimal(initial-remaining, 4)),
		Row("Half-Lives Elapsed", FormatDecimal(halvings, 3)),
		Row("Decay Constant", FormatDecimal(math.Ln2/halfLife, 6)),
	}
}

// CalculateForce computes F = m·a from kilograms and m/s².
func CalculateForce(massKg, acceleration float64) []ResultRow {
	newtons := massKg * acceleration
	return []ResultRow{
		Total("Force", FormatDecimal(newtons, 2)+" N"),
		Row("Kilonewtons", FormatDecimal(newtons/1000, 4)+" kN"),
		Row("Weight on Earth", FormatDecimal(massKg*StandardGravity, 2)+" N"),
	}
}
