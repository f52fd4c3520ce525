package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

//nolint:gochecknoglobals // Compile-time lookup table.
var gradePoints = map[string]float64{
	"A+": 4.0, "A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D+": 1.3, "D": 1.0, "D-": 0.7,
	"F": 0,
}

// letterCutoffs maps a minimum percentage score to a letter grade.
//
//nolint:gochecknoglobals // Compile-time lookup table.
var letterCutoffs = []struct {
	min    float64
	letter string
}{
	{93, "A"}, {90, "A-"}, {87, "B+"}, {83, "B"}, {80, "B-"},
	{77, "C+"}, {73, "C"}, {70, "C-"}, {67, "D+"}, {63, "D"}, {60, "D-"},
}

// LetterGrade buckets a percentage score.
func LetterGrade(score float64) string {
	for _, c := range letterCutoffs {
		if score >= c.min {
			return c.letter
		}
	}
	return "F"
}

// parseGradeEntry reads "A", "B+:4", "91" or "91:3" into grade points and
// credits (default 1).
func parseGradeEntry(entry string) (points, credits float64, ok bool) {
	grade, creditText, hasCredits := strings.Cut(entry, ":")
	credits = 1
	if hasCredits {
		c, err := strconv.ParseFloat(creditText, 64)
		if err != nil || c <= 0 {
			return 0, 0, false
		}
		credits = c
	}
	grade = strings.ToUpper(strings.TrimSpace(grade))
	if p, found := gradePoints[grade]; found {
		return p, credits, true
	}
	score, err := strconv.ParseFloat(grade, 64)
	if err != nil {
		return 0, 0, false
	}
	return gradePoints[LetterGrade(score)], credits, true
}

// CalculateGPA computes a credit-weighted GPA from entries such as
// "A:3, B+:4, 88:3".
func CalculateGPA(list string) []ResultRow {
	entries := splitList(list)
	if len(entries) == 0 {
		return ErrorRow("Enter grades separated by commas")
	}
	var totalPoints, totalCredits float64
	for _, e := range entries {
		p, c, ok := parseGradeEntry(e)
		if !ok {
			return ErrorRow(fmt.Sprintf("Unrecognized grade %q", e))
		}
		totalPoints += p * c
		totalCredits += c
	}
	gpa := totalPoints / totalCredits
	return []ResultRow{
		Total("GPA", FormatFloat(gpa, 2)),
		Row("Total Credits", FormatDecimal(totalCredits, 2)),
		Row("Quality Points", FormatDecimal(totalPoints, 2)),
		Row("Courses", FormatNumber(int64(len(entries)))),
	}
}

// CalculateGrade converts points earned out of points possible into a
// percentage and letter grade.
func CalculateGrade(earned, possible float64) []ResultRow {
	if possible <= 0 {
		return ErrorRow("Points possible must be greater than zero")
	}
	pct := earned / possible * 100
	return []ResultRow{
		Total("Grade", LetterGrade(pct)),
		Row("Percentage", FormatPercent(pct, 2)),
		Row("Grade Points", FormatFloat(gradePoints[LetterGrade(pct)], 1)),
	}
}

// CalculateFuelCost estimates trip fuel cost from miles, miles per gallon
// and price per gallon.
func CalculateFuelCost(miles, mpg, pricePerGallon float64) []ResultRow {
	gallons := miles / mpg
	cost := gallons * pricePerGallon
	return []ResultRow{
		Total("Trip Cost", FormatMoney(cost)),
		Row("Fuel Needed", FormatFloat(gallons, 2)+" gal"),
		Row("Cost per Mile", FormatMoney(cost/miles)),
		Row("Round Trip Cost", FormatMoney(2*cost)),
	}
}

// CalculateElectricityCost estimates appliance running cost from watts,
// hours of use per day and price per kWh.
func CalculateElectricityCost(watts, hoursPerDay, pricePerKWh float64) []ResultRow {
	const daysPerMonth, daysPerYear = 30, 365
	kwhPerDay := watts * hoursPerDay / 1000
	daily := kwhPerDay * pricePerKWh
	return []ResultRow{
		Row("Energy per Day", FormatDecimal(kwhPerDay, 3)+" kWh"),
		Row("Daily Cost", FormatMoney(daily)),
		Total("Monthly Cost", FormatMoney(daily*daysPerMonth)),
		Row("Yearly Cost", FormatMoney(daily*daysPerYear)),
	}
}

// CalculateUnitPrice computes price per unit and, when a second offer is
// given (quantity > 0), which one is cheaper.
func CalculateUnitPrice(priceA, quantityA, priceB, quantityB float64) []ResultRow {
	unitA := priceA / quantityA
	rows := []ResultRow{Total("Unit Price (A)", FormatDecimal(unitA, 4))}
	if !(quantityB > 0) || math.IsNaN(priceB) {
		return rows
	}
	unitB := priceB / quantityB
	better := "Same Value"
	switch {
	case unitA < unitB:
		better = "Option A"
	case unitB < unitA:
		better = "Option B"
	}
	savings := math.Abs(unitA-unitB) / math.Max(unitA, unitB) * 100
	return append(rows,
		Row("Unit Price (B)", FormatDecimal(unitB, 4)),
		Row("Better Value", better),
		Row("Savings", FormatPercent(savings, 1)),
	)
}
