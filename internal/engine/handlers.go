package engine

import (
	"strings"

	"github.com/rshade/calckit/internal/calc"
	"github.com/rshade/calckit/internal/registry"
	"github.com/rshade/calckit/internal/units"
)

// handler computes one tool from coerced inputs.
type handler func(d *Dispatcher, a *args) []calc.ResultRow

const (
	amount = registry.FieldAmount
	in1    = registry.FieldInput1
	in2    = registry.FieldInput2
	in3    = registry.FieldInput3
	text   = registry.FieldText
)

// handlers is the dispatch table. Every catalog id has exactly one entry.
//
//nolint:gochecknoglobals // Static dispatch table.
var handlers = map[string]handler{
	// Finance and loans
	"mortgage-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateMortgage(a.num(amount), a.num(in1), a.num(in2), a.num(in3))
	},
	"loan-calculator":          loan,
	"personal-loan-calculator": loan,
	"auto-loan-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateAutoLoan(a.num(amount), a.num(in1), a.num(in2), a.num(in3))
	},
	"student-loan-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateStudentLoan(a.num(amount), a.num(in1), a.num(in2))
	},
	"amortization-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateAmortization(a.num(amount), a.num(in1), a.num(in2))
	},
	"compound-interest-calculator": compound,
	"investment-calculator":        compound,
	"simple-interest-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateSimpleInterest(a.num(amount), a.num(in1), a.num(in2))
	},
	"savings-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateSavings(a.num(amount), a.num(in1), a.num(in2))
	},
	"retirement-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateRetirement(a.num(amount), a.num(in1), a.num(in2), a.num(in3))
	},
	"debt-payoff-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateDebtPayoff(a.num(amount), a.num(in1), a.num(in2))
	},
	"credit-card-payoff-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateCreditCardPayoff(a.num(amount), a.num(in1), a.num(in2))
	},
	"paycheck-calculator": func(d *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculatePaycheck(a.num(amount), a.filingStatus(), a.state(), a.num(in1), d.paycheck)
	},
	"federal-tax-calculator": func(d *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateFederalTax(a.num(amount), a.filingStatus(), d.federal)
	},
	"state-income-tax-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateStateTax(a.num(amount), a.state())
	},
	"salary-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateSalary(a.num(amount), a.num(in1))
	},
	"sales-tax-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateSalesTax(a.num(amount), a.num(in1))
	},
	"vat-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateVAT(a.num(amount), a.num(in1))
	},
	"discount-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateDiscount(a.num(amount), a.num(in1))
	},
	"tip-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateTip(a.num(amount), a.num(in1), a.num(in2))
	},
	"roi-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateROI(a.num(amount), a.num(in1), a.num(in2))
	},
	"inflation-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateInflation(a.num(amount), a.num(in1), a.num(in2))
	},
	"profit-margin-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateProfitMargin(a.num(amount), a.num(in1))
	},
	"break-even-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateBreakEven(a.num(amount), a.num(in1), a.num(in2))
	},
	"commission-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateCommission(a.num(amount), a.num(in1))
	},
	"currency-converter": currency,

	// Health and fitness
	"bmi-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateBMI(a.num(amount), a.num(in1))
	},
	"bmr-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateBMR(a.num(amount), a.num(in1), a.num(in2), a.gender())
	},
	"calorie-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateCalories(a.num(amount), a.num(in1), a.num(in2), a.gender(), a.activity(text))
	},
	"body-fat-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateBodyFat(a.gender(), a.num(amount), a.num(in1), a.num(in2), a.num(in3))
	},
	"ideal-weight-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateIdealWeight(a.num(amount), a.gender())
	},
	"lean-body-mass-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateLeanBodyMass(a.num(amount), a.num(in1), a.gender())
	},
	"one-rep-max-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateOneRepMax(a.num(amount), a.num(in1))
	},
	"bac-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateBAC(a.num(amount), a.num(in1), a.num(in2), a.gender())
	},
	"water-intake-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateWaterIntake(a.num(amount), a.num(in1))
	},
	"heart-rate-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateHeartRate(a.num(amount), a.num(in1))
	},
	"pace-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculatePace(a.num(amount), a.num(in1))
	},
	"due-date-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateDueDate(a.date(text), a.now, a.in.Locale)
	},
	"sleep-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateSleep(a.clock(text))
	},

	// Science
	"allele-frequency-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateAlleleFrequency(a.num(amount), a.num(in1), a.num(in2))
	},
	"ohms-law-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateOhmsLaw(a.num(amount), a.num(in1))
	},
	"density-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateDensity(a.num(amount), a.num(in1))
	},
	"speed-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateSpeed(a.num(amount), a.num(in1))
	},
	"kinetic-energy-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateKineticEnergy(a.num(amount), a.num(in1))
	},
	"half-life-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateHalfLife(a.num(amount), a.num(in1), a.num(in2))
	},
	"force-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateForce(a.num(amount), a.num(in1))
	},

	// Math
	"percentage-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculatePercentage(a.num(amount), a.num(in1))
	},
	"percent-change-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculatePercentChange(a.num(amount), a.num(in1))
	},
	"gcf-lcm-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateGcfLcm(a.num(amount), a.num(in1))
	},
	"prime-number-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculatePrime(a.num(amount))
	},
	"standard-deviation-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateStandardDeviation(a.text(text))
	},
	"average-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateAverage(a.text(text))
	},
	"slope-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateSlope(a.text(in1), a.text(in2))
	},
	"quadratic-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateQuadratic(a.num(amount), a.num(in1), a.num(in2))
	},
	"exponent-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateExponent(a.num(amount), a.num(in1))
	},
	"square-root-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateSquareRoot(a.num(amount))
	},
	"pythagorean-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculatePythagorean(a.num(amount), a.num(in1))
	},
	"factorial-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateFactorial(a.num(amount))
	},
	"fraction-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateFraction(a.text(in1), a.text(in2), a.text(in3))
	},
	"logarithm-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateLogarithm(a.num(amount), a.num(in1))
	},

	// Geometry
	"circle-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateCircle(a.num(amount))
	},
	"rectangle-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateRectangle(a.num(amount), a.num(in1))
	},
	"triangle-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateTriangle(a.num(amount), a.num(in1), a.num(in2))
	},
	"cylinder-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateCylinder(a.num(amount), a.num(in1))
	},
	"sphere-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateSphere(a.num(amount))
	},
	"cone-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateCone(a.num(amount), a.num(in1))
	},

	// Everyday
	"age-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateAge(a.date(text), a.date(in1), a.in.Locale)
	},
	"date-difference-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateDateDifference(a.date(in1), a.date(in2))
	},
	"day-of-week-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateDayOfWeek(a.date(text), a.in.Locale)
	},
	"gpa-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateGPA(a.text(text))
	},
	"grade-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateGrade(a.num(amount), a.num(in1))
	},
	"fuel-cost-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateFuelCost(a.num(amount), a.num(in1), a.num(in2))
	},
	"electricity-cost-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateElectricityCost(a.num(amount), a.num(in1), a.num(in2))
	},
	"unit-price-calculator": func(_ *Dispatcher, a *args) []calc.ResultRow {
		return calc.CalculateUnitPrice(a.num(amount), a.num(in1), a.optionalNum(in2), a.num(in3))
	},
	"password-generator": func(d *Dispatcher, a *args) []calc.ResultRow {
		return calc.GeneratePassword(d.random, a.num(amount), a.in.Text)
	},

	// Converters
	"length-converter":      linear(units.KindLength),
	"weight-converter":      linear(units.KindWeight),
	"speed-converter":       linear(units.KindSpeed),
	"volume-converter":      linear(units.KindVolume),
	"area-converter":        linear(units.KindArea),
	"temperature-converter": temperature,
}

func loan(_ *Dispatcher, a *args) []calc.ResultRow {
	return calc.CalculateLoan(a.num(amount), a.num(in1), a.num(in2))
}

func compound(_ *Dispatcher, a *args) []calc.ResultRow {
	return calc.CalculateCompoundInterest(a.num(amount), a.num(in1), a.num(in2), a.num(in3))
}

func linear(kind units.Kind) handler {
	return func(_ *Dispatcher, a *args) []calc.ResultRow {
		table, err := units.Table(kind)
		if err != nil {
			return calc.ErrorRow(err.Error())
		}
		from := a.unit(kind, registry.FieldFromUnit)
		to := a.unit(kind, registry.FieldToUnit)
		return calc.ConvertLinearFactors(a.num(amount), from, to, table)
	}
}

func temperature(_ *Dispatcher, a *args) []calc.ResultRow {
	from := a.temperature(registry.FieldFromUnit)
	to := a.temperature(registry.FieldToUnit)
	return calc.TemperatureRows(a.num(amount), from, to)
}

// currency converts between two codes of the dispatcher's rate table.
// Permissive mode converts unknown codes at a rate of 1.
func currency(d *Dispatcher, a *args) []calc.ResultRow {
	value := a.num(amount)
	from := strings.ToUpper(strings.TrimSpace(a.in.FromUnit))
	to := strings.ToUpper(strings.TrimSpace(a.in.ToUnit))
	if _, err := d.rates.Lookup(from); err != nil && a.strict {
		a.fail(registry.FieldFromUnit, "unknown currency")
	}
	if _, err := d.rates.Lookup(to); err != nil && a.strict {
		a.fail(registry.FieldToUnit, "unknown currency")
	}
	return calc.CurrencyRows(value, from, to, d.rates.RateOrIdentity(from, to))
}
