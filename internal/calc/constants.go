package calc

// Calendar and loan constants.
const (
	MonthsPerYear = 12
	WeeksPerYear  = 52
	DaysPerWeek   = 7
	MinutesPerDay = 1440

	// MaxPayoffMonths bounds the debt payoff simulation (50 years).
	MaxPayoffMonths = 600

	// AmortizationPreviewMonths is the length of the month-by-month breakdown.
	AmortizationPreviewMonths = 12
)

// Payroll constants (2025).
const (
	SocialSecurityRate     = 0.062
	SocialSecurityWageBase = 176_100.0
	MedicareRate           = 0.0145

	// DefaultPayPeriods is the biweekly pay schedule.
	DefaultPayPeriods = 26
)

// Health constants.
const (
	BMIUnderweight = 18.5
	BMINormal      = 25.0
	BMIOverweight  = 30.0

	// BodyFatMax clamps the US Navy estimate.
	BodyFatMax = 60.0

	// EpleyDivisor is the rep divisor in the Epley one-rep-max formula.
	EpleyDivisor = 30.0

	// Widmark-style BAC approximation.
	BACAlcoholOuncesPerDrink = 0.6
	BACWidmarkConstant       = 5.14
	BACMaleRatio             = 0.73
	BACFemaleRatio           = 0.66
	BACEliminationPerHour    = 0.015
	BACLegalLimit            = 0.08

	// Sleep cycle back-calculation.
	SleepCycleMinutes   = 90
	SleepOnsetMinutes   = 15
	MinSleepCycles      = 3
	MaxSleepCycles      = 6
	RecommendedCycles   = 5
	PregnancyDays       = 280
	ConceptionOffsetDay = 14

	// WaterLitersPerKg is the baseline daily intake per kilogram.
	WaterLitersPerKg = 0.033
	// WaterLitersPer30MinExercise is added for each half hour of exercise.
	WaterLitersPer30MinExercise = 0.35

	MaxHeartRateBase = 220.0
)

// Conversion constants used outside the unit tables.
const (
	CmPerInch       = 2.54
	KmPerMile       = 1.609344
	LitersPerCup    = 0.2365882365
	LitersPerFlOz   = 0.0295735295625
	StandardGravity = 9.80665

	// SafeWithdrawalRate is the 4% retirement income rule.
	SafeWithdrawalRate = 0.04

	// MaxFactorial is the largest n whose factorial fits a float64.
	MaxFactorial = 170

	// MaxPrimeCandidate bounds trial division.
	MaxPrimeCandidate = 1e15

	MinPasswordLength = 4
	MaxPasswordLength = 128
)
