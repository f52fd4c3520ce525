package calc

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Gender selects sex-specific formula constants.
type Gender string

// Supported genders.
const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ErrUnknownGender is returned by ParseGender.
var ErrUnknownGender = constError("unknown gender")

// ParseGender accepts "male"/"female" and their initials, case-insensitively.
// An empty string selects Male.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "man", "":
		return Male, nil
	case "female", "f", "woman":
		return Female, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownGender, s)
	}
}

// ActivityLevel is a TDEE multiplier category.
type ActivityLevel string

// Activity levels, least to most active.
const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very-active"
)

// ErrUnknownActivity is returned by ParseActivityLevel.
var ErrUnknownActivity = constError("unknown activity level")

//nolint:gochecknoglobals // Compile-time lookup table.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// ActivityLevels lists the levels in ascending order.
func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive}
}

// ParseActivityLevel accepts a level name or its 1-5 index. Empty selects
// moderate.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
	if key == "" {
		return ActivityModerate, nil
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '5' {
		return ActivityLevels()[key[0]-'1'], nil
	}
	if _, ok := activityMultipliers[ActivityLevel(key)]; ok {
		return ActivityLevel(key), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownActivity, s)
}

// Multiplier returns the TDEE factor, defaulting to moderate.
func (a ActivityLevel) Multiplier() float64 {
	if m, ok := activityMultipliers[a]; ok {
		return m
	}
	return activityMultipliers[ActivityModerate]
}

// BMICategory buckets a BMI value.
func BMICategory(bmi float64) string {
	switch {
	case math.IsNaN(bmi):
		return "Unknown"
	case bmi < BMIUnderweight:
		return "Underweight"
	case bmi < BMINormal:
		return "Normal Weight"
	case bmi < BMIOverweight:
		return "Overweight"
	default:
		return "Obese"
	}
}

// CalculateBMI computes body mass index from height in centimeters and
// weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) []ResultRow {
	m := heightCm / 100
	bmi := weightKg / (m * m)
	low, high := BMIUnderweight*m*m, BMINormal*m*m
	return []ResultRow{
		Total("BMI", FormatFloat(bmi, 1)),
		Row("Category", BMICategory(bmi)),
		Row("Healthy Weight Range", fmt.Sprintf("%s - %s kg", FormatFloat(low, 1), FormatFloat(high, 1))),
	}
}

// mifflinStJeor returns resting energy expenditure in kcal/day.
func mifflinStJeor(weightKg, heightCm, age float64, g Gender) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*age
	if g == Female {
		return base - 161
	}
	return base + 5
}

// CalculateBMR computes basal metabolic rate (Mifflin-St Jeor).
func CalculateBMR(weightKg, heightCm, age float64, g Gender) []ResultRow {
	bmr := mifflinStJeor(weightKg, heightCm, age, g)
	rows := []ResultRow{Total("BMR", FormatFloat(bmr, 0)+" kcal/day")}
	for _, level := range ActivityLevels() {
		rows = append(rows, Row("TDEE ("+string(level)+")", FormatFloat(bmr*level.Multiplier(), 0)+" kcal/day"))
	}
	return rows
}

// CalculateCalories computes maintenance calories and common goal targets.
func CalculateCalories(weightKg, heightCm, age float64, g Gender, level ActivityLevel) []ResultRow {
	tdee := mifflinStJeor(weightKg, heightCm, age, g) * level.Multiplier()
	const weekly = 500.0
	return []ResultRow{
		Total("Maintenance Calories", FormatFloat(tdee, 0)+" kcal/day"),
		Row("Mild Weight Loss (0.25 kg/week)", FormatFloat(tdee-weekly/2, 0)+" kcal/day"),
		Row("Weight Loss (0.5 kg/week)", FormatFloat(tdee-weekly, 0)+" kcal/day"),
		Row("Weight Gain (0.5 kg/week)", FormatFloat(tdee+weekly, 0)+" kcal/day"),
		Row("Activity Multiplier", FormatDecimal(level.Multiplier(), 3)),
	}
}

// CalculateBodyFat estimates body fat with the US Navy circumference method.
// All measurements are in inches; hip is only used for women.
func CalculateBodyFat(g Gender, heightIn, waistIn, neckIn, hipIn float64) []ResultRow {
	var pct float64
	if g == Female {
		if waistIn+hipIn-neckIn <= 0 {
			return ErrorRow("Waist plus hip must exceed neck measurement")
		}
		pct = 163.205*math.Log10(waistIn+hipIn-neckIn) - 97.684*math.Log10(heightIn) - 78.387
	} else {
		if waistIn-neckIn <= 0 {
			return ErrorRow("Waist must exceed neck measurement")
		}
		pct = 86.010*math.Log10(waistIn-neckIn) - 70.041*math.Log10(heightIn) + 36.76
	}
	pct = math.Max(0, math.Min(BodyFatMax, pct))

	return []ResultRow{
		Total("Body Fat", FormatPercent(pct, 1)),
		Row("Category", bodyFatCategory(pct, g)),
	}
}

func bodyFatCategory(pct float64, g Gender) string {
	// ACE thresholds; women carry 8 points more essential fat.
	offset := 0.0
	if g == Female {
		offset = 8
	}
	switch {
	case pct < 6+offset:
		return "Essential Fat"
	case pct < 14+offset:
		return "Athletes"
	case pct < 18+offset:
		return "Fitness"
	case pct < 25+offset:
		return "Average"
	default:
		return "Obese"
	}
}

// CalculateIdealWeight applies the Devine formula and reports the Robinson,
// Miller and Hamwi variants for comparison. Height is in centimeters.
func CalculateIdealWeight(heightCm float64, g Gender) []ResultRow {
	over := heightCm/CmPerInch - 60
	pick := func(male, female float64) float64 {
		if g == Female {
			return female
		}
		return male
	}
	kg := func(v float64) string { return FormatFloat(v, 1) + " kg" }

	devine := pick(50+2.3*over, 45.5+2.3*over)
	return []ResultRow{
		Total("Ideal Weight (Devine)", kg(devine)),
		Row("Robinson", kg(pick(52+1.9*over, 49+1.7*over))),
		Row("Miller", kg(pick(56.2+1.41*over, 53.1+1.36*over))),
		Row("Hamwi", kg(pick(48+2.7*over, 45.5+2.2*over))),
	}
}

// CalculateLeanBodyMass applies the Boer formula.
func CalculateLeanBodyMass(weightKg, heightCm float64, g Gender) []ResultRow {
	lbm := 0.407*weightKg + 0.267*heightCm - 19.2
	if g == Female {
		lbm = 0.252*weightKg + 0.473*heightCm - 48.3
	}
	fat := weightKg - lbm
	return []ResultRow{
		Total("Lean Body Mass", FormatFloat(lbm, 1)+" kg"),
		Row("Body Fat Mass", FormatFloat(fat, 1)+" kg"),
		Row("Body Fat", FormatPercent(fat/weightKg*100, 1)),
	}
}

// CalculateOneRepMax estimates a one-rep max with the Epley formula.
func CalculateOneRepMax(weight, reps float64) []ResultRow {
	orm := weight * (1 + reps/EpleyDivisor)
	rows := []ResultRow{Total("Estimated 1RM", FormatDecimal(orm, 1))}
	for _, pct := range []float64{95, 90, 85, 80, 75, 70, 65, 60} {
		rows = append(rows, Row(FormatDecimal(pct, 0)+"% of 1RM", FormatDecimal(orm*pct/100, 1)))
	}
	return rows
}

// BAC estimates blood alcohol concentration, floored at zero.
func BAC(drinks, weightLbs, hours float64, g Gender) float64 {
	ratio := BACMaleRatio
	if g == Female {
		ratio = BACFemaleRatio
	}
	bac := drinks*BACAlcoholOuncesPerDrink*BACWidmarkConstant/(weightLbs*ratio) - BACEliminationPerHour*hours
	if bac < 0 {
		return 0
	}
	return bac
}

// CalculateBAC reports estimated BAC and time until sober.
func CalculateBAC(drinks, weightLbs, hours float64, g Gender) []ResultRow {
	bac := BAC(drinks, weightLbs, hours, g)
	status := "Sober"
	switch {
	case bac >= BACLegalLimit:
		status = "Over Legal Limit"
	case bac > 0:
		status = "Impaired"
	}
	return []ResultRow{
		Total("Estimated BAC", FormatFloat(bac, 3)+"%"),
		Row("Status", status),
		Row("Hours Until Sober", FormatFloat(bac/BACEliminationPerHour, 1)),
	}
}

// CalculateWaterIntake estimates daily water needs.
func CalculateWaterIntake(weightKg, exerciseMinutes float64) []ResultRow {
	liters := weightKg*WaterLitersPerKg + exerciseMinutes/30*WaterLitersPer30MinExercise
	return []ResultRow{
		Total("Daily Water Intake", FormatFloat(liters, 2)+" L"),
		Row("Cups (8 oz)", FormatFloat(liters/LitersPerCup, 1)),
		Row("Fluid Ounces", FormatFloat(liters/LitersPerFlOz, 0)),
	}
}

// CalculateHeartRate derives training zones with the Karvonen method.
func CalculateHeartRate(age, restingHR float64) []ResultRow {
	maxHR := MaxHeartRateBase - age
	reserve := maxHR - restingHR
	zone := func(lo, hi float64) string {
		return fmt.Sprintf("%s - %s bpm", FormatFloat(restingHR+reserve*lo, 0), FormatFloat(restingHR+reserve*hi, 0))
	}
	return []ResultRow{
		Total("Maximum Heart Rate", FormatFloat(maxHR, 0)+" bpm"),
		Row("Heart Rate Reserve", FormatFloat(reserve, 0)+" bpm"),
		Row("Zone 1 (Recovery)", zone(0.5, 0.6)),
		Row("Zone 2 (Fat Burn)", zone(0.6, 0.7)),
		Row("Zone 3 (Aerobic)", zone(0.7, 0.8)),
		Row("Zone 4 (Anaerobic)", zone(0.8, 0.9)),
		Row("Zone 5 (Maximum)", zone(0.9, 1.0)),
	}
}

// formatPace renders minutes as m:ss.
func formatPace(minutes float64) string {
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) {
		return FormatFloat(minutes, 0)
	}
	secs := int(math.Round(minutes * 60))
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// CalculatePace computes running pace from a distance in kilometers and a
// duration in minutes.
func CalculatePace(distanceKm, minutes float64) []ResultRow {
	if distanceKm <= 0 {
		return ErrorRow("Distance must be greater than zero")
	}
	perKm := minutes / distanceKm
	return []ResultRow{
		Total("Pace", formatPace(perKm)+" /km"),
		Row("Pace per Mile", formatPace(perKm*KmPerMile)+" /mi"),
		Row("Speed", FormatFloat(distanceKm/(minutes/60), 2)+" km/h"),
		Row("Speed (mph)", FormatFloat(distanceKm/KmPerMile/(minutes/60), 2)+" mph"),
	}
}

// CalculateDueDate estimates a due date from the first day of the last
// menstrual period, reporting progress relative to today.
func CalculateDueDate(lmp, today time.Time, locale string) []ResultRow {
	lmp = truncateDay(lmp)
	today = truncateDay(today)
	due := lmp.AddDate(0, 0, PregnancyDays)
	conception := lmp.AddDate(0, 0, ConceptionOffsetDay)

	rows := []ResultRow{
		Total("Estimated Due Date", FormatDate(due, locale)),
		Row("Estimated Conception", FormatDate(conception, locale)),
	}

	elapsed := daysBetween(lmp, today)
	if elapsed < 0 || elapsed > PregnancyDays {
		return rows
	}
	trimester := 1 + min(elapsed/(7*13), 2)
	return append(rows,
		Row("Gestational Age", weeksAndDays(elapsed)),
		Row("Trimester", humanize.Ordinal(trimester)),
		Row("Days Remaining", FormatNumber(int64(PregnancyDays-elapsed))),
	)
}

// CalculateSleep lists bedtimes that allow whole 90-minute cycles before a
// wake time given in minutes after midnight.
func CalculateSleep(wakeMinutes int) []ResultRow {
	rows := make([]ResultRow, 0, MaxSleepCycles-MinSleepCycles+1)
	for c := MaxSleepCycles; c >= MinSleepCycles; c-- {
		bed := FormatClock(wakeMinutes - c*SleepCycleMinutes - SleepOnsetMinutes)
		label := fmt.Sprintf("%d Cycles (%s)", c, FormatHoursMinutes(c*SleepCycleMinutes))
		if c == RecommendedCycles {
			rows = append(rows, Total(label, bed))
			continue
		}
		rows = append(rows, Row(label, bed))
	}
	return rows
}
