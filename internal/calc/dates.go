package calc

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

const hoursPerDay = 24

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole days from a to b, rounding partial days up
// in magnitude.
func daysBetween(a, b time.Time) int {
	days := b.Sub(a).Hours() / hoursPerDay
	if days < 0 {
		return -int(math.Ceil(-days))
	}
	return int(math.Ceil(days))
}

// CalendarDiff is a years/months/days difference.
type CalendarDiff struct {
	Years, Months, Days int
}

// String renders the non-zero components, as in "1 year, 2 days".
func (d CalendarDiff) String() string {
	var parts []string
	for _, c := range []struct {
		n    int
		unit string
	}{{d.Years, "year"}, {d.Months, "month"}, {d.Days, "day"}} {
		if c.n != 0 {
			parts = append(parts, english.Plural(c.n, c.unit, ""))
		}
	}
	if len(parts) == 0 {
		return english.Plural(0, "day", "")
	}
	return strings.Join(parts, ", ")
}

// weeksAndDays renders a day count as "8 weeks, 3 days".
func weeksAndDays(days int) string {
	return english.Plural(days/DaysPerWeek, "week", "") + ", " + english.Plural(days%DaysPerWeek, "day", "")
}

// anniversary returns a shifted by k months, clamping the day to the
// length of the target month.
func anniversary(a time.Time, k int) time.Time {
	first := time.Date(a.Year(), a.Month()+time.Month(k), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	return time.Date(first.Year(), first.Month(), min(a.Day(), last), 0, 0, 0, 0, time.UTC)
}

// DiffCalendar returns the calendar difference from a to b (a <= b): whole
// months first, then the days left after the last monthly anniversary.
func DiffCalendar(a, b time.Time) CalendarDiff {
	a, b = truncateDay(a), truncateDay(b)
	months := (b.Year()-a.Year())*MonthsPerYear + int(b.Month()) - int(a.Month())
	if anniversary(a, months).After(b) {
		months--
	}
	days := daysBetween(anniversary(a, months), b)
	return CalendarDiff{Years: months / MonthsPerYear, Months: months % MonthsPerYear, Days: days}
}

// nextBirthday returns the first anniversary of birth on or after today.
// A Feb 29 birthday falls on Feb 28 in common years, as in DiffCalendar.
func nextBirthday(birth, today time.Time) time.Time {
	years := today.Year() - birth.Year()
	next := anniversary(birth, years*MonthsPerYear)
	if next.Before(today) {
		next = anniversary(birth, (years+1)*MonthsPerYear)
	}
	return next
}

// CalculateAge computes exact age on today's date.
func CalculateAge(birth, today time.Time, locale string) []ResultRow {
	birth, today = truncateDay(birth), truncateDay(today)
	if birth.After(today) {
		return ErrorRow("Birth date is in the future")
	}
	diff := DiffCalendar(birth, today)
	days := daysBetween(birth, today)
	next := nextBirthday(birth, today)
	untilNext := daysBetween(today, next)

	nextValue := fmt.Sprintf("%s (in %s)", FormatDate(next, locale), english.Plural(untilNext, "day", ""))
	if untilNext == 0 {
		nextValue = "Today"
	}
	return []ResultRow{
		Total("Age", diff.String()),
		Row("Total Months", FormatNumber(int64(diff.Years*MonthsPerYear+diff.Months))),
		Row("Total Weeks", FormatNumber(int64(days/DaysPerWeek))),
		Row("Total Days", FormatNumber(int64(days))),
		Row("Born On", FormatWeekday(birth, locale)),
		Row("Next Birthday", nextValue),
	}
}

// businessDays counts weekdays in [start, end).
func businessDays(start, end time.Time) int {
	total := daysBetween(start, end)
	weeks, rest := total/DaysPerWeek, total%DaysPerWeek
	n := weeks * 5
	day := start.Weekday()
	for range rest {
		if day != time.Saturday && day != time.Sunday {
			n++
		}
		day = (day + 1) % DaysPerWeek
	}
	return n
}

// CalculateDateDifference measures the span between two dates in either
// order.
func CalculateDateDifference(start, end time.Time) []ResultRow {
	start, end = truncateDay(start), truncateDay(end)
	if end.Before(start) {
		start, end = end, start
	}
	days := daysBetween(start, end)
	return []ResultRow{
		Total("Days", FormatNumber(int64(days))),
		Row("Weeks", weeksAndDays(days)),
		Row("Calendar Difference", DiffCalendar(start, end).String()),
		Row("Business Days", FormatNumber(int64(businessDays(start, end)))),
		Row("Hours", FormatNumber(int64(days*hoursPerDay))),
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// CalculateDayOfWeek describes a calendar date.
func CalculateDayOfWeek(date time.Time, locale string) []ResultRow {
	date = truncateDay(date)
	_, week := date.ISOWeek()
	leap := "No"
	if isLeap(date.Year()) {
		leap = "Yes"
	}
	return []ResultRow{
		Total("Day of Week", FormatWeekday(date, locale)),
		Row("Date", FormatDate(date, locale)),
		Row("Day of Year", humanize.Ordinal(date.YearDay())),
		Row("ISO Week", fmt.Sprintf("%d", week)),
		Row("Leap Year", leap),
	}
}
