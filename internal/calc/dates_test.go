package calc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDiffCalendar(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want CalendarDiff
	}{
		{name: "same day", a: date(2020, 5, 5), b: date(2020, 5, 5), want: CalendarDiff{}},
		{name: "day before birthday", a: date(1990, 6, 15), b: date(2025, 6, 14), want: CalendarDiff{Years: 34, Months: 11, Days: 30}},
		{name: "on birthday", a: date(1990, 6, 15), b: date(2025, 6, 15), want: CalendarDiff{Years: 35}},
		{name: "end of month into leap february", a: date(2000, 1, 31), b: date(2000, 3, 1), want: CalendarDiff{Months: 1, Days: 1}},
		{name: "leap day birth in common year", a: date(2000, 2, 29), b: date(2025, 2, 28), want: CalendarDiff{Years: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiffCalendar(tt.a, tt.b))
		})
	}
}

func TestCalculateAge(t *testing.T) {
	rows := CalculateAge(date(1990, 6, 15), date(2025, 6, 14), "en_US")
	assert.Equal(t, "34 years, 11 months, 30 days", value(t, rows, "Age"))
	assert.Equal(t, "June 15, 2025 (in 1 day)", value(t, rows, "Next Birthday"))
	assert.Equal(t, "Friday", value(t, rows, "Born On"))

	rows = CalculateAge(date(1990, 6, 15), date(2025, 6, 15), "en_US")
	assert.Equal(t, "35 years", value(t, rows, "Age"))
	assert.Equal(t, "Today", value(t, rows, "Next Birthday"))

	assert.True(t, HasError(CalculateAge(date(2030, 1, 1), date(2025, 1, 1), "")))
}

func TestCalculateAge_LeapDayBirth(t *testing.T) {
	birth := date(2024, 2, 29)
	tests := []struct {
		name     string
		today    time.Time
		wantAge  string
		wantNext string
	}{
		{name: "before first birthday", today: date(2025, 2, 27), wantAge: "11 months, 29 days", wantNext: "February 28, 2025 (in 1 day)"},
		{name: "feb 28 in common year", today: date(2025, 2, 28), wantAge: "1 year", wantNext: "Today"},
		{name: "mar 1 in common year", today: date(2025, 3, 1), wantAge: "1 year, 1 day", wantNext: "February 28, 2026 (in 364 days)"},
		{name: "leap year", today: date(2028, 2, 29), wantAge: "4 years", wantNext: "Today"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := CalculateAge(birth, tt.today, "en_US")
			assert.Equal(t, tt.wantAge, value(t, rows, "Age"))
			assert.Equal(t, tt.wantNext, value(t, rows, "Next Birthday"))
		})
	}
}

func TestCalendarDiffString(t *testing.T) {
	tests := []struct {
		diff CalendarDiff
		want string
	}{
		{diff: CalendarDiff{}, want: "0 days"},
		{diff: CalendarDiff{Days: 1}, want: "1 day"},
		{diff: CalendarDiff{Years: 1, Months: 1}, want: "1 year, 1 month"},
		{diff: CalendarDiff{Years: 2, Days: 3}, want: "2 years, 3 days"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diff.String())
		})
	}
}

func TestCalculateDateDifference(t *testing.T) {
	rows := CalculateDateDifference(date(2024, 1, 1), date(2024, 12, 31))
	assert.Equal(t, "365", value(t, rows, "Days"))
	assert.Equal(t, "52 weeks, 1 day", value(t, rows, "Weeks"))

	// Order does not matter.
	reversed := CalculateDateDifference(date(2024, 12, 31), date(2024, 1, 1))
	assert.Equal(t, rows, reversed)

	// 2024-01-01 is a Monday.
	week := CalculateDateDifference(date(2024, 1, 1), date(2024, 1, 8))
	assert.Equal(t, "5", value(t, week, "Business Days"))

	partial := CalculateDateDifference(date(2024, 1, 6), date(2024, 1, 9))
	assert.Equal(t, "1", value(t, partial, "Business Days"))
}

func TestDaysBetweenRoundsUp(t *testing.T) {
	a := date(2024, 1, 1)
	assert.Equal(t, 1, daysBetween(a, a.Add(time.Hour)))
	assert.Equal(t, -1, daysBetween(a.Add(time.Hour), a))
}

func TestCalculateDayOfWeek(t *testing.T) {
	rows := CalculateDayOfWeek(date(2024, 7, 4), "en_US")

	total, ok := TotalRow(rows)
	require.True(t, ok)
	assert.Equal(t, "Thursday", total.Value)
	assert.Equal(t, "186th", value(t, rows, "Day of Year"))
	assert.Equal(t, "Yes", value(t, rows, "Leap Year"))

	rows = CalculateDayOfWeek(date(2024, 7, 4), "fr")
	assert.Equal(t, "jeudi", value(t, rows, "Day of Week"))
}
