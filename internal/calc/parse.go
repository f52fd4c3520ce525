package calc

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Parse errors for composite text inputs. Calculation functions turn these
// into Error rows; the dispatcher uses them for date and clock fields.
var (
	// ErrMalformedList indicates a number list with a non-numeric entry.
	ErrMalformedList = constError("malformed number list")

	// ErrMalformedPoint indicates a point that is not of the form "x,y".
	ErrMalformedPoint = constError("malformed point")

	// ErrMalformedFraction indicates a fraction that is not of the form "a/b".
	ErrMalformedFraction = constError("malformed fraction")

	// ErrMalformedDate indicates an unparseable calendar date.
	ErrMalformedDate = constError("malformed date")

	// ErrMalformedClock indicates an unparseable time of day.
	ErrMalformedClock = constError("malformed time of day")
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// splitList splits on commas, semicolons and whitespace, dropping empties.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
}

// ParseNumberList parses "1, 2 3;4" into its numbers.
func ParseNumberList(s string) ([]float64, error) {
	fields := splitList(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no numbers", ErrMalformedList)
	}
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedList, f)
		}
		out = append(out, v)
	}
	return out, nil
}

// Point is a 2-D coordinate.
type Point struct{ X, Y float64 }

// ParsePoint parses "x,y" with optional parentheses and spaces.
func ParsePoint(s string) (Point, error) {
	trimmed := strings.Trim(strings.TrimSpace(s), "()")
	xs, ys, ok := strings.Cut(trimmed, ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrMalformedPoint, s)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if errX != nil || errY != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrMalformedPoint, s)
	}
	return Point{X: x, Y: y}, nil
}

// Fraction is an integer ratio.
type Fraction struct{ Num, Den int64 }

// ParseFraction parses "a/b" or a bare integer "a".
func ParseFraction(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	ns, ds, hasDen := strings.Cut(s, "/")
	num, err := strconv.ParseInt(strings.TrimSpace(ns), 10, 64)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %q", ErrMalformedFraction, s)
	}
	den := int64(1)
	if hasDen {
		den, err = strconv.ParseInt(strings.TrimSpace(ds), 10, 64)
		if err != nil {
			return Fraction{}, fmt.Errorf("%w: %q", ErrMalformedFraction, s)
		}
	}
	return Fraction{Num: num, Den: den}, nil
}

// ParseDate parses a calendar date in any common layout ("2024-03-01",
// "03/01/2024", "March 1, 2024") and truncates it to UTC midnight.
// Ambiguous numeric dates are read month first.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrMalformedDate)
	}
	t, err := dateparse.ParseIn(s, time.UTC, dateparse.PreferMonthFirst(true))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// clockLayouts are the accepted time-of-day layouts.
//
//nolint:gochecknoglobals // Compile-time lookup table.
var clockLayouts = []string{"15:04", "3:04 PM", "3:04PM", "3:04 pm", "3:04pm", "3 PM", "3PM"}

// ParseClock parses a time of day into minutes after midnight.
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrMalformedClock, s)
}
