package calc

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// scientificThreshold is where fixed-point output switches to %g; int64
// grouping cannot represent the integer part beyond it.
const scientificThreshold = 1e15

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float with the specified precision and thousand separators.
// Example: FormatFloat(1234.567, 2) returns "1,234.57".
//
// NaN and infinities render as "NaN", "+Inf" and "-Inf" so malformed input
// stays visible in permissive mode.
func FormatFloat(f float64, precision int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Sprintf("%v", f)
	}
	if math.Abs(f) >= scientificThreshold {
		return fmt.Sprintf("%.*e", precision, f)
	}

	const base = 10
	multiplier := math.Pow(base, float64(precision))
	rounded := math.Round(f*multiplier) / multiplier
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}

	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}

	formatted := fmt.Sprintf("%.*f", precision, rounded)
	intPart, decPart, hasDec := strings.Cut(formatted, ".")

	var n int64
	if _, err := fmt.Sscan(intPart, &n); err != nil {
		return sign + formatted
	}
	out := sign + FormatNumber(n)
	if hasDec {
		out += "." + decPart
	}
	return out
}

// FormatDecimal formats f with at most maxPrecision decimals, trimming
// trailing zeros. Example: FormatDecimal(1609.344, 4) returns "1,609.344".
func FormatDecimal(f float64, maxPrecision int) string {
	s := FormatFloat(f, maxPrecision)
	if strings.ContainsAny(s, "eIN") || !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// FormatMoney formats a dollar amount: FormatMoney(-1234.5) returns "-$1,234.50".
func FormatMoney(f float64) string {
	if f < 0 {
		return "-$" + FormatFloat(-f, 2)
	}
	return "$" + FormatFloat(f, 2)
}

// FormatPercent formats a percentage value already scaled to 0-100.
// Example: FormatPercent(7.5, 2) returns "7.50%".
func FormatPercent(f float64, precision int) string {
	return FormatFloat(f, precision) + "%"
}

// FormatMonths renders a month count as "3 yr 2 mo".
func FormatMonths(months int) string {
	years := months / MonthsPerYear
	rest := months % MonthsPerYear
	switch {
	case years == 0:
		return fmt.Sprintf("%d mo", rest)
	case rest == 0:
		return fmt.Sprintf("%d yr", years)
	default:
		return fmt.Sprintf("%d yr %d mo", years, rest)
	}
}

// FormatClock renders minutes after midnight as a 12-hour clock time.
// Values outside a day wrap modulo 1440.
func FormatClock(minutes int) string {
	m := ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	t := time.Date(2000, time.January, 1, m/60, m%60, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

// FormatHoursMinutes renders a minute count as "7 hr 30 min".
func FormatHoursMinutes(minutes int) string {
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%d hr", h)
	}
	return fmt.Sprintf("%d hr %d min", h, m)
}

// mondayLocales maps language tags to monday locales for date output.
//
//nolint:gochecknoglobals // Compile-time lookup table.
var mondayLocales = map[string]monday.Locale{
	"en":    monday.LocaleEnUS,
	"en_us": monday.LocaleEnUS,
	"en_gb": monday.LocaleEnGB,
	"de":    monday.LocaleDeDE,
	"de_de": monday.LocaleDeDE,
	"fr":    monday.LocaleFrFR,
	"fr_fr": monday.LocaleFrFR,
	"fr_ca": monday.LocaleFrCA,
	"es":    monday.LocaleEsES,
	"es_es": monday.LocaleEsES,
	"it":    monday.LocaleItIT,
	"it_it": monday.LocaleItIT,
	"pt":    monday.LocalePtPT,
	"pt_br": monday.LocalePtBR,
	"nl":    monday.LocaleNlNL,
	"ru":    monday.LocaleRuRU,
	"pl":    monday.LocalePlPL,
	"sv":    monday.LocaleSvSE,
	"ja":    monday.LocaleJaJP,
	"zh":    monday.LocaleZhCN,
	"ko":    monday.LocaleKoKR,
}

// MondayLocale resolves a locale string such as "de", "fr-CA" or "en_US".
// Unknown locales fall back to US English.
func MondayLocale(locale string) monday.Locale {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "-", "_"))
	if loc, ok := mondayLocales[key]; ok {
		return loc
	}
	if lang, _, found := strings.Cut(key, "_"); found {
		if loc, ok := mondayLocales[lang]; ok {
			return loc
		}
	}
	return monday.LocaleEnUS
}

// dateLayout picks a long date layout with the locale's day/month order.
func dateLayout(loc monday.Locale) string {
	switch loc {
	case monday.LocaleEnUS:
		return "January 2, 2006"
	case monday.LocaleJaJP, monday.LocaleZhCN, monday.LocaleKoKR:
		return "2006-01-02"
	default:
		return "2 January 2006"
	}
}

// FormatDate renders a calendar date with localized month names.
// Example: FormatDate(t, "en_US") returns "March 14, 2025".
func FormatDate(t time.Time, locale string) string {
	loc := MondayLocale(locale)
	return monday.Format(t, dateLayout(loc), loc)
}

// FormatWeekday renders the localized weekday name.
func FormatWeekday(t time.Time, locale string) string {
	return monday.Format(t, "Monday", MondayLocale(locale))
}
