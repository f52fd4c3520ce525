package calc

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Character classes for GeneratePassword.
const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()-_=+[]{};:,.?/"
)

// charset builds the alphabet from a class list such as "upper,digits".
// Empty or "all" selects every class; unknown names select nothing.
func charset(classes string) string {
	all := lowerChars + upperChars + digitChars + symbolChars
	tokens := splitList(strings.ToLower(classes))
	if len(tokens) == 0 {
		return all
	}
	var lower, upper, digits, symbols bool
	for _, tok := range tokens {
		switch tok {
		case "all":
			return all
		case "lower", "lowercase":
			lower = true
		case "upper", "uppercase":
			upper = true
		case "digit", "digits", "number", "numbers":
			digits = true
		case "symbol", "symbols":
			symbols = true
		}
	}
	var b strings.Builder
	if lower {
		b.WriteString(lowerChars)
	}
	if upper {
		b.WriteString(upperChars)
	}
	if digits {
		b.WriteString(digitChars)
	}
	if symbols {
		b.WriteString(symbolChars)
	}
	return b.String()
}

// PasswordStrength buckets entropy bits.
func PasswordStrength(bits float64) string {
	switch {
	case bits < 28:
		return "Very Weak"
	case bits < 36:
		return "Weak"
	case bits < 60:
		return "Reasonable"
	case bits < 128:
		return "Strong"
	default:
		return "Very Strong"
	}
}

// GeneratePassword draws a password of the given length from random using
// rejection sampling so every character is equally likely. This is the one
// non-deterministic calculation.
func GeneratePassword(random io.Reader, length float64, classes string) []ResultRow {
	if length != math.Trunc(length) || length < MinPasswordLength || length > MaxPasswordLength {
		return ErrorRow(fmt.Sprintf("Length must be a whole number between %d and %d", MinPasswordLength, MaxPasswordLength))
	}
	alphabet := charset(classes)
	if alphabet == "" {
		return ErrorRow("Select at least one character set")
	}

	n := int(length)
	limit := 256 - 256%len(alphabet)
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := io.ReadFull(random, buf); err != nil {
			return ErrorRow("Random source unavailable")
		}
		for _, c := range buf {
			if int(c) >= limit {
				continue
			}
			out = append(out, alphabet[int(c)%len(alphabet)])
			if len(out) == n {
				break
			}
		}
	}

	bits := length * math.Log2(float64(len(alphabet)))
	return []ResultRow{
		Total("Password", string(out)),
		Row("Entropy", FormatFloat(bits, 1)+" bits"),
		Row("Strength", PasswordStrength(bits)),
		Row("Character Pool", FormatNumber(int64(len(alphabet)))),
	}
}
