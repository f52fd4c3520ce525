package calc

import (
	"fmt"
	"math"
	"math/big"
	"slices"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// CalculatePercentage answers "x% of y" and "x is what percent of y".
func CalculatePercentage(x, y float64) []ResultRow {
	return []ResultRow{
		Total(fmt.Sprintf("%s%% of %s", FormatDecimal(x, 4), FormatDecimal(y, 4)), FormatDecimal(x/100*y, 4)),
		Row(fmt.Sprintf("%s is what %% of %s", FormatDecimal(x, 4), FormatDecimal(y, 4)), FormatPercent(x/y*100, 2)),
	}
}

// CalculatePercentChange compares an old value to a new one.
func CalculatePercentChange(from, to float64) []ResultRow {
	change := (to - from) / math.Abs(from) * 100
	direction := "No Change"
	switch {
	case to > from:
		direction = "Increase"
	case to < from:
		direction = "Decrease"
	}
	return []ResultRow{
		Total("Percent Change", FormatPercent(change, 2)),
		Row("Absolute Change", FormatDecimal(to-from, 4)),
		Row("Direction", direction),
	}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// CalculateGcfLcm computes the greatest common factor (Euclid) and least
// common multiple of two integers. Fractional inputs are truncated.
func CalculateGcfLcm(a, b float64) []ResultRow {
	x, y := int64(a), int64(b)
	g := gcd(x, y)
	var l int64
	if g != 0 {
		l = x / g * y
		if l < 0 {
			l = -l
		}
	}
	return []ResultRow{
		Total("GCF", FormatNumber(g)),
		Row("LCM", FormatNumber(l)),
	}
}

// smallestFactor returns the least prime factor of n >= 2 by trial
// division up to √n.
func smallestFactor(n int64) int64 {
	if n%2 == 0 {
		return 2
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return d
		}
	}
	return n
}

// IsPrime reports whether n is prime.
func IsPrime(n int64) bool {
	return n >= 2 && smallestFactor(n) == n
}

// CalculatePrime tests primality and factors composite numbers.
func CalculatePrime(value float64) []ResultRow {
	if value != math.Trunc(value) || value < 2 {
		return []ResultRow{
			Total("Is Prime?", "No"),
			Row("Reason", "Primes are whole numbers greater than 1"),
		}
	}
	if value > MaxPrimeCandidate {
		return ErrorRow("Number is too large to test")
	}
	n := int64(value)
	if IsPrime(n) {
		return []ResultRow{
			Total("Is Prime?", "Yes"),
			Row("Factors", "1, "+FormatNumber(n)),
		}
	}

	var factors []string
	for rest := n; rest > 1; {
		f := smallestFactor(rest)
		factors = append(factors, strconv.FormatInt(f, 10))
		rest /= f
	}
	return []ResultRow{
		Total("Is Prime?", "No"),
		Row("Smallest Divisor", FormatNumber(smallestFactor(n))),
		Row("Prime Factorization", strings.Join(factors, " × ")),
	}
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// CalculateStandardDeviation computes population and sample deviation of a
// number list such as "2, 4, 4, 4, 5, 5, 7, 9".
func CalculateStandardDeviation(list string) []ResultRow {
	xs, err := ParseNumberList(list)
	if err != nil {
		return ErrorRow("Enter numbers separated by commas")
	}
	m := mean(xs)
	var ss float64
	for _, x := range xs {
		ss += (x - m) * (x - m)
	}
	n := float64(len(xs))
	rows := []ResultRow{
		Total("Standard Deviation (Population)", FormatDecimal(math.Sqrt(ss/n), 4)),
		Row("Variance (Population)", FormatDecimal(ss/n, 4)),
	}
	if len(xs) > 1 {
		rows = append(rows,
			Row("Standard Deviation (Sample)", FormatDecimal(math.Sqrt(ss/(n-1)), 4)),
			Row("Variance (Sample)", FormatDecimal(ss/(n-1), 4)),
		)
	}
	return append(rows,
		Row("Mean", FormatDecimal(m, 4)),
		Row("Count", FormatNumber(int64(len(xs)))),
	)
}

// CalculateAverage summarizes a number list.
func CalculateAverage(list string) []ResultRow {
	xs, err := ParseNumberList(list)
	if err != nil {
		return ErrorRow("Enter numbers separated by commas")
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	median := sorted[mid]
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}
	m := mean(xs)
	return []ResultRow{
		Total("Mean", FormatDecimal(m, 4)),
		Row("Median", FormatDecimal(median, 4)),
		Row("Sum", FormatDecimal(m*float64(len(xs)), 4)),
		Row("Count", FormatNumber(int64(len(xs)))),
		Row("Minimum", FormatDecimal(sorted[0], 4)),
		Row("Maximum", FormatDecimal(sorted[len(sorted)-1], 4)),
		Row("Range", FormatDecimal(sorted[len(sorted)-1]-sorted[0], 4)),
	}
}

// CalculateSlope computes the line through two "x,y" points.
func CalculateSlope(first, second string) []ResultRow {
	p1, err1 := ParsePoint(first)
	p2, err2 := ParsePoint(second)
	if err1 != nil || err2 != nil {
		return ErrorRow("Points must be entered as x,y")
	}
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	if dx == 0 {
		return ErrorRow("Slope is undefined for a vertical line")
	}
	m := dy / dx
	b := p1.Y - m*p1.X
	return []ResultRow{
		Total("Slope (m)", FormatDecimal(m, 4)),
		Row("Y-Intercept (b)", FormatDecimal(b, 4)),
		Row("Equation", lineEquation(m, b)),
		Row("Distance", FormatDecimal(math.Hypot(dx, dy), 4)),
		Row("Angle", FormatDecimal(math.Atan(m)*180/math.Pi, 2)+"°"),
	}
}

func lineEquation(m, b float64) string {
	eq := "y = " + FormatDecimal(m, 4) + "x"
	switch {
	case b > 0:
		eq += " + " + FormatDecimal(b, 4)
	case b < 0:
		eq += " - " + FormatDecimal(-b, 4)
	}
	return eq
}

// CalculateQuadratic solves ax² + bx + c = 0, including complex roots.
func CalculateQuadratic(a, b, c float64) []ResultRow {
	if a == 0 {
		return ErrorRow("Coefficient a must be non-zero")
	}
	disc := b*b - 4*a*c
	vertexX := -b / (2 * a)
	vertex := fmt.Sprintf("(%s, %s)", FormatDecimal(vertexX, 4), FormatDecimal(a*vertexX*vertexX+b*vertexX+c, 4))

	var roots []ResultRow
	switch {
	case disc > 0:
		sq := math.Sqrt(disc)
		roots = []ResultRow{
			Total("Root 1 (x₁)", FormatDecimal((-b+sq)/(2*a), 4)),
			Row("Root 2 (x₂)", FormatDecimal((-b-sq)/(2*a), 4)),
		}
	case disc == 0:
		roots = []ResultRow{Total("Root (double)", FormatDecimal(vertexX, 4))}
	default:
		im := math.Sqrt(-disc) / (2 * a)
		re := FormatDecimal(vertexX, 4)
		roots = []ResultRow{
			Total("Root 1 (x₁)", fmt.Sprintf("%s + %si", re, FormatDecimal(math.Abs(im), 4))),
			Row("Root 2 (x₂)", fmt.Sprintf("%s - %si", re, FormatDecimal(math.Abs(im), 4))),
		}
	}
	return append(roots,
		Row("Discriminant", FormatDecimal(disc, 4)),
		Row("Vertex", vertex),
	)
}

// CalculateExponent computes base^exponent.
func CalculateExponent(base, exponent float64) []ResultRow {
	return []ResultRow{
		Total("Result", FormatDecimal(math.Pow(base, exponent), 6)),
		Row("Reciprocal", FormatDecimal(math.Pow(base, -exponent), 6)),
	}
}

// CalculateSquareRoot computes square and cube roots. Negative inputs have
// an imaginary square root.
func CalculateSquareRoot(x float64) []ResultRow {
	sqrt := FormatDecimal(math.Sqrt(math.Abs(x)), 6)
	if x < 0 {
		sqrt += "i"
	}
	rows := []ResultRow{
		Total("Square Root", sqrt),
		Row("Cube Root", FormatDecimal(math.Cbrt(x), 6)),
		Row("Square", FormatDecimal(x*x, 6)),
	}
	if r := math.Sqrt(x); r == math.Trunc(r) {
		rows = append(rows, Row("Perfect Square", "Yes"))
	}
	return rows
}

// CalculatePythagorean finds the hypotenuse of a right triangle.
func CalculatePythagorean(a, b float64) []ResultRow {
	c := math.Hypot(a, b)
	return []ResultRow{
		Total("Hypotenuse (c)", FormatDecimal(c, 4)),
		Row("Area", FormatDecimal(a*b/2, 4)),
		Row("Perimeter", FormatDecimal(a+b+c, 4)),
	}
}

// CalculateFactorial computes n! exactly for 0 <= n <= 170.
func CalculateFactorial(n float64) []ResultRow {
	if n != math.Trunc(n) || n < 0 || n > MaxFactorial {
		return ErrorRow(fmt.Sprintf("Enter a whole number between 0 and %d", MaxFactorial))
	}
	f := new(big.Int).MulRange(1, int64(n))
	digits := len(f.String())
	value := humanize.BigComma(f)
	if digits > 21 {
		value = fmt.Sprintf("%.6e", new(big.Float).SetInt(f))
	}
	return []ResultRow{
		Total(fmt.Sprintf("%d!", int64(n)), value),
		Row("Digits", FormatNumber(int64(digits))),
	}
}

func reduce(f Fraction) Fraction {
	g := gcd(f.Num, f.Den)
	if g == 0 {
		return f
	}
	f.Num, f.Den = f.Num/g, f.Den/g
	if f.Den < 0 {
		f.Num, f.Den = -f.Num, -f.Den
	}
	return f
}

func (f Fraction) String() string {
	if f.Den == 1 {
		return strconv.FormatInt(f.Num, 10)
	}
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// CalculateFraction applies op (+, -, *, /, or ×, ÷) to two fractions
// written "a/b".
func CalculateFraction(first, second, op string) []ResultRow {
	x, err1 := ParseFraction(first)
	y, err2 := ParseFraction(second)
	if err1 != nil || err2 != nil {
		return ErrorRow("Fractions must be entered as a/b")
	}
	if x.Den == 0 || y.Den == 0 {
		return ErrorRow("Denominator must be non-zero")
	}

	var r Fraction
	switch strings.TrimSpace(op) {
	case "+", "", "add":
		r = Fraction{Num: x.Num*y.Den + y.Num*x.Den, Den: x.Den * y.Den}
	case "-", "−", "subtract":
		r = Fraction{Num: x.Num*y.Den - y.Num*x.Den, Den: x.Den * y.Den}
	case "*", "×", "x", "multiply":
		r = Fraction{Num: x.Num * y.Num, Den: x.Den * y.Den}
	case "/", "÷", "divide":
		if y.Num == 0 {
			return ErrorRow("Cannot divide by zero")
		}
		r = Fraction{Num: x.Num * y.Den, Den: x.Den * y.Num}
	default:
		return ErrorRow(fmt.Sprintf("Unknown operation %q", op))
	}
	r = reduce(r)

	rows := []ResultRow{
		Total("Result", r.String()),
		Row("Decimal", FormatDecimal(float64(r.Num)/float64(r.Den), 6)),
	}
	if whole := r.Num / r.Den; whole != 0 && r.Den != 1 {
		rem := r.Num % r.Den
		if rem < 0 {
			rem = -rem
		}
		rows = append(rows, Row("Mixed Number", fmt.Sprintf("%d %d/%d", whole, rem, r.Den)))
	}
	return rows
}

// CalculateLogarithm computes log_base(x) alongside ln and log10.
func CalculateLogarithm(x, base float64) []ResultRow {
	if x <= 0 {
		return ErrorRow("Logarithm is only defined for positive numbers")
	}
	if base <= 0 || base == 1 {
		return ErrorRow("Base must be positive and not equal to 1")
	}
	return []ResultRow{
		Total(fmt.Sprintf("log%s(%s)", FormatDecimal(base, 4), FormatDecimal(x, 4)), FormatDecimal(math.Log(x)/math.Log(base), 6)),
		Row("Natural Log (ln)", FormatDecimal(math.Log(x), 6)),
		Row("Common Log (log₁₀)", FormatDecimal(math.Log10(x), 6)),
	}
}
