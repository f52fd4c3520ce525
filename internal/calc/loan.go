package calc

import (
	"fmt"
	"math"
)

// MonthlyPayment is the annuity payment for principal at annualRatePct over
// months payments. A zero rate divides the principal evenly.
func MonthlyPayment(principal, annualRatePct, months float64) float64 {
	r := annualRatePct / 100 / MonthsPerYear
	if r == 0 {
		return principal / months
	}
	growth := math.Pow(1+r, months)
	return principal * r * growth / (growth - 1)
}

// CalculateMortgage computes the payment on homePrice less downPayment.
func CalculateMortgage(homePrice, downPayment, annualRatePct, years float64) []ResultRow {
	principal := homePrice - downPayment
	n := years * MonthsPerYear
	payment := MonthlyPayment(principal, annualRatePct, n)
	totalPaid := payment * n

	return []ResultRow{
		Row("Loan Amount", FormatMoney(principal)),
		Total("Monthly Payment", FormatMoney(payment)),
		Row("Number of Payments", FormatDecimal(n, 0)),
		Row("Total Payment", FormatMoney(totalPaid)),
		Row("Total Interest", FormatMoney(totalPaid-principal)),
		Row("Down Payment", FormatPercent(downPayment/homePrice*100, 1)),
	}
}

// CalculateLoan computes a generic fixed-rate installment loan.
func CalculateLoan(amount, annualRatePct, years float64) []ResultRow {
	n := years * MonthsPerYear
	payment := MonthlyPayment(amount, annualRatePct, n)
	totalPaid := payment * n

	return []ResultRow{
		Total("Monthly Payment", FormatMoney(payment)),
		Row("Number of Payments", FormatDecimal(n, 0)),
		Row("Total Payment", FormatMoney(totalPaid)),
		Row("Total Interest", FormatMoney(totalPaid-amount)),
	}
}

// CalculateAutoLoan computes a vehicle loan with a term in months.
func CalculateAutoLoan(price, downPayment, annualRatePct, months float64) []ResultRow {
	principal := price - downPayment
	payment := MonthlyPayment(principal, annualRatePct, months)
	interest := payment*months - principal

	return []ResultRow{
		Row("Loan Amount", FormatMoney(principal)),
		Total("Monthly Payment", FormatMoney(payment)),
		Row("Total Interest", FormatMoney(interest)),
		Row("Total Cost", FormatMoney(price+interest)),
	}
}

// CalculateStudentLoan computes a standard repayment plan.
func CalculateStudentLoan(amount, annualRatePct, years float64) []ResultRow {
	n := years * MonthsPerYear
	payment := MonthlyPayment(amount, annualRatePct, n)
	totalPaid := payment * n

	return []ResultRow{
		Total("Monthly Payment", FormatMoney(payment)),
		Row("Total Interest", FormatMoney(totalPaid-amount)),
		Row("Total Repaid", FormatMoney(totalPaid)),
		Row("Repayment Period", formatMonthCount(n)),
	}
}

// CalculateAmortization computes the payment and a month-by-month
// breakdown of the first year, splitting each payment into interest on the
// remaining balance and principal.
func CalculateAmortization(amount, annualRatePct, years float64) []ResultRow {
	n := years * MonthsPerYear
	r := annualRatePct / 100 / MonthsPerYear
	payment := MonthlyPayment(amount, annualRatePct, n)
	totalPaid := payment * n

	rows := []ResultRow{
		Total("Monthly Payment", FormatMoney(payment)),
		Row("Total Payment", FormatMoney(totalPaid)),
		Row("Total Interest", FormatMoney(totalPaid-amount)),
	}

	preview := AmortizationPreviewMonths
	if n < float64(preview) {
		preview = int(math.Max(0, n))
	}

	balance := amount
	var yearPrincipal, yearInterest float64
	for month := 1; month <= preview; month++ {
		interest := balance * r
		principal := payment - interest
		balance = math.Max(0, balance-principal)
		yearPrincipal += principal
		yearInterest += interest
		rows = append(rows, Row(
			fmt.Sprintf("Month %d", month),
			fmt.Sprintf("Principal %s · Interest %s · Balance %s",
				FormatMoney(principal), FormatMoney(interest), FormatMoney(balance)),
		))
	}

	rows = append(rows,
		Row("First Year Principal", FormatMoney(yearPrincipal)),
		Row("First Year Interest", FormatMoney(yearInterest)),
	)
	return rows
}

// payoff is the outcome of a month-by-month payoff simulation.
type payoff struct {
	months        int
	totalInterest float64
	capped        bool
}

// simulatePayoff accrues monthly interest on the remaining balance and
// subtracts the fixed payment until the balance is gone or the 600-month
// bound is reached.
func simulatePayoff(balance, annualRatePct, payment float64) payoff {
	r := annualRatePct / 100 / MonthsPerYear
	var p payoff
	for balance > 0 && p.months < MaxPayoffMonths {
		interest := balance * r
		p.totalInterest += interest
		balance = balance + interest - payment
		p.months++
	}
	p.capped = balance > 0
	return p
}

// payoffPrecheck returns an error message when payment cannot retire the
// balance, i.e. it does not exceed the first month's interest.
func payoffPrecheck(balance, annualRatePct, payment float64) (string, bool) {
	firstInterest := balance * annualRatePct / 100 / MonthsPerYear
	if payment <= firstInterest {
		return fmt.Sprintf("Monthly payment must exceed the first month's interest of %s",
			FormatMoney(firstInterest)), false
	}
	return "", true
}

// CalculateDebtPayoff simulates paying off a debt with a fixed payment.
func CalculateDebtPayoff(balance, annualRatePct, payment float64) []ResultRow {
	if msg, ok := payoffPrecheck(balance, annualRatePct, payment); !ok {
		return ErrorRow(msg)
	}
	p := simulatePayoff(balance, annualRatePct, payment)

	rows := []ResultRow{
		Total("Time to Pay Off", FormatMonths(p.months)),
		Row("Number of Payments", FormatNumber(int64(p.months))),
		Row("Total Interest", FormatMoney(p.totalInterest)),
		Row("Total Paid", FormatMoney(balance+p.totalInterest)),
	}
	if p.capped {
		rows = append(rows, Row("Note", "Balance not repaid within 50 years"))
	}
	return rows
}

// CalculateCreditCardPayoff simulates paying off a card balance at a fixed
// APR and monthly payment.
func CalculateCreditCardPayoff(balance, apr, payment float64) []ResultRow {
	if msg, ok := payoffPrecheck(balance, apr, payment); !ok {
		return ErrorRow(msg)
	}
	p := simulatePayoff(balance, apr, payment)
	totalPaid := balance + p.totalInterest

	rows := []ResultRow{
		Total("Months to Payoff", FormatNumber(int64(p.months))),
		Row("Payoff Time", FormatMonths(p.months)),
		Row("Total Interest", FormatMoney(p.totalInterest)),
		Row("Total Paid", FormatMoney(totalPaid)),
		Row("Interest Share", FormatPercent(p.totalInterest/totalPaid*100, 1)),
	}
	if p.capped {
		rows = append(rows, Row("Note", "Balance not repaid within 50 years"))
	}
	return rows
}

// formatMonthCount renders a possibly fractional month count.
func formatMonthCount(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return FormatFloat(n, 0) + " mo"
	}
	return FormatMonths(int(math.Round(n)))
}
