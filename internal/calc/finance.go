package calc

import (
	"fmt"
	"math"

	"github.com/rshade/calckit/internal/units"
)

// futureValue grows principal and a monthly contribution for months at the
// monthly rate r. A zero rate degrades to simple accumulation.
func futureValue(principal, contribution, r, months float64) float64 {
	if r == 0 {
		return principal + contribution*months
	}
	growth := math.Pow(1+r, months)
	return principal*growth + contribution*(growth-1)/r
}

// CalculateCompoundInterest computes monthly compounding with a periodic
// contribution.
func CalculateCompoundInterest(principal, annualRatePct, years, monthlyContribution float64) []ResultRow {
	months := years * MonthsPerYear
	r := annualRatePct / 100 / MonthsPerYear
	fv := futureValue(principal, monthlyContribution, r, months)
	contributed := principal + monthlyContribution*months

	return []ResultRow{
		Total("Future Value", FormatMoney(fv)),
		Row("Total Contributions", FormatMoney(contributed)),
		Row("Total Interest", FormatMoney(fv-contributed)),
		Row("Compounding Periods", FormatDecimal(months, 0)),
	}
}

// CalculateSimpleInterest computes I = P × r × t.
func CalculateSimpleInterest(principal, annualRatePct, years float64) []ResultRow {
	interest := principal * annualRatePct / 100 * years
	return []ResultRow{
		Row("Interest", FormatMoney(interest)),
		Total("Total Amount", FormatMoney(principal+interest)),
		Row("Monthly Interest", FormatMoney(interest/(years*MonthsPerYear))),
	}
}

// CalculateSavings computes the balance of a fixed monthly deposit.
func CalculateSavings(monthlyDeposit, annualRatePct, years float64) []ResultRow {
	months := years * MonthsPerYear
	fv := futureValue(0, monthlyDeposit, annualRatePct/100/MonthsPerYear, months)
	deposits := monthlyDeposit * months

	return []ResultRow{
		Total("Final Balance", FormatMoney(fv)),
		Row("Total Deposits", FormatMoney(deposits)),
		Row("Interest Earned", FormatMoney(fv-deposits)),
	}
}

// CalculateRetirement projects savings to retirement and the income the 4%
// rule supports.
func CalculateRetirement(currentSavings, monthlyContribution, years, annualReturnPct float64) []ResultRow {
	months := years * MonthsPerYear
	fv := futureValue(currentSavings, monthlyContribution, annualReturnPct/100/MonthsPerYear, months)
	contributed := currentSavings + monthlyContribution*months
	annualIncome := fv * SafeWithdrawalRate

	return []ResultRow{
		Total("Balance at Retirement", FormatMoney(fv)),
		Row("Total Contributions", FormatMoney(contributed)),
		Row("Investment Growth", FormatMoney(fv-contributed)),
		Row("Safe Annual Withdrawal", FormatMoney(annualIncome)),
		Row("Monthly Income", FormatMoney(annualIncome/MonthsPerYear)),
	}
}

// CalculateSalary converts an hourly wage into pay per period.
func CalculateSalary(hourlyRate, hoursPerWeek float64) []ResultRow {
	weekly := hourlyRate * hoursPerWeek
	annual := weekly * WeeksPerYear
	const workDays = 5

	return []ResultRow{
		Total("Annual Salary", FormatMoney(annual)),
		Row("Monthly", FormatMoney(annual/MonthsPerYear)),
		Row("Biweekly", FormatMoney(annual/DefaultPayPeriods)),
		Row("Weekly", FormatMoney(weekly)),
		Row("Daily", FormatMoney(weekly/workDays)),
	}
}

// CalculateSalesTax adds sales tax to a price.
func CalculateSalesTax(price, ratePct float64) []ResultRow {
	tax := price * ratePct / 100
	return []ResultRow{
		Row("Sales Tax", FormatMoney(tax)),
		Total("Total Price", FormatMoney(price+tax)),
	}
}

// CalculateVAT adds value-added tax to a net amount.
func CalculateVAT(net, ratePct float64) []ResultRow {
	vat := net * ratePct / 100
	return []ResultRow{
		Row("Net Amount", FormatMoney(net)),
		Row("VAT", FormatMoney(vat)),
		Total("Gross Amount", FormatMoney(net+vat)),
	}
}

// CalculateDiscount applies a percentage discount.
func CalculateDiscount(price, discountPct float64) []ResultRow {
	savings := price * discountPct / 100
	return []ResultRow{
		Row("You Save", FormatMoney(savings)),
		Total("Final Price", FormatMoney(price-savings)),
	}
}

// CalculateTip splits a bill plus tip between people.
func CalculateTip(bill, tipPct, people float64) []ResultRow {
	tip := bill * tipPct / 100
	total := bill + tip
	return []ResultRow{
		Row("Tip Amount", FormatMoney(tip)),
		Row("Total Bill", FormatMoney(total)),
		Row("Tip Per Person", FormatMoney(tip/people)),
		Total("Per Person", FormatMoney(total/people)),
	}
}

// CalculateROI computes total and annualized return on investment.
func CalculateROI(initial, final, years float64) []ResultRow {
	gain := final - initial
	annualized := (math.Pow(final/initial, 1/years) - 1) * 100
	return []ResultRow{
		Row("Net Gain", FormatMoney(gain)),
		Total("ROI", FormatPercent(gain/initial*100, 2)),
		Row("Annualized ROI", FormatPercent(annualized, 2)),
	}
}

// CalculateInflation projects the future cost of amount at a constant rate.
func CalculateInflation(amount, annualRatePct, years float64) []ResultRow {
	growth := math.Pow(1+annualRatePct/100, years)
	return []ResultRow{
		Total("Future Cost", FormatMoney(amount*growth)),
		Row("Purchasing Power", FormatMoney(amount/growth)),
		Row("Cumulative Inflation", FormatPercent((growth-1)*100, 2)),
	}
}

// CalculateProfitMargin derives profit, margin and markup.
func CalculateProfitMargin(cost, revenue float64) []ResultRow {
	profit := revenue - cost
	return []ResultRow{
		Row("Gross Profit", FormatMoney(profit)),
		Total("Profit Margin", FormatPercent(profit/revenue*100, 2)),
		Row("Markup", FormatPercent(profit/cost*100, 2)),
	}
}

// CalculateBreakEven computes the units needed to cover fixed costs.
func CalculateBreakEven(fixedCosts, pricePerUnit, variableCostPerUnit float64) []ResultRow {
	contribution := pricePerUnit - variableCostPerUnit
	if contribution <= 0 {
		return ErrorRow("Price per unit must exceed variable cost per unit")
	}
	unitsNeeded := math.Ceil(fixedCosts / contribution)
	return []ResultRow{
		Total("Break-Even Units", FormatDecimal(unitsNeeded, 0)),
		Row("Break-Even Revenue", FormatMoney(unitsNeeded*pricePerUnit)),
		Row("Contribution Margin", FormatMoney(contribution)),
		Row("Contribution Margin Ratio", FormatPercent(contribution/pricePerUnit*100, 2)),
	}
}

// CalculateCommission computes a flat-rate sales commission.
func CalculateCommission(sales, ratePct float64) []ResultRow {
	commission := sales * ratePct / 100
	return []ResultRow{
		Total("Commission", FormatMoney(commission)),
		Row("Sales After Commission", FormatMoney(sales-commission)),
	}
}

// CurrencyRows renders a conversion at an already-resolved rate.
func CurrencyRows(amount float64, from, to string, rate float64) []ResultRow {
	return []ResultRow{
		Total("Converted Amount", fmt.Sprintf("%s %s", FormatFloat(amount*rate, 2), to)),
		Row("Exchange Rate", fmt.Sprintf("1 %s = %s %s", from, FormatDecimal(rate, 4), to)),
		Row("Inverse Rate", fmt.Sprintf("1 %s = %s %s", to, FormatDecimal(1/rate, 4), from)),
	}
}

// CalculateCurrency converts amount between two codes of the rate table.
func CalculateCurrency(amount float64, from, to string, rates units.Rates) ([]ResultRow, error) {
	rate, err := rates.Rate(from, to)
	if err != nil {
		return nil, err
	}
	return CurrencyRows(amount, from, to, rate), nil
}
