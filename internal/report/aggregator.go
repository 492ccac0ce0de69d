// Package report computes totals, savings rate, category breakdown and
// advice from the ledger's current entries.
package report

import (
	"github.com/sebastianlopezramirez/ledger/internal/model"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Spend-ratio thresholds, in percent of income.
var (
	overspentAbove = decimal.NewFromInt(100)
	highSpendAbove = decimal.NewFromInt(80)
	excellentBelow = decimal.NewFromInt(50)
)

// Total sums amounts. The total of nothing is zero.
func Total(amounts []decimal.Decimal) decimal.Decimal {
	return decimal.Sum(decimal.Zero, amounts...)
}

// TotalIncome sums the amounts of income entries.
func TotalIncome(entries []model.IncomeEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

// TotalExpenses sums the amounts of expense entries.
func TotalExpenses(entries []model.ExpenseEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

// SavingsRate returns the percentage of income left after expenses.
// ok is false when income is zero and the rate is not defined.
func SavingsRate(income, expenses decimal.Decimal) (rate decimal.Decimal, ok bool) {
	if income.IsZero() {
		return decimal.Zero, false
	}
	return income.Sub(expenses).Div(income).Mul(hundred), true
}

// SpendRatio returns expenses as a percentage of income.
// ok is false when income is zero.
func SpendRatio(income, expenses decimal.Decimal) (ratio decimal.Decimal, ok bool) {
	if income.IsZero() {
		return decimal.Zero, false
	}
	return expenses.Div(income).Mul(hundred), true
}

// BreakdownByCategory groups expenses by category in first-seen order.
func BreakdownByCategory(expenses []model.ExpenseEntry) []model.CategoryShare {
	index := make(map[model.Category]int)
	shares := make([]model.CategoryShare, 0)

	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(shares)
			index[e.Category] = i
			shares = append(shares, model.CategoryShare{Category: e.Category, Subtotal: decimal.Zero})
		}
		shares[i].Subtotal = shares[i].Subtotal.Add(e.Amount)
		shares[i].Count++
	}

	total := TotalExpenses(expenses)
	for i := range shares {
		shares[i].Percent = decimal.Zero
		if total.IsPositive() {
			shares[i].Percent = shares[i].Subtotal.Div(total).Mul(hundred)
		}
	}

	return shares
}

// Advice classifies spending relative to income. Thresholds compare the
// exact ratio: 100 is HIGH_SPEND, 80 and 50 are HEALTHY.
func Advice(income, expenses decimal.Decimal) model.AdviceTier {
	if income.IsZero() {
		return model.AdviceNoIncome
	}

	// expenses/income*100 > t  <=>  expenses*100 > income*t, for income > 0.
	scaled := expenses.Mul(hundred)
	switch {
	case scaled.GreaterThan(income.Mul(overspentAbove)):
		return model.AdviceOverspent
	case scaled.GreaterThan(income.Mul(highSpendAbove)):
		return model.AdviceHighSpend
	case scaled.LessThan(income.Mul(excellentBelow)):
		return model.AdviceExcellent
	default:
		return model.AdviceHealthy
	}
}

// Build computes the full summary for the given entries.
func Build(income []model.IncomeEntry, expenses []model.ExpenseEntry) model.Summary {
	totalIncome := TotalIncome(income)
	totalExpenses := TotalExpenses(expenses)

	summary := model.Summary{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		Balance:       totalIncome.Sub(totalExpenses),
		Advice:        Advice(totalIncome, totalExpenses),
		Breakdown:     BreakdownByCategory(expenses),
		IncomeCount:   len(income),
		ExpenseCount:  len(expenses),
	}

	summary.SavingsRate, summary.HasSavingsRate = SavingsRate(totalIncome, totalExpenses)
	summary.SpendRatio, _ = SpendRatio(totalIncome, totalExpenses)

	return summary
}
