package model

import "github.com/shopspring/decimal"

// AdviceTier classifies spending relative to income.
type AdviceTier string

const (
	// AdviceNoIncome means no income has been registered.
	AdviceNoIncome AdviceTier = "NO_INCOME"
	// AdviceOverspent means expenses exceed income.
	AdviceOverspent AdviceTier = "OVERSPENT"
	// AdviceHighSpend means expenses are above 80% and at most 100% of income.
	AdviceHighSpend AdviceTier = "HIGH_SPEND"
	// AdviceHealthy means expenses are between 50% and 80% of income, inclusive.
	AdviceHealthy AdviceTier = "HEALTHY"
	// AdviceExcellent means expenses are below 50% of income.
	AdviceExcellent AdviceTier = "EXCELLENT"
)

// CategoryShare is the aggregate of all expenses in one category.
type CategoryShare struct {
	Subtotal decimal.Decimal
	Percent  decimal.Decimal // share of total expenses, zero when there are none
	Category Category
	Count    int
}

// Summary is the aggregate view of the ledger at a point in time.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
	SavingsRate   decimal.Decimal // only meaningful when HasSavingsRate
	SpendRatio    decimal.Decimal // only meaningful when HasSavingsRate
	Advice        AdviceTier
	Breakdown     []CategoryShare
	IncomeCount   int
	ExpenseCount  int

	HasSavingsRate bool
}

// Empty reports whether the summary was built from an empty ledger.
func (s Summary) Empty() bool {
	return s.IncomeCount == 0 && s.ExpenseCount == 0
}
