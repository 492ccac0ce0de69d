package report

import (
	"testing"

	"github.com/sebastianlopezramirez/ledger/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func expense(name, amount string, c model.Category) model.ExpenseEntry {
	return model.ExpenseEntry{Name: name, Amount: d(amount), Category: c}
}

func TestTotal(t *testing.T) {
	assert.True(t, Total(nil).IsZero())
	assert.True(t, Total([]decimal.Decimal{d("100"), d("50.25"), d("0.75")}).Equal(d("151")))
}

func TestTotalIncomeAndExpenses(t *testing.T) {
	income := []model.IncomeEntry{
		{Description: "salary", Amount: d("1500.50")},
		{Description: "bonus", Amount: d("99.50")},
	}
	assert.True(t, TotalIncome(income).Equal(d("1600")))
	assert.True(t, TotalIncome(nil).IsZero())

	expenses := []model.ExpenseEntry{
		expense("rent", "700", model.CategoryUtilities),
		expense("bus", "2.35", model.CategoryTransport),
	}
	assert.True(t, TotalExpenses(expenses).Equal(d("702.35")))
}

func TestSavingsRate(t *testing.T) {
	rate, ok := SavingsRate(d("1000"), d("600"))
	require.True(t, ok)
	assert.True(t, rate.Equal(d("40")), "rate = %s", rate)

	rate, ok = SavingsRate(d("1000"), d("1100"))
	require.True(t, ok)
	assert.True(t, rate.Equal(d("-10")), "rate = %s", rate)

	_, ok = SavingsRate(decimal.Zero, decimal.Zero)
	assert.False(t, ok)

	_, ok = SavingsRate(decimal.Zero, d("50"))
	assert.False(t, ok)
}

func TestAdvice(t *testing.T) {
	tests := []struct {
		name     string
		income   string
		expenses string
		want     model.AdviceTier
	}{
		{name: "no income", income: "0", expenses: "0", want: model.AdviceNoIncome},
		{name: "no income with expenses", income: "0", expenses: "10", want: model.AdviceNoIncome},
		{name: "overspent", income: "1000", expenses: "1100", want: model.AdviceOverspent},
		{name: "ratio exactly 100", income: "1000", expenses: "1000", want: model.AdviceHighSpend},
		{name: "just above 80", income: "1000", expenses: "800.01", want: model.AdviceHighSpend},
		{name: "ratio exactly 80", income: "1000", expenses: "800", want: model.AdviceHealthy},
		{name: "ratio exactly 50", income: "1000", expenses: "500", want: model.AdviceHealthy},
		{name: "just below 50", income: "1000", expenses: "499.99", want: model.AdviceExcellent},
		{name: "excellent", income: "1000", expenses: "400", want: model.AdviceExcellent},
		{name: "nothing spent", income: "1000", expenses: "0", want: model.AdviceExcellent},
		{name: "repeating ratio", income: "3", expenses: "2.4", want: model.AdviceHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Advice(d(tt.income), d(tt.expenses)))
		})
	}
}

func TestBreakdownByCategory(t *testing.T) {
	expenses := []model.ExpenseEntry{
		expense("groceries", "100", model.CategoryFood),
		expense("bus", "50", model.CategoryTransport),
		expense("bakery", "20", model.CategoryFood),
	}

	shares := BreakdownByCategory(expenses)
	require.Len(t, shares, 2)

	assert.Equal(t, model.CategoryFood, shares[0].Category)
	assert.True(t, shares[0].Subtotal.Equal(d("120")))
	assert.Equal(t, 2, shares[0].Count)
	assert.Equal(t, "70.6", shares[0].Percent.StringFixed(1))

	assert.Equal(t, model.CategoryTransport, shares[1].Category)
	assert.True(t, shares[1].Subtotal.Equal(d("50")))
	assert.Equal(t, 1, shares[1].Count)
	assert.Equal(t, "29.4", shares[1].Percent.StringFixed(1))
}

func TestBreakdownByCategory_FirstSeenOrder(t *testing.T) {
	expenses := []model.ExpenseEntry{
		expense("water", "30", model.CategoryUtilities),
		expense("course", "10", model.CategoryEducation),
		expense("lunch", "10", model.CategoryFood),
		expense("power", "50", model.CategoryUtilities),
	}

	shares := BreakdownByCategory(expenses)
	require.Len(t, shares, 3)
	assert.Equal(t, model.CategoryUtilities, shares[0].Category)
	assert.Equal(t, model.CategoryEducation, shares[1].Category)
	assert.Equal(t, model.CategoryFood, shares[2].Category)
	assert.True(t, shares[0].Percent.Equal(d("80")))
}

func TestBreakdownByCategory_Empty(t *testing.T) {
	shares := BreakdownByCategory(nil)
	assert.NotNil(t, shares)
	assert.Empty(t, shares)
}

func TestBuild(t *testing.T) {
	income := []model.IncomeEntry{{Description: "salary", Amount: d("1000")}}
	expenses := []model.ExpenseEntry{
		expense("rent", "450", model.CategoryUtilities),
		expense("cinema", "150", model.CategoryEntertainment),
	}

	s := Build(income, expenses)

	assert.False(t, s.Empty())
	assert.True(t, s.TotalIncome.Equal(d("1000")))
	assert.True(t, s.TotalExpenses.Equal(d("600")))
	assert.True(t, s.Balance.Equal(d("400")))
	require.True(t, s.HasSavingsRate)
	assert.True(t, s.SavingsRate.Equal(d("40")))
	assert.True(t, s.SpendRatio.Equal(d("60")))
	assert.Equal(t, model.AdviceHealthy, s.Advice)
	assert.Len(t, s.Breakdown, 2)
	assert.Equal(t, 1, s.IncomeCount)
	assert.Equal(t, 2, s.ExpenseCount)
}

func TestBuild_EmptyLedger(t *testing.T) {
	s := Build(nil, nil)

	assert.True(t, s.Empty())
	assert.False(t, s.HasSavingsRate)
	assert.Equal(t, model.AdviceNoIncome, s.Advice)
	assert.True(t, s.Balance.IsZero())
	assert.Empty(t, s.Breakdown)
}

func TestBuild_ExpensesWithoutIncome(t *testing.T) {
	s := Build(nil, []model.ExpenseEntry{expense("bus", "5", model.CategoryTransport)})

	assert.False(t, s.Empty())
	assert.False(t, s.HasSavingsRate)
	assert.True(t, s.Balance.Equal(d("-5")))
	assert.Equal(t, model.AdviceNoIncome, s.Advice)
}
