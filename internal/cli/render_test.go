package cli

import (
	"testing"

	"github.com/sebastianlopezramirez/ledger/internal/model"
	"github.com/sebastianlopezramirez/ledger/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRenderSummary(t *testing.T) {
	income := []model.IncomeEntry{{Description: "salary", Amount: decimal.NewFromInt(1000)}}
	expenses := []model.ExpenseEntry{
		{Name: "groceries", Amount: decimal.NewFromInt(100), Category: model.CategoryFood},
		{Name: "bus", Amount: decimal.NewFromInt(50), Category: model.CategoryTransport},
		{Name: "bakery", Amount: decimal.NewFromInt(20), Category: model.CategoryFood},
	}

	out := RenderSummary(DefaultCurrencySymbol, report.Build(income, expenses))

	for _, want := range []string{
		"Total income:    $1,000.00",
		"Total expenses:  $170.00",
		"Balance:         $830.00",
		"Savings rate:    83.0%",
		"Expenses by Category",
		"Food           :    $120.00 (70.6%)",
		"Transport      :     $50.00 (29.4%)",
		"Excellent!",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderSummary_NoIncome(t *testing.T) {
	out := RenderSummary("$", report.Build(nil, []model.ExpenseEntry{
		{Name: "bus", Amount: decimal.NewFromInt(5), Category: model.CategoryTransport},
	}))

	assert.Contains(t, out, "Savings rate:    not calculable (no income)")
	assert.Contains(t, out, "$-5.00")
	assert.Contains(t, out, "No income registered yet")
}

func TestRenderSummary_OmitsBreakdownWithoutExpenses(t *testing.T) {
	out := RenderSummary("$", report.Build([]model.IncomeEntry{
		{Description: "salary", Amount: decimal.NewFromInt(10)},
	}, nil))

	assert.NotContains(t, out, "Expenses by Category")
	assert.Contains(t, out, "100.0%")
}

func TestRenderAdvice(t *testing.T) {
	tests := []struct {
		tier model.AdviceTier
		want string
	}{
		{tier: model.AdviceNoIncome, want: "No income registered yet"},
		{tier: model.AdviceOverspent, want: "spending more than you earn"},
		{tier: model.AdviceHighSpend, want: "more than recommended"},
		{tier: model.AdviceHealthy, want: "good shape"},
		{tier: model.AdviceExcellent, want: "saving more than 50%"},
		{tier: model.AdviceTier("BOGUS"), want: "Unknown advice tier"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			assert.Contains(t, RenderAdvice(tt.tier), tt.want)
		})
	}
}

func TestDescribeExpense(t *testing.T) {
	e := model.ExpenseEntry{Name: "rent", Amount: decimal.NewFromInt(1200), Category: model.CategoryUtilities}
	assert.Equal(t, "rent - $1,200.00 (Utilities)", DescribeExpense("$", e))
}
