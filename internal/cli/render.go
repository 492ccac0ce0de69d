package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sebastianlopezramirez/ledger/internal/model"
)

const ruleWidth = 40

var adviceLines = map[model.AdviceTier][]string{
	model.AdviceNoIncome: {
		WarningIcon + "  No income registered yet. Start there.",
	},
	model.AdviceOverspent: {
		AlertIcon + " ALERT! You are spending more than you earn.",
		"   Cut expenses urgently.",
	},
	model.AdviceHighSpend: {
		WarningIcon + "  Careful! You are spending more than recommended.",
		"   Try to reduce some expenses.",
	},
	model.AdviceHealthy: {
		ThumbsUpIcon + " Your finances are in good shape.",
		"   Keep this balance.",
	},
	model.AdviceExcellent: {
		StarIcon + " Excellent! You have very good financial habits.",
		"   You are saving more than 50% of your income.",
	},
}

// DescribeIncome renders an income entry as "salary - $1,500.00".
func DescribeIncome(symbol string, e model.IncomeEntry) string {
	return fmt.Sprintf("%s - %s", e.Description, FormatCurrency(symbol, e.Amount))
}

// DescribeExpense renders an expense entry as "groceries - $80.25 (Food)".
func DescribeExpense(symbol string, e model.ExpenseEntry) string {
	return fmt.Sprintf("%s - %s (%s)", e.Name, FormatCurrency(symbol, e.Amount), e.Category.Title())
}

// RenderAdvice returns the recommendation text for tier.
func RenderAdvice(tier model.AdviceTier) string {
	lines, ok := adviceLines[tier]
	if !ok {
		return fmt.Sprintf("Unknown advice tier %q", tier)
	}
	return strings.Join(lines, "\n")
}

// RenderBreakdown renders one line per category with subtotal and share of total expenses.
func RenderBreakdown(symbol string, shares []model.CategoryShare) string {
	lines := make([]string, 0, len(shares))
	for _, share := range shares {
		lines = append(lines, fmt.Sprintf("%s  %-15s: %10s (%s)",
			TagIcon,
			share.Category.Title(),
			FormatCurrency(symbol, share.Subtotal),
			FormatPercent(share.Percent)))
	}
	return strings.Join(lines, "\n")
}

// RenderSummary renders totals, savings rate, the category breakdown when
// there are expenses, and the recommendation for the summary's advice tier.
func RenderSummary(symbol string, s model.Summary) string {
	balance := FormatCurrency(symbol, s.Balance)
	if s.Balance.IsNegative() {
		balance = ErrorStyle.Render(balance)
	}

	savings := "not calculable (no income)"
	if s.HasSavingsRate {
		savings = FormatPercent(s.SavingsRate)
	}

	totals := strings.Join([]string{
		fmt.Sprintf("%s Total income:    %s", IncomeIcon, FormatCurrency(symbol, s.TotalIncome)),
		fmt.Sprintf("%s Total expenses:  %s", ExpenseIcon, FormatCurrency(symbol, s.TotalExpenses)),
		RenderRule(ruleWidth),
		fmt.Sprintf("%s Balance:         %s", BalanceIcon, balance),
		fmt.Sprintf("%s Savings rate:    %s", ChartIcon, savings),
	}, "\n")

	sections := []string{RenderBox("Monthly Financial Summary", totals)}
	if len(s.Breakdown) > 0 {
		sections = append(sections, RenderBox("Expenses by Category", RenderBreakdown(symbol, s.Breakdown)))
	}
	sections = append(sections, RenderBox("Recommendations", RenderAdvice(s.Advice)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
