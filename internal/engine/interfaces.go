package engine

import (
	"context"

	"github.com/sebastianlopezramirez/ledger/internal/model"
	"github.com/shopspring/decimal"
)

// Prompter defines the contract for user interaction during a ledger session.
// Input methods repeat until they hold a valid answer; their only errors are
// end of input, cancellation and write failures.
type Prompter interface {
	MenuChoice(ctx context.Context, prompt string, maxChoice int) (int, error)
	PositiveAmount(ctx context.Context, prompt string) (decimal.Decimal, error)
	RequiredText(ctx context.Context, prompt, emptyMessage string) (string, error)
	// OptionalText and OptionalAmount return nil when the user keeps the current value.
	OptionalText(ctx context.Context, prompt string) (*string, error)
	OptionalAmount(ctx context.Context, prompt string) (*decimal.Decimal, error)
	YesNo(ctx context.Context, prompt string) (bool, error)
	ConfirmIncomeDeletion(ctx context.Context, entry model.IncomeEntry) (bool, error)
	ConfirmExpenseDeletion(ctx context.Context, entry model.ExpenseEntry) (bool, error)

	ShowBanner()
	ShowFarewell()
	ShowHeader(title string)
	ShowMenu(title string, options []string)
	ShowCategories(categories []model.Category)
	ShowIncomeList(entries []model.IncomeEntry)
	ShowExpenseList(entries []model.ExpenseEntry)
	ShowCurrentIncome(entry model.IncomeEntry)
	ShowCurrentExpense(entry model.ExpenseEntry)
	ShowSavedIncome(entry model.IncomeEntry)
	ShowSavedExpense(entry model.ExpenseEntry)
	ShowSummary(summary model.Summary)
	ShowSuccess(message string)
	ShowInfo(message string)
	// ShowEmpty reports that there is nothing to list or summarize.
	ShowEmpty(message string)
	ShowCelebration(message string)
	ShowWarning(message string)
	ShowError(message string)

	StartBatch(total int, description string)
	AdvanceBatch()
	FinishBatch()
}
