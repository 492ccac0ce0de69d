// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/sebastianlopezramirez/ledger/internal/model"
	"github.com/shopspring/decimal"
)

// Storage defines the contract for the record store. Entries keep insertion
// order and are addressed by their current 1-based position; deleting an
// entry shifts every later entry down by one.
type Storage interface {
	// Income operations
	AddIncome(ctx context.Context, description string, amount decimal.Decimal) (model.IncomeEntry, error)
	ListIncome(ctx context.Context) ([]model.IncomeEntry, error)
	EditIncome(ctx context.Context, position int, patch model.IncomePatch) (model.IncomeEntry, error)
	DeleteIncome(ctx context.Context, position int) (model.IncomeEntry, error)

	// Expense operations
	AddExpense(ctx context.Context, name string, amount decimal.Decimal, category model.Category) (model.ExpenseEntry, error)
	ListExpenses(ctx context.Context) ([]model.ExpenseEntry, error)
	EditExpense(ctx context.Context, position int, patch model.ExpensePatch) (model.ExpenseEntry, error)
	DeleteExpense(ctx context.Context, position int) (model.ExpenseEntry, error)

	Close() error
}
