package storage

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/sebastianlopezramirez/ledger/internal/model"
	"github.com/sebastianlopezramirez/ledger/internal/service"
	"github.com/shopspring/decimal"
)

// MemoryStorage keeps both entry collections in ordered slices for the
// lifetime of the process.
type MemoryStorage struct {
	income   []model.IncomeEntry
	expenses []model.ExpenseEntry
}

// NewMemoryStorage creates an empty in-memory ledger.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// AddIncome appends a new income entry.
func (s *MemoryStorage) AddIncome(ctx context.Context, description string, amount decimal.Decimal) (model.IncomeEntry, error) {
	if err := validateContext(ctx); err != nil {
		return model.IncomeEntry{}, err
	}

	entry := model.IncomeEntry{
		ID:          uuid.NewString(),
		Description: strings.TrimSpace(description),
		Amount:      amount,
	}
	if err := validateIncome(entry); err != nil {
		return model.IncomeEntry{}, err
	}

	s.income = append(s.income, entry)
	slog.Debug("added income", "entry_id", entry.ID, "position", len(s.income))
	return entry, nil
}

// ListIncome returns the income entries in insertion order.
func (s *MemoryStorage) ListIncome(ctx context.Context) ([]model.IncomeEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	out := make([]model.IncomeEntry, len(s.income))
	copy(out, s.income)
	return out, nil
}

// EditIncome applies patch to the entry at the given 1-based position.
func (s *MemoryStorage) EditIncome(ctx context.Context, position int, patch model.IncomePatch) (model.IncomeEntry, error) {
	if err := validateContext(ctx); err != nil {
		return model.IncomeEntry{}, err
	}
	if err := validatePosition("income", position, len(s.income)); err != nil {
		return model.IncomeEntry{}, err
	}

	updated := patch.Apply(s.income[position-1])
	s.income[position-1] = updated
	slog.Debug("edited income", "entry_id", updated.ID, "position", position)
	return updated, nil
}

// DeleteIncome removes the entry at the given 1-based position.
func (s *MemoryStorage) DeleteIncome(ctx context.Context, position int) (model.IncomeEntry, error) {
	if err := validateContext(ctx); err != nil {
		return model.IncomeEntry{}, err
	}
	if err := validatePosition("income", position, len(s.income)); err != nil {
		return model.IncomeEntry{}, err
	}

	removed := s.income[position-1]
	s.income = append(s.income[:position-1], s.income[position:]...)
	slog.Debug("deleted income", "entry_id", removed.ID, "position", position)
	return removed, nil
}

// AddExpense appends a new expense entry.
func (s *MemoryStorage) AddExpense(ctx context.Context, name string, amount decimal.Decimal, category model.Category) (model.ExpenseEntry, error) {
	if err := validateContext(ctx); err != nil {
		return model.ExpenseEntry{}, err
	}

	entry := model.ExpenseEntry{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(name),
		Amount:   amount,
		Category: category,
	}
	if err := validateExpense(entry); err != nil {
		return model.ExpenseEntry{}, err
	}

	s.expenses = append(s.expenses, entry)
	slog.Debug("added expense", "entry_id", entry.ID, "position", len(s.expenses), "category", category.String())
	return entry, nil
}

// ListExpenses returns the expense entries in insertion order.
func (s *MemoryStorage) ListExpenses(ctx context.Context) ([]model.ExpenseEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	out := make([]model.ExpenseEntry, len(s.expenses))
	copy(out, s.expenses)
	return out, nil
}

// EditExpense applies patch to the entry at the given 1-based position.
func (s *MemoryStorage) EditExpense(ctx context.Context, position int, patch model.ExpensePatch) (model.ExpenseEntry, error) {
	if err := validateContext(ctx); err != nil {
		return model.ExpenseEntry{}, err
	}
	if err := validatePosition("expense", position, len(s.expenses)); err != nil {
		return model.ExpenseEntry{}, err
	}

	updated := patch.Apply(s.expenses[position-1])
	s.expenses[position-1] = updated
	slog.Debug("edited expense", "entry_id", updated.ID, "position", position)
	return updated, nil
}

// DeleteExpense removes the entry at the given 1-based position.
func (s *MemoryStorage) DeleteExpense(ctx context.Context, position int) (model.ExpenseEntry, error) {
	if err := validateContext(ctx); err != nil {
		return model.ExpenseEntry{}, err
	}
	if err := validatePosition("expense", position, len(s.expenses)); err != nil {
		return model.ExpenseEntry{}, err
	}

	removed := s.expenses[position-1]
	s.expenses = append(s.expenses[:position-1], s.expenses[position:]...)
	slog.Debug("deleted expense", "entry_id", removed.ID, "position", position)
	return removed, nil
}

// Close is a no-op; the data lives only as long as the process.
func (s *MemoryStorage) Close() error {
	return nil
}

var _ service.Storage = (*MemoryStorage)(nil)
