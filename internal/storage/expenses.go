package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/sebastianlopezramirez/ledger/internal/model"
	"github.com/sebastianlopezramirez/ledger/internal/service"
	"github.com/shopspring/decimal"
)

// AddExpense appends a new expense entry.
func (s *SQLiteStorage) AddExpense(ctx context.Context, name string, amount decimal.Decimal, category model.Category) (model.ExpenseEntry, error) {
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

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (id, name, amount, category) VALUES (?, ?, ?, ?)`,
		entry.ID, entry.Name, entry.Amount, entry.Category.String())
	if err != nil {
		return model.ExpenseEntry{}, fmt.Errorf("failed to insert expense: %w", err)
	}

	slog.Debug("added expense", "entry_id", entry.ID, "category", category.String())
	return entry, nil
}

// ListExpenses returns the expense entries in insertion order.
func (s *SQLiteStorage) ListExpenses(ctx context.Context) ([]model.ExpenseEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, amount, category FROM expenses ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	entries := []model.ExpenseEntry{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}
	return entries, nil
}

// EditExpense applies patch to the entry at the given 1-based position.
func (s *SQLiteStorage) EditExpense(ctx context.Context, position int, patch model.ExpensePatch) (model.ExpenseEntry, error) {
	if err := validateContext(ctx); err != nil {
		return model.ExpenseEntry{}, err
	}

	var updated model.ExpenseEntry
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := expenseAt(ctx, tx, position)
		if err != nil {
			return err
		}

		updated = patch.Apply(current)
		_, err = tx.ExecContext(ctx,
			`UPDATE expenses SET name = ?, amount = ?, category = ? WHERE id = ?`,
			updated.Name, updated.Amount, updated.Category.String(), updated.ID)
		if err != nil {
			return fmt.Errorf("failed to update expense: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.ExpenseEntry{}, err
	}

	slog.Debug("edited expense", "entry_id", updated.ID, "position", position)
	return updated, nil
}

// DeleteExpense removes the entry at the given 1-based position.
func (s *SQLiteStorage) DeleteExpense(ctx context.Context, position int) (model.ExpenseEntry, error) {
	if err := validateContext(ctx); err != nil {
		return model.ExpenseEntry{}, err
	}

	var removed model.ExpenseEntry
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := expenseAt(ctx, tx, position)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, current.ID); err != nil {
			return fmt.Errorf("failed to delete expense: %w", err)
		}
		removed = current
		return nil
	})
	if err != nil {
		return model.ExpenseEntry{}, err
	}

	slog.Debug("deleted expense", "entry_id", removed.ID, "position", position)
	return removed, nil
}

func expenseAt(ctx context.Context, tx *sql.Tx, position int) (model.ExpenseEntry, error) {
	size, err := countRows(ctx, tx, "expenses")
	if err != nil {
		return model.ExpenseEntry{}, err
	}
	if err := validatePosition("expense", position, size); err != nil {
		return model.ExpenseEntry{}, err
	}

	row := tx.QueryRowContext(ctx,
		`SELECT id, name, amount, category FROM expenses ORDER BY seq LIMIT 1 OFFSET ?`,
		position-1)
	e, err := scanExpense(row)
	if err != nil {
		return model.ExpenseEntry{}, fmt.Errorf("expense at position %d: %w", position, err)
	}
	return e, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (model.ExpenseEntry, error) {
	var (
		e        model.ExpenseEntry
		category string
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Amount, &category); err != nil {
		return model.ExpenseEntry{}, fmt.Errorf("failed to scan expense: %w", err)
	}

	c, err := model.ParseCategory(category)
	if err != nil {
		return model.ExpenseEntry{}, fmt.Errorf("expense %s: %w", e.ID, err)
	}
	e.Category = c
	return e, nil
}

var _ service.Storage = (*SQLiteStorage)(nil)
