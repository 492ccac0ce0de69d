package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/sebastianlopezramirez/ledger/internal/model"
	"github.com/shopspring/decimal"
)

// AddIncome appends a new income entry.
func (s *SQLiteStorage) AddIncome(ctx context.Context, description string, amount decimal.Decimal) (model.IncomeEntry, error) {
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

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO income (id, description, amount) VALUES (?, ?, ?)`,
		entry.ID, entry.Description, entry.Amount)
	if err != nil {
		return model.IncomeEntry{}, fmt.Errorf("failed to insert income: %w", err)
	}

	slog.Debug("added income", "entry_id", entry.ID)
	return entry, nil
}

// ListIncome returns the income entries in insertion order.
func (s *SQLiteStorage) ListIncome(ctx context.Context) ([]model.IncomeEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, description, amount FROM income ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query income: %w", err)
	}
	defer rows.Close()

	entries := []model.IncomeEntry{}
	for rows.Next() {
		var e model.IncomeEntry
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan income: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating income: %w", err)
	}
	return entries, nil
}

// EditIncome applies patch to the entry at the given 1-based position.
func (s *SQLiteStorage) EditIncome(ctx context.Context, position int, patch model.IncomePatch) (model.IncomeEntry, error) {
	if err := validateContext(ctx); err != nil {
		return model.IncomeEntry{}, err
	}

	var updated model.IncomeEntry
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := incomeAt(ctx, tx, position)
		if err != nil {
			return err
		}

		updated = patch.Apply(current)
		_, err = tx.ExecContext(ctx,
			`UPDATE income SET description = ?, amount = ? WHERE id = ?`,
			updated.Description, updated.Amount, updated.ID)
		if err != nil {
			return fmt.Errorf("failed to update income: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.IncomeEntry{}, err
	}

	slog.Debug("edited income", "entry_id", updated.ID, "position", position)
	return updated, nil
}

// DeleteIncome removes the entry at the given 1-based position.
func (s *SQLiteStorage) DeleteIncome(ctx context.Context, position int) (model.IncomeEntry, error) {
	if err := validateContext(ctx); err != nil {
		return model.IncomeEntry{}, err
	}

	var removed model.IncomeEntry
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := incomeAt(ctx, tx, position)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM income WHERE id = ?`, current.ID); err != nil {
			return fmt.Errorf("failed to delete income: %w", err)
		}
		removed = current
		return nil
	})
	if err != nil {
		return model.IncomeEntry{}, err
	}

	slog.Debug("deleted income", "entry_id", removed.ID, "position", position)
	return removed, nil
}

func incomeAt(ctx context.Context, tx *sql.Tx, position int) (model.IncomeEntry, error) {
	size, err := countRows(ctx, tx, "income")
	if err != nil {
		return model.IncomeEntry{}, err
	}
	if err := validatePosition("income", position, size); err != nil {
		return model.IncomeEntry{}, err
	}

	var e model.IncomeEntry
	err = tx.QueryRowContext(ctx,
		`SELECT id, description, amount FROM income ORDER BY seq LIMIT 1 OFFSET ?`,
		position-1,
	).Scan(&e.ID, &e.Description, &e.Amount)
	if err != nil {
		return model.IncomeEntry{}, fmt.Errorf("failed to query income at position %d: %w", position, err)
	}
	return e, nil
}
