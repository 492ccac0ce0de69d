package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// IncomeEntry is a single income record held by the ledger.
type IncomeEntry struct {
	Amount      decimal.Decimal `validate:"positive"`
	ID          string
	Description string `validate:"required"`
}

// ExpenseEntry is a single expense record held by the ledger.
type ExpenseEntry struct {
	Amount   decimal.Decimal `validate:"positive"`
	ID       string
	Name     string   `validate:"required"`
	Category Category `validate:"category"`
}

// IncomePatch describes a partial edit of an income entry.
// A nil field means "keep the current value".
type IncomePatch struct {
	Description *string
	Amount      *decimal.Decimal
}

// ExpensePatch describes a partial edit of an expense entry.
// A nil field means "keep the current value".
type ExpensePatch struct {
	Name     *string
	Amount   *decimal.Decimal
	Category *Category
}

// Apply returns the entry with the patch applied. Blank descriptions and
// non-positive amounts are ignored.
func (p IncomePatch) Apply(e IncomeEntry) IncomeEntry {
	if text, ok := replacementText(p.Description); ok {
		e.Description = text
	}
	if amount, ok := replacementAmount(p.Amount); ok {
		e.Amount = amount
	}
	return e
}

// IsEmpty reports whether the patch would change nothing.
func (p IncomePatch) IsEmpty() bool {
	_, text := replacementText(p.Description)
	_, amount := replacementAmount(p.Amount)
	return !text && !amount
}

// Apply returns the entry with the patch applied. Blank names, non-positive
// amounts and categories outside the registry are ignored.
func (p ExpensePatch) Apply(e ExpenseEntry) ExpenseEntry {
	if text, ok := replacementText(p.Name); ok {
		e.Name = text
	}
	if amount, ok := replacementAmount(p.Amount); ok {
		e.Amount = amount
	}
	if p.Category != nil && p.Category.Valid() {
		e.Category = *p.Category
	}
	return e
}

// IsEmpty reports whether the patch would change nothing.
func (p ExpensePatch) IsEmpty() bool {
	_, text := replacementText(p.Name)
	_, amount := replacementAmount(p.Amount)
	category := p.Category != nil && p.Category.Valid()
	return !text && !amount && !category
}

func replacementText(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	trimmed := strings.TrimSpace(*s)
	return trimmed, trimmed != ""
}

func replacementAmount(d *decimal.Decimal) (decimal.Decimal, bool) {
	if d == nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return *d, true
}
