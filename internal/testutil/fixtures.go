package testutil

import (
	"github.com/sebastianlopezramirez/ledger/internal/model"
	"github.com/shopspring/decimal"
)

// Income is a seed income entry.
type Income struct {
	Amount      decimal.Decimal
	Description string
}

// Expense is a seed expense entry.
type Expense struct {
	Amount   decimal.Decimal
	Name     string
	Category model.Category
}

// Ledger is a set of entries to seed, in insertion order.
type Ledger struct {
	Income   []Income
	Expenses []Expense
}

// LedgerBuilder provides a fluent interface for constructing seed ledgers.
type LedgerBuilder struct {
	ledger Ledger
}

// NewLedgerBuilder creates an empty builder.
func NewLedgerBuilder() *LedgerBuilder {
	return &LedgerBuilder{}
}

// WithIncome adds an income entry. amount is decimal text and panics if malformed.
func (b *LedgerBuilder) WithIncome(description, amount string) *LedgerBuilder {
	b.ledger.Income = append(b.ledger.Income, Income{
		Description: description,
		Amount:      decimal.RequireFromString(amount),
	})
	return b
}

// WithExpense adds an expense entry. amount is decimal text and panics if malformed.
func (b *LedgerBuilder) WithExpense(name, amount string, category model.Category) *LedgerBuilder {
	b.ledger.Expenses = append(b.ledger.Expenses, Expense{
		Name:     name,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
	})
	return b
}

// WithBasicLedger adds two income entries totalling 1200 and two expenses
// totalling 150 in food and transport.
func (b *LedgerBuilder) WithBasicLedger() *LedgerBuilder {
	return b.
		WithIncome("salary", "1000").
		WithIncome("sale", "200").
		WithExpense("groceries", "100", model.CategoryFood).
		WithExpense("bus", "50", model.CategoryTransport)
}

// Build returns the seed ledger.
func (b *LedgerBuilder) Build() Ledger {
	out := Ledger{
		Income:   append([]Income(nil), b.ledger.Income...),
		Expenses: append([]Expense(nil), b.ledger.Expenses...),
	}
	return out
}
