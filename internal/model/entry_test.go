package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIncomePatch_EmptyLeavesEntryUnchanged(t *testing.T) {
	entry := IncomeEntry{ID: "a", Description: "salary", Amount: decimal.NewFromInt(1500)}

	blank := ""
	zero := decimal.Zero
	patches := []IncomePatch{
		{},
		{Description: &blank, Amount: &zero},
	}

	for i, p := range patches {
		if !p.IsEmpty() {
			t.Errorf("patch %d: IsEmpty() = false, want true", i)
		}
		got := p.Apply(entry)
		if got.Description != entry.Description || !got.Amount.Equal(entry.Amount) || got.ID != entry.ID {
			t.Errorf("patch %d changed entry: %+v", i, got)
		}
	}
}

func TestIncomePatch_PartialEdit(t *testing.T) {
	entry := IncomeEntry{Description: "salary", Amount: decimal.NewFromInt(1500)}

	desc := "  bonus "
	got := IncomePatch{Description: &desc}.Apply(entry)
	if got.Description != "bonus" {
		t.Errorf("Description = %q, want bonus", got.Description)
	}
	if !got.Amount.Equal(entry.Amount) {
		t.Errorf("Amount changed to %s", got.Amount)
	}

	amount := decimal.RequireFromString("99.50")
	got = IncomePatch{Amount: &amount}.Apply(entry)
	if got.Description != "salary" {
		t.Errorf("Description changed to %q", got.Description)
	}
	if !got.Amount.Equal(amount) {
		t.Errorf("Amount = %s, want 99.50", got.Amount)
	}

	negative := decimal.NewFromInt(-5)
	got = IncomePatch{Amount: &negative}.Apply(entry)
	if !got.Amount.Equal(entry.Amount) {
		t.Errorf("negative amount applied: %s", got.Amount)
	}
}

func TestExpensePatch_Category(t *testing.T) {
	entry := ExpenseEntry{Name: "bus", Amount: decimal.NewFromInt(3), Category: CategoryTransport}

	health := CategoryHealth
	got := ExpensePatch{Category: &health}.Apply(entry)
	if got.Category != CategoryHealth {
		t.Errorf("Category = %v, want health", got.Category)
	}
	if got.Name != "bus" || !got.Amount.Equal(entry.Amount) {
		t.Errorf("unrelated fields changed: %+v", got)
	}

	invalid := Category(42)
	p := ExpensePatch{Category: &invalid}
	if !p.IsEmpty() {
		t.Error("patch with invalid category should be empty")
	}
	if got := p.Apply(entry); got.Category != CategoryTransport {
		t.Errorf("invalid category applied: %v", got.Category)
	}
}
