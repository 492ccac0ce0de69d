package testutil

import (
	"context"
	"testing"

	"github.com/sebastianlopezramirez/ledger/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestDB_SeedsInOrder(t *testing.T) {
	db := SetupTestDB(t, NewLedgerBuilder().WithBasicLedger().Build())
	ctx := context.Background()

	income, err := db.Storage.ListIncome(ctx)
	require.NoError(t, err)
	require.Len(t, income, 2)
	assert.Equal(t, "salary", income[0].Description)
	assert.Equal(t, "sale", income[1].Description)

	expenses, err := db.Storage.ListExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, model.CategoryTransport, expenses[1].Category)
}

func TestSetupMemory_Empty(t *testing.T) {
	store := SetupMemory(t, Ledger{})

	income, err := store.ListIncome(context.Background())
	require.NoError(t, err)
	assert.Empty(t, income)
}

func TestLedgerBuilder_BuildCopies(t *testing.T) {
	b := NewLedgerBuilder().WithIncome("salary", "10")
	first := b.Build()
	b.WithIncome("bonus", "5")

	assert.Len(t, first.Income, 1)
	assert.Len(t, b.Build().Income, 2)
}
