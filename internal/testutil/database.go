// Package testutil provides ledger fixtures for tests: in-memory SQLite
// stores with migrations applied and a fluent builder for seeding entries.
package testutil

import (
	"context"
	"testing"

	"github.com/sebastianlopezramirez/ledger/internal/service"
	"github.com/sebastianlopezramirez/ledger/internal/storage"
)

// TestDB represents a test database with the entries it was seeded with.
type TestDB struct {
	Storage *storage.SQLiteStorage
	Seed    Ledger
}

// SetupTestDB creates a new in-memory test database seeded with ledger.
// It automatically handles migrations and cleanup.
//
// Example:
//
//	db := testutil.SetupTestDB(t, testutil.NewLedgerBuilder().WithBasicLedger().Build())
func SetupTestDB(t *testing.T, ledger Ledger) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(storage.MemoryDSN)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	Seed(t, store, ledger)

	return &TestDB{
		Storage: store,
		Seed:    ledger,
	}
}

// SetupMemory returns a MemoryStorage seeded with ledger.
func SetupMemory(t *testing.T, ledger Ledger) *storage.MemoryStorage {
	t.Helper()

	store := storage.NewMemoryStorage()
	Seed(t, store, ledger)
	return store
}

// Seed appends every entry of ledger to store in order, failing the test on error.
func Seed(t *testing.T, store service.Storage, ledger Ledger) {
	t.Helper()
	ctx := context.Background()

	for _, in := range ledger.Income {
		if _, err := store.AddIncome(ctx, in.Description, in.Amount); err != nil {
			t.Fatalf("failed to seed income %q: %v", in.Description, err)
		}
	}
	for _, ex := range ledger.Expenses {
		if _, err := store.AddExpense(ctx, ex.Name, ex.Amount, ex.Category); err != nil {
			t.Fatalf("failed to seed expense %q: %v", ex.Name, err)
		}
	}
}
