package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sebastianlopezramirez/ledger/internal/common"
	"github.com/sebastianlopezramirez/ledger/internal/config"
	"github.com/sebastianlopezramirez/ledger/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCategories(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeCategories(&out, model.Categories()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2+len(model.Categories()))
	assert.Contains(t, lines[2], "1")
	assert.Contains(t, lines[2], "Food")
	assert.Contains(t, lines[7], "6")
	assert.Contains(t, lines[7], "utilities")
}

func TestOpenStorage(t *testing.T) {
	for _, backend := range []string{config.BackendMemory, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			store, err := openStorage(context.Background(), backend)
			require.NoError(t, err)
			defer func() { _ = store.Close() }()

			entries, err := store.ListIncome(context.Background())
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}

	_, err := openStorage(context.Background(), "postgres")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestRunLedger_ScriptedSession(t *testing.T) {
	store, err := openStorage(context.Background(), config.BackendSQLite)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	cfg := config.DefaultLedger()
	cfg.CurrencySymbol = "€"
	cfg.ConfirmToken = "DELETE"

	// Register one income entry, delete it with the custom token, then exit.
	input := strings.NewReader("1\n1\nsalary\n2500\n4\n2\n1\ndelete\n5\n5\n")
	var out bytes.Buffer

	require.NoError(t, runLedger(context.Background(), store, input, &out, cfg))

	assert.Contains(t, out.String(), "Income saved: salary - €2,500.00")
	assert.Contains(t, out.String(), "type 'DELETE' to confirm")
	assert.Contains(t, out.String(), "Income deleted successfully!")

	entries, err := store.ListIncome(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := versionCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "ledger dev\n", out.String())
}
