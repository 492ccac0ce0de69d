package storage

import (
	"context"
	"testing"

	"github.com/sebastianlopezramirez/ledger/internal/common"
	"github.com/sebastianlopezramirez/ledger/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExpense_ReportsEveryField(t *testing.T) {
	err := validateExpense(model.ExpenseEntry{Name: " ", Amount: decimal.Zero})
	require.Error(t, err)

	assert.ErrorIs(t, err, common.ErrInvalidEntry)
	assert.Equal(t,
		"Amount must be greater than zero; Name is a required field; Category must be one of the fixed categories",
		common.UserMessage(err))
}

func TestValidateIncome_Valid(t *testing.T) {
	err := validateIncome(model.IncomeEntry{Description: "salary", Amount: decimal.RequireFromString("0.01")})
	assert.NoError(t, err)
}

func TestValidateIncome_ExactPositivity(t *testing.T) {
	tests := []struct {
		amount  string
		wantErr bool
	}{
		{amount: "1e-400", wantErr: false},
		{amount: "10000000000000000000000", wantErr: false},
		{amount: "-1e-400", wantErr: true},
		{amount: "0.000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := validateIncome(model.IncomeEntry{Description: "salary", Amount: decimal.RequireFromString(tt.amount)})
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidEntry)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidatePosition(t *testing.T) {
	assert.NoError(t, validatePosition("income", 1, 1))
	assert.NoError(t, validatePosition("income", 3, 3))

	err := validatePosition("expense", 1, 0)
	assert.ErrorIs(t, err, common.ErrOutOfRange)
	assert.EqualError(t, err, "expense position 1 not in 1..0")
}

func TestValidateContext(t *testing.T) {
	assert.NoError(t, validateContext(context.Background()))
	//nolint:staticcheck // nil context is the case under test
	assert.ErrorIs(t, validateContext(nil), ErrNilContext)
}
