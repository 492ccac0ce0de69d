package common

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	base := errors.New("amount: must be greater than 0")
	err := NewUserError("Amount must be greater than zero", base)

	assert.ErrorIs(t, err, base)
	assert.Equal(t, "Amount must be greater than zero: amount: must be greater than 0", err.Error())
	assert.Equal(t, "Amount must be greater than zero", UserMessage(err))
	assert.Equal(t, "plain", UserMessage(errors.New("plain")))

	wrapped := fmt.Errorf("saving: %w", err)
	assert.Equal(t, "Amount must be greater than zero", UserMessage(wrapped))
}

func TestPositionError(t *testing.T) {
	err := fmt.Errorf("edit: %w", &PositionError{Collection: "income", Position: 4, Size: 3})

	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Contains(t, err.Error(), "income position 4 not in 1..3")

	var posErr *PositionError
	require.ErrorAs(t, err, &posErr)
	assert.Equal(t, 4, posErr.Position)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	require.NoError(t, SetupLogger(slog.LevelDebug, "json", &buf))

	LogDebug("entry added", Fields{"position": 2})
	assert.Contains(t, buf.String(), `"msg":"entry added"`)
	assert.Contains(t, buf.String(), `"position":2`)

	assert.ErrorIs(t, SetupLogger(slog.LevelInfo, "xml", &buf), ErrInvalidConfig)
}
