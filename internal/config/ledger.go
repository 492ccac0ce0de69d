package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sebastianlopezramirez/ledger/internal/common"
	"github.com/spf13/viper"
)

// Storage backends selectable with storage.backend.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Configuration keys.
const (
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"
	KeyBackend        = "storage.backend"
	KeyMaxBatch       = "ledger.max_batch"
	KeyCurrencySymbol = "ledger.currency_symbol"
	KeyConfirmToken   = "ledger.confirm_token"
)

// maxBatchLimit caps ledger.max_batch so a batch stays a menu-sized choice.
const maxBatchLimit = 100

// Ledger holds the settings of an interactive ledger session.
type Ledger struct {
	Backend        string
	CurrencySymbol string
	ConfirmToken   string
	MaxBatch       int
}

// DefaultLedger returns the default ledger settings.
func DefaultLedger() Ledger {
	return Ledger{
		Backend:        BackendMemory,
		CurrencySymbol: "$",
		ConfirmToken:   "SI",
		MaxBatch:       10,
	}
}

// SetDefaults registers the default value of every ledger key with v.
func SetDefaults(v *viper.Viper) {
	d := DefaultLedger()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyBackend, d.Backend)
	v.SetDefault(KeyMaxBatch, d.MaxBatch)
	v.SetDefault(KeyCurrencySymbol, d.CurrencySymbol)
	v.SetDefault(KeyConfirmToken, d.ConfirmToken)
}

// LoadLedgerConfig reads ledger settings from v, falling back to defaults
// for unset keys. Invalid values wrap common.ErrInvalidConfig.
func LoadLedgerConfig(v *viper.Viper) (Ledger, error) {
	if v == nil {
		v = viper.GetViper()
	}
	cfg := DefaultLedger()

	if s := strings.ToLower(strings.TrimSpace(v.GetString(KeyBackend))); s != "" {
		cfg.Backend = s
	}
	if s := v.GetString(KeyCurrencySymbol); s != "" {
		cfg.CurrencySymbol = s
	}
	if s := strings.TrimSpace(v.GetString(KeyConfirmToken)); s != "" {
		cfg.ConfirmToken = strings.ToUpper(s)
	}
	if v.IsSet(KeyMaxBatch) {
		cfg.MaxBatch = v.GetInt(KeyMaxBatch)
	}

	if err := cfg.Validate(); err != nil {
		return Ledger{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (l Ledger) Validate() error {
	var errs []error

	switch l.Backend {
	case BackendMemory, BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("%s: unknown backend %q (want %s or %s)",
			KeyBackend, l.Backend, BackendMemory, BackendSQLite))
	}
	if l.MaxBatch < 1 || l.MaxBatch > maxBatchLimit {
		errs = append(errs, fmt.Errorf("%s: %d not in 1..%d", KeyMaxBatch, l.MaxBatch, maxBatchLimit))
	}
	if l.CurrencySymbol == "" {
		errs = append(errs, fmt.Errorf("%s: must not be empty", KeyCurrencySymbol))
	}
	if l.ConfirmToken == "" {
		errs = append(errs, fmt.Errorf("%s: must not be empty", KeyConfirmToken))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", common.ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
