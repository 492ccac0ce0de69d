package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sebastianlopezramirez/ledger/internal/cli"
	"github.com/sebastianlopezramirez/ledger/internal/common"
	"github.com/sebastianlopezramirez/ledger/internal/config"
	"github.com/sebastianlopezramirez/ledger/internal/engine"
	"github.com/sebastianlopezramirez/ledger/internal/service"
	"github.com/sebastianlopezramirez/ledger/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func runSession(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadLedgerConfig(viper.GetViper())
	if err != nil {
		return err
	}

	store, err := openStorage(cmd.Context(), cfg.Backend)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			common.LogError(closeErr, "Failed to close storage", nil)
		}
	}()

	interrupts := cli.NewInterruptHandler(cmd.OutOrStdout())
	ctx := interrupts.HandleInterrupts(cmd.Context())

	if err := runLedger(ctx, store, cmd.InOrStdin(), cmd.OutOrStdout(), cfg); err != nil {
		common.LogError(err, "Ledger session failed", common.Fields{"backend": cfg.Backend})
		return err
	}
	if interrupts.WasInterrupted() {
		common.LogInfo("Session ended by interrupt", nil)
	}
	return nil
}

func runLedger(ctx context.Context, store service.Storage, in io.Reader, out io.Writer, cfg config.Ledger) error {
	prompter := cli.NewCLIPrompterWithConfig(in, out, cli.Config{
		CurrencySymbol: cfg.CurrencySymbol,
		ConfirmToken:   cfg.ConfirmToken,
	})

	session := engine.NewWithConfig(store, prompter, engine.Config{MaxBatch: cfg.MaxBatch})
	return session.Run(ctx)
}

func openStorage(ctx context.Context, backend string) (service.Storage, error) {
	common.LogDebug("Opening record store", common.Fields{"backend": backend})

	switch backend {
	case config.BackendMemory:
		return storage.NewMemoryStorage(), nil
	case config.BackendSQLite:
		db, err := storage.NewSQLiteStorage(storage.MemoryDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", common.ErrInvalidConfig, backend)
	}
}

