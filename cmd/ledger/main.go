package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sashablokhin/memoledger/internal/adapter/repository/memory"
	"github.com/sashablokhin/memoledger/internal/infrastructure/config"
	"github.com/sashablokhin/memoledger/internal/infrastructure/logger"
	"github.com/sashablokhin/memoledger/internal/infrastructure/metrics"
	"github.com/sashablokhin/memoledger/internal/usecase"
)

var (
	logLevel  string
	logFormat string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "memoledger",
		Short: "In-memory ledger with snapshot and restore",
		Long:  `A command line driver for the memoledger library: an append-only ledger whose full state can be captured as a snapshot and rolled back later.`,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: json or console (overrides LOG_FORMAT)")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the snapshot/restore walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if logFormat != "" {
				cfg.LogFormat = logFormat
			}

			log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

			return runDemo(os.Stdout, log, cfg.SnapshotRetention)
		},
	}

	rootCmd.AddCommand(demoCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// runDemo drives a full snapshot/restore cycle against an in-process
// ledger: post two entries, snapshot, post two more, roll back, then post
// again to show the rewound entry counter handing out a reused id.
func runDemo(out io.Writer, log zerolog.Logger, snapshotRetention int) error {
	ctx := context.Background()

	ledgerRepo := memory.NewLedgerRepository()
	snapshots := memory.NewSnapshotStore(snapshotRetention)
	idGen := memory.NewULIDGenerator()
	m := metrics.New(prometheus.NewRegistry())

	uc := usecase.NewLedgerUseCase(ledgerRepo, snapshots, idGen, m)

	ledgerID, err := uc.CreateLedger(ctx)
	if err != nil {
		return err
	}
	log.Info().Str("ledger_id", ledgerID).Msg("created ledger")

	if _, err := post(ctx, uc, ledgerID, "Bob", "100.43"); err != nil {
		return err
	}
	if _, err := post(ctx, uc, ledgerID, "Joe", "200.20"); err != nil {
		return err
	}

	if err := printStatement(ctx, out, uc, ledgerID, "after first entries"); err != nil {
		return err
	}

	snapshotID, err := uc.TakeSnapshot(ctx, ledgerID)
	if err != nil {
		return err
	}
	log.Info().Str("snapshot_id", snapshotID).Msg("took snapshot")

	if _, err := post(ctx, uc, ledgerID, "Alice", "500"); err != nil {
		return err
	}
	if _, err := post(ctx, uc, ledgerID, "Tony", "20"); err != nil {
		return err
	}

	if err := printStatement(ctx, out, uc, ledgerID, "before restore"); err != nil {
		return err
	}

	if err := uc.RestoreSnapshot(ctx, ledgerID, snapshotID); err != nil {
		return err
	}
	log.Info().Str("snapshot_id", snapshotID).Msg("restored snapshot")

	if err := printStatement(ctx, out, uc, ledgerID, "after restore"); err != nil {
		return err
	}

	// The restore rewound the entry counter, so Carl reuses the id that
	// Alice held before her entry was discarded.
	carlID, err := post(ctx, uc, ledgerID, "Carl", "50")
	if err != nil {
		return err
	}
	log.Info().Int64("entry_id", carlID).Msg("posted entry with reused id")

	return printStatement(ctx, out, uc, ledgerID, "after posting over restored state")
}

func post(ctx context.Context, uc *usecase.LedgerUseCase, ledgerID, counterparty, amount string) (int64, error) {
	entryID, err := uc.AddEntry(ctx, usecase.AddEntryInput{
		LedgerID:     ledgerID,
		Counterparty: counterparty,
		Amount:       decimal.RequireFromString(amount),
	})
	if err != nil {
		return 0, fmt.Errorf("post entry for %s: %w", counterparty, err)
	}
	return entryID, nil
}

func printStatement(ctx context.Context, out io.Writer, uc *usecase.LedgerUseCase, ledgerID, title string) error {
	lines, err := uc.Statement(ctx, ledgerID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "--- %s ---\n", title)
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}

	return nil
}
