package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/sashablokhin/memoledger/internal/domain"
	"github.com/sashablokhin/memoledger/internal/infrastructure/metrics"
)

// LedgerUseCase handles ledger business logic: creating ledgers, posting
// entries, and taking/restoring snapshots.
type LedgerUseCase struct {
	ledgerRepo LedgerRepository
	snapshots  SnapshotStore
	idGen      IDGenerator
	metrics    *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase. Metrics may be nil.
func NewLedgerUseCase(ledgerRepo LedgerRepository, snapshots SnapshotStore, idGen IDGenerator, m *metrics.Metrics) *LedgerUseCase {
	return &LedgerUseCase{
		ledgerRepo: ledgerRepo,
		snapshots:  snapshots,
		idGen:      idGen,
		metrics:    m,
	}
}

// CreateLedger creates an empty ledger and returns its id.
func (uc *LedgerUseCase) CreateLedger(ctx context.Context) (string, error) {
	id := uc.idGen.Generate()

	if err := uc.ledgerRepo.Create(ctx, domain.NewLedger(id)); err != nil {
		return "", err
	}

	if uc.metrics != nil {
		uc.metrics.LedgersCreated.Inc()
	}

	return id, nil
}

// AddEntryInput represents input for posting an entry.
type AddEntryInput struct {
	LedgerID     string
	Counterparty string
	Amount       decimal.Decimal
}

// AddEntry posts an entry to a ledger and returns the assigned entry id.
// Amounts of any sign are accepted.
func (uc *LedgerUseCase) AddEntry(ctx context.Context, input AddEntryInput) (int64, error) {
	var entryID int64

	err := uc.ledgerRepo.Update(ctx, input.LedgerID, func(l *domain.Ledger) error {
		entryID = l.AddEntry(input.Counterparty, input.Amount)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesPosted.Inc()
	}

	return entryID, nil
}

// TakeSnapshot captures a ledger's state, stores it, and returns the
// snapshot handle.
func (uc *LedgerUseCase) TakeSnapshot(ctx context.Context, ledgerID string) (string, error) {
	var snapshot domain.Snapshot

	err := uc.ledgerRepo.View(ctx, ledgerID, func(l *domain.Ledger) error {
		snapshot = l.Snapshot()
		return nil
	})
	if err != nil {
		return "", err
	}

	id := uc.idGen.Generate()
	if err := uc.snapshots.Save(ctx, id, snapshot); err != nil {
		return "", err
	}

	if uc.metrics != nil {
		uc.metrics.SnapshotsTaken.Inc()
	}

	return id, nil
}

// RestoreSnapshot rolls a ledger back to a stored snapshot. The snapshot
// stays in the store and can be restored again.
func (uc *LedgerUseCase) RestoreSnapshot(ctx context.Context, ledgerID, snapshotID string) error {
	snapshot, err := uc.snapshots.Get(ctx, snapshotID)
	if err != nil {
		uc.countRestoreError(err)
		return err
	}

	err = uc.ledgerRepo.Update(ctx, ledgerID, func(l *domain.Ledger) error {
		return l.Restore(snapshot)
	})
	if err != nil {
		uc.countRestoreError(err)
		return err
	}

	if uc.metrics != nil {
		uc.metrics.SnapshotsRestored.Inc()
	}

	return nil
}

// ListEntries returns a ledger's entries sorted by ascending id.
func (uc *LedgerUseCase) ListEntries(ctx context.Context, ledgerID string) ([]domain.Entry, error) {
	var entries []domain.Entry

	err := uc.ledgerRepo.View(ctx, ledgerID, func(l *domain.Ledger) error {
		entries = l.Entries()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Statement renders a ledger's entries and total as printable lines.
func (uc *LedgerUseCase) Statement(ctx context.Context, ledgerID string) ([]string, error) {
	var lines []string

	err := uc.ledgerRepo.View(ctx, ledgerID, func(l *domain.Ledger) error {
		lines = l.Lines()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return lines, nil
}

// ListSnapshots returns the handles of stored snapshots for a ledger,
// oldest first.
func (uc *LedgerUseCase) ListSnapshots(ctx context.Context, ledgerID string) ([]string, error) {
	return uc.snapshots.ListByLedger(ctx, ledgerID)
}

// DeleteSnapshot removes a stored snapshot. Copies already handed out to
// callers are unaffected.
func (uc *LedgerUseCase) DeleteSnapshot(ctx context.Context, snapshotID string) error {
	return uc.snapshots.Delete(ctx, snapshotID)
}

func (uc *LedgerUseCase) countRestoreError(err error) {
	if uc.metrics == nil {
		return
	}

	reason := "internal"
	switch {
	case errors.Is(err, domain.ErrForeignSnapshot):
		reason = "foreign_snapshot"
	case errors.Is(err, domain.ErrSnapshotNotFound):
		reason = "snapshot_not_found"
	case errors.Is(err, domain.ErrLedgerNotFound):
		reason = "ledger_not_found"
	}

	uc.metrics.RestoreErrors.WithLabelValues(reason).Inc()
}
