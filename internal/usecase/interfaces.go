package usecase

import (
	"context"

	"github.com/sashablokhin/memoledger/internal/domain"
)

// LedgerRepository defines access to stored ledgers.
//
// View runs fn with shared access to the ledger; Update runs fn with
// exclusive access. All mutations go through Update, which serializes them
// under the store's single exclusion scope.
type LedgerRepository interface {
	Create(ctx context.Context, ledger *domain.Ledger) error
	View(ctx context.Context, id string, fn func(*domain.Ledger) error) error
	Update(ctx context.Context, id string, fn func(*domain.Ledger) error) error
}

// SnapshotStore keeps issued snapshots by handle. The store holds plain
// snapshot values; it has no lifecycle coupling to the ledgers that issued
// them.
type SnapshotStore interface {
	Save(ctx context.Context, id string, snapshot domain.Snapshot) error
	Get(ctx context.Context, id string) (domain.Snapshot, error)
	ListByLedger(ctx context.Context, ledgerID string) ([]string, error)
	Delete(ctx context.Context, id string) error
}

// IDGenerator generates unique IDs for ledger and snapshot handles.
type IDGenerator interface {
	Generate() string
}
