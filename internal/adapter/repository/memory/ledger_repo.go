package memory

import (
	"context"
	"sync"

	"github.com/sashablokhin/memoledger/internal/domain"
	"github.com/sashablokhin/memoledger/internal/usecase"
)

// LedgerRepository is an in-memory implementation of usecase.LedgerRepository.
// Update closures run under the write lock and View closures under the read
// lock, so every mutation of a stored ledger happens inside one exclusion
// scope and snapshot capture always observes a consistent state.
type LedgerRepository struct {
	mu      sync.RWMutex
	ledgers map[string]*domain.Ledger
}

// NewLedgerRepository creates an empty repository.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		ledgers: make(map[string]*domain.Ledger),
	}
}

// Create stores a new ledger under its id.
func (r *LedgerRepository) Create(_ context.Context, ledger *domain.Ledger) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ledgers[ledger.ID()]; exists {
		return domain.ErrLedgerAlreadyExists
	}

	r.ledgers[ledger.ID()] = ledger
	return nil
}

// View runs fn with shared access to the ledger with the given id.
func (r *LedgerRepository) View(_ context.Context, id string, fn func(*domain.Ledger) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ledger, ok := r.ledgers[id]
	if !ok {
		return domain.ErrLedgerNotFound
	}

	return fn(ledger)
}

// Update runs fn with exclusive access to the ledger with the given id.
func (r *LedgerRepository) Update(_ context.Context, id string, fn func(*domain.Ledger) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ledger, ok := r.ledgers[id]
	if !ok {
		return domain.ErrLedgerNotFound
	}

	return fn(ledger)
}

var _ usecase.LedgerRepository = (*LedgerRepository)(nil)
