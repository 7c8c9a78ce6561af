package memory

import (
	"context"
	"sync"

	"github.com/sashablokhin/memoledger/internal/domain"
	"github.com/sashablokhin/memoledger/internal/usecase"
)

// SnapshotStore is an in-memory implementation of usecase.SnapshotStore.
// Snapshots are plain values, so storing and returning them never exposes
// ledger internals.
//
// A retention cap bounds how many snapshots the store keeps per ledger;
// the oldest stored snapshot is evicted when the cap is exceeded. Zero
// means unlimited. Eviction only affects the store, never snapshot values
// callers already hold.
type SnapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string]domain.Snapshot
	byLedger  map[string][]string
	retention int
}

// NewSnapshotStore creates an empty store with the given per-ledger
// retention cap (0 = unlimited).
func NewSnapshotStore(retention int) *SnapshotStore {
	return &SnapshotStore{
		snapshots: make(map[string]domain.Snapshot),
		byLedger:  make(map[string][]string),
		retention: retention,
	}
}

// Save stores a snapshot under the given handle.
func (s *SnapshotStore) Save(_ context.Context, id string, snapshot domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledgerID := snapshot.LedgerID()

	s.snapshots[id] = snapshot
	s.byLedger[ledgerID] = append(s.byLedger[ledgerID], id)

	if s.retention > 0 {
		for len(s.byLedger[ledgerID]) > s.retention {
			oldest := s.byLedger[ledgerID][0]
			s.byLedger[ledgerID] = s.byLedger[ledgerID][1:]
			delete(s.snapshots, oldest)
		}
	}

	return nil
}

// Get returns the snapshot stored under the given handle.
func (s *SnapshotStore) Get(_ context.Context, id string) (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot, ok := s.snapshots[id]
	if !ok {
		return domain.Snapshot{}, domain.ErrSnapshotNotFound
	}

	return snapshot, nil
}

// ListByLedger returns the handles of stored snapshots for a ledger in
// insertion order, oldest first.
func (s *SnapshotStore) ListByLedger(_ context.Context, ledgerID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, len(s.byLedger[ledgerID]))
	copy(ids, s.byLedger[ledgerID])

	return ids, nil
}

// Delete removes a stored snapshot.
func (s *SnapshotStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, ok := s.snapshots[id]
	if !ok {
		return domain.ErrSnapshotNotFound
	}

	delete(s.snapshots, id)

	ledgerID := snapshot.LedgerID()
	ids := s.byLedger[ledgerID]
	for i, candidate := range ids {
		if candidate == id {
			s.byLedger[ledgerID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}

	return nil
}

var _ usecase.SnapshotStore = (*SnapshotStore)(nil)
