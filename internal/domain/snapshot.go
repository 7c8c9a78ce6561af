package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is an opaque, immutable copy of a Ledger's full state at one
// instant. It is produced by Ledger.Snapshot and consumed by Ledger.Restore
// on the same ledger; holders can inspect summary fields but never reach
// the underlying entry map.
type Snapshot struct {
	ledgerID string
	entries  map[int64]Entry
	total    decimal.Decimal
	nextID   int64
	takenAt  time.Time
}

// LedgerID returns the identity of the ledger that issued the snapshot.
func (s Snapshot) LedgerID() string {
	return s.ledgerID
}

// Total returns the running total captured at snapshot time.
func (s Snapshot) Total() decimal.Decimal {
	return s.total
}

// NextID returns the entry counter captured at snapshot time.
func (s Snapshot) NextID() int64 {
	return s.nextID
}

// Len returns the number of entries captured.
func (s Snapshot) Len() int {
	return len(s.entries)
}

// TakenAt returns when the snapshot was captured.
func (s Snapshot) TakenAt() time.Time {
	return s.takenAt
}
