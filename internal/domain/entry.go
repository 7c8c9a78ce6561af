package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry represents a single ledger record. Entries are immutable once
// created: they are never updated in place and are only removed wholesale
// when a snapshot is restored.
type Entry struct {
	CreatedAt    time.Time
	ID           int64
	Counterparty string
	Amount       decimal.Decimal
}
