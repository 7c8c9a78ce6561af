package domain

import "errors"

var (
	// Snapshot errors
	ErrForeignSnapshot  = errors.New("snapshot was taken from a different ledger")
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// Ledger errors
	ErrLedgerNotFound      = errors.New("ledger not found")
	ErrLedgerAlreadyExists = errors.New("ledger already exists")
)
