package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Ledger is an append-only record book with a maintained running total.
// Entry ids start at 1 and grow by one per append. The whole state can be
// captured as a Snapshot and later replaced wholesale by restoring one.
//
// A Ledger is not safe for concurrent use; callers serialize mutations
// (see the memory repository, which runs them under a single lock).
type Ledger struct {
	id      string
	entries map[int64]Entry
	nextID  int64
	total   decimal.Decimal
}

// NewLedger creates an empty ledger identified by id. The id is embedded in
// every snapshot the ledger issues, so restores can reject snapshots taken
// from a different ledger.
func NewLedger(id string) *Ledger {
	return &Ledger{
		id:      id,
		entries: make(map[int64]Entry),
		nextID:  1,
		total:   decimal.Zero,
	}
}

// ID returns the ledger's identity.
func (l *Ledger) ID() string {
	return l.id
}

// AddEntry appends a record and returns the assigned entry id. Amounts of
// any sign are accepted; a negative amount simply reduces the total.
func (l *Ledger) AddEntry(counterparty string, amount decimal.Decimal) int64 {
	id := l.nextID
	l.nextID++

	l.entries[id] = Entry{
		CreatedAt:    time.Now().UTC(),
		ID:           id,
		Counterparty: counterparty,
		Amount:       amount,
	}
	l.total = l.total.Add(amount)

	return id
}

// Entry returns the entry with the given id, if present.
func (l *Ledger) Entry(id int64) (Entry, bool) {
	e, ok := l.entries[id]
	return e, ok
}

// Entries returns all entries sorted by ascending id.
func (l *Ledger) Entries() []Entry {
	entries := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// Total returns the running total over all present entries.
func (l *Ledger) Total() decimal.Decimal {
	return l.total
}

// NextID returns the id the next AddEntry call will assign.
func (l *Ledger) NextID() int64 {
	return l.nextID
}

// Len returns the number of entries currently present.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Snapshot captures the full ledger state as an opaque point-in-time copy.
// The copy is deep: mutating the ledger afterwards never alters an issued
// snapshot, and the ledger keeps no reference to snapshots it has issued.
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{
		ledgerID: l.id,
		entries:  copyEntries(l.entries),
		total:    l.total,
		nextID:   l.nextID,
		takenAt:  time.Now().UTC(),
	}
}

// Restore replaces the ledger state wholesale with the snapshot's captured
// state. The entry counter is rewound to the captured value, so an entry
// added after a restore can reuse the id of an entry the restore discarded.
// That rewind is deliberate, observable behavior.
//
// Restoring a snapshot issued by a different ledger fails with
// ErrForeignSnapshot and leaves the ledger untouched.
func (l *Ledger) Restore(s Snapshot) error {
	if s.ledgerID != l.id {
		return ErrForeignSnapshot
	}

	l.entries = copyEntries(s.entries)
	l.total = s.total
	l.nextID = s.nextID

	return nil
}

// Lines renders a statement: one line per entry in ascending id order,
// followed by a total line. Diagnostic helper, not part of the core
// contract.
func (l *Ledger) Lines() []string {
	entries := l.Entries()

	lines := make([]string, 0, len(entries)+1)
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%d: %s %s", e.ID, e.Counterparty, e.Amount))
	}
	lines = append(lines, fmt.Sprintf("total: %s", l.total))

	return lines
}

func copyEntries(src map[int64]Entry) map[int64]Entry {
	dst := make(map[int64]Entry, len(src))
	for id, e := range src {
		dst[id] = e
	}
	return dst
}
