package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for ledger operations.
type Metrics struct {
	LedgersCreated    prometheus.Counter
	EntriesPosted     prometheus.Counter
	SnapshotsTaken    prometheus.Counter
	SnapshotsRestored prometheus.Counter
	RestoreErrors     *prometheus.CounterVec
}

// New creates all metrics and registers them with reg. Tests pass a fresh
// prometheus.NewRegistry to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		LedgersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "memoledger_ledgers_created_total",
			Help: "Total number of ledgers created",
		}),
		EntriesPosted: factory.NewCounter(prometheus.CounterOpts{
			Name: "memoledger_entries_posted_total",
			Help: "Total number of entries posted",
		}),
		SnapshotsTaken: factory.NewCounter(prometheus.CounterOpts{
			Name: "memoledger_snapshots_taken_total",
			Help: "Total number of snapshots taken",
		}),
		SnapshotsRestored: factory.NewCounter(prometheus.CounterOpts{
			Name: "memoledger_snapshots_restored_total",
			Help: "Total number of snapshots restored",
		}),
		RestoreErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memoledger_restore_errors_total",
				Help: "Total number of failed restores by reason",
			},
			[]string{"reason"},
		),
	}
}
