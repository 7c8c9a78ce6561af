package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := New(registry)

	if m.LedgersCreated == nil || m.EntriesPosted == nil || m.RestoreErrors == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.EntriesPosted.Inc()
	m.RestoreErrors.WithLabelValues("foreign_snapshot").Inc()

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}

	if got := testutil.ToFloat64(m.EntriesPosted); got != 1 {
		t.Fatalf("expected 1 entry posted, got %v", got)
	}
}

func TestNewSeparateRegistries(t *testing.T) {
	a := New(prometheus.NewRegistry())
	b := New(prometheus.NewRegistry())

	a.SnapshotsTaken.Inc()

	if got := testutil.ToFloat64(b.SnapshotsTaken); got != 0 {
		t.Fatalf("expected independent registries, got %v", got)
	}
}
