// Package metrics holds Prometheus collectors for the status API and the tracker.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "txprogress"

var (
	providerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "provider_client",
		Name:      "operations_total",
		Help:      "Count of ledger-data provider calls.",
	}, []string{"operation", "provider", "chain", "status"})
	providerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "provider_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger-data provider calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "provider", "chain", "status"})
)

// ProviderClient tracks metrics for calls to the ledger-data provider.
type ProviderClient struct {
	provider string
	chain    string
}

// NewProviderClient constructs a metrics collector for provider calls.
func NewProviderClient(provider, chain string) *ProviderClient {
	if provider == "" {
		provider = "unknown"
	}
	if chain == "" {
		chain = "unknown"
	}
	return &ProviderClient{provider: provider, chain: chain}
}

// Observe records a single provider call outcome and duration.
func (m ProviderClient) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	providerRequestsTotal.WithLabelValues(operation, m.provider, m.chain, status).Inc()
	providerRequestDuration.WithLabelValues(operation, m.provider, m.chain, status).Observe(time.Since(started).Seconds())
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
