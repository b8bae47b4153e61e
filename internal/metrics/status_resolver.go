package metrics

import (
	"time"

	"github.com/goodnatureofminers/txprogress-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolverReportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "status_resolver",
		Name:      "reports_total",
		Help:      "Count of status reports by resulting transaction status.",
	}, []string{"chain", "tx_status"})
	resolverErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "status_resolver",
		Name:      "errors_total",
		Help:      "Count of resolve calls that produced no report.",
	}, []string{"chain"})
	resolverDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "status_resolver",
		Name:      "resolve_duration_seconds",
		Help:      "Duration of resolve calls including provider round trips.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "status"})
	resolverReceiptFallbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "status_resolver",
		Name:      "receipt_fallback_total",
		Help:      "Count of failed receipt lookups reported as not_found.",
	}, []string{"chain"})
)

// StatusResolver tracks metrics for the status resolver.
type StatusResolver struct {
	chain string
}

// NewStatusResolver constructs a StatusResolver metrics collector.
func NewStatusResolver(chain string) *StatusResolver {
	if chain == "" {
		chain = "unknown"
	}
	return &StatusResolver{chain: chain}
}

// ObserveResolve records the outcome of a resolve call.
func (m StatusResolver) ObserveResolve(status model.Status, err error, started time.Time) {
	resolverDuration.WithLabelValues(m.chain, statusLabel(err)).Observe(time.Since(started).Seconds())
	if err != nil {
		resolverErrorsTotal.WithLabelValues(m.chain).Inc()
		return
	}
	resolverReportsTotal.WithLabelValues(m.chain, string(status)).Inc()
}

// ObserveReceiptFallback records a receipt lookup failure that was downgraded to not_found.
func (m StatusResolver) ObserveReceiptFallback() {
	resolverReceiptFallbackTotal.WithLabelValues(m.chain).Inc()
}
