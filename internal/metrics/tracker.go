package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	trackerPollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "polls_total",
		Help:      "Count of status polls issued by the tracker.",
	}, []string{"status"})
	trackerPollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "poll_duration_seconds",
		Help:      "Duration of status polls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	trackerMergesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tracker",
		Name:      "merges_total",
		Help:      "Count of received reports by merge decision.",
	}, []string{"decision"})
)

// Tracker tracks metrics for the poll reconciler.
type Tracker struct{}

// NewTracker constructs a Tracker metrics collector.
func NewTracker() *Tracker {
	return &Tracker{}
}

// ObservePoll records one poll round trip.
func (Tracker) ObservePoll(err error, started time.Time) {
	status := statusLabel(err)
	trackerPollsTotal.WithLabelValues(status).Inc()
	trackerPollDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveMerge records whether a received report replaced the current one.
func (Tracker) ObserveMerge(adopted bool) {
	decision := "discarded"
	if adopted {
		decision = "adopted"
	}
	trackerMergesTotal.WithLabelValues(decision).Inc()
}
