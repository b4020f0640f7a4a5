package educator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts service activity.
type Metrics struct {
	// Queries counts answered queries by outcome (resolved, ambiguous, no_match).
	Queries *prometheus.CounterVec

	// LogFailures counts interaction log operations that failed, by operation.
	LogFailures *prometheus.CounterVec

	// Views counts failure modes shown by name.
	Views *prometheus.CounterVec
}

// NewMetrics registers the service metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Queries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "masft",
			Subsystem: "educator",
			Name:      "queries_total",
			Help:      "Total queries answered, by outcome",
		}, []string{"outcome"}),
		LogFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "masft",
			Subsystem: "educator",
			Name:      "log_failures_total",
			Help:      "Total interaction log operations that failed",
		}, []string{"op"}),
		Views: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "masft",
			Subsystem: "educator",
			Name:      "views_total",
			Help:      "Total failure mode views",
		}, []string{"failure_mode"}),
	}
}
