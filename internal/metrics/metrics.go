package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ============================================
	// Snarkify client metrics
	// ============================================
	SnarkifyRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prover_snarkify_requests_total",
			Help: "Total number of requests sent to the Snarkify service",
		},
		[]string{"method", "outcome"},
	)

	SnarkifyRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prover_snarkify_request_duration_seconds",
			Help:    "Snarkify request duration in seconds (including retries)",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	SnarkifyRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prover_snarkify_retries_total",
			Help: "Total number of transient-failure retries against the Snarkify service",
		},
		[]string{"method"},
	)

	// ============================================
	// Facade metrics
	// ============================================
	FacadeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prover_facade_requests_total",
			Help: "Total number of requests handled by the HTTP facade",
		},
		[]string{"operation"},
	)
)
