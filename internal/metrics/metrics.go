package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Decision-pipeline counters. Scoring degradation is the operational signal
// that the oracle is down and payments are riding the fail-open fallback.

var (
	ScoringRequests = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "upiguard",
		Subsystem: "scoring",
		Name:      "requests_total",
		Help:      "Total scoring requests",
	})

	ScoringDegraded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "upiguard",
		Subsystem: "scoring",
		Name:      "degraded_total",
		Help:      "Scoring calls resolved to the fail-open fallback probability",
	}, []string{"cause"})

	ScoringLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "upiguard",
		Subsystem: "scoring",
		Name:      "duration_seconds",
		Help:      "Scoring oracle round-trip duration",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2},
	})

	DecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "upiguard",
		Subsystem: "policy",
		Name:      "decisions_total",
		Help:      "Decision verdicts by outcome",
	}, []string{"verdict"})

	LedgerWriteErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "upiguard",
		Subsystem: "ledger",
		Name:      "write_errors_total",
		Help:      "Ledger commit failures surfaced to callers",
	})
)
