package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LedgerPostingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stakeledger_ledger_postings_total",
			Help: "Ledger entries written, by entry kind",
		},
		[]string{"kind"},
	)

	BatchRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stakeledger_batch_runs_total",
			Help: "Batch job runs, by job and result",
		},
		[]string{"job", "result"},
	)

	BatchDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stakeledger_batch_duration_seconds",
			Help:    "Wall time of batch job runs",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"job"},
	)

	DecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stakeledger_decisions_total",
			Help: "Deposit and withdrawal decisions, by request type and status",
		},
		[]string{"request", "status"},
	)
)

// ObserveBatch records one finished run of job.
func ObserveBatch(job string, started time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	BatchRunsTotal.WithLabelValues(job, result).Inc()
	BatchDurationSeconds.WithLabelValues(job).Observe(time.Since(started).Seconds())
}

func Handler() http.Handler {
	return promhttp.Handler()
}
