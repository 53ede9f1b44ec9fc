package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gin-gonic/gin"
)

const namespace = "rings_closed"

var (
	streaksComputed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "streaks",
		Name:      "computed_total",
		Help:      "Streaks produced by the streak builder, by dimension.",
	}, []string{"dimension"})

	streakComputeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "streaks",
		Name:      "compute_duration_seconds",
		Help:      "Time spent building the streaks of one user.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	})

	recordsSynced = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "activity",
		Name:      "records_synced_total",
		Help:      "Activity records upserted through the sync endpoint.",
	})

	workerJobs = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "worker",
		Name:      "jobs_total",
		Help:      "Snapshot recalculation jobs, by outcome.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(streaksComputed, streakComputeDuration, recordsSynced, workerJobs)
}

// ObserveStreaks records one streak computation.
func ObserveStreaks(dimension string, count int, took time.Duration) {
	streaksComputed.WithLabelValues(dimension).Add(float64(count))
	streakComputeDuration.Observe(took.Seconds())
}

func RecordsSynced(n int) {
	if n <= 0 {
		return
	}
	recordsSynced.Add(float64(n))
}

// WorkerJob counts a worker job; outcome is "processed", "failed" or "dropped".
func WorkerJob(outcome string) {
	workerJobs.WithLabelValues(outcome).Inc()
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
