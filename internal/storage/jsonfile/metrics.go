package jsonfile

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// storageOps counts file loads and stores by collection and outcome.
	storageOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orderlunch_storage_operations_total",
			Help: "Total number of collection file operations.",
		},
		[]string{"collection", "op", "result"},
	)

	// storageLat records how long a whole-file load or store takes.
	storageLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "orderlunch_storage_operation_duration_seconds",
			Help:    "Duration of collection file operations in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"collection", "op"},
	)
)

func init() {
	prometheus.MustRegister(storageOps, storageLat)
}

func observe(collection, op string, start time.Time, errp *error) {
	result := "ok"
	if errp != nil && *errp != nil {
		result = "error"
	}
	storageOps.WithLabelValues(collection, op, result).Inc()
	storageLat.WithLabelValues(collection, op).Observe(time.Since(start).Seconds())
}
