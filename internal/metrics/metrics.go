// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "alle_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path", "status"},
	)

	TaskOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alle_task_operations_total",
			Help: "Task mutations by operation",
		},
		[]string{"operation"},
	)

	TrashPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "alle_trash_purged_total",
			Help: "Trash items removed after the retention window",
		},
	)

	UploadedBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "alle_uploaded_bytes_total",
			Help: "Bytes stored as task attachments",
		},
	)

	WebsocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "alle_websocket_clients",
			Help: "Connected subscription clients",
		},
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncrementTaskOperation(operation string) {
	TaskOperations.WithLabelValues(operation).Inc()
}

func AddTrashPurged(n int) {
	TrashPurged.Add(float64(n))
}

func AddUploadedBytes(n int64) {
	UploadedBytes.Add(float64(n))
}
