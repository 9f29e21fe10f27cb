// Package metrics provides Prometheus metrics for gdsync.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Run metrics
	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gdsync_runs_total",
			Help: "Total number of finished transfer runs",
		},
		[]string{"direction", "status"},
	)

	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gdsync_run_duration_seconds",
			Help:    "Transfer run duration in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		},
		[]string{"direction"},
	)

	runsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gdsync_runs_active",
			Help: "Number of transfer runs in progress",
		},
	)

	runsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gdsync_runs_rejected_total",
			Help: "Total transfer requests rejected before starting",
		},
		[]string{"reason"},
	)

	// File metrics
	filesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gdsync_files_total",
			Help: "Total files handled by transfer runs",
		},
		[]string{"direction", "result"},
	)

	// Bridge metrics
	bridgeCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gdsync_bridge_call_duration_seconds",
			Help:    "adb invocation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	bridgeCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gdsync_bridge_calls_total",
			Help: "Total adb invocations",
		},
		[]string{"op", "status"},
	)

	// Device metrics
	deviceConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gdsync_device_connected",
			Help: "1 when at least one authorized device is connected",
		},
	)

	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gdsync_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gdsync_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordRunStarted marks a run as in progress.
func RecordRunStarted() {
	runsActive.Inc()
}

// RecordRunFinished records the terminal status and duration of a run that
// had been started.
func RecordRunFinished(direction, status string, duration time.Duration) {
	runsActive.Dec()
	runsTotal.WithLabelValues(direction, status).Inc()
	runDuration.WithLabelValues(direction).Observe(duration.Seconds())
}

// RecordRunRejected records a request turned away before a run started.
func RecordRunRejected(reason string) {
	runsRejectedTotal.WithLabelValues(reason).Inc()
}

// RecordFiles adds per-file results of a run.
func RecordFiles(direction string, succeeded, failed, skipped int) {
	filesTotal.WithLabelValues(direction, "succeeded").Add(float64(succeeded))
	filesTotal.WithLabelValues(direction, "failed").Add(float64(failed))
	filesTotal.WithLabelValues(direction, "skipped").Add(float64(skipped))
}

// ObserveBridgeCall records one adb invocation.
func ObserveBridgeCall(op string, duration time.Duration, err error) {
	bridgeCallDuration.WithLabelValues(op).Observe(duration.Seconds())
	status := "success"
	if err != nil {
		status = "error"
	}
	bridgeCallsTotal.WithLabelValues(op, status).Inc()
}

// SetDeviceConnected sets the device gauge.
func SetDeviceConnected(connected bool) {
	if connected {
		deviceConnected.Set(1)
		return
	}
	deviceConnected.Set(0)
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
