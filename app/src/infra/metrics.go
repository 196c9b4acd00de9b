package infra

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	})
	HTTPRequestErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "http_request_errors_total",
		Help: "Total number of HTTP responses with status >= 500",
	})
	RequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "carbon_request_duration_seconds",
		Help:    "Duration of request processing in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	// Ingest metrics
	IngestStoredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "carbon_ingest_stored_total",
		Help: "Measurements accepted and durably persisted",
	})
	IngestPartialTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "carbon_ingest_partial_total",
		Help: "Measurements accepted into the cache whose durable insert failed",
	})
	IngestRejectedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "carbon_ingest_rejected_total",
		Help: "Payloads rejected by schema validation",
	})

	// Read-side metrics
	ReadingsServedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "carbon_readings_served_total",
		Help: "Stored readings fetched for the enriched readings view",
	})

	registerOnce      sync.Once
	metricsServerOnce sync.Once
)

func init() {
	InitMetrics()
}

// InitMetrics registers all Prometheus collectors used by the application.
func InitMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestErrorsTotal,
			RequestDurationSeconds,
			IngestStoredTotal,
			IngestPartialTotal,
			IngestRejectedTotal,
			ReadingsServedTotal,
		)
	})
}

// Handler returns an HTTP handler exposing the registered metrics.
func Handler() http.Handler {
	InitMetrics()
	return promhttp.Handler()
}

// StartMetricsServer exposes Prometheus metrics on the given port. A blank
// port disables the listener.
func StartMetricsServer(logger *Logger, port string) {
	if port == "" {
		return
	}
	InitMetrics()
	metricsServerOnce.Do(func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())

		go func() {
			if err := http.ListenAndServe(":"+port, mux); err != nil {
				logger.Printf(context.Background(), "metrics server error: %v", err)
			}
		}()
	})
}

// HTTPMiddleware instruments handlers with request count, error count and
// latency metrics. pathResolver maps a request to its route pattern.
func HTTPMiddleware(pathResolver func(*http.Request) string) func(http.Handler) http.Handler {
	InitMetrics()
	if pathResolver == nil {
		pathResolver = func(r *http.Request) string {
			if r == nil {
				return "unknown"
			}
			return r.URL.Path
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			HTTPRequestsTotal.Inc()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			RequestDurationSeconds.WithLabelValues(pathResolver(r)).Observe(time.Since(start).Seconds())
			if recorder.status >= http.StatusInternalServerError {
				HTTPRequestErrorsTotal.Inc()
			}
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
