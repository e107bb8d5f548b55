package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerMetrics bundles the HTTP server metrics and the place-pipeline
// metrics on one registry. It satisfies the pipeline observer port.
type ServerMetrics struct {
	registry *prometheus.Registry
	service  string

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	cacheLookups      *prometheus.CounterVec
	upstreamCalls     *prometheus.CounterVec
	candidatesDropped *prometheus.CounterVec
	pipelineDuration  prometheus.Histogram
	pipelinePlaces    prometheus.Histogram
}

func NewServerMetrics(service string) *ServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storeradar",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "storeradar",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "storeradar",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	cacheLookups := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storeradar",
			Subsystem: "pipeline",
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by outcome.",
		},
		[]string{"service", "outcome"},
	)
	upstreamCalls := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storeradar",
			Subsystem: "pipeline",
			Name:      "upstream_calls_total",
			Help:      "Upstream collaborator calls by operation and outcome.",
		},
		[]string{"service", "operation", "outcome"},
	)
	candidatesDropped := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storeradar",
			Subsystem: "pipeline",
			Name:      "candidates_dropped_total",
			Help:      "Candidates removed by each filter stage.",
		},
		[]string{"service", "stage"},
	)
	pipelineDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storeradar",
			Subsystem: "pipeline",
			Name:      "duration_seconds",
			Help:      "Pipeline execution duration in seconds.",
			Buckets:   prometheus.DefBuckets,
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	pipelinePlaces := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storeradar",
			Subsystem: "pipeline",
			Name:      "result_places",
			Help:      "Distribution of returned places per answer.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21, 34},
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		cacheLookups,
		upstreamCalls,
		candidatesDropped,
		pipelineDuration,
		pipelinePlaces,
	)

	return &ServerMetrics{
		registry:          registry,
		service:           service,
		requestTotal:      requestTotal,
		requestDuration:   requestDuration,
		requestInFlight:   requestInFlight,
		cacheLookups:      cacheLookups,
		upstreamCalls:     upstreamCalls,
		candidatesDropped: candidatesDropped,
		pipelineDuration:  pipelineDuration,
		pipelinePlaces:    pipelinePlaces,
	}
}

func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *ServerMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			m.service,
			r.Method,
			r.URL.Path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(m.service, r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

// CacheLookup implements the pipeline observer port.
func (m *ServerMetrics) CacheLookup(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.cacheLookups.WithLabelValues(m.service, outcome).Inc()
}

func (m *ServerMetrics) UpstreamCall(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.upstreamCalls.WithLabelValues(m.service, operation, outcome).Inc()
}

func (m *ServerMetrics) CandidateDropped(stage string) {
	m.candidatesDropped.WithLabelValues(m.service, stage).Inc()
}

func (m *ServerMetrics) PipelineCompleted(resultCount int, duration time.Duration) {
	m.pipelineDuration.Observe(duration.Seconds())
	m.pipelinePlaces.Observe(float64(resultCount))
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return hijacker.Hijack()
}
