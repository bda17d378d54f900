package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "a2a",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "a2a",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "a2a",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// Generator metrics
	alertsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "a2a",
			Subsystem: "generator",
			Name:      "alerts_total",
			Help:      "Total number of synthetic alerts persisted by the generator",
		},
		[]string{"severity", "threat_type"},
	)

	generatorFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "a2a",
			Subsystem: "generator",
			Name:      "failures_total",
			Help:      "Generator iterations that did not produce an alert",
		},
		[]string{"reason"},
	)

	// Stream metrics
	streamEventsPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "a2a",
			Subsystem: "stream",
			Name:      "events_published_total",
			Help:      "Events accepted by the delivery queue",
		},
	)

	streamEventsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "a2a",
			Subsystem: "stream",
			Name:      "events_dropped_total",
			Help:      "Events dropped because the delivery queue stayed full",
		},
	)

	streamEventsDelivered = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "a2a",
			Subsystem: "stream",
			Name:      "events_delivered_total",
			Help:      "Events written to a stream connection",
		},
	)

	streamQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "a2a",
			Subsystem: "stream",
			Name:      "queue_depth",
			Help:      "Events waiting in the delivery queue",
		},
	)

	streamConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "a2a",
			Subsystem: "stream",
			Name:      "connections",
			Help:      "Open stream connections",
		},
	)

	// Store metrics
	alertsBySeverity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "a2a",
			Subsystem: "store",
			Name:      "alerts",
			Help:      "Persisted alerts by severity",
		},
		[]string{"severity"},
	)

	packetsBySeverity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "a2a",
			Subsystem: "store",
			Name:      "packets",
			Help:      "Historical packets by severity",
		},
		[]string{"severity"},
	)

	agentsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "a2a",
			Subsystem: "store",
			Name:      "agents",
			Help:      "Agents in the roster",
		},
	)

	dbQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "a2a",
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "table"},
	)
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Flush keeps streaming handlers working behind the middleware
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Middleware returns a middleware that records Prometheus metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()

		routePattern := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			routePattern = rctx.RoutePattern()
		}

		status := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, routePattern, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, routePattern, status).Observe(duration)
	})
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordAlertGenerated records an alert persisted by the generator
func RecordAlertGenerated(severity, threatType string) {
	alertsGeneratedTotal.WithLabelValues(severity, threatType).Inc()
}

// RecordGeneratorFailure records a generator iteration that produced nothing
func RecordGeneratorFailure(reason string) {
	generatorFailuresTotal.WithLabelValues(reason).Inc()
}

// RecordEventPublished records an event accepted by the delivery queue
func RecordEventPublished() {
	streamEventsPublished.Inc()
}

// RecordEventDropped records an event discarded by the delivery queue
func RecordEventDropped() {
	streamEventsDropped.Inc()
}

// RecordEventDelivered records an event written to a stream client
func RecordEventDelivered() {
	streamEventsDelivered.Inc()
}

// SetQueueDepth sets the delivery queue depth gauge
func SetQueueDepth(depth int) {
	streamQueueDepth.Set(float64(depth))
}

// StreamOpened increments the open stream gauge
func StreamOpened() {
	streamConnections.Inc()
}

// StreamClosed decrements the open stream gauge
func StreamClosed() {
	streamConnections.Dec()
}

// SetAlertsCount sets the gauge for persisted alerts by severity
func SetAlertsCount(severity string, count float64) {
	alertsBySeverity.WithLabelValues(severity).Set(count)
}

// SetPacketsCount sets the gauge for historical packets by severity
func SetPacketsCount(severity string, count float64) {
	packetsBySeverity.WithLabelValues(severity).Set(count)
}

// SetAgentsCount sets the roster size gauge
func SetAgentsCount(count float64) {
	agentsTotal.Set(count)
}

// RecordDBQuery records a database query duration
func RecordDBQuery(operation, table string, duration time.Duration) {
	dbQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}
