package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "rms",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rms",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rms",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	customersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rms",
			Subsystem: "customers",
			Name:      "created_total",
			Help:      "Total number of customers registered.",
		},
	)

	complaintEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rms",
			Subsystem: "complaints",
			Name:      "events_total",
			Help:      "Complaint lifecycle events by kind.",
		},
		[]string{"event"},
	)
)

// Complaint event labels.
const (
	ComplaintCreated  = "created"
	ComplaintUpdated  = "updated"
	ComplaintResolved = "resolved"
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		customersCreated,
		complaintEvents,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted marks a request in flight and returns the func that records
// its outcome.
func RequestStarted() func(method, route string, status int) {
	start := time.Now()
	httpInFlight.Inc()
	return func(method, route string, status int) {
		httpInFlight.Dec()
		if route == "" {
			route = "unmatched"
		}
		method = strings.ToUpper(method)
		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// RecordCustomerCreated counts a registered customer.
func RecordCustomerCreated() {
	customersCreated.Inc()
}

// RecordComplaintEvent counts a complaint lifecycle event.
func RecordComplaintEvent(event string) {
	complaintEvents.WithLabelValues(event).Inc()
}
