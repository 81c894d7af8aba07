// Package metrics holds the Prometheus instruments of the registry service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "onboard"

// Failure reasons for client creation.
const (
	ReasonValidation = "validation"
	ReasonDuplicate  = "duplicate"
	ReasonStore      = "store"
)

// Welcome email outcomes.
const (
	EmailSent      = "sent"
	EmailFailed    = "failed"
	EmailMissingID = "missing_id"
)

// Metrics is safe to use as a nil pointer; every recorder is then a no-op.
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	ClientsCreated       prometheus.Counter
	ClientCreateFailures *prometheus.CounterVec
	WelcomeEmails        *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers the registry instruments on reg and serves /metrics from g.
// A *prometheus.Registry is both; pass a fresh one in tests to keep them
// isolated.
func New(reg prometheus.Registerer, g prometheus.Gatherer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		ClientsCreated: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "clients_created_total",
				Help:      "Total number of clients persisted",
			},
		),
		ClientCreateFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "client_create_failures_total",
				Help:      "Total number of rejected or failed client creations",
			},
			[]string{"reason"},
		),
		WelcomeEmails: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "welcome_emails_total",
				Help:      "Welcome email attempts by outcome",
			},
			[]string{"outcome"},
		),
		gatherer: g,
	}
}

func (m *Metrics) ClientCreated() {
	if m == nil {
		return
	}
	m.ClientsCreated.Inc()
}

func (m *Metrics) ClientCreateFailed(reason string) {
	if m == nil {
		return
	}
	m.ClientCreateFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) WelcomeEmail(outcome string) {
	if m == nil {
		return
	}
	m.WelcomeEmails.WithLabelValues(outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Middleware records request counts and latencies labelled by the matched
// ServeMux pattern. It must wrap the mux directly so r.Pattern is populated
// on the same request value.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}

		m.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
