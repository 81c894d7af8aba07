package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorders(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, reg)

	m.ClientCreated()
	m.ClientCreated()
	m.ClientCreateFailed(ReasonDuplicate)
	m.WelcomeEmail(EmailSent)
	m.WelcomeEmail(EmailMissingID)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ClientsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ClientCreateFailures.WithLabelValues(ReasonDuplicate)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ClientCreateFailures.WithLabelValues(ReasonStore)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WelcomeEmails.WithLabelValues(EmailSent)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WelcomeEmails.WithLabelValues(EmailMissingID)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ClientCreated()
		m.ClientCreateFailed(ReasonStore)
		m.WelcomeEmail(EmailFailed)
	})

	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	rec := httptest.NewRecorder()
	m.Middleware(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestMiddlewareLabelsByPattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, reg)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /clients", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	h := m.Middleware(mux)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/clients", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "POST /clients", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, reg)
	m.ClientCreated()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "onboard_clients_created_total 1"), body)
}

func TestNewAcceptsWrappedRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(prometheus.WrapRegistererWith(prometheus.Labels{"instance": "a"}, reg), reg)
	m.ClientCreated()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `onboard_clients_created_total{instance="a"} 1`)
}
