package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/onboard/internal/registry/metrics"
	"github.com/aussiebroadwan/onboard/internal/registry/service"
	"github.com/aussiebroadwan/onboard/internal/registry/store"
	"github.com/aussiebroadwan/onboard/pkg/httpx"
	"github.com/aussiebroadwan/onboard/pkg/slogx"

	_ "github.com/aussiebroadwan/onboard/api/registry" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware
	handler     http.Handler

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store   store.Store
	metrics *metrics.Metrics

	RegistryService *service.RegistryService

	// Mailer backs the test-email endpoints; nil leaves them unregistered.
	Mailer          Mailer
	TestEmailTo     string
	EmailConfigured bool
}

func NewRouter(
	buildVersion string,
	st store.Store,
	m *metrics.Metrics,
	logger *slog.Logger,
	maxBodyBytes int64,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		metrics:      m,
		logger:       logger,
	}

	// Metrics sits last so it wraps the mux directly and can read r.Pattern.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(),
		httpx.BodyLimit(maxBodyBytes),
		m.Middleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerClients()
	r.registerTestEmail()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	r.handler = httpx.Chain(r.Mux, r.middlewares...)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Client Onboarding API
//	@version		0.1.0
//	@description	Registers accounting-firm clients and sends each one a welcome email.
//	@description
//	@description	The welcome email is best effort: a client is created even when the email fails, and the outcome is reported in the response.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/onboard
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h := r.handler
	if h == nil {
		h = httpx.Chain(r.Mux, r.middlewares...)
	}
	h.ServeHTTP(w, req)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{RegistryService: r.RegistryService}

	r.Mux.HandleFunc("GET /clients", h.HandleList)
	r.Mux.HandleFunc("POST /clients", h.HandleCreate)
}

func (r *Router) registerTestEmail() {
	if r.Mailer == nil {
		return
	}
	h := &TestEmailHandler{Mailer: r.Mailer, DefaultTo: r.TestEmailTo}

	r.Mux.HandleFunc("GET /test-email", h.HandleGet)
	r.Mux.HandleFunc("POST /test-email", h.HandlePost)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.EmailConfigured))

	if r.metrics != nil {
		r.Mux.Handle("GET /metrics", r.metrics.Handler())
	}
}
