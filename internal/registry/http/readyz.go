package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/onboard/internal/registry/store"
	"github.com/aussiebroadwan/onboard/pkg/httpx"
	"github.com/aussiebroadwan/onboard/pkg/registrysdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Only the database gates readiness; a missing email provider is reported but tolerated
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	registrysdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	registrysdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	emailConfigured bool,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &registrysdk.HealthChecks{
			Database: "ok",
			Email:    "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if !emailConfigured {
			checks.Email = "disabled"
		}

		httpx.WriteJSON(w, statusCode, registrysdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
