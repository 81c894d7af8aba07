package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/onboard/internal/registry/notify"
	"github.com/aussiebroadwan/onboard/pkg/httpx"
	"github.com/aussiebroadwan/onboard/pkg/registrysdk"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
)

// Mailer sends the diagnostic email.
type Mailer interface {
	SendTest(ctx context.Context, to string) (notify.Receipt, error)
	From() string
}

// TestEmailHandler verifies the email provider configuration end to end.
type TestEmailHandler struct {
	Mailer    Mailer
	DefaultTo string
}

// HandleGet handles GET /test-email
//
//	@Summary		Send Test Email
//	@Description	Sends the diagnostic email to the configured test address.
//	@Tags			Operations
//	@Produce		json
//	@Success		200	{object}	registrysdk.TestEmailResponse	"success, message, email_id, from, to"
//	@Failure		500	{object}	registrysdk.TestEmailResponse	"success=false, error"
//	@Router			/test-email [get].
func (h *TestEmailHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, h.DefaultTo)
}

// HandlePost handles POST /test-email
//
//	@Summary		Send Test Email To Address
//	@Description	Sends the diagnostic email to the given address.
//	@Tags			Operations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registrysdk.TestEmailRequest	true	"email"
//	@Success		200		{object}	registrysdk.TestEmailResponse	"success, message, email_id, from, to"
//	@Failure		400		{object}	registrysdk.ErrorResponse		"error"
//	@Failure		500		{object}	registrysdk.TestEmailResponse	"success=false, error"
//	@Router			/test-email [post].
func (h *TestEmailHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	var req registrysdk.TestEmailRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	to := strings.TrimSpace(req.Email)
	if to == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Email address is required")
		return
	}

	h.send(w, r, to)
}

func (h *TestEmailHandler) send(w http.ResponseWriter, r *http.Request, to string) {
	ctx := r.Context()

	receipt, err := h.Mailer.SendTest(ctx, to)
	if err != nil {
		slogx.FromContext(ctx).Error("test email failed", "to", to, "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, registrysdk.TestEmailResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, registrysdk.TestEmailResponse{
		Success: true,
		Message: "Test email sent successfully",
		EmailID: receipt.ID,
		From:    h.Mailer.From(),
		To:      to,
	})
}
