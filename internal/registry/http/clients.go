package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/onboard/internal/registry/domain"
	"github.com/aussiebroadwan/onboard/internal/registry/service"
	"github.com/aussiebroadwan/onboard/pkg/httpx"
	"github.com/aussiebroadwan/onboard/pkg/registrysdk"
)

const (
	msgClientAdded  = "Client added successfully"
	msgDuplicate    = "A client with this email already exists"
	msgFetchFailed  = "Failed to fetch clients"
	msgAddFailed    = "Failed to add client"
	msgInvalidJSON  = "Invalid JSON in request body"
	msgBodyTooLarge = "Request body too large"
)

// ClientsHandler serves the client registry endpoints.
type ClientsHandler struct {
	RegistryService *service.RegistryService
}

// HandleList handles GET /clients
//
//	@Summary		List Clients
//	@Description	Returns every registered client, newest first.
//	@Tags			Clients
//	@Produce		json
//	@Success		200	{object}	registrysdk.ListClientsResponse	"clients"
//	@Failure		500	{object}	registrysdk.ErrorResponse		"error"
//	@Router			/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clients, err := h.RegistryService.ListClients(ctx)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, msgFetchFailed)
		return
	}

	out := registrysdk.ListClientsResponse{Clients: make([]registrysdk.Client, 0, len(clients))}
	for _, c := range clients {
		out.Clients = append(out.Clients, toAPIClient(c))
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate handles POST /clients
//
//	@Summary		Add Client
//	@Description	Registers a client and sends the welcome email once. A failed email does not fail the request; see the email field.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registrysdk.CreateClientRequest		true	"name, email, business_name"
//	@Success		201		{object}	registrysdk.CreateClientResponse	"message, client, email"
//	@Failure		400		{object}	registrysdk.ErrorResponse			"missing fields, invalid email or malformed JSON"
//	@Failure		409		{object}	registrysdk.ErrorResponse			"email already registered"
//	@Failure		500		{object}	registrysdk.ErrorResponse			"error"
//	@Router			/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registrysdk.CreateClientRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	res, err := h.RegistryService.CreateClient(ctx, domain.NewClient{
		Name:         req.Name,
		Email:        req.Email,
		BusinessName: req.BusinessName,
	})

	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			httpx.WriteError(w, http.StatusBadRequest, verr.Message)
		case errors.Is(err, service.ErrDuplicateClient):
			httpx.WriteError(w, http.StatusConflict, msgDuplicate)
		default:
			httpx.WriteError(w, http.StatusInternalServerError, msgAddFailed)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, registrysdk.CreateClientResponse{
		Message: msgClientAdded,
		Client:  toAPIClient(res.Client),
		Email:   toAPIEmail(res.Email),
	})
}

func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		httpx.WriteError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
		return
	}
	httpx.WriteError(w, http.StatusBadRequest, msgInvalidJSON)
}

func toAPIClient(c domain.Client) registrysdk.Client {
	return registrysdk.Client{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		BusinessName: c.BusinessName,
		CreatedAt:    c.CreatedAt.UTC(),
	}
}

func toAPIEmail(o domain.EmailOutcome) registrysdk.EmailStatus {
	s := registrysdk.EmailStatus{Sent: o.Sent, To: o.To}
	if o.Error != "" {
		msg := o.Error
		s.Error = &msg
	}
	return s
}
