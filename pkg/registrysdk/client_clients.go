package registrysdk

import (
	"context"
	"net/http"
)

// ListClients returns every registered client, newest first.
func (c *SDKClient) ListClients(ctx context.Context) (*ListClientsResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/clients", nil, nil)
	if err != nil {
		return nil, err
	}

	var out ListClientsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	if out.Clients == nil {
		out.Clients = []Client{}
	}

	return &out, nil
}

// CreateClient registers a client. The server answers 400 for invalid input
// and 409 when the email is already registered.
func (c *SDKClient) CreateClient(ctx context.Context, req CreateClientRequest) (*CreateClientResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/clients", req)
	if err != nil {
		return nil, err
	}

	var out CreateClientResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}

	return &out, nil
}
