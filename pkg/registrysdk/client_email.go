package registrysdk

import (
	"context"
	"net/http"
)

// SendTestEmail asks the server to send its diagnostic email. An empty to
// sends to the server's configured test address.
func (c *SDKClient) SendTestEmail(ctx context.Context, to string) (*TestEmailResponse, error) {
	var (
		resp *http.Response
		err  error
	)
	if to == "" {
		resp, err = c.doRequest(ctx, http.MethodGet, "/test-email", nil, nil)
	} else {
		resp, err = c.doJSON(ctx, http.MethodPost, "/test-email", TestEmailRequest{Email: to})
	}
	if err != nil {
		return nil, err
	}

	var out TestEmailResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}
