package registrysdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient talks to a single registry service instance.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the service at baseURL. The request
// timeout covers the welcome email the server awaits on create.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}
