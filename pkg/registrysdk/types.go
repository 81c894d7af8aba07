package registrysdk

import "time"

// Client is a registered accounting-firm client.
type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	BusinessName string    `json:"business_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateClientRequest is the body of POST /clients.
type CreateClientRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	BusinessName string `json:"business_name"`
}

// EmailStatus reports the welcome email attempt made while creating a client.
// Error is null when the email was sent.
type EmailStatus struct {
	Sent  bool    `json:"sent"`
	To    string  `json:"to"`
	Error *string `json:"error"`
}

// ErrorMessage returns the failure reason, or "" when there is none.
func (s EmailStatus) ErrorMessage() string {
	if s.Error == nil {
		return ""
	}
	return *s.Error
}

// CreateClientResponse is the 201 body of POST /clients.
type CreateClientResponse struct {
	Message string      `json:"message"`
	Client  Client      `json:"client"`
	Email   EmailStatus `json:"email"`
}

// ListClientsResponse is the body of GET /clients.
type ListClientsResponse struct {
	Clients []Client `json:"clients"`
}

// TestEmailRequest is the body of POST /test-email.
type TestEmailRequest struct {
	Email string `json:"email"`
}

// TestEmailResponse is returned by both test-email endpoints.
type TestEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	EmailID string `json:"email_id,omitempty"`
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of the service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Email is "ok" when a provider key is configured, otherwise "disabled"
	Email string `json:"email"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
