/*
Package registrysdk is a typed client for the onboarding registry HTTP API.

	client := registrysdk.NewSDKClient("http://localhost:8080")

	// Onboard a client; the welcome email outcome is reported alongside it
	resp, err := client.CreateClient(ctx, registrysdk.CreateClientRequest{
		Name:         "Jane Doe",
		Email:        "jane@acme.com",
		BusinessName: "Acme Pty Ltd",
	})
	if !resp.Email.Sent {
		fmt.Println("welcome email not sent:", resp.Email.ErrorMessage())
	}

	// Newest first
	list, err := client.ListClients(ctx)

Non-2xx responses are returned as *APIError carrying the status code and the
server's error message:

	var apiErr *registrysdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
		// email already registered
	}
*/
package registrysdk
