package registry_test

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/onboard/pkg/registrysdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and shared assertions for the registry end-to-end tests.
 * The image is built once in TestMain and every test gets a fresh container
 * with its own SQLite file, so tests never observe each other's clients.
 */

const testImageName = "onboard-registry-test:latest"

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(0)
	}

	fmt.Fprintf(os.Stdout, "Building registry Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up registry Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	cmd := exec.CommandContext(context.Background(), "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/onboard/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	cmd := exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // the image might already be gone
}

// setupRegistryContainer starts the service without an email provider and
// returns an SDK client pointed at it.
func setupRegistryContainer(t *testing.T) *registrysdk.SDKClient {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"ENV":           "test",
			"LOG_LEVEL":     "info",
			"LOG_FORMAT":    "json",
			"DATABASE_FILE": "/data/clients.db",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return registrysdk.NewSDKClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port()))
}

// createClient registers a client and fails the test on any error.
func createClient(t *testing.T, client *registrysdk.SDKClient, name, email, business string) *registrysdk.CreateClientResponse {
	t.Helper()

	resp, err := client.CreateClient(t.Context(), registrysdk.CreateClientRequest{
		Name:         name,
		Email:        email,
		BusinessName: business,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	return resp
}

// requireAPIError asserts that err is an API error with the given status and message.
func requireAPIError(t *testing.T, err error, status int, message string) {
	t.Helper()

	require.Error(t, err)
	var apiErr *registrysdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, message, apiErr.Message)
}
