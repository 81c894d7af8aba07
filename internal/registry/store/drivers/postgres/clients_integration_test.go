package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/onboard/internal/registry/domain"
	"github.com/aussiebroadwan/onboard/internal/registry/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a throwaway PostgreSQL container and returns a migrated Store.
func setupPostgres(t *testing.T) *Store {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "onboard",
			"POSTGRES_PASSWORD": "onboard",
			"POSTGRES_DB":       "onboard",
		},
		// The entrypoint restarts postgres once after init, so wait for the second ready line.
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
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

	mappedPort, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://onboard:onboard@%s:%s/onboard?sslmode=disable", host, mappedPort.Port())

	st, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestPostgres_RoundTrip(t *testing.T) {
	st := setupPostgres(t)
	ctx := t.Context()

	// Running migrations a second time is a no-op.
	require.NoError(t, st.ApplyMigrations())

	first, err := st.Clients().InsertClient(ctx, domain.NewClient{Name: "Alice", Email: "alice@acme.com", BusinessName: "Acme"})
	require.NoError(t, err)
	second, err := st.Clients().InsertClient(ctx, domain.NewClient{Name: "Bob", Email: "bob@acme.com", BusinessName: "Acme"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	_, err = st.Clients().InsertClient(ctx, domain.NewClient{Name: "Alice Again", Email: "alice@acme.com", BusinessName: "Other"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	clients, err := st.Clients().ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, second.ID, clients[0].ID)
	assert.Equal(t, first.ID, clients[1].ID)

	require.NoError(t, st.Ping(ctx))
}
