package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/onboard/internal/registry/domain"
)

var (
	// ErrAlreadyExists is the duplicate signal: the insert hit the unique
	// constraint on clients.email. Drivers translate their native error into it.
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this and expose the clients repository through Clients().
type Store interface {
	Clients() Clients

	// ApplyMigrations brings the schema up to date using the embedded
	// migrations for the driver.
	ApplyMigrations() error

	// Close releases the underlying connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Clients interface {
	// ListClients returns all clients ordered by creation date (newest first).
	ListClients(ctx context.Context) ([]domain.Client, error)

	// InsertClient stores a new client, assigning its ID and CreatedAt.
	// Returns ErrAlreadyExists when the email is already registered.
	InsertClient(ctx context.Context, c domain.NewClient) (domain.Client, error)
}
