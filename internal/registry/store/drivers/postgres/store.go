package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aussiebroadwan/onboard/internal/registry/store"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// uniqueViolation is the SQLSTATE PostgreSQL reports for a UNIQUE constraint failure.
const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

// NewStore opens a pgx-backed connection pool for dsn and checks it is reachable.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// NewStoreFromDB wraps an existing pool. The Store takes ownership and closes it.
func NewStoreFromDB(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Clients() store.Clients { return &clientsRepo{db: s.db} }

// mapConstraint converts a unique violation into the store's duplicate signal.
func mapConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return store.ErrAlreadyExists
	}
	return err
}
