package postgres

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/onboard/internal/registry/domain"
	"github.com/aussiebroadwan/onboard/pkg/idx"
)

const (
	insertClientSQL = `INSERT INTO clients (id, name, email, business_name)
VALUES ($1, $2, $3, $4)
RETURNING created_at`

	listClientsSQL = `SELECT id, name, email, business_name, created_at
FROM clients
ORDER BY created_at DESC, id DESC`
)

type clientsRepo struct {
	db *sql.DB
}

func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, listClientsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.BusinessName, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.CreatedAt = c.CreatedAt.UTC()
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// InsertClient lets the database stamp created_at and reads it back.
func (r *clientsRepo) InsertClient(ctx context.Context, nc domain.NewClient) (domain.Client, error) {
	c := domain.Client{
		ID:           idx.New().String(),
		Name:         nc.Name,
		Email:        nc.Email,
		BusinessName: nc.BusinessName,
	}

	err := r.db.QueryRowContext(ctx, insertClientSQL, c.ID, c.Name, c.Email, c.BusinessName).
		Scan(&c.CreatedAt)
	if err != nil {
		return domain.Client{}, mapConstraint(err)
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}
