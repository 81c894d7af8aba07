package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aussiebroadwan/onboard/internal/registry/domain"
	"github.com/aussiebroadwan/onboard/pkg/idx"
)

// timeLayout is fixed width so that ORDER BY on the text column is chronological.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const (
	insertClientSQL = `INSERT INTO clients (id, name, email, business_name, created_at)
VALUES (?, ?, ?, ?, ?)`

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
		var (
			c  domain.Client
			ts sqliteTime
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.BusinessName, &ts); err != nil {
			return nil, err
		}
		c.CreatedAt = ts.Time
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *clientsRepo) InsertClient(ctx context.Context, nc domain.NewClient) (domain.Client, error) {
	now := time.Now().UTC()
	c := domain.Client{
		ID:           idx.NewAt(now).String(),
		Name:         nc.Name,
		Email:        nc.Email,
		BusinessName: nc.BusinessName,
		CreatedAt:    now,
	}

	_, err := r.db.ExecContext(ctx, insertClientSQL,
		c.ID, c.Name, c.Email, c.BusinessName, now.Format(timeLayout))
	if err != nil {
		return domain.Client{}, mapConstraint(err)
	}
	return c, nil
}

// sqliteTime scans created_at whether the driver hands back a parsed
// time.Time (declared TIMESTAMP column) or the raw text.
type sqliteTime struct {
	time.Time
}

func (t *sqliteTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("sqlite: cannot scan %T into timestamp", src)
	}
}

func (t *sqliteTime) parse(s string) error {
	for _, layout := range []string{timeLayout, time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", time.DateTime} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("sqlite: unrecognised timestamp %q", s)
}
