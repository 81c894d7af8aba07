package domain

import "time"

// Client is an onboarded business contact. ID and CreatedAt are assigned by
// the store; records are never updated once written.
type Client struct {
	ID           string
	Name         string
	Email        string
	BusinessName string
	CreatedAt    time.Time
}

// NewClient carries the caller-supplied fields of a client about to be created.
type NewClient struct {
	Name         string
	Email        string
	BusinessName string
}
