package service

import (
	"errors"
	"strings"
)

var (
	ErrDuplicateClient  = errors.New("a client with this email already exists")
	ErrStoreUnavailable = errors.New("client store unavailable")
)

const (
	MsgMissingFields = "Missing required fields: name, email, business_name"
	MsgInvalidEmail  = "Invalid email format"

	msgNoMessageID = "Email sent but no ID returned from provider"
)

// ValidationError reports input that was rejected before reaching the store.
// Message is safe to show to callers.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + " (" + strings.Join(e.Fields, ", ") + ")"
}
