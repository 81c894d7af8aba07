package domain

// EmailOutcome records what happened to the welcome email sent after a client
// was created. A failed send never undoes the creation.
type EmailOutcome struct {
	Sent  bool
	To    string
	Error string // empty when Sent is true
}
