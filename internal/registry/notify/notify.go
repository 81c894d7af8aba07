// Package notify sends the transactional emails of the onboarding service.
//
// The vendor API sits behind the Sender interface so the registry service
// never depends on a concrete provider.
package notify

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/onboard/pkg/slogx"
)

var (
	ErrNotConfigured = errors.New("email provider is not configured")
	ErrNoRecipient   = errors.New("recipient address is required")
)

const (
	DefaultFrom = "onboarding@resend.dev"

	testSubject = "Test Email from Client Onboarding App"
)

// Email is a single outbound message.
type Email struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Receipt is what the provider hands back for an accepted message.
// An empty ID means the provider did not confirm the send.
type Receipt struct {
	ID string
}

type Sender interface {
	Send(ctx context.Context, msg Email) (Receipt, error)
}

// Client renders the onboarding emails and hands them to a Sender.
type Client struct {
	sender Sender
	from   string
}

func NewClient(sender Sender, from string) *Client {
	if from == "" {
		from = DefaultFrom
	}
	return &Client{sender: sender, from: from}
}

// From returns the sender address used for every message.
func (c *Client) From() string { return c.from }

// SendWelcome sends the welcome email for a newly onboarded client.
// It makes exactly one provider call.
func (c *Client) SendWelcome(ctx context.Context, to, name, businessName string) (Receipt, error) {
	body, err := renderWelcome(name, businessName)
	if err != nil {
		return Receipt{}, err
	}
	return c.send(ctx, Email{
		From:    c.from,
		To:      to,
		Subject: welcomeSubject(name),
		HTML:    body,
	})
}

// SendTest sends the diagnostic email used to verify provider configuration.
func (c *Client) SendTest(ctx context.Context, to string) (Receipt, error) {
	body, err := renderTest()
	if err != nil {
		return Receipt{}, err
	}
	return c.send(ctx, Email{
		From:    c.from,
		To:      to,
		Subject: testSubject,
		HTML:    body,
	})
}

func (c *Client) send(ctx context.Context, msg Email) (Receipt, error) {
	l := slogx.FromContext(ctx)

	if msg.To == "" {
		return Receipt{}, ErrNoRecipient
	}

	l.Debug("sending email", slog.String("from", msg.From), slog.String("to", msg.To), slog.String("subject", msg.Subject))

	receipt, err := c.sender.Send(ctx, msg)
	if err != nil {
		return Receipt{}, err
	}

	l.Debug("email accepted by provider", slog.String("to", msg.To), slog.String("email_id", receipt.ID))
	return receipt, nil
}
