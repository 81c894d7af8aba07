package notify

import (
	"context"
	"net/url"

	"github.com/resend/resend-go/v2"
)

// ResendSender delivers mail through the Resend HTTP API.
type ResendSender struct {
	client *resend.Client
}

func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey)}
}

// WithBaseURL points the sender at a different API host. Used by tests.
func (s *ResendSender) WithBaseURL(u *url.URL) *ResendSender {
	s.client.BaseURL = u
	return s
}

func (s *ResendSender) Send(ctx context.Context, msg Email) (Receipt, error) {
	resp, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return Receipt{}, err
	}
	if resp == nil {
		return Receipt{}, nil
	}
	return Receipt{ID: resp.Id}, nil
}

// DisabledSender is used when no API key is configured. Every send fails.
type DisabledSender struct{}

func (DisabledSender) Send(context.Context, Email) (Receipt, error) {
	return Receipt{}, ErrNotConfigured
}
