package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/onboard/internal/registry/domain"
	"github.com/aussiebroadwan/onboard/internal/registry/metrics"
	"github.com/aussiebroadwan/onboard/internal/registry/notify"
	"github.com/aussiebroadwan/onboard/internal/registry/store"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
)

const DefaultNotifyTimeout = 10 * time.Second

// Notifier sends the welcome email for a newly created client.
type Notifier interface {
	SendWelcome(ctx context.Context, to, name, businessName string) (notify.Receipt, error)
}

type RegistryService struct {
	Store         store.Store
	Notifier      Notifier
	Metrics       *metrics.Metrics // optional
	NotifyTimeout time.Duration    // zero means DefaultNotifyTimeout
}

// CreateResult is the outcome of a successful CreateClient. The email
// outcome never turns a persisted client into a failure.
type CreateResult struct {
	Client domain.Client
	Email  domain.EmailOutcome
}

// ListClients returns every client, newest first.
func (s *RegistryService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.Store.Clients().ListClients(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list clients", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return clients, nil
}

// CreateClient validates and persists a client, then attempts the welcome
// email exactly once. Only validation and persistence can fail the call.
func (s *RegistryService) CreateClient(ctx context.Context, nc domain.NewClient) (CreateResult, error) {
	l := slogx.FromContext(ctx)

	// 1. Validate
	input, err := validateNewClient(nc)
	if err != nil {
		l.Info("client rejected", slog.Any("error", err))
		s.Metrics.ClientCreateFailed(metrics.ReasonValidation)
		return CreateResult{}, err
	}

	// 2. Persist
	client, err := s.Store.Clients().InsertClient(ctx, input)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			l.Info("duplicate client email", slog.String("email", input.Email))
			s.Metrics.ClientCreateFailed(metrics.ReasonDuplicate)
			return CreateResult{}, ErrDuplicateClient
		}
		l.Error("failed to insert client", slog.Any("error", err))
		s.Metrics.ClientCreateFailed(metrics.ReasonStore)
		return CreateResult{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	s.Metrics.ClientCreated()
	l.Info("client created", slog.String("client_id", client.ID), slog.String("email", client.Email))

	// 3. Notify
	outcome := s.sendWelcome(ctx, client)

	return CreateResult{Client: client, Email: outcome}, nil
}

func (s *RegistryService) sendWelcome(ctx context.Context, client domain.Client) domain.EmailOutcome {
	l := slogx.FromContext(ctx)
	outcome := domain.EmailOutcome{To: client.Email}

	if s.Notifier == nil {
		outcome.Error = notify.ErrNotConfigured.Error()
		s.Metrics.WelcomeEmail(metrics.EmailFailed)
		return outcome
	}

	timeout := s.NotifyTimeout
	if timeout <= 0 {
		timeout = DefaultNotifyTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	receipt, err := s.Notifier.SendWelcome(ctx, client.Email, client.Name, client.BusinessName)
	switch {
	case err != nil:
		l.Error("welcome email failed", slog.String("to", client.Email), slog.Any("error", err))
		outcome.Error = err.Error()
		s.Metrics.WelcomeEmail(metrics.EmailFailed)
	case receipt.ID == "":
		l.Warn("welcome email returned no message id", slog.String("to", client.Email))
		outcome.Error = msgNoMessageID
		s.Metrics.WelcomeEmail(metrics.EmailMissingID)
	default:
		l.Info("welcome email sent", slog.String("to", client.Email), slog.String("email_id", receipt.ID))
		outcome.Sent = true
		s.Metrics.WelcomeEmail(metrics.EmailSent)
	}
	return outcome
}
