package subscription

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"newsletter/internal/config"
	"newsletter/pkg/domain"
	"newsletter/pkg/logger"
	"newsletter/pkg/mailer"
	"newsletter/pkg/metrics"
	"newsletter/pkg/serrors"
	"newsletter/pkg/storage"
)

// Options configure how confirmation links are built.
type Options struct {
	// BaseURL is the externally reachable base URL of this service.
	BaseURL string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BaseURL: cfg.App.BaseURL,
	}
}

// service is the concrete implementation of the Subscription interface.
// It coordinates persistence with the storage layer and email delivery.
type service struct {
	options  Options
	storage  storage.Storage
	mailer   mailer.Client
	counters *metrics.Counters
}

// New creates a Subscription service on top of the given storage and email
// gateway. counters may be nil, in which case no metrics are recorded.
func New(st storage.Storage, mail mailer.Client, counters *metrics.Counters, options Options) Subscription {
	return service{
		options:  options,
		storage:  st,
		mailer:   mail,
		counters: counters,
	}
}

// Submit validates the signup form, persists a pending subscriber together
// with a fresh confirmation token, and emails the confirmation link. When the
// address already belongs to a subscriber, the previously issued token is
// re-sent instead so that lost confirmation emails can be recovered by simply
// subscribing again.
func (s service) Submit(ctx context.Context, name string, email string) error {
	subscriberName, err := domain.NewSubscriberName(name)
	if err != nil {
		return err
	}
	subscriberEmail, err := domain.NewSubscriberEmail(email)
	if err != nil {
		return err
	}

	existing, err := s.storage.SubscriberByEmail(ctx, subscriberEmail.String())
	if err != nil {
		return fmt.Errorf("could not look up subscriber: %w", err)
	}

	if existing != nil {
		return s.resendConfirmation(ctx, *existing)
	}

	token, err := NewToken()
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not issue subscription token")
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreSubscriber(ctx, domain.Subscriber{
			Name:   subscriberName,
			Email:  subscriberEmail,
			Status: domain.SubscriberStatusPending,
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return serrors.Wrap(serrors.ErrConflict, err, "subscriber already exists")
			}

			return fmt.Errorf("could not store subscriber: %w", err)
		}

		if err := tx.StoreSubscriptionToken(ctx, token, stored.ID); err != nil {
			return fmt.Errorf("could not store subscription token: %w", err)
		}

		return nil
	}); err != nil {
		return err
	}

	s.counters.AddSubscriptionAccepted(ctx)
	logger.Info(ctx, "subscription accepted", zap.String("email", subscriberEmail.String()))

	// the subscriber is persisted at this point; a delivery failure surfaces
	// as an error but a later re-submission re-sends the same token
	return s.sendConfirmation(ctx, subscriberEmail, token)
}

// resendConfirmation handles a signup for an address that already has a
// subscriber row. The original token is looked up and mailed again.
func (s service) resendConfirmation(ctx context.Context, subscriber domain.Subscriber) error {
	token, err := s.storage.TokenBySubscriberID(ctx, subscriber.ID)
	if err != nil {
		return fmt.Errorf("could not look up subscription token: %w", err)
	}
	if token == "" {
		return serrors.With(serrors.ErrInternal, "subscriber has no subscription token")
	}

	logger.Info(ctx, "re-sending confirmation email", zap.String("email", subscriber.Email.String()))

	return s.sendConfirmation(ctx, subscriber.Email, token)
}

func (s service) sendConfirmation(ctx context.Context, email domain.SubscriberEmail, token string) error {
	link := fmt.Sprintf("%s/subscriptions/confirm?subscription_token=%s",
		strings.TrimSuffix(s.options.BaseURL, "/"), token)

	err := s.mailer.Send(ctx, mailer.Email{
		To:      email,
		Subject: "Welcome!",
		TextBody: fmt.Sprintf(
			"Welcome to our newsletter!\nVisit %s to confirm your subscription.", link),
		HTMLBody: fmt.Sprintf(
			`Welcome to our newsletter!<br />Click <a href="%s">here</a> to confirm your subscription.`, link),
	})
	if err != nil {
		return fmt.Errorf("could not send confirmation email: %w", err)
	}

	return nil
}

// Confirm resolves the token to a subscriber and marks them confirmed.
// Tokens that do not look like ours or that are unknown fail with an
// unauthorized error; confirming twice is a no-op success.
func (s service) Confirm(ctx context.Context, token string) error {
	if !ValidTokenShape(token) {
		return serrors.With(serrors.ErrUnauthorized, "malformed subscription token")
	}

	subscriberID, err := s.storage.SubscriberIDByToken(ctx, token)
	if err != nil {
		return fmt.Errorf("could not look up subscription token: %w", err)
	}
	if subscriberID == nil {
		return serrors.With(serrors.ErrUnauthorized, "unknown subscription token")
	}

	if err := s.storage.ConfirmSubscriber(ctx, *subscriberID); err != nil {
		return fmt.Errorf("could not confirm subscriber: %w", err)
	}

	s.counters.AddSubscriberConfirmed(ctx)
	logger.Info(ctx, "subscriber confirmed")

	return nil
}
