package newsletter

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"newsletter/internal/auth"
	"newsletter/pkg/domain"
	"newsletter/pkg/logger"
	"newsletter/pkg/mailer"
	"newsletter/pkg/metrics"
	"newsletter/pkg/storage"
)

// dispatcher is the concrete implementation of the Dispatcher interface.
type dispatcher struct {
	validator auth.CredentialValidator
	storage   storage.Storage
	mailer    mailer.Client
	counters  *metrics.Counters
}

// New creates a Dispatcher. counters may be nil, in which case no metrics are
// recorded.
func New(validator auth.CredentialValidator,
	st storage.Storage,
	mail mailer.Client,
	counters *metrics.Counters) Dispatcher {
	return dispatcher{
		validator: validator,
		storage:   st,
		mailer:    mail,
		counters:  counters,
	}
}

// Publish delivers the issue to all confirmed subscribers, in subscription
// order. Addresses that were valid at signup but no longer parse are skipped
// with a warning so one bad row cannot block the whole issue. A delivery
// failure aborts the remainder of the batch. An empty subscriber list is a
// successful no-op.
func (d dispatcher) Publish(ctx context.Context, credentials domain.Credentials, issue Issue) error {
	userID, err := d.validator.Validate(ctx, credentials)
	if err != nil {
		return err
	}
	ctx = logger.WithFields(ctx, zap.Stringer("userID", *userID))

	emails, err := d.storage.ConfirmedSubscriberEmails(ctx)
	if err != nil {
		return fmt.Errorf("could not load confirmed subscribers: %w", err)
	}

	for _, raw := range emails {
		email, err := domain.NewSubscriberEmail(raw)
		if err != nil {
			logger.Warn(ctx, "skipping confirmed subscriber with invalid stored email",
				zap.String("email", raw), zap.Error(err))

			continue
		}

		if err := d.mailer.Send(ctx, mailer.Email{
			To:       email,
			Subject:  issue.Title,
			TextBody: issue.TextBody,
			HTMLBody: issue.HTMLBody,
		}); err != nil {
			return fmt.Errorf("could not deliver issue to %s: %w", email, err)
		}

		d.counters.AddNewsletterEmailSent(ctx)
	}

	logger.Info(ctx, "newsletter issue published", zap.Int("subscribers", len(emails)))

	return nil
}
