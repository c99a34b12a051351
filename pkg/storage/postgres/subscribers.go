package postgres

import (
	"context"
	"errors"
	"fmt"
	"newsletter/pkg/domain"
	"newsletter/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	subscriptionsTable      = "subscriptions"
	subscriptionTokensTable = "subscription_tokens"
)

// uniqueViolation is the PostgreSQL error code for unique_violation.
const uniqueViolation = "23505"

// mapDuplicate converts a unique-constraint violation into storage.ErrDuplicate
// so callers can distinguish races from other storage failures.
func mapDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", storage.ErrDuplicate, pgErr.ConstraintName)
	}

	return err
}

func (p *PgSQL) StoreSubscriber(ctx context.Context, subscriber domain.Subscriber) (*domain.Subscriber, error) {
	var pgSubscriber PgSubscriber
	pgSubscriber.FromDomain(subscriber)
	if pgSubscriber.ID == uuid.Nil {
		pgSubscriber.ID = uuid.New()
	}

	var result PgSubscriber
	found, err := p.Builder.Insert(subscriptionsTable).
		Rows(pgSubscriber).
		Returning(&PgSubscriber{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store subscriber into pg: %w", mapDuplicate(err))
	}
	if !found {
		return nil, fmt.Errorf("insert returned no row")
	}

	return result.ToDomain()
}

func (p *PgSQL) SubscriberByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	var row PgSubscriber
	found, err := p.Builder.From(subscriptionsTable).
		Where(goqu.I("email").Eq(email)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch subscriber by email: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) StoreSubscriptionToken(ctx context.Context,
	token string,
	subscriberID domain.SubscriberID) error {
	_, err := p.Builder.Insert(subscriptionTokensTable).
		Rows(PgSubscriptionToken{
			SubscriptionToken: token,
			SubscriberID:      uuid.UUID(subscriberID),
		}).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not store subscription token into pg: %w", mapDuplicate(err))
	}

	return nil
}

func (p *PgSQL) TokenBySubscriberID(ctx context.Context, subscriberID domain.SubscriberID) (string, error) {
	var row PgSubscriptionToken
	found, err := p.Builder.From(subscriptionTokensTable).
		Where(goqu.I("subscriber_id").Eq(uuid.UUID(subscriberID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return "", fmt.Errorf("could not fetch token by subscriber id: %w", err)
	}
	if !found {
		return "", nil
	}

	return row.SubscriptionToken, nil
}

func (p *PgSQL) SubscriberIDByToken(ctx context.Context, token string) (*domain.SubscriberID, error) {
	var row PgSubscriptionToken
	found, err := p.Builder.From(subscriptionTokensTable).
		Where(goqu.I("subscription_token").Eq(token)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch subscriber id by token: %w", err)
	}
	if !found {
		return nil, nil
	}

	id := domain.SubscriberID(row.SubscriberID)

	return &id, nil
}

// ConfirmSubscriber unconditionally sets status to confirmed, which makes
// repeated confirmations idempotent.
func (p *PgSQL) ConfirmSubscriber(ctx context.Context, subscriberID domain.SubscriberID) error {
	_, err := p.Builder.Update(subscriptionsTable).
		Set(goqu.Record{
			"status": string(domain.SubscriberStatusConfirmed),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(subscriberID)),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not confirm subscriber in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) ConfirmedSubscriberEmails(ctx context.Context) ([]string, error) {
	var emails []string
	if err := p.Builder.From(subscriptionsTable).
		Select(goqu.I("email")).
		Where(goqu.I("status").Eq(string(domain.SubscriberStatusConfirmed))).
		Order(goqu.I("subscribed_at").Asc()).
		Executor().ScanValsContext(ctx, &emails); err != nil {
		return nil, fmt.Errorf("could not fetch confirmed subscriber emails: %w", err)
	}

	return emails, nil
}
