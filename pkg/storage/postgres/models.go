package postgres

import (
	"fmt"
	"newsletter/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgSubscriber struct {
	ID uuid.UUID `db:"id"`

	Name   string `db:"name"`
	Email  string `db:"email"`
	Status string `db:"status"`

	SubscribedAt time.Time `db:"subscribed_at" goqu:"skipinsert"`
}

func (p *PgSubscriber) ToDomain() (*domain.Subscriber, error) {
	// stored rows were validated on the way in, but legacy data may predate
	// the current rules; surface that as an error the caller can classify
	name, err := domain.NewSubscriberName(p.Name)
	if err != nil {
		return nil, fmt.Errorf("stored name is invalid: %w", err)
	}
	email, err := domain.NewSubscriberEmail(p.Email)
	if err != nil {
		return nil, fmt.Errorf("stored email is invalid: %w", err)
	}

	return &domain.Subscriber{
		ID:           domain.SubscriberID(p.ID),
		Name:         name,
		Email:        email,
		Status:       domain.SubscriberStatus(p.Status),
		SubscribedAt: p.SubscribedAt,
	}, nil
}

func (p *PgSubscriber) FromDomain(subscriber domain.Subscriber) {
	*p = PgSubscriber{
		ID:           uuid.UUID(subscriber.ID),
		Name:         subscriber.Name.String(),
		Email:        subscriber.Email.String(),
		Status:       string(subscriber.Status),
		SubscribedAt: subscriber.SubscribedAt,
	}
}

type PgSubscriptionToken struct {
	SubscriptionToken string    `db:"subscription_token"`
	SubscriberID      uuid.UUID `db:"subscriber_id"`
}

type PgUser struct {
	UserID   uuid.UUID `db:"user_id"`
	Username string    `db:"username"`
	Password string    `db:"password"`
}
