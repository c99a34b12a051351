package storage

import (
	"context"
	"newsletter/pkg/domain"
)

// SubscriberStorage defines the persistence operations for subscribers and
// their confirmation tokens. Lookups return nil (or an empty string for
// tokens) when no row matches; errors indicate storage failures only.
type SubscriberStorage interface {
	// StoreSubscriber inserts a new subscriber and returns the stored row as it
	// exists in the database (including the generated subscribed_at timestamp).
	// A uniqueness violation on email is reported as ErrDuplicate.
	StoreSubscriber(ctx context.Context, subscriber domain.Subscriber) (*domain.Subscriber, error)
	// SubscriberByEmail fetches a subscriber by their email address.
	// Returns nil when not found.
	SubscriberByEmail(ctx context.Context, email string) (*domain.Subscriber, error)
	// StoreSubscriptionToken binds a confirmation token to a subscriber.
	// Each subscriber holds at most one token; a second insert for the same
	// subscriber is reported as ErrDuplicate.
	StoreSubscriptionToken(ctx context.Context, token string, subscriberID domain.SubscriberID) error
	// TokenBySubscriberID returns the confirmation token bound to the given
	// subscriber, or the empty string when none exists.
	TokenBySubscriberID(ctx context.Context, subscriberID domain.SubscriberID) (string, error)
	// SubscriberIDByToken resolves a confirmation token to the subscriber it is
	// bound to. Returns nil when the token is unknown.
	SubscriberIDByToken(ctx context.Context, token string) (*domain.SubscriberID, error)
	// ConfirmSubscriber sets the subscriber's status to confirmed. The update is
	// unconditional, so confirming an already-confirmed subscriber succeeds.
	ConfirmSubscriber(ctx context.Context, subscriberID domain.SubscriberID) error
	// ConfirmedSubscriberEmails returns the stored email strings of all
	// confirmed subscribers. The strings are returned as stored, without
	// re-validation; callers decide how to treat legacy invalid data.
	ConfirmedSubscriberEmails(ctx context.Context) ([]string, error)
}

// StoredCredential is an operator credential row: the account ID and the
// argon2id password hash in PHC string format. Rows are provisioned out of
// band and are read-only to the service.
type StoredCredential struct {
	UserID       domain.UserID
	PasswordHash string
}

// CredentialStorage defines read access to operator credentials.
type CredentialStorage interface {
	// CredentialByUsername fetches the credential record for the given
	// username. Returns nil when the username is unknown.
	CredentialByUsername(ctx context.Context, username string) (*StoredCredential, error)
}
