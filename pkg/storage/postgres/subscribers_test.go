package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"newsletter/pkg/domain"
	"newsletter/pkg/storage"
	"newsletter/pkg/storage/postgres"
)

func newSubscriber(t *testing.T, name string, email string) domain.Subscriber {
	t.Helper()

	subscriberName, err := domain.NewSubscriberName(name)
	require.NoError(t, err)
	subscriberEmail, err := domain.NewSubscriberEmail(email)
	require.NoError(t, err)

	return domain.Subscriber{
		Name:   subscriberName,
		Email:  subscriberEmail,
		Status: domain.SubscriberStatusPending,
	}
}

func storeSubscriber(t *testing.T, pgSQL *postgres.PgSQL, name string, email string) *domain.Subscriber {
	t.Helper()

	stored, err := pgSQL.StoreSubscriber(context.Background(), newSubscriber(t, name, email))
	require.NoError(t, err)

	return stored
}

func TestStoreSubscriberAndFetchByEmail(t *testing.T) {
	pgSQL := setupTestDB(t)
	ctx := context.Background()

	stored := storeSubscriber(t, pgSQL, "le guin", "ursula_le_guin@gmail.com")
	require.NotEqual(t, domain.SubscriberID{}, stored.ID)
	require.Equal(t, "le guin", stored.Name.String())
	require.Equal(t, "ursula_le_guin@gmail.com", stored.Email.String())
	require.Equal(t, domain.SubscriberStatusPending, stored.Status)
	require.False(t, stored.SubscribedAt.IsZero())

	fetched, err := pgSQL.SubscriberByEmail(ctx, "ursula_le_guin@gmail.com")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Equal(t, stored.ID, fetched.ID)
	require.Equal(t, stored.Name, fetched.Name)
	require.Equal(t, stored.Status, fetched.Status)
}

func TestSubscriberByEmailNotFound(t *testing.T) {
	pgSQL := setupTestDB(t)

	fetched, err := pgSQL.SubscriberByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, fetched)
}

func TestStoreSubscriberDuplicateEmail(t *testing.T) {
	pgSQL := setupTestDB(t)
	ctx := context.Background()

	storeSubscriber(t, pgSQL, "le guin", "ursula_le_guin@gmail.com")

	_, err := pgSQL.StoreSubscriber(ctx, newSubscriber(t, "impostor", "ursula_le_guin@gmail.com"))
	require.Error(t, err)
	require.True(t, errors.Is(err, storage.ErrDuplicate))
}

func TestSubscriptionTokens(t *testing.T) {
	pgSQL := setupTestDB(t)
	ctx := context.Background()

	stored := storeSubscriber(t, pgSQL, "le guin", "ursula_le_guin@gmail.com")

	token := "aBcDeFgHiJkLmNoPqRsTuVwX0"
	require.NoError(t, pgSQL.StoreSubscriptionToken(ctx, token, stored.ID))

	subscriberID, err := pgSQL.SubscriberIDByToken(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, subscriberID)
	require.Equal(t, stored.ID, *subscriberID)

	roundTrip, err := pgSQL.TokenBySubscriberID(ctx, stored.ID)
	require.NoError(t, err)
	require.Equal(t, token, roundTrip)
}

func TestSubscriptionTokenNotFound(t *testing.T) {
	pgSQL := setupTestDB(t)
	ctx := context.Background()

	subscriberID, err := pgSQL.SubscriberIDByToken(ctx, "0000000000000000000000000")
	require.NoError(t, err)
	require.Nil(t, subscriberID)

	stored := storeSubscriber(t, pgSQL, "le guin", "ursula_le_guin@gmail.com")
	token, err := pgSQL.TokenBySubscriberID(ctx, stored.ID)
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestStoreSubscriptionTokenDuplicateSubscriber(t *testing.T) {
	pgSQL := setupTestDB(t)
	ctx := context.Background()

	stored := storeSubscriber(t, pgSQL, "le guin", "ursula_le_guin@gmail.com")

	require.NoError(t, pgSQL.StoreSubscriptionToken(ctx, "aBcDeFgHiJkLmNoPqRsTuVwX0", stored.ID))

	// one token per subscriber
	err := pgSQL.StoreSubscriptionToken(ctx, "zYxWvUtSrQpOnMlKjIhGfEdC1", stored.ID)
	require.Error(t, err)
	require.True(t, errors.Is(err, storage.ErrDuplicate))
}

func TestConfirmSubscriber(t *testing.T) {
	pgSQL := setupTestDB(t)
	ctx := context.Background()

	stored := storeSubscriber(t, pgSQL, "le guin", "ursula_le_guin@gmail.com")

	require.NoError(t, pgSQL.ConfirmSubscriber(ctx, stored.ID))

	fetched, err := pgSQL.SubscriberByEmail(ctx, "ursula_le_guin@gmail.com")
	require.NoError(t, err)
	require.Equal(t, domain.SubscriberStatusConfirmed, fetched.Status)

	// confirming again is a no-op
	require.NoError(t, pgSQL.ConfirmSubscriber(ctx, stored.ID))

	fetched, err = pgSQL.SubscriberByEmail(ctx, "ursula_le_guin@gmail.com")
	require.NoError(t, err)
	require.Equal(t, domain.SubscriberStatusConfirmed, fetched.Status)
}

func TestConfirmedSubscriberEmails(t *testing.T) {
	pgSQL := setupTestDB(t)
	ctx := context.Background()

	first := storeSubscriber(t, pgSQL, "first", "first@example.com")
	storeSubscriber(t, pgSQL, "second", "second@example.com")
	third := storeSubscriber(t, pgSQL, "third", "third@example.com")

	require.NoError(t, pgSQL.ConfirmSubscriber(ctx, first.ID))
	require.NoError(t, pgSQL.ConfirmSubscriber(ctx, third.ID))

	emails, err := pgSQL.ConfirmedSubscriberEmails(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"first@example.com", "third@example.com"}, emails)
}

func TestConfirmedSubscriberEmailsEmpty(t *testing.T) {
	pgSQL := setupTestDB(t)

	emails, err := pgSQL.ConfirmedSubscriberEmails(context.Background())
	require.NoError(t, err)
	require.Empty(t, emails)
}
