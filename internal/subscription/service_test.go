package subscription_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"newsletter/internal/subscription"
	"newsletter/pkg/domain"
	"newsletter/pkg/mailer"
	mockmailer "newsletter/pkg/mailer/mock"
	"newsletter/pkg/serrors"
	"newsletter/pkg/storage"
	mockstorage "newsletter/pkg/storage/mock"
)

const baseURL = "https://newsletter.example.com"

func newTestService(t *testing.T) (*gomock.Controller,
	*mockstorage.MockStorage,
	*mockmailer.MockClient,
	subscription.Subscription) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	mail := mockmailer.NewMockClient(ctrl)
	s := subscription.New(st, mail, nil, subscription.Options{BaseURL: baseURL})

	return ctrl, st, mail, s
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestSubscription_Submit_NewSubscriber(t *testing.T) {
	ctrl, st, mail, s := newTestService(t)

	subscriberID := domain.SubscriberID(uuid.New())

	st.EXPECT().SubscriberByEmail(gomock.Any(), "ursula_le_guin@gmail.com").Return(nil, nil)

	var issuedToken string
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreSubscriber(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, subscriber domain.Subscriber) (*domain.Subscriber, error) {
				require.Equal(t, "le guin", subscriber.Name.String())
				require.Equal(t, "ursula_le_guin@gmail.com", subscriber.Email.String())
				require.Equal(t, domain.SubscriberStatusPending, subscriber.Status)

				subscriber.ID = subscriberID

				return &subscriber, nil
			})
		tx.EXPECT().StoreSubscriptionToken(gomock.Any(), gomock.Any(), subscriberID).DoAndReturn(
			func(_ context.Context, token string, _ domain.SubscriberID) error {
				require.True(t, subscription.ValidTokenShape(token))
				issuedToken = token

				return nil
			})
	})

	mail.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, email mailer.Email) error {
			require.Equal(t, "ursula_le_guin@gmail.com", email.To.String())
			require.Equal(t, "Welcome!", email.Subject)

			link := fmt.Sprintf("%s/subscriptions/confirm?subscription_token=%s", baseURL, issuedToken)
			require.Contains(t, email.TextBody, link)
			require.Contains(t, email.HTMLBody, link)

			return nil
		})

	require.NoError(t, s.Submit(context.Background(), "le guin", "ursula_le_guin@gmail.com"))
}

func TestSubscription_Submit_InvalidInput(t *testing.T) {
	_, _, _, s := newTestService(t)

	cases := []struct {
		name  string
		email string
	}{
		{name: "", email: "ursula_le_guin@gmail.com"},
		{name: "le guin", email: ""},
		{name: "le guin", email: "definitely-not-an-email"},
		{name: "<le guin>", email: "ursula_le_guin@gmail.com"},
	}
	for _, tc := range cases {
		err := s.Submit(context.Background(), tc.name, tc.email)
		require.Error(t, err, "name=%q email=%q", tc.name, tc.email)
		require.True(t, errors.Is(err, serrors.ErrBadRequest), "name=%q email=%q", tc.name, tc.email)
	}
}

func TestSubscription_Submit_ExistingSubscriberResendsToken(t *testing.T) {
	_, st, mail, s := newTestService(t)

	name, err := domain.NewSubscriberName("le guin")
	require.NoError(t, err)
	email, err := domain.NewSubscriberEmail("ursula_le_guin@gmail.com")
	require.NoError(t, err)

	subscriberID := domain.SubscriberID(uuid.New())
	existing := &domain.Subscriber{
		ID:     subscriberID,
		Name:   name,
		Email:  email,
		Status: domain.SubscriberStatusPending,
	}

	st.EXPECT().SubscriberByEmail(gomock.Any(), "ursula_le_guin@gmail.com").Return(existing, nil)
	st.EXPECT().TokenBySubscriberID(gomock.Any(), subscriberID).Return("aBcDeFgHiJkLmNoPqRsTuVwX0", nil)

	mail.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, email mailer.Email) error {
			require.Contains(t, email.TextBody, "subscription_token=aBcDeFgHiJkLmNoPqRsTuVwX0")

			return nil
		})

	require.NoError(t, s.Submit(context.Background(), "le guin", "ursula_le_guin@gmail.com"))
}

func TestSubscription_Submit_ExistingSubscriberMissingToken(t *testing.T) {
	_, st, _, s := newTestService(t)

	name, err := domain.NewSubscriberName("le guin")
	require.NoError(t, err)
	email, err := domain.NewSubscriberEmail("ursula_le_guin@gmail.com")
	require.NoError(t, err)

	subscriberID := domain.SubscriberID(uuid.New())
	existing := &domain.Subscriber{ID: subscriberID, Name: name, Email: email}

	st.EXPECT().SubscriberByEmail(gomock.Any(), "ursula_le_guin@gmail.com").Return(existing, nil)
	st.EXPECT().TokenBySubscriberID(gomock.Any(), subscriberID).Return("", nil)

	err = s.Submit(context.Background(), "le guin", "ursula_le_guin@gmail.com")
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrInternal))
}

func TestSubscription_Submit_EmailDeliveryFailure(t *testing.T) {
	ctrl, st, mail, s := newTestService(t)

	st.EXPECT().SubscriberByEmail(gomock.Any(), "ursula_le_guin@gmail.com").Return(nil, nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreSubscriber(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, subscriber domain.Subscriber) (*domain.Subscriber, error) {
				subscriber.ID = domain.SubscriberID(uuid.New())

				return &subscriber, nil
			})
		tx.EXPECT().StoreSubscriptionToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	})

	mail.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return(serrors.With(serrors.ErrUnavailable, "gateway down"))

	// the subscriber row was persisted, only the delivery failed
	err := s.Submit(context.Background(), "le guin", "ursula_le_guin@gmail.com")
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrUnavailable))
}

func TestSubscription_Submit_DuplicateRace(t *testing.T) {
	ctrl, st, _, s := newTestService(t)

	st.EXPECT().SubscriberByEmail(gomock.Any(), "ursula_le_guin@gmail.com").Return(nil, nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreSubscriber(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate)
	})

	err := s.Submit(context.Background(), "le guin", "ursula_le_guin@gmail.com")
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrConflict))
}

func TestSubscription_Confirm(t *testing.T) {
	_, st, _, s := newTestService(t)

	subscriberID := domain.SubscriberID(uuid.New())
	token := "aBcDeFgHiJkLmNoPqRsTuVwX0"

	st.EXPECT().SubscriberIDByToken(gomock.Any(), token).Return(&subscriberID, nil)
	st.EXPECT().ConfirmSubscriber(gomock.Any(), subscriberID).Return(nil)

	require.NoError(t, s.Confirm(context.Background(), token))
}

func TestSubscription_Confirm_MalformedToken(t *testing.T) {
	_, _, _, s := newTestService(t)

	for _, token := range []string{"", "too-short", "white space in the token!"} {
		err := s.Confirm(context.Background(), token)
		require.Error(t, err, "token %q", token)
		require.True(t, errors.Is(err, serrors.ErrUnauthorized), "token %q", token)
	}
}

func TestSubscription_Confirm_UnknownToken(t *testing.T) {
	_, st, _, s := newTestService(t)

	token := "aBcDeFgHiJkLmNoPqRsTuVwX0"
	st.EXPECT().SubscriberIDByToken(gomock.Any(), token).Return(nil, nil)

	err := s.Confirm(context.Background(), token)
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrUnauthorized))
}
